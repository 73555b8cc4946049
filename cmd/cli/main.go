package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wadjakorntonsri/go-linkpage/pkg/adapters/client"
	"github.com/wadjakorntonsri/go-linkpage/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/go-linkpage/pkg/adapters/terminal"
	"github.com/wadjakorntonsri/go-linkpage/pkg/config"
	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
	"github.com/wadjakorntonsri/go-linkpage/pkg/core/presets"
	"github.com/wadjakorntonsri/go-linkpage/pkg/core/render"
	"github.com/wadjakorntonsri/go-linkpage/pkg/core/services"
	"github.com/wadjakorntonsri/go-linkpage/pkg/core/syncer"
	"github.com/wadjakorntonsri/go-linkpage/pkg/metrics"
	"github.com/wadjakorntonsri/go-linkpage/pkg/validation"
	"go.uber.org/zap"
)

const usage = "expected 'export', 'import', 'preview', 'presets' or 'apply' subcommands"

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	importFile := importCmd.String("file", "", "JSON file to import")
	previewCmd := flag.NewFlagSet("preview", flag.ExitOnError)
	previewUser := previewCmd.String("user", "", "username to preview")
	previewWidth := previewCmd.Int("width", 44, "terminal width")
	previewHTML := previewCmd.Bool("html", false, "print the HTML document instead")
	presetsCmd := flag.NewFlagSet("presets", flag.ExitOnError)
	presetsFamily := presetsCmd.String("family", "", "presentation or button-font")
	applyCmd := flag.NewFlagSet("apply", flag.ExitOnError)
	applyUser := applyCmd.String("user", "", "username to edit")
	applyPreset := applyCmd.String("preset", "", "preset name")
	applyFamily := applyCmd.String("family", "presentation", "preset family")
	applyToken := applyCmd.String("token", os.Getenv("LINKPAGE_TOKEN"), "API session token")

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg := config.MustLoad()
	logger, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	switch os.Args[1] {
	case "export":
		_ = exportCmd.Parse(os.Args[2:])
		doExport(profileService(cfg, logger), logger)
	case "import":
		_ = importCmd.Parse(os.Args[2:])
		if *importFile == "" {
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		doImport(profileService(cfg, logger), *importFile, logger)
	case "preview":
		_ = previewCmd.Parse(os.Args[2:])
		if *previewUser == "" {
			previewCmd.PrintDefaults()
			os.Exit(1)
		}
		doPreview(profileService(cfg, logger), *previewUser, *previewWidth, *previewHTML, logger)
	case "presets":
		_ = presetsCmd.Parse(os.Args[2:])
		doPresets(*presetsFamily, logger)
	case "apply":
		_ = applyCmd.Parse(os.Args[2:])
		if *applyUser == "" || *applyPreset == "" {
			applyCmd.PrintDefaults()
			os.Exit(1)
		}
		doApply(cfg, *applyUser, *applyFamily, *applyPreset, *applyToken, logger)
	default:
		fmt.Println(usage)
		os.Exit(1)
	}
}

func profileService(cfg *config.Config, logger *zap.Logger) *services.ProfileService {
	repo, err := sqlite.NewSQLiteRepository(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to db", zap.Error(err))
	}
	return services.NewProfileService(repo)
}

func doExport(profiles *services.ProfileService, logger *zap.Logger) {
	dump, err := profiles.Export(context.Background())
	if err != nil {
		logger.Fatal("export failed", zap.Error(err))
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(dump); err != nil {
		logger.Fatal("encode failed", zap.Error(err))
	}
}

func doImport(profiles *services.ProfileService, filename string, logger *zap.Logger) {
	file, err := os.Open(filename)
	if err != nil {
		logger.Fatal("failed to open file", zap.Error(err))
	}
	defer file.Close()

	var dump []domain.Profile
	if err := json.NewDecoder(file).Decode(&dump); err != nil {
		logger.Fatal("decode failed", zap.Error(err))
	}

	count, err := profiles.Import(context.Background(), dump)
	if err != nil {
		logger.Fatal("import failed", zap.Int("imported", count), zap.Error(err))
	}
	logger.Info("import finished", zap.Int("imported", count), zap.Int("skipped", len(dump)-count))
}

func doPreview(profiles *services.ProfileService, username string, width int, asHTML bool, logger *zap.Logger) {
	profile, err := profiles.GetProfile(context.Background(), username)
	if err != nil {
		logger.Fatal("failed to load profile", zap.String("username", username), zap.Error(err))
	}

	page := render.PageFor(*profile)
	if asHTML {
		fmt.Println(render.Document(page))
		return
	}
	fmt.Println(terminal.New(width).Render(render.RenderPage(page)))
}

func doPresets(family string, logger *zap.Logger) {
	list := presets.All()
	if family != "" {
		f, ok := presets.ParseFamily(family)
		if !ok {
			logger.Fatal("unknown preset family", zap.String("family", family))
		}
		list = presets.Catalog(f)
	}
	for _, p := range list {
		fmt.Printf("%-14s %-13s %s\n", p.Name, p.Family, p.Description)
	}
}

// doApply edits a page through the API the same way the dashboard does.
func doApply(cfg *config.Config, username, family, name, token string, logger *zap.Logger) {
	f, ok := presets.ParseFamily(family)
	if !ok {
		logger.Fatal("unknown preset family", zap.String("family", family))
	}
	preset, err := presets.Lookup(f, name)
	if err != nil {
		logger.Fatal("unknown preset", zap.String("preset", name), zap.Error(err))
	}

	ctx := context.Background()
	session := syncer.New(client.New(cfg.APIURL, token, 15*time.Second),
		syncer.WithDispatcher(syncer.NewDispatcher(syncer.ParseMode(cfg.SyncMode))),
		syncer.WithLogger(logger),
		syncer.WithThemeValidation(validation.New(), validation.ParseMode(cfg.ThemeValidation)),
	)
	if err := session.Load(ctx, username); err != nil {
		logger.Fatal("failed to load profile", zap.String("username", username), zap.Error(err))
	}
	if _, err := session.ApplyPreset(ctx, preset); err != nil {
		logger.Fatal("failed to apply preset", zap.Error(err))
	}
	session.Wait()

	if metrics.SyncCount("save_theme", "error") > 0 {
		logger.Fatal("theme was not saved, see warnings above")
	}
	logger.Info("preset applied", zap.String("username", username), zap.String("preset", preset.Name), zap.Strings("fields", preset.Fields()))
	fmt.Println(terminal.New(0).Render(render.RenderPage(session.Preview())))
}
