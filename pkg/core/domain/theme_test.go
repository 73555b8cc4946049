package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	got := Normalize(ThemePatch{ButtonColor: Str("#ff0000"), TitleFont: Str("")})

	want := DefaultTheme()
	want.ButtonColor = "#ff0000"
	assert.True(t, want.Equal(got), "got %+v", got)
	assert.Equal(t, "Link Sans", got.TitleFont, "empty strings count as unset")
}

func TestNormalizeKeepsUnknownValues(t *testing.T) {
	got := Normalize(ThemePatch{WallpaperStyle: Str("plasma"), ButtonColor: Str("not-a-color")})

	assert.Equal(t, WallpaperStyle("plasma"), got.WallpaperStyle)
	assert.Equal(t, Color("not-a-color"), got.ButtonColor)
	assert.Equal(t, SolidWallpaper{Fill: "#ffffff"}, got.ActiveWallpaper())
}

func TestApplyOverwritesOnlyDeclaredFields(t *testing.T) {
	base := DefaultTheme()
	base.ButtonCornerRadius = Int(12)

	got := base.Apply(ThemePatch{BackgroundColor: Str("#1a1a1a"), ButtonCornerRadius: Int(0)})

	assert.Equal(t, Color("#1a1a1a"), got.BackgroundColor)
	require.NotNil(t, got.ButtonCornerRadius)
	assert.Equal(t, 0, *got.ButtonCornerRadius)
	assert.Equal(t, base.WallpaperStyle, got.WallpaperStyle)
	assert.Equal(t, 12, *base.ButtonCornerRadius, "receiver is not mutated")
}

func TestPatchFields(t *testing.T) {
	p := ThemePatch{ButtonColor: Str("#000000"), TitleFont: Str("Georgia")}
	assert.Equal(t, []string{"buttonColor", "titleFont"}, p.Fields())
	assert.Empty(t, ThemePatch{}.Fields())
}

func TestActiveWallpaperVariants(t *testing.T) {
	theme := DefaultTheme()
	theme.WallpaperGradientStart = "#111111"
	theme.WallpaperPattern = PatternGrid
	theme.WallpaperImageURL = "https://img.example/bg.png"

	tests := []struct {
		style WallpaperStyle
		want  Wallpaper
	}{
		{WallpaperSolid, SolidWallpaper{Fill: "#ffffff"}},
		{"fill", SolidWallpaper{Fill: "#ffffff"}},
		{WallpaperGradient, GradientWallpaper{Start: "#111111", Angle: DefaultGradientAngle}},
		{WallpaperBlur, BlurWallpaper{Fill: "#ffffff"}},
		{WallpaperPattern, PatternWallpaper{Kind: PatternGrid, Tint: "#ffffff"}},
		{WallpaperImage, ImageWallpaper{URL: "https://img.example/bg.png"}},
		{WallpaperVideo, VideoWallpaper{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			theme.WallpaperStyle = tt.style
			assert.Equal(t, tt.want, theme.ActiveWallpaper())
		})
	}
}

func TestGradientMissingEndUsesDefault(t *testing.T) {
	start, end := GradientWallpaper{Start: "#000000"}.Stops()
	assert.Equal(t, Color("#000000"), start)
	assert.Equal(t, DefaultGradientEnd, end)
	assert.Equal(t, "linear-gradient(135deg, #000000 0%, #ff3a9d 100%)", GradientWallpaper{Start: "#000000"}.CSS())
}

func TestSetWallpaperKeepsStaleGroups(t *testing.T) {
	theme := DefaultTheme().SetWallpaper(GradientWallpaper{Start: "#111111", End: "#222222"})
	theme = theme.SetWallpaper(ImageWallpaper{URL: "https://img.example/a.png"})

	assert.Equal(t, WallpaperImage, theme.WallpaperStyle)
	assert.Equal(t, Color("#111111"), theme.WallpaperGradientStart)

	theme.WallpaperStyle = WallpaperGradient
	assert.Equal(t, GradientWallpaper{Start: "#111111", End: "#222222", Angle: DefaultGradientAngle}, theme.ActiveWallpaper())
}

func TestThemeFromRecord(t *testing.T) {
	rec := ThemeRecord{
		BackgroundColor:    "#0a1929",
		WallpaperStyle:     "pattern",
		WallpaperPattern:   "dots",
		WallpaperImageURL:  "https://stale.example/img.png",
		ButtonCornerRadius: Int(6),
	}

	theme := ThemeFromRecord(rec)
	assert.Equal(t, Color("#0a1929"), theme.BackgroundColor)
	assert.Equal(t, Color("#000000"), theme.ButtonColor)
	assert.Equal(t, "https://stale.example/img.png", theme.WallpaperImageURL)
	assert.Equal(t, 6, *theme.ButtonCornerRadius)

	back := theme.Record()
	assert.Equal(t, "pattern", back.WallpaperStyle)
	assert.Equal(t, "#000000", back.ButtonColor)
}

func TestColorWithAlpha(t *testing.T) {
	tests := []struct {
		in    Color
		alpha float64
		want  string
	}{
		{"#FF0000", 0.25, "#ff000040"},
		{"#abc", 0.8, "#aabbcccc"},
		{"#11223344", 1, "#112233ff"},
		{"rgb(1, 2, 3)", 0.5, "rgba(1, 2, 3, 0.5)"},
		{"rgba(255, 255, 255, 0.2)", 0.25, "rgba(255, 255, 255, 0.25)"},
		{"chartreuse", 0.25, "chartreuse"},
		{"transparent", 0.25, "transparent"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.WithAlpha(tt.alpha), string(tt.in))
	}
}

func TestParseEnumsFallBack(t *testing.T) {
	assert.Equal(t, LayoutDefault, ParseLayout("carousel"))
	assert.Equal(t, LayoutFeatured, ParseLayout("featured"))
	assert.Equal(t, ButtonSolid, ParseButtonStyleType(""))
	assert.Equal(t, ShadowNone, ParseButtonShadow("huge"))
	assert.Equal(t, ButtonRounded, ParseButtonStyle("hexagon"))
	assert.Equal(t, FontSans, ParseFontFamily("cursive"))
	assert.Equal(t, PatternDots, ParsePatternKind("stripes"))
}

func TestColorWellFormed(t *testing.T) {
	tests := []struct {
		in   Color
		want bool
	}{
		{"#fff", true},
		{"#00ff0080", true},
		{"transparent", true},
		{"rgb(255, 255, 255)", true},
		{"rgba(0, 0, 0, 1)", true},
		{"rgba(0,0,0,.5)", true},
		{"rgb(256, 0, 0)", false},
		{"rgb(999, 999, 999)", false},
		{"rgba(0, 0, 0, 1.01)", false},
		{"rgba(0, 0, 0, 7.5)", false},
		{"#12", false},
		{"red", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.WellFormed(), string(tt.in))
	}
}
