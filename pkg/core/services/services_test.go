package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadjakorntonsri/go-linkpage/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
	"github.com/wadjakorntonsri/go-linkpage/pkg/validation"
)

var dbSeq atomic.Int64

type fixture struct {
	profiles *ProfileService
	links    *LinkService
	themes   *ThemeService
	user     *domain.User
}

func setup(t *testing.T, mode validation.Mode) fixture {
	t.Helper()
	repo, err := sqlite.NewSQLiteRepository(fmt.Sprintf("file:svc_%s_%d?mode=memory&cache=shared", t.Name(), dbSeq.Add(1)))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	v := validation.New()
	f := fixture{
		profiles: NewProfileService(repo),
		links:    NewLinkService(repo, v),
		themes:   NewThemeService(repo, v, mode),
	}
	f.user, err = f.profiles.EnsureUser(context.Background(), "ada.lovelace@example.com", "Ada")
	require.NoError(t, err)
	return f
}

func TestEnsureUserDerivesUniqueUsernames(t *testing.T) {
	f := setup(t, validation.ModeLenient)
	ctx := context.Background()
	assert.Equal(t, "ada_lovelace", f.user.Username)

	again, err := f.profiles.EnsureUser(ctx, "ada.lovelace@example.com", "Ada")
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, again.ID)

	other, err := f.profiles.EnsureUser(ctx, "Ada.Lovelace@other.example", "Ada 2")
	require.NoError(t, err)
	assert.Equal(t, "ada_lovelace1", other.Username)
}

func TestGetProfileDefaults(t *testing.T) {
	f := setup(t, validation.ModeLenient)

	p, err := f.profiles.GetProfile(context.Background(), "ada_lovelace")
	require.NoError(t, err)
	assert.Empty(t, p.Links)
	assert.True(t, domain.DefaultTheme().Equal(p.Theme))

	_, err = f.profiles.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestCreateLinkAppends(t *testing.T) {
	f := setup(t, validation.ModeLenient)
	ctx := context.Background()

	for i, title := range []string{"a", "b"} {
		pos := 7
		l, err := f.links.CreateLink(ctx, domain.LinkInput{UserID: f.user.ID, Title: title, URL: "https://x.example", Icon: domain.Str("none"), Position: &pos})
		require.NoError(t, err)
		assert.Equal(t, i, l.Position)
		assert.Nil(t, l.Icon)
		assert.Equal(t, domain.LayoutDefault, l.Layout)
	}

	_, err := f.links.CreateLink(ctx, domain.LinkInput{UserID: f.user.ID, Title: " ", URL: "https://x.example"})
	assert.True(t, domain.IsValidation(err))

	_, err = f.links.CreateLink(ctx, domain.LinkInput{UserID: 999, Title: "x", URL: "y"})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestUpdateDeleteAndReorder(t *testing.T) {
	f := setup(t, validation.ModeLenient)
	ctx := context.Background()

	var ids []int64
	for _, title := range []string{"a", "b", "c"} {
		l, err := f.links.CreateLink(ctx, domain.LinkInput{UserID: f.user.ID, Title: title, URL: "https://" + title + ".example"})
		require.NoError(t, err)
		ids = append(ids, l.ID)
	}

	updated, err := f.links.UpdateLink(ctx, ids[1], domain.LinkInput{Title: "bee", URL: "https://bee.example", Layout: "thumbnail"})
	require.NoError(t, err)
	assert.Equal(t, domain.LayoutThumbnail, updated.Layout)

	_, err = f.links.UpdateLink(ctx, 404, domain.LinkInput{Title: "x", URL: "y"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, f.links.ReorderLinks(ctx, []domain.LinkPosition{{ID: ids[2], Position: 0}, {ID: ids[0], Position: 1}, {ID: ids[1], Position: 2}}))
	err = f.links.ReorderLinks(ctx, []domain.LinkPosition{{ID: ids[0], Position: 0}, {ID: ids[1], Position: 0}})
	assert.True(t, domain.IsValidation(err))

	require.NoError(t, f.links.DeleteLink(ctx, ids[2]))

	p, err := f.profiles.GetProfile(ctx, f.user.Username)
	require.NoError(t, err)
	require.Len(t, p.Links, 2)
	assert.Equal(t, "a", p.Links[0].Title)
	assert.Equal(t, 0, p.Links[0].Position)
	assert.Equal(t, "bee", p.Links[1].Title)
	assert.Equal(t, 1, p.Links[1].Position)
}

func TestReorderRejectsPartialPayload(t *testing.T) {
	f := setup(t, validation.ModeLenient)
	ctx := context.Background()

	var ids []int64
	for _, title := range []string{"a", "b", "c"} {
		l, err := f.links.CreateLink(ctx, domain.LinkInput{UserID: f.user.ID, Title: title, URL: "https://" + title + ".example"})
		require.NoError(t, err)
		ids = append(ids, l.ID)
	}

	err := f.links.ReorderLinks(ctx, []domain.LinkPosition{{ID: ids[2], Position: 0}})
	assert.True(t, domain.IsValidation(err))

	other, err := f.profiles.EnsureUser(ctx, "grace@example.com", "Grace")
	require.NoError(t, err)
	foreign, err := f.links.CreateLink(ctx, domain.LinkInput{UserID: other.ID, Title: "g", URL: "https://g.example"})
	require.NoError(t, err)
	err = f.links.ReorderLinks(ctx, []domain.LinkPosition{
		{ID: ids[0], Position: 0}, {ID: ids[1], Position: 1}, {ID: foreign.ID, Position: 2},
	})
	assert.True(t, domain.IsValidation(err))

	err = f.links.ReorderLinks(ctx, []domain.LinkPosition{{ID: 404, Position: 0}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	p, err := f.profiles.GetProfile(ctx, f.user.Username)
	require.NoError(t, err)
	var positions []int
	for _, l := range p.Links {
		positions = append(positions, l.Position)
	}
	assert.Equal(t, []int{0, 1, 2}, positions)
	assert.Equal(t, "a", p.Links[0].Title)
}

func TestRecordClick(t *testing.T) {
	f := setup(t, validation.ModeLenient)
	ctx := context.Background()

	l, err := f.links.CreateLink(ctx, domain.LinkInput{UserID: f.user.ID, Title: "a", URL: "https://a.example"})
	require.NoError(t, err)

	got, err := f.links.RecordClick(ctx, l.ID, "", "test", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Clicks)

	_, err = f.links.SetActive(ctx, l.ID, false)
	require.NoError(t, err)
	_, err = f.links.RecordClick(ctx, l.ID, "", "test", "127.0.0.1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaveThemeModes(t *testing.T) {
	ctx := context.Background()
	bad := domain.DefaultTheme().Record()
	bad.ButtonColor = "blurple"

	lenient := setup(t, validation.ModeLenient)
	theme, err := lenient.themes.SaveTheme(ctx, lenient.user.ID, bad)
	require.NoError(t, err)
	assert.Equal(t, domain.Color("blurple"), theme.ButtonColor)

	stored, err := lenient.themes.GetTheme(ctx, lenient.user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Color("blurple"), stored.ButtonColor)

	strict := setup(t, validation.ModeStrict)
	_, err = strict.themes.SaveTheme(ctx, strict.user.ID, bad)
	assert.True(t, domain.IsValidation(err))

	_, err = strict.themes.SaveTheme(ctx, 404, domain.DefaultTheme().Record())
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestExportImport(t *testing.T) {
	src := setup(t, validation.ModeLenient)
	ctx := context.Background()
	_, err := src.links.CreateLink(ctx, domain.LinkInput{UserID: src.user.ID, Title: "a", URL: "https://a.example", Layout: "card"})
	require.NoError(t, err)
	theme := domain.DefaultTheme()
	theme.BackgroundColor = "#0a1929"
	_, err = src.themes.SaveTheme(ctx, src.user.ID, theme.Record())
	require.NoError(t, err)

	dump, err := src.profiles.Export(ctx)
	require.NoError(t, err)
	require.Len(t, dump, 1)

	n, err := src.profiles.Import(ctx, dump)
	require.NoError(t, err)
	assert.Zero(t, n, "existing usernames are skipped")

	dst := setup(t, validation.ModeLenient)
	dump[0].Username = "imported"
	dump[0].Email = "imported@example.com"
	n, err = dst.profiles.Import(ctx, dump)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	p, err := dst.profiles.GetProfile(ctx, "imported")
	require.NoError(t, err)
	require.Len(t, p.Links, 1)
	assert.Equal(t, domain.LayoutCard, p.Links[0].Layout)
	assert.Equal(t, domain.Color("#0a1929"), p.Theme.BackgroundColor)
}
