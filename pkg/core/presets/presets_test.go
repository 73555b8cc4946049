package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
)

func TestCatalogSizes(t *testing.T) {
	assert.GreaterOrEqual(t, len(Presentation()), 18)
	assert.GreaterOrEqual(t, len(ButtonFont()), 10)
	assert.Len(t, All(), len(Presentation())+len(ButtonFont()))
	assert.Len(t, Icons, 29)
}

func TestFamiliesDeclareDisjointConcerns(t *testing.T) {
	for _, p := range Presentation() {
		assert.ElementsMatch(t,
			[]string{"backgroundColor", "wallpaper", "buttonColor", "buttonTextColor", "buttonStyle", "titleColor", "titleFont"},
			p.Fields(), p.Name)
	}
	for _, p := range ButtonFont() {
		fields := p.Fields()
		assert.NotContains(t, fields, "backgroundColor", p.Name)
		assert.NotContains(t, fields, "wallpaper", p.Name)
		assert.NotContains(t, fields, "wallpaperStyle", p.Name)
		assert.Contains(t, fields, "buttonBorder", p.Name)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	start := domain.DefaultTheme()
	start.ButtonShadow = domain.ShadowHard
	start.ButtonCornerRadius = domain.Int(3)

	for _, p := range All() {
		once := Apply(start, p)
		twice := Apply(once, p)
		assert.True(t, once.Equal(twice), p.Name)
	}
}

func TestApplyPreservesUndeclaredFields(t *testing.T) {
	current := domain.DefaultTheme()
	current.WallpaperStyle = domain.WallpaperPattern
	current.WallpaperPattern = domain.PatternGrid
	current.ProfileImageLayout = domain.ProfileHero

	p, err := Lookup(FamilyButtonFont, "industrial")
	require.NoError(t, err)

	got := Apply(current, p)
	assert.Equal(t, "Courier New", got.TitleFont)
	assert.Equal(t, "2px solid #000000", got.ButtonBorder)
	assert.Equal(t, domain.Color("transparent"), got.ButtonColor)
	assert.Equal(t, domain.WallpaperPattern, got.WallpaperStyle)
	assert.Equal(t, domain.PatternGrid, got.WallpaperPattern)
	assert.Equal(t, domain.ProfileHero, got.ProfileImageLayout)
	assert.Equal(t, current.BackgroundColor, got.BackgroundColor)
}

func TestApplyDarkBundle(t *testing.T) {
	dark, err := Lookup(FamilyPresentation, "Dark")
	require.NoError(t, err)

	got := Apply(domain.DefaultTheme(), dark)

	assert.Equal(t, domain.Color("#1a1a1a"), got.BackgroundColor)
	assert.Equal(t, domain.Color("#ffffff"), got.ButtonColor)
	assert.Equal(t, domain.Color("#000000"), got.ButtonTextColor)
	assert.Equal(t, domain.Color("#ffffff"), got.TitleColor)
	assert.Equal(t, "Arial", got.TitleFont)
	assert.Equal(t, domain.WallpaperSolid, got.WallpaperStyle)
	assert.Equal(t, domain.ButtonRounded, got.ButtonStyle)
}

func TestLightAndDarkLeadTheCatalog(t *testing.T) {
	list := Presentation()
	require.Len(t, list, 21)
	assert.Equal(t, "Light", list[0].Name)
	assert.Equal(t, "Dark", list[1].Name)

	light, err := Lookup(FamilyPresentation, "light")
	require.NoError(t, err)
	got := Apply(domain.DefaultTheme(), light)
	assert.Equal(t, domain.Color("#ffffff"), got.BackgroundColor)
	assert.Equal(t, domain.Color("#000000"), got.ButtonColor)
	assert.Equal(t, domain.Color("#ffffff"), got.ButtonTextColor)
	assert.Equal(t, domain.Color("#000000"), got.TitleColor)
	assert.Equal(t, "Arial", got.TitleFont)
}

func TestDeclaredFieldEqualToCurrentStillCounts(t *testing.T) {
	p := Preset{Name: "Same", Patch: domain.ThemePatch{BackgroundColor: domain.Str("#ffffff")}}
	assert.Equal(t, []string{"backgroundColor"}, p.Fields())
	assert.True(t, domain.DefaultTheme().Equal(Apply(domain.DefaultTheme(), p)))
}

func TestLookup(t *testing.T) {
	p, err := Lookup(FamilyPresentation, " twilight ")
	require.NoError(t, err)
	assert.Equal(t, "Twilight", p.Name)

	_, err = Lookup(FamilyPresentation, "Industrial")
	assert.ErrorIs(t, err, ErrPresetNotFound)

	_, err = Lookup("nope", "Air")
	assert.ErrorIs(t, err, ErrPresetNotFound)
}

func TestParseFamily(t *testing.T) {
	f, ok := ParseFamily("Buttons")
	assert.True(t, ok)
	assert.Equal(t, FamilyButtonFont, f)

	_, ok = ParseFamily("colors")
	assert.False(t, ok)
}

func TestKnownIcon(t *testing.T) {
	assert.True(t, KnownIcon("Github"))
	assert.True(t, KnownIcon("none"))
	assert.False(t, KnownIcon("github"))
}
