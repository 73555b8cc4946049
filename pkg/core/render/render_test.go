package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
)

func style(t *testing.T, n Node, prop string) string {
	t.Helper()
	v, ok := n.Style.Get(prop)
	require.True(t, ok, "missing %s on %s", prop, n.Role)
	return v
}

func TestRenderLinkIsPure(t *testing.T) {
	theme := domain.DefaultTheme()
	theme.ButtonStyleType = domain.ButtonGlass
	for _, layout := range append(domain.Layouts, "unknown") {
		l := domain.Link{ID: 7, Title: "Docs", URL: "https://docs.example", Layout: layout, IsActive: true}
		a, b := RenderLink(theme, l), RenderLink(theme, l)
		assert.Equal(t, a, b, string(layout))
		assert.Equal(t, HTML(a), HTML(b), string(layout))
	}
}

func TestIconOnlyFallbackGlyph(t *testing.T) {
	n := RenderLink(domain.DefaultTheme(), domain.Link{Title: "Shop", URL: "https://shop.example", Layout: domain.LayoutIconOnly})

	glyph, ok := n.Find("glyph")
	require.True(t, ok)
	assert.Equal(t, "S", glyph.Text)
	_, hasIcon := n.Find("icon")
	assert.False(t, hasIcon)

	badge, _ := n.Find("badge")
	assert.Equal(t, "48px", style(t, badge, "width"))
	assert.Equal(t, "9999px", style(t, badge, "border-radius"))
}

func TestIconOnlyUsesIconWhenSet(t *testing.T) {
	n := RenderLink(domain.DefaultTheme(), domain.Link{Title: "Code", Icon: domain.IconPtr("Github"), Layout: domain.LayoutIconOnly})

	icon, ok := n.Find("icon")
	require.True(t, ok)
	v, _ := icon.Attr("data-icon")
	assert.Equal(t, "Github", v)
	_, hasGlyph := n.Find("glyph")
	assert.False(t, hasGlyph)
}

func TestGlyphMultibyte(t *testing.T) {
	assert.Equal(t, "é", Glyph("école"))
	assert.Equal(t, "", Glyph(""))
}

func TestUnknownLayoutRendersDefault(t *testing.T) {
	theme := domain.DefaultTheme()
	unknown := RenderLink(theme, domain.Link{Title: "A", URL: "u", Layout: "carousel"})
	def := RenderLink(theme, domain.Link{Title: "A", URL: "u", Layout: domain.LayoutDefault})
	empty := RenderLink(theme, domain.Link{Title: "A", URL: "u"})

	assert.Equal(t, HTML(def), HTML(unknown))
	assert.Equal(t, HTML(def), HTML(empty))
	_, ok := unknown.Find("button")
	assert.True(t, ok)
}

func TestButtonSurfaceFillRule(t *testing.T) {
	theme := domain.DefaultTheme()
	theme.ButtonColor = "#ff0000"

	tests := []struct {
		styleType domain.ButtonStyleType
		fill      string
		border    string
		blur      bool
	}{
		{domain.ButtonSolid, "#ff0000", "none", false},
		{"", "#ff0000", "none", false},
		{domain.ButtonOutline, "transparent", "2px solid #ff0000", false},
		{domain.ButtonGlass, "#ff000040", "1px solid rgba(255,255,255,0.3)", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.styleType), func(t *testing.T) {
			theme.ButtonStyleType = tt.styleType
			s := ButtonSurface(theme)
			fill, _ := s.Get("background-color")
			border, _ := s.Get("border")
			_, blur := s.Get("backdrop-filter")
			assert.Equal(t, tt.fill, fill)
			assert.Equal(t, tt.border, border)
			assert.Equal(t, tt.blur, blur)
		})
	}
}

func TestSolidUsesPresetBorder(t *testing.T) {
	theme := domain.DefaultTheme()
	theme.ButtonBorder = "3px solid #000000"
	border, _ := ButtonSurface(theme).Get("border")
	assert.Equal(t, "3px solid #000000", border)
}

func TestCornerRadius(t *testing.T) {
	theme := domain.DefaultTheme()
	assert.Equal(t, "8px", CornerRadius(theme))

	theme.ButtonStyle = domain.ButtonPill
	assert.Equal(t, "9999px", CornerRadius(theme))

	theme.ButtonStyle = domain.ButtonSquare
	assert.Equal(t, "4px", CornerRadius(theme))

	theme.ButtonCornerRadius = domain.Int(0)
	assert.Equal(t, "0px", CornerRadius(theme), "explicit zero overrides the legacy shape")

	theme.ButtonCornerRadius = domain.Int(14)
	assert.Equal(t, "14px", CornerRadius(theme))
}

func TestShadowPresets(t *testing.T) {
	assert.Equal(t, "none", Shadow(""))
	assert.Equal(t, "0 1px 3px rgba(0,0,0,0.12)", Shadow(domain.ShadowSubtle))
	assert.Equal(t, "0 10px 25px rgba(0,0,0,0.25)", Shadow(domain.ShadowStrong))
	assert.Equal(t, "4px 4px 0px rgba(0,0,0,0.3)", Shadow(domain.ShadowHard))
	assert.Equal(t, "none", Shadow("glow"))
}

func TestCardAndMinimalStripScheme(t *testing.T) {
	theme := domain.DefaultTheme()
	l := domain.Link{Title: "Blog", URL: "https://blog.example/post"}

	for _, layout := range []domain.LinkLayout{domain.LayoutCard, domain.LayoutMinimal, domain.LayoutFeatured} {
		l.Layout = layout
		url, ok := RenderLink(theme, l).Find("url")
		require.True(t, ok)
		assert.Equal(t, "blog.example/post", url.Text, string(layout))
	}

	l.Layout = domain.LayoutThumbnail
	url, _ := RenderLink(theme, l).Find("url")
	assert.Equal(t, "https://blog.example/post", url.Text)
}

func TestMinimalUsesTitleColor(t *testing.T) {
	theme := domain.DefaultTheme()
	theme.TitleColor = "#123456"
	n := RenderLink(theme, domain.Link{Title: "x", URL: "y", Layout: domain.LayoutMinimal})

	title, _ := n.Find("title")
	assert.Equal(t, "#123456", style(t, title, "color"))
	box, _ := n.Find("minimal")
	_, hasBg := box.Style.Get("background-color")
	assert.False(t, hasBg)
}

func TestFeaturedGradient(t *testing.T) {
	theme := domain.DefaultTheme()
	theme.ButtonColor = "#336699"
	n := RenderLink(theme, domain.Link{Title: "x", URL: "y", Layout: domain.LayoutFeatured})

	box, _ := n.Find("featured")
	assert.Equal(t, "linear-gradient(135deg, #336699 0%, #336699cc 100%)", style(t, box, "background"))
}

func TestMalformedColorPassesThrough(t *testing.T) {
	theme := domain.DefaultTheme()
	theme.ButtonColor = "not-a-color"
	n := RenderLink(theme, domain.Link{Title: "x", URL: "y"})
	btn, _ := n.Find("button")
	assert.Equal(t, "not-a-color", style(t, btn, "background-color"))
}

func TestGradientWallpaperDefaultsEnd(t *testing.T) {
	theme := domain.DefaultTheme()
	theme.WallpaperStyle = domain.WallpaperGradient
	theme.WallpaperGradientStart = "#000000"

	layer := RenderWallpaper(theme)
	f, ok := layer.Find("fill")
	require.True(t, ok)
	assert.Equal(t, "linear-gradient(135deg, #000000 0%, #ff3a9d 100%)", style(t, f, "background"))
}

func TestWallpaperVariants(t *testing.T) {
	theme := domain.DefaultTheme()
	theme.Wallpaper = "#eeeeee"

	theme.WallpaperStyle = domain.WallpaperBlur
	layer := RenderWallpaper(theme)
	_, ok := layer.Find("blur")
	assert.True(t, ok)

	theme.WallpaperStyle = domain.WallpaperPattern
	theme.WallpaperPattern = domain.PatternGrid
	p, ok := RenderWallpaper(theme).Find("pattern")
	require.True(t, ok)
	assert.Equal(t, "#eeeeee", style(t, p, "background-color"))
	assert.Equal(t, "12.5% 12.5%", style(t, p, "background-size"))

	theme.WallpaperStyle = domain.WallpaperImage
	assert.Empty(t, RenderWallpaper(theme).Children, "missing URL renders an empty layer")

	theme.WallpaperVideoURL = "https://cdn.example/loop.mp4"
	theme.WallpaperStyle = domain.WallpaperVideo
	media, ok := RenderWallpaper(theme).Find("media")
	require.True(t, ok)
	assert.Equal(t, "video", media.Tag)

	theme.WallpaperStyle = "plasma"
	f, ok := RenderWallpaper(theme).Find("fill")
	require.True(t, ok)
	assert.Equal(t, "#eeeeee", style(t, f, "background"))
}

func TestRenderPageOrdersActiveLinks(t *testing.T) {
	p := Page{
		Username: "ada",
		Theme:    domain.DefaultTheme(),
		Links: []domain.Link{
			{ID: 3, Title: "third", URL: "c", Position: 2, IsActive: true},
			{ID: 1, Title: "first", URL: "a", Position: 0, IsActive: true},
			{ID: 2, Title: "hidden", URL: "b", Position: 1, IsActive: false},
		},
	}

	n := RenderPage(p)
	links := n.FindAll("link")
	require.Len(t, links, 2)
	href, _ := links[0].Attr("href")
	assert.Equal(t, "/go/1", href)
	title, _ := links[1].Find("title")
	assert.Equal(t, "third", title.Text)

	name, _ := n.Find("name")
	assert.Equal(t, "@ada", name.Text)
	_, hasEmpty := n.Find("empty")
	assert.False(t, hasEmpty)
}

func TestRenderPageEmptyState(t *testing.T) {
	n := RenderPage(Page{Username: "ada", Name: "Ada", Theme: domain.DefaultTheme()})
	empty, ok := n.Find("empty")
	require.True(t, ok)
	assert.Equal(t, EmptyLinksText, empty.Text)
	name, _ := n.Find("name")
	assert.Equal(t, "Ada", name.Text)
}

func TestTitleStyles(t *testing.T) {
	theme := domain.DefaultTheme()
	theme.TitleSize = domain.TitleLarge
	theme.TitleStyle = domain.TitleLogo
	theme.FontFamily = domain.FontMono
	theme.ProfileImageLayout = domain.ProfileHero

	n := RenderPage(Page{Username: "ada", ProfileImageURL: "https://img.example/me.png", Theme: theme})
	name, _ := n.Find("name")
	assert.Equal(t, "24px", style(t, name, "font-size"))
	assert.Equal(t, "uppercase", style(t, name, "text-transform"))
	assert.Equal(t, "monospace", style(t, n, "font-family"))
	avatar, _ := n.Find("avatar")
	assert.Equal(t, "128px", style(t, avatar, "height"))
}

func TestHTMLEscapes(t *testing.T) {
	n := RenderLink(domain.DefaultTheme(), domain.Link{Title: `<b>"x"</b>`, URL: `https://a.example/?q="1"&r=2`})
	out := HTML(n)
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "&lt;b&gt;")
	assert.Contains(t, out, `href="https://a.example/?q=&#34;1&#34;&amp;r=2"`)
}

func TestDocumentWrapsPage(t *testing.T) {
	p := Page{Username: "ada", Theme: domain.DefaultTheme()}
	doc := Document(p)
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html><html lang=\"en\">"))
	assert.Contains(t, doc, "<title>@ada</title>")
	assert.Contains(t, doc, HTML(RenderPage(p)))
}

func TestShareURLs(t *testing.T) {
	public := PublicURL("https://links.example/", "ada")
	assert.Equal(t, "https://links.example/ada", public)

	s := ShareURLs(public)
	assert.Equal(t, public, s.Public)
	assert.Equal(t, "https://twitter.com/intent/tweet?text=Check%20out%20my%20links%20at%20https%3A%2F%2Flinks.example%2Fada", s.Twitter)
	assert.Equal(t, "https://www.facebook.com/sharer/sharer.php?u=https%3A%2F%2Flinks.example%2Fada", s.Facebook)
	assert.Equal(t, "https://www.linkedin.com/sharing/share-offsite/?url=https%3A%2F%2Flinks.example%2Fada", s.LinkedIn)
	assert.Equal(t, "https://wa.me/?text=Check%20out%20my%20links%3A%20https%3A%2F%2Flinks.example%2Fada", s.WhatsApp)
}
