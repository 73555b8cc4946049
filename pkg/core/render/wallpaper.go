package render

import "github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"

const (
	dotsImage = "radial-gradient(circle, rgba(0,0,0,0.15) 1px, transparent 1px)"
	gridImage = "linear-gradient(rgba(0,0,0,0.05) 1px, transparent 1px), linear-gradient(90deg, rgba(0,0,0,0.05) 1px, transparent 1px)"
)

var fullBleed = Style{{"position", "absolute"}, {"inset", "0"}}

// RenderWallpaper draws the page background layer for the theme's active
// wallpaper. An image or video wallpaper without a URL yields an empty layer.
func RenderWallpaper(t domain.Theme) Node {
	layer := el("div", "wallpaper", append(fullBleed.clone(), Decl{"overflow", "hidden"}))
	layer.Attrs = []Attr{{"data-style", string(t.ActiveWallpaper().Style())}}

	switch w := t.ActiveWallpaper().(type) {
	case domain.GradientWallpaper:
		layer.Children = []Node{fill(w.CSS())}
	case domain.BlurWallpaper:
		layer.Children = []Node{
			fill(w.Fill),
			el("div", "blur", append(fullBleed.clone(),
				Decl{"backdrop-filter", "blur(12px)"},
				Decl{"background-color", "rgba(255,255,255,0.1)"},
			)),
		}
	case domain.PatternWallpaper:
		layer.Children = []Node{pattern(w)}
	case domain.ImageWallpaper:
		if w.URL != "" {
			layer.Children = []Node{{
				Tag:   "img",
				Role:  "media",
				Style: media(),
				Attrs: []Attr{{"src", w.URL}, {"alt", "Wallpaper"}},
			}}
		}
	case domain.VideoWallpaper:
		if w.URL != "" {
			layer.Children = []Node{{
				Tag:   "video",
				Role:  "media",
				Style: media(),
				Attrs: []Attr{{"src", w.URL}, {"autoplay", ""}, {"muted", ""}, {"loop", ""}, {"playsinline", ""}},
			}}
		}
	case domain.SolidWallpaper:
		layer.Children = []Node{fill(w.Fill)}
	default:
		layer.Children = []Node{fill(t.BackgroundColor.String())}
	}
	return layer
}

func fill(background string) Node {
	return el("div", "fill", append(fullBleed.clone(), Decl{"background", background}))
}

func pattern(w domain.PatternWallpaper) Node {
	image, size := dotsImage, "12px 12px"
	if w.Kind == domain.PatternGrid {
		image, size = gridImage, "12.5% 12.5%"
	}
	n := el("div", "pattern", append(fullBleed.clone(),
		Decl{"background-color", w.Tint},
		Decl{"background-image", image},
		Decl{"background-size", size},
	))
	n.Attrs = []Attr{{"data-pattern", string(w.Kind)}}
	return n
}

func media() Style {
	return append(fullBleed.clone(),
		Decl{"width", "100%"},
		Decl{"height", "100%"},
		Decl{"object-fit", "cover"},
	)
}

func (s Style) clone() Style {
	return append(Style(nil), s...)
}
