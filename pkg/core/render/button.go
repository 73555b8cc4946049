package render

import (
	"strconv"

	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
)

const (
	shadowSubtle = "0 1px 3px rgba(0,0,0,0.12)"
	shadowStrong = "0 10px 25px rgba(0,0,0,0.25)"
	shadowHard   = "4px 4px 0px rgba(0,0,0,0.3)"
)

// ButtonSurface resolves the fill, border, corner radius and shadow of a
// button drawn with the theme.
func ButtonSurface(t domain.Theme) Style {
	var s Style
	switch domain.ParseButtonStyleType(string(t.ButtonStyleType)) {
	case domain.ButtonOutline:
		s = Style{
			{"background-color", "transparent"},
			{"border", "2px solid " + t.ButtonColor.String()},
		}
	case domain.ButtonGlass:
		s = Style{
			{"background-color", t.ButtonColor.WithAlpha(0.25)},
			{"border", "1px solid rgba(255,255,255,0.3)"},
			{"backdrop-filter", "blur(12px)"},
		}
	default:
		border := "none"
		if t.ButtonBorder != "" {
			border = t.ButtonBorder
		}
		s = Style{
			{"background-color", t.ButtonColor.String()},
			{"border", border},
		}
	}
	return append(s,
		Decl{"border-radius", CornerRadius(t)},
		Decl{"box-shadow", Shadow(t.ButtonShadow)},
	)
}

// CornerRadius returns the explicit radius when set, otherwise the radius of
// the legacy button shape.
func CornerRadius(t domain.Theme) string {
	if t.ButtonCornerRadius != nil {
		return strconv.Itoa(max(*t.ButtonCornerRadius, 0)) + "px"
	}
	switch domain.ParseButtonStyle(string(t.ButtonStyle)) {
	case domain.ButtonPill:
		return "9999px"
	case domain.ButtonSquare:
		return "4px"
	default:
		return "8px"
	}
}

// Shadow maps an elevation preset to a box-shadow value.
func Shadow(s domain.ButtonShadow) string {
	switch domain.ParseButtonShadow(string(s)) {
	case domain.ShadowSubtle:
		return shadowSubtle
	case domain.ShadowStrong:
		return shadowStrong
	case domain.ShadowHard:
		return shadowHard
	default:
		return "none"
	}
}
