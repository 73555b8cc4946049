package domain

import "strings"

// WallpaperStyle selects how the page background is painted.
type WallpaperStyle string

const (
	WallpaperSolid    WallpaperStyle = "solid"
	WallpaperGradient WallpaperStyle = "gradient"
	WallpaperBlur     WallpaperStyle = "blur"
	WallpaperPattern  WallpaperStyle = "pattern"
	WallpaperImage    WallpaperStyle = "image"
	WallpaperVideo    WallpaperStyle = "video"
)

// ParseWallpaperStyle maps a stored style to a known one. The legacy "fill"
// value is an alias of solid; unknown values fall back to solid.
func ParseWallpaperStyle(s string) WallpaperStyle {
	switch w := WallpaperStyle(strings.ToLower(strings.TrimSpace(s))); w {
	case WallpaperSolid, WallpaperGradient, WallpaperBlur, WallpaperPattern, WallpaperImage, WallpaperVideo:
		return w
	default:
		return WallpaperSolid
	}
}

// PatternKind is the repeating motif of a pattern wallpaper.
type PatternKind string

const (
	PatternDots PatternKind = "dots"
	PatternGrid PatternKind = "grid"
)

func ParsePatternKind(s string) PatternKind {
	if PatternKind(s) == PatternGrid {
		return PatternGrid
	}
	return PatternDots
}

// ButtonStyle is the legacy corner shape of link buttons.
type ButtonStyle string

const (
	ButtonRounded ButtonStyle = "rounded"
	ButtonSquare  ButtonStyle = "square"
	ButtonPill    ButtonStyle = "pill"
)

func ParseButtonStyle(s string) ButtonStyle {
	switch b := ButtonStyle(s); b {
	case ButtonRounded, ButtonSquare, ButtonPill:
		return b
	default:
		return ButtonRounded
	}
}

// ButtonStyleType is the fill treatment of link buttons.
type ButtonStyleType string

const (
	ButtonSolid   ButtonStyleType = "solid"
	ButtonGlass   ButtonStyleType = "glass"
	ButtonOutline ButtonStyleType = "outline"
)

func ParseButtonStyleType(s string) ButtonStyleType {
	switch b := ButtonStyleType(s); b {
	case ButtonGlass, ButtonOutline:
		return b
	default:
		return ButtonSolid
	}
}

// ButtonShadow names one of the fixed elevation presets.
type ButtonShadow string

const (
	ShadowNone   ButtonShadow = "none"
	ShadowSubtle ButtonShadow = "subtle"
	ShadowStrong ButtonShadow = "strong"
	ShadowHard   ButtonShadow = "hard"
)

func ParseButtonShadow(s string) ButtonShadow {
	switch b := ButtonShadow(s); b {
	case ShadowSubtle, ShadowStrong, ShadowHard:
		return b
	default:
		return ShadowNone
	}
}

// FontFamily is the generic family of the page body.
type FontFamily string

const (
	FontSans  FontFamily = "sans"
	FontSerif FontFamily = "serif"
	FontMono  FontFamily = "mono"
)

func ParseFontFamily(s string) FontFamily {
	switch f := FontFamily(s); f {
	case FontSerif, FontMono:
		return f
	default:
		return FontSans
	}
}

type TitleSize string

const (
	TitleSmall TitleSize = "small"
	TitleLarge TitleSize = "large"
)

func ParseTitleSize(s string) TitleSize {
	if TitleSize(s) == TitleLarge {
		return TitleLarge
	}
	return TitleSmall
}

type TitleStyle string

const (
	TitleText TitleStyle = "text"
	TitleLogo TitleStyle = "logo"
)

func ParseTitleStyle(s string) TitleStyle {
	if TitleStyle(s) == TitleLogo {
		return TitleLogo
	}
	return TitleText
}

type ProfileImageLayout string

const (
	ProfileClassic ProfileImageLayout = "classic"
	ProfileHero    ProfileImageLayout = "hero"
)

func ParseProfileImageLayout(s string) ProfileImageLayout {
	if ProfileImageLayout(s) == ProfileHero {
		return ProfileHero
	}
	return ProfileClassic
}

// Theme is the presentation configuration of one user's page.
//
// It keeps the flat field set used by stored records. Only the field group
// matching WallpaperStyle is active; the other groups may hold stale values
// which become active again when the style is switched back. Use
// ActiveWallpaper to read the active group as a single variant.
type Theme struct {
	BackgroundColor        Color              `json:"backgroundColor" validate:"themecolor"`
	WallpaperStyle         WallpaperStyle     `json:"wallpaperStyle" validate:"oneof=solid gradient blur pattern image video"`
	Wallpaper              string             `json:"wallpaper"`
	WallpaperGradientStart Color              `json:"wallpaperGradientStart,omitempty" validate:"omitempty,themecolor"`
	WallpaperGradientEnd   Color              `json:"wallpaperGradientEnd,omitempty" validate:"omitempty,themecolor"`
	WallpaperPattern       PatternKind        `json:"wallpaperPattern,omitempty" validate:"omitempty,oneof=dots grid"`
	WallpaperImageURL      string             `json:"wallpaperImageUrl,omitempty"`
	WallpaperVideoURL      string             `json:"wallpaperVideoUrl,omitempty"`
	ButtonColor            Color              `json:"buttonColor" validate:"themecolor"`
	ButtonTextColor        Color              `json:"buttonTextColor" validate:"themecolor"`
	ButtonStyle            ButtonStyle        `json:"buttonStyle" validate:"oneof=rounded square pill"`
	ButtonStyleType        ButtonStyleType    `json:"buttonStyleType,omitempty" validate:"omitempty,oneof=solid glass outline"`
	ButtonCornerRadius     *int               `json:"buttonCornerRadius,omitempty" validate:"omitnil,gte=0"`
	ButtonShadow           ButtonShadow       `json:"buttonShadow,omitempty" validate:"omitempty,oneof=none subtle strong hard"`
	ButtonBorder           string             `json:"buttonBorder,omitempty"`
	FontFamily             FontFamily         `json:"fontFamily" validate:"oneof=sans serif mono"`
	TitleFont              string             `json:"titleFont"`
	TitleColor             Color              `json:"titleColor" validate:"themecolor"`
	TitleSize              TitleSize          `json:"titleSize" validate:"oneof=small large"`
	TitleStyle             TitleStyle         `json:"titleStyle" validate:"oneof=text logo"`
	ProfileImageLayout     ProfileImageLayout `json:"profileImageLayout" validate:"oneof=classic hero"`
}

// DefaultTheme returns the theme every unset field is filled from.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor:    "#ffffff",
		WallpaperStyle:     WallpaperSolid,
		Wallpaper:          "#ffffff",
		ButtonColor:        "#000000",
		ButtonTextColor:    "#ffffff",
		ButtonStyle:        ButtonRounded,
		FontFamily:         FontSans,
		TitleFont:          "Link Sans",
		TitleColor:         "#000000",
		TitleSize:          TitleSmall,
		TitleStyle:         TitleText,
		ProfileImageLayout: ProfileClassic,
	}
}

// Normalize fills every field raw leaves unset from DefaultTheme. Values are
// kept as given, including unknown enum names and malformed colors.
func Normalize(raw ThemePatch) Theme {
	return DefaultTheme().Apply(raw.compact())
}

// Apply returns a copy of t with exactly the fields declared by p overwritten.
func (t Theme) Apply(p ThemePatch) Theme {
	setColor(&t.BackgroundColor, p.BackgroundColor)
	if p.WallpaperStyle != nil {
		t.WallpaperStyle = WallpaperStyle(*p.WallpaperStyle)
	}
	setString(&t.Wallpaper, p.Wallpaper)
	setColor(&t.WallpaperGradientStart, p.WallpaperGradientStart)
	setColor(&t.WallpaperGradientEnd, p.WallpaperGradientEnd)
	if p.WallpaperPattern != nil {
		t.WallpaperPattern = PatternKind(*p.WallpaperPattern)
	}
	setString(&t.WallpaperImageURL, p.WallpaperImageURL)
	setString(&t.WallpaperVideoURL, p.WallpaperVideoURL)
	setColor(&t.ButtonColor, p.ButtonColor)
	setColor(&t.ButtonTextColor, p.ButtonTextColor)
	if p.ButtonStyle != nil {
		t.ButtonStyle = ButtonStyle(*p.ButtonStyle)
	}
	if p.ButtonStyleType != nil {
		t.ButtonStyleType = ButtonStyleType(*p.ButtonStyleType)
	}
	if p.ButtonCornerRadius != nil {
		r := *p.ButtonCornerRadius
		t.ButtonCornerRadius = &r
	}
	if p.ButtonShadow != nil {
		t.ButtonShadow = ButtonShadow(*p.ButtonShadow)
	}
	setString(&t.ButtonBorder, p.ButtonBorder)
	if p.FontFamily != nil {
		t.FontFamily = FontFamily(*p.FontFamily)
	}
	setString(&t.TitleFont, p.TitleFont)
	setColor(&t.TitleColor, p.TitleColor)
	if p.TitleSize != nil {
		t.TitleSize = TitleSize(*p.TitleSize)
	}
	if p.TitleStyle != nil {
		t.TitleStyle = TitleStyle(*p.TitleStyle)
	}
	if p.ProfileImageLayout != nil {
		t.ProfileImageLayout = ProfileImageLayout(*p.ProfileImageLayout)
	}
	return t
}

// Clone returns a deep copy of the theme.
func (t Theme) Clone() Theme {
	if t.ButtonCornerRadius != nil {
		r := *t.ButtonCornerRadius
		t.ButtonCornerRadius = &r
	}
	return t
}

// Equal reports whether two themes hold the same values.
func (t Theme) Equal(o Theme) bool {
	a, b := t, o
	a.ButtonCornerRadius, b.ButtonCornerRadius = nil, nil
	if a != b {
		return false
	}
	switch {
	case t.ButtonCornerRadius == nil && o.ButtonCornerRadius == nil:
		return true
	case t.ButtonCornerRadius == nil || o.ButtonCornerRadius == nil:
		return false
	default:
		return *t.ButtonCornerRadius == *o.ButtonCornerRadius
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setColor(dst *Color, v *string) {
	if v != nil {
		*dst = Color(*v)
	}
}
