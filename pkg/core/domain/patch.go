package domain

// ThemePatch is a partial Theme. A field is declared when its pointer is
// non-nil, regardless of the value it points to.
type ThemePatch struct {
	BackgroundColor        *string `json:"backgroundColor,omitempty"`
	WallpaperStyle         *string `json:"wallpaperStyle,omitempty"`
	Wallpaper              *string `json:"wallpaper,omitempty"`
	WallpaperGradientStart *string `json:"wallpaperGradientStart,omitempty"`
	WallpaperGradientEnd   *string `json:"wallpaperGradientEnd,omitempty"`
	WallpaperPattern       *string `json:"wallpaperPattern,omitempty"`
	WallpaperImageURL      *string `json:"wallpaperImageUrl,omitempty"`
	WallpaperVideoURL      *string `json:"wallpaperVideoUrl,omitempty"`
	ButtonColor            *string `json:"buttonColor,omitempty"`
	ButtonTextColor        *string `json:"buttonTextColor,omitempty"`
	ButtonStyle            *string `json:"buttonStyle,omitempty"`
	ButtonStyleType        *string `json:"buttonStyleType,omitempty"`
	ButtonCornerRadius     *int    `json:"buttonCornerRadius,omitempty"`
	ButtonShadow           *string `json:"buttonShadow,omitempty"`
	ButtonBorder           *string `json:"buttonBorder,omitempty"`
	FontFamily             *string `json:"fontFamily,omitempty"`
	TitleFont              *string `json:"titleFont,omitempty"`
	TitleColor             *string `json:"titleColor,omitempty"`
	TitleSize              *string `json:"titleSize,omitempty"`
	TitleStyle             *string `json:"titleStyle,omitempty"`
	ProfileImageLayout     *string `json:"profileImageLayout,omitempty"`
}

// Fields returns the JSON names of the declared fields in declaration order.
func (p ThemePatch) Fields() []string {
	var out []string
	add := func(name string, declared bool) {
		if declared {
			out = append(out, name)
		}
	}
	add("backgroundColor", p.BackgroundColor != nil)
	add("wallpaperStyle", p.WallpaperStyle != nil)
	add("wallpaper", p.Wallpaper != nil)
	add("wallpaperGradientStart", p.WallpaperGradientStart != nil)
	add("wallpaperGradientEnd", p.WallpaperGradientEnd != nil)
	add("wallpaperPattern", p.WallpaperPattern != nil)
	add("wallpaperImageUrl", p.WallpaperImageURL != nil)
	add("wallpaperVideoUrl", p.WallpaperVideoURL != nil)
	add("buttonColor", p.ButtonColor != nil)
	add("buttonTextColor", p.ButtonTextColor != nil)
	add("buttonStyle", p.ButtonStyle != nil)
	add("buttonStyleType", p.ButtonStyleType != nil)
	add("buttonCornerRadius", p.ButtonCornerRadius != nil)
	add("buttonShadow", p.ButtonShadow != nil)
	add("buttonBorder", p.ButtonBorder != nil)
	add("fontFamily", p.FontFamily != nil)
	add("titleFont", p.TitleFont != nil)
	add("titleColor", p.TitleColor != nil)
	add("titleSize", p.TitleSize != nil)
	add("titleStyle", p.TitleStyle != nil)
	add("profileImageLayout", p.ProfileImageLayout != nil)
	return out
}

// compact drops declared-but-empty string fields so that loosely populated
// records ("" for unset) fall back to defaults during normalization.
func (p ThemePatch) compact() ThemePatch {
	for _, f := range []**string{
		&p.BackgroundColor, &p.WallpaperStyle, &p.Wallpaper, &p.WallpaperGradientStart,
		&p.WallpaperGradientEnd, &p.WallpaperPattern, &p.WallpaperImageURL, &p.WallpaperVideoURL,
		&p.ButtonColor, &p.ButtonTextColor, &p.ButtonStyle, &p.ButtonStyleType, &p.ButtonShadow,
		&p.ButtonBorder, &p.FontFamily, &p.TitleFont, &p.TitleColor, &p.TitleSize, &p.TitleStyle,
		&p.ProfileImageLayout,
	} {
		if *f != nil && **f == "" {
			*f = nil
		}
	}
	return p
}

// Str returns a pointer to s. It keeps patch literals short.
func Str(s string) *string {
	return &s
}

// Int returns a pointer to n.
func Int(n int) *int {
	return &n
}
