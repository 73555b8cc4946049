package domain

// ThemeRecord is the flat snake_case shape exchanged with storage and with
// the theme update endpoint. Stored records may mix fields from several
// wallpaper styles and may leave any field empty.
type ThemeRecord struct {
	BackgroundColor        string `json:"background_color"`
	ButtonColor            string `json:"button_color"`
	ButtonTextColor        string `json:"button_text_color"`
	ButtonStyle            string `json:"button_style"`
	ButtonStyleType        string `json:"button_style_type,omitempty"`
	ButtonCornerRadius     *int   `json:"button_corner_radius,omitempty"`
	ButtonShadow           string `json:"button_shadow,omitempty"`
	ButtonBorder           string `json:"button_border,omitempty"`
	FontFamily             string `json:"font_family"`
	ProfileImageLayout     string `json:"profile_image_layout"`
	TitleStyle             string `json:"title_style"`
	TitleFont              string `json:"title_font"`
	TitleColor             string `json:"title_color"`
	TitleSize              string `json:"title_size"`
	Wallpaper              string `json:"wallpaper"`
	WallpaperStyle         string `json:"wallpaper_style"`
	WallpaperGradientStart string `json:"wallpaper_gradient_start,omitempty"`
	WallpaperGradientEnd   string `json:"wallpaper_gradient_end,omitempty"`
	WallpaperPattern       string `json:"wallpaper_pattern,omitempty"`
	WallpaperImageURL      string `json:"wallpaper_image_url,omitempty"`
	WallpaperVideoURL      string `json:"wallpaper_video_url,omitempty"`
}

// Record converts the theme to its storage shape.
func (t Theme) Record() ThemeRecord {
	rec := ThemeRecord{
		BackgroundColor:        string(t.BackgroundColor),
		ButtonColor:            string(t.ButtonColor),
		ButtonTextColor:        string(t.ButtonTextColor),
		ButtonStyle:            string(t.ButtonStyle),
		ButtonStyleType:        string(t.ButtonStyleType),
		ButtonShadow:           string(t.ButtonShadow),
		ButtonBorder:           t.ButtonBorder,
		FontFamily:             string(t.FontFamily),
		ProfileImageLayout:     string(t.ProfileImageLayout),
		TitleStyle:             string(t.TitleStyle),
		TitleFont:              t.TitleFont,
		TitleColor:             string(t.TitleColor),
		TitleSize:              string(t.TitleSize),
		Wallpaper:              t.Wallpaper,
		WallpaperStyle:         string(t.WallpaperStyle),
		WallpaperGradientStart: string(t.WallpaperGradientStart),
		WallpaperGradientEnd:   string(t.WallpaperGradientEnd),
		WallpaperPattern:       string(t.WallpaperPattern),
		WallpaperImageURL:      t.WallpaperImageURL,
		WallpaperVideoURL:      t.WallpaperVideoURL,
	}
	if t.ButtonCornerRadius != nil {
		r := *t.ButtonCornerRadius
		rec.ButtonCornerRadius = &r
	}
	return rec
}

// Patch returns the record as a partial theme; empty fields are undeclared.
func (r ThemeRecord) Patch() ThemePatch {
	opt := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}
	p := ThemePatch{
		BackgroundColor:        opt(r.BackgroundColor),
		WallpaperStyle:         opt(r.WallpaperStyle),
		Wallpaper:              opt(r.Wallpaper),
		WallpaperGradientStart: opt(r.WallpaperGradientStart),
		WallpaperGradientEnd:   opt(r.WallpaperGradientEnd),
		WallpaperPattern:       opt(r.WallpaperPattern),
		WallpaperImageURL:      opt(r.WallpaperImageURL),
		WallpaperVideoURL:      opt(r.WallpaperVideoURL),
		ButtonColor:            opt(r.ButtonColor),
		ButtonTextColor:        opt(r.ButtonTextColor),
		ButtonStyle:            opt(r.ButtonStyle),
		ButtonStyleType:        opt(r.ButtonStyleType),
		ButtonShadow:           opt(r.ButtonShadow),
		ButtonBorder:           opt(r.ButtonBorder),
		FontFamily:             opt(r.FontFamily),
		TitleFont:              opt(r.TitleFont),
		TitleColor:             opt(r.TitleColor),
		TitleSize:              opt(r.TitleSize),
		TitleStyle:             opt(r.TitleStyle),
		ProfileImageLayout:     opt(r.ProfileImageLayout),
	}
	if r.ButtonCornerRadius != nil {
		n := *r.ButtonCornerRadius
		p.ButtonCornerRadius = &n
	}
	return p
}

// ThemeFromRecord normalizes a stored record into a full theme.
func ThemeFromRecord(r ThemeRecord) Theme {
	return Normalize(r.Patch())
}
