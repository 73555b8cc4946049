package domain

import "strconv"

// Default gradient stops used when a gradient wallpaper is missing one.
const (
	DefaultGradientStart Color = "#6b2ff5"
	DefaultGradientEnd   Color = "#ff3a9d"
	DefaultGradientAngle       = 135
)

// Wallpaper is the active wallpaper configuration. The concrete types are
// SolidWallpaper, GradientWallpaper, BlurWallpaper, PatternWallpaper,
// ImageWallpaper and VideoWallpaper; each carries only its own fields.
type Wallpaper interface {
	Style() WallpaperStyle
	// write stores the variant's fields into the flat theme shape.
	write(t *Theme)
}

// SolidWallpaper paints the page with a CSS background value.
type SolidWallpaper struct {
	Fill string
}

// GradientWallpaper is a two-stop linear gradient.
type GradientWallpaper struct {
	Start Color
	End   Color
	Angle int
}

// BlurWallpaper composites a translucent blur layer above a fill.
type BlurWallpaper struct {
	Fill string
}

// PatternWallpaper is a repeating motif over a tint color.
type PatternWallpaper struct {
	Kind PatternKind
	Tint string
}

// ImageWallpaper shows an image full-bleed. An empty URL renders nothing.
type ImageWallpaper struct {
	URL string
}

// VideoWallpaper plays a looping muted video full-bleed.
type VideoWallpaper struct {
	URL string
}

func (SolidWallpaper) Style() WallpaperStyle    { return WallpaperSolid }
func (GradientWallpaper) Style() WallpaperStyle { return WallpaperGradient }
func (BlurWallpaper) Style() WallpaperStyle     { return WallpaperBlur }
func (PatternWallpaper) Style() WallpaperStyle  { return WallpaperPattern }
func (ImageWallpaper) Style() WallpaperStyle    { return WallpaperImage }
func (VideoWallpaper) Style() WallpaperStyle    { return WallpaperVideo }

func (w SolidWallpaper) write(t *Theme) {
	t.Wallpaper = w.Fill
	if Color(w.Fill).WellFormed() {
		t.BackgroundColor = Color(w.Fill)
	}
}

func (w GradientWallpaper) write(t *Theme) {
	t.WallpaperGradientStart = w.Start
	t.WallpaperGradientEnd = w.End
	t.Wallpaper = w.CSS()
	if !w.Start.IsZero() {
		t.BackgroundColor = w.Start
	}
}

func (w BlurWallpaper) write(t *Theme) {
	t.Wallpaper = w.Fill
	if Color(w.Fill).WellFormed() {
		t.BackgroundColor = Color(w.Fill)
	}
}

func (w PatternWallpaper) write(t *Theme) {
	t.WallpaperPattern = w.Kind
	t.Wallpaper = w.Tint
}

func (w ImageWallpaper) write(t *Theme) {
	t.WallpaperImageURL = w.URL
}

func (w VideoWallpaper) write(t *Theme) {
	t.WallpaperVideoURL = w.URL
}

// Stops returns the gradient stops with defaults substituted for missing ones.
func (w GradientWallpaper) Stops() (Color, Color) {
	start, end := w.Start, w.End
	if start.IsZero() {
		start = DefaultGradientStart
	}
	if end.IsZero() {
		end = DefaultGradientEnd
	}
	return start, end
}

// CSS returns the gradient as a CSS background value.
func (w GradientWallpaper) CSS() string {
	start, end := w.Stops()
	angle := w.Angle
	if angle == 0 {
		angle = DefaultGradientAngle
	}
	return "linear-gradient(" + strconv.Itoa(angle) + "deg, " + start.String() + " 0%, " + end.String() + " 100%)"
}

// ActiveWallpaper returns the wallpaper variant selected by WallpaperStyle,
// populated from its field group. Unknown styles resolve to solid.
func (t Theme) ActiveWallpaper() Wallpaper {
	fill := t.Wallpaper
	if fill == "" {
		fill = t.BackgroundColor.String()
	}

	switch ParseWallpaperStyle(string(t.WallpaperStyle)) {
	case WallpaperGradient:
		return GradientWallpaper{Start: t.WallpaperGradientStart, End: t.WallpaperGradientEnd, Angle: DefaultGradientAngle}
	case WallpaperBlur:
		return BlurWallpaper{Fill: fill}
	case WallpaperPattern:
		return PatternWallpaper{Kind: ParsePatternKind(string(t.WallpaperPattern)), Tint: fill}
	case WallpaperImage:
		return ImageWallpaper{URL: t.WallpaperImageURL}
	case WallpaperVideo:
		return VideoWallpaper{URL: t.WallpaperVideoURL}
	default:
		return SolidWallpaper{Fill: fill}
	}
}

// SetWallpaper switches the theme to w's style and stores w's fields. Field
// groups of other styles are left untouched.
func (t Theme) SetWallpaper(w Wallpaper) Theme {
	t = t.Clone()
	t.WallpaperStyle = w.Style()
	w.write(&t)
	return t
}
