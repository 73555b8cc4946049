package presets

import "github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"

type presentationEntry struct {
	name                      string
	background, wallpaper     string
	button, buttonText, shape string
	titleColor, titleFont     string
}

var presentationEntries = []presentationEntry{
	{"Light", "#ffffff", "#ffffff", "#000000", "#ffffff", "rounded", "#000000", "Arial"},
	{"Dark", "#1a1a1a", "#1a1a1a", "#ffffff", "#000000", "rounded", "#ffffff", "Arial"},
	{"Agate", "#1a4d3e", "linear-gradient(135deg, #1a4d3e 0%, #2d7a5f 100%)", "#d4ff00", "#000000", "rounded", "#d4ff00", "Arial"},
	{"Air", "#f5f5f7", "#f5f5f7", "#ffffff", "#000000", "rounded", "#000000", "Arial"},
	{"Astrid", "#0a0a0a", "#0a0a0a", "#1a1a1a", "#ffffff", "rounded", "#ffffff", "Arial"},
	{"Aura", "#e8e4dc", "#e8e4dc", "#f5f1e8", "#333333", "rounded", "#333333", "Georgia"},
	{"Bliss", "#f8f8f8", "linear-gradient(180deg, #4a4a4a 0%, #f8f8f8 50%)", "#ffffff", "#000000", "rounded", "#000000", "Arial"},
	{"Blocks", "#6b2ff5", "linear-gradient(180deg, #6b2ff5 0%, #ff3a9d 100%)", "#ff3a9d", "#ffffff", "rounded", "#ffffff", "Arial"},
	{"Bloom", "#8b4fc7", "linear-gradient(135deg, #ff4757 0%, #8b4fc7 100%)", "#ffffff", "#8b4fc7", "pill", "#ffffff", "Arial"},
	{"Breeze", "#ffb3d9", "linear-gradient(180deg, #ffb3d9 0%, #ffd9ec 100%)", "#ffd9ec", "#8b4789", "rounded", "#8b4789", "Arial"},
	{"Encore", "#1a1a1a", "#1a1a1a", "#0a0a0a", "#d4a574", "rounded", "#d4a574", "Georgia"},
	{"Grid", "#d4e89e", "#d4e89e", "#ffffff", "#000000", "pill", "#000000", "Arial"},
	{"Groove", "#ff6b9d", "linear-gradient(45deg, #ff6b9d 0%, #c471ed 50%, #12c2e9 100%)", "rgba(255, 255, 255, 0.2)", "#ffffff", "pill", "#ffffff", "Arial"},
	{"Haven", "#a08968", "linear-gradient(180deg, #a08968 0%, #f5f1e8 50%)", "#e8dcc8", "#5a4a3a", "rounded", "#5a4a3a", "Georgia"},
	{"Lake", "#0a1929", "#0a1929", "#132f4c", "#ffffff", "rounded", "#ffffff", "Arial"},
	{"Mineral", "#f5f1e8", "linear-gradient(180deg, #f5f1e8 0%, #e8dcc8 100%)", "#e8dcc8", "#5a4a3a", "rounded", "#5a4a3a", "Georgia"},
	{"Nourish", "#6b7c3a", "linear-gradient(180deg, #6b7c3a 0%, #d4e89e 50%)", "#d4e89e", "#3a4a1a", "pill", "#d4e89e", "Arial"},
	{"Rise", "#ff8a65", "linear-gradient(135deg, #ff8a65 0%, #ffab91 100%)", "#ffccbc", "#bf360c", "pill", "#ffffff", "Arial"},
	{"Sweat", "#2196f3", "linear-gradient(135deg, #ff4081 0%, #2196f3 100%)", "#64b5f6", "#ffffff", "pill", "#ffffff", "Arial"},
	{"Tress", "#8b7355", "linear-gradient(180deg, #8b7355 0%, #d4c4aa 50%)", "#d4c4aa", "#5a4a3a", "rounded", "#5a4a3a", "Georgia"},
	{"Twilight", "#4a5568", "linear-gradient(135deg, #4a5568 0%, #9f7aea 100%)", "#d8b4fe", "#4c1d95", "pill", "#ffffff", "Arial"},
}

type buttonFontEntry struct {
	name, icon, description   string
	shape, button, buttonText string
	border, titleFont         string
}

var buttonFontEntries = []buttonFontEntry{
	{"Custom", "Palette", "Customize your own style", "rounded", "#ffffff", "#000000", "2px solid transparent", "Arial"},
	{"Minimal", "", "Clean and simple outlined buttons", "rounded", "transparent", "#000000", "2px solid #000000", "Arial"},
	{"Classic", "", "Timeless white buttons with serif font", "rounded", "#ffffff", "#000000", "none", "Georgia"},
	{"Unique", "", "Soft rounded corners with sans-serif", "rounded", "#ffffff", "#000000", "none", "Arial"},
	{"Zen", "", "Smooth pill-shaped buttons", "pill", "#ffffff", "#000000", "none", "Arial"},
	{"Simple", "", "Easy on the eyes", "pill", "#ffffff", "#000000", "none", "Verdana"},
	{"Precise", "", "Sharp corners and defined edges", "square", "transparent", "#000000", "2px solid #000000", "Arial"},
	{"Retro", "", "Bold vintage style", "pill", "#000000", "#ffffff", "3px solid #000000", "Arial"},
	{"Modern", "", "Contemporary and sleek", "pill", "#f5f5f5", "#000000", "none", "Arial"},
	{"Industrial", "", "Technical monospace look", "pill", "transparent", "#000000", "2px solid #000000", "Courier New"},
}

// Presentation returns the curated full-look presets. Each declares the page
// background and wallpaper, button colors and shape, and title color and font.
func Presentation() []Preset {
	out := make([]Preset, 0, len(presentationEntries))
	for _, e := range presentationEntries {
		out = append(out, Preset{
			Name:   e.name,
			Family: FamilyPresentation,
			Patch: domain.ThemePatch{
				BackgroundColor: domain.Str(e.background),
				Wallpaper:       domain.Str(e.wallpaper),
				ButtonColor:     domain.Str(e.button),
				ButtonTextColor: domain.Str(e.buttonText),
				ButtonStyle:     domain.Str(e.shape),
				TitleColor:      domain.Str(e.titleColor),
				TitleFont:       domain.Str(e.titleFont),
			},
		})
	}
	return out
}

// ButtonFont returns the button-and-font presets. They never touch the
// wallpaper or background.
func ButtonFont() []Preset {
	out := make([]Preset, 0, len(buttonFontEntries))
	for _, e := range buttonFontEntries {
		out = append(out, Preset{
			Name:        e.name,
			Family:      FamilyButtonFont,
			Description: e.description,
			Icon:        e.icon,
			Patch: domain.ThemePatch{
				ButtonStyle:     domain.Str(e.shape),
				ButtonColor:     domain.Str(e.button),
				ButtonTextColor: domain.Str(e.buttonText),
				ButtonBorder:    domain.Str(e.border),
				TitleFont:       domain.Str(e.titleFont),
			},
		})
	}
	return out
}

// Icon is a selectable link icon.
type Icon struct {
	Key   string `json:"value"`
	Label string `json:"label"`
}

// Icons lists the link icons an editor offers. "none" means no icon.
var Icons = []Icon{
	{"none", "No Icon"},
	{"Instagram", "Instagram"},
	{"Facebook", "Facebook"},
	{"Twitter", "Twitter / X"},
	{"Linkedin", "LinkedIn"},
	{"Youtube", "YouTube"},
	{"Github", "GitHub"},
	{"Globe", "Website"},
	{"Mail", "Email"},
	{"Phone", "Phone"},
	{"MessageCircle", "Message"},
	{"Music", "Music"},
	{"Camera", "Camera"},
	{"ShoppingBag", "Shop"},
	{"Link", "Link"},
	{"Twitch", "Twitch"},
	{"Discord", "Discord"},
	{"Slack", "Slack"},
	{"Figma", "Figma"},
	{"Dribbble", "Dribbble"},
	{"TiktokIcon", "TikTok"},
	{"Podcast", "Podcast"},
	{"Video", "Video"},
	{"MapPin", "Location"},
	{"Calendar", "Calendar"},
	{"BookOpen", "Blog"},
	{"Newspaper", "Newsletter"},
	{"Heart", "Favorite"},
	{"Star", "Featured"},
}

// KnownIcon reports whether key is in the icon catalog.
func KnownIcon(key string) bool {
	for _, i := range Icons {
		if i.Key == key {
			return true
		}
	}
	return false
}

// FontGroup is a titled group of title fonts.
type FontGroup struct {
	Label string   `json:"label"`
	Fonts []string `json:"fonts"`
}

var Fonts = []FontGroup{
	{"System Fonts", []string{"Arial", "Helvetica", "Times New Roman", "Georgia", "Courier New", "Verdana", "Trebuchet MS", "Comic Sans MS", "Impact"}},
	{"Sans Serif", []string{"Inter", "Roboto", "Open Sans", "Lato", "Montserrat", "Poppins", "Source Sans Pro", "Raleway", "Nunito", "Ubuntu", "Rubik", "Work Sans", "DM Sans", "Josefin Sans", "IBM Plex Sans", "Outfit", "Manrope", "Space Grotesk"}},
	{"Serif", []string{"Playfair Display", "Merriweather", "Lora", "PT Serif", "Crimson Text", "EB Garamond", "Libre Baskerville", "Cormorant Garamond"}},
	{"Display", []string{"Bebas Neue", "Pacifico", "Righteous", "Permanent Marker", "Lobster", "Anton", "Fjalla One", "Archivo Black"}},
	{"Monospace", []string{"Roboto Mono", "Source Code Pro", "JetBrains Mono", "Fira Code", "IBM Plex Mono", "Space Mono"}},
	{"Default", []string{"Link Sans"}},
}
