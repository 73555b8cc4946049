package domain

import "time"

// LinkLayout selects the structural template used to render a link entry.
type LinkLayout string

const (
	LayoutDefault   LinkLayout = "default"
	LayoutIconOnly  LinkLayout = "icon-only"
	LayoutThumbnail LinkLayout = "thumbnail"
	LayoutCard      LinkLayout = "card"
	LayoutMinimal   LinkLayout = "minimal"
	LayoutFeatured  LinkLayout = "featured"
)

// Layouts lists every supported layout in editor order.
var Layouts = []LinkLayout{LayoutDefault, LayoutIconOnly, LayoutThumbnail, LayoutCard, LayoutMinimal, LayoutFeatured}

// ParseLayout maps a stored layout name to a known layout, falling back to default.
func ParseLayout(s string) LinkLayout {
	switch l := LinkLayout(s); l {
	case LayoutDefault, LayoutIconOnly, LayoutThumbnail, LayoutCard, LayoutMinimal, LayoutFeatured:
		return l
	default:
		return LayoutDefault
	}
}

// Link represents one entry on a user's public page
type Link struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId,omitempty"`
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	Icon      *string    `json:"icon"`
	Layout    LinkLayout `json:"layout,omitempty"`
	Position  int        `json:"position"`
	Clicks    int64      `json:"clicks"` // owned by click tracking, read-only elsewhere
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt,omitzero"`
	UpdatedAt time.Time  `json:"updatedAt,omitzero"`
}

// Pending reports whether the link has not been assigned an id by storage yet.
func (l Link) Pending() bool {
	return l.ID == 0
}

// IconKey returns the icon key or "" when the link has none.
func (l Link) IconKey() string {
	if l.Icon == nil || *l.Icon == "none" {
		return ""
	}
	return *l.Icon
}

// LinkPosition is one entry of a reorder request.
type LinkPosition struct {
	ID       int64 `json:"id"`
	Position int   `json:"position"`
}

// IconPtr turns an editor icon value into the stored form ("none" and "" mean no icon).
func IconPtr(icon string) *string {
	if icon == "" || icon == "none" {
		return nil
	}
	return &icon
}

// LinkInput is the create/update request body for a link.
type LinkInput struct {
	UserID   int64   `json:"user_id,omitempty"`
	Title    string  `json:"title" validate:"required"`
	URL      string  `json:"url" validate:"required"`
	Icon     *string `json:"icon"`
	Layout   string  `json:"layout,omitempty" validate:"omitempty,oneof=default icon-only thumbnail card minimal featured"`
	Position *int    `json:"position,omitempty" validate:"omitnil,gte=0"`
}

// Input returns the request body that creates or updates l.
func (l Link) Input() LinkInput {
	pos := l.Position
	return LinkInput{
		UserID:   l.UserID,
		Title:    l.Title,
		URL:      l.URL,
		Icon:     l.Icon,
		Layout:   string(l.Layout),
		Position: &pos,
	}
}
