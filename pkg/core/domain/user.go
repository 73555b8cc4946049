package domain

import "time"

// User owns one public page.
type User struct {
	ID              int64     `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email,omitempty"`
	Name            string    `json:"name"`
	Bio             string    `json:"bio"`
	ProfileImageURL string    `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt,omitzero"`
	UpdatedAt       time.Time `json:"updatedAt,omitzero"`
}

// DisplayName returns the name shown as the page title.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return "@" + u.Username
}

// Profile is a user together with their links and theme, as served to the
// editor and the public page.
type Profile struct {
	User
	Links []Link `json:"links"`
	Theme Theme  `json:"theme"`
}

// ProfileUpdate is the editable part of a user record.
type ProfileUpdate struct {
	Name            string `json:"name"`
	Bio             string `json:"bio"`
	ProfileImageURL string `json:"profile_image_url"`
}
