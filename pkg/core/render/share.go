package render

import (
	"net/url"
	"strings"
)

// ShareLinks are the ways a published page can be passed on.
type ShareLinks struct {
	Public   string `json:"public"`
	Twitter  string `json:"twitter"`
	Facebook string `json:"facebook"`
	LinkedIn string `json:"linkedin"`
	WhatsApp string `json:"whatsapp"`
}

// PublicURL is the address of a user's published page.
func PublicURL(baseURL, username string) string {
	return strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(username)
}

// ShareURLs builds the social share intents for a public page URL.
func ShareURLs(publicURL string) ShareLinks {
	return ShareLinks{
		Public:   publicURL,
		Twitter:  "https://twitter.com/intent/tweet?text=" + encodeComponent("Check out my links at "+publicURL),
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + encodeComponent(publicURL),
		LinkedIn: "https://www.linkedin.com/sharing/share-offsite/?url=" + encodeComponent(publicURL),
		WhatsApp: "https://wa.me/?text=" + encodeComponent("Check out my links: "+publicURL),
	}
}

// encodeComponent escapes s for a query value with spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
