package handler

import (
	"errors"
	"net/http"

	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
	"github.com/wadjakorntonsri/go-linkpage/pkg/core/presets"
	"github.com/wadjakorntonsri/go-linkpage/pkg/core/render"
	"github.com/wadjakorntonsri/go-linkpage/pkg/ports"
	"go.uber.org/zap"
)

// PageHandler serves public pages, click redirects and rendering helpers.
type PageHandler struct {
	profiles ports.ProfileService
	links    ports.LinkService
	baseURL  string
	logger   *zap.Logger
}

// NewPageHandler builds the handler. An empty baseURL makes share links use
// the request's own host.
func NewPageHandler(profiles ports.ProfileService, links ports.LinkService, baseURL string, logger *zap.Logger) *PageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{profiles: profiles, links: links, baseURL: baseURL, logger: logger}
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// PublicPage renders a user's page as a full HTML document.
func (h *PageHandler) PublicPage(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.GetProfile(r.Context(), r.PathValue("username"))
	if errors.Is(err, domain.ErrProfileNotFound) {
		writeHTML(w, http.StatusNotFound, "<!DOCTYPE html><html><body><h1>Page not found</h1></body></html>")
		return
	}
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	writeHTML(w, http.StatusOK, render.Document(render.PageFor(*profile)))
}

// Click counts a visit and redirects to the link's destination.
func (h *PageHandler) Click(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	link, err := h.links.RecordClick(r.Context(), id, r.Referer(), r.UserAgent(), clientIP(r))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	http.Redirect(w, r, link.URL, http.StatusFound)
}

// Share returns the public URL of a page and its social share links.
func (h *PageHandler) Share(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.GetProfile(r.Context(), r.PathValue("username"))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	base := h.baseURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}
	writeJSON(w, http.StatusOK, render.ShareURLs(render.PublicURL(base, profile.Username)))
}

// CatalogResponse is the body of GET /api/presets.
type CatalogResponse struct {
	Presets []presets.Preset    `json:"presets"`
	Icons   []presets.Icon      `json:"icons"`
	Fonts   []presets.FontGroup `json:"fonts"`
}

// Presets lists the preset catalogs, optionally narrowed by ?family=.
func (h *PageHandler) Presets(w http.ResponseWriter, r *http.Request) {
	list := presets.All()
	if name := r.URL.Query().Get("family"); name != "" {
		family, ok := presets.ParseFamily(name)
		if !ok {
			respondError(w, r, h.logger, domain.NewValidationError("family", "must be presentation or button-font"))
			return
		}
		list = presets.Catalog(family)
	}
	writeJSON(w, http.StatusOK, CatalogResponse{Presets: list, Icons: presets.Icons, Fonts: presets.Fonts})
}

// PreviewRequest is the body of POST /api/preview. Links are shown unless
// isActive is explicitly false.
type PreviewRequest struct {
	Username        string            `json:"username"`
	Name            string            `json:"name"`
	Bio             string            `json:"bio"`
	ProfileImageURL string            `json:"profileImageUrl"`
	Theme           domain.ThemePatch `json:"theme"`
	Preset          string            `json:"preset,omitempty"`
	Links           []previewLink     `json:"links"`
}

type previewLink struct {
	domain.Link
	IsActive *bool `json:"isActive"`
}

// Preview renders the posted page without storing anything. With
// ?document=1 the response is a complete HTML document.
func (h *PageHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	theme := domain.Normalize(req.Theme)
	if req.Preset != "" {
		p, err := lookupAny(req.Preset)
		if err != nil {
			respondError(w, r, h.logger, err)
			return
		}
		theme = presets.Apply(theme, p)
	}

	links := make([]domain.Link, len(req.Links))
	for i, pl := range req.Links {
		l := pl.Link
		l.IsActive = pl.IsActive == nil || *pl.IsActive
		links[i] = l
	}

	page := render.Page{
		Username:        req.Username,
		Name:            req.Name,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
		Theme:           theme,
		Links:           links,
	}
	if r.URL.Query().Get("document") != "" {
		writeHTML(w, http.StatusOK, render.Document(page))
		return
	}
	writeHTML(w, http.StatusOK, render.HTML(render.RenderPage(page)))
}

// lookupAny finds a preset by name in either family.
func lookupAny(name string) (presets.Preset, error) {
	for _, f := range []presets.Family{presets.FamilyPresentation, presets.FamilyButtonFont} {
		if p, err := presets.Lookup(f, name); err == nil {
			return p, nil
		}
	}
	return presets.Preset{}, presets.ErrPresetNotFound
}
