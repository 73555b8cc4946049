package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
	"github.com/wadjakorntonsri/go-linkpage/pkg/ports"
	"go.uber.org/zap"
)

// HTTPHandler serves the JSON API used by the editor.
type HTTPHandler struct {
	profiles ports.ProfileService
	links    ports.LinkService
	themes   ports.ThemeService
	logger   *zap.Logger
}

func NewHTTPHandler(profiles ports.ProfileService, links ports.LinkService, themes ports.ThemeService, logger *zap.Logger) *HTTPHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPHandler{profiles: profiles, links: links, themes: themes, logger: logger}
}

// ReorderRequest is the body of POST /api/links/reorder.
type ReorderRequest struct {
	Links []domain.LinkPosition `json:"links"`
}

// SetActiveRequest is the body of PUT /api/links/{id}/active.
type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}

func (h *HTTPHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	respondError(w, r, h.logger, err)
}

// currentUser resolves the authenticated email to its account.
func (h *HTTPHandler) currentUser(r *http.Request) (*domain.User, error) {
	email := EmailFromContext(r.Context())
	if email == "" {
		return nil, errForbidden
	}
	user, err := h.profiles.GetUserByEmail(r.Context(), email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errForbidden
	}
	return user, err
}

// ownedLink loads link id and checks that the caller owns it.
func (h *HTTPHandler) ownedLink(r *http.Request, id int64) (*domain.Link, error) {
	user, err := h.currentUser(r)
	if err != nil {
		return nil, err
	}
	link, err := h.links.GetLink(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if link.UserID != user.ID {
		return nil, errForbidden
	}
	return link, nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// GetProfile returns a user with their links and normalized theme.
func (h *HTTPHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.GetProfile(r.Context(), r.PathValue("username"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	profile.Email = ""
	writeJSON(w, http.StatusOK, profile)
}

func (h *HTTPHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	user, err := h.currentUser(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if user.Username != username {
		h.fail(w, r, errForbidden)
		return
	}

	var req domain.ProfileUpdate
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	updated, err := h.profiles.UpdateProfile(r.Context(), username, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// CreateLink appends a link to the caller's page.
func (h *HTTPHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req domain.LinkInput
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if req.UserID == 0 {
		req.UserID = user.ID
	}
	if req.UserID != user.ID {
		h.fail(w, r, errForbidden)
		return
	}

	link, err := h.links.CreateLink(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

func (h *HTTPHandler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	existing, err := h.ownedLink(r, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req domain.LinkInput
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	req.UserID = existing.UserID

	link, err := h.links.UpdateLink(r.Context(), id, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (h *HTTPHandler) SetLinkActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if _, err := h.ownedLink(r, id); err != nil {
		h.fail(w, r, err)
		return
	}

	var req SetActiveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	link, err := h.links.SetActive(r.Context(), id, req.IsActive)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (h *HTTPHandler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if _, err := h.ownedLink(r, id); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.links.DeleteLink(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReorderLinks writes the posted positions. Every id must belong to the caller.
func (h *HTTPHandler) ReorderLinks(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	for _, p := range req.Links {
		if _, err := h.ownedLink(r, p.ID); err != nil {
			h.fail(w, r, err)
			return
		}
	}

	if err := h.links.ReorderLinks(r.Context(), req.Links); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// SaveTheme replaces the caller's theme with the posted record and returns
// the normalized result.
func (h *HTTPHandler) SaveTheme(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	user, err := h.currentUser(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if user.ID != userID {
		h.fail(w, r, errForbidden)
		return
	}

	var rec domain.ThemeRecord
	if err := decodeJSON(w, r, &rec); err != nil {
		h.fail(w, r, err)
		return
	}

	theme, err := h.themes.SaveTheme(r.Context(), userID, rec)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, theme)
}
