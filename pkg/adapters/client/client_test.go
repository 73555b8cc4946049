package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
	"github.com/wadjakorntonsri/go-linkpage/pkg/ports"
)

var _ ports.ProfileGateway = (*Client)(nil)

func newServer(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", "tok", 0)
}

func TestGetProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users/{username}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("username") != "ada" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"profile not found"}`))
			return
		}
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Correlation-ID"))
		_ = json.NewEncoder(w).Encode(domain.Profile{
			User:  domain.User{ID: 7, Username: "ada"},
			Links: []domain.Link{{ID: 1, Title: "Site", URL: "https://example.com", IsActive: true}},
			Theme: domain.DefaultTheme(),
		})
	})
	c := newServer(t, mux)

	p, err := c.GetProfile(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	assert.Len(t, p.Links, 1)
	assert.Equal(t, domain.DefaultTheme(), p.Theme)

	_, err = c.GetProfile(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestCreateLinkSendsInput(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/links", func(w http.ResponseWriter, r *http.Request) {
		var in domain.LinkInput
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Link{ID: 42, UserID: in.UserID, Title: in.Title, URL: in.URL, Position: 3})
	})
	c := newServer(t, mux)

	l, err := c.CreateLink(context.Background(), domain.LinkInput{UserID: 7, Title: "Site", URL: "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), l.ID)
	assert.Equal(t, "Site", l.Title)
}

func TestReorderBodyShape(t *testing.T) {
	var got map[string][]domain.LinkPosition
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/links/reorder", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	c := newServer(t, mux)

	positions := []domain.LinkPosition{{ID: 2, Position: 0}, {ID: 1, Position: 1}}
	require.NoError(t, c.ReorderLinks(context.Background(), positions))
	assert.Equal(t, positions, got["links"])
}

func TestErrorsAreNetworkErrors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/links/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"validation failed","fields":{"title":"is required"}}`))
	})
	mux.HandleFunc("DELETE /api/links/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("PUT /api/themes/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c := newServer(t, mux)
	ctx := context.Background()

	_, err := c.UpdateLink(ctx, 1, domain.LinkInput{})
	var ne *domain.NetworkError
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, http.StatusBadRequest, ne.Status)
	assert.True(t, domain.IsValidation(err))

	err = c.DeleteLink(ctx, 1)
	require.True(t, errors.As(err, &ne))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = c.SaveTheme(ctx, 1, domain.ThemeRecord{})
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, http.StatusInternalServerError, ne.Status)
}

func TestUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	err := New(base, "", 0).DeleteLink(context.Background(), 1)
	var ne *domain.NetworkError
	require.True(t, errors.As(err, &ne))
	assert.Zero(t, ne.Status)
	assert.Equal(t, "delete link", ne.Op)
}

func TestPreviewReturnsHTML(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/preview", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada", body["username"])
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<div data-role="page"></div>`))
	})
	c := newServer(t, mux)

	out, err := c.Preview(context.Background(), domain.Profile{User: domain.User{Username: "ada"}, Theme: domain.DefaultTheme()})
	require.NoError(t, err)
	assert.Equal(t, `<div data-role="page"></div>`, out)
}
