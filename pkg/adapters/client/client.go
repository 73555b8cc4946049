// Package client talks to the link page API over HTTP. It implements
// ports.ProfileGateway for editing sessions running outside the server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
)

// Client is an API client authenticated with a session token.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// New creates a client for the API at baseURL. An empty token sends
// unauthenticated requests, which only work for reads.
func New(baseURL, token string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

type apiError struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (c *Client) GetProfile(ctx context.Context, username string) (*domain.Profile, error) {
	var p domain.Profile
	if err := c.doJSON(ctx, "get profile", http.MethodGet, "/api/users/"+url.PathEscape(username), nil, &p); err != nil {
		return nil, profileErr(err)
	}
	return &p, nil
}

func (c *Client) UpdateProfile(ctx context.Context, username string, in domain.ProfileUpdate) (*domain.User, error) {
	var u domain.User
	if err := c.doJSON(ctx, "update profile", http.MethodPut, "/api/users/"+url.PathEscape(username), in, &u); err != nil {
		return nil, profileErr(err)
	}
	return &u, nil
}

func (c *Client) CreateLink(ctx context.Context, in domain.LinkInput) (*domain.Link, error) {
	var l domain.Link
	if err := c.doJSON(ctx, "create link", http.MethodPost, "/api/links", in, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) UpdateLink(ctx context.Context, id int64, in domain.LinkInput) (*domain.Link, error) {
	var l domain.Link
	if err := c.doJSON(ctx, "update link", http.MethodPut, "/api/links/"+strconv.FormatInt(id, 10), in, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) DeleteLink(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "delete link", http.MethodDelete, "/api/links/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) ReorderLinks(ctx context.Context, positions []domain.LinkPosition) error {
	body := struct {
		Links []domain.LinkPosition `json:"links"`
	}{Links: positions}
	return c.doJSON(ctx, "reorder links", http.MethodPost, "/api/links/reorder", body, nil)
}

func (c *Client) SaveTheme(ctx context.Context, userID int64, theme domain.ThemeRecord) error {
	return c.doJSON(ctx, "save theme", http.MethodPut, "/api/themes/"+strconv.FormatInt(userID, 10), theme, nil)
}

// Preview asks the server to render a page without storing it.
func (c *Client) Preview(ctx context.Context, p domain.Profile) (string, error) {
	body := map[string]any{
		"username":        p.Username,
		"name":            p.Name,
		"bio":             p.Bio,
		"profileImageUrl": p.ProfileImageURL,
		"theme":           p.Theme.Record().Patch(),
		"links":           p.Links,
	}
	var out string
	err := c.do(ctx, "preview", http.MethodPost, "/api/preview", body, func(b []byte) error {
		out = string(b)
		return nil
	})
	return out, err
}

// profileErr turns a 404 into domain.ErrProfileNotFound.
func profileErr(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrProfileNotFound
	}
	return err
}

func (c *Client) doJSON(ctx context.Context, op, method, path string, body, result any) error {
	return c.do(ctx, op, method, path, body, func(b []byte) error {
		if result == nil || len(b) == 0 {
			return nil
		}
		if err := json.Unmarshal(b, result); err != nil {
			return &domain.NetworkError{Op: op, Err: fmt.Errorf("unmarshal response: %w", err)}
		}
		return nil
	})
}

// do sends one request. Every failure is reported as *domain.NetworkError;
// its Err is domain.ErrNotFound for 404 and *domain.ValidationError for 400.
func (c *Client) do(ctx context.Context, op, method, path string, body any, handle func([]byte) error) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &domain.NetworkError{Op: op, Err: fmt.Errorf("marshal request: %w", err)}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &domain.NetworkError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Correlation-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.NetworkError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode >= 400 {
		return &domain.NetworkError{Op: op, Status: resp.StatusCode, Err: statusErr(resp.StatusCode, respBody)}
	}
	return handle(respBody)
}

func statusErr(status int, body []byte) error {
	var ae apiError
	_ = json.Unmarshal(body, &ae)
	switch status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest:
		msg := ae.Error
		if msg == "" {
			msg = "bad request"
		}
		return &domain.ValidationError{Message: msg, Fields: ae.Fields}
	}
	if ae.Error != "" {
		return errors.New(ae.Error)
	}
	return errors.New(http.StatusText(status))
}
