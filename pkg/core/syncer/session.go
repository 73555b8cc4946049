// Package syncer coordinates one user's editing session: mutations update
// local state at once and are persisted asynchronously through a
// ProfileGateway. Failed requests are logged and dropped; local state stays
// authoritative until the next Load.
package syncer

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/wadjakorntonsri/go-linkpage/pkg/core/collection"
	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
	"github.com/wadjakorntonsri/go-linkpage/pkg/core/presets"
	"github.com/wadjakorntonsri/go-linkpage/pkg/core/render"
	"github.com/wadjakorntonsri/go-linkpage/pkg/metrics"
	"github.com/wadjakorntonsri/go-linkpage/pkg/ports"
	"github.com/wadjakorntonsri/go-linkpage/pkg/validation"
)

var ErrNotLoaded = errors.New("session not loaded")

// Confirmer approves destructive operations.
type Confirmer interface {
	Confirm(ctx context.Context, link domain.Link) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, link domain.Link) bool

func (f ConfirmFunc) Confirm(ctx context.Context, link domain.Link) bool {
	return f(ctx, link)
}

// ColorPicker opens a color selection seeded with the current value.
// ok is false when the user dismissed the selection.
type ColorPicker interface {
	PickColor(ctx context.Context, current domain.Color) (c domain.Color, ok bool)
}

type Option func(*Session)

func WithDispatcher(d Dispatcher) Option {
	return func(s *Session) { s.dispatch = d }
}

func WithConfirmer(c Confirmer) Option {
	return func(s *Session) { s.confirm = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithThemeValidation checks themes before they are applied. In lenient
// mode nothing is rejected.
func WithThemeValidation(v *validation.Validator, mode validation.Mode) Option {
	return func(s *Session) {
		s.validator = v
		s.themeMode = mode
	}
}

// Session is the editing state of one user's page.
type Session struct {
	gw        ports.ProfileGateway
	dispatch  Dispatcher
	confirm   Confirmer
	log       *zap.Logger
	validator *validation.Validator
	themeMode validation.Mode

	mu     sync.Mutex
	loaded bool
	user   domain.User
	theme  domain.Theme
	links  collection.Collection
}

// New creates a session. Without options requests are unordered, nothing is
// logged and every deletion is refused.
func New(gw ports.ProfileGateway, opts ...Option) *Session {
	s := &Session{
		gw:        gw,
		dispatch:  NewUnordered(),
		confirm:   ConfirmFunc(func(context.Context, domain.Link) bool { return false }),
		log:       zap.NewNop(),
		validator: validation.New(),
		themeMode: validation.ModeLenient,
		theme:     domain.DefaultTheme(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches the profile and replaces all local state. It returns
// domain.ErrProfileNotFound when the user does not exist.
func (s *Session) Load(ctx context.Context, username string) error {
	p, err := s.gw.GetProfile(ctx, username)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = p.User
	s.theme = p.Theme
	s.links = collection.New(p.Links)
	s.loaded = true
	s.log.Debug("profile loaded", zap.String("username", username), zap.Int("links", s.links.Len()))
	return nil
}

// Wait blocks until every issued request has completed.
func (s *Session) Wait() {
	s.dispatch.Wait()
}

// Snapshot returns the current local state as a profile.
func (s *Session) Snapshot() domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Profile{User: s.user, Links: s.links.Links(), Theme: s.theme.Clone()}
}

// Preview returns the page input for the current local state.
func (s *Session) Preview() render.Page {
	return render.PageFor(s.Snapshot())
}

// PreviewHTML renders the current local state.
func (s *Session) PreviewHTML() string {
	return render.HTML(render.RenderPage(s.Preview()))
}

// send runs fn through the dispatcher. Errors are logged, counted and
// dropped. The request outlives ctx's cancellation.
func (s *Session) send(ctx context.Context, resource, op string, fn func(ctx context.Context) error) {
	ctx = context.WithoutCancel(ctx)
	s.dispatch.Dispatch(resource, func() {
		done := metrics.SyncStarted(op)
		err := fn(ctx)
		done(err)
		if err != nil {
			s.log.Warn("persistence request failed, keeping local state",
				zap.String("op", op),
				zap.Int64("user_id", s.userID()),
				zap.Error(err),
			)
		}
	})
}

func (s *Session) userID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.ID
}

// LinkEdit holds the editable fields of a link.
type LinkEdit struct {
	Title  string
	URL    string
	Icon   string
	Layout domain.LinkLayout
}

func (e LinkEdit) validate(v *validation.Validator) (LinkEdit, error) {
	e.Title = strings.TrimSpace(e.Title)
	e.URL = strings.TrimSpace(e.URL)
	if err := v.Struct(domain.LinkInput{Title: e.Title, URL: e.URL}); err != nil {
		return e, err
	}
	e.Layout = domain.ParseLayout(string(e.Layout))
	return e, nil
}

// AddLink appends a new active link and persists it. The returned link has
// no id until the create request is reconciled.
func (s *Session) AddLink(ctx context.Context, in LinkEdit) (domain.Link, error) {
	in, err := in.validate(s.validator)
	if err != nil {
		return domain.Link{}, err
	}

	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return domain.Link{}, ErrNotLoaded
	}
	s.links = s.links.Add(domain.Link{
		UserID:   s.user.ID,
		Title:    in.Title,
		URL:      in.URL,
		Icon:     domain.IconPtr(in.Icon),
		Layout:   in.Layout,
		IsActive: true,
	})
	local, _ := s.links.At(s.links.Len() - 1)
	s.mu.Unlock()

	s.send(ctx, ResourceLinks, "create_link", func(ctx context.Context) error {
		created, err := s.gw.CreateLink(ctx, local.Input())
		if err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		var ok bool
		if s.links, ok = s.links.ReconcileCreated(*created); !ok {
			s.log.Info("created link no longer present locally", zap.Int64("link_id", created.ID))
		}
		return nil
	})
	return local, nil
}

// EditLink updates a stored link's title, url, icon and layout. Use
// EditPendingLink for links without an id.
func (s *Session) EditLink(ctx context.Context, id int64, in LinkEdit) (domain.Link, error) {
	in, err := in.validate(s.validator)
	if err != nil {
		return domain.Link{}, err
	}

	s.mu.Lock()
	i := s.links.IndexOf(id)
	if id <= 0 || i < 0 {
		s.mu.Unlock()
		return domain.Link{}, domain.ErrNotFound
	}
	l, _ := s.links.At(i)
	l.Title, l.URL, l.Icon, l.Layout = in.Title, in.URL, domain.IconPtr(in.Icon), in.Layout
	s.links, _ = s.links.Replace(l)
	s.mu.Unlock()

	s.send(ctx, ResourceLinks, "update_link", func(ctx context.Context) error {
		updated, err := s.gw.UpdateLink(ctx, id, l.Input())
		if err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.links, _ = s.links.ReconcileUpdated(*updated)
		return nil
	})
	return l, nil
}

// EditPendingLink edits a link that has no id yet, addressed by index.
func (s *Session) EditPendingLink(index int, in LinkEdit) (domain.Link, error) {
	in, err := in.validate(s.validator)
	if err != nil {
		return domain.Link{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.links.At(index)
	if err != nil {
		return domain.Link{}, err
	}
	if !l.Pending() {
		return domain.Link{}, domain.NewValidationError("id", "link is already stored")
	}
	l.Title, l.URL, l.Icon, l.Layout = in.Title, in.URL, domain.IconPtr(in.Icon), in.Layout
	links := s.links.Links()
	links[index] = l
	s.links = collection.New(links)
	s.log.Warn("edited link before it was stored, change stays local", zap.Int("index", index))
	return l, nil
}

// DeleteLink removes a link after the confirmer approves. It reports
// whether the link was removed.
func (s *Session) DeleteLink(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	l, ok := s.links.Find(id)
	s.mu.Unlock()
	if id <= 0 || !ok {
		return false, domain.ErrNotFound
	}

	if !s.confirm.Confirm(ctx, l) {
		return false, nil
	}

	s.mu.Lock()
	s.links = s.links.Remove(id)
	s.mu.Unlock()

	s.send(ctx, ResourceLinks, "delete_link", func(ctx context.Context) error {
		return s.gw.DeleteLink(ctx, id)
	})
	return true, nil
}

// Reorder moves the link at from to index to and persists every position.
// Out of range indices return *domain.OutOfRangeError and change nothing.
func (s *Session) Reorder(ctx context.Context, from, to int) error {
	s.mu.Lock()
	next, err := s.links.Reorder(from, to)
	if err != nil || from == to {
		s.mu.Unlock()
		return err
	}
	s.links = next
	payload := next.PositionUpdates()
	s.mu.Unlock()

	s.sendReorder(ctx, payload)
	return nil
}

// Move drops the link activeID onto the slot of overID.
func (s *Session) Move(ctx context.Context, activeID, overID int64) error {
	if activeID == overID {
		return nil
	}
	s.mu.Lock()
	next, err := s.links.Move(activeID, overID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.links = next
	payload := next.PositionUpdates()
	s.mu.Unlock()

	s.sendReorder(ctx, payload)
	return nil
}

func (s *Session) sendReorder(ctx context.Context, payload []domain.LinkPosition) {
	s.send(ctx, ResourceLinks, "reorder_links", func(ctx context.Context) error {
		return s.gw.ReorderLinks(ctx, payload)
	})
}

// UpdateTheme applies a partial theme change and persists the whole theme.
func (s *Session) UpdateTheme(ctx context.Context, patch domain.ThemePatch) (domain.Theme, error) {
	s.mu.Lock()
	next := s.theme.Apply(patch)
	s.mu.Unlock()
	return s.SetTheme(ctx, next)
}

// SetTheme replaces the theme and persists it.
func (s *Session) SetTheme(ctx context.Context, t domain.Theme) (domain.Theme, error) {
	t, err := s.validator.Theme(t, s.themeMode)
	if err != nil {
		return domain.Theme{}, err
	}

	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return domain.Theme{}, ErrNotLoaded
	}
	s.theme = t.Clone()
	userID := s.user.ID
	s.mu.Unlock()

	rec := t.Record()
	s.send(ctx, ResourceTheme, "save_theme", func(ctx context.Context) error {
		return s.gw.SaveTheme(ctx, userID, rec)
	})
	return t, nil
}

// SetWallpaper switches the wallpaper style, keeping other styles' settings.
func (s *Session) SetWallpaper(ctx context.Context, w domain.Wallpaper) (domain.Theme, error) {
	s.mu.Lock()
	next := s.theme.SetWallpaper(w)
	s.mu.Unlock()
	return s.SetTheme(ctx, next)
}

// ApplyPreset merges a preset into the current theme.
func (s *Session) ApplyPreset(ctx context.Context, p presets.Preset) (domain.Theme, error) {
	s.mu.Lock()
	next := presets.Apply(s.theme, p)
	s.mu.Unlock()
	return s.SetTheme(ctx, next)
}

// PickColor asks picker for a new value of a color field and applies it.
// A dismissed picker leaves the theme unchanged.
func (s *Session) PickColor(ctx context.Context, field string, picker ColorPicker) (domain.Theme, error) {
	f, ok := colorFields[field]
	if !ok {
		return domain.Theme{}, domain.NewValidationError(field, "is not a color field")
	}

	s.mu.Lock()
	current := f.read(s.theme)
	s.mu.Unlock()

	c, ok := picker.PickColor(ctx, current)
	if !ok {
		return s.Snapshot().Theme, nil
	}
	return s.UpdateTheme(ctx, f.patch(c))
}

type colorField struct {
	read  func(domain.Theme) domain.Color
	patch func(domain.Color) domain.ThemePatch
}

var colorFields = map[string]colorField{
	"backgroundColor": {
		func(t domain.Theme) domain.Color { return t.BackgroundColor },
		func(c domain.Color) domain.ThemePatch {
			return domain.ThemePatch{BackgroundColor: domain.Str(c.String())}
		},
	},
	"buttonColor": {
		func(t domain.Theme) domain.Color { return t.ButtonColor },
		func(c domain.Color) domain.ThemePatch { return domain.ThemePatch{ButtonColor: domain.Str(c.String())} },
	},
	"buttonTextColor": {
		func(t domain.Theme) domain.Color { return t.ButtonTextColor },
		func(c domain.Color) domain.ThemePatch {
			return domain.ThemePatch{ButtonTextColor: domain.Str(c.String())}
		},
	},
	"titleColor": {
		func(t domain.Theme) domain.Color { return t.TitleColor },
		func(c domain.Color) domain.ThemePatch { return domain.ThemePatch{TitleColor: domain.Str(c.String())} },
	},
	"wallpaper": {
		func(t domain.Theme) domain.Color { return domain.Color(t.Wallpaper) },
		func(c domain.Color) domain.ThemePatch { return domain.ThemePatch{Wallpaper: domain.Str(c.String())} },
	},
	"wallpaperGradientStart": {
		func(t domain.Theme) domain.Color { return t.WallpaperGradientStart },
		func(c domain.Color) domain.ThemePatch {
			return domain.ThemePatch{WallpaperGradientStart: domain.Str(c.String())}
		},
	},
	"wallpaperGradientEnd": {
		func(t domain.Theme) domain.Color { return t.WallpaperGradientEnd },
		func(c domain.Color) domain.ThemePatch {
			return domain.ThemePatch{WallpaperGradientEnd: domain.Str(c.String())}
		},
	},
}

// UpdateProfile changes the display name, bio and profile image.
func (s *Session) UpdateProfile(ctx context.Context, in domain.ProfileUpdate) (domain.User, error) {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return domain.User{}, ErrNotLoaded
	}
	s.user.Name = in.Name
	s.user.Bio = in.Bio
	s.user.ProfileImageURL = in.ProfileImageURL
	u := s.user
	s.mu.Unlock()

	s.send(ctx, ResourceProfile, "update_profile", func(ctx context.Context) error {
		_, err := s.gw.UpdateProfile(ctx, u.Username, in)
		return err
	})
	return u, nil
}
