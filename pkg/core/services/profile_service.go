package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
	"github.com/wadjakorntonsri/go-linkpage/pkg/ports"
)

type ProfileService struct {
	repo ports.Repository
}

func NewProfileService(repo ports.Repository) *ProfileService {
	return &ProfileService{repo: repo}
}

// GetProfile returns the user with their ordered links and normalized theme.
func (s *ProfileService) GetProfile(ctx context.Context, username string) (*domain.Profile, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrProfileNotFound
	}
	return s.profileFor(ctx, *user)
}

func (s *ProfileService) profileFor(ctx context.Context, user domain.User) (*domain.Profile, error) {
	links, err := s.repo.ListLinks(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	theme := domain.DefaultTheme()
	rec, err := s.repo.GetTheme(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		theme = domain.ThemeFromRecord(*rec)
	}

	return &domain.Profile{User: user, Links: links, Theme: theme}, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, username string, in domain.ProfileUpdate) (*domain.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrProfileNotFound
	}

	user.Name = strings.TrimSpace(in.Name)
	user.Bio = strings.TrimSpace(in.Bio)
	user.ProfileImageURL = strings.TrimSpace(in.ProfileImageURL)
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *ProfileService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

var usernameUnsafe = regexp.MustCompile(`[^a-z0-9_]+`)

// EnsureUser returns the user registered with email, creating one on first
// login. The username is derived from the email's local part.
func (s *ProfileService) EnsureUser(ctx context.Context, email, name string) (*domain.User, error) {
	if user, err := s.repo.GetUserByEmail(ctx, email); err != nil || user != nil {
		return user, err
	}

	local, _, _ := strings.Cut(strings.ToLower(email), "@")
	base := strings.Trim(usernameUnsafe.ReplaceAllString(local, "_"), "_")
	if base == "" {
		base = "user"
	}

	for i := 0; i < 100; i++ {
		username := base
		if i > 0 {
			username = fmt.Sprintf("%s%d", base, i)
		}
		user := &domain.User{Username: username, Email: email, Name: name}
		err := s.repo.CreateUser(ctx, user)
		if errors.Is(err, domain.ErrUsernameTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return user, nil
	}
	return nil, domain.ErrUsernameTaken
}

// Export dumps every profile, for backups and migration.
func (s *ProfileService) Export(ctx context.Context) ([]domain.Profile, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(users))
	for _, u := range users {
		p, err := s.profileFor(ctx, u)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

// Import creates the exported profiles. Usernames that already exist are
// skipped. It returns the number of profiles created.
func (s *ProfileService) Import(ctx context.Context, profiles []domain.Profile) (int, error) {
	created := 0
	for _, p := range profiles {
		user := p.User
		user.ID = 0
		if err := s.repo.CreateUser(ctx, &user); err != nil {
			if errors.Is(err, domain.ErrUsernameTaken) {
				continue
			}
			return created, fmt.Errorf("import %s: %w", p.Username, err)
		}

		for i, l := range p.Links {
			l.ID = 0
			l.UserID = user.ID
			l.Position = i
			l.Layout = domain.ParseLayout(string(l.Layout))
			if err := s.repo.CreateLink(ctx, &l); err != nil {
				return created, fmt.Errorf("import %s links: %w", p.Username, err)
			}
		}

		if err := s.repo.SaveTheme(ctx, user.ID, p.Theme.Record()); err != nil {
			return created, fmt.Errorf("import %s theme: %w", p.Username, err)
		}
		created++
	}
	return created, nil
}
