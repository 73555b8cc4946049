package ports

import (
	"context"

	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
)

// UserRepository stores page owners. Lookups return nil, nil when missing.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// LinkRepository stores links. Positions stay contiguous per user.
type LinkRepository interface {
	CreateLink(ctx context.Context, link *domain.Link) error
	GetLink(ctx context.Context, id int64) (*domain.Link, error)
	UpdateLink(ctx context.Context, link *domain.Link) error
	DeleteLink(ctx context.Context, id int64) error // renumbers the owner's remaining links
	ListLinks(ctx context.Context, userID int64) ([]domain.Link, error)
	CountLinks(ctx context.Context, userID int64) (int, error)
	ReorderLinks(ctx context.Context, positions []domain.LinkPosition) error

	// Clicks
	RecordVisit(ctx context.Context, visit *domain.Visit) error
}

// ThemeRepository stores one theme record per user.
type ThemeRepository interface {
	GetTheme(ctx context.Context, userID int64) (*domain.ThemeRecord, error)
	SaveTheme(ctx context.Context, userID int64, theme domain.ThemeRecord) error
}

type Repository interface {
	UserRepository
	LinkRepository
	ThemeRepository
	Close() error
}

// ProfileService serves pages and profile edits.
type ProfileService interface {
	GetProfile(ctx context.Context, username string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, username string, in domain.ProfileUpdate) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	EnsureUser(ctx context.Context, email, name string) (*domain.User, error)
	Export(ctx context.Context) ([]domain.Profile, error)
	Import(ctx context.Context, profiles []domain.Profile) (int, error)
}

// LinkService defines link editing operations
type LinkService interface {
	GetLink(ctx context.Context, id int64) (*domain.Link, error)
	CreateLink(ctx context.Context, in domain.LinkInput) (*domain.Link, error)
	UpdateLink(ctx context.Context, id int64, in domain.LinkInput) (*domain.Link, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.Link, error)
	DeleteLink(ctx context.Context, id int64) error
	ReorderLinks(ctx context.Context, positions []domain.LinkPosition) error
	RecordClick(ctx context.Context, id int64, referer, userAgent, ip string) (*domain.Link, error)
}

type ThemeService interface {
	GetTheme(ctx context.Context, userID int64) (domain.Theme, error)
	SaveTheme(ctx context.Context, userID int64, rec domain.ThemeRecord) (domain.Theme, error)
}

// ProfileGateway is the persistence collaborator as seen by an editing
// session. Implementations return *domain.NetworkError when a request does
// not complete and domain.ErrProfileNotFound for unknown users.
type ProfileGateway interface {
	GetProfile(ctx context.Context, username string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, username string, in domain.ProfileUpdate) (*domain.User, error)
	CreateLink(ctx context.Context, in domain.LinkInput) (*domain.Link, error)
	UpdateLink(ctx context.Context, id int64, in domain.LinkInput) (*domain.Link, error)
	DeleteLink(ctx context.Context, id int64) error
	ReorderLinks(ctx context.Context, positions []domain.LinkPosition) error
	SaveTheme(ctx context.Context, userID int64, theme domain.ThemeRecord) error
}
