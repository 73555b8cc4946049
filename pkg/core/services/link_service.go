package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
	"github.com/wadjakorntonsri/go-linkpage/pkg/metrics"
	"github.com/wadjakorntonsri/go-linkpage/pkg/ports"
	"github.com/wadjakorntonsri/go-linkpage/pkg/validation"
)

type LinkService struct {
	repo      ports.Repository
	validator *validation.Validator
}

func NewLinkService(repo ports.Repository, v *validation.Validator) *LinkService {
	return &LinkService{repo: repo, validator: v}
}

func (s *LinkService) GetLink(ctx context.Context, id int64) (*domain.Link, error) {
	link, err := s.repo.GetLink(ctx, id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, domain.ErrNotFound
	}
	return link, nil
}

func (s *LinkService) clean(in domain.LinkInput) (domain.LinkInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.URL = strings.TrimSpace(in.URL)
	if in.Icon != nil {
		in.Icon = domain.IconPtr(*in.Icon)
	}
	if err := s.validator.Struct(in); err != nil {
		return in, err
	}
	return in, nil
}

// CreateLink appends a link to its owner's collection. The stored position
// is always the current length, so positions stay contiguous.
func (s *LinkService) CreateLink(ctx context.Context, in domain.LinkInput) (*domain.Link, error) {
	in, err := s.clean(in)
	if err != nil {
		return nil, err
	}
	if in.UserID == 0 {
		return nil, domain.NewValidationError("user_id", "is required")
	}

	owner, err := s.repo.GetUserByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrProfileNotFound
	}

	count, err := s.repo.CountLinks(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	link := &domain.Link{
		UserID:   in.UserID,
		Title:    in.Title,
		URL:      in.URL,
		Icon:     in.Icon,
		Layout:   domain.ParseLayout(in.Layout),
		Position: count,
		IsActive: true,
	}
	if err := s.repo.CreateLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *LinkService) UpdateLink(ctx context.Context, id int64, in domain.LinkInput) (*domain.Link, error) {
	in, err := s.clean(in)
	if err != nil {
		return nil, err
	}

	link, err := s.GetLink(ctx, id)
	if err != nil {
		return nil, err
	}

	link.Title = in.Title
	link.URL = in.URL
	link.Icon = in.Icon
	if in.Layout != "" {
		link.Layout = domain.ParseLayout(in.Layout)
	}

	if err := s.repo.UpdateLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// SetActive shows or hides a link on the public page.
func (s *LinkService) SetActive(ctx context.Context, id int64, active bool) (*domain.Link, error) {
	link, err := s.GetLink(ctx, id)
	if err != nil {
		return nil, err
	}
	link.IsActive = active
	if err := s.repo.UpdateLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *LinkService) DeleteLink(ctx context.Context, id int64) error {
	return s.repo.DeleteLink(ctx, id)
}

// ReorderLinks commits a full position assignment. Positions must be a
// permutation of 0..n-1 without duplicate ids, covering every link of a
// single user.
func (s *LinkService) ReorderLinks(ctx context.Context, positions []domain.LinkPosition) error {
	seenID := make(map[int64]bool, len(positions))
	seenPos := make(map[int]bool, len(positions))
	for _, p := range positions {
		if p.ID <= 0 {
			return domain.NewValidationError("links", "ids must be positive")
		}
		if p.Position < 0 || p.Position >= len(positions) {
			return domain.NewValidationError("links", "positions must be contiguous from 0")
		}
		if seenID[p.ID] || seenPos[p.Position] {
			return domain.NewValidationError("links", "duplicate id or position")
		}
		seenID[p.ID], seenPos[p.Position] = true, true
	}
	if len(positions) == 0 {
		return nil
	}

	var owner int64
	for i, p := range positions {
		link, err := s.GetLink(ctx, p.ID)
		if err != nil {
			return err
		}
		if i == 0 {
			owner = link.UserID
		} else if link.UserID != owner {
			return domain.NewValidationError("links", "links must belong to one user")
		}
	}
	count, err := s.repo.CountLinks(ctx, owner)
	if err != nil {
		return err
	}
	if count != len(positions) {
		return domain.NewValidationError("links", "positions must cover every link")
	}
	return s.repo.ReorderLinks(ctx, positions)
}

// RecordClick counts a visit to an active link and returns it for redirecting.
func (s *LinkService) RecordClick(ctx context.Context, id int64, referer, userAgent, ip string) (*domain.Link, error) {
	link, err := s.GetLink(ctx, id)
	if err != nil {
		return nil, err
	}
	if !link.IsActive {
		return nil, domain.ErrNotFound
	}

	hash := sha256.Sum256([]byte(ip))
	visit := &domain.Visit{
		LinkID:    link.ID,
		Referer:   referer,
		UserAgent: userAgent,
		IPHash:    hex.EncodeToString(hash[:]),
		CreatedAt: time.Now(),
	}
	if err := s.repo.RecordVisit(ctx, visit); err != nil {
		return nil, err
	}
	metrics.ClickRecorded()
	link.Clicks++
	return link, nil
}
