package services

import (
	"context"

	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
	"github.com/wadjakorntonsri/go-linkpage/pkg/ports"
	"github.com/wadjakorntonsri/go-linkpage/pkg/validation"
)

type ThemeService struct {
	repo      ports.Repository
	validator *validation.Validator
	mode      validation.Mode
}

func NewThemeService(repo ports.Repository, v *validation.Validator, mode validation.Mode) *ThemeService {
	return &ThemeService{repo: repo, validator: v, mode: mode}
}

func (s *ThemeService) GetTheme(ctx context.Context, userID int64) (domain.Theme, error) {
	rec, err := s.repo.GetTheme(ctx, userID)
	if err != nil {
		return domain.Theme{}, err
	}
	if rec == nil {
		return domain.DefaultTheme(), nil
	}
	return domain.ThemeFromRecord(*rec), nil
}

// SaveTheme normalizes and stores a full theme record. The whole record is
// replaced; stale wallpaper groups are kept as sent.
func (s *ThemeService) SaveTheme(ctx context.Context, userID int64, rec domain.ThemeRecord) (domain.Theme, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return domain.Theme{}, err
	}
	if user == nil {
		return domain.Theme{}, domain.ErrProfileNotFound
	}

	theme, err := s.validator.Theme(domain.ThemeFromRecord(rec), s.mode)
	if err != nil {
		return domain.Theme{}, err
	}

	if err := s.repo.SaveTheme(ctx, userID, theme.Record()); err != nil {
		return domain.Theme{}, err
	}
	return theme, nil
}
