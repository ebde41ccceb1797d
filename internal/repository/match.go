package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// MatchRepository stores confirmed matches and externally scored candidates.
type MatchRepository interface {
	CreateMatch(ctx context.Context, m *models.Match) error
	GetMatch(ctx context.Context, id uint) (*models.Match, error)
	ListMatchesForUser(ctx context.Context, userID uint, limit, offset int) ([]models.Match, error)
	DeleteMatch(ctx context.Context, id uint) error

	CreateCandidate(ctx context.Context, c *models.MatchCandidate) error
	ListCandidatesForUser(ctx context.Context, sourceUserID uint, limit, offset int) ([]models.MatchCandidate, error)
	DeleteCandidatesForUser(ctx context.Context, sourceUserID uint) error
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) CreateMatch(ctx context.Context, m *models.Match) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *matchRepository) GetMatch(ctx context.Context, id uint) (*models.Match, error) {
	var m models.Match
	if err := readDB(r.db).WithContext(ctx).
		Preload("UserA").
		Preload("UserB").
		First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Match", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &m, nil
}

func (r *matchRepository) ListMatchesForUser(ctx context.Context, userID uint, limit, offset int) ([]models.Match, error) {
	var matches []models.Match
	if err := readDB(r.db).WithContext(ctx).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("score DESC, id").
		Limit(limit).
		Offset(offset).
		Find(&matches).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return matches, nil
}

func (r *matchRepository) DeleteMatch(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Match{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Match", id)
	}
	return nil
}

func (r *matchRepository) CreateCandidate(ctx context.Context, c *models.MatchCandidate) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *matchRepository) ListCandidatesForUser(ctx context.Context, sourceUserID uint, limit, offset int) ([]models.MatchCandidate, error) {
	var candidates []models.MatchCandidate
	if err := readDB(r.db).WithContext(ctx).
		Preload("TargetUser").
		Where("source_user_id = ?", sourceUserID).
		Order("score DESC, id").
		Limit(limit).
		Offset(offset).
		Find(&candidates).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return candidates, nil
}

// DeleteCandidatesForUser clears a user's suggestion set, typically before the
// external matcher pushes a fresh batch.
func (r *matchRepository) DeleteCandidatesForUser(ctx context.Context, sourceUserID uint) error {
	if err := r.db.WithContext(ctx).
		Where("source_user_id = ?", sourceUserID).
		Delete(&models.MatchCandidate{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
