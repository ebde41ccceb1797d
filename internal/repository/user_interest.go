package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// UserInterestRepository manages the skills a user wants to learn.
type UserInterestRepository interface {
	Create(ctx context.Context, ui *models.UserInterest) error
	GetByID(ctx context.Context, id uint) (*models.UserInterest, error)
	GetByPair(ctx context.Context, userID, skillID uint) (*models.UserInterest, error)
	ListByUser(ctx context.Context, userID uint) ([]models.UserInterest, error)
	Update(ctx context.Context, ui *models.UserInterest) error
	Delete(ctx context.Context, id uint) error
}

type userInterestRepository struct {
	db *gorm.DB
}

// NewUserInterestRepository creates a new user interest repository
func NewUserInterestRepository(db *gorm.DB) UserInterestRepository {
	return &userInterestRepository{db: db}
}

func (r *userInterestRepository) Create(ctx context.Context, ui *models.UserInterest) error {
	if err := r.db.WithContext(ctx).Create(ui).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Interest already listed for this user")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userInterestRepository) GetByID(ctx context.Context, id uint) (*models.UserInterest, error) {
	var ui models.UserInterest
	if err := readDB(r.db).WithContext(ctx).Preload("Skill").First(&ui, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User interest", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &ui, nil
}

func (r *userInterestRepository) GetByPair(ctx context.Context, userID, skillID uint) (*models.UserInterest, error) {
	var ui models.UserInterest
	if err := readDB(r.db).WithContext(ctx).
		Preload("Skill").
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		First(&ui).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User interest", skillID)
		}
		return nil, models.NewInternalError(err)
	}
	return &ui, nil
}

func (r *userInterestRepository) ListByUser(ctx context.Context, userID uint) ([]models.UserInterest, error) {
	var interests []models.UserInterest
	if err := readDB(r.db).WithContext(ctx).
		Preload("Skill").
		Where("user_id = ?", userID).
		Order("priority, id").
		Find(&interests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return interests, nil
}

func (r *userInterestRepository) Update(ctx context.Context, ui *models.UserInterest) error {
	if err := r.db.WithContext(ctx).Save(ui).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userInterestRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.UserInterest{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User interest", id)
	}
	return nil
}
