package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// UserSkillRepository manages the skills a user teaches.
type UserSkillRepository interface {
	Create(ctx context.Context, us *models.UserSkill) error
	GetByID(ctx context.Context, id uint) (*models.UserSkill, error)
	GetByPair(ctx context.Context, userID, skillID uint) (*models.UserSkill, error)
	ListByUser(ctx context.Context, userID uint) ([]models.UserSkill, error)
	ListBySkill(ctx context.Context, skillID uint, limit, offset int) ([]models.UserSkill, error)
	Update(ctx context.Context, us *models.UserSkill) error
	Delete(ctx context.Context, id uint) error
}

type userSkillRepository struct {
	db *gorm.DB
}

// NewUserSkillRepository creates a new user skill repository
func NewUserSkillRepository(db *gorm.DB) UserSkillRepository {
	return &userSkillRepository{db: db}
}

func (r *userSkillRepository) Create(ctx context.Context, us *models.UserSkill) error {
	if err := r.db.WithContext(ctx).Create(us).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Skill already listed for this user")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userSkillRepository) GetByID(ctx context.Context, id uint) (*models.UserSkill, error) {
	var us models.UserSkill
	if err := readDB(r.db).WithContext(ctx).Preload("Skill").First(&us, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User skill", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &us, nil
}

func (r *userSkillRepository) GetByPair(ctx context.Context, userID, skillID uint) (*models.UserSkill, error) {
	var us models.UserSkill
	if err := readDB(r.db).WithContext(ctx).
		Preload("Skill").
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		First(&us).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User skill", skillID)
		}
		return nil, models.NewInternalError(err)
	}
	return &us, nil
}

func (r *userSkillRepository) ListByUser(ctx context.Context, userID uint) ([]models.UserSkill, error) {
	var skills []models.UserSkill
	if err := readDB(r.db).WithContext(ctx).
		Preload("Skill").
		Where("user_id = ?", userID).
		Order("id").
		Find(&skills).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return skills, nil
}

func (r *userSkillRepository) ListBySkill(ctx context.Context, skillID uint, limit, offset int) ([]models.UserSkill, error) {
	var skills []models.UserSkill
	if err := readDB(r.db).WithContext(ctx).
		Preload("User").
		Where("skill_id = ?", skillID).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&skills).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return skills, nil
}

func (r *userSkillRepository) Update(ctx context.Context, us *models.UserSkill) error {
	if err := r.db.WithContext(ctx).Save(us).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userSkillRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.UserSkill{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User skill", id)
	}
	return nil
}
