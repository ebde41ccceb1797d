package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// SkillRepository defines the interface for skill catalog operations
type SkillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	GetByID(ctx context.Context, id uint) (*models.Skill, error)
	GetBySlug(ctx context.Context, slug string) (*models.Skill, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, opts SkillListOptions) ([]models.Skill, error)
	Update(ctx context.Context, skill *models.Skill) error
	Deactivate(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

// SkillListOptions narrows catalog listings.
type SkillListOptions struct {
	Query      string
	Category   string
	OnlyActive bool
	Limit      int
	Offset     int
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	if err := r.db.WithContext(ctx).Create(skill).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Skill slug already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *skillRepository) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	var skill models.Skill
	if err := readDB(r.db).WithContext(ctx).First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Skill", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &skill, nil
}

func (r *skillRepository) GetBySlug(ctx context.Context, slug string) (*models.Skill, error) {
	var skill models.Skill
	if err := readDB(r.db).WithContext(ctx).Where("slug = ?", slug).First(&skill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Skill", slug)
		}
		return nil, models.NewInternalError(err)
	}
	return &skill, nil
}

func (r *skillRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Skill{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *skillRepository) List(ctx context.Context, opts SkillListOptions) ([]models.Skill, error) {
	q := readDB(r.db).WithContext(ctx).Model(&models.Skill{})
	if opts.OnlyActive {
		q = q.Where("is_active = ?", true)
	}
	if opts.Category != "" {
		q = q.Where("category = ?", opts.Category)
	}
	if opts.Query != "" {
		like := "%" + opts.Query + "%"
		q = q.Where("name LIKE ? OR slug LIKE ?", like, like)
	}

	var skills []models.Skill
	if err := q.Order("slug").Limit(opts.Limit).Offset(opts.Offset).Find(&skills).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return skills, nil
}

func (r *skillRepository) Update(ctx context.Context, skill *models.Skill) error {
	if err := r.db.WithContext(ctx).Save(skill).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Skill slug already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Deactivate is the default removal path: the row stays so user skills and
// interests keep resolving, but the skill drops out of active listings.
func (r *skillRepository) Deactivate(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.Skill{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Skill", id)
	}
	return nil
}

func (r *skillRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Skill{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Skill", id)
	}
	return nil
}
