package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// AvailabilityRepository manages weekly availability slots.
type AvailabilityRepository interface {
	Create(ctx context.Context, slot *models.AvailabilitySlot) error
	GetByID(ctx context.Context, id uint) (*models.AvailabilitySlot, error)
	ListByUser(ctx context.Context, userID uint) ([]models.AvailabilitySlot, error)
	Update(ctx context.Context, slot *models.AvailabilitySlot) error
	Delete(ctx context.Context, id uint) error
}

type availabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository creates a new availability slot repository
func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepository{db: db}
}

func (r *availabilityRepository) Create(ctx context.Context, slot *models.AvailabilitySlot) error {
	if err := r.db.WithContext(ctx).Create(slot).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *availabilityRepository) GetByID(ctx context.Context, id uint) (*models.AvailabilitySlot, error) {
	var slot models.AvailabilitySlot
	if err := readDB(r.db).WithContext(ctx).First(&slot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Availability slot", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &slot, nil
}

func (r *availabilityRepository) ListByUser(ctx context.Context, userID uint) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	if err := readDB(r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("weekday, start_minute").
		Find(&slots).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return slots, nil
}

func (r *availabilityRepository) Update(ctx context.Context, slot *models.AvailabilitySlot) error {
	if err := r.db.WithContext(ctx).Save(slot).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *availabilityRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.AvailabilitySlot{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Availability slot", id)
	}
	return nil
}
