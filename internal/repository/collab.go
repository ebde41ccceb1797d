package repository

import (
	"context"
	"errors"
	"time"

	"skillswap/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollabRepository defines the interface for collaboration request storage.
// Write methods expect to run inside a transaction: construct the repository
// with the tx handle so the lock and the compare-and-set share one unit of
// work.
type CollabRepository interface {
	Create(ctx context.Context, req *models.CollabRequest) error
	GetByID(ctx context.Context, id uint) (*models.CollabRequest, error)
	GetForUpdate(ctx context.Context, id uint) (*models.CollabRequest, error)
	List(ctx context.Context, filter CollabFilter) ([]models.CollabRequest, error)
	UpdateStatus(ctx context.Context, id uint, from, to models.CollabStatus) error
	UpdateSchedule(ctx context.Context, id uint, current models.CollabStatus, scheduledAt *time.Time) error
	Delete(ctx context.Context, id uint) error
}

// CollabFilter narrows listings. UserID matches either side of the request.
type CollabFilter struct {
	UserID *uint
	Role   string // "requester", "receiver", or empty for both
	Status *models.CollabStatus
	Since  *time.Time
	Until  *time.Time
	Limit  int
	Offset int
}

type collabRepository struct {
	db *gorm.DB
}

// NewCollabRepository creates a new collaboration request repository
func NewCollabRepository(db *gorm.DB) CollabRepository {
	return &collabRepository{db: db}
}

func (r *collabRepository) Create(ctx context.Context, req *models.CollabRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		// A referenced user or skill can disappear between the service's
		// existence checks and the insert. That race is the caller's stale
		// reference, not a server fault.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return models.NewNotFoundErrorMsg("Referenced user or skill no longer exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *collabRepository) GetByID(ctx context.Context, id uint) (*models.CollabRequest, error) {
	var req models.CollabRequest
	if err := readDB(r.db).WithContext(ctx).
		Preload("Requester").
		Preload("Receiver").
		Preload("OfferedSkill").
		Preload("WantedSkill").
		First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Collaboration request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &req, nil
}

// GetForUpdate fetches the row with a FOR UPDATE lock. Only meaningful inside
// a transaction; the lock is held until the surrounding tx commits or rolls
// back, so concurrent state changes on the same request serialize here.
func (r *collabRepository) GetForUpdate(ctx context.Context, id uint) (*models.CollabRequest, error) {
	var req models.CollabRequest
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Collaboration request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &req, nil
}

func (r *collabRepository) List(ctx context.Context, filter CollabFilter) ([]models.CollabRequest, error) {
	q := readDB(r.db).WithContext(ctx).Model(&models.CollabRequest{})

	if filter.UserID != nil {
		switch filter.Role {
		case "requester":
			q = q.Where("requester_id = ?", *filter.UserID)
		case "receiver":
			q = q.Where("receiver_id = ?", *filter.UserID)
		default:
			q = q.Where("requester_id = ? OR receiver_id = ?", *filter.UserID, *filter.UserID)
		}
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Since != nil {
		q = q.Where("created_at >= ?", *filter.Since)
	}
	if filter.Until != nil {
		q = q.Where("created_at < ?", *filter.Until)
	}

	var reqs []models.CollabRequest
	if err := q.Preload("Requester").
		Preload("Receiver").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&reqs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reqs, nil
}

// UpdateStatus performs the compare-and-set that makes transitions safe: the
// UPDATE only matches when the status is still `from`. Zero rows affected
// means another writer got there first and the caller sees Conflict, never a
// silently skipped transition.
func (r *collabRepository) UpdateStatus(ctx context.Context, id uint, from, to models.CollabStatus) error {
	res := r.db.WithContext(ctx).
		Model(&models.CollabRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewConflictError("Request status changed concurrently")
	}
	return nil
}

// UpdateSchedule moves the scheduled time without touching status, guarded by
// the same compare-and-set discipline as UpdateStatus.
func (r *collabRepository) UpdateSchedule(ctx context.Context, id uint, current models.CollabStatus, scheduledAt *time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&models.CollabRequest{}).
		Where("id = ? AND status = ?", id, current).
		Updates(map[string]interface{}{
			"scheduled_at": scheduledAt,
			"updated_at":   time.Now().UTC(),
		})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewConflictError("Request status changed concurrently")
	}
	return nil
}

func (r *collabRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.CollabRequest{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Collaboration request", id)
	}
	return nil
}
