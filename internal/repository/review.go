package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository stores post-session feedback.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	ListForReviewee(ctx context.Context, revieweeID uint, limit, offset int) ([]models.Review, error)
	ExistsForCollab(ctx context.Context, collabID, reviewerID uint) (bool, error)
	AverageRating(ctx context.Context, revieweeID uint) (float64, int64, error)
	Delete(ctx context.Context, id uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := readDB(r.db).WithContext(ctx).
		Preload("Reviewer").
		First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Review", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &review, nil
}

func (r *reviewRepository) ListForReviewee(ctx context.Context, revieweeID uint, limit, offset int) ([]models.Review, error) {
	var reviews []models.Review
	if err := readDB(r.db).WithContext(ctx).
		Preload("Reviewer").
		Where("reviewee_id = ?", revieweeID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

// ExistsForCollab guards the one-review-per-party rule on a completed session.
func (r *reviewRepository) ExistsForCollab(ctx context.Context, collabID, reviewerID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("collab_request_id = ? AND reviewer_id = ?", collabID, reviewerID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *reviewRepository) AverageRating(ctx context.Context, revieweeID uint) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	if err := readDB(r.db).WithContext(ctx).Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("reviewee_id = ?", revieweeID).
		Scan(&result).Error; err != nil {
		return 0, 0, models.NewInternalError(err)
	}
	return result.Avg, result.Count, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Review", id)
	}
	return nil
}
