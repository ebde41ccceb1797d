package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"skillswap/internal/cache"
	"skillswap/internal/middleware"
	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/validation"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateSkillInput carries a new catalog entry. Slug is derived from the name
// when empty.
type CreateSkillInput struct {
	Name     string
	Slug     string
	Category string
	Synonyms []string
}

// UpdateSkillInput carries a partial catalog update. Nil fields are left
// untouched.
type UpdateSkillInput struct {
	Name     *string
	Category *string
	IsActive *bool
}

// SkillService manages the skill catalog.
type SkillService interface {
	Create(ctx context.Context, input CreateSkillInput) (*models.Skill, error)
	Get(ctx context.Context, idOrSlug string) (*models.Skill, error)
	List(ctx context.Context, opts repository.SkillListOptions) ([]models.Skill, error)
	Update(ctx context.Context, id uint, input UpdateSkillInput) (*models.Skill, error)
	Deactivate(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type skillService struct {
	skills repository.SkillRepository
	rdb    *redis.Client
}

// NewSkillService creates a new skill catalog service
func NewSkillService(db *gorm.DB, rdb *redis.Client) SkillService {
	return &skillService{
		skills: repository.NewSkillRepository(db),
		rdb:    rdb,
	}
}

func (s *skillService) Create(ctx context.Context, input CreateSkillInput) (*models.Skill, error) {
	if input.Name == "" {
		return nil, models.NewValidationError("Skill name is required")
	}
	slug := input.Slug
	if slug == "" {
		slug = validation.Slugify(input.Name)
	}
	if !validation.ValidSlug(slug) {
		return nil, models.NewValidationError("Invalid skill slug")
	}

	// Friendly pre-check; the unique index still catches the race and the
	// repository maps it to the same Conflict.
	if _, err := s.skills.GetBySlug(ctx, slug); err == nil {
		return nil, models.NewConflictError("Skill slug already exists")
	}

	skill := &models.Skill{
		Name:     input.Name,
		Slug:     slug,
		Category: input.Category,
		IsActive: true,
	}
	if len(input.Synonyms) > 0 {
		raw, err := marshalSynonyms(input.Synonyms)
		if err != nil {
			return nil, models.NewValidationError("Invalid synonyms")
		}
		skill.Synonyms = raw
	}

	if err := s.skills.Create(ctx, skill); err != nil {
		return nil, err
	}
	cache.SetSkill(ctx, s.rdb, skill)
	middleware.Logger.InfoContext(ctx, "Skill created",
		slog.Uint64("skill_id", uint64(skill.ID)),
		slog.String("slug", skill.Slug),
	)
	return skill, nil
}

// Get resolves a skill by numeric id or by slug. Slug lookups read through
// the redis cache.
func (s *skillService) Get(ctx context.Context, idOrSlug string) (*models.Skill, error) {
	if id, err := strconv.ParseUint(idOrSlug, 10, 32); err == nil {
		return s.skills.GetByID(ctx, uint(id))
	}

	if cached := cache.GetSkill(ctx, s.rdb, idOrSlug); cached != nil {
		return cached, nil
	}
	skill, err := s.skills.GetBySlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	cache.SetSkill(ctx, s.rdb, skill)
	return skill, nil
}

func (s *skillService) List(ctx context.Context, opts repository.SkillListOptions) ([]models.Skill, error) {
	if opts.Limit <= 0 || opts.Limit > 100 {
		opts.Limit = 50
	}
	return s.skills.List(ctx, opts)
}

func (s *skillService) Update(ctx context.Context, id uint, input UpdateSkillInput) (*models.Skill, error) {
	skill, err := s.skills.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, models.NewValidationError("Skill name cannot be empty")
		}
		skill.Name = *input.Name
	}
	if input.Category != nil {
		skill.Category = *input.Category
	}
	if input.IsActive != nil {
		skill.IsActive = *input.IsActive
	}

	if err := s.skills.Update(ctx, skill); err != nil {
		return nil, err
	}
	cache.InvalidateSkill(ctx, s.rdb, skill.Slug)
	return skill, nil
}

func (s *skillService) Deactivate(ctx context.Context, id uint) error {
	skill, err := s.skills.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.skills.Deactivate(ctx, id); err != nil {
		return err
	}
	cache.InvalidateSkill(ctx, s.rdb, skill.Slug)
	return nil
}

func marshalSynonyms(synonyms []string) (json.RawMessage, error) {
	return json.Marshal(synonyms)
}

func (s *skillService) Delete(ctx context.Context, id uint) error {
	skill, err := s.skills.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.skills.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateSkill(ctx, s.rdb, skill.Slug)
	middleware.Logger.InfoContext(ctx, "Skill deleted",
		slog.Uint64("skill_id", uint64(id)),
		slog.String("slug", skill.Slug),
	)
	return nil
}
