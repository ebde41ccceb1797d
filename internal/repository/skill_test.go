package repository

import (
	"context"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillRepositoryCreateDuplicateSlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSkillRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Skill{Name: "Guitar", Slug: "guitar", IsActive: true}))

	err := repo.Create(ctx, &models.Skill{Name: "Guitar II", Slug: "guitar", IsActive: true})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrCodeConflict, appErr.Code)
}

func TestSkillRepositoryGetBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSkillRepository(db)
	ctx := context.Background()

	createTestSkill(t, db, "Spanish", "spanish")

	skill, err := repo.GetBySlug(ctx, "spanish")
	require.NoError(t, err)
	assert.Equal(t, "Spanish", skill.Name)

	_, err = repo.GetBySlug(ctx, "klingon")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrCodeNotFound, appErr.Code)
}

func TestSkillRepositoryListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSkillRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Skill{Name: "Guitar", Slug: "guitar", Category: "music", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Skill{Name: "Piano", Slug: "piano", Category: "music", IsActive: false}).Error)
	require.NoError(t, db.Create(&models.Skill{Name: "Spanish", Slug: "spanish", Category: "language", IsActive: true}).Error)

	active, err := repo.List(ctx, SkillListOptions{OnlyActive: true, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	music, err := repo.List(ctx, SkillListOptions{Category: "music", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, music, 2)

	byQuery, err := repo.List(ctx, SkillListOptions{Query: "gui", Limit: 10})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	assert.Equal(t, "guitar", byQuery[0].Slug)
}

func TestSkillRepositoryDeactivateKeepsRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSkillRepository(db)
	ctx := context.Background()

	skill := createTestSkill(t, db, "Guitar", "guitar")

	require.NoError(t, repo.Deactivate(ctx, skill.ID))

	got, err := repo.GetByID(ctx, skill.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	var appErr *models.AppError
	err = repo.Deactivate(ctx, 9999)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrCodeNotFound, appErr.Code)
}
