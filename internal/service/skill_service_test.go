package service

import (
	"context"
	"strconv"
	"testing"

	"skillswap/internal/models"
	"skillswap/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSkillFixture(t *testing.T) (SkillService, *redis.Client) {
	t.Helper()

	db := setupTestDB(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewSkillService(db, rdb), rdb
}

func TestSkillCreateSlugifiesName(t *testing.T) {
	svc, _ := newSkillFixture(t)

	skill, err := svc.Create(context.Background(), CreateSkillInput{
		Name:     "Spanish Conversation",
		Category: "language",
		Synonyms: []string{"castellano"},
	})
	require.NoError(t, err)
	assert.Equal(t, "spanish-conversation", skill.Slug)
	assert.True(t, skill.IsActive)
}

func TestSkillCreateDuplicateSlugConflicts(t *testing.T) {
	svc, _ := newSkillFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateSkillInput{Name: "Guitar"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateSkillInput{Name: "guitar"})
	assertAppErrorCode(t, err, models.ErrCodeConflict)
}

func TestSkillGetByIDOrSlug(t *testing.T) {
	svc, _ := newSkillFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateSkillInput{Name: "Guitar"})
	require.NoError(t, err)

	byID, err := svc.Get(ctx, strconv.Itoa(int(created.ID)))
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	bySlug, err := svc.Get(ctx, "guitar")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	_, err = svc.Get(ctx, "klingon")
	assertAppErrorCode(t, err, models.ErrCodeNotFound)
}

func TestSkillGetBySlugUsesCache(t *testing.T) {
	svc, rdb := newSkillFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateSkillInput{Name: "Guitar"})
	require.NoError(t, err)

	// Create primes the cache.
	exists, err := rdb.Exists(ctx, "skill:slug:guitar").Result()
	require.NoError(t, err)
	assert.EqualValues(t, 1, exists)

	skill, err := svc.Get(ctx, "guitar")
	require.NoError(t, err)
	assert.Equal(t, "Guitar", skill.Name)
}

func TestSkillUpdateInvalidatesCache(t *testing.T) {
	svc, rdb := newSkillFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateSkillInput{Name: "Guitar"})
	require.NoError(t, err)

	name := "Acoustic Guitar"
	_, err = svc.Update(ctx, created.ID, UpdateSkillInput{Name: &name})
	require.NoError(t, err)

	exists, err := rdb.Exists(ctx, "skill:slug:guitar").Result()
	require.NoError(t, err)
	assert.Zero(t, exists, "stale cache entry must be dropped")

	got, err := svc.Get(ctx, "guitar")
	require.NoError(t, err)
	assert.Equal(t, "Acoustic Guitar", got.Name)
}

func TestSkillDeactivateHidesFromActiveListing(t *testing.T) {
	svc, _ := newSkillFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateSkillInput{Name: "Guitar"})
	require.NoError(t, err)
	require.NoError(t, svc.Deactivate(ctx, created.ID))

	active, err := svc.List(ctx, repository.SkillListOptions{OnlyActive: true})
	require.NoError(t, err)
	assert.Empty(t, active)

	// The row itself survives.
	got, err := svc.Get(ctx, strconv.Itoa(int(created.ID)))
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}
