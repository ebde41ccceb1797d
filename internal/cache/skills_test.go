package cache

import (
	"context"
	"testing"

	"skillswap/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	assert.Nil(t, GetSkill(ctx, rdb, "go-basics"), "miss before set")

	skill := &models.Skill{ID: 7, Name: "Go Basics", Slug: "go-basics", IsActive: true}
	SetSkill(ctx, rdb, skill)

	got := GetSkill(ctx, rdb, "go-basics")
	require.NotNil(t, got)
	assert.Equal(t, skill.ID, got.ID)
	assert.Equal(t, skill.Slug, got.Slug)

	InvalidateSkill(ctx, rdb, "go-basics")
	assert.Nil(t, GetSkill(ctx, rdb, "go-basics"), "miss after invalidation")
}

func TestSkillCacheNilClient(t *testing.T) {
	ctx := context.Background()

	// All helpers must be no-ops without Redis.
	assert.Nil(t, GetSkill(ctx, nil, "go-basics"))
	SetSkill(ctx, nil, &models.Skill{Slug: "go-basics"})
	InvalidateSkill(ctx, nil, "go-basics")
}
