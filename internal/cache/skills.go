package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"skillswap/internal/models"

	"github.com/redis/go-redis/v9"
)

// skillTTL bounds staleness of cached skill rows. Skill mutations invalidate
// eagerly; the TTL covers writers on other instances.
const skillTTL = 10 * time.Minute

func skillKey(slug string) string {
	return fmt.Sprintf("skill:slug:%s", slug)
}

// GetSkill returns the cached skill for a slug, or nil on miss or when the
// cache is unavailable.
func GetSkill(ctx context.Context, rdb *redis.Client, slug string) *models.Skill {
	if rdb == nil {
		return nil
	}
	raw, err := rdb.Get(ctx, skillKey(slug)).Bytes()
	if err != nil {
		return nil
	}
	var skill models.Skill
	if err := json.Unmarshal(raw, &skill); err != nil {
		return nil
	}
	return &skill
}

// SetSkill stores a skill row under its slug. Failures are ignored; the cache
// is best effort.
func SetSkill(ctx context.Context, rdb *redis.Client, skill *models.Skill) {
	if rdb == nil || skill == nil {
		return
	}
	raw, err := json.Marshal(skill)
	if err != nil {
		return
	}
	rdb.Set(ctx, skillKey(skill.Slug), raw, skillTTL)
}

// InvalidateSkill drops the cached row for a slug.
func InvalidateSkill(ctx context.Context, rdb *redis.Client, slug string) {
	if rdb == nil || slug == "" {
		return
	}
	if err := rdb.Del(ctx, skillKey(slug)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		// Best effort; the TTL is the backstop.
		_ = err
	}
}
