package server

import (
	"fmt"
	"net/http"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillCatalogAdminOnly(t *testing.T) {
	s, app, db := newTestServer(t)
	admin := seedUser(t, db, "admin", true)
	alice := seedUser(t, db, "alice", false)

	// Non-admin cannot create catalog entries
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/skills",
		`{"name":"Guitar"}`, bearer(t, s, alice)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Admin can
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/skills",
		`{"name":"Guitar","category":"music"}`, bearer(t, s, admin)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var skill models.Skill
	decodeBody(t, resp, &skill)
	assert.Equal(t, "guitar", skill.Slug)

	// Anyone can read, by slug or id
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/skills/guitar", "", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(jsonRequest(http.MethodGet, fmt.Sprintf("/api/skills/%d", skill.ID), "", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestSkillDeleteDefaultsToDeactivate(t *testing.T) {
	s, app, db := newTestServer(t)
	admin := seedUser(t, db, "admin", true)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/skills",
		`{"name":"Piano"}`, bearer(t, s, admin)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(jsonRequest(http.MethodDelete, "/api/skills/piano", "",
		bearer(t, s, admin)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Still resolvable, just inactive
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/skills/piano", "", ""))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var skill models.Skill
	decodeBody(t, resp, &skill)
	assert.False(t, skill.IsActive)

	// Purge removes it entirely
	resp, err = app.Test(jsonRequest(http.MethodDelete, "/api/skills/piano?purge=true", "",
		bearer(t, s, admin)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/skills/piano", "", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUserSkillPairLifecycle(t *testing.T) {
	s, app, db := newTestServer(t)
	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)
	guitar := &models.Skill{Name: "Guitar", Slug: "guitar", IsActive: true}
	require.NoError(t, db.Create(guitar).Error)

	// Add
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/user-skills",
		fmt.Sprintf(`{"skill_id":%d,"level":"advanced","years_exp":5}`, guitar.ID),
		bearer(t, s, alice)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Duplicate pair conflicts
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/user-skills",
		fmt.Sprintf(`{"skill_id":%d}`, guitar.ID), bearer(t, s, alice)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Bob cannot edit alice's entry
	pairURL := fmt.Sprintf("/api/user-skills/%d/%d", alice.ID, guitar.ID)
	resp, err = app.Test(jsonRequest(http.MethodPatch, pairURL,
		`{"level":"beginner"}`, bearer(t, s, bob)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Alice can
	resp, err = app.Test(jsonRequest(http.MethodPatch, pairURL,
		`{"level":"expert"}`, bearer(t, s, alice)))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var us models.UserSkill
	decodeBody(t, resp, &us)
	assert.Equal(t, models.SkillLevelExpert, us.Level)

	// Public listing
	resp, err = app.Test(jsonRequest(http.MethodGet,
		fmt.Sprintf("/api/users/%d/skills", alice.ID), "", ""))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listed []models.UserSkill
	decodeBody(t, resp, &listed)
	assert.Len(t, listed, 1)

	// Remove
	resp, err = app.Test(jsonRequest(http.MethodDelete, pairURL, "", bearer(t, s, alice)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
