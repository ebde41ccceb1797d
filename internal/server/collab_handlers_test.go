package server

import (
	"fmt"
	"net/http"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollabLifecycleOverHTTP(t *testing.T) {
	s, app, db := newTestServer(t)

	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)
	mallory := seedUser(t, db, "mallory", false)

	// Create
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/collabs",
		fmt.Sprintf(`{"receiver_id":%d,"message":"Guitar for Spanish?"}`, bob.ID),
		bearer(t, s, alice)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.CollabRequest
	decodeBody(t, resp, &created)
	assert.Equal(t, models.CollabStatusPending, created.Status)
	assert.Equal(t, alice.ID, created.RequesterID)

	collabURL := fmt.Sprintf("/api/collabs/%d", created.ID)

	// Requester cannot accept
	resp, err = app.Test(jsonRequest(http.MethodPost, collabURL+"/status",
		`{"status":"ACCEPTED"}`, bearer(t, s, alice)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Third party cannot touch it
	resp, err = app.Test(jsonRequest(http.MethodPost, collabURL+"/status",
		`{"status":"ACCEPTED"}`, bearer(t, s, mallory)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Receiver accepts
	resp, err = app.Test(jsonRequest(http.MethodPost, collabURL+"/status",
		`{"status":"ACCEPTED"}`, bearer(t, s, bob)))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var accepted models.CollabRequest
	decodeBody(t, resp, &accepted)
	assert.Equal(t, models.CollabStatusAccepted, accepted.Status)

	// Repeat accept conflicts
	resp, err = app.Test(jsonRequest(http.MethodPost, collabURL+"/status",
		`{"status":"ACCEPTED"}`, bearer(t, s, bob)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Either party completes
	resp, err = app.Test(jsonRequest(http.MethodPost, collabURL+"/status",
		`{"status":"COMPLETED"}`, bearer(t, s, alice)))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Terminal request can still be deleted by a party
	resp, err = app.Test(jsonRequest(http.MethodDelete, collabURL, "", bearer(t, s, bob)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodGet, collabURL, "", bearer(t, s, alice)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCollabRequiresAuth(t *testing.T) {
	_, app, _ := newTestServer(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/collabs",
		`{"receiver_id":1}`, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCollabCreateValidationOverHTTP(t *testing.T) {
	s, app, db := newTestServer(t)
	alice := seedUser(t, db, "alice", false)

	// Self request
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/collabs",
		fmt.Sprintf(`{"receiver_id":%d}`, alice.ID), bearer(t, s, alice)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown receiver
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/collabs",
		`{"receiver_id":9999}`, bearer(t, s, alice)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, models.ErrCodeNotFound, body.Code)
}

func TestCollabListOverHTTP(t *testing.T) {
	s, app, db := newTestServer(t)
	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)

	for i := 0; i < 3; i++ {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/collabs",
			fmt.Sprintf(`{"receiver_id":%d}`, bob.ID), bearer(t, s, alice)))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/collabs?status=PENDING", "",
		bearer(t, s, bob)))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var collabs []models.CollabRequest
	decodeBody(t, resp, &collabs)
	assert.Len(t, collabs, 3)

	// Bad status filter is a validation error
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/collabs?status=WAITING", "",
		bearer(t, s, bob)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCollabRescheduleOverHTTP(t *testing.T) {
	s, app, db := newTestServer(t)
	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/collabs",
		fmt.Sprintf(`{"receiver_id":%d}`, bob.ID), bearer(t, s, alice)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.CollabRequest
	decodeBody(t, resp, &created)

	url := fmt.Sprintf("/api/collabs/%d/reschedule", created.ID)

	resp, err = app.Test(jsonRequest(http.MethodPost, url,
		`{"scheduled_at":"2030-06-01T10:00:00Z"}`, bearer(t, s, bob)))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rescheduled models.CollabRequest
	decodeBody(t, resp, &rescheduled)
	require.NotNil(t, rescheduled.ScheduledAt)

	// Backdated times are accepted too
	resp, err = app.Test(jsonRequest(http.MethodPost, url,
		`{"scheduled_at":"2020-01-01T10:00:00Z"}`, bearer(t, s, alice)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
