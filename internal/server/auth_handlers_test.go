package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupLoginMe(t *testing.T) {
	_, app, _ := newTestServer(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/signup",
		`{"handle":"alice","email":"alice@example.com","full_name":"Alice Ng","password":"correct1horse"}`, ""))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var signup struct {
		Token string `json:"token"`
		User  struct {
			ID     uint   `json:"id"`
			Handle string `json:"handle"`
		} `json:"user"`
	}
	decodeBody(t, resp, &signup)
	require.NotEmpty(t, signup.Token)
	assert.Equal(t, "alice", signup.User.Handle)

	// Login with the same credentials
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"correct1horse"}`, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Wrong password
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong2password"}`, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Me with the signup token
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/auth/me", "",
		"Bearer "+signup.Token))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me struct {
		Handle string `json:"handle"`
	}
	decodeBody(t, resp, &me)
	assert.Equal(t, "alice", me.Handle)
}

func TestSignupWeakPasswordRejected(t *testing.T) {
	_, app, _ := newTestServer(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/signup",
		`{"handle":"alice","email":"alice@example.com","full_name":"Alice","password":"short"}`, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	_, app, _ := newTestServer(t)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/auth/me", "",
		"Bearer not-a-token"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPasswordNeverSerialized(t *testing.T) {
	_, app, _ := newTestServer(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/signup",
		`{"handle":"alice","email":"alice@example.com","full_name":"Alice","password":"correct1horse"}`, ""))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var raw map[string]any
	decodeBody(t, resp, &raw)
	user, ok := raw["user"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, user, "password_hash")
}
