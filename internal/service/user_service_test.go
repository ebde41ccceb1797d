package service

import (
	"context"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	user, err := svc.Signup(ctx, SignupInput{
		Handle:   "alice",
		Email:    "alice@example.com",
		FullName: "Alice Ng",
		Password: "correct1horse",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "correct1horse", user.PasswordHash, "password must be hashed")

	authed, err := svc.Authenticate(ctx, "alice@example.com", "correct1horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	_, err = svc.Authenticate(ctx, "alice@example.com", "wrong2password")
	assertAppErrorCode(t, err, models.ErrCodeUnauthorized)

	// Unknown email fails identically to a wrong password.
	_, err = svc.Authenticate(ctx, "nobody@example.com", "correct1horse")
	assertAppErrorCode(t, err, models.ErrCodeUnauthorized)
}

func TestSignupValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	cases := []struct {
		name  string
		input SignupInput
	}{
		{"bad handle", SignupInput{Handle: "a!", Email: "a@b.co", FullName: "A", Password: "correct1horse"}},
		{"bad email", SignupInput{Handle: "alice", Email: "nope", FullName: "A", Password: "correct1horse"}},
		{"weak password", SignupInput{Handle: "alice", Email: "a@b.co", FullName: "A", Password: "short"}},
		{"missing name", SignupInput{Handle: "alice", Email: "a@b.co", Password: "correct1horse"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signup(ctx, tc.input)
			assertAppErrorCode(t, err, models.ErrCodeValidation)
		})
	}
}

func TestSignupDuplicateHandle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{
		Handle: "alice", Email: "alice@example.com", FullName: "Alice", Password: "correct1horse",
	})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, SignupInput{
		Handle: "alice", Email: "alice2@example.com", FullName: "Alice Too", Password: "correct1horse",
	})
	assertAppErrorCode(t, err, models.ErrCodeConflict)
}

func TestUpdateProfileOwnerOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	bio := "Plays jazz guitar"
	updated, err := svc.UpdateProfile(ctx, alice.ID, alice.ID, UpdateProfileInput{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)

	_, err = svc.UpdateProfile(ctx, alice.ID, bob.ID, UpdateProfileInput{Bio: &bio})
	assertAppErrorCode(t, err, models.ErrCodeForbidden)
}
