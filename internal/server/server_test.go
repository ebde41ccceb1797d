package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/featureflags"
	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer wires a Server onto an in-memory database with routes
// registered. Prometheus middleware stays nil so repeated test runs do not
// fight over the default registry.
func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))

	cfg := &config.Config{
		JWTSecret: "test-secret-0123456789-0123456789",
		Port:      "0",
		Env:       "test",
	}

	s := &Server{
		config:           cfg,
		db:               db,
		featureFlags:     featureflags.NewManager(""),
		userRepo:         repository.NewUserRepository(db),
		skillRepo:        repository.NewSkillRepository(db),
		userSkillRepo:    repository.NewUserSkillRepository(db),
		userInterestRepo: repository.NewUserInterestRepository(db),
		matchRepo:        repository.NewMatchRepository(db),
		reviewRepo:       repository.NewReviewRepository(db),
		availabilityRepo: repository.NewAvailabilityRepository(db),
		auditRepo:        repository.NewAuditRepository(db),
	}
	s.userService = service.NewUserService(db)
	s.skillService = service.NewSkillService(db, nil)
	s.collabService = service.NewCollabService(db)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app, db
}

func seedUser(t *testing.T, db *gorm.DB, handle string, admin bool) *models.User {
	t.Helper()

	user := &models.User{
		Handle:       handle,
		Email:        handle + "@example.com",
		FullName:     "Test " + handle,
		PasswordHash: "x",
		IsActive:     true,
		IsAdmin:      admin,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// bearer returns an Authorization header value for the given user.
func bearer(t *testing.T, s *Server, user *models.User) string {
	t.Helper()

	token, err := s.generateToken(user.ID, user.Handle)
	require.NoError(t, err)
	return "Bearer " + token
}

func jsonRequest(method, target, body, auth string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
