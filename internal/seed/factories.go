// Package seed provides helpers to create demo and test data for the
// application database. Intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"skillswap/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // weak randomness is fine for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// seedPasswordHash is shared by all seeded users so logins are predictable.
// Password: password123
var seedPasswordHash = func() string {
	h, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	return string(h)
}()

// CreateUser persists a user with a generated handle and profile. The index
// is mixed into the handle to keep it unique across a run.
func (f *Factory) CreateUser(i int) (*models.User, error) {
	handle := fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i)
	if len(handle) > 50 {
		handle = handle[:50]
	}

	user := &models.User{
		Handle:       handle,
		Email:        fmt.Sprintf("%s@example.com", handle),
		FullName:     gofakeit.Name(),
		PasswordHash: seedPasswordHash,
		Bio:          gofakeit.Sentence(8),
		IsActive:     true,
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateSkillProfile gives a user a taught skill with a plausible level.
func (f *Factory) CreateSkillProfile(user *models.User, skill *models.Skill) (*models.UserSkill, error) {
	levels := []models.SkillLevel{
		models.SkillLevelBeginner,
		models.SkillLevelIntermediate,
		models.SkillLevelAdvanced,
		models.SkillLevelExpert,
	}
	us := &models.UserSkill{
		UserID:   user.ID,
		SkillID:  skill.ID,
		Level:    levels[f.r.Intn(len(levels))],
		YearsExp: float64(f.r.Intn(20)) + float64(f.r.Intn(10))/10,
	}
	if err := f.db.Create(us).Error; err != nil {
		return nil, err
	}
	return us, nil
}

// CreateInterest gives a user a learning interest in a skill.
func (f *Factory) CreateInterest(user *models.User, skill *models.Skill) (*models.UserInterest, error) {
	levels := []models.DesiredLevel{
		models.DesiredLevelBeginner,
		models.DesiredLevelIntermediate,
		models.DesiredLevelAdvanced,
	}
	ui := &models.UserInterest{
		UserID:       user.ID,
		SkillID:      skill.ID,
		DesiredLevel: levels[f.r.Intn(len(levels))],
		Priority:     f.r.Intn(5) + 1,
	}
	if err := f.db.Create(ui).Error; err != nil {
		return nil, err
	}
	return ui, nil
}

// CreateCollab persists a collaboration request in the given status with a
// created_at spread over the last 60 days.
func (f *Factory) CreateCollab(requester, receiver *models.User, status models.CollabStatus) (*models.CollabRequest, error) {
	createdAt := time.Now().UTC().
		Add(-time.Duration(f.r.Intn(60*24)) * time.Hour)

	collab := &models.CollabRequest{
		RequesterID: requester.ID,
		ReceiverID:  receiver.ID,
		Status:      status,
		Message:     gofakeit.Sentence(10),
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	if status == models.CollabStatusAccepted || status == models.CollabStatusCompleted {
		at := time.Now().UTC().Add(time.Duration(f.r.Intn(14*24)) * time.Hour)
		collab.ScheduledAt = &at
	}
	if err := f.db.Create(collab).Error; err != nil {
		return nil, err
	}
	return collab, nil
}

// CreateReview persists a review tied to a completed collaboration.
func (f *Factory) CreateReview(collab *models.CollabRequest, reviewerID, revieweeID uint) (*models.Review, error) {
	review := &models.Review{
		ReviewerID:      reviewerID,
		RevieweeID:      revieweeID,
		CollabRequestID: &collab.ID,
		Rating:          f.r.Intn(3) + 3, // seeded reviews skew positive
		Comment:         gofakeit.Sentence(12),
	}
	if err := f.db.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// CreateAvailability gives a user one evening and one weekend window.
func (f *Factory) CreateAvailability(user *models.User) error {
	slots := []models.AvailabilitySlot{
		{
			UserID:      user.ID,
			Weekday:     f.r.Intn(5) + 1, // Mon-Fri
			StartMinute: 18 * 60,
			EndMinute:   21 * 60,
			IsOnline:    true,
		},
		{
			UserID:      user.ID,
			Weekday:     f.r.Intn(2) + 6, // Sat-Sun
			StartMinute: 10 * 60,
			EndMinute:   13 * 60,
			IsOnline:    f.r.Intn(2) == 0,
			Location:    gofakeit.City(),
		},
	}
	for i := range slots {
		if err := f.db.Create(&slots[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
