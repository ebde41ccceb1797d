package seed

import (
	"fmt"
	"log"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumCollabs  int
	ShouldClean bool
}

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded data. PostgreSQL only.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE reviews, audit_logs, collab_requests, match_candidates, matches,
		availability_slots, user_interests, user_skills, skills, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

// Seed populates the database with test users, skill profiles, and a mesh of
// collaboration requests across every status.
func (s *Seeder) Seed(opts Options) error {
	log.Printf("Seeding %d users and %d collab requests...", opts.NumUsers, opts.NumCollabs)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	if err := Catalog(s.db); err != nil {
		return fmt.Errorf("seed skill catalog: %w", err)
	}

	var skills []models.Skill
	if err := s.db.Where("is_active = ?", true).Find(&skills).Error; err != nil {
		return fmt.Errorf("load skill catalog: %w", err)
	}

	users, err := s.SeedUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	log.Printf("created %d users", len(users))

	if err := s.SeedProfiles(users, skills); err != nil {
		return fmt.Errorf("seed skill profiles: %w", err)
	}

	collabs, err := s.SeedExchangeMesh(users, opts.NumCollabs)
	if err != nil {
		return fmt.Errorf("seed collab requests: %w", err)
	}
	log.Printf("created %d collab requests", len(collabs))

	log.Println("Seeding completed")
	return nil
}

// SeedUsers creates count users with generated profiles.
func (s *Seeder) SeedUsers(count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user, err := s.factory.CreateUser(i)
		if err != nil {
			log.Printf("failed to create user %d: %v", i, err)
			continue
		}
		users = append(users, user)
	}
	if len(users) == 0 && count > 0 {
		return nil, fmt.Errorf("no users could be created")
	}
	return users, nil
}

// SeedProfiles gives each user 1-3 taught skills, 1-2 interests, and a pair
// of availability windows.
func (s *Seeder) SeedProfiles(users []*models.User, skills []models.Skill) error {
	if len(skills) == 0 {
		return fmt.Errorf("empty skill catalog")
	}
	r := s.factory.r

	for _, user := range users {
		taught := map[uint]bool{}
		for n := r.Intn(3) + 1; n > 0; n-- {
			skill := &skills[r.Intn(len(skills))]
			if taught[skill.ID] {
				continue
			}
			taught[skill.ID] = true
			if _, err := s.factory.CreateSkillProfile(user, skill); err != nil {
				return err
			}
		}

		wanted := map[uint]bool{}
		for n := r.Intn(2) + 1; n > 0; n-- {
			skill := &skills[r.Intn(len(skills))]
			if taught[skill.ID] || wanted[skill.ID] {
				continue
			}
			wanted[skill.ID] = true
			if _, err := s.factory.CreateInterest(user, skill); err != nil {
				return err
			}
		}

		if err := s.factory.CreateAvailability(user); err != nil {
			return err
		}
	}
	return nil
}

// exchange mesh status distribution out of 10
var meshStatuses = []models.CollabStatus{
	models.CollabStatusPending, models.CollabStatusPending, models.CollabStatusPending,
	models.CollabStatusAccepted, models.CollabStatusAccepted,
	models.CollabStatusCompleted, models.CollabStatusCompleted,
	models.CollabStatusDeclined, models.CollabStatusDeclined,
	models.CollabStatusCancelled,
}

// SeedExchangeMesh creates count collab requests between random user pairs,
// with reviews attached to roughly half of the completed ones.
func (s *Seeder) SeedExchangeMesh(users []*models.User, count int) ([]*models.CollabRequest, error) {
	if len(users) < 2 {
		return nil, fmt.Errorf("need at least 2 users to seed collab requests")
	}
	r := s.factory.r

	collabs := make([]*models.CollabRequest, 0, count)
	for i := 0; i < count; i++ {
		requester := users[r.Intn(len(users))]
		receiver := users[r.Intn(len(users))]
		if requester.ID == receiver.ID {
			continue
		}

		status := meshStatuses[r.Intn(len(meshStatuses))]
		collab, err := s.factory.CreateCollab(requester, receiver, status)
		if err != nil {
			return nil, err
		}
		collabs = append(collabs, collab)

		if status == models.CollabStatusCompleted && r.Intn(2) == 0 {
			if _, err := s.factory.CreateReview(collab, requester.ID, receiver.ID); err != nil {
				return nil, err
			}
		}
	}
	return collabs, nil
}
