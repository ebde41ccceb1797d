package service

import (
	"context"
	"log/slog"

	"skillswap/internal/middleware"
	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SignupInput carries a new account registration.
type SignupInput struct {
	Handle   string
	Email    string
	FullName string
	Password string
	Bio      string
}

// UpdateProfileInput carries a partial profile update. Nil fields are left
// untouched.
type UpdateProfileInput struct {
	FullName *string
	Bio      *string
}

// UserService manages accounts and authentication.
type UserService interface {
	Signup(ctx context.Context, input SignupInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	GetByHandle(ctx context.Context, handle string) (*models.User, error)
	UpdateProfile(ctx context.Context, id, actorUserID uint, input UpdateProfileInput) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
	Search(ctx context.Context, q string, limit, offset int) ([]models.User, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB) UserService {
	return &userService{users: repository.NewUserRepository(db)}
}

func (s *userService) Signup(ctx context.Context, input SignupInput) (*models.User, error) {
	if !validation.ValidHandle(input.Handle) {
		return nil, models.NewValidationError("Handle must be 3-50 characters: letters, digits, underscores")
	}
	if !validation.ValidEmail(input.Email) {
		return nil, models.NewValidationError("Invalid email address")
	}
	if input.FullName == "" {
		return nil, models.NewValidationError("Full name is required")
	}
	if msg := validation.PasswordStrength(input.Password); msg != "" {
		return nil, models.NewValidationError(msg)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Handle:       input.Handle,
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: string(hash),
		Bio:          input.Bio,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "User registered",
		slog.Uint64("user_id", uint64(user.ID)),
		slog.String("handle", user.Handle),
	)
	return user, nil
}

// Authenticate verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}
	if !user.IsActive {
		return nil, models.NewUnauthorizedError("Account is deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) GetByHandle(ctx context.Context, handle string) (*models.User, error) {
	return s.users.GetByHandle(ctx, handle)
}

func (s *userService) UpdateProfile(ctx context.Context, id, actorUserID uint, input UpdateProfileInput) (*models.User, error) {
	if id != actorUserID {
		return nil, models.NewForbiddenError("Cannot edit another user's profile")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.FullName != nil {
		if *input.FullName == "" {
			return nil, models.NewValidationError("Full name cannot be empty")
		}
		user.FullName = *input.FullName
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.users.List(ctx, limit, offset)
}

func (s *userService) Search(ctx context.Context, q string, limit, offset int) ([]models.User, error) {
	if q == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.users.Search(ctx, q, limit, offset)
}
