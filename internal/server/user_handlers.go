package server

import (
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/auth/me
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Router /auth/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.Get(c.UserContext(), actorID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{full_name=string,bio=string} true "Profile fields"
// @Success 200 {object} models.User
// @Router /users/me [put]
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		FullName *string `json:"full_name"`
		Bio      *string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	uid := actorID(c)
	user, err := s.userService.UpdateProfile(c.UserContext(), uid, uid, service.UpdateProfileInput{
		FullName: req.FullName,
		Bio:      req.Bio,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(user)
}

// GetUsers handles GET /api/users
// @Summary List or search users
// @Tags users
// @Produce json
// @Param q query string false "Search by handle or name"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.User
// @Router /users [get]
func (s *Server) GetUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	var (
		users []models.User
		err   error
	)
	if q := c.Query("q"); q != "" {
		users, err = s.userService.Search(c.UserContext(), q, p.Limit, p.Offset)
	} else {
		users, err = s.userService.List(c.UserContext(), p.Limit, p.Offset)
	}
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(users)
}

// GetUserProfile handles GET /api/users/:id
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [get]
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.Get(c.UserContext(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(user)
}
