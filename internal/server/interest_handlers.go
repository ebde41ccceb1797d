package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserInterests handles GET /api/users/:id/interests
// @Summary List skills a user wants to learn
// @Tags user-interests
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.UserInterest
// @Router /users/{id}/interests [get]
func (s *Server) GetUserInterests(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	interests, err := s.userInterestRepo.ListByUser(c.UserContext(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(interests)
}

// GetMyUserInterests handles GET /api/user-interests
// @Summary List the skills I want to learn
// @Tags user-interests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserInterest
// @Router /user-interests [get]
func (s *Server) GetMyUserInterests(c *fiber.Ctx) error {
	interests, err := s.userInterestRepo.ListByUser(c.UserContext(), actorID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(interests)
}

// CreateUserInterest handles POST /api/user-interests
// @Summary Add a learning interest
// @Tags user-interests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{skill_id=int,desired_level=string,priority=int,note=string} true "Interest"
// @Success 201 {object} models.UserInterest
// @Failure 409 {object} models.ErrorResponse
// @Router /user-interests [post]
func (s *Server) CreateUserInterest(c *fiber.Ctx) error {
	var req struct {
		SkillID      uint                `json:"skill_id"`
		DesiredLevel models.DesiredLevel `json:"desired_level"`
		Priority     int                 `json:"priority"`
		Note         string              `json:"note"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.DesiredLevel == "" {
		req.DesiredLevel = models.DesiredLevelBeginner
	}
	if !req.DesiredLevel.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid desired level"))
	}
	if req.Priority == 0 {
		req.Priority = 3
	}
	if req.Priority < 1 || req.Priority > 5 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Priority must be between 1 and 5"))
	}
	if len(req.Note) > 200 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Note must be at most 200 characters"))
	}

	ok, err := s.skillRepo.Exists(c.UserContext(), req.SkillID)
	if err != nil {
		return respondErr(c, err)
	}
	if !ok {
		return respondErr(c, models.NewNotFoundError("Skill", req.SkillID))
	}

	ui := &models.UserInterest{
		UserID:       actorID(c),
		SkillID:      req.SkillID,
		DesiredLevel: req.DesiredLevel,
		Priority:     req.Priority,
		Note:         req.Note,
	}
	if err := s.userInterestRepo.Create(c.UserContext(), ui); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ui)
}

// UpdateUserInterest handles PATCH /api/user-interests/:userId/:skillId
// @Summary Update a learning interest
// @Tags user-interests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param skillId path int true "Skill ID"
// @Param request body object{desired_level=string,priority=int,note=string} true "Fields to update"
// @Success 200 {object} models.UserInterest
// @Failure 403 {object} models.ErrorResponse
// @Router /user-interests/{userId}/{skillId} [patch]
func (s *Server) UpdateUserInterest(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	skillID, err := s.parseID(c, "skillId")
	if err != nil {
		return nil
	}
	if userID != actorID(c) {
		return respondErr(c, models.NewForbiddenError("Cannot edit another user's interests"))
	}

	ui, err := s.userInterestRepo.GetByPair(c.UserContext(), userID, skillID)
	if err != nil {
		return respondErr(c, err)
	}

	var req struct {
		DesiredLevel *models.DesiredLevel `json:"desired_level"`
		Priority     *int                 `json:"priority"`
		Note         *string              `json:"note"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.DesiredLevel != nil {
		if !req.DesiredLevel.Valid() {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid desired level"))
		}
		ui.DesiredLevel = *req.DesiredLevel
	}
	if req.Priority != nil {
		if *req.Priority < 1 || *req.Priority > 5 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Priority must be between 1 and 5"))
		}
		ui.Priority = *req.Priority
	}
	if req.Note != nil {
		ui.Note = *req.Note
	}

	if err := s.userInterestRepo.Update(c.UserContext(), ui); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(ui)
}

// DeleteUserInterest handles DELETE /api/user-interests/:userId/:skillId
// @Summary Remove a learning interest
// @Tags user-interests
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param skillId path int true "Skill ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse
// @Router /user-interests/{userId}/{skillId} [delete]
func (s *Server) DeleteUserInterest(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	skillID, err := s.parseID(c, "skillId")
	if err != nil {
		return nil
	}
	if userID != actorID(c) {
		return respondErr(c, models.NewForbiddenError("Cannot edit another user's interests"))
	}

	ui, err := s.userInterestRepo.GetByPair(c.UserContext(), userID, skillID)
	if err != nil {
		return respondErr(c, err)
	}
	if err := s.userInterestRepo.Delete(c.UserContext(), ui.ID); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
