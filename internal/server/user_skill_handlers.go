package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserSkills handles GET /api/users/:id/skills
// @Summary List skills a user teaches
// @Tags user-skills
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.UserSkill
// @Router /users/{id}/skills [get]
func (s *Server) GetUserSkills(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	skills, err := s.userSkillRepo.ListByUser(c.UserContext(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(skills)
}

// GetMyUserSkills handles GET /api/user-skills
// @Summary List the skills I teach
// @Tags user-skills
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserSkill
// @Router /user-skills [get]
func (s *Server) GetMyUserSkills(c *fiber.Ctx) error {
	skills, err := s.userSkillRepo.ListByUser(c.UserContext(), actorID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(skills)
}

// CreateUserSkill handles POST /api/user-skills
// The entry is always created for the authenticated user.
// @Summary Add a teachable skill
// @Tags user-skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{skill_id=int,level=string,years_exp=number,note=string} true "Teachable skill"
// @Success 201 {object} models.UserSkill
// @Failure 409 {object} models.ErrorResponse
// @Router /user-skills [post]
func (s *Server) CreateUserSkill(c *fiber.Ctx) error {
	var req struct {
		SkillID  uint              `json:"skill_id"`
		Level    models.SkillLevel `json:"level"`
		YearsExp float64           `json:"years_exp"`
		Note     string            `json:"note"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Level == "" {
		req.Level = models.SkillLevelIntermediate
	}
	if !req.Level.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid skill level"))
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

	us := &models.UserSkill{
		UserID:   actorID(c),
		SkillID:  req.SkillID,
		Level:    req.Level,
		YearsExp: req.YearsExp,
		Note:     req.Note,
	}
	if err := s.userSkillRepo.Create(c.UserContext(), us); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(us)
}

// UpdateUserSkill handles PATCH /api/user-skills/:userId/:skillId
// @Summary Update a teachable skill entry
// @Tags user-skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param skillId path int true "Skill ID"
// @Param request body object{level=string,years_exp=number,note=string} true "Fields to update"
// @Success 200 {object} models.UserSkill
// @Failure 403 {object} models.ErrorResponse
// @Router /user-skills/{userId}/{skillId} [patch]
func (s *Server) UpdateUserSkill(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	skillID, err := s.parseID(c, "skillId")
	if err != nil {
		return nil
	}
	if userID != actorID(c) {
		return respondErr(c, models.NewForbiddenError("Cannot edit another user's skills"))
	}

	us, err := s.userSkillRepo.GetByPair(c.UserContext(), userID, skillID)
	if err != nil {
		return respondErr(c, err)
	}

	var req struct {
		Level    *models.SkillLevel `json:"level"`
		YearsExp *float64           `json:"years_exp"`
		Note     *string            `json:"note"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Level != nil {
		if !req.Level.Valid() {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid skill level"))
		}
		us.Level = *req.Level
	}
	if req.YearsExp != nil {
		us.YearsExp = *req.YearsExp
	}
	if req.Note != nil {
		if len(*req.Note) > 200 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Note must be at most 200 characters"))
		}
		us.Note = *req.Note
	}

	if err := s.userSkillRepo.Update(c.UserContext(), us); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(us)
}

// DeleteUserSkill handles DELETE /api/user-skills/:userId/:skillId
// @Summary Remove a teachable skill entry
// @Tags user-skills
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param skillId path int true "Skill ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse
// @Router /user-skills/{userId}/{skillId} [delete]
func (s *Server) DeleteUserSkill(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	skillID, err := s.parseID(c, "skillId")
	if err != nil {
		return nil
	}
	if userID != actorID(c) {
		return respondErr(c, models.NewForbiddenError("Cannot edit another user's skills"))
	}

	us, err := s.userSkillRepo.GetByPair(c.UserContext(), userID, skillID)
	if err != nil {
		return respondErr(c, err)
	}
	if err := s.userSkillRepo.Delete(c.UserContext(), us.ID); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
