package server

import (
	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetSkills handles GET /api/skills
// @Summary List skill catalog
// @Tags skills
// @Produce json
// @Param q query string false "Search by name or slug"
// @Param category query string false "Filter by category"
// @Param include_inactive query bool false "Include deactivated skills"
// @Success 200 {array} models.Skill
// @Router /skills [get]
func (s *Server) GetSkills(c *fiber.Ctx) error {
	p := parsePagination(c, 50)

	skills, err := s.skillService.List(c.UserContext(), repository.SkillListOptions{
		Query:      c.Query("q"),
		Category:   c.Query("category"),
		OnlyActive: !c.QueryBool("include_inactive"),
		Limit:      p.Limit,
		Offset:     p.Offset,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(skills)
}

// GetSkill handles GET /api/skills/:idOrSlug
// @Summary Get a skill by id or slug
// @Tags skills
// @Produce json
// @Param idOrSlug path string true "Skill ID or slug"
// @Success 200 {object} models.Skill
// @Failure 404 {object} models.ErrorResponse
// @Router /skills/{idOrSlug} [get]
func (s *Server) GetSkill(c *fiber.Ctx) error {
	skill, err := s.skillService.Get(c.UserContext(), c.Params("idOrSlug"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(skill)
}

// CreateSkill handles POST /api/skills
// @Summary Create a catalog skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{name=string,slug=string,category=string,synonyms=[]string} true "Skill"
// @Success 201 {object} models.Skill
// @Failure 409 {object} models.ErrorResponse
// @Router /skills [post]
func (s *Server) CreateSkill(c *fiber.Ctx) error {
	var req struct {
		Name     string   `json:"name"`
		Slug     string   `json:"slug"`
		Category string   `json:"category"`
		Synonyms []string `json:"synonyms"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	skill, err := s.skillService.Create(c.UserContext(), service.CreateSkillInput{
		Name:     req.Name,
		Slug:     req.Slug,
		Category: req.Category,
		Synonyms: req.Synonyms,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(skill)
}

// UpdateSkill handles PATCH /api/skills/:idOrSlug
// @Summary Update a catalog skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param idOrSlug path string true "Skill ID or slug"
// @Param request body object{name=string,category=string,is_active=bool} true "Fields to update"
// @Success 200 {object} models.Skill
// @Router /skills/{idOrSlug} [patch]
func (s *Server) UpdateSkill(c *fiber.Ctx) error {
	skill, err := s.skillService.Get(c.UserContext(), c.Params("idOrSlug"))
	if err != nil {
		return respondErr(c, err)
	}

	var req struct {
		Name     *string `json:"name"`
		Category *string `json:"category"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	updated, err := s.skillService.Update(c.UserContext(), skill.ID, service.UpdateSkillInput{
		Name:     req.Name,
		Category: req.Category,
		IsActive: req.IsActive,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(updated)
}

// DeleteSkill handles DELETE /api/skills/:idOrSlug
// Deactivates by default; ?purge=true removes the row permanently.
// @Summary Remove a catalog skill
// @Tags skills
// @Security BearerAuth
// @Param idOrSlug path string true "Skill ID or slug"
// @Param purge query bool false "Hard delete instead of deactivating"
// @Success 204
// @Router /skills/{idOrSlug} [delete]
func (s *Server) DeleteSkill(c *fiber.Ctx) error {
	skill, err := s.skillService.Get(c.UserContext(), c.Params("idOrSlug"))
	if err != nil {
		return respondErr(c, err)
	}

	if c.QueryBool("purge") {
		err = s.skillService.Delete(c.UserContext(), skill.ID)
	} else {
		err = s.skillService.Deactivate(c.UserContext(), skill.ID)
	}
	if err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
