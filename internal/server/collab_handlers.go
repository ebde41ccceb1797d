package server

import (
	"time"

	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateCollab handles POST /api/collabs
// The authenticated user is always the requester.
// @Summary Create a collaboration request
// @Tags collabs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{receiver_id=int,offered_skill_id=int,wanted_skill_id=int,message=string,scheduled_at=string} true "Request"
// @Success 201 {object} models.CollabRequest
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /collabs [post]
func (s *Server) CreateCollab(c *fiber.Ctx) error {
	var req struct {
		ReceiverID     uint       `json:"receiver_id"`
		OfferedSkillID *uint      `json:"offered_skill_id"`
		WantedSkillID  *uint      `json:"wanted_skill_id"`
		Message        string     `json:"message"`
		ScheduledAt    *time.Time `json:"scheduled_at"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	collab, err := s.collabService.Create(c.UserContext(), service.CreateCollabInput{
		ActorUserID:    actorID(c),
		ReceiverID:     req.ReceiverID,
		OfferedSkillID: req.OfferedSkillID,
		WantedSkillID:  req.WantedSkillID,
		Message:        req.Message,
		ScheduledAt:    req.ScheduledAt,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(collab)
}

// GetCollab handles GET /api/collabs/:id
// @Summary Get a collaboration request
// @Tags collabs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} models.CollabRequest
// @Failure 404 {object} models.ErrorResponse
// @Router /collabs/{id} [get]
func (s *Server) GetCollab(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	collab, err := s.collabService.Get(c.UserContext(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(collab)
}

// GetCollabs handles GET /api/collabs
// @Summary List collaboration requests
// @Tags collabs
// @Produce json
// @Security BearerAuth
// @Param user_id query int false "Filter by participant (defaults to caller)"
// @Param role query string false "requester or receiver"
// @Param status query string false "Filter by status"
// @Param since query string false "Created at or after (RFC3339)"
// @Param until query string false "Created before (RFC3339)"
// @Success 200 {array} models.CollabRequest
// @Router /collabs [get]
func (s *Server) GetCollabs(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	// Default to the caller's own requests.
	userID := actorID(c)
	if qid := c.QueryInt("user_id", 0); qid > 0 {
		userID = uint(qid)
	}

	filter := repository.CollabFilter{
		UserID: &userID,
		Role:   c.Query("role"),
		Limit:  p.Limit,
		Offset: p.Offset,
	}
	if raw := c.Query("status"); raw != "" {
		status := models.CollabStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid since timestamp"))
		}
		filter.Since = &t
	}
	if raw := c.Query("until"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid until timestamp"))
		}
		filter.Until = &t
	}

	collabs, err := s.collabService.List(c.UserContext(), filter)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(collabs)
}

// SetCollabStatus handles POST /api/collabs/:id/status
// @Summary Transition a collaboration request
// @Tags collabs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body object{status=string} true "Target status"
// @Success 200 {object} models.CollabRequest
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /collabs/{id}/status [post]
func (s *Server) SetCollabStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	collab, err := s.collabService.SetStatus(c.UserContext(), id, actorID(c),
		models.CollabStatus(req.Status))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(collab)
}

// RescheduleCollab handles POST /api/collabs/:id/reschedule
// A null scheduled_at clears the session time.
// @Summary Reschedule a collaboration request
// @Tags collabs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body object{scheduled_at=string} true "New time (RFC3339) or null"
// @Success 200 {object} models.CollabRequest
// @Failure 409 {object} models.ErrorResponse
// @Router /collabs/{id}/reschedule [post]
func (s *Server) RescheduleCollab(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		ScheduledAt *time.Time `json:"scheduled_at"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	collab, err := s.collabService.Reschedule(c.UserContext(), id, actorID(c), req.ScheduledAt)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(collab)
}

// DeleteCollab handles DELETE /api/collabs/:id
// @Summary Delete a collaboration request
// @Tags collabs
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse
// @Router /collabs/{id} [delete]
func (s *Server) DeleteCollab(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.collabService.Delete(c.UserContext(), id, actorID(c)); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
