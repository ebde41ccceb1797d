package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

func validSlotWindow(weekday, start, end int) string {
	if weekday < 1 || weekday > 7 {
		return "Weekday must be between 1 (Monday) and 7 (Sunday)"
	}
	if start < 0 || start >= 1440 {
		return "Start minute must be between 0 and 1439"
	}
	if end <= start || end > 1440 {
		return "End minute must be after start and at most 1440"
	}
	return ""
}

// GetUserAvailability handles GET /api/users/:id/availability
// @Summary List a user's weekly availability
// @Tags availability
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.AvailabilitySlot
// @Router /users/{id}/availability [get]
func (s *Server) GetUserAvailability(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	slots, err := s.availabilityRepo.ListByUser(c.UserContext(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(slots)
}

// GetMyAvailability handles GET /api/availability-slots
// @Summary List my availability slots
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AvailabilitySlot
// @Router /availability-slots [get]
func (s *Server) GetMyAvailability(c *fiber.Ctx) error {
	slots, err := s.availabilityRepo.ListByUser(c.UserContext(), actorID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(slots)
}

// CreateAvailabilitySlot handles POST /api/availability-slots
// @Summary Add a weekly availability window
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{weekday=int,start_minute=int,end_minute=int,is_online=bool,location=string} true "Slot"
// @Success 201 {object} models.AvailabilitySlot
// @Router /availability-slots [post]
func (s *Server) CreateAvailabilitySlot(c *fiber.Ctx) error {
	var req struct {
		Weekday     int    `json:"weekday"`
		StartMinute int    `json:"start_minute"`
		EndMinute   int    `json:"end_minute"`
		IsOnline    *bool  `json:"is_online"`
		Location    string `json:"location"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if msg := validSlotWindow(req.Weekday, req.StartMinute, req.EndMinute); msg != "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(msg))
	}

	isOnline := true
	if req.IsOnline != nil {
		isOnline = *req.IsOnline
	}

	slot := &models.AvailabilitySlot{
		UserID:      actorID(c),
		Weekday:     req.Weekday,
		StartMinute: req.StartMinute,
		EndMinute:   req.EndMinute,
		IsOnline:    isOnline,
		Location:    req.Location,
	}
	if err := s.availabilityRepo.Create(c.UserContext(), slot); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(slot)
}

// UpdateAvailabilitySlot handles PATCH /api/availability-slots/:id
// @Summary Update an availability window
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Param request body object{weekday=int,start_minute=int,end_minute=int,is_online=bool,location=string} true "Fields to update"
// @Success 200 {object} models.AvailabilitySlot
// @Failure 403 {object} models.ErrorResponse
// @Router /availability-slots/{id} [patch]
func (s *Server) UpdateAvailabilitySlot(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	slot, err := s.availabilityRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondErr(c, err)
	}
	if slot.UserID != actorID(c) {
		return respondErr(c, models.NewForbiddenError("Cannot edit another user's availability"))
	}

	var req struct {
		Weekday     *int    `json:"weekday"`
		StartMinute *int    `json:"start_minute"`
		EndMinute   *int    `json:"end_minute"`
		IsOnline    *bool   `json:"is_online"`
		Location    *string `json:"location"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Weekday != nil {
		slot.Weekday = *req.Weekday
	}
	if req.StartMinute != nil {
		slot.StartMinute = *req.StartMinute
	}
	if req.EndMinute != nil {
		slot.EndMinute = *req.EndMinute
	}
	if msg := validSlotWindow(slot.Weekday, slot.StartMinute, slot.EndMinute); msg != "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(msg))
	}
	if req.IsOnline != nil {
		slot.IsOnline = *req.IsOnline
	}
	if req.Location != nil {
		slot.Location = *req.Location
	}

	if err := s.availabilityRepo.Update(c.UserContext(), slot); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(slot)
}

// DeleteAvailabilitySlot handles DELETE /api/availability-slots/:id
// @Summary Remove an availability window
// @Tags availability
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse
// @Router /availability-slots/{id} [delete]
func (s *Server) DeleteAvailabilitySlot(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	slot, err := s.availabilityRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondErr(c, err)
	}
	if slot.UserID != actorID(c) {
		return respondErr(c, models.NewForbiddenError("Cannot edit another user's availability"))
	}

	if err := s.availabilityRepo.Delete(c.UserContext(), id); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
