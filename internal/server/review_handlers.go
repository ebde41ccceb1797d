package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserReviews handles GET /api/users/:id/reviews
// @Summary List reviews about a user
// @Tags reviews
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{reviews=[]models.Review,average=number,count=int}
// @Router /users/{id}/reviews [get]
func (s *Server) GetUserReviews(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	p := parsePagination(c, 20)

	reviews, err := s.reviewRepo.ListForReviewee(c.UserContext(), id, p.Limit, p.Offset)
	if err != nil {
		return respondErr(c, err)
	}
	avg, count, err := s.reviewRepo.AverageRating(c.UserContext(), id)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(fiber.Map{
		"reviews": reviews,
		"average": avg,
		"count":   count,
	})
}

// GetMyReviews handles GET /api/reviews
// @Summary List reviews about me
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Review
// @Router /reviews [get]
func (s *Server) GetMyReviews(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	reviews, err := s.reviewRepo.ListForReviewee(c.UserContext(), actorID(c), p.Limit, p.Offset)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(reviews)
}

// CreateReview handles POST /api/reviews
// Reviews require a COMPLETED collaboration between the two users; one review
// per party per session.
// @Summary Leave a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{collab_request_id=int,rating=int,comment=string} true "Review"
// @Success 201 {object} models.Review
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /reviews [post]
func (s *Server) CreateReview(c *fiber.Ctx) error {
	var req struct {
		CollabRequestID uint   `json:"collab_request_id"`
		Rating          int    `json:"rating"`
		Comment         string `json:"comment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Rating < 1 || req.Rating > 5 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Rating must be between 1 and 5"))
	}
	if len(req.Comment) > 400 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Comment must be at most 400 characters"))
	}

	collab, err := s.collabService.Get(c.UserContext(), req.CollabRequestID)
	if err != nil {
		return respondErr(c, err)
	}

	reviewer := actorID(c)
	if !collab.IsParty(reviewer) {
		return respondErr(c, models.NewForbiddenError("Only a session participant may leave a review"))
	}
	if collab.Status != models.CollabStatusCompleted {
		return respondErr(c, models.NewConflictError("Reviews require a completed session"))
	}

	exists, err := s.reviewRepo.ExistsForCollab(c.UserContext(), collab.ID, reviewer)
	if err != nil {
		return respondErr(c, err)
	}
	if exists {
		return respondErr(c, models.NewConflictError("You already reviewed this session"))
	}

	reviewee := collab.RequesterID
	if reviewer == collab.RequesterID {
		reviewee = collab.ReceiverID
	}

	review := &models.Review{
		ReviewerID:      reviewer,
		RevieweeID:      reviewee,
		CollabRequestID: &collab.ID,
		Rating:          req.Rating,
		Comment:         req.Comment,
	}
	if err := s.reviewRepo.Create(c.UserContext(), review); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}
