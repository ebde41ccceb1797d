package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMatches handles GET /api/matches
// Lists confirmed matches involving the caller.
// @Summary List my matches
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Match
// @Router /matches [get]
func (s *Server) GetMatches(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	matches, err := s.matchRepo.ListMatchesForUser(c.UserContext(), actorID(c), p.Limit, p.Offset)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(matches)
}

// CreateMatch handles POST /api/matches
// Scores arrive from the external matcher; this endpoint only stores them.
// @Summary Record a confirmed match
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{user_a_id=int,user_b_id=int,score=number,reason=string} true "Match"
// @Success 201 {object} models.Match
// @Router /matches [post]
func (s *Server) CreateMatch(c *fiber.Ctx) error {
	var req struct {
		UserAID uint    `json:"user_a_id"`
		UserBID uint    `json:"user_b_id"`
		Score   float64 `json:"score"`
		Reason  string  `json:"reason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.UserAID == req.UserBID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A match needs two distinct users"))
	}

	for _, userID := range []uint{req.UserAID, req.UserBID} {
		ok, err := s.userRepo.Exists(c.UserContext(), userID)
		if err != nil {
			return respondErr(c, err)
		}
		if !ok {
			return respondErr(c, models.NewNotFoundError("User", userID))
		}
	}

	match := &models.Match{
		UserAID:   req.UserAID,
		UserBID:   req.UserBID,
		Score:     req.Score,
		Reason:    req.Reason,
		CreatedBy: "system",
	}
	if err := s.matchRepo.CreateMatch(c.UserContext(), match); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(match)
}

// GetMatchCandidates handles GET /api/match-candidates
// Lists the caller's scored suggestions, best first.
// @Summary List my match candidates
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.MatchCandidate
// @Router /match-candidates [get]
func (s *Server) GetMatchCandidates(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	candidates, err := s.matchRepo.ListCandidatesForUser(c.UserContext(), actorID(c), p.Limit, p.Offset)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(candidates)
}

// CreateMatchCandidate handles POST /api/match-candidates
// @Summary Record a scored match candidate
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{source_user_id=int,target_user_id=int,offered_skill_id=int,wanted_skill_id=int,score=number,rationale=string} true "Candidate"
// @Success 201 {object} models.MatchCandidate
// @Router /match-candidates [post]
func (s *Server) CreateMatchCandidate(c *fiber.Ctx) error {
	var req struct {
		SourceUserID   uint    `json:"source_user_id"`
		TargetUserID   uint    `json:"target_user_id"`
		OfferedSkillID *uint   `json:"offered_skill_id"`
		WantedSkillID  *uint   `json:"wanted_skill_id"`
		Score          float64 `json:"score"`
		Rationale      string  `json:"rationale"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.SourceUserID == req.TargetUserID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A candidate needs two distinct users"))
	}

	for _, userID := range []uint{req.SourceUserID, req.TargetUserID} {
		ok, err := s.userRepo.Exists(c.UserContext(), userID)
		if err != nil {
			return respondErr(c, err)
		}
		if !ok {
			return respondErr(c, models.NewNotFoundError("User", userID))
		}
	}

	candidate := &models.MatchCandidate{
		SourceUserID:   req.SourceUserID,
		TargetUserID:   req.TargetUserID,
		OfferedSkillID: req.OfferedSkillID,
		WantedSkillID:  req.WantedSkillID,
		Score:          req.Score,
		Rationale:      req.Rationale,
	}
	if err := s.matchRepo.CreateCandidate(c.UserContext(), candidate); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(candidate)
}

// ClearMatchCandidates handles DELETE /api/match-candidates?user_id=
// Clears a user's suggestion set before a fresh batch is pushed.
// @Summary Clear a user's match candidates
// @Tags matches
// @Security BearerAuth
// @Param user_id query int true "Source user ID"
// @Success 204
// @Router /match-candidates [delete]
func (s *Server) ClearMatchCandidates(c *fiber.Ctx) error {
	userID := c.QueryInt("user_id", 0)
	if userID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("user_id query parameter is required"))
	}

	if err := s.matchRepo.DeleteCandidatesForUser(c.UserContext(), uint(userID)); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
