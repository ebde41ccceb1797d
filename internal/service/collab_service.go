// Package service contains the business logic layer.
package service

import (
	"context"
	"log/slog"
	"time"

	"skillswap/internal/middleware"
	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

const maxCollabMessageLen = 500

// CreateCollabInput carries a new collaboration request. The actor must be
// the requester; the service enforces it rather than trusting the caller.
type CreateCollabInput struct {
	ActorUserID    uint
	ReceiverID     uint
	OfferedSkillID *uint
	WantedSkillID  *uint
	Message        string
	ScheduledAt    *time.Time
}

// CollabService owns the collaboration request lifecycle. Every mutation runs
// inside one transaction: row lock, rule checks, guarded write, audit record.
// A failure at any point rolls the whole unit back.
type CollabService interface {
	Create(ctx context.Context, input CreateCollabInput) (*models.CollabRequest, error)
	Get(ctx context.Context, id uint) (*models.CollabRequest, error)
	List(ctx context.Context, filter repository.CollabFilter) ([]models.CollabRequest, error)
	SetStatus(ctx context.Context, id, actorUserID uint, newStatus models.CollabStatus) (*models.CollabRequest, error)
	Reschedule(ctx context.Context, id, actorUserID uint, scheduledAt *time.Time) (*models.CollabRequest, error)
	Delete(ctx context.Context, id, actorUserID uint) error
}

type collabService struct {
	db     *gorm.DB
	collab repository.CollabRepository
	users  repository.UserRepository
	skills repository.SkillRepository
}

// NewCollabService creates a new collaboration request service
func NewCollabService(db *gorm.DB) CollabService {
	return &collabService{
		db:     db,
		collab: repository.NewCollabRepository(db),
		users:  repository.NewUserRepository(db),
		skills: repository.NewSkillRepository(db),
	}
}

func (s *collabService) Create(ctx context.Context, input CreateCollabInput) (*models.CollabRequest, error) {
	ctx, span := observability.StartSpan(ctx, "collab.create",
		attribute.Int("requester_id", int(input.ActorUserID)),
		attribute.Int("receiver_id", int(input.ReceiverID)),
	)
	defer span.End()

	if input.ActorUserID == input.ReceiverID {
		return nil, models.NewValidationError("Cannot send a collaboration request to yourself")
	}
	if len(input.Message) > maxCollabMessageLen {
		return nil, models.NewValidationError("Message must be at most 500 characters")
	}

	req := &models.CollabRequest{
		RequesterID:    input.ActorUserID,
		ReceiverID:     input.ReceiverID,
		OfferedSkillID: input.OfferedSkillID,
		WantedSkillID:  input.WantedSkillID,
		Status:         models.CollabStatusPending,
		Message:        input.Message,
		ScheduledAt:    input.ScheduledAt,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		skills := repository.NewSkillRepository(tx)

		// Existence pre-checks turn FK violations into actionable 404s. The
		// insert below still closes the check-then-insert race.
		for _, userID := range []uint{input.ActorUserID, input.ReceiverID} {
			ok, err := users.Exists(ctx, userID)
			if err != nil {
				return err
			}
			if !ok {
				return models.NewNotFoundError("User", userID)
			}
		}
		for _, skillID := range []*uint{input.OfferedSkillID, input.WantedSkillID} {
			if skillID == nil {
				continue
			}
			ok, err := skills.Exists(ctx, *skillID)
			if err != nil {
				return err
			}
			if !ok {
				return models.NewNotFoundError("Skill", *skillID)
			}
		}

		if err := repository.NewCollabRepository(tx).Create(ctx, req); err != nil {
			return err
		}

		actorID := input.ActorUserID
		entry := repository.AuditEntry(&actorID, "collab_requests", req.ID, models.AuditActionCreate, map[string]interface{}{
			"receiver_id": input.ReceiverID,
			"status":      string(models.CollabStatusPending),
		})
		return repository.NewAuditRepository(tx).Record(ctx, entry)
	})
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	observability.AuditRecords.WithLabelValues("collab_requests", models.AuditActionCreate).Inc()
	middleware.Logger.InfoContext(ctx, "Collaboration request created",
		slog.Uint64("collab_id", uint64(req.ID)),
		slog.Uint64("requester_id", uint64(req.RequesterID)),
		slog.Uint64("receiver_id", uint64(req.ReceiverID)),
	)
	return s.collab.GetByID(ctx, req.ID)
}

func (s *collabService) Get(ctx context.Context, id uint) (*models.CollabRequest, error) {
	return s.collab.GetByID(ctx, id)
}

func (s *collabService) List(ctx context.Context, filter repository.CollabFilter) ([]models.CollabRequest, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, models.NewValidationError("Invalid status filter")
	}
	return s.collab.List(ctx, filter)
}

// SetStatus applies one transition of the request state machine. Checks run
// in a fixed order against the locked row: party membership, transition-table
// reachability, then receiver-only rules for ACCEPTED and DECLINED. The write
// itself is a compare-and-set on the observed status, so a concurrent
// transition that slips past the lock ordering still surfaces as Conflict.
func (s *collabService) SetStatus(ctx context.Context, id, actorUserID uint, newStatus models.CollabStatus) (*models.CollabRequest, error) {
	ctx, span := observability.StartSpan(ctx, "collab.set_status",
		attribute.Int("collab_id", int(id)),
		attribute.String("to_status", string(newStatus)),
	)
	defer span.End()

	if !newStatus.Valid() {
		return nil, models.NewValidationError("Invalid status: " + string(newStatus))
	}

	var fromStatus models.CollabStatus
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		collabs := repository.NewCollabRepository(tx)

		req, err := collabs.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		fromStatus = req.Status

		if !req.IsParty(actorUserID) {
			return models.NewForbiddenError("Only the requester or receiver may modify this request")
		}
		if !req.Status.CanTransitionTo(newStatus) {
			if req.Status.Terminal() {
				return models.NewConflictError("Request is already " + string(req.Status))
			}
			return models.NewConflictError("Cannot move request from " + string(req.Status) + " to " + string(newStatus))
		}
		if (newStatus == models.CollabStatusAccepted || newStatus == models.CollabStatusDeclined) &&
			actorUserID != req.ReceiverID {
			return models.NewForbiddenError("Only the receiver may accept or decline")
		}

		if err := collabs.UpdateStatus(ctx, id, req.Status, newStatus); err != nil {
			return err
		}

		entry := repository.AuditEntry(&actorUserID, "collab_requests", id, models.AuditActionUpdate, map[string]interface{}{
			"old_status": string(req.Status),
			"new_status": string(newStatus),
		})
		return repository.NewAuditRepository(tx).Record(ctx, entry)
	})
	if err != nil {
		observability.CollabTransitions.WithLabelValues(string(newStatus), transitionOutcome(err)).Inc()
		observability.RecordError(span, err)
		return nil, err
	}

	observability.CollabTransitions.WithLabelValues(string(newStatus), "committed").Inc()
	observability.AuditRecords.WithLabelValues("collab_requests", models.AuditActionUpdate).Inc()
	middleware.Logger.InfoContext(ctx, "Collaboration request transitioned",
		slog.Uint64("collab_id", uint64(id)),
		slog.String("from_status", string(fromStatus)),
		slog.String("to_status", string(newStatus)),
		slog.Uint64("actor_id", uint64(actorUserID)),
	)
	return s.collab.GetByID(ctx, id)
}

// Reschedule moves the scheduled time. Either party may do it, but only
// while the request is PENDING or ACCEPTED. Any timestamp is accepted,
// including past ones: parties sometimes record sessions after the fact.
func (s *collabService) Reschedule(ctx context.Context, id, actorUserID uint, scheduledAt *time.Time) (*models.CollabRequest, error) {
	ctx, span := observability.StartSpan(ctx, "collab.reschedule",
		attribute.Int("collab_id", int(id)),
	)
	defer span.End()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		collabs := repository.NewCollabRepository(tx)

		req, err := collabs.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !req.IsParty(actorUserID) {
			return models.NewForbiddenError("Only the requester or receiver may modify this request")
		}
		if req.Status != models.CollabStatusPending && req.Status != models.CollabStatusAccepted {
			return models.NewConflictError("Cannot reschedule a " + string(req.Status) + " request")
		}

		if err := collabs.UpdateSchedule(ctx, id, req.Status, scheduledAt); err != nil {
			return err
		}

		meta := map[string]interface{}{"scheduled_at": nil}
		if scheduledAt != nil {
			meta["scheduled_at"] = scheduledAt.UTC().Format(time.RFC3339)
		}
		entry := repository.AuditEntry(&actorUserID, "collab_requests", id, models.AuditActionUpdate, meta)
		return repository.NewAuditRepository(tx).Record(ctx, entry)
	})
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	observability.AuditRecords.WithLabelValues("collab_requests", models.AuditActionUpdate).Inc()
	return s.collab.GetByID(ctx, id)
}

// Delete removes the request permanently. Party-only, allowed in any status;
// the audit trail is the durable history and reviews keep a nullable
// reference, so nothing dangles.
func (s *collabService) Delete(ctx context.Context, id, actorUserID uint) error {
	ctx, span := observability.StartSpan(ctx, "collab.delete",
		attribute.Int("collab_id", int(id)),
	)
	defer span.End()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		collabs := repository.NewCollabRepository(tx)

		req, err := collabs.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !req.IsParty(actorUserID) {
			return models.NewForbiddenError("Only the requester or receiver may delete this request")
		}

		if err := collabs.Delete(ctx, id); err != nil {
			return err
		}

		entry := repository.AuditEntry(&actorUserID, "collab_requests", id, models.AuditActionDelete, map[string]interface{}{
			"status": string(req.Status),
		})
		return repository.NewAuditRepository(tx).Record(ctx, entry)
	})
	if err != nil {
		observability.RecordError(span, err)
		return err
	}

	observability.AuditRecords.WithLabelValues("collab_requests", models.AuditActionDelete).Inc()
	middleware.Logger.InfoContext(ctx, "Collaboration request deleted",
		slog.Uint64("collab_id", uint64(id)),
		slog.Uint64("actor_id", uint64(actorUserID)),
	)
	return nil
}

func transitionOutcome(err error) string {
	switch models.HTTPStatus(err) {
	case 409:
		return "conflict"
	case 403:
		return "forbidden"
	case 404:
		return "not_found"
	default:
		return "error"
	}
}
