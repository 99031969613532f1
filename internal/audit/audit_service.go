package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/kidaholy/human-resource-sub000/internal/events"
	leaveerrors "github.com/kidaholy/human-resource-sub000/internal/leave/errors"
	"github.com/kidaholy/human-resource-sub000/internal/shared/actor"
	"github.com/kidaholy/human-resource-sub000/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Record(ctx context.Context, event events.LeaveDecidedEvent) error
	History(ctx context.Context, a actor.Actor, leaveRequestID string) ([]DecisionAuditResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("audit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.service")
	}
	return &service{
		repo:   repo,
		now:    func() time.Time { return time.Now().UTC() },
		logger: l,
	}
}

// Record appends the decision carried by event. Redelivered events are
// ignored.
func (s *service) Record(ctx context.Context, event events.LeaveDecidedEvent) error {
	entry, err := entryFromEvent(event)
	if err != nil {
		s.logger.Warn("audit record rejected malformed event",
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
		return err
	}
	entry.RecordedAt = s.now()

	inserted, err := s.repo.Append(ctx, entry)
	if err != nil {
		s.logger.Error("audit record persist failed",
			zap.String("event_id", event.EventID),
			zap.String("leave_id", event.LeaveID),
			zap.Error(err),
		)
		return err
	}
	if !inserted {
		s.logger.Info("audit record already present, skipping", zap.String("event_id", event.EventID))
		return nil
	}

	s.logger.Info("audit record appended",
		zap.String("event_id", event.EventID),
		zap.String("leave_id", event.LeaveID),
		zap.String("approver", event.Approver),
		zap.String("decision", event.Decision),
	)
	return nil
}

func (s *service) History(ctx context.Context, a actor.Actor, leaveRequestID string) ([]DecisionAuditResponse, error) {
	if !a.IsAdmin() {
		return nil, leaveerrors.ErrNotAdmin
	}
	if _, err := uuid.Parse(leaveRequestID); err != nil {
		return nil, leaveerrors.ErrInvalidLeaveID
	}

	entries, err := s.repo.FindByLeaveRequest(ctx, leaveRequestID)
	if err != nil {
		s.logger.Error("audit history failed", zap.String("leave_id", leaveRequestID), zap.Error(err))
		return nil, apperror.Wrap(err,
			apperror.ErrStoreUnavailable.Code,
			apperror.ErrStoreUnavailable.Message,
			apperror.ErrStoreUnavailable.HTTPStatus,
		)
	}

	resp := make([]DecisionAuditResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, mapToResponse(e))
	}
	return resp, nil
}

func entryFromEvent(event events.LeaveDecidedEvent) (*DecisionAudit, error) {
	eventID, err := uuid.Parse(event.EventID)
	if err != nil {
		return nil, fmt.Errorf("event_id: %w", err)
	}
	leaveID, err := uuid.Parse(event.LeaveID)
	if err != nil {
		return nil, fmt.Errorf("leave_id: %w", err)
	}
	employeeID, err := uuid.Parse(event.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("employee_id: %w", err)
	}
	if event.Approver == "" || event.Decision == "" || event.ToState == "" {
		return nil, fmt.Errorf("approver, decision and to_state are required")
	}

	return &DecisionAudit{
		ID:              uuid.New(),
		EventID:         eventID,
		LeaveRequestID:  leaveID,
		ReferenceNo:     event.ReferenceNo,
		EmployeeID:      employeeID,
		Approver:        event.Approver,
		Decision:        event.Decision,
		FromState:       event.FromState,
		ToState:         event.ToState,
		ActorUserID:     event.ActorUserID,
		ActorEmployeeID: optionalUUID(event.ActorEmployeeID),
		HeadEmployeeID:  optionalUUID(event.HeadEmployeeID),
		Comment:         event.Comment,
		OccurredAt:      event.OccurredAt,
	}, nil
}

func optionalUUID(s string) *uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

func mapToResponse(e DecisionAudit) DecisionAuditResponse {
	resp := DecisionAuditResponse{
		ID:             e.ID.String(),
		LeaveRequestID: e.LeaveRequestID.String(),
		ReferenceNo:    e.ReferenceNo,
		Approver:       e.Approver,
		Decision:       e.Decision,
		FromState:      e.FromState,
		ToState:        e.ToState,
		ActorUserID:    e.ActorUserID,
		Comment:        e.Comment,
		OccurredAt:     e.OccurredAt.UTC().Format(time.RFC3339),
	}
	if e.ActorEmployeeID != nil {
		s := e.ActorEmployeeID.String()
		resp.ActorEmployeeID = &s
	}
	if e.HeadEmployeeID != nil {
		s := e.HeadEmployeeID.String()
		resp.HeadEmployeeID = &s
	}
	return resp
}
