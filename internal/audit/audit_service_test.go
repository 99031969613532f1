package audit_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/kidaholy/human-resource-sub000/internal/audit"
	auditMock "github.com/kidaholy/human-resource-sub000/internal/audit/mock"
	"github.com/kidaholy/human-resource-sub000/internal/events"
	leaveerrors "github.com/kidaholy/human-resource-sub000/internal/leave/errors"
	"github.com/kidaholy/human-resource-sub000/internal/shared/actor"
	"github.com/kidaholy/human-resource-sub000/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func decidedEvent() events.LeaveDecidedEvent {
	comment := "ok"
	return events.LeaveDecidedEvent{
		EventID:         uuid.NewString(),
		EventType:       events.EventTypeLeaveDecided,
		LeaveID:         uuid.NewString(),
		ReferenceNo:     "LV-2024-000001",
		EmployeeID:      uuid.NewString(),
		Approver:        "department_head",
		Decision:        "approve",
		FromState:       "AWAITING_HEAD",
		ToState:         "AWAITING_ADMIN",
		OverallStatus:   "pending",
		ActorUserID:     uuid.NewString(),
		ActorEmployeeID: uuid.NewString(),
		HeadEmployeeID:  uuid.NewString(),
		Comment:         &comment,
		OccurredAt:      time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestAuditService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("appends decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auditMock.NewMockRepository(ctrl)
		svc := audit.NewService(repo)
		ev := decidedEvent()

		repo.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *audit.DecisionAudit) (bool, error) {
				assert.Equal(t, ev.EventID, e.EventID.String())
				assert.Equal(t, ev.LeaveID, e.LeaveRequestID.String())
				assert.Equal(t, ev.HeadEmployeeID, e.HeadEmployeeID.String())
				assert.Equal(t, "AWAITING_ADMIN", e.ToState)
				assert.False(t, e.RecordedAt.IsZero())
				return true, nil
			})

		assert.NoError(t, svc.Record(ctx, ev))
	})

	t.Run("redelivery is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auditMock.NewMockRepository(ctrl)
		svc := audit.NewService(repo)

		repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(false, nil)

		assert.NoError(t, svc.Record(ctx, decidedEvent()))
	})

	t.Run("admin decision without head", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auditMock.NewMockRepository(ctrl)
		svc := audit.NewService(repo)
		ev := decidedEvent()
		ev.Approver = "admin"
		ev.ActorEmployeeID = ""
		ev.HeadEmployeeID = ""

		repo.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *audit.DecisionAudit) (bool, error) {
				assert.Nil(t, e.HeadEmployeeID)
				assert.Nil(t, e.ActorEmployeeID)
				return true, nil
			})

		assert.NoError(t, svc.Record(ctx, ev))
	})

	t.Run("malformed event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auditMock.NewMockRepository(ctrl)
		svc := audit.NewService(repo)
		ev := decidedEvent()
		ev.LeaveID = "not-a-uuid"

		assert.Error(t, svc.Record(ctx, ev))
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auditMock.NewMockRepository(ctrl)
		svc := audit.NewService(repo)

		repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(false, errors.New("connection reset"))

		assert.Error(t, svc.Record(ctx, decidedEvent()))
	})
}

func TestAuditService_History(t *testing.T) {
	ctx := context.Background()
	admin := actor.Actor{UserID: uuid.NewString(), Role: "admin"}
	leaveID := uuid.New()

	t.Run("admin reads trail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auditMock.NewMockRepository(ctrl)
		svc := audit.NewService(repo)
		head := uuid.New()

		repo.EXPECT().
			FindByLeaveRequest(gomock.Any(), leaveID.String()).
			Return([]audit.DecisionAudit{
				{ID: uuid.New(), LeaveRequestID: leaveID, Approver: "department_head", Decision: "approve", HeadEmployeeID: &head, OccurredAt: time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)},
				{ID: uuid.New(), LeaveRequestID: leaveID, Approver: "admin", Decision: "reject", OccurredAt: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)},
			}, nil)

		resp, err := svc.History(ctx, admin, leaveID.String())
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, head.String(), *resp[0].HeadEmployeeID)
		assert.Nil(t, resp[1].HeadEmployeeID)
		assert.Equal(t, "2024-06-03T09:00:00Z", resp[1].OccurredAt)
	})

	t.Run("non admin", func(t *testing.T) {
		svc := audit.NewService(auditMock.NewMockRepository(gomock.NewController(t)))

		_, err := svc.History(ctx, actor.Actor{UserID: "u", Role: "department_head"}, leaveID.String())
		assert.ErrorIs(t, err, leaveerrors.ErrNotAdmin)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := audit.NewService(auditMock.NewMockRepository(gomock.NewController(t)))

		_, err := svc.History(ctx, admin, "abc")
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveID)
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auditMock.NewMockRepository(ctrl)
		svc := audit.NewService(repo)

		repo.EXPECT().FindByLeaveRequest(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := svc.History(ctx, admin, leaveID.String())
		assert.Equal(t, http.StatusServiceUnavailable, apperror.ToHTTP(err).Status)
	})
}
