package audit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kidaholy/human-resource-sub000/internal/audit"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)
	return gdb, mock
}

func entry() *audit.DecisionAudit {
	now := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	return &audit.DecisionAudit{
		ID:             uuid.New(),
		EventID:        uuid.New(),
		LeaveRequestID: uuid.New(),
		ReferenceNo:    "LV-2024-000001",
		EmployeeID:     uuid.New(),
		Approver:       "admin",
		Decision:       "approve",
		FromState:      "AWAITING_ADMIN",
		ToState:        "APPROVED",
		ActorUserID:    uuid.NewString(),
		OccurredAt:     now,
		RecordedAt:     now,
	}
}

func TestAuditRepository_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("inserted", func(t *testing.T) {
		gdb, mock := newGormMock(t)
		mock.ExpectExec(`INSERT INTO "leave_decision_audits"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		inserted, err := audit.NewRepository(gdb).Append(ctx, entry())
		assert.NoError(t, err)
		assert.True(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate event", func(t *testing.T) {
		gdb, mock := newGormMock(t)
		mock.ExpectExec(`INSERT INTO "leave_decision_audits"`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_leave_decision_audits_event"})

		inserted, err := audit.NewRepository(gdb).Append(ctx, entry())
		assert.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("other error", func(t *testing.T) {
		gdb, mock := newGormMock(t)
		mock.ExpectExec(`INSERT INTO "leave_decision_audits"`).
			WillReturnError(errors.New("connection reset"))

		inserted, err := audit.NewRepository(gdb).Append(ctx, entry())
		assert.Error(t, err)
		assert.False(t, inserted)
	})
}

func TestAuditRepository_FindByLeaveRequest(t *testing.T) {
	gdb, mock := newGormMock(t)
	leaveID := uuid.NewString()

	mock.ExpectQuery(`SELECT \* FROM "leave_decision_audits" WHERE leave_request_id = \$1 ORDER BY occurred_at ASC`).
		WithArgs(leaveID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "leave_request_id", "approver"}).
			AddRow(uuid.NewString(), leaveID, "department_head"))

	entries, err := audit.NewRepository(gdb).FindByLeaveRequest(context.Background(), leaveID)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "department_head", entries[0].Approver)
	assert.NoError(t, mock.ExpectationsWereMet())
}
