package audit

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	// Append inserts entry and reports false when an entry for the same
	// event was already recorded.
	Append(ctx context.Context, entry *DecisionAudit) (bool, error)
	FindByLeaveRequest(ctx context.Context, leaveRequestID string) ([]DecisionAudit, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Append(ctx context.Context, entry *DecisionAudit) (bool, error) {
	err := r.db.WithContext(ctx).Create(entry).Error
	if err == nil {
		return true, nil
	}
	if isDuplicateEvent(err) {
		return false, nil
	}
	return false, err
}

func (r *repository) FindByLeaveRequest(ctx context.Context, leaveRequestID string) ([]DecisionAudit, error) {
	var entries []DecisionAudit
	err := r.db.WithContext(ctx).
		Where("leave_request_id = ?", leaveRequestID).
		Order("occurred_at ASC").
		Find(&entries).Error
	return entries, err
}

func isDuplicateEvent(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
