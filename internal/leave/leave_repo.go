package leave

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StateChange is the column set written by a single approval decision.
type StateChange struct {
	From      State
	To        State
	Version   int
	Approver  Approver
	DecidedBy uuid.UUID
	Comment   *string
	DecidedAt time.Time
}

func (c StateChange) columns() map[string]any {
	cols := map[string]any{
		"state":      c.To,
		"version":    gorm.Expr("version + 1"),
		"updated_at": c.DecidedAt,
	}
	switch c.Approver {
	case ApproverDepartmentHead:
		cols["department_head_comment"] = c.Comment
		cols["department_head_decided_by"] = c.DecidedBy
		cols["department_head_decided_at"] = c.DecidedAt
	case ApproverAdmin:
		cols["admin_comment"] = c.Comment
		cols["admin_decided_by"] = c.DecidedBy
		cols["admin_decided_at"] = c.DecidedAt
	}
	return cols
}

// StateCount is one row of a GROUP BY state aggregation.
type StateCount struct {
	State State
	Total int64
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	FindApprovedByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	FindByDepartments(ctx context.Context, departmentIDs []string, states []State) ([]LeaveRequest, error)
	FindAll(ctx context.Context, states []State) ([]LeaveRequest, error)
	CountByState(ctx context.Context) ([]StateCount, error)
	CountByStateForDepartments(ctx context.Context, departmentIDs []string) ([]StateCount, error)
	// CompareAndSetState applies change only if the row is still in
	// change.From at change.Version. It reports whether the row was updated.
	CompareAndSetState(ctx context.Context, id string, change StateChange) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn returns a session bound to the transaction when one is attached.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

// departmentScope keeps requests whose employee currently belongs to one of
// departmentIDs.
func departmentScope(departmentIDs []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN employees ON employees.id = leave_requests.employee_id AND employees.deleted_at IS NULL").
			Where("employees.department_id IN ?", departmentIDs)
	}
}

func stateScope(states []State) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(states) == 0 {
			return db
		}
		return db.Where("leave_requests.state IN ?", states)
	}
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("leave_requests.created_at DESC")
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Omit("Employee").Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.conn(ctx).First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Scopes(newestFirst).
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindApprovedByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("state = ?", StateApproved).
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByDepartments(ctx context.Context, departmentIDs []string, states []State) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.conn(ctx).
		Preload("Employee").
		Scopes(departmentScope(departmentIDs), stateScope(states), newestFirst).
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindAll(ctx context.Context, states []State) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.conn(ctx).
		Preload("Employee").
		Scopes(stateScope(states), newestFirst).
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) CountByState(ctx context.Context) ([]StateCount, error) {
	var rows []StateCount
	err := r.conn(ctx).
		Model(&LeaveRequest{}).
		Select("leave_requests.state AS state, COUNT(*) AS total").
		Group("leave_requests.state").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) CountByStateForDepartments(ctx context.Context, departmentIDs []string) ([]StateCount, error) {
	var rows []StateCount
	err := r.conn(ctx).
		Model(&LeaveRequest{}).
		Scopes(departmentScope(departmentIDs)).
		Select("leave_requests.state AS state, COUNT(*) AS total").
		Group("leave_requests.state").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) CompareAndSetState(ctx context.Context, id string, change StateChange) (bool, error) {
	res := r.conn(ctx).
		Model(&LeaveRequest{}).
		Where("id = ? AND state = ? AND version = ?", id, change.From, change.Version).
		Updates(change.columns())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
