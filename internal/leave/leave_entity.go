package leave

import (
	"time"

	"github.com/kidaholy/human-resource-sub000/internal/directory"

	"github.com/google/uuid"
)

type LeaveType string

const (
	LeaveTypeAnnual      LeaveType = "annual"
	LeaveTypeSick        LeaveType = "sick"
	LeaveTypeMaternity   LeaveType = "maternity"
	LeaveTypePaternity   LeaveType = "paternity"
	LeaveTypeBereavement LeaveType = "bereavement"
	LeaveTypeOther       LeaveType = "other"
)

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveTypeAnnual, LeaveTypeSick, LeaveTypeMaternity,
		LeaveTypePaternity, LeaveTypeBereavement, LeaveTypeOther:
		return true
	}
	return false
}

// Bucket folds the leave type into its balance bucket.
func (t LeaveType) Bucket() Bucket {
	switch t {
	case LeaveTypeAnnual:
		return BucketAnnual
	case LeaveTypeSick:
		return BucketSick
	default:
		return BucketOther
	}
}

type LeaveRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReferenceNo string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee_created"`

	LeaveType LeaveType `gorm:"type:varchar(20);not null"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Reason    string    `gorm:"type:text;not null"`

	State   State `gorm:"type:varchar(24);not null;default:'AWAITING_HEAD';index:idx_leave_requests_state"`
	Version int   `gorm:"not null;default:1"`

	DepartmentHeadComment   *string    `gorm:"type:text"`
	DepartmentHeadDecidedBy *uuid.UUID `gorm:"type:uuid"`
	DepartmentHeadDecidedAt *time.Time
	AdminComment            *string    `gorm:"type:text"`
	AdminDecidedBy          *uuid.UUID `gorm:"type:uuid"`
	AdminDecidedAt          *time.Time

	CreatedAt time.Time `gorm:"index:idx_leave_requests_employee_created,sort:desc"`
	UpdatedAt time.Time

	Employee *directory.Employee `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// TotalDays is the inclusive calendar day count of the request.
func (l LeaveRequest) TotalDays() int {
	return inclusiveDays(l.StartDate, l.EndDate)
}

func inclusiveDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}
