package audit

import (
	"time"

	"github.com/google/uuid"
)

// DecisionAudit is an append-only record of one approval gate decision.
// Rows are never updated.
type DecisionAudit struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_leave_decision_audits_event"`
	LeaveRequestID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_leave_decision_audits_leave_occurred"`
	ReferenceNo     string     `gorm:"type:varchar(32);not null"`
	EmployeeID      uuid.UUID  `gorm:"type:uuid;not null"`
	Approver        string     `gorm:"type:varchar(20);not null"`
	Decision        string     `gorm:"type:varchar(10);not null"`
	FromState       string     `gorm:"type:varchar(24);not null"`
	ToState         string     `gorm:"type:varchar(24);not null"`
	ActorUserID     string     `gorm:"type:varchar(64);not null"`
	ActorEmployeeID *uuid.UUID `gorm:"type:uuid"`
	HeadEmployeeID  *uuid.UUID `gorm:"type:uuid"`
	Comment         *string    `gorm:"type:text"`
	OccurredAt      time.Time  `gorm:"not null;index:idx_leave_decision_audits_leave_occurred"`
	RecordedAt      time.Time  `gorm:"not null"`
}

func (DecisionAudit) TableName() string {
	return "leave_decision_audits"
}
