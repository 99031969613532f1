package events

import "time"

const LeaveLifecycleTopic = "hrm.leave.lifecycle.v1"

const (
	EventTypeLeaveRequested = "leave.requested"
	EventTypeLeaveDecided   = "leave.decided"
)

type LeaveRequestedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	LeaveID     string    `json:"leave_id"`
	ReferenceNo string    `json:"reference_no"`
	EmployeeID  string    `json:"employee_id"`
	LeaveType   string    `json:"leave_type"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// LeaveDecidedEvent records one approval gate decision. HeadEmployeeID is
// the department head assignment that was in force when the decision was
// taken, so a later reassignment can be traced.
type LeaveDecidedEvent struct {
	EventID         string    `json:"event_id"`
	EventType       string    `json:"event_type"`
	LeaveID         string    `json:"leave_id"`
	ReferenceNo     string    `json:"reference_no"`
	EmployeeID      string    `json:"employee_id"`
	Approver        string    `json:"approver"`
	Decision        string    `json:"decision"`
	FromState       string    `json:"from_state"`
	ToState         string    `json:"to_state"`
	OverallStatus   string    `json:"overall_status"`
	ActorUserID     string    `json:"actor_user_id"`
	ActorEmployeeID string    `json:"actor_employee_id,omitempty"`
	HeadEmployeeID  string    `json:"head_employee_id,omitempty"`
	Comment         *string   `json:"comment,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}
