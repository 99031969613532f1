package audit

type DecisionAuditResponse struct {
	ID              string  `json:"id"`
	LeaveRequestID  string  `json:"leave_request_id"`
	ReferenceNo     string  `json:"reference_no"`
	Approver        string  `json:"approver"`
	Decision        string  `json:"decision"`
	FromState       string  `json:"from_state"`
	ToState         string  `json:"to_state"`
	ActorUserID     string  `json:"actor_user_id"`
	ActorEmployeeID *string `json:"actor_employee_id,omitempty"`
	HeadEmployeeID  *string `json:"head_employee_id,omitempty"`
	Comment         *string `json:"comment"`
	OccurredAt      string  `json:"occurred_at"`
}
