package leave

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=annual sick maternity paternity bereavement other"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" binding:"required"`
}

// DecisionRequest carries the stage outcome chosen on a dashboard.
type DecisionRequest struct {
	Status  string  `json:"status" binding:"required,oneof=approved rejected"`
	Comment *string `json:"comment"`
}

type LeaveResponse struct {
	ID                      string  `json:"id"`
	ReferenceNo             string  `json:"reference_no"`
	EmployeeID              string  `json:"employee_id"`
	EmployeeName            string  `json:"employee_name,omitempty"`
	LeaveType               string  `json:"leave_type"`
	StartDate               string  `json:"start_date"`
	EndDate                 string  `json:"end_date"`
	TotalDays               int     `json:"total_days"`
	Reason                  string  `json:"reason"`
	State                   string  `json:"state"`
	DepartmentHeadStage     string  `json:"department_head_stage"`
	AdminStage              string  `json:"admin_stage"`
	OverallStatus           string  `json:"overall_status"`
	DepartmentHeadComment   *string `json:"department_head_comment"`
	DepartmentHeadDecidedBy *string `json:"department_head_decided_by,omitempty"`
	DepartmentHeadDecidedAt *string `json:"department_head_decided_at,omitempty"`
	AdminComment            *string `json:"admin_comment"`
	AdminDecidedBy          *string `json:"admin_decided_by,omitempty"`
	AdminDecidedAt          *string `json:"admin_decided_at,omitempty"`
	CreatedAt               string  `json:"created_at"`
	UpdatedAt               string  `json:"updated_at"`
}

type BucketBalanceResponse struct {
	Allotment int `json:"allotment"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

type BalanceResponse struct {
	EmployeeID string                `json:"employee_id"`
	Annual     BucketBalanceResponse `json:"annual"`
	Sick       BucketBalanceResponse `json:"sick"`
	Other      BucketBalanceResponse `json:"other"`
}

type GlobalStatsResponse struct {
	Total                 int64 `json:"total"`
	Approved              int64 `json:"approved"`
	Pending               int64 `json:"pending"`
	Rejected              int64 `json:"rejected"`
	DepartmentHeadPending int64 `json:"department_head_pending"`
	AdminPending          int64 `json:"admin_pending"`
}

type DepartmentRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DepartmentStatsResponse totals the head stage across every department the
// caller heads.
type DepartmentStatsResponse struct {
	Departments []DepartmentRef `json:"departments"`
	Pending     int64           `json:"pending"`
	Approved    int64           `json:"approved"`
	Rejected    int64           `json:"rejected"`
}
