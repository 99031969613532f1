package leave

import (
	"time"

	"github.com/kidaholy/human-resource-sub000/internal/directory"

	"github.com/google/uuid"
)

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:                      l.ID.String(),
		ReferenceNo:             l.ReferenceNo,
		EmployeeID:              l.EmployeeID.String(),
		LeaveType:               string(l.LeaveType),
		StartDate:               l.StartDate.Format(dateLayout),
		EndDate:                 l.EndDate.Format(dateLayout),
		TotalDays:               l.TotalDays(),
		Reason:                  l.Reason,
		State:                   string(l.State),
		DepartmentHeadStage:     string(l.State.DepartmentHeadStage()),
		AdminStage:              string(l.State.AdminStage()),
		OverallStatus:           string(l.State.OverallStatus()),
		DepartmentHeadComment:   l.DepartmentHeadComment,
		DepartmentHeadDecidedBy: uuidString(l.DepartmentHeadDecidedBy),
		DepartmentHeadDecidedAt: timeString(l.DepartmentHeadDecidedAt),
		AdminComment:            l.AdminComment,
		AdminDecidedBy:          uuidString(l.AdminDecidedBy),
		AdminDecidedAt:          timeString(l.AdminDecidedAt),
		CreatedAt:               l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:               l.UpdatedAt.Format(time.RFC3339),
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.FullName
	}
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		resp = append(resp, mapToResponse(l))
	}
	return resp
}

func mapToBalanceResponse(employeeID string, b Balance) BalanceResponse {
	bucket := func(bb BucketBalance) BucketBalanceResponse {
		return BucketBalanceResponse{Allotment: bb.Allotment, Used: bb.Used, Remaining: bb.Remaining}
	}
	return BalanceResponse{
		EmployeeID: employeeID,
		Annual:     bucket(b.Annual),
		Sick:       bucket(b.Sick),
		Other:      bucket(b.Other),
	}
}

func mapToGlobalStatsResponse(st GlobalStats) GlobalStatsResponse {
	return GlobalStatsResponse{
		Total:                 st.Total,
		Approved:              st.Approved,
		Pending:               st.Pending,
		Rejected:              st.Rejected,
		DepartmentHeadPending: st.DepartmentHeadPending,
		AdminPending:          st.AdminPending,
	}
}

func mapToDepartmentStatsResponse(depts []directory.Department, st DepartmentStats) DepartmentStatsResponse {
	refs := make([]DepartmentRef, len(depts))
	for i, d := range depts {
		refs[i] = DepartmentRef{ID: d.ID.String(), Name: d.Name}
	}
	return DepartmentStatsResponse{
		Departments: refs,
		Pending:     st.Pending,
		Approved:    st.Approved,
		Rejected:    st.Rejected,
	}
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func timeString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
