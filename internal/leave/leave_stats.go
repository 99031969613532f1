package leave

type GlobalStats struct {
	Total                 int64
	Approved              int64
	Pending               int64
	Rejected              int64
	DepartmentHeadPending int64
	AdminPending          int64
}

// DepartmentStats counts by the department head stage only; heads never see
// the admin gate's outcome in their summary.
type DepartmentStats struct {
	Pending  int64
	Approved int64
	Rejected int64
}

func aggregateGlobal(rows []StateCount) GlobalStats {
	var st GlobalStats
	for _, row := range rows {
		st.Total += row.Total
		switch row.State.OverallStatus() {
		case StageApproved:
			st.Approved += row.Total
		case StageRejected:
			st.Rejected += row.Total
		default:
			st.Pending += row.Total
		}
		switch row.State {
		case StateAwaitingHead:
			st.DepartmentHeadPending += row.Total
		case StateAwaitingAdmin:
			st.AdminPending += row.Total
		}
	}
	return st
}

func aggregateDepartment(rows []StateCount) DepartmentStats {
	var st DepartmentStats
	for _, row := range rows {
		switch row.State.DepartmentHeadStage() {
		case StageApproved:
			st.Approved += row.Total
		case StageRejected:
			st.Rejected += row.Total
		default:
			st.Pending += row.Total
		}
	}
	return st
}
