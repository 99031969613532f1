package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateGlobal(t *testing.T) {
	// 3 awaiting head, 1 awaiting admin, 1 fully approved
	rows := []StateCount{
		{State: StateAwaitingHead, Total: 3},
		{State: StateAwaitingAdmin, Total: 1},
		{State: StateApproved, Total: 1},
	}

	st := aggregateGlobal(rows)
	assert.Equal(t, int64(5), st.Total)
	assert.Equal(t, int64(3), st.DepartmentHeadPending)
	assert.Equal(t, int64(1), st.AdminPending)
	assert.Equal(t, int64(4), st.Pending)
	assert.Equal(t, int64(1), st.Approved)
	assert.Equal(t, int64(0), st.Rejected)
}

func TestAggregateGlobal_Rejections(t *testing.T) {
	st := aggregateGlobal([]StateCount{
		{State: StateRejectedByHead, Total: 2},
		{State: StateRejectedByAdmin, Total: 1},
	})
	assert.Equal(t, int64(3), st.Rejected)
	assert.Equal(t, int64(0), st.Pending)
	assert.Equal(t, int64(0), st.DepartmentHeadPending)
}

func TestAggregateDepartment_KeyedByHeadStage(t *testing.T) {
	st := aggregateDepartment([]StateCount{
		{State: StateAwaitingHead, Total: 2},
		{State: StateAwaitingAdmin, Total: 1},
		{State: StateApproved, Total: 4},
		{State: StateRejectedByAdmin, Total: 1},
		{State: StateRejectedByHead, Total: 3},
	})

	assert.Equal(t, DepartmentStats{Pending: 2, Approved: 6, Rejected: 3}, st)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Equal(t, GlobalStats{}, aggregateGlobal(nil))
	assert.Equal(t, DepartmentStats{}, aggregateDepartment(nil))
}
