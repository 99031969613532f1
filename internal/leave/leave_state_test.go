package leave

import (
	"testing"

	leaveerrors "github.com/kidaholy/human-resource-sub000/internal/leave/errors"

	"github.com/stretchr/testify/assert"
)

func TestState_DerivedStages(t *testing.T) {
	tests := []struct {
		state   State
		head    Stage
		admin   Stage
		overall Stage
	}{
		{StateAwaitingHead, StagePending, StagePending, StagePending},
		{StateAwaitingAdmin, StageApproved, StagePending, StagePending},
		{StateApproved, StageApproved, StageApproved, StageApproved},
		{StateRejectedByHead, StageRejected, StagePending, StageRejected},
		{StateRejectedByAdmin, StageApproved, StageRejected, StageRejected},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			assert.Equal(t, tt.head, tt.state.DepartmentHeadStage())
			assert.Equal(t, tt.admin, tt.state.AdminStage())
			assert.Equal(t, tt.overall, tt.state.OverallStatus())
		})
	}
}

func TestState_AdminStageLeavesPendingOnlyAfterHeadApproval(t *testing.T) {
	for _, s := range allStates {
		if s.AdminStage() != StagePending {
			assert.Equal(t, StageApproved, s.DepartmentHeadStage(), "state %s", s)
		}
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     State
		approver Approver
		decision Decision
		want     State
		wantErr  error
	}{
		{"head approves", StateAwaitingHead, ApproverDepartmentHead, DecisionApprove, StateAwaitingAdmin, nil},
		{"head rejects", StateAwaitingHead, ApproverDepartmentHead, DecisionReject, StateRejectedByHead, nil},
		{"admin approves", StateAwaitingAdmin, ApproverAdmin, DecisionApprove, StateApproved, nil},
		{"admin rejects", StateAwaitingAdmin, ApproverAdmin, DecisionReject, StateRejectedByAdmin, nil},

		{"head acts twice", StateAwaitingAdmin, ApproverDepartmentHead, DecisionApprove, StateAwaitingAdmin, leaveerrors.ErrAlreadyDecidedByHead},
		{"head acts after rejecting", StateRejectedByHead, ApproverDepartmentHead, DecisionApprove, StateRejectedByHead, leaveerrors.ErrAlreadyDecidedByHead},
		{"head acts after final approval", StateApproved, ApproverDepartmentHead, DecisionReject, StateApproved, leaveerrors.ErrAlreadyDecidedByHead},

		{"admin before head", StateAwaitingHead, ApproverAdmin, DecisionApprove, StateAwaitingHead, leaveerrors.ErrAwaitingDepartmentHead},
		{"admin after head rejected", StateRejectedByHead, ApproverAdmin, DecisionApprove, StateRejectedByHead, leaveerrors.ErrRejectedByHead},
		{"admin acts twice", StateApproved, ApproverAdmin, DecisionReject, StateApproved, leaveerrors.ErrAlreadyDecidedByAdmin},
		{"admin after admin reject", StateRejectedByAdmin, ApproverAdmin, DecisionApprove, StateRejectedByAdmin, leaveerrors.ErrAlreadyDecidedByAdmin},

		{"unknown decision", StateAwaitingHead, ApproverDepartmentHead, Decision("maybe"), StateAwaitingHead, leaveerrors.ErrInvalidDecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.from, tt.approver, tt.decision)
			assert.Equal(t, tt.want, got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTransition_TerminalStatesNeverMove(t *testing.T) {
	for _, s := range allStates {
		if !s.Terminal() {
			continue
		}
		for _, approver := range []Approver{ApproverDepartmentHead, ApproverAdmin} {
			for _, decision := range []Decision{DecisionApprove, DecisionReject} {
				got, err := Transition(s, approver, decision)
				assert.Error(t, err)
				assert.Equal(t, s, got)
			}
		}
	}
}

func TestTransition_OverallStatusAfterEveryStep(t *testing.T) {
	s, err := Transition(StateAwaitingHead, ApproverDepartmentHead, DecisionApprove)
	assert.NoError(t, err)
	assert.Equal(t, StageApproved, s.DepartmentHeadStage())
	assert.Equal(t, StagePending, s.OverallStatus())

	s, err = Transition(s, ApproverAdmin, DecisionApprove)
	assert.NoError(t, err)
	assert.Equal(t, StageApproved, s.AdminStage())
	assert.Equal(t, StageApproved, s.OverallStatus())

	rejected, err := Transition(StateAwaitingHead, ApproverDepartmentHead, DecisionReject)
	assert.NoError(t, err)
	assert.Equal(t, StageRejected, rejected.OverallStatus())
}

func TestDecisionFromStatus(t *testing.T) {
	d, err := DecisionFromStatus("approved")
	assert.NoError(t, err)
	assert.Equal(t, DecisionApprove, d)

	d, err = DecisionFromStatus("rejected")
	assert.NoError(t, err)
	assert.Equal(t, DecisionReject, d)

	_, err = DecisionFromStatus("pending")
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDecision)
}

func TestStatesWithHeadStage(t *testing.T) {
	assert.ElementsMatch(t, []State{StateAwaitingHead}, StatesWithHeadStage(StagePending))
	assert.ElementsMatch(t, []State{StateRejectedByHead}, StatesWithHeadStage(StageRejected))
	assert.ElementsMatch(t,
		[]State{StateAwaitingAdmin, StateApproved, StateRejectedByAdmin},
		StatesWithHeadStage(StageApproved),
	)
}

func TestStatesWithOverallStatus(t *testing.T) {
	assert.ElementsMatch(t, []State{StateAwaitingHead, StateAwaitingAdmin}, StatesWithOverallStatus(StagePending))
	assert.ElementsMatch(t, []State{StateApproved}, StatesWithOverallStatus(StageApproved))
	assert.ElementsMatch(t, []State{StateRejectedByHead, StateRejectedByAdmin}, StatesWithOverallStatus(StageRejected))
}
