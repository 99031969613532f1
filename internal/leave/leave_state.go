package leave

import (
	leaveerrors "github.com/kidaholy/human-resource-sub000/internal/leave/errors"
)

// State is the single source of truth for a request's approval progress.
// The per-stage and overall statuses are projections of it.
type State string

const (
	StateAwaitingHead    State = "AWAITING_HEAD"
	StateAwaitingAdmin   State = "AWAITING_ADMIN"
	StateApproved        State = "APPROVED"
	StateRejectedByHead  State = "REJECTED_BY_HEAD"
	StateRejectedByAdmin State = "REJECTED_BY_ADMIN"
)

// Stage is the outcome of one approval gate, or the overall status.
type Stage string

const (
	StagePending  Stage = "pending"
	StageApproved Stage = "approved"
	StageRejected Stage = "rejected"
)

func (s Stage) Valid() bool {
	return s == StagePending || s == StageApproved || s == StageRejected
}

type Approver string

const (
	ApproverDepartmentHead Approver = "department_head"
	ApproverAdmin          Approver = "admin"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// DecisionFromStatus maps the stage value sent by dashboards to a decision.
func DecisionFromStatus(status string) (Decision, error) {
	switch Stage(status) {
	case StageApproved:
		return DecisionApprove, nil
	case StageRejected:
		return DecisionReject, nil
	default:
		return "", leaveerrors.ErrInvalidDecision
	}
}

func (s State) DepartmentHeadStage() Stage {
	switch s {
	case StateAwaitingHead:
		return StagePending
	case StateRejectedByHead:
		return StageRejected
	default:
		return StageApproved
	}
}

func (s State) AdminStage() Stage {
	switch s {
	case StateApproved:
		return StageApproved
	case StateRejectedByAdmin:
		return StageRejected
	default:
		return StagePending
	}
}

func (s State) OverallStatus() Stage {
	head, admin := s.DepartmentHeadStage(), s.AdminStage()
	switch {
	case head == StageRejected || admin == StageRejected:
		return StageRejected
	case head == StageApproved && admin == StageApproved:
		return StageApproved
	default:
		return StagePending
	}
}

func (s State) Terminal() bool {
	return s != StateAwaitingHead && s != StateAwaitingAdmin
}

type transitionKey struct {
	from     State
	approver Approver
	decision Decision
}

var transitions = map[transitionKey]State{
	{StateAwaitingHead, ApproverDepartmentHead, DecisionApprove}: StateAwaitingAdmin,
	{StateAwaitingHead, ApproverDepartmentHead, DecisionReject}:  StateRejectedByHead,
	{StateAwaitingAdmin, ApproverAdmin, DecisionApprove}:         StateApproved,
	{StateAwaitingAdmin, ApproverAdmin, DecisionReject}:          StateRejectedByAdmin,
}

// Transition returns the state reached when approver applies decision in
// state from. It trusts the approver label; authorization happens before.
func Transition(from State, approver Approver, decision Decision) (State, error) {
	if decision != DecisionApprove && decision != DecisionReject {
		return from, leaveerrors.ErrInvalidDecision
	}
	if to, ok := transitions[transitionKey{from, approver, decision}]; ok {
		return to, nil
	}
	return from, conflictFor(from, approver)
}

func conflictFor(from State, approver Approver) error {
	if approver == ApproverDepartmentHead {
		return leaveerrors.ErrAlreadyDecidedByHead
	}
	switch from {
	case StateAwaitingHead:
		return leaveerrors.ErrAwaitingDepartmentHead
	case StateRejectedByHead:
		return leaveerrors.ErrRejectedByHead
	default:
		return leaveerrors.ErrAlreadyDecidedByAdmin
	}
}

// StatesWithHeadStage lists the states whose department head stage is stage.
func StatesWithHeadStage(stage Stage) []State {
	return statesWhere(func(s State) bool { return s.DepartmentHeadStage() == stage })
}

// StatesWithOverallStatus lists the states whose overall status is status.
func StatesWithOverallStatus(status Stage) []State {
	return statesWhere(func(s State) bool { return s.OverallStatus() == status })
}

var allStates = []State{
	StateAwaitingHead,
	StateAwaitingAdmin,
	StateApproved,
	StateRejectedByHead,
	StateRejectedByAdmin,
}

func statesWhere(keep func(State) bool) []State {
	out := make([]State, 0, len(allStates))
	for _, s := range allStates {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
