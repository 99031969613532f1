package leave

import (
	"context"
	"errors"

	"github.com/kidaholy/human-resource-sub000/internal/directory"
	directoryerrors "github.com/kidaholy/human-resource-sub000/internal/directory/errors"
	leaveerrors "github.com/kidaholy/human-resource-sub000/internal/leave/errors"
	"github.com/kidaholy/human-resource-sub000/internal/shared/actor"
)

// ScopeResolver decides which leave records an actor may see or decide.
// Department headship is resolved live on every call: reassigning a
// department's head immediately moves the right to decide its pending
// requests, and nothing is pinned at submission time.
type ScopeResolver interface {
	CanActAsDepartmentHead(ctx context.Context, a actor.Actor, l *LeaveRequest) (bool, error)
	CanActAsAdmin(a actor.Actor) bool
	CanViewOwn(ctx context.Context, a actor.Actor, l *LeaveRequest) (bool, error)
	ActorEmployee(ctx context.Context, a actor.Actor) (*directory.Employee, error)
	HeadedDepartments(ctx context.Context, a actor.Actor) ([]directory.Department, error)
}

type scopeResolver struct {
	dir directory.Directory
}

func NewScopeResolver(dir directory.Directory) ScopeResolver {
	return &scopeResolver{dir: dir}
}

func (r *scopeResolver) ActorEmployee(ctx context.Context, a actor.Actor) (*directory.Employee, error) {
	return r.dir.FindEmployeeByUserID(ctx, a.UserID)
}

func (r *scopeResolver) CanActAsDepartmentHead(ctx context.Context, a actor.Actor, l *LeaveRequest) (bool, error) {
	self, err := r.ActorEmployee(ctx, a)
	if err != nil {
		if errors.Is(err, directoryerrors.ErrEmployeeNotLinked) {
			return false, nil
		}
		return false, err
	}

	owner, err := r.dir.FindEmployeeByID(ctx, l.EmployeeID.String())
	if err != nil {
		if errors.Is(err, directoryerrors.ErrEmployeeNotFound) {
			return false, nil
		}
		return false, err
	}
	if owner.DepartmentID == nil {
		return false, nil
	}

	dept, err := r.dir.FindDepartmentByID(ctx, owner.DepartmentID.String())
	if err != nil {
		if errors.Is(err, directoryerrors.ErrDepartmentNotFound) {
			return false, nil
		}
		return false, err
	}

	return dept.HeadEmployeeID != nil && *dept.HeadEmployeeID == self.ID, nil
}

func (r *scopeResolver) CanActAsAdmin(a actor.Actor) bool {
	return a.IsAdmin()
}

func (r *scopeResolver) CanViewOwn(ctx context.Context, a actor.Actor, l *LeaveRequest) (bool, error) {
	self, err := r.ActorEmployee(ctx, a)
	if err != nil {
		if errors.Is(err, directoryerrors.ErrEmployeeNotLinked) {
			return false, nil
		}
		return false, err
	}
	return self.ID == l.EmployeeID, nil
}

// HeadedDepartments returns every department the actor heads right now.
// Heading none is ErrNotHeadingDepartment.
func (r *scopeResolver) HeadedDepartments(ctx context.Context, a actor.Actor) ([]directory.Department, error) {
	self, err := r.ActorEmployee(ctx, a)
	if err != nil {
		if errors.Is(err, directoryerrors.ErrEmployeeNotLinked) {
			return nil, leaveerrors.ErrNotHeadingDepartment
		}
		return nil, err
	}

	depts, err := r.dir.FindDepartmentsByHead(ctx, self.ID.String())
	if err != nil {
		return nil, err
	}
	if len(depts) == 0 {
		return nil, leaveerrors.ErrNotHeadingDepartment
	}
	return depts, nil
}
