package leave_test

import (
	"time"

	"github.com/kidaholy/human-resource-sub000/internal/directory"
	directoryerrors "github.com/kidaholy/human-resource-sub000/internal/directory/errors"
	directoryMock "github.com/kidaholy/human-resource-sub000/internal/directory/mock"
	"github.com/kidaholy/human-resource-sub000/internal/leave"
	"github.com/kidaholy/human-resource-sub000/internal/shared/actor"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// world is two departments, X and Y, each with a head, plus one staff
// member of X and an admin without an employee record.
type world struct {
	deptX, deptY *directory.Department
	headX, headY *directory.Employee
	staff        *directory.Employee
	adminUserID  string
	leaveID      uuid.UUID
}

func newWorld() *world {
	deptXID, deptYID := uuid.New(), uuid.New()
	headX := &directory.Employee{ID: uuid.New(), UserID: uuid.New(), DepartmentID: &deptXID, FullName: "Head X"}
	headY := &directory.Employee{ID: uuid.New(), UserID: uuid.New(), DepartmentID: &deptYID, FullName: "Head Y"}
	staff := &directory.Employee{ID: uuid.New(), UserID: uuid.New(), DepartmentID: &deptXID, FullName: "Staff A"}

	return &world{
		deptX:       &directory.Department{ID: deptXID, Name: "Physics", HeadEmployeeID: &headX.ID},
		deptY:       &directory.Department{ID: deptYID, Name: "History", HeadEmployeeID: &headY.ID},
		headX:       headX,
		headY:       headY,
		staff:       staff,
		adminUserID: uuid.NewString(),
		leaveID:     uuid.New(),
	}
}

func (w *world) staffActor() actor.Actor {
	return actor.Actor{UserID: w.staff.UserID.String(), Role: directory.RoleEmployee}
}

func (w *world) headXActor() actor.Actor {
	return actor.Actor{UserID: w.headX.UserID.String(), Role: directory.RoleDepartmentHead}
}

func (w *world) headYActor() actor.Actor {
	return actor.Actor{UserID: w.headY.UserID.String(), Role: directory.RoleDepartmentHead}
}

func (w *world) adminActor() actor.Actor {
	return actor.Actor{UserID: w.adminUserID, Role: directory.RoleAdmin}
}

// request returns a fresh copy of the staff member's 2024-06-10..12 annual
// leave in the given state.
func (w *world) request(state leave.State, version int) *leave.LeaveRequest {
	created := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	return &leave.LeaveRequest{
		ID:          w.leaveID,
		ReferenceNo: "LV-2024-000001",
		EmployeeID:  w.staff.ID,
		LeaveType:   leave.LeaveTypeAnnual,
		StartDate:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		Reason:      "family event",
		State:       state,
		Version:     version,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func (w *world) expectDirectory(dir *directoryMock.MockDirectory) {
	for _, e := range []*directory.Employee{w.headX, w.headY, w.staff} {
		dir.EXPECT().FindEmployeeByUserID(gomock.Any(), e.UserID.String()).Return(e, nil).AnyTimes()
		dir.EXPECT().FindEmployeeByID(gomock.Any(), e.ID.String()).Return(e, nil).AnyTimes()
	}
	dir.EXPECT().FindEmployeeByUserID(gomock.Any(), w.adminUserID).
		Return(nil, directoryerrors.ErrEmployeeNotLinked).AnyTimes()

	for _, d := range []*directory.Department{w.deptX, w.deptY} {
		dir.EXPECT().FindDepartmentByID(gomock.Any(), d.ID.String()).Return(d, nil).AnyTimes()
		dir.EXPECT().FindDepartmentsByHead(gomock.Any(), d.HeadEmployeeID.String()).
			Return([]directory.Department{*d}, nil).AnyTimes()
	}
	dir.EXPECT().FindDepartmentsByHead(gomock.Any(), w.staff.ID.String()).
		Return([]directory.Department{}, nil).AnyTimes()
}
