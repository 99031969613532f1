package leave_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kidaholy/human-resource-sub000/internal/directory"
	directoryerrors "github.com/kidaholy/human-resource-sub000/internal/directory/errors"
	directoryMock "github.com/kidaholy/human-resource-sub000/internal/directory/mock"
	"github.com/kidaholy/human-resource-sub000/internal/leave"
	leaveerrors "github.com/kidaholy/human-resource-sub000/internal/leave/errors"
	"github.com/kidaholy/human-resource-sub000/internal/shared/actor"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestScopeResolver_CanActAsDepartmentHead(t *testing.T) {
	ctx := context.Background()
	w := newWorld()

	t.Run("head of the owner's department", func(t *testing.T) {
		dir := directoryMock.NewMockDirectory(gomock.NewController(t))
		w.expectDirectory(dir)

		ok, err := leave.NewScopeResolver(dir).CanActAsDepartmentHead(ctx, w.headXActor(), w.request(leave.StateAwaitingHead, 1))
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("head of another department", func(t *testing.T) {
		dir := directoryMock.NewMockDirectory(gomock.NewController(t))
		w.expectDirectory(dir)

		ok, err := leave.NewScopeResolver(dir).CanActAsDepartmentHead(ctx, w.headYActor(), w.request(leave.StateAwaitingHead, 1))
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("plain employee", func(t *testing.T) {
		dir := directoryMock.NewMockDirectory(gomock.NewController(t))
		w.expectDirectory(dir)

		ok, err := leave.NewScopeResolver(dir).CanActAsDepartmentHead(ctx, w.staffActor(), w.request(leave.StateAwaitingHead, 1))
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("actor without employee record", func(t *testing.T) {
		dir := directoryMock.NewMockDirectory(gomock.NewController(t))
		dir.EXPECT().
			FindEmployeeByUserID(gomock.Any(), w.adminUserID).
			Return(nil, directoryerrors.ErrEmployeeNotLinked)

		ok, err := leave.NewScopeResolver(dir).CanActAsDepartmentHead(ctx, w.adminActor(), w.request(leave.StateAwaitingHead, 1))
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("owner without department", func(t *testing.T) {
		dir := directoryMock.NewMockDirectory(gomock.NewController(t))
		orphan := &directory.Employee{ID: uuid.New(), UserID: uuid.New(), FullName: "Orphan"}
		dir.EXPECT().FindEmployeeByUserID(gomock.Any(), w.headX.UserID.String()).Return(w.headX, nil)
		dir.EXPECT().FindEmployeeByID(gomock.Any(), orphan.ID.String()).Return(orphan, nil)

		req := &leave.LeaveRequest{ID: uuid.New(), EmployeeID: orphan.ID, State: leave.StateAwaitingHead}
		ok, err := leave.NewScopeResolver(dir).CanActAsDepartmentHead(ctx, w.headXActor(), req)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("directory failure is returned", func(t *testing.T) {
		dir := directoryMock.NewMockDirectory(gomock.NewController(t))
		boom := errors.New("connection reset")
		dir.EXPECT().FindEmployeeByUserID(gomock.Any(), gomock.Any()).Return(nil, boom)

		ok, err := leave.NewScopeResolver(dir).CanActAsDepartmentHead(ctx, w.headXActor(), w.request(leave.StateAwaitingHead, 1))
		assert.ErrorIs(t, err, boom)
		assert.False(t, ok)
	})
}

func TestScopeResolver_HeadReassignmentIsLive(t *testing.T) {
	ctx := context.Background()
	w := newWorld()
	dir := directoryMock.NewMockDirectory(gomock.NewController(t))

	dir.EXPECT().FindEmployeeByUserID(gomock.Any(), w.headX.UserID.String()).Return(w.headX, nil).Times(2)
	dir.EXPECT().FindEmployeeByID(gomock.Any(), w.staff.ID.String()).Return(w.staff, nil).Times(2)

	reassigned := *w.deptX
	reassigned.HeadEmployeeID = &w.headY.ID
	gomock.InOrder(
		dir.EXPECT().FindDepartmentByID(gomock.Any(), w.deptX.ID.String()).Return(w.deptX, nil),
		dir.EXPECT().FindDepartmentByID(gomock.Any(), w.deptX.ID.String()).Return(&reassigned, nil),
	)

	resolver := leave.NewScopeResolver(dir)
	req := w.request(leave.StateAwaitingHead, 1)

	ok, err := resolver.CanActAsDepartmentHead(ctx, w.headXActor(), req)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = resolver.CanActAsDepartmentHead(ctx, w.headXActor(), req)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestScopeResolver_CanViewOwn(t *testing.T) {
	ctx := context.Background()
	w := newWorld()
	dir := directoryMock.NewMockDirectory(gomock.NewController(t))
	w.expectDirectory(dir)
	resolver := leave.NewScopeResolver(dir)
	req := w.request(leave.StateAwaitingHead, 1)

	ok, err := resolver.CanViewOwn(ctx, w.staffActor(), req)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = resolver.CanViewOwn(ctx, w.headYActor(), req)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestScopeResolver_CanActAsAdmin(t *testing.T) {
	w := newWorld()
	resolver := leave.NewScopeResolver(nil)

	assert.True(t, resolver.CanActAsAdmin(w.adminActor()))
	assert.False(t, resolver.CanActAsAdmin(w.headXActor()))
	assert.False(t, resolver.CanActAsAdmin(actor.Actor{UserID: "u", Role: "employee"}))
}

func TestScopeResolver_HeadedDepartments(t *testing.T) {
	ctx := context.Background()
	w := newWorld()

	t.Run("current head", func(t *testing.T) {
		dir := directoryMock.NewMockDirectory(gomock.NewController(t))
		w.expectDirectory(dir)

		depts, err := leave.NewScopeResolver(dir).HeadedDepartments(ctx, w.headXActor())
		assert.NoError(t, err)
		assert.Len(t, depts, 1)
		assert.Equal(t, w.deptX.ID, depts[0].ID)
	})

	t.Run("heads two departments", func(t *testing.T) {
		dir := directoryMock.NewMockDirectory(gomock.NewController(t))
		dir.EXPECT().FindEmployeeByUserID(gomock.Any(), w.headX.UserID.String()).Return(w.headX, nil)
		dir.EXPECT().FindDepartmentsByHead(gomock.Any(), w.headX.ID.String()).
			Return([]directory.Department{*w.deptY, *w.deptX}, nil)

		depts, err := leave.NewScopeResolver(dir).HeadedDepartments(ctx, w.headXActor())
		assert.NoError(t, err)
		assert.Len(t, depts, 2)
	})

	t.Run("not heading anything", func(t *testing.T) {
		dir := directoryMock.NewMockDirectory(gomock.NewController(t))
		w.expectDirectory(dir)

		_, err := leave.NewScopeResolver(dir).HeadedDepartments(ctx, w.staffActor())
		assert.ErrorIs(t, err, leaveerrors.ErrNotHeadingDepartment)
	})

	t.Run("admin without employee record", func(t *testing.T) {
		dir := directoryMock.NewMockDirectory(gomock.NewController(t))
		w.expectDirectory(dir)

		_, err := leave.NewScopeResolver(dir).HeadedDepartments(ctx, w.adminActor())
		assert.ErrorIs(t, err, leaveerrors.ErrNotHeadingDepartment)
	})
}
