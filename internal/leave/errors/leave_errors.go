package leaveerrors

import (
	"net/http"

	"github.com/kidaholy/human-resource-sub000/internal/shared/apperror"
)

// Validation
var (
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave request id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_date must be on or after start_date",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"leave_type must be one of annual, sick, maternity, paternity, bereavement, other",
		http.StatusBadRequest,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"reason is required",
		http.StatusBadRequest,
	)
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"status must be approved or rejected",
		http.StatusBadRequest,
	)
	ErrInvalidStageFilter = apperror.New(
		apperror.CodeInvalidInput,
		"stage filter must be pending, approved or rejected",
		http.StatusBadRequest,
	)
)

// Authorization
var (
	ErrNotDepartmentHead = apperror.New(
		apperror.CodeForbidden,
		"not the head of this employee's department",
		http.StatusForbidden,
	)
	ErrNotHeadingDepartment = apperror.New(
		apperror.CodeForbidden,
		"you are not currently the head of any department",
		http.StatusForbidden,
	)
	ErrNotAdmin = apperror.New(
		apperror.CodeForbidden,
		"only an administrator can perform this action",
		http.StatusForbidden,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to view this leave request",
		http.StatusForbidden,
	)
)

// State conflicts
var (
	ErrAlreadyDecidedByHead = apperror.New(
		apperror.CodeInvalidState,
		"already decided by department head",
		http.StatusBadRequest,
	)
	ErrAwaitingDepartmentHead = apperror.New(
		apperror.CodeInvalidState,
		"awaiting department head approval",
		http.StatusBadRequest,
	)
	ErrAlreadyDecidedByAdmin = apperror.New(
		apperror.CodeInvalidState,
		"already decided by admin",
		http.StatusBadRequest,
	)
	ErrRejectedByHead = apperror.New(
		apperror.CodeInvalidState,
		"rejected by department head, admin decision is not possible",
		http.StatusBadRequest,
	)
	ErrConcurrentDecision = apperror.New(
		apperror.CodeInvalidState,
		"leave request was decided by another request, reload and try again",
		http.StatusBadRequest,
	)
)

var ErrLeaveNotFound = apperror.New(
	apperror.CodeNotFound,
	"leave request not found",
	http.StatusNotFound,
)
