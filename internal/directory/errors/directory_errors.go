package directoryerrors

import (
	"net/http"

	"github.com/kidaholy/human-resource-sub000/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotLinked = apperror.New(
		apperror.CodeForbidden,
		"account is not linked to an employee record",
		http.StatusForbidden,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"department not found",
		http.StatusNotFound,
	)
)
