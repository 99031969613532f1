package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"

	"github.com/kidaholy/human-resource-sub000/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.ErrTooManyRequests)
		assert.Equal(t, http.StatusTooManyRequests, got.Status)
		assert.Equal(t, apperror.CodeTooMany, got.Code)
	})

	t.Run("wrapped app error", func(t *testing.T) {
		got := apperror.ToHTTP(fmt.Errorf("decide: %w", apperror.ErrForbidden))
		assert.Equal(t, http.StatusForbidden, got.Status)
	})

	t.Run("unknown error hides message", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: relation does not exist"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.ErrInternal.Message, got.Message)
	})
}

func TestAppError_IsAndDetails(t *testing.T) {
	detailed := apperror.ErrForbidden.WithDetails(map[string]string{"required": "leave_admin:decide"})
	assert.ErrorIs(t, detailed, apperror.ErrForbidden)
	assert.Nil(t, apperror.ErrForbidden.Details)

	cause := errors.New("dial tcp: connection refused")
	wrapped := apperror.Wrap(cause, apperror.CodeServiceUnavailable, "down", http.StatusServiceUnavailable)
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, wrapped.Error(), "connection refused")
	assert.Nil(t, apperror.Wrap(nil, "X", "y", 500))
}

type sample struct {
	StartDate string `json:"start_date" validate:"required"`
	Status    string `json:"status" validate:"oneof=approved rejected"`
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string { return f.Tag.Get("json") })

	t.Run("required", func(t *testing.T) {
		err := apperror.MapValidationError(v.Struct(sample{Status: "approved"}))
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, "Start Date is required", got.Message)
	})

	t.Run("rule", func(t *testing.T) {
		err := apperror.MapValidationError(v.Struct(sample{StartDate: "2024-06-10", Status: "pending"}))
		got := apperror.ToHTTP(err)
		assert.Equal(t, "Status is invalid", got.Message)
		assert.Equal(t, map[string]string{"field": "status", "rule": "oneof"}, got.Details)
	})

	t.Run("not a validation error", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.MapValidationError(errors.New("unexpected EOF")))
		assert.Equal(t, apperror.CodeValidation, got.Code)
	})
}
