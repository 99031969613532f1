package leave

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"

	leaveerrors "github.com/kidaholy/human-resource-sub000/internal/leave/errors"
	"github.com/kidaholy/human-resource-sub000/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates persistence failures into the error taxonomy.
// Already classified AppErrors pass through untouched.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}

	if isStoreUnavailable(err) {
		return apperror.Wrap(err,
			apperror.ErrStoreUnavailable.Code,
			apperror.ErrStoreUnavailable.Message,
			apperror.ErrStoreUnavailable.HTTPStatus,
		)
	}

	return err
}

func isStoreUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 08: connection exception, 53: insufficient resources, 57P: operator intervention
		return strings.HasPrefix(pgErr.Code, "08") ||
			strings.HasPrefix(pgErr.Code, "53") ||
			strings.HasPrefix(pgErr.Code, "57P")
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "connection refused") || strings.Contains(errMsg, "broken pipe")
}
