package postgre

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUnavailable   = errors.New("database unavailable")
	ErrNoSession     = errors.New("no database session in context")
	ErrScopeReleased = errors.New("session scope already released")
	ErrNilProvider   = errors.New("session provider is nil")
)

// IsUnavailable reports whether err means the database could not serve the
// request at all, as opposed to rejecting a statement.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUnavailable) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	// Class 08 connection exception, class 53 insufficient resources, 57P03 cannot_connect_now.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "08") ||
			strings.HasPrefix(pgErr.Code, "53") ||
			pgErr.Code == "57P03"
	}
	return false
}
