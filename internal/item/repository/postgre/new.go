package postgre

import (
	"context"
	"errors"
	"fmt"

	"items-api/internal/item/repository"
	"items-api/pkg/log"
	pkgPostgre "items-api/pkg/postgre"
)

type implRepository struct {
	l log.Logger
}

// New creates a new PostgreSQL-backed Repository for the item domain.
// It holds no connection of its own: statements run on the session
// carried by each call's context.
func New(l log.Logger) repository.Repository {
	if l == nil {
		panic("item/repository/postgre: logger is required")
	}
	return &implRepository{l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/postgre.%s", method)
}

// session fetches the request session, translating acquisition failures.
func (r *implRepository) session(ctx context.Context, method string) (*pkgPostgre.Session, error) {
	sess, err := pkgPostgre.SessionFromContext(ctx)
	if err == nil {
		return sess, nil
	}
	if errors.Is(err, pkgPostgre.ErrUnavailable) {
		r.l.Warnf(ctx, "%s acquire: %v", r.dsn(method), err)
		return nil, fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}
	r.l.Errorf(ctx, "%s acquire: %v", r.dsn(method), err)
	return nil, err
}

// fail logs a statement error and wraps it with the sentinel callers match on.
func (r *implRepository) fail(ctx context.Context, method string, err error, sentinel error) error {
	if pkgPostgre.IsUnavailable(err) {
		r.l.Warnf(ctx, "%s: %v", r.dsn(method), err)
		return fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}
	r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
	return fmt.Errorf("%w: %w", sentinel, err)
}
