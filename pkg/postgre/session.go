package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// Provider hands out one Session per caller.
type Provider interface {
	Acquire(ctx context.Context) (*Session, error)
}

type poolProvider struct {
	db      *sql.DB
	timeout time.Duration
}

// NewProvider returns a Provider that checks dedicated connections out of db.
// A positive acquireTimeout bounds how long Acquire waits on an exhausted pool.
func NewProvider(db *sql.DB, acquireTimeout time.Duration) Provider {
	if db == nil {
		panic("postgre: db is required")
	}
	return &poolProvider{db: db, timeout: acquireTimeout}
}

// Acquire checks a connection out of the pool. Any failure is reported as
// ErrUnavailable.
func (p *poolProvider) Acquire(ctx context.Context) (*Session, error) {
	actx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		actx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	conn, err := p.db.Conn(actx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &Session{conn: conn}, nil
}

// Session is a database handle owned by exactly one request.
// After Release every method fails with sql.ErrConnDone.
type Session struct {
	conn *sql.Conn
	once sync.Once
	err  error
}

func (s *Session) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.conn.ExecContext(ctx, query, args...)
}

func (s *Session) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.conn.QueryContext(ctx, query, args...)
}

func (s *Session) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return s.conn.QueryRowContext(ctx, query, args...)
}

// Release returns the connection to the pool. Safe to call more than once.
func (s *Session) Release() error {
	s.once.Do(func() {
		s.err = s.conn.Close()
	})
	return s.err
}
