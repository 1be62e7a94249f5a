package postgre

import (
	"context"
	"sync"
)

// Scope owns at most one Session for the lifetime of a request.
// The session is acquired on first use, so work rejected before touching
// the database never takes a connection from the pool.
type Scope struct {
	provider Provider

	mu       sync.Mutex
	session  *Session
	released bool
}

// NewScope returns an empty scope backed by p.
func NewScope(p Provider) *Scope {
	return &Scope{provider: p}
}

// Session returns the scope's session, acquiring it on the first call.
func (s *Scope) Session(ctx context.Context) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return nil, ErrScopeReleased
	}
	if s.session != nil {
		return s.session, nil
	}
	if s.provider == nil {
		return nil, ErrNilProvider
	}

	sess, err := s.provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	s.session = sess
	return sess, nil
}

// Acquired reports whether a session has been taken from the pool.
func (s *Scope) Acquired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil
}

// Release closes the scope and returns its session, if any, to the pool.
// Calls after the first are no-ops.
func (s *Scope) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return nil
	}
	s.released = true
	if s.session == nil {
		return nil
	}
	return s.session.Release()
}

type scopeKey struct{}

// WithScope attaches s to ctx.
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFromContext returns the scope attached to ctx, if any.
func ScopeFromContext(ctx context.Context) (*Scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(*Scope)
	return s, ok && s != nil
}

// SessionFromContext returns the request session, acquiring it if needed.
// It returns ErrNoSession when ctx carries no scope.
func SessionFromContext(ctx context.Context) (*Session, error) {
	s, ok := ScopeFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}
	return s.Session(ctx)
}

// WithinScope runs fn with a fresh scope in its context and releases the
// scope on every exit path, including a panic in fn.
func WithinScope(ctx context.Context, p Provider, fn func(ctx context.Context) error) (err error) {
	scope := NewScope(p)
	defer func() {
		if rerr := scope.Release(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	return fn(WithScope(ctx, scope))
}
