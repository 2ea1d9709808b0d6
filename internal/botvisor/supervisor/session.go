package supervisor

import (
	"context"
	"sync/atomic"

	"github.com/ehsaniara/botvisor/pkg/errors"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Backend is the set of supervisor operations a session forwards to.
type Backend interface {
	Start(ctx context.Context, spec StartSpec) (ProcessInfo, error)
	List(ctx context.Context) ([]ProcessInfo, error)
	Describe(ctx context.Context, name string) (ProcessInfo, error)
	Stop(ctx context.Context, name string) (ProcessInfo, error)
	Tail(ctx context.Context, name string, lines int) ([]string, error)
}

// Session is a scoped connection to a supervisor. Callers close it when the
// operation is done; every call after Close fails with ErrSessionClosed.
//
//counterfeiter:generate . Session
type Session interface {
	Backend
	Close() error
}

// Connector opens sessions, either to an in-process supervisor or to a daemon.
//
//counterfeiter:generate . Connector
type Connector interface {
	Connect(ctx context.Context) (Session, error)
}

// LocalConnector connects to a supervisor running in the same process.
type LocalConnector struct {
	backend Backend
}

func NewLocalConnector(backend Backend) *LocalConnector {
	return &LocalConnector{backend: backend}
}

func (c *LocalConnector) Connect(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Upstream("connect supervisor", err)
	}
	return &localSession{backend: c.backend}, nil
}

type localSession struct {
	backend Backend
	closed  atomic.Bool
}

func (s *localSession) Start(ctx context.Context, spec StartSpec) (ProcessInfo, error) {
	if s.closed.Load() {
		return ProcessInfo{}, errors.ErrSessionClosed
	}
	return s.backend.Start(ctx, spec)
}

func (s *localSession) List(ctx context.Context) ([]ProcessInfo, error) {
	if s.closed.Load() {
		return nil, errors.ErrSessionClosed
	}
	return s.backend.List(ctx)
}

func (s *localSession) Describe(ctx context.Context, name string) (ProcessInfo, error) {
	if s.closed.Load() {
		return ProcessInfo{}, errors.ErrSessionClosed
	}
	return s.backend.Describe(ctx, name)
}

func (s *localSession) Stop(ctx context.Context, name string) (ProcessInfo, error) {
	if s.closed.Load() {
		return ProcessInfo{}, errors.ErrSessionClosed
	}
	return s.backend.Stop(ctx, name)
}

func (s *localSession) Tail(ctx context.Context, name string, lines int) ([]string, error) {
	if s.closed.Load() {
		return nil, errors.ErrSessionClosed
	}
	return s.backend.Tail(ctx, name, lines)
}

// Close is idempotent.
func (s *localSession) Close() error {
	s.closed.Store(true)
	return nil
}
