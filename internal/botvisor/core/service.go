// Package core implements the deployment pipeline and the query/control operations on bots.
// The supervisor is the only source of process state; nothing here caches it.
package core

import (
	"context"
	"time"

	"github.com/ehsaniara/botvisor/internal/botvisor/identity"
	"github.com/ehsaniara/botvisor/internal/botvisor/installer"
	"github.com/ehsaniara/botvisor/internal/botvisor/supervisor"
	"github.com/ehsaniara/botvisor/internal/botvisor/workspace"
	"github.com/ehsaniara/botvisor/pkg/errors"
	"github.com/ehsaniara/botvisor/pkg/logger"
)

// Workspaces prepares job directories.
type Workspaces interface {
	Prepare(identity, source string, dependencies map[string]string) (*workspace.Workspace, error)
}

type Options struct {
	// Interpreter bots are started with; empty uses the supervisor default.
	Interpreter  string
	StartTimeout time.Duration
	Autorestart  bool
}

type Service struct {
	allocator  identity.Allocator
	workspaces Workspaces
	installer  installer.Installer
	connector  supervisor.Connector
	prober     installer.VersionProber
	opts       Options
	logger     *logger.Logger
}

func NewService(
	allocator identity.Allocator,
	workspaces Workspaces,
	inst installer.Installer,
	connector supervisor.Connector,
	prober installer.VersionProber,
	opts Options,
) *Service {
	if opts.StartTimeout <= 0 {
		opts.StartTimeout = 10 * time.Second
	}
	return &Service{
		allocator:  allocator,
		workspaces: workspaces,
		installer:  inst,
		connector:  connector,
		prober:     prober,
		opts:       opts,
		logger:     logger.WithField("component", "core"),
	}
}

// connect opens a supervisor session; the caller must Close it.
func (s *Service) connect(ctx context.Context) (supervisor.Session, error) {
	session, err := s.connector.Connect(ctx)
	if err != nil {
		if errors.KindOf(err) == errors.KindUpstream {
			return nil, err
		}
		return nil, errors.Upstream("connect supervisor", err)
	}
	return session, nil
}

// upstream classifies errors the supervisor returned without a kind.
func upstream(op string, err error) error {
	if errors.KindOf(err) != errors.KindUnknown {
		return err
	}
	return errors.Upstream(op, err)
}

// SeedIdentities raises the allocator floor past every name already on disk or known
// to the supervisor, so a restarted service never reissues a name.
func (s *Service) SeedIdentities(ctx context.Context, existing []string) error {
	for _, name := range existing {
		s.allocator.Observe(name)
	}

	session, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	list, err := session.List(ctx)
	if err != nil {
		return upstream("list processes", err)
	}
	for _, p := range list {
		s.allocator.Observe(p.Name)
	}
	s.logger.Debug("identity allocator seeded", "workspaces", len(existing), "processes", len(list))
	return nil
}
