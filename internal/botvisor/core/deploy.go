package core

import (
	"context"
	"strings"
	"time"

	"github.com/ehsaniara/botvisor/internal/botvisor/supervisor"
	"github.com/ehsaniara/botvisor/pkg/errors"
)

type DeployRequest struct {
	Code         string
	ZipURL       string
	Dependencies map[string]string
}

type DeployResult struct {
	BotName string
	PID     int
}

// Deploy allocates a name, prepares the workspace, installs dependencies and hands the
// bot to the supervisor. Each stage short-circuits on failure; nothing is rolled back,
// so a failed deploy leaves its workspace for inspection.
func (s *Service) Deploy(ctx context.Context, req DeployRequest) (*DeployResult, error) {
	if req.Code == "" && strings.TrimSpace(req.ZipURL) == "" {
		return nil, errors.Validation("deploy", errors.ErrMissingSource)
	}
	if req.Code == "" {
		return nil, errors.NotImplemented("deploy", errors.ErrArchiveDeploy)
	}

	name, err := s.allocator.Allocate(ctx)
	if err != nil {
		return nil, errors.Upstream("allocate identity", err)
	}

	log := s.logger.WithField("bot", name)
	start := time.Now()

	ws, err := s.workspaces.Prepare(name, req.Code, req.Dependencies)
	if err != nil {
		log.Error("workspace preparation failed", "error", err)
		return nil, err
	}

	if err := s.installer.Install(ctx, name, ws.Path); err != nil {
		log.Error("dependency install failed", "error", err)
		if !errors.IsInstall(err) {
			err = errors.Install(name, err, "")
		}
		return nil, err
	}

	info, err := s.start(ctx, supervisor.StartSpec{
		Name:        name,
		Script:      ws.EntryPath,
		Cwd:         ws.Path,
		Interpreter: s.opts.Interpreter,
		Autorestart: s.opts.Autorestart,
	})
	if err != nil {
		log.Error("failed to start bot", "error", err)
		return nil, err
	}

	log.Info("bot deployed", "pid", info.PID, "duration", time.Since(start))
	return &DeployResult{BotName: name, PID: info.PID}, nil
}

// start registers the bot with the supervisor over a session scoped to this call.
func (s *Service) start(ctx context.Context, spec supervisor.StartSpec) (supervisor.ProcessInfo, error) {
	session, err := s.connect(ctx)
	if err != nil {
		return supervisor.ProcessInfo{}, err
	}
	defer session.Close()

	ctx, cancel := context.WithTimeout(ctx, s.opts.StartTimeout)
	defer cancel()

	info, err := session.Start(ctx, spec)
	if err != nil {
		if errors.IsStart(err) {
			return supervisor.ProcessInfo{}, err
		}
		return supervisor.ProcessInfo{}, errors.Start(spec.Name, err)
	}
	return info, nil
}
