package modes

import (
	"context"
	"fmt"

	"github.com/ehsaniara/botvisor/internal/botvisor/core"
	"github.com/ehsaniara/botvisor/internal/botvisor/installer"
	"github.com/ehsaniara/botvisor/internal/botvisor/ipc"
	"github.com/ehsaniara/botvisor/internal/botvisor/server"
	"github.com/ehsaniara/botvisor/internal/botvisor/supervisor"
	"github.com/ehsaniara/botvisor/internal/botvisor/workspace"
	"github.com/ehsaniara/botvisor/pkg/config"
	"github.com/ehsaniara/botvisor/pkg/logger"
	"github.com/ehsaniara/botvisor/pkg/platform"
)

// RunServer starts the HTTP API and blocks until ctx is cancelled.
//
// With supervisor.external the bots are managed by a separate `botvisor daemon`
// reached over supervisor.socket. Otherwise the supervisor runs in-process, is also
// exposed on supervisor.socket when one is configured, and every bot is stopped
// when the server exits.
func RunServer(ctx context.Context, cfg *config.Config) error {
	log := logger.WithField("mode", "server")

	log.Info("starting botvisor server",
		"address", cfg.GetServerAddress(),
		"workspaceRoot", cfg.Workspace.Root,
		"installer", cfg.Installer.Mode,
		"identity", cfg.Identity.Backend,
		"externalSupervisor", cfg.Supervisor.External)

	platformInstance := platform.NewPlatform()

	workspaces := workspace.NewManager(cfg.Workspace.Root, cfg.Workspace.EntryFile, platformInstance)
	if err := workspaces.EnsureRoot(); err != nil {
		return err
	}

	allocator, allocatorCloser, err := newAllocator(cfg)
	if err != nil {
		return fmt.Errorf("failed to create identity allocator: %w", err)
	}
	defer func() {
		if closeErr := allocatorCloser.Close(); closeErr != nil {
			log.Error("error closing identity allocator", "error", closeErr)
		}
	}()

	inst, installerCloser, err := newInstaller(cfg, platformInstance)
	if err != nil {
		return fmt.Errorf("failed to create installer: %w", err)
	}
	defer func() {
		if closeErr := installerCloser.Close(); closeErr != nil {
			log.Error("error closing installer", "error", closeErr)
		}
	}()

	var connector supervisor.Connector
	if cfg.Supervisor.External {
		// a remote stop may wait out the daemon's full kill timeout
		connector = ipc.NewDialer(cfg.Supervisor.Socket, cfg.Supervisor.StartTimeout+cfg.Supervisor.KillTimeout)
	} else {
		sup, stop, err := startEmbeddedSupervisor(ctx, cfg, platformInstance, log)
		if err != nil {
			return err
		}
		defer stop()
		connector = supervisor.NewLocalConnector(sup)
	}

	service := core.NewService(
		allocator,
		workspaces,
		inst,
		connector,
		installer.NewCommandProber(cfg.Installer.Interpreter, platformInstance),
		core.Options{
			Interpreter:  cfg.Supervisor.Interpreter,
			StartTimeout: cfg.Supervisor.StartTimeout,
			Autorestart:  cfg.Supervisor.Autorestart,
		},
	)

	existing, err := workspaces.Identities()
	if err != nil {
		log.Warn("failed to scan existing workspaces", "error", err)
	}
	if err := service.SeedIdentities(ctx, existing); err != nil {
		// the daemon may come up later; names on disk are still honoured
		log.Warn("failed to seed identities from supervisor", "error", err)
	}

	if err := server.New(cfg, service).Run(ctx); err != nil {
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	log.Info("server stopped gracefully")
	return nil
}

// startEmbeddedSupervisor creates the in-process supervisor, logs its events and
// exposes it on the configured socket. stop shuts everything down again.
func startEmbeddedSupervisor(ctx context.Context, cfg *config.Config, p platform.Platform, log *logger.Logger) (*supervisor.Supervisor, func(), error) {
	sup, err := newSupervisor(cfg, p)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create supervisor: %w", err)
	}
	if err := logEvents(ctx, sup, logger.WithField("component", "bots")); err != nil {
		log.Warn("failed to subscribe to supervisor events", "error", err)
	}

	var ipcServer *ipc.Server
	if cfg.Supervisor.Socket != "" {
		ipcServer = ipc.NewServer(cfg.Supervisor.Socket, sup)
		if err := ipcServer.Start(); err != nil {
			_ = shutdownSupervisor(cfg, sup, log)
			return nil, nil, fmt.Errorf("failed to start supervisor socket: %w", err)
		}
	}

	stop := func() {
		if ipcServer != nil {
			if err := ipcServer.Stop(); err != nil {
				log.Error("error stopping supervisor socket", "error", err)
			}
		}
		if err := shutdownSupervisor(cfg, sup, log); err != nil {
			log.Error("error stopping bots", "error", err)
		}
	}
	return sup, stop, nil
}

func shutdownSupervisor(cfg *config.Config, sup *supervisor.Supervisor, log *logger.Logger) error {
	timeout := cfg.Supervisor.KillTimeout + cfg.Server.ShutdownTimeout
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Info("stopping supervised bots")
	return sup.Shutdown(ctx)
}
