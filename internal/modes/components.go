package modes

import (
	"context"
	"fmt"
	"io"

	"github.com/ehsaniara/botvisor/internal/botvisor/identity"
	"github.com/ehsaniara/botvisor/internal/botvisor/installer"
	"github.com/ehsaniara/botvisor/internal/botvisor/pubsub"
	"github.com/ehsaniara/botvisor/internal/botvisor/supervisor"
	"github.com/ehsaniara/botvisor/pkg/config"
	"github.com/ehsaniara/botvisor/pkg/logger"
	"github.com/ehsaniara/botvisor/pkg/platform"
)

type noopCloser struct{}

func (noopCloser) Close() error { return nil }

// newAllocator builds the identity allocator for the configured backend. The returned
// closer releases backend connections.
func newAllocator(cfg *config.Config) (identity.Allocator, io.Closer, error) {
	switch cfg.Identity.Backend {
	case "etcd":
		alloc, err := identity.NewEtcd(identity.EtcdConfig{
			Endpoints:   cfg.Identity.Endpoints,
			DialTimeout: cfg.Identity.DialTimeout,
			Key:         cfg.Identity.CounterKey,
			Prefix:      cfg.Identity.Prefix,
		})
		if err != nil {
			return nil, nil, err
		}
		return alloc, alloc, nil
	case "", "memory":
		return identity.NewMemory(cfg.Identity.Prefix), noopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown identity backend: %s", cfg.Identity.Backend)
	}
}

func newInstaller(cfg *config.Config, p platform.Platform) (installer.Installer, io.Closer, error) {
	switch cfg.Installer.Mode {
	case "docker":
		inst, err := installer.NewContainerInstaller(cfg.Installer.DockerHost, cfg.Installer.Image,
			cfg.Installer.Command, cfg.Installer.Timeout)
		if err != nil {
			return nil, nil, err
		}
		return inst, inst, nil
	case "", "host":
		return installer.NewHostInstaller(cfg.Installer.Command, cfg.Installer.Timeout, p), noopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown installer mode: %s", cfg.Installer.Mode)
	}
}

func newSupervisor(cfg *config.Config, p platform.Platform) (*supervisor.Supervisor, error) {
	return supervisor.New(supervisor.Config{
		LogDir:       cfg.Supervisor.LogDir,
		Interpreter:  cfg.Supervisor.Interpreter,
		KillTimeout:  cfg.Supervisor.KillTimeout,
		RestartDelay: cfg.Supervisor.RestartDelay,
		MinUptime:    cfg.Supervisor.MinUptime,
		MaxRestarts:  cfg.Supervisor.MaxRestarts,
	}, p)
}

// logEvents writes supervisor lifecycle events to the log until ctx is done.
func logEvents(ctx context.Context, sup *supervisor.Supervisor, log *logger.Logger) error {
	events, unsubscribe, err := sup.Subscribe(ctx)
	if err != nil {
		return err
	}
	go func() {
		defer unsubscribe()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-events:
				if !ok {
					return
				}
				logEvent(log, msg)
			}
		}
	}()
	return nil
}

func logEvent(log *logger.Logger, msg pubsub.Message[supervisor.Event]) {
	p := msg.Payload.Process
	fields := []interface{}{
		"bot", p.Name,
		"pid", p.PID,
		"status", p.Status,
		"restarts", p.RestartCount,
	}
	switch msg.Payload.Type {
	case supervisor.EventExit:
		log.Warn("bot exited", append(fields, "exitCode", p.ExitCode)...)
	case supervisor.EventErrored:
		log.Error("bot crash loop, giving up", append(fields, "unstableRestarts", p.UnstableRestarts)...)
	case supervisor.EventRestart:
		log.Info("bot restarted", fields...)
	default:
		log.Debug("bot "+string(msg.Payload.Type), fields...)
	}
}
