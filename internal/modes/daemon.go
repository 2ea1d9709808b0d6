package modes

import (
	"context"
	"fmt"

	"github.com/ehsaniara/botvisor/pkg/config"
	"github.com/ehsaniara/botvisor/pkg/logger"
	"github.com/ehsaniara/botvisor/pkg/platform"
)

// RunDaemon runs the supervisor alone, serving it on the configured Unix socket until
// ctx is cancelled. HTTP servers started with supervisor.external connect to it.
func RunDaemon(ctx context.Context, cfg *config.Config) error {
	log := logger.WithField("mode", "daemon")

	if cfg.Supervisor.Socket == "" {
		return fmt.Errorf("supervisor socket not configured")
	}

	_, stop, err := startEmbeddedSupervisor(ctx, cfg, platform.NewPlatform(), log)
	if err != nil {
		return err
	}
	defer stop()

	log.Info("supervisor daemon started", "socket", cfg.Supervisor.Socket, "logDir", cfg.Supervisor.LogDir)
	<-ctx.Done()
	log.Info("received shutdown signal, stopping daemon...")
	return nil
}
