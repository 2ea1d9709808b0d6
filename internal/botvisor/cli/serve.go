package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ehsaniara/botvisor/internal/modes"
	"github.com/ehsaniara/botvisor/pkg/logger"
)

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API on server.address:server.port.

Unless supervisor.external is set, bots run under an in-process supervisor and are
stopped when the server exits. With supervisor.socket set, that supervisor is also
reachable by 'botvisor ps', 'logs' and 'stop'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.SetGlobalMode("server")
			ctx, stop := signalContext(cmd.Context())
			defer stop()
			return modes.RunServer(ctx, opts.cfg)
		},
	}
}

func newDaemonCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run the process supervisor on a Unix socket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.SetGlobalMode("daemon")
			ctx, stop := signalContext(cmd.Context())
			defer stop()
			return modes.RunDaemon(ctx, opts.cfg)
		},
	}
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
