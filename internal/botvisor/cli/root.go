// Package cli implements the botvisor command line.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ehsaniara/botvisor/pkg/config"
	"github.com/ehsaniara/botvisor/pkg/logger"
)

type options struct {
	flags      config.Flags
	jsonOutput bool
	cfg        *config.Config
}

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "botvisor",
		Short: "Deploy and supervise bot scripts",
		Long: `botvisor accepts bot source code over HTTP, installs its npm dependencies in an
isolated workspace and keeps it running under a restart-on-crash supervisor.

Run the API with the supervisor embedded:
  botvisor serve

Or keep bots alive across API restarts by running the supervisor separately:
  botvisor daemon --socket /run/botvisor/supervisor.sock
  botvisor serve --socket /run/botvisor/supervisor.sock   (with supervisor.external: true)

Inspect bots managed by a daemon:
  botvisor ps
  botvisor logs bot1 --lines 50
  botvisor stop bot1`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return opts.load()
		},
	}

	opts.flags.BindFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newDaemonCmd(opts))
	rootCmd.AddCommand(newPsCmd(opts))
	rootCmd.AddCommand(newLogsCmd(opts))
	rootCmd.AddCommand(newStopCmd(opts))
	rootCmd.AddCommand(newVersionCmd(opts))

	return rootCmd
}

// load reads the configuration file, then applies command-line overrides.
func (o *options) load() error {
	cfg, path, err := config.LoadConfigFrom(o.flags.ConfigPath)
	if err != nil {
		return err
	}
	if err := o.flags.Apply(cfg); err != nil {
		return fmt.Errorf("invalid command-line flags: %w", err)
	}
	if err := initializeLogging(cfg); err != nil {
		return err
	}
	logger.Debug("configuration loaded", "path", path)
	o.cfg = cfg
	return nil
}

func initializeLogging(cfg *config.Config) error {
	level, err := logger.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	logger.Global().SetFormat(cfg.Logging.Format)

	if cfg.Logging.Output != "" && cfg.Logging.Output != "stdout" {
		if err := os.MkdirAll(filepath.Dir(cfg.Logging.Output), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.Logging.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logger.Global().SetOutput(f)
	}
	return nil
}
