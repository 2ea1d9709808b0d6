package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ehsaniara/botvisor/internal/botvisor/ipc"
	"github.com/ehsaniara/botvisor/internal/botvisor/supervisor"
)

const requestTimeout = 10 * time.Second

// withSession runs fn against the supervisor daemon.
func (o *options) withSession(fn func(ctx context.Context, session supervisor.Session) error) error {
	if o.cfg.Supervisor.Socket == "" {
		return fmt.Errorf("no supervisor socket configured (use --socket or supervisor.socket)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	session, err := ipc.NewDialer(o.cfg.Supervisor.Socket, requestTimeout).Connect(ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	return fn(ctx, session)
}

func newPsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ps",
		Short: "List supervised processes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(func(ctx context.Context, session supervisor.Session) error {
				list, err := session.List(ctx)
				if err != nil {
					return fmt.Errorf("failed to list processes: %w", err)
				}
				if opts.jsonOutput {
					return writeJSON(cmd.OutOrStdout(), list)
				}
				formatProcessList(cmd.OutOrStdout(), list)
				return nil
			})
		},
	}
}

func formatProcessList(w io.Writer, list []supervisor.ProcessInfo) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No processes found")
		return
	}

	nameWidth := len("NAME")
	for _, p := range list {
		if len(p.Name) > nameWidth {
			nameWidth = len(p.Name)
		}
	}

	fmt.Fprintf(w, "%-*s %-8s %-10s %-9s %s\n", nameWidth, "NAME", "PID", "STATUS", "RESTARTS", "UPTIME")
	for _, p := range list {
		pid, uptime := "-", "-"
		if p.Running() {
			pid = strconv.Itoa(p.PID)
			if !p.StartedAt.IsZero() {
				uptime = time.Since(p.StartedAt).Truncate(time.Second).String()
			}
		}
		fmt.Fprintf(w, "%-*s %-8s %-10s %-9d %s\n", nameWidth, p.Name, pid, p.Status, p.RestartCount, uptime)
	}
}

func newLogsCmd(opts *options) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs <name>",
		Short: "Print the latest output of a process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(func(ctx context.Context, session supervisor.Session) error {
				out, err := session.Tail(ctx, args[0], supervisor.NormalizeLines(lines))
				if err != nil {
					return err
				}
				if opts.jsonOutput {
					return writeJSON(cmd.OutOrStdout(), out)
				}
				if len(out) > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, "\n"))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", supervisor.DefaultTailLines, "Number of lines per stream")
	return cmd
}

func newStopCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stop <name>",
		Short: "Stop a process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(func(ctx context.Context, session supervisor.Session) error {
				info, err := session.Stop(ctx, args[0])
				if err != nil {
					return err
				}
				if opts.jsonOutput {
					return writeJSON(cmd.OutOrStdout(), info)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s stopped\n", info.Name)
				return nil
			})
		},
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
