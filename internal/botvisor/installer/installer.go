// Package installer runs the dependency installation step for a job workspace
// and probes the interpreter version.
package installer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ehsaniara/botvisor/pkg/errors"
	"github.com/ehsaniara/botvisor/pkg/logger"
	"github.com/ehsaniara/botvisor/pkg/platform"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// maxDetails bounds the tool output attached to an install error.
const maxDetails = 4096

// Installer installs the dependencies declared in a workspace's package.json.
//
//counterfeiter:generate . Installer
type Installer interface {
	Install(ctx context.Context, name, dir string) error
}

// VersionProber reports the version of the interpreter bots run under.
//
//counterfeiter:generate . VersionProber
type VersionProber interface {
	Version(ctx context.Context) (string, error)
}

// HostInstaller runs the install command directly in the workspace directory.
type HostInstaller struct {
	command []string
	timeout time.Duration
	cmd     platform.CommandFactory
	logger  *logger.Logger
}

func NewHostInstaller(command []string, timeout time.Duration, cmd platform.CommandFactory) *HostInstaller {
	return &HostInstaller{
		command: append([]string(nil), command...),
		timeout: timeout,
		cmd:     cmd,
		logger:  logger.WithField("component", "installer"),
	}
}

func (h *HostInstaller) Install(ctx context.Context, name, dir string) error {
	if len(h.command) == 0 {
		return errors.Install(name, fmt.Errorf("no install command configured"), "")
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	log := h.logger.WithFields("name", name, "dir", dir, "command", strings.Join(h.command, " "))
	log.Info("installing dependencies")
	start := time.Now()

	cmd := h.cmd.CommandContext(ctx, h.command[0], h.command[1:]...)
	cmd.SetDir(dir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = fmt.Errorf("timed out after %s: %w", h.timeout, ctx.Err())
		}
		log.Warn("dependency install failed", "error", err, "duration", time.Since(start))
		return errors.Install(name, err, tail(string(output), maxDetails))
	}

	log.Info("dependencies installed", "duration", time.Since(start))
	return nil
}

// CommandProber runs `<interpreter> -v`.
type CommandProber struct {
	interpreter string
	timeout     time.Duration
	cmd         platform.CommandFactory
}

func NewCommandProber(interpreter string, cmd platform.CommandFactory) *CommandProber {
	return &CommandProber{interpreter: interpreter, timeout: 10 * time.Second, cmd: cmd}
}

func (p *CommandProber) Version(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := p.cmd.CommandContext(ctx, p.interpreter, "-v").CombinedOutput()
	if err != nil {
		return "", errors.Upstream("probe "+p.interpreter+" version", err)
	}
	version := strings.TrimSpace(string(out))
	if version == "" {
		return "", errors.Upstream("probe "+p.interpreter+" version", fmt.Errorf("empty output"))
	}
	return version, nil
}

// tail keeps the last n bytes of s, where npm puts the actual error.
func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
