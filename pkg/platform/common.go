package platform

import (
	"context"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// commandWaitDelay bounds how long Wait keeps draining output pipes once the
// context is done or the direct child has exited.
const commandWaitDelay = 2 * time.Second

// OSPlatform is the Platform backed by the running host.
type OSPlatform struct{}

func NewPlatform() Platform {
	return &OSPlatform{}
}

func (p *OSPlatform) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (p *OSPlatform) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (p *OSPlatform) MkdirAll(dir string, perm os.FileMode) error {
	return os.MkdirAll(dir, perm)
}

func (p *OSPlatform) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

func (p *OSPlatform) ReadDir(dir string) ([]os.DirEntry, error) {
	return os.ReadDir(dir)
}

func (p *OSPlatform) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (p *OSPlatform) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

// DirExists checks if a directory exists
func (p *OSPlatform) DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FileExists checks if a regular file exists
func (p *OSPlatform) FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func (p *OSPlatform) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (p *OSPlatform) Kill(pid int, sig syscall.Signal) error {
	return syscall.Kill(pid, sig)
}

// CreateProcessGroup puts the child in its own process group so signals reach its children too.
func (p *OSPlatform) CreateProcessGroup() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setpgid: true,
		Pgid:    0,
	}
}

// CommandContext starts the child in its own process group. Cancelling ctx
// kills the whole group so descendants holding the output pipes die with it.
func (p *OSPlatform) CommandContext(ctx context.Context, name string, args ...string) Command {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		if cmd.SysProcAttr != nil && cmd.SysProcAttr.Setpgid {
			if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err == nil {
				return nil
			}
		}
		return cmd.Process.Kill()
	}
	cmd.WaitDelay = commandWaitDelay
	return &ExecCommand{cmd: cmd}
}

// ExecCommand wraps exec.Cmd to implement Command interface
type ExecCommand struct {
	cmd *exec.Cmd
}

func (e *ExecCommand) Start() error {
	return e.cmd.Start()
}

func (e *ExecCommand) Wait() error {
	return e.cmd.Wait()
}

func (e *ExecCommand) Process() Process {
	if e.cmd.Process == nil {
		return nil
	}
	return &ExecProcess{process: e.cmd.Process}
}

func (e *ExecCommand) ProcessState() *os.ProcessState {
	return e.cmd.ProcessState
}

func (e *ExecCommand) SetStdout(w io.Writer) {
	e.cmd.Stdout = w
}

func (e *ExecCommand) SetStderr(w io.Writer) {
	e.cmd.Stderr = w
}

func (e *ExecCommand) SetSysProcAttr(attr *syscall.SysProcAttr) {
	e.cmd.SysProcAttr = attr
}

func (e *ExecCommand) SetEnv(env []string) {
	e.cmd.Env = env
}

func (e *ExecCommand) SetDir(dir string) {
	e.cmd.Dir = dir
}

// CombinedOutput runs the command and returns its combined stdout and stderr
func (e *ExecCommand) CombinedOutput() ([]byte, error) {
	return e.cmd.CombinedOutput()
}

// ExecProcess wraps os.Process to implement Process interface
type ExecProcess struct {
	process *os.Process
}

func (p *ExecProcess) Pid() int {
	return p.process.Pid
}

func (p *ExecProcess) Kill() error {
	return p.process.Kill()
}
