package platform

import (
	"context"
	"io"
	"os"
	"syscall"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Platform provides a unified interface for all platform-specific operations
type Platform interface {
	OSOperations
	SyscallOperations
	CommandFactory
	ExecOperations
}

// OSOperations defines file system operations
//
//counterfeiter:generate . OSOperations
type OSOperations interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
	ReadFile(path string) ([]byte, error)
	MkdirAll(dir string, perm os.FileMode) error
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	ReadDir(dir string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
	IsNotExist(err error) bool

	DirExists(path string) bool
	FileExists(path string) bool
}

// SyscallOperations defines low-level process control
type SyscallOperations interface {
	Kill(pid int, sig syscall.Signal) error
	CreateProcessGroup() *syscall.SysProcAttr
}

// CommandFactory creates commands bound to a context; the command is killed when ctx is done.
type CommandFactory interface {
	CommandContext(ctx context.Context, name string, args ...string) Command
}

// Command represents an executing command
type Command interface {
	Start() error
	Wait() error
	Process() Process
	ProcessState() *os.ProcessState
	SetStdout(w io.Writer)
	SetStderr(w io.Writer)
	SetSysProcAttr(attr *syscall.SysProcAttr)
	SetEnv(env []string)
	SetDir(dir string)
	CombinedOutput() ([]byte, error)
}

// Process represents a running process
type Process interface {
	Pid() int
	Kill() error
}

// ExecOperations defines executable resolution operations
type ExecOperations interface {
	LookPath(file string) (string, error)
}
