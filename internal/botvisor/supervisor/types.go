package supervisor

import (
	"time"
)

// Status of a supervised process, named after the pm2 states clients already know.
type Status string

const (
	StatusLaunching Status = "launching"
	StatusOnline    Status = "online"
	StatusStopping  Status = "stopping"
	StatusStopped   Status = "stopped"
	StatusErrored   Status = "errored"
)

// StartSpec describes a process to supervise.
type StartSpec struct {
	Name   string `json:"name"`
	Script string `json:"script"`
	// Cwd defaults to the script's directory.
	Cwd string `json:"cwd,omitempty"`
	// Interpreter defaults to the supervisor's configured interpreter.
	Interpreter string   `json:"interpreter,omitempty"`
	Args        []string `json:"args,omitempty"`
	Env         []string `json:"env,omitempty"`
	Autorestart bool     `json:"autorestart"`
}

// ProcessInfo is a point-in-time view of a registry record.
type ProcessInfo struct {
	Name             string    `json:"name"`
	PID              int       `json:"pid"`
	Status           Status    `json:"status"`
	RestartCount     int       `json:"restart_count"`
	UnstableRestarts int       `json:"unstable_restarts"`
	Cwd              string    `json:"cwd"`
	Script           string    `json:"script"`
	StartedAt        time.Time `json:"started_at"`
	ExitCode         int       `json:"exit_code"`
}

// Running reports whether the process currently has a live pid.
func (p ProcessInfo) Running() bool {
	return p.PID > 0 && (p.Status == StatusOnline || p.Status == StatusStopping)
}

type EventType string

const (
	EventStart   EventType = "start"
	EventExit    EventType = "exit"
	EventRestart EventType = "restart"
	EventStop    EventType = "stop"
	EventErrored EventType = "errored"
)

// TopicProcess is the pubsub topic lifecycle events are published on.
const TopicProcess = "process"

type Event struct {
	Type    EventType
	Process ProcessInfo
}

const (
	DefaultTailLines = 100
	MaxTailLines     = 1000
)

// NormalizeLines applies the default and the cap to a requested line count.
func NormalizeLines(n int) int {
	switch {
	case n <= 0:
		return DefaultTailLines
	case n > MaxTailLines:
		return MaxTailLines
	default:
		return n
	}
}
