// Package ipc exposes a supervisor over a Unix socket using newline-delimited JSON,
// and provides the matching client session.
package ipc

import (
	"github.com/ehsaniara/botvisor/internal/botvisor/supervisor"
)

type Operation string

const (
	OpStart    Operation = "start"
	OpList     Operation = "list"
	OpDescribe Operation = "describe"
	OpStop     Operation = "stop"
	OpTail     Operation = "tail"
	OpPing     Operation = "ping"
)

// Message represents an IPC request message
type Message struct {
	RequestID string                `json:"id"`
	Operation Operation             `json:"op"`
	Name      string                `json:"name,omitempty"`
	Start     *supervisor.StartSpec `json:"start,omitempty"`
	Lines     int                   `json:"lines,omitempty"`
}

// Response represents an IPC response message. Code carries the error kind so
// classification survives the trip.
type Response struct {
	RequestID string                   `json:"id"`
	Success   bool                     `json:"success"`
	Error     string                   `json:"error,omitempty"`
	Code      string                   `json:"code,omitempty"`
	Process   *supervisor.ProcessInfo  `json:"process,omitempty"`
	Processes []supervisor.ProcessInfo `json:"processes,omitempty"`
	Lines     []string                 `json:"lines,omitempty"`
}

// maxMessageSize bounds one request or response line.
const maxMessageSize = 10 * 1024 * 1024
