// Package errors provides the error taxonomy shared by the deploy pipeline, the supervisor
// and the HTTP layer. Every failure carries a Kind, a stable machine-checkable discriminator,
// next to the wrapped cause.
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Kind discriminates failures for callers. Values are part of the HTTP contract.
type Kind string

const (
	KindValidation     Kind = "validation_error"
	KindNotImplemented Kind = "not_implemented"
	KindWorkspace      Kind = "workspace_error"
	KindInstall        Kind = "install_error"
	KindStart          Kind = "start_error"
	KindNotFound       Kind = "not_found"
	KindUpstream       Kind = "upstream_tool_error"
	KindUnknown        Kind = "unknown"
)

// Sentinel errors for common error conditions
var (
	ErrMissingSource    = errors.New("code or zipUrl required")
	ErrMissingName      = errors.New("botName is required")
	ErrArchiveDeploy    = errors.New("zip URL deploy not implemented")
	ErrProcessNotFound  = errors.New("process not found")
	ErrAlreadyRunning   = errors.New("process name already registered")
	ErrSessionClosed    = errors.New("supervisor session is closed")
	ErrSupervisorClosed = errors.New("supervisor is shut down")
)

// Error is a classified failure of one operation on one subject (usually a bot name or path).
type Error struct {
	Kind    Kind
	Op      string
	Subject string
	Err     error
	// Details carries the underlying tool output (npm, interpreter) when there is one.
	Details string
}

func (e *Error) Error() string {
	switch {
	case e.Subject != "" && e.Op != "":
		return fmt.Sprintf("%s %s: %v", e.Op, e.Subject, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, op, subject string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Subject: subject, Err: err}
}

// Validation reports missing or malformed caller input. Nothing has been allocated or written.
func Validation(op string, err error) error {
	return newError(KindValidation, op, "", err)
}

func NotImplemented(op string, err error) error {
	return newError(KindNotImplemented, op, "", err)
}

// Workspace wraps a filesystem failure while preparing path.
func Workspace(path, op string, err error) error {
	return newError(KindWorkspace, op, path, err)
}

// Install wraps a dependency installation failure; output is the installer's captured output.
func Install(name string, err error, output string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindInstall, Op: "install", Subject: name, Err: err, Details: output}
}

func Start(name string, err error) error {
	return newError(KindStart, "start", name, err)
}

// NotFound reports that the supervisor has no process registered under name.
func NotFound(op, name string) error {
	return &Error{Kind: KindNotFound, Op: op, Subject: name, Err: ErrProcessNotFound}
}

// Upstream wraps the failure of an auxiliary collaborator: supervisor connection,
// version probe, identity backend.
func Upstream(op string, err error) error {
	return newError(KindUpstream, op, "", err)
}

// WithKind rebuilds a classified error from its discriminator, used when an error
// crosses the supervisor IPC boundary as plain text.
func WithKind(kind Kind, op, subject, msg string) error {
	return &Error{Kind: kind, Op: op, Subject: subject, Err: errors.New(msg)}
}

// KindOf returns the discriminator of the first classified error in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, ErrProcessNotFound) {
		return KindNotFound
	}
	return KindUnknown
}

// DetailsOf returns the tool output attached to err, or the cause's message when there is none.
func DetailsOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Details != "" {
			return e.Details
		}
		return e.Err.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// Error classification functions
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsStart(err error) bool {
	return KindOf(err) == KindStart
}

func IsInstall(err error) bool {
	return KindOf(err) == KindInstall
}

func IsWorkspace(err error) bool {
	return KindOf(err) == KindWorkspace
}

func IsUpstream(err error) bool {
	return KindOf(err) == KindUpstream
}

// Context-aware error handling
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Re-exported so callers need a single errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

func New(text string) error {
	return errors.New(text)
}

func Join(errs ...error) error {
	return errors.Join(errs...)
}
