// Package util provides logging, conversion helpers, and common error types.
package util

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes the driver distinguishes.
var (
	ErrNotConnected     = errors.New("device not connected")
	ErrConnectionClosed = errors.New("command channel closed")
	ErrCommandFailed    = errors.New("command rejected by device")
	ErrLookupFailed     = errors.New("name lookup failed")
	ErrUnsupported      = errors.New("unsupported operation")
	ErrInvalidInput     = errors.New("invalid input")
)

// ConnectionError wraps a transport-level failure on the command channel.
// It is surfaced immediately and never retried by the driver.
type ConnectionError struct {
	Host string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.Host, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return ErrConnectionClosed
}

// NewConnectionError creates a connection error for a host.
func NewConnectionError(host string, err error) *ConnectionError {
	return &ConnectionError{Host: host, Err: err}
}

// LookupError reports a key that has no entry in a session lookup table.
// Distinct from "resource not found": it means the table the session built
// is stale relative to the command output being normalized.
type LookupError struct {
	Table string
	Key   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no %s entry for %q", e.Table, e.Key)
}

func (e *LookupError) Unwrap() error {
	return ErrLookupFailed
}

// NewLookupError creates a lookup error for a table/key pair.
func NewLookupError(table, key string) *LookupError {
	return &LookupError{Table: table, Key: key}
}

// CommandError reports a command the device refused to execute.
type CommandError struct {
	Command string
	Output  string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("device rejected %q: %s", e.Command, e.Output)
}

func (e *CommandError) Unwrap() error {
	return ErrCommandFailed
}

// NewCommandError creates a command error with the device's response.
func NewCommandError(command, output string) *CommandError {
	return &CommandError{Command: command, Output: output}
}
