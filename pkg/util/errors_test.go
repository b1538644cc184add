package util

import (
	"errors"
	"strings"
	"testing"
)

func TestConnectionError(t *testing.T) {
	err := NewConnectionError("rtr1.example.net", errors.New("EOF"))

	msg := err.Error()
	if !strings.Contains(msg, "rtr1.example.net") {
		t.Errorf("Error message should contain host: %s", msg)
	}
	if !strings.Contains(msg, "EOF") {
		t.Errorf("Error message should contain cause: %s", msg)
	}

	if !errors.Is(err, ErrConnectionClosed) {
		t.Errorf("ConnectionError should unwrap to ErrConnectionClosed")
	}
}

func TestLookupError(t *testing.T) {
	err := NewLookupError("interface map", "2/1")

	msg := err.Error()
	if !strings.Contains(msg, "interface map") || !strings.Contains(msg, "2/1") {
		t.Errorf("Error message should name table and key: %s", msg)
	}

	if !errors.Is(err, ErrLookupFailed) {
		t.Errorf("LookupError should unwrap to ErrLookupFailed")
	}
	if errors.Is(err, ErrConnectionClosed) {
		t.Errorf("LookupError must stay distinct from connection failures")
	}
}

func TestCommandError(t *testing.T) {
	err := NewCommandError("show foo", "Invalid input -> foo")

	if !errors.Is(err, ErrCommandFailed) {
		t.Errorf("CommandError should unwrap to ErrCommandFailed")
	}
	if !strings.Contains(err.Error(), "show foo") {
		t.Errorf("Error message should contain command: %s", err.Error())
	}
}
