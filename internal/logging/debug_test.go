package logging

import (
	"testing"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv("TODO_DEBUG", "")
	if DebugEnabled() {
		t.Error("DebugEnabled() should return false when TODO_DEBUG is empty")
	}

	t.Setenv("TODO_DEBUG", "1")
	if !DebugEnabled() {
		t.Error("DebugEnabled() should return true when TODO_DEBUG is set")
	}
}

func TestDebugf(t *testing.T) {
	// Only checks that Debugf does not panic in either mode.
	t.Setenv("TODO_DEBUG", "")
	Debugf("This should not appear: %s", "test")

	t.Setenv("TODO_DEBUG", "1")
	Debugf("This should appear: %s\n", "test")
}
