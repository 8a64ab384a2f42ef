package ui

import (
	"testing"
	"time"
)

// Console helpers write straight to stdout; these are liveness checks that
// the status line and spinner can be driven through a fetch-style sequence
// without deadlocking.
func TestStatusLineAndLogs(t *testing.T) {
	UpdateStatus("fetching %d contract(s)", 3)
	LogInfo("info %s", "line")
	LogWarn("warn")
	LogSuccess("done")
	LogError("error")
}

func TestSpinnerStops(t *testing.T) {
	done := StartSpinner("fetching bytecode")
	time.Sleep(120 * time.Millisecond)

	select {
	case done <- true:
	case <-time.After(time.Second):
		t.Fatal("spinner did not accept stop signal")
	}
}
