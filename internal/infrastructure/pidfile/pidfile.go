package pidfile

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// PIDFile enforces a single running daemon per snapshot store. Two
// heartbeats advancing the same saved session would double-apply ticks.
type PIDFile struct {
	path string
}

// New creates a PID file manager for the given path
func New(path string) *PIDFile {
	return &PIDFile{path: path}
}

// Acquire writes the current PID, failing if a live daemon holds the file.
// A stale file left by a dead process is replaced.
func (p *PIDFile) Acquire() error {
	if pid, running := p.RunningPID(); running {
		return fmt.Errorf("scheduler daemon already running (PID %d)", pid)
	}
	_ = os.Remove(p.path)

	if err := os.WriteFile(p.path, []byte(fmt.Sprintf("%d\n", os.Getpid())), 0644); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}
	return nil
}

// RunningPID reports the live process holding the PID file. A missing,
// malformed or stale file counts as not running.
func (p *PIDFile) RunningPID() (int, bool) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || !isProcessRunning(pid) {
		return 0, false
	}
	return pid, true
}

// Release removes the PID file
func (p *PIDFile) Release() error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	return nil
}

// isProcessRunning probes the PID with signal 0
func isProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	err = process.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}
	// EPERM means the process exists under another user
	return errors.Is(err, syscall.EPERM)
}
