package cli

import (
	"fmt"

	"github.com/starforge/starforge-go/internal/infrastructure/pidfile"
)

// guardDaemonNotRunning refuses a mutating one-shot command while a live
// daemon holds the PID file. The daemon saves its own in-memory snapshot
// every tick, so a second writer's rows would be overwritten on the next
// save; the snapshot store has one writer at a time.
func guardDaemonNotRunning(pidPath string) error {
	if pid, running := pidfile.New(pidPath).RunningPID(); running {
		return fmt.Errorf("scheduler daemon is running (PID %d); stop it before mutating the session", pid)
	}
	return nil
}
