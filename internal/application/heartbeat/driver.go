package heartbeat

import (
	"sync"
	"time"

	"github.com/starforge/starforge-go/internal/domain/shared"
)

// TickFunc receives the shared timestamp captured for one heartbeat firing
type TickFunc func(now time.Time)

// Driver is the single process-wide heartbeat. At a fixed period it reads
// the injected clock once and hands the same timestamp to every registered
// tick function, so all time-dependent subsystems advance to the same
// logical instant instead of drifting on per-subsystem clock reads.
//
// The driver holds no game logic. Everything time-based lives behind the
// subsystems' Advance(now) entry points, which tests drive directly with
// simulated timestamps; the driver only supplies real time in production.
type Driver struct {
	period time.Duration
	clock  shared.Clock

	mu      sync.Mutex
	ticks   []TickFunc
	stopCh  chan struct{}
	done    chan struct{}
	running bool
}

// NewDriver creates a driver firing every period
func NewDriver(period time.Duration, clock shared.Clock) *Driver {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &Driver{
		period: period,
		clock:  clock,
	}
}

// Register adds a tick function. Must be called before Start.
func (d *Driver) Register(fn TickFunc) {
	d.mu.Lock()
	d.ticks = append(d.ticks, fn)
	d.mu.Unlock()
}

// Start launches the heartbeat loop. Starting a running driver is a no-op.
// The first tick fires immediately so a restored session settles overdue
// work without waiting one full period.
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return
	}
	d.running = true
	d.stopCh = make(chan struct{})
	d.done = make(chan struct{})

	go d.loop(d.stopCh, d.done)
}

// Stop cancels the ticker and waits for the loop goroutine to exit.
// Stopping a stopped driver is a no-op. No timer survives Stop.
func (d *Driver) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.running = false
	stopCh, done := d.stopCh, d.done
	d.mu.Unlock()

	close(stopCh)
	<-done
}

// IsRunning reports whether the heartbeat loop is active
func (d *Driver) IsRunning() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

func (d *Driver) loop(stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(d.period)
	defer ticker.Stop()

	d.fire()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			d.fire()
		}
	}
}

// fire captures one timestamp and passes the same value to every tick
// function in registration order
func (d *Driver) fire() {
	d.mu.Lock()
	ticks := make([]TickFunc, len(d.ticks))
	copy(ticks, d.ticks)
	d.mu.Unlock()

	now := d.clock.Now()
	for _, fn := range ticks {
		fn(now)
	}
}
