package countdown

import (
	"errors"
	"sync"
	"time"
)

// ErrNegativeDuration indicates Configure was given a negative duration.
var ErrNegativeDuration = errors.New("negative duration")

// ErrRunning indicates Configure was called while the countdown is running.
var ErrRunning = errors.New("countdown is running")

// Config contains runtime options for Engine.
type Config struct {
	TickInterval time.Duration
}

// Engine is the countdown state machine. It owns the configured duration and
// the remaining-seconds state, runs at most one tick loop at a time and keeps
// the latest snapshot readable between ticks.
//
// Configure is rejected with ErrRunning while a countdown is active.
type Engine struct {
	mu       sync.Mutex
	options  Config
	total    int
	snapshot Snapshot
	running  bool
	stopCh   chan struct{}
	events   []chan Event
	closed   bool
}

// New creates an Engine with a zero-length countdown configured.
func New(options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Engine{options: options}
}

// Configure sets the countdown duration and resets the snapshot to the idle
// state. Negative durations are rejected with ErrNegativeDuration; calls
// while a countdown is running are rejected with ErrRunning.
func (engine *Engine) Configure(totalSeconds int) error {
	if totalSeconds < 0 {
		return ErrNegativeDuration
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.running {
		return ErrRunning
	}
	engine.total = totalSeconds
	engine.snapshot = Snapshot{RemainingSeconds: totalSeconds, TotalSeconds: totalSeconds}
	return nil
}

// Snapshot returns the latest snapshot.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshot
}

// Running reports whether a tick loop is currently active.
func (engine *Engine) Running() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.running
}

// Subscribe registers a new observer channel. Events are delivered with a
// non-blocking send, so a slow observer loses intermediate snapshots rather
// than stalling the tick loop.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	return ch
}

// Unsubscribe removes and closes an observer channel previously returned by
// Subscribe. Unknown channels are ignored.
func (engine *Engine) Unsubscribe(subscription <-chan Event) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	for index, ch := range engine.events {
		if ch == subscription {
			engine.events = append(engine.events[:index], engine.events[index+1:]...)
			close(ch)
			return
		}
	}
}

// Start launches the tick loop. Starting while already running is a no-op, so
// at most one loop is ever active. The idle snapshot is emitted immediately;
// a zero-length countdown completes on the spot without spawning a loop.
func (engine *Engine) Start() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.running || engine.closed {
		return
	}

	engine.running = true
	engine.stopCh = make(chan struct{})
	stopCh := engine.stopCh
	engine.snapshot = Snapshot{RemainingSeconds: engine.total, TotalSeconds: engine.total}
	engine.emitLocked(Event{Type: EventStarted, Snapshot: engine.snapshot, Running: true, At: time.Now()})

	if engine.snapshot.RemainingSeconds == 0 {
		engine.running = false
		engine.stopCh = nil
		engine.emitLocked(Event{Type: EventFinished, Snapshot: engine.snapshot, At: time.Now()})
		return
	}

	go engine.run(stopCh)
}

// Cancel stops the tick loop if one is active and resets the snapshot to the
// idle state. No event is emitted after Cancel returns. Safe to call when not
// running; the reset still applies.
func (engine *Engine) Cancel() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.running {
		close(engine.stopCh)
		engine.stopCh = nil
		engine.running = false
	}
	engine.snapshot = Snapshot{RemainingSeconds: engine.total, TotalSeconds: engine.total}
	engine.emitLocked(Event{Type: EventCancelled, Snapshot: engine.snapshot, At: time.Now()})
}

// Close terminates the tick loop and closes all observer channels. The engine
// accepts no further Start or Subscribe calls afterwards.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.closed = true
	if engine.running {
		close(engine.stopCh)
		engine.stopCh = nil
		engine.running = false
	}
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (engine *Engine) run(stopCh chan struct{}) {
	ticker := time.NewTicker(engine.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C:
			if !engine.tick(tickTime) {
				return
			}
		}
	}
}

// tick decrements the remaining time by one second and emits the new
// snapshot. It reports whether the loop should keep running. A tick that
// raced a Cancel or Close observes running == false and emits nothing.
func (engine *Engine) tick(tickTime time.Time) bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if !engine.running {
		return false
	}

	engine.snapshot = Snapshot{
		RemainingSeconds: engine.snapshot.RemainingSeconds - 1,
		TotalSeconds:     engine.total,
	}
	finished := engine.snapshot.RemainingSeconds == 0
	if finished {
		engine.running = false
		engine.stopCh = nil
	}
	engine.emitLocked(Event{Type: EventTick, Snapshot: engine.snapshot, Running: engine.running, At: tickTime})
	if finished {
		engine.emitLocked(Event{Type: EventFinished, Snapshot: engine.snapshot, At: tickTime})
	}
	return !finished
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
