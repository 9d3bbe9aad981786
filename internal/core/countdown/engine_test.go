package countdown_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ringtimer/internal/core/countdown"
)

func waitEvent(t *testing.T, events <-chan countdown.Event) countdown.Event {
	t.Helper()
	select {
	case event, ok := <-events:
		require.True(t, ok, "event channel closed early")
		return event
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for engine event")
		return countdown.Event{}
	}
}

func waitEventOfType(t *testing.T, events <-chan countdown.Event, eventType countdown.EventType) countdown.Event {
	t.Helper()
	for {
		event := waitEvent(t, events)
		if event.Type == eventType {
			return event
		}
	}
}

func TestConfigureSetsIdleState(t *testing.T) {
	engine := countdown.New(countdown.Config{})
	defer engine.Close()

	for _, total := range []int{0, 1, 300, 3600} {
		require.NoError(t, engine.Configure(total))

		snapshot := engine.Snapshot()
		require.Equal(t, total, snapshot.RemainingSeconds)
		require.Equal(t, total, snapshot.TotalSeconds)
		require.False(t, engine.Running())
	}
}

func TestConfigureRejectsNegativeDuration(t *testing.T) {
	engine := countdown.New(countdown.Config{})
	defer engine.Close()

	require.NoError(t, engine.Configure(300))
	require.ErrorIs(t, engine.Configure(-1), countdown.ErrNegativeDuration)

	// The rejected call must not touch the configured state.
	snapshot := engine.Snapshot()
	require.Equal(t, 300, snapshot.RemainingSeconds)
	require.Equal(t, 300, snapshot.TotalSeconds)
}

func TestConfigureRejectedWhileRunning(t *testing.T) {
	engine := countdown.New(countdown.Config{TickInterval: 10 * time.Millisecond})
	defer engine.Close()

	require.NoError(t, engine.Configure(30))
	engine.Start()
	require.True(t, engine.Running())

	require.ErrorIs(t, engine.Configure(60), countdown.ErrRunning)

	engine.Cancel()
	require.NoError(t, engine.Configure(60))
}

func TestCountdownDecrementsOncePerTick(t *testing.T) {
	engine := countdown.New(countdown.Config{TickInterval: 5 * time.Millisecond})
	defer engine.Close()

	events := engine.Subscribe(32)
	require.NoError(t, engine.Configure(5))
	engine.Start()

	started := waitEvent(t, events)
	require.Equal(t, countdown.EventStarted, started.Type)
	require.Equal(t, 5, started.Snapshot.RemainingSeconds)
	require.Equal(t, 5, started.Snapshot.TotalSeconds)
	require.True(t, started.Running)

	previous := started.Snapshot.RemainingSeconds
	for {
		event := waitEvent(t, events)
		if event.Type == countdown.EventFinished {
			require.Equal(t, 0, event.Snapshot.RemainingSeconds)
			require.False(t, event.Running)
			break
		}
		require.Equal(t, countdown.EventTick, event.Type)
		require.Equal(t, previous-1, event.Snapshot.RemainingSeconds)
		require.GreaterOrEqual(t, event.Snapshot.RemainingSeconds, 0)
		previous = event.Snapshot.RemainingSeconds
	}

	require.False(t, engine.Running())
}

func TestNaturalCompletionKeepsZeroSnapshot(t *testing.T) {
	engine := countdown.New(countdown.Config{TickInterval: 5 * time.Millisecond})
	defer engine.Close()

	events := engine.Subscribe(16)
	require.NoError(t, engine.Configure(2))
	engine.Start()

	waitEventOfType(t, events, countdown.EventFinished)

	// The snapshot stays at the zero state, it does not reset to idle.
	snapshot := engine.Snapshot()
	require.Equal(t, 0, snapshot.RemainingSeconds)
	require.Equal(t, 2, snapshot.TotalSeconds)
	require.False(t, engine.Running())
}

func TestZeroDurationCompletesImmediately(t *testing.T) {
	engine := countdown.New(countdown.Config{TickInterval: time.Hour})
	defer engine.Close()

	events := engine.Subscribe(4)
	require.NoError(t, engine.Configure(0))
	engine.Start()

	started := waitEvent(t, events)
	require.Equal(t, countdown.EventStarted, started.Type)

	finished := waitEvent(t, events)
	require.Equal(t, countdown.EventFinished, finished.Type)
	require.Equal(t, 0, finished.Snapshot.RemainingSeconds)
	require.False(t, engine.Running())
}

func TestStartWhileRunningIsNoOp(t *testing.T) {
	tick := 25 * time.Millisecond
	engine := countdown.New(countdown.Config{TickInterval: tick})
	defer engine.Close()

	events := engine.Subscribe(64)
	require.NoError(t, engine.Configure(120))
	engine.Start()
	engine.Start()

	waitEventOfType(t, events, countdown.EventTick)
	before := engine.Snapshot()
	engine.Start()
	require.Equal(t, before, engine.Snapshot(), "restart must not reset a running countdown")

	// With a single loop roughly one tick arrives per interval; a second
	// loop would double the rate.
	deadline := time.After(8 * tick)
	ticks := 0
	for done := false; !done; {
		select {
		case event := <-events:
			if event.Type == countdown.EventTick {
				ticks++
			}
		case <-deadline:
			done = true
		}
	}
	require.LessOrEqual(t, ticks, 11)

	engine.Cancel()
}

func TestCancelResetsAndStopsEmission(t *testing.T) {
	engine := countdown.New(countdown.Config{TickInterval: 5 * time.Millisecond})
	defer engine.Close()

	events := engine.Subscribe(64)
	require.NoError(t, engine.Configure(300))
	engine.Start()

	waitEventOfType(t, events, countdown.EventTick)
	engine.Cancel()

	cancelled := waitEventOfType(t, events, countdown.EventCancelled)
	require.Equal(t, 300, cancelled.Snapshot.RemainingSeconds)
	require.Equal(t, 300, cancelled.Snapshot.TotalSeconds)
	require.False(t, engine.Running())

	snapshot := engine.Snapshot()
	require.Equal(t, 300, snapshot.RemainingSeconds)
	require.Equal(t, 300, snapshot.TotalSeconds)

	// Nothing may be emitted after the cancel.
	select {
	case event := <-events:
		t.Fatalf("unexpected %s event after cancel", event.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCancelWhenIdleResetsSnapshot(t *testing.T) {
	engine := countdown.New(countdown.Config{TickInterval: 5 * time.Millisecond})
	defer engine.Close()

	events := engine.Subscribe(32)
	require.NoError(t, engine.Configure(2))
	engine.Start()
	waitEventOfType(t, events, countdown.EventFinished)

	engine.Cancel()
	snapshot := engine.Snapshot()
	require.Equal(t, 2, snapshot.RemainingSeconds)
	require.Equal(t, 2, snapshot.TotalSeconds)

	engine.Cancel()
	require.Equal(t, snapshot, engine.Snapshot())
}

func TestFullCountdownRun(t *testing.T) {
	engine := countdown.New(countdown.Config{TickInterval: time.Millisecond})
	defer engine.Close()

	events := engine.Subscribe(512)
	require.NoError(t, engine.Configure(300))
	engine.Start()

	ticks := 0
	for {
		event := waitEvent(t, events)
		require.GreaterOrEqual(t, event.Snapshot.RemainingSeconds, 0,
			"no snapshot with negative remaining may ever be emitted")
		if event.Type == countdown.EventTick {
			ticks++
		}
		if event.Type == countdown.EventFinished {
			require.Equal(t, 0, event.Snapshot.RemainingSeconds)
			require.Equal(t, 300, event.Snapshot.TotalSeconds)
			break
		}
	}

	require.Equal(t, 300, ticks)
	require.False(t, engine.Running())
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	engine := countdown.New(countdown.Config{})
	defer engine.Close()

	events := engine.Subscribe(4)
	engine.Unsubscribe(events)

	_, ok := <-events
	require.False(t, ok)
}

func TestCloseStopsLoopAndSubscribers(t *testing.T) {
	engine := countdown.New(countdown.Config{TickInterval: 5 * time.Millisecond})

	events := engine.Subscribe(64)
	require.NoError(t, engine.Configure(60))
	engine.Start()
	waitEventOfType(t, events, countdown.EventTick)

	engine.Close()
	require.False(t, engine.Running())

	for {
		if _, ok := <-events; !ok {
			break
		}
	}

	// Closed engines accept no further starts.
	engine.Start()
	require.False(t, engine.Running())
}
