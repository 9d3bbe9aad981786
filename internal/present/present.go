// Package present derives display values from countdown snapshots. It is a
// pure transform with no state, safe to call on every render.
package present

import (
	"fmt"

	"ringtimer/internal/core/countdown"
)

// RingStartDegrees is where the progress arc begins: the 12 o'clock position
// in a coordinate system where 0 degrees is 3 o'clock and positive angles
// sweep clockwise.
const RingStartDegrees = -90

// Frame holds everything the screen needs to render one snapshot.
type Frame struct {
	DisplayText  string
	Progress     float64
	SweepDegrees float64
	ShowArc      bool
}

// Render converts a snapshot into a display frame. The arc is only shown
// while some fraction of the countdown remains; at zero progress only the
// background ring is drawn.
func Render(snapshot countdown.Snapshot) Frame {
	progress := snapshot.Progress()
	return Frame{
		DisplayText:  FormatClock(snapshot.RemainingSeconds),
		Progress:     progress,
		SweepDegrees: 360 * progress,
		ShowArc:      progress > 0,
	}
}

// FormatClock renders a second count as a zero-padded HH:MM:SS clock string.
// Negative values are clamped to zero.
func FormatClock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
