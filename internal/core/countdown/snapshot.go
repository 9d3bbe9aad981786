package countdown

// Snapshot is an immutable view of the countdown at a single tick.
// Invariant: 0 <= RemainingSeconds <= TotalSeconds.
type Snapshot struct {
	RemainingSeconds int
	TotalSeconds     int
}

// Progress returns the remaining fraction of the countdown in [0, 1].
// A zero-length countdown has no meaningful fraction and reports 0.
func (snapshot Snapshot) Progress() float64 {
	if snapshot.TotalSeconds <= 0 {
		return 0
	}
	progress := float64(snapshot.RemainingSeconds) / float64(snapshot.TotalSeconds)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
