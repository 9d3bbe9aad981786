package countdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ringtimer/internal/core/countdown"
)

func TestSnapshotProgress(t *testing.T) {
	cases := []struct {
		name     string
		snapshot countdown.Snapshot
		want     float64
	}{
		{"zero total", countdown.Snapshot{RemainingSeconds: 0, TotalSeconds: 0}, 0},
		{"zero total ignores remaining", countdown.Snapshot{RemainingSeconds: 7, TotalSeconds: 0}, 0},
		{"full", countdown.Snapshot{RemainingSeconds: 300, TotalSeconds: 300}, 1},
		{"half", countdown.Snapshot{RemainingSeconds: 150, TotalSeconds: 300}, 0.5},
		{"done", countdown.Snapshot{RemainingSeconds: 0, TotalSeconds: 300}, 0},
		{"clamped above", countdown.Snapshot{RemainingSeconds: 400, TotalSeconds: 300}, 1},
		{"clamped below", countdown.Snapshot{RemainingSeconds: -5, TotalSeconds: 300}, 0},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			progress := testCase.snapshot.Progress()
			assert.Equal(t, testCase.want, progress)
			assert.GreaterOrEqual(t, progress, 0.0)
			assert.LessOrEqual(t, progress, 1.0)
		})
	}
}
