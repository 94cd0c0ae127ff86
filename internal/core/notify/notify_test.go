package notify

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCenter(t *testing.T, opts Options) *Center {
	t.Helper()
	return New(zerolog.Nop(), opts)
}

// waitFor polls cond until it holds or the deadline passes. The lifecycle
// runs on real timers, so tests observe phases instead of sleeping fixed
// amounts.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(2 * time.Millisecond)
	}
	return cond()
}

func TestCenter_Lifecycle(t *testing.T) {
	center := newTestCenter(t, Options{DefaultDuration: 50 * time.Millisecond})

	toast := center.Notify("saved", KindSuccess, 0)
	require.NotNil(t, toast)

	// Inserted invisible; becomes visible after the show delay.
	assert.Empty(t, center.Active())
	require.True(t, waitFor(t, time.Second, func() bool {
		views := center.Active()
		return len(views) == 1 && !views[0].Hiding
	}), "toast should become visible")

	views := center.Active()
	assert.Equal(t, "saved", views[0].Message)
	assert.Equal(t, KindSuccess, views[0].Kind)

	// After its duration it starts hiding, then disappears.
	require.True(t, waitFor(t, time.Second, func() bool {
		views := center.Active()
		return len(views) == 1 && views[0].Hiding
	}), "toast should start hiding")

	require.True(t, waitFor(t, time.Second, func() bool {
		return len(center.Active()) == 0
	}), "toast should be removed")
}

func TestCenter_PerCallDuration(t *testing.T) {
	center := newTestCenter(t, Options{DefaultDuration: time.Hour})

	center.Notify("quick", KindSuccess, 40*time.Millisecond)

	require.True(t, waitFor(t, time.Second, func() bool {
		return len(center.Active()) == 1
	}))
	require.True(t, waitFor(t, time.Second, func() bool {
		return len(center.Active()) == 0
	}), "explicit duration should override the center default")
}

func TestCenter_ManualDismiss(t *testing.T) {
	center := newTestCenter(t, Options{DefaultDuration: time.Hour})

	toast := center.Success("long lived")
	require.True(t, waitFor(t, time.Second, func() bool {
		return len(center.Active()) == 1
	}))

	toast.Dismiss()

	require.True(t, waitFor(t, time.Second, func() bool {
		return len(center.Active()) == 0
	}), "dismissed toast should be removed without waiting for its duration")
}

func TestCenter_DismissIsIdempotent(t *testing.T) {
	center := newTestCenter(t, Options{DefaultDuration: time.Hour})

	first := center.Info("one")
	second := center.Info("two")
	require.True(t, waitFor(t, time.Second, func() bool {
		return len(center.Active()) == 2
	}))

	first.Dismiss()
	first.Dismiss()
	first.Dismiss()

	require.True(t, waitFor(t, time.Second, func() bool {
		views := center.Active()
		return len(views) == 1 && views[0].ID == second.ID()
	}), "repeated dismissal must remove exactly one toast")
}

func TestCenter_UnknownKindFallsBackToInfo(t *testing.T) {
	center := newTestCenter(t, Options{})

	center.Notify("odd", Kind("sparkle"), time.Hour)
	require.True(t, waitFor(t, time.Second, func() bool {
		return len(center.Active()) == 1
	}))

	assert.Equal(t, KindInfo, center.Active()[0].Kind)
}

func TestCenter_ActiveOrdersOldestFirst(t *testing.T) {
	center := newTestCenter(t, Options{DefaultDuration: time.Hour})

	first := center.Info("first")
	second := center.Info("second")

	require.True(t, waitFor(t, time.Second, func() bool {
		return len(center.Active()) == 2
	}))

	views := center.Active()
	assert.Equal(t, first.ID(), views[0].ID)
	assert.Equal(t, second.ID(), views[1].ID)
}

func TestCenter_OnChangeFires(t *testing.T) {
	var calls atomic.Int64
	center := newTestCenter(t, Options{
		DefaultDuration: 30 * time.Millisecond,
		OnChange:        func() { calls.Add(1) },
	})

	center.Success("ping")

	// Insert, show, hide, remove: at least four transitions.
	require.True(t, waitFor(t, time.Second, func() bool {
		return calls.Load() >= 4
	}), "change hook should fire for every transition, got %d", calls.Load())
}

func TestKind_Icons(t *testing.T) {
	assert.Equal(t, "✔", KindSuccess.Icon())
	assert.Equal(t, "✘", KindError.Icon())
	assert.Equal(t, "!", KindWarning.Icon())
	assert.Equal(t, "•", KindInfo.Icon())
}
