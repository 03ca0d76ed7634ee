package rate

import (
	"testing"
	"time"

	"github.com/WatchBeam/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Window_admits_up_to_limit(t *testing.T) {
	mockClock := clock.NewMockClock()
	l := NewWindowLimiter(
		WithWindow(time.Minute),
		WithLimit(5),
		WithClock(mockClock),
	)

	for i := 0; i < 5; i++ {
		assert.NoError(t, l.Acquire())
	}
}

func Test_Window_resets_after_refresh_period(t *testing.T) {
	mockClock := clock.NewMockClock()
	l := NewWindowLimiter(
		WithWindow(time.Minute),
		WithLimit(2),
		WithClock(mockClock),
	)

	require.NoError(t, l.Acquire())
	require.NoError(t, l.Acquire())

	mockClock.AddTime(time.Minute)

	assert.NoError(t, l.Acquire())
	assert.NoError(t, l.Acquire())
}

func Test_Window_rolls_past_idle_windows(t *testing.T) {
	mockClock := clock.NewMockClock()
	l := NewWindowLimiter(
		WithWindow(time.Minute),
		WithLimit(1),
		WithClock(mockClock),
	)

	require.NoError(t, l.Acquire())

	// Several whole windows go by untouched.
	mockClock.AddTime(10 * time.Minute)

	assert.NoError(t, l.Acquire())
}

func Test_Window_fails_fast_when_wait_exceeds_budget(t *testing.T) {
	mockClock := clock.NewMockClock()
	l := NewWindowLimiter(
		WithWindow(time.Hour),
		WithLimit(1),
		WithMaxWait(time.Minute),
		WithClock(mockClock),
	)

	require.NoError(t, l.Acquire())

	// The next window opens in an hour; the budget is one minute, so
	// Acquire must give up without sleeping.
	err := l.Acquire()
	assert.ErrorIs(t, err, ErrWaitTimeout)
}

func Test_Window_blocks_until_next_window(t *testing.T) {
	l := NewWindowLimiter(
		WithWindow(20*time.Millisecond),
		WithLimit(1),
		WithMaxWait(time.Second),
	)

	require.NoError(t, l.Acquire())

	start := time.Now()
	require.NoError(t, l.Acquire())
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func Test_Noop_never_blocks(t *testing.T) {
	l := &NoopLimiter{}
	for i := 0; i < 100; i++ {
		assert.NoError(t, l.Acquire())
	}
}
