package listing

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects debounced deliveries for assertions
type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

func TestDebouncerDeliversAfterQuiescence(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(20*time.Millisecond, rec.record)
	defer d.Stop()

	d.Update("b")
	d.Update("ba")
	d.Update("bang")

	assert.Empty(t, rec.snapshot(), "nothing delivered before the delay")

	time.Sleep(60 * time.Millisecond)
	require.Equal(t, []string{"bang"}, rec.snapshot(), "only the last value arrives")
}

func TestDebouncerRestartsOnEachUpdate(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(40*time.Millisecond, rec.record)
	defer d.Stop()

	// Keep typing faster than the delay: nothing may fire in between
	for i := 0; i < 4; i++ {
		d.Update("typing")
		time.Sleep(15 * time.Millisecond)
		assert.Empty(t, rec.snapshot())
	}

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, []string{"typing"}, rec.snapshot())
}

func TestDebouncerNeverDeliversSupersededValue(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(time.Microsecond, rec.record)
	defer d.Stop()

	// Race every update against the previous timer's expiry: a stale value
	// may slip out before the superseding update, but never after it
	for i := 0; i < 200; i++ {
		d.Update("stale")
		d.Update("fresh")
		time.Sleep(time.Millisecond)

		values := rec.snapshot()
		require.NotEmpty(t, values)
		assert.Equal(t, "fresh", values[len(values)-1])
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(20*time.Millisecond, rec.record)

	d.Update("doomed")
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.snapshot(), "a stopped debouncer never fires")

	d.Update("after stop")
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.snapshot(), "updates after Stop are dropped")

	d.Stop() // second Stop is harmless
}
