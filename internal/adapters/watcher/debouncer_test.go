package watcher_test

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/reqwell/reqcheck/internal/adapters/watcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *recorder) callback(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sort.Strings(paths)
	r.batches = append(r.batches, paths)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]string, len(r.batches))
	copy(out, r.batches)
	return out
}

func TestDebouncer_CoalescesEvents(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(20*time.Millisecond, rec.callback)

	d.Add("a.txt")
	d.Add("b.txt")
	d.Add("a.txt")

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)

	batches := rec.snapshot()
	assert.Equal(t, []string{"a.txt", "b.txt"}, batches[0])
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(10*time.Millisecond, rec.callback)

	d.Add("a.txt")
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)

	d.Add("b.txt")
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 2
	}, time.Second, 5*time.Millisecond)

	batches := rec.snapshot()
	assert.Equal(t, []string{"a.txt"}, batches[0])
	assert.Equal(t, []string{"b.txt"}, batches[1])
}

func TestDebouncer_FlushDeliversSynchronously(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(time.Hour, rec.callback)

	d.Add("a.txt")
	d.Flush()

	batches := rec.snapshot()
	require.Len(t, batches, 1)
	assert.Equal(t, []string{"a.txt"}, batches[0])
}

func TestDebouncer_FlushWithoutPendingIsNoop(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(time.Hour, rec.callback)

	d.Flush()
	assert.Empty(t, rec.snapshot())
}
