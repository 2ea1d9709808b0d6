package identity

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaming(t *testing.T) {
	n := NewNaming("bot")

	tests := []struct {
		name string
		owns bool
		seq  uint64
	}{
		{"bot1", true, 1},
		{"bot42", true, 42},
		{"bot", false, 0},
		{"bot-1", false, 0},
		{"robot1", false, 0},
		{"bot1a", false, 0},
		{"api-gateway", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.owns, n.Owns(tt.name))
			seq, ok := n.Sequence(tt.name)
			assert.Equal(t, tt.owns, ok)
			assert.Equal(t, tt.seq, seq)
		})
	}

	assert.Equal(t, "bot7", n.Format(7))
}

func TestNaming_PrefixIsLiteral(t *testing.T) {
	n := NewNaming("job.")
	assert.True(t, n.Owns("job.3"))
	assert.False(t, n.Owns("jobx3"))
}

func TestMemory_AllocateSequential(t *testing.T) {
	m := NewMemory("bot")
	ctx := context.Background()

	first, err := m.Allocate(ctx)
	require.NoError(t, err)
	second, err := m.Allocate(ctx)
	require.NoError(t, err)

	assert.Equal(t, "bot1", first)
	assert.Equal(t, "bot2", second)
}

func TestMemory_ConcurrentAllocationsAreUnique(t *testing.T) {
	m := NewMemory("bot")
	const workers = 64

	var wg sync.WaitGroup
	names := make(chan string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name, err := m.Allocate(context.Background())
			assert.NoError(t, err)
			names <- name
		}()
	}
	wg.Wait()
	close(names)

	seen := make(map[string]bool, workers)
	for name := range names {
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
	assert.Len(t, seen, workers)
}

func TestMemory_ObserveRaisesFloor(t *testing.T) {
	m := NewMemory("bot")
	m.Observe("bot5")
	m.Observe("bot3")
	m.Observe("worker9")

	name, err := m.Allocate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bot6", name)
}

func TestMemory_CancelledContext(t *testing.T) {
	m := NewMemory("bot")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Allocate(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	name, err := m.Allocate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bot1", name)
}
