package supervisor

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehsaniara/botvisor/pkg/errors"
	"github.com/ehsaniara/botvisor/pkg/platform"
)

const (
	longRunning = "echo hello; echo oops >&2; while true; do sleep 1; done"
	crashing    = "echo run; exit 3"
)

func newTestSupervisor(t *testing.T, mutate func(cfg *Config)) *Supervisor {
	t.Helper()
	cfg := Config{
		LogDir:       filepath.Join(t.TempDir(), "logs"),
		Interpreter:  "sh",
		KillTimeout:  2 * time.Second,
		RestartDelay: 20 * time.Millisecond,
		MinUptime:    time.Second,
		MaxRestarts:  15,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := New(cfg, platform.NewPlatform())
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})
	return s
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "script.js")
	require.NoError(t, os.WriteFile(path, []byte(body+"\n"), 0644))
	return path
}

func startSpec(t *testing.T, name, body string) StartSpec {
	return StartSpec{Name: name, Script: writeScript(t, body), Autorestart: true}
}

func TestStart_Online(t *testing.T) {
	s := newTestSupervisor(t, nil)
	ctx := context.Background()

	info, err := s.Start(ctx, startSpec(t, "bot1", longRunning))
	require.NoError(t, err)
	assert.Equal(t, "bot1", info.Name)
	assert.Equal(t, StatusOnline, info.Status)
	assert.Positive(t, info.PID)
	assert.Zero(t, info.RestartCount)
	assert.True(t, info.Running())

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, info.PID, list[0].PID)

	described, err := s.Describe(ctx, "bot1")
	require.NoError(t, err)
	assert.Equal(t, StatusOnline, described.Status)

	require.Eventually(t, func() bool {
		lines, err := s.Tail(ctx, "bot1", 10)
		return err == nil && len(lines) == 2
	}, 3*time.Second, 20*time.Millisecond)

	lines, err := s.Tail(ctx, "bot1", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"[stdout] hello", "[stderr] oops"}, lines)
}

func TestStart_DuplicateName(t *testing.T) {
	s := newTestSupervisor(t, nil)
	ctx := context.Background()

	_, err := s.Start(ctx, startSpec(t, "bot1", longRunning))
	require.NoError(t, err)

	_, err = s.Start(ctx, startSpec(t, "bot1", longRunning))
	require.Error(t, err)
	assert.True(t, errors.IsStart(err))
	assert.ErrorIs(t, err, errors.ErrAlreadyRunning)
}

func TestStart_ConcurrentSameNameOnlyOneWins(t *testing.T) {
	s := newTestSupervisor(t, nil)
	spec := startSpec(t, "bot1", longRunning)

	const racers = 8
	var wg sync.WaitGroup
	results := make(chan error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Start(context.Background(), spec)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.IsStart(err))
	}
	assert.Equal(t, 1, succeeded)
}

func TestStart_Failures(t *testing.T) {
	s := newTestSupervisor(t, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		spec StartSpec
	}{
		{"missing name", StartSpec{Script: writeScript(t, longRunning)}},
		{"missing script", StartSpec{Name: "bot1", Script: filepath.Join(t.TempDir(), "absent.js")}},
		{"missing interpreter", StartSpec{Name: "bot2", Script: writeScript(t, longRunning), Interpreter: "definitely-not-node"}},
		{"missing cwd", StartSpec{Name: "bot3", Script: writeScript(t, longRunning), Cwd: filepath.Join(t.TempDir(), "gone")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Start(ctx, tt.spec)
			require.Error(t, err)
			assert.True(t, errors.IsStart(err))
		})
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "failed starts must not stay registered")
}

func TestStart_CancelledContext(t *testing.T) {
	s := newTestSupervisor(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Start(ctx, startSpec(t, "bot1", longRunning))
	assert.True(t, errors.IsStart(err))
}

func TestStop(t *testing.T) {
	s := newTestSupervisor(t, nil)
	ctx := context.Background()

	started, err := s.Start(ctx, startSpec(t, "bot1", longRunning))
	require.NoError(t, err)

	stopped, err := s.Stop(ctx, "bot1")
	require.NoError(t, err)
	assert.Equal(t, StatusStopped, stopped.Status)
	assert.Zero(t, stopped.PID)
	assert.False(t, stopped.Running())

	described, err := s.Describe(ctx, "bot1")
	require.NoError(t, err)
	assert.Equal(t, StatusStopped, described.Status)
	assert.Zero(t, described.RestartCount, "a requested stop is not a restart")

	// the leader has been reaped
	assert.Error(t, platform.NewPlatform().Kill(started.PID, 0))

	again, err := s.Stop(ctx, "bot1")
	require.NoError(t, err)
	assert.Equal(t, StatusStopped, again.Status)

	time.Sleep(100 * time.Millisecond)
	described, err = s.Describe(ctx, "bot1")
	require.NoError(t, err)
	assert.Equal(t, StatusStopped, described.Status, "stopped process must not be restarted")
}

func TestStop_EscalatesToSIGKILL(t *testing.T) {
	s := newTestSupervisor(t, func(cfg *Config) { cfg.KillTimeout = 200 * time.Millisecond })
	ctx := context.Background()

	_, err := s.Start(ctx, startSpec(t, "bot1", "trap '' TERM; while true; do sleep 1; done"))
	require.NoError(t, err)
	// let the shell install its trap
	time.Sleep(200 * time.Millisecond)

	start := time.Now()
	info, err := s.Stop(ctx, "bot1")
	require.NoError(t, err)
	assert.Equal(t, StatusStopped, info.Status)
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
	assert.Equal(t, -1, info.ExitCode)
}

func TestUnknownProcess(t *testing.T) {
	s := newTestSupervisor(t, nil)
	ctx := context.Background()

	_, err := s.Describe(ctx, "ghost")
	assert.True(t, errors.IsNotFound(err))

	_, err = s.Stop(ctx, "ghost")
	assert.True(t, errors.IsNotFound(err))

	_, err = s.Tail(ctx, "ghost", 10)
	assert.True(t, errors.IsNotFound(err))
}

func TestAutorestart_CrashLoopEndsErrored(t *testing.T) {
	s := newTestSupervisor(t, func(cfg *Config) { cfg.MaxRestarts = 2 })
	ctx := context.Background()

	events, unsubscribe, err := s.Subscribe(ctx)
	require.NoError(t, err)
	defer unsubscribe()

	_, err = s.Start(ctx, startSpec(t, "bot1", crashing))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		info, err := s.Describe(ctx, "bot1")
		return err == nil && info.Status == StatusErrored
	}, 5*time.Second, 20*time.Millisecond)

	info, err := s.Describe(ctx, "bot1")
	require.NoError(t, err)
	assert.Equal(t, 2, info.RestartCount)
	assert.Equal(t, 3, info.ExitCode)
	assert.Zero(t, info.PID)

	seen := map[EventType]int{}
	timeout := time.After(time.Second)
	for seen[EventErrored] == 0 {
		select {
		case msg := <-events:
			seen[msg.Payload.Type]++
		case <-timeout:
			t.Fatalf("missing errored event, saw %v", seen)
		}
	}
	assert.Equal(t, 1, seen[EventStart])
	assert.Equal(t, 2, seen[EventRestart])

	// errored records stay registered and can still be stopped
	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	stopped, err := s.Stop(ctx, "bot1")
	require.NoError(t, err)
	assert.Equal(t, StatusStopped, stopped.Status)
}

func TestAutorestart_StopDuringRestartDelay(t *testing.T) {
	s := newTestSupervisor(t, func(cfg *Config) {
		cfg.RestartDelay = 300 * time.Millisecond
		cfg.MaxRestarts = 0
	})
	ctx := context.Background()

	_, err := s.Start(ctx, startSpec(t, "bot1", crashing))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		info, err := s.Describe(ctx, "bot1")
		return err == nil && info.Status == StatusLaunching && info.PID == 0
	}, 2*time.Second, 5*time.Millisecond)

	info, err := s.Stop(ctx, "bot1")
	require.NoError(t, err)
	assert.Equal(t, StatusStopped, info.Status)

	time.Sleep(500 * time.Millisecond)
	info, err = s.Describe(ctx, "bot1")
	require.NoError(t, err)
	assert.Equal(t, StatusStopped, info.Status)
	assert.Zero(t, info.RestartCount)
}

func TestAutorestartDisabled(t *testing.T) {
	s := newTestSupervisor(t, nil)
	ctx := context.Background()

	spec := startSpec(t, "bot1", crashing)
	spec.Autorestart = false
	_, err := s.Start(ctx, spec)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		info, err := s.Describe(ctx, "bot1")
		return err == nil && info.Status == StatusStopped
	}, 3*time.Second, 20*time.Millisecond)

	info, err := s.Describe(ctx, "bot1")
	require.NoError(t, err)
	assert.Zero(t, info.RestartCount)
	assert.Equal(t, 3, info.ExitCode)
}

func TestShutdown(t *testing.T) {
	s := newTestSupervisor(t, nil)
	ctx := context.Background()

	for _, name := range []string{"bot1", "bot2"} {
		_, err := s.Start(ctx, startSpec(t, name, longRunning))
		require.NoError(t, err)
	}

	require.NoError(t, s.Shutdown(ctx))

	list, err := s.List(ctx)
	require.NoError(t, err)
	for _, info := range list {
		assert.Equal(t, StatusStopped, info.Status, info.Name)
	}

	_, err = s.Start(ctx, startSpec(t, "bot3", longRunning))
	assert.ErrorIs(t, err, errors.ErrSupervisorClosed)
	assert.NoError(t, s.Shutdown(ctx))
}

func TestList_Order(t *testing.T) {
	s := newTestSupervisor(t, nil)
	ctx := context.Background()

	for _, name := range []string{"bot10", "bot2", "bot1"} {
		_, err := s.Start(ctx, startSpec(t, name, longRunning))
		require.NoError(t, err)
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, info := range list {
		names = append(names, info.Name)
	}
	assert.Equal(t, []string{"bot1", "bot2", "bot10"}, names)
}

func TestNormalizeLines(t *testing.T) {
	assert.Equal(t, DefaultTailLines, NormalizeLines(0))
	assert.Equal(t, DefaultTailLines, NormalizeLines(-5))
	assert.Equal(t, 7, NormalizeLines(7))
	assert.Equal(t, MaxTailLines, NormalizeLines(MaxTailLines+1))
}
