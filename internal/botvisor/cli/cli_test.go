package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehsaniara/botvisor/internal/botvisor/ipc"
	"github.com/ehsaniara/botvisor/internal/botvisor/supervisor"
	"github.com/ehsaniara/botvisor/pkg/errors"
	"github.com/ehsaniara/botvisor/pkg/platform"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PORT", "")
	t.Setenv("BOTVISOR_PORT", "")
	t.Setenv("BOTVISOR_SOCKET", "")
	t.Setenv("BOTVISOR_CONFIG_PATH", "")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// startDaemon serves a real supervisor on a temporary socket with one running process.
func startDaemon(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "bvc")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	sup, err := supervisor.New(supervisor.Config{
		LogDir:       filepath.Join(dir, "logs"),
		Interpreter:  "sh",
		KillTimeout:  2 * time.Second,
		RestartDelay: 50 * time.Millisecond,
		MinUptime:    time.Second,
		MaxRestarts:  5,
	}, platform.NewPlatform())
	require.NoError(t, err)

	socket := filepath.Join(dir, "s.sock")
	srv := ipc.NewServer(socket, sup)
	require.NoError(t, srv.Start())
	t.Cleanup(func() {
		_ = srv.Stop()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = sup.Shutdown(ctx)
	})

	script := filepath.Join(dir, "script.js")
	require.NoError(t, os.WriteFile(script, []byte("echo alive; while true; do sleep 1; done\n"), 0644))
	_, err = sup.Start(context.Background(), supervisor.StartSpec{Name: "bot1", Script: script, Autorestart: true})
	require.NoError(t, err)

	return socket
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCmd()
	assert.Equal(t, "botvisor", cmd.Use)

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"serve", "daemon", "ps", "logs", "stop", "version"} {
		assert.True(t, names[want], want)
	}

	for _, flag := range []string{"config", "address", "port", "workspace-root", "socket", "json"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "botvisor")

	out, err = run(t, "version", "--json")
	require.NoError(t, err)
	var info map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "botvisor", info["component"])
}

func TestInvalidFlagsFailBeforeRunning(t *testing.T) {
	_, err := run(t, "ps", "--port", "70000")
	assert.ErrorContains(t, err, "invalid server port")

	_, err = run(t, "ps", "--config", filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorContains(t, err, "does not exist")
}

func TestPs_RequiresSocket(t *testing.T) {
	_, err := run(t, "ps")
	assert.ErrorContains(t, err, "no supervisor socket configured")
}

func TestPs_NoDaemon(t *testing.T) {
	_, err := run(t, "ps", "--socket", filepath.Join(t.TempDir(), "none.sock"))
	require.Error(t, err)
	assert.True(t, errors.IsUpstream(err))
}

func TestDaemonCommands(t *testing.T) {
	socket := startDaemon(t)

	out, err := run(t, "ps", "--socket", socket)
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "bot1")
	assert.Contains(t, out, "online")

	out, err = run(t, "ps", "--socket", socket, "--json")
	require.NoError(t, err)
	var list []supervisor.ProcessInfo
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "bot1", list[0].Name)

	require.Eventually(t, func() bool {
		out, err := run(t, "logs", "bot1", "--socket", socket, "-n", "5")
		return err == nil && bytes.Contains([]byte(out), []byte("[stdout] alive"))
	}, 5*time.Second, 50*time.Millisecond)

	_, err = run(t, "logs", "ghost", "--socket", socket)
	assert.True(t, errors.IsNotFound(err))

	out, err = run(t, "stop", "bot1", "--socket", socket)
	require.NoError(t, err)
	assert.Equal(t, "bot1 stopped\n", out)

	out, err = run(t, "ps", "--socket", socket)
	require.NoError(t, err)
	assert.Contains(t, out, "stopped")

	_, err = run(t, "stop", "ghost", "--socket", socket)
	assert.True(t, errors.IsNotFound(err))
}

func TestFormatProcessList(t *testing.T) {
	var buf bytes.Buffer
	formatProcessList(&buf, nil)
	assert.Equal(t, "No processes found\n", buf.String())

	buf.Reset()
	formatProcessList(&buf, []supervisor.ProcessInfo{
		{Name: "bot10", PID: 321, Status: supervisor.StatusOnline, RestartCount: 2, StartedAt: time.Now().Add(-time.Minute)},
		{Name: "bot2", Status: supervisor.StatusStopped},
	})
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[1]), "321")
	assert.Contains(t, string(lines[1]), "online")
	assert.Contains(t, string(lines[2]), "-")
}
