package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehsaniara/botvisor/internal/botvisor/identity"
	"github.com/ehsaniara/botvisor/internal/botvisor/installer/installerfakes"
	"github.com/ehsaniara/botvisor/internal/botvisor/supervisor"
	"github.com/ehsaniara/botvisor/internal/botvisor/supervisor/supervisorfakes"
	"github.com/ehsaniara/botvisor/internal/botvisor/workspace"
	bverrors "github.com/ehsaniara/botvisor/pkg/errors"
	"github.com/ehsaniara/botvisor/pkg/platform"
)

type fixture struct {
	service   *Service
	root      string
	installer *installerfakes.FakeInstaller
	connector *supervisorfakes.FakeConnector
	session   *supervisorfakes.FakeSession
	prober    *installerfakes.FakeVersionProber
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		root:      filepath.Join(t.TempDir(), "temp"),
		installer: &installerfakes.FakeInstaller{},
		connector: &supervisorfakes.FakeConnector{},
		session:   &supervisorfakes.FakeSession{},
		prober:    &installerfakes.FakeVersionProber{},
	}
	f.connector.ConnectReturns(f.session, nil)
	f.session.StartStub = func(_ context.Context, spec supervisor.StartSpec) (supervisor.ProcessInfo, error) {
		return supervisor.ProcessInfo{Name: spec.Name, PID: 100, Status: supervisor.StatusOnline}, nil
	}

	ws := workspace.NewManager(f.root, "script.js", platform.NewPlatform())
	f.service = NewService(identity.NewMemory("bot"), ws, f.installer, f.connector, f.prober,
		Options{Interpreter: "node", StartTimeout: time.Second, Autorestart: true})
	return f
}

func TestDeploy_Success(t *testing.T) {
	f := newFixture(t)

	result, err := f.service.Deploy(context.Background(), DeployRequest{
		Code:         "console.log('hi')",
		Dependencies: map[string]string{"axios": "^1.6.0"},
	})
	require.NoError(t, err)
	assert.Equal(t, "bot1", result.BotName)
	assert.Equal(t, 100, result.PID)

	source, err := os.ReadFile(filepath.Join(f.root, "bot1", "script.js"))
	require.NoError(t, err)
	assert.Equal(t, "console.log('hi')", string(source))
	assert.FileExists(t, filepath.Join(f.root, "bot1", "package.json"))

	require.Equal(t, 1, f.installer.InstallCallCount())
	_, name, dir := f.installer.InstallArgsForCall(0)
	assert.Equal(t, "bot1", name)
	assert.Equal(t, filepath.Join(f.root, "bot1"), dir)

	require.Equal(t, 1, f.session.StartCallCount())
	ctx, spec := f.session.StartArgsForCall(0)
	assert.Equal(t, "bot1", spec.Name)
	assert.Equal(t, filepath.Join(f.root, "bot1", "script.js"), spec.Script)
	assert.Equal(t, filepath.Join(f.root, "bot1"), spec.Cwd)
	assert.Equal(t, "node", spec.Interpreter)
	assert.True(t, spec.Autorestart)
	_, hasDeadline := ctx.Deadline()
	assert.True(t, hasDeadline)

	assert.Equal(t, 1, f.session.CloseCallCount())
}

func TestDeploy_SequentialNames(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.service.Deploy(ctx, DeployRequest{Code: "a"})
	require.NoError(t, err)
	second, err := f.service.Deploy(ctx, DeployRequest{Code: "b"})
	require.NoError(t, err)

	assert.Equal(t, "bot1", first.BotName)
	assert.Equal(t, "bot2", second.BotName)
}

func TestDeploy_InvalidRequestHasNoSideEffects(t *testing.T) {
	tests := []struct {
		name string
		req  DeployRequest
		kind bverrors.Kind
	}{
		{"empty", DeployRequest{}, bverrors.KindValidation},
		{"whitespace zip url", DeployRequest{ZipURL: "  "}, bverrors.KindValidation},
		{"zip url only", DeployRequest{ZipURL: "https://example.com/bot.zip"}, bverrors.KindNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.service.Deploy(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.kind, bverrors.KindOf(err))

			assert.NoDirExists(t, f.root)
			assert.Zero(t, f.installer.InstallCallCount())
			assert.Zero(t, f.connector.ConnectCallCount())

			// the failed request consumed no name
			result, err := f.service.Deploy(context.Background(), DeployRequest{Code: "ok"})
			require.NoError(t, err)
			assert.Equal(t, "bot1", result.BotName)
		})
	}
}

func TestDeploy_CodeWinsOverZipURL(t *testing.T) {
	f := newFixture(t)

	result, err := f.service.Deploy(context.Background(), DeployRequest{Code: "x", ZipURL: "https://example.com/a.zip"})
	require.NoError(t, err)
	assert.Equal(t, "bot1", result.BotName)
}

func TestDeploy_InstallFailure(t *testing.T) {
	f := newFixture(t)
	f.installer.InstallReturns(bverrors.Install("bot1", errors.New("exit status 1"), "npm ERR! 404"))

	_, err := f.service.Deploy(context.Background(), DeployRequest{Code: "x"})
	require.Error(t, err)
	assert.True(t, bverrors.IsInstall(err))
	assert.Equal(t, "npm ERR! 404", bverrors.DetailsOf(err))
	assert.Zero(t, f.connector.ConnectCallCount())

	// the workspace stays behind and the name is not reissued
	assert.FileExists(t, filepath.Join(f.root, "bot1", "script.js"))
	result, err := f.service.Deploy(context.Background(), DeployRequest{Code: "x"})
	require.NoError(t, err)
	assert.Equal(t, "bot2", result.BotName)
}

func TestDeploy_UnclassifiedInstallFailure(t *testing.T) {
	f := newFixture(t)
	f.installer.InstallReturns(errors.New("boom"))

	_, err := f.service.Deploy(context.Background(), DeployRequest{Code: "x"})
	assert.True(t, bverrors.IsInstall(err))
}

func TestDeploy_StartFailure(t *testing.T) {
	f := newFixture(t)
	f.session.StartStub = nil
	f.session.StartReturns(supervisor.ProcessInfo{}, errors.New("interpreter missing"))

	_, err := f.service.Deploy(context.Background(), DeployRequest{Code: "x"})
	require.Error(t, err)
	assert.True(t, bverrors.IsStart(err))
	assert.Contains(t, err.Error(), "start bot1")
	assert.Equal(t, 1, f.session.CloseCallCount())
}

func TestDeploy_ConnectFailure(t *testing.T) {
	f := newFixture(t)
	f.connector.ConnectReturns(nil, errors.New("dial unix: no such file"))

	_, err := f.service.Deploy(context.Background(), DeployRequest{Code: "x"})
	require.Error(t, err)
	assert.True(t, bverrors.IsUpstream(err))
}

func TestDeploy_WorkspaceFailure(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(f.root), 0755))
	require.NoError(t, os.WriteFile(f.root, []byte("not a dir"), 0644))

	_, err := f.service.Deploy(context.Background(), DeployRequest{Code: "x"})
	require.Error(t, err)
	assert.True(t, bverrors.IsWorkspace(err))
	assert.Zero(t, f.installer.InstallCallCount())
}

func TestDeploy_CancelledContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.service.Deploy(ctx, DeployRequest{Code: "x"})
	require.Error(t, err)
	assert.True(t, bverrors.IsUpstream(err))
	assert.NoDirExists(t, f.root)
}

func TestListBots_FiltersForeignProcesses(t *testing.T) {
	f := newFixture(t)
	f.session.ListReturns([]supervisor.ProcessInfo{
		{Name: "bot1", PID: 11, Status: supervisor.StatusOnline},
		{Name: "pm2-logrotate", PID: 12, Status: supervisor.StatusOnline},
		{Name: "bot2", PID: 0, Status: supervisor.StatusStopped, RestartCount: 3},
		{Name: "botx", PID: 13, Status: supervisor.StatusOnline},
	}, nil)

	bots, err := f.service.ListBots(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []BotSummary{
		{Name: "bot1", PID: 11, Status: "online"},
		{Name: "bot2", PID: 0, Status: "stopped", RestartCount: 3},
	}, bots)
	assert.Equal(t, 1, f.session.CloseCallCount())
}

func TestListBots_Empty(t *testing.T) {
	f := newFixture(t)

	bots, err := f.service.ListBots(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, bots)
	assert.Empty(t, bots)
}

func TestListBots_Errors(t *testing.T) {
	f := newFixture(t)
	f.session.ListReturns(nil, errors.New("socket hang up"))

	_, err := f.service.ListBots(context.Background())
	assert.True(t, bverrors.IsUpstream(err))

	f.connector.ConnectReturns(nil, bverrors.Upstream("connect supervisor", errors.New("refused")))
	_, err = f.service.ListBots(context.Background())
	assert.True(t, bverrors.IsUpstream(err))
	assert.Equal(t, "connect supervisor: refused", err.Error())
}

func TestLogs(t *testing.T) {
	f := newFixture(t)
	f.session.TailReturns([]string{"[stdout] hello"}, nil)

	lines, err := f.service.Logs(context.Background(), "bot1", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"[stdout] hello"}, lines)

	_, name, n := f.session.TailArgsForCall(0)
	assert.Equal(t, "bot1", name)
	assert.Equal(t, supervisor.DefaultTailLines, n)

	_, err = f.service.Logs(context.Background(), "bot1", 5000)
	require.NoError(t, err)
	_, _, n = f.session.TailArgsForCall(1)
	assert.Equal(t, supervisor.MaxTailLines, n)
}

func TestLogs_Errors(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Logs(context.Background(), "", 10)
	assert.True(t, bverrors.IsValidation(err))

	f.session.TailReturns(nil, bverrors.NotFound("tail", "bot7"))
	_, err = f.service.Logs(context.Background(), "bot7", 10)
	assert.True(t, bverrors.IsNotFound(err))
}

func TestStopBot(t *testing.T) {
	f := newFixture(t)
	f.session.StopReturns(supervisor.ProcessInfo{Name: "bot1", Status: supervisor.StatusStopped}, nil)

	info, err := f.service.StopBot(context.Background(), "bot1")
	require.NoError(t, err)
	assert.Equal(t, supervisor.StatusStopped, info.Status)

	_, err = f.service.StopBot(context.Background(), "")
	assert.True(t, bverrors.IsValidation(err))
	assert.Equal(t, 1, f.session.StopCallCount())

	f.session.StopReturns(supervisor.ProcessInfo{}, bverrors.NotFound("stop", "bot9"))
	_, err = f.service.StopBot(context.Background(), "bot9")
	assert.True(t, bverrors.IsNotFound(err))
}

func TestDescribeBot(t *testing.T) {
	f := newFixture(t)
	f.session.DescribeReturns(supervisor.ProcessInfo{Name: "bot1", PID: 7}, nil)

	info, err := f.service.DescribeBot(context.Background(), "bot1")
	require.NoError(t, err)
	assert.Equal(t, 7, info.PID)

	_, err = f.service.DescribeBot(context.Background(), "")
	assert.True(t, bverrors.IsValidation(err))
}

func TestRuntimeVersion(t *testing.T) {
	f := newFixture(t)
	f.prober.VersionReturns("v20.11.1", nil)

	v, err := f.service.RuntimeVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v20.11.1", v)

	f.prober.VersionReturns("", errors.New("exec: not found"))
	_, err = f.service.RuntimeVersion(context.Background())
	assert.True(t, bverrors.IsUpstream(err))
}

func TestSeedIdentities(t *testing.T) {
	f := newFixture(t)
	f.session.ListReturns([]supervisor.ProcessInfo{{Name: "bot7"}, {Name: "other"}}, nil)

	require.NoError(t, f.service.SeedIdentities(context.Background(), []string{"bot3", "bot12", "scratch"}))

	result, err := f.service.Deploy(context.Background(), DeployRequest{Code: "x"})
	require.NoError(t, err)
	assert.Equal(t, "bot13", result.BotName)
}

func TestSeedIdentities_ConnectFailure(t *testing.T) {
	f := newFixture(t)
	f.connector.ConnectReturns(nil, errors.New("refused"))

	err := f.service.SeedIdentities(context.Background(), []string{"bot4"})
	assert.True(t, bverrors.IsUpstream(err))
}

// Deploys against a real supervisor running sh scripts.
func TestDeploy_ConcurrentAgainstSupervisor(t *testing.T) {
	base := t.TempDir()
	sup, err := supervisor.New(supervisor.Config{
		LogDir:       filepath.Join(base, "logs"),
		Interpreter:  "sh",
		KillTimeout:  2 * time.Second,
		RestartDelay: 50 * time.Millisecond,
		MinUptime:    time.Second,
		MaxRestarts:  5,
	}, platform.NewPlatform())
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = sup.Shutdown(ctx)
	})

	ws := workspace.NewManager(filepath.Join(base, "temp"), "script.js", platform.NewPlatform())
	service := NewService(identity.NewMemory("bot"), ws, &installerfakes.FakeInstaller{},
		supervisor.NewLocalConnector(sup), &installerfakes.FakeVersionProber{},
		Options{StartTimeout: 5 * time.Second, Autorestart: true})

	const n = 8
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		names = make(map[string]bool)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := service.Deploy(context.Background(), DeployRequest{Code: "while true; do sleep 1; done"})
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			names[result.BotName] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, names, n)

	bots, err := service.ListBots(context.Background())
	require.NoError(t, err)
	require.Len(t, bots, n)
	for _, b := range bots {
		assert.True(t, names[b.Name], b.Name)
		assert.Equal(t, "online", b.Status)
		assert.Positive(t, b.PID)
	}

	info, err := service.StopBot(context.Background(), "bot1")
	require.NoError(t, err)
	assert.Equal(t, supervisor.StatusStopped, info.Status)

	_, err = service.StopBot(context.Background(), "bot99")
	assert.True(t, bverrors.IsNotFound(err))
}
