package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehsaniara/botvisor/internal/botvisor/core"
	"github.com/ehsaniara/botvisor/internal/botvisor/identity"
	"github.com/ehsaniara/botvisor/internal/botvisor/installer/installerfakes"
	"github.com/ehsaniara/botvisor/internal/botvisor/server"
	"github.com/ehsaniara/botvisor/internal/botvisor/server/serverfakes"
	"github.com/ehsaniara/botvisor/internal/botvisor/supervisor"
	"github.com/ehsaniara/botvisor/internal/botvisor/workspace"
	bverrors "github.com/ehsaniara/botvisor/pkg/errors"
	"github.com/ehsaniara/botvisor/pkg/config"
	"github.com/ehsaniara/botvisor/pkg/platform"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig
	cfg.Server.MaxBodyBytes = 1024
	cfg.Server.ShutdownTimeout = 2 * time.Second
	return &cfg
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload), rec.Body.String())
	}
	return rec, payload
}

func TestDeploy_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
		code    string
	}{
		{"validation", bverrors.Validation("deploy", bverrors.ErrMissingSource), 400, "Code or zipUrl required", "validation_error"},
		{"zip url", bverrors.NotImplemented("deploy", bverrors.ErrArchiveDeploy), 501, "Zip URL deploy not implemented", "not_implemented"},
		{"workspace", bverrors.Workspace("/srv/bot1", "write source", errors.New("read-only file system")), 500, "Failed to prepare workspace", "workspace_error"},
		{"install", bverrors.Install("bot1", errors.New("exit status 1"), "npm ERR! 404"), 500, "Dependency install failed", "install_error"},
		{"start", bverrors.Start("bot1", errors.New("spawn failed")), 500, "Failed to start bot", "start_error"},
		{"upstream", bverrors.Upstream("connect supervisor", errors.New("refused")), 500, "Supervisor unavailable", "upstream_tool_error"},
		{"unclassified", errors.New("kaboom"), 500, "kaboom", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &serverfakes.FakeBotService{}
			svc.DeployReturns(nil, tt.err)
			h := server.New(testConfig(), svc).Router()

			rec, payload := do(t, h, http.MethodPost, "/deploy", `{"code":"x"}`)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, payload["error"])
			assert.Equal(t, tt.code, payload["code"])
		})
	}
}

func TestDeploy_Success(t *testing.T) {
	svc := &serverfakes.FakeBotService{}
	svc.DeployReturns(&core.DeployResult{BotName: "bot1", PID: 42}, nil)
	h := server.New(testConfig(), svc).Router()

	rec, payload := do(t, h, http.MethodPost, "/deploy",
		`{"code":"console.log(1)","zipUrl":"","dependencies":{"axios":"^1.6.0"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bot deployed and running", payload["message"])
	assert.Equal(t, "bot1", payload["botName"])
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	_, req := svc.DeployArgsForCall(0)
	assert.Equal(t, "console.log(1)", req.Code)
	assert.Equal(t, map[string]string{"axios": "^1.6.0"}, req.Dependencies)
}

func TestDeploy_BadBodies(t *testing.T) {
	svc := &serverfakes.FakeBotService{}
	h := server.New(testConfig(), svc).Router()

	rec, payload := do(t, h, http.MethodPost, "/deploy", `{"code":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", payload["code"])

	big := `{"code":"` + strings.Repeat("a", 2048) + `"}`
	rec, payload = do(t, h, http.MethodPost, "/deploy", big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "validation_error", payload["code"])

	assert.Zero(t, svc.DeployCallCount())
}

func TestListBots(t *testing.T) {
	svc := &serverfakes.FakeBotService{}
	svc.ListBotsReturns([]core.BotSummary{{Name: "bot1", PID: 10, Status: "online", RestartCount: 2}}, nil)
	h := server.New(testConfig(), svc).Router()

	rec, payload := do(t, h, http.MethodGet, "/bots", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	bots := payload["bots"].([]interface{})
	require.Len(t, bots, 1)
	bot := bots[0].(map[string]interface{})
	assert.Equal(t, "bot1", bot["name"])
	assert.Equal(t, float64(10), bot["pid"])
	assert.Equal(t, "online", bot["status"])
	assert.Equal(t, float64(2), bot["restart_count"])

	svc.ListBotsReturns(nil, nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bots", nil))
	assert.JSONEq(t, `{"bots":[]}`, rec.Body.String())

	svc.ListBotsReturns(nil, bverrors.Upstream("connect supervisor", errors.New("refused")))
	rec, payload = do(t, h, http.MethodGet, "/bots", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to list bots", payload["error"])
	assert.Equal(t, "refused", payload["details"])
}

func TestLogs(t *testing.T) {
	svc := &serverfakes.FakeBotService{}
	svc.LogsReturns([]string{"[stdout] hi", "[stderr] oops"}, nil)
	h := server.New(testConfig(), svc).Router()

	rec, payload := do(t, h, http.MethodGet, "/logs/bot3?lines=20", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bot3", payload["botName"])
	assert.Equal(t, []interface{}{"[stdout] hi", "[stderr] oops"}, payload["lines"])

	_, name, lines := svc.LogsArgsForCall(0)
	assert.Equal(t, "bot3", name)
	assert.Equal(t, 20, lines)

	rec, payload = do(t, h, http.MethodGet, "/logs/bot3?lines=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", payload["code"])
	assert.Equal(t, 1, svc.LogsCallCount())

	svc.LogsReturns(nil, bverrors.NotFound("tail", "bot3"))
	rec, payload = do(t, h, http.MethodGet, "/logs/bot3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Bot not found", payload["error"])
	assert.Equal(t, "not_found", payload["code"])
}

func TestStop(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"stopped", `{"botName":"bot1"}`, nil, 200},
		{"missing name", `{}`, bverrors.Validation("stop", bverrors.ErrMissingName), 400},
		{"unknown", `{"botName":"nope"}`, bverrors.NotFound("stop", "nope"), 404},
		{"stop failure", `{"botName":"bot1"}`, errors.New("signal failed"), 404},
		{"connect failure", `{"botName":"bot1"}`, bverrors.Upstream("connect supervisor", errors.New("refused")), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &serverfakes.FakeBotService{}
			svc.StopBotReturns(supervisor.ProcessInfo{}, tt.err)
			h := server.New(testConfig(), svc).Router()

			rec, payload := do(t, h, http.MethodPost, "/stop", tt.body)
			assert.Equal(t, tt.status, rec.Code)
			if tt.err == nil {
				assert.Equal(t, "bot1 stopped successfully", payload["message"])
			}
		})
	}
}

func TestNodeVersionAndHealth(t *testing.T) {
	svc := &serverfakes.FakeBotService{}
	svc.RuntimeVersionReturns("v20.11.1", nil)
	h := server.New(testConfig(), svc).Router()

	rec, payload := do(t, h, http.MethodGet, "/node-version", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v20.11.1", payload["nodeVersion"])

	svc.RuntimeVersionReturns("", bverrors.Upstream("probe", errors.New("node: not found")))
	rec, payload = do(t, h, http.MethodGet, "/node-version", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to get Node.js version", payload["error"])

	rec, payload = do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", payload["status"])
	assert.NotEmpty(t, payload["version"])
}

func TestRecoversPanics(t *testing.T) {
	svc := &serverfakes.FakeBotService{}
	svc.ListBotsStub = func(context.Context) ([]core.BotSummary, error) { panic("boom") }
	h := server.New(testConfig(), svc).Router()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bots", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCORS(t *testing.T) {
	h := server.New(testConfig(), &serverfakes.FakeBotService{}).Router()

	req := httptest.NewRequest(http.MethodOptions, "/deploy", nil)
	req.Header.Set("Origin", "http://dashboard.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute(t *testing.T) {
	h := server.New(testConfig(), &serverfakes.FakeBotService{}).Router()

	rec, payload := do(t, h, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", payload["code"])
}

func TestServe_GracefulShutdown(t *testing.T) {
	svc := &serverfakes.FakeBotService{}
	srv := server.New(testConfig(), svc)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

// End-to-end: real workspace and supervisor running sh scripts, npm install faked.
func TestScenario_DeployListStop(t *testing.T) {
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
	svc := core.NewService(identity.NewMemory("bot"), ws, &installerfakes.FakeInstaller{},
		supervisor.NewLocalConnector(sup), &installerfakes.FakeVersionProber{},
		core.Options{StartTimeout: 5 * time.Second, Autorestart: true})

	ts := httptest.NewServer(server.New(testConfig(), svc).Router())
	defer ts.Close()

	post := func(path, body string) (int, map[string]interface{}) {
		resp, err := http.Post(ts.URL+path, "application/json", bytes.NewBufferString(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		return resp.StatusCode, payload
	}
	get := func(path string) (int, map[string]interface{}) {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		return resp.StatusCode, payload
	}

	script := `{"code":"echo started; while true; do sleep 1; done"}`
	status, payload := post("/deploy", script)
	require.Equal(t, http.StatusOK, status, payload)
	assert.Equal(t, "bot1", payload["botName"])

	status, payload = post("/deploy", script)
	require.Equal(t, http.StatusOK, status, payload)
	assert.Equal(t, "bot2", payload["botName"])

	status, payload = post("/deploy", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, payload = get("/bots")
	require.Equal(t, http.StatusOK, status)
	bots := payload["bots"].([]interface{})
	require.Len(t, bots, 2)
	for i, want := range []string{"bot1", "bot2"} {
		bot := bots[i].(map[string]interface{})
		assert.Equal(t, want, bot["name"])
		assert.Equal(t, "online", bot["status"])
		assert.Positive(t, bot["pid"])
	}

	require.Eventually(t, func() bool {
		status, payload := get("/logs/bot2")
		return status == http.StatusOK && len(payload["lines"].([]interface{})) > 0
	}, 5*time.Second, 50*time.Millisecond)

	status, payload = post("/stop", `{"botName":"bot1"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "bot1 stopped successfully", payload["message"])

	status, payload = get("/bots")
	require.Equal(t, http.StatusOK, status)
	for _, b := range payload["bots"].([]interface{}) {
		bot := b.(map[string]interface{})
		if bot["name"] == "bot1" {
			assert.Equal(t, "stopped", bot["status"])
			assert.Equal(t, float64(0), bot["pid"])
		}
	}

	status, payload = post("/stop", `{"botName":"does-not-exist"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "not_found", payload["code"])

	status, _ = get("/logs/does-not-exist")
	assert.Equal(t, http.StatusNotFound, status)
}
