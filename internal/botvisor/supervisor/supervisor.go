// Package supervisor keeps named processes alive: it spawns them, captures their output
// to log files, restarts them when they exit unexpectedly and stops them on request.
// It is the system of record for what is running.
package supervisor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"syscall"
	"time"

	"github.com/ehsaniara/botvisor/internal/botvisor/pubsub"
	"github.com/ehsaniara/botvisor/pkg/errors"
	"github.com/ehsaniara/botvisor/pkg/logger"
	"github.com/ehsaniara/botvisor/pkg/platform"
)

type Config struct {
	LogDir       string
	Interpreter  string
	KillTimeout  time.Duration
	RestartDelay time.Duration
	// Exits sooner than MinUptime after a launch count as unstable.
	MinUptime time.Duration
	// Consecutive unstable restarts allowed before the process is marked errored.
	// Zero means unlimited.
	MaxRestarts int
}

type Supervisor struct {
	mu       sync.Mutex
	procs    map[string]*proc
	closed   bool
	cfg      Config
	platform platform.Platform
	events   pubsub.PubSub[Event]
	logger   *logger.Logger
}

type proc struct {
	spec StartSpec
	info ProcessInfo

	cmd           platform.Command
	stopRequested bool
	restartTimer  *time.Timer

	// launched is closed once the initial spawn has either succeeded or been rolled back.
	launched chan struct{}
	// exited is closed when the watcher has recorded the exit of the current run.
	exited chan struct{}

	outPath string
	errPath string
}

func New(cfg Config, p platform.Platform) (*Supervisor, error) {
	if cfg.Interpreter == "" {
		cfg.Interpreter = "node"
	}
	if cfg.KillTimeout <= 0 {
		cfg.KillTimeout = 5 * time.Second
	}
	if cfg.LogDir == "" {
		return nil, fmt.Errorf("supervisor log directory must be set")
	}
	if abs, err := filepath.Abs(cfg.LogDir); err == nil {
		cfg.LogDir = abs
	}
	if err := p.MkdirAll(cfg.LogDir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", cfg.LogDir, err)
	}

	return &Supervisor{
		procs:    make(map[string]*proc),
		cfg:      cfg,
		platform: p,
		events:   pubsub.NewPubSub[Event](pubsub.WithBufferSize[Event](256)),
		logger:   logger.WithField("component", "supervisor"),
	}, nil
}

// Subscribe streams lifecycle events until ctx is done or unsubscribe is called.
func (s *Supervisor) Subscribe(ctx context.Context) (<-chan pubsub.Message[Event], func(), error) {
	return s.events.Subscribe(ctx, TopicProcess)
}

// Start registers spec.Name and launches it. The name is reserved before spawning,
// so concurrent starts of the same name cannot both succeed.
func (s *Supervisor) Start(ctx context.Context, spec StartSpec) (ProcessInfo, error) {
	if spec.Name == "" {
		return ProcessInfo{}, errors.Start(spec.Name, fmt.Errorf("process name is required"))
	}
	if err := ctx.Err(); err != nil {
		return ProcessInfo{}, errors.Start(spec.Name, err)
	}
	if err := s.resolveSpec(&spec); err != nil {
		return ProcessInfo{}, errors.Start(spec.Name, err)
	}

	log := s.logger.WithFields("name", spec.Name, "script", spec.Script)

	p := &proc{
		spec: spec,
		info: ProcessInfo{
			Name:   spec.Name,
			Status: StatusLaunching,
			Cwd:    spec.Cwd,
			Script: spec.Script,
		},
		launched: make(chan struct{}),
		outPath:  filepath.Join(s.cfg.LogDir, spec.Name+"-out.log"),
		errPath:  filepath.Join(s.cfg.LogDir, spec.Name+"-err.log"),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ProcessInfo{}, errors.Start(spec.Name, errors.ErrSupervisorClosed)
	}
	if _, exists := s.procs[spec.Name]; exists {
		s.mu.Unlock()
		return ProcessInfo{}, errors.Start(spec.Name, errors.ErrAlreadyRunning)
	}
	s.procs[spec.Name] = p
	s.mu.Unlock()

	cmd, exited, err := s.spawn(p)

	s.mu.Lock()
	defer close(p.launched)
	if err != nil {
		delete(s.procs, spec.Name)
		s.mu.Unlock()
		log.Warn("failed to start process", "error", err)
		return ProcessInfo{}, errors.Start(spec.Name, err)
	}
	s.attach(p, cmd, exited)
	info := p.info
	s.mu.Unlock()

	log.Info("process started", "pid", info.PID)
	s.publish(EventStart, info)
	return info, nil
}

func (s *Supervisor) resolveSpec(spec *StartSpec) error {
	if spec.Interpreter == "" {
		spec.Interpreter = s.cfg.Interpreter
	}
	interpreter, err := s.platform.LookPath(spec.Interpreter)
	if err != nil {
		return fmt.Errorf("interpreter %s not found: %w", spec.Interpreter, err)
	}
	spec.Interpreter = interpreter

	if abs, err := filepath.Abs(spec.Script); err == nil {
		spec.Script = abs
	}
	if !s.platform.FileExists(spec.Script) {
		return fmt.Errorf("script %s does not exist", spec.Script)
	}
	if spec.Cwd == "" {
		spec.Cwd = filepath.Dir(spec.Script)
	}
	if !s.platform.DirExists(spec.Cwd) {
		return fmt.Errorf("working directory %s does not exist", spec.Cwd)
	}
	return nil
}

// spawn launches one run of p. Log files are opened in append mode so output
// survives restarts.
func (s *Supervisor) spawn(p *proc) (platform.Command, chan struct{}, error) {
	stdout, err := s.platform.OpenFile(p.outPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open stdout log: %w", err)
	}
	stderr, err := s.platform.OpenFile(p.errPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		_ = stdout.Close()
		return nil, nil, fmt.Errorf("open stderr log: %w", err)
	}

	args := append([]string{p.spec.Script}, p.spec.Args...)
	// not bound to a request context; the process outlives the call that started it
	cmd := s.platform.CommandContext(context.Background(), p.spec.Interpreter, args...)
	cmd.SetDir(p.spec.Cwd)
	cmd.SetStdout(stdout)
	cmd.SetStderr(stderr)
	cmd.SetSysProcAttr(s.platform.CreateProcessGroup())
	cmd.SetEnv(append(os.Environ(), append([]string{"BOTVISOR_NAME=" + p.spec.Name}, p.spec.Env...)...))

	if err := cmd.Start(); err != nil {
		_ = stdout.Close()
		_ = stderr.Close()
		return nil, nil, fmt.Errorf("spawn %s: %w", p.spec.Interpreter, err)
	}

	exited := make(chan struct{})
	go s.watch(p, cmd, exited, stdout, stderr)
	return cmd, exited, nil
}

// attach records a successful spawn. Caller holds s.mu.
func (s *Supervisor) attach(p *proc, cmd platform.Command, exited chan struct{}) {
	p.cmd = cmd
	p.exited = exited
	p.info.PID = cmd.Process().Pid()
	p.info.Status = StatusOnline
	p.info.StartedAt = time.Now()
	p.info.ExitCode = 0
}

func (s *Supervisor) watch(p *proc, cmd platform.Command, exited chan struct{}, files ...*os.File) {
	waitErr := cmd.Wait()
	for _, f := range files {
		_ = f.Close()
	}

	exitCode := -1
	if state := cmd.ProcessState(); state != nil {
		exitCode = state.ExitCode()
	}

	s.mu.Lock()
	// the attach of this run may not have happened yet if the process died instantly
	for p.cmd != cmd && p.info.Status == StatusLaunching && p.launchedPending() {
		s.mu.Unlock()
		<-p.launched
		s.mu.Lock()
	}
	if p.cmd != cmd {
		s.mu.Unlock()
		close(exited)
		return
	}

	uptime := time.Since(p.info.StartedAt)
	p.cmd = nil
	p.info.PID = 0
	p.info.ExitCode = exitCode
	close(exited)

	log := s.logger.WithFields("name", p.info.Name, "exitCode", exitCode, "uptime", uptime.Round(time.Millisecond))

	if p.stopRequested || s.closed {
		p.info.Status = StatusStopped
		info := p.info
		s.mu.Unlock()
		log.Info("process stopped")
		s.publish(EventStop, info)
		return
	}

	if !p.spec.Autorestart {
		p.info.Status = StatusStopped
		info := p.info
		s.mu.Unlock()
		log.Info("process exited, autorestart disabled", "error", waitErr)
		s.publish(EventExit, info)
		return
	}

	if uptime < s.cfg.MinUptime {
		p.info.UnstableRestarts++
	} else {
		p.info.UnstableRestarts = 0
	}

	if s.cfg.MaxRestarts > 0 && p.info.UnstableRestarts > s.cfg.MaxRestarts {
		p.info.Status = StatusErrored
		info := p.info
		s.mu.Unlock()
		log.Error("process is crash looping, giving up", "unstableRestarts", info.UnstableRestarts)
		s.publish(EventErrored, info)
		return
	}

	p.info.Status = StatusLaunching
	p.restartTimer = time.AfterFunc(s.cfg.RestartDelay, func() { s.restart(p) })
	info := p.info
	s.mu.Unlock()

	log.Warn("process exited unexpectedly, restarting", "error", waitErr, "delay", s.cfg.RestartDelay)
	s.publish(EventExit, info)
}

func (p *proc) launchedPending() bool {
	select {
	case <-p.launched:
		return false
	default:
		return true
	}
}

func (s *Supervisor) restart(p *proc) {
	s.mu.Lock()
	if p.stopRequested || s.closed || p.info.Status != StatusLaunching || p.cmd != nil {
		s.mu.Unlock()
		return
	}
	p.restartTimer = nil

	cmd, exited, err := s.spawn(p)
	if err != nil {
		p.info.Status = StatusErrored
		info := p.info
		s.mu.Unlock()
		s.logger.Error("failed to restart process", "name", info.Name, "error", err)
		s.publish(EventErrored, info)
		return
	}
	s.attach(p, cmd, exited)
	p.info.RestartCount++
	info := p.info
	s.mu.Unlock()

	s.logger.Info("process restarted", "name", info.Name, "pid", info.PID, "restartCount", info.RestartCount)
	s.publish(EventRestart, info)
}

// List returns every registered process, shorter names first so bot2 sorts before bot10.
func (s *Supervisor) List(ctx context.Context) ([]ProcessInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	out := make([]ProcessInfo, 0, len(s.procs))
	for _, p := range s.procs {
		out = append(out, p.info)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Name) != len(out[j].Name) {
			return len(out[i].Name) < len(out[j].Name)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *Supervisor) Describe(ctx context.Context, name string) (ProcessInfo, error) {
	if err := ctx.Err(); err != nil {
		return ProcessInfo{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.procs[name]
	if !ok {
		return ProcessInfo{}, errors.NotFound("describe", name)
	}
	return p.info, nil
}

// Stop terminates the process group of name: SIGTERM, then SIGKILL after the kill timeout.
// The record stays registered with status stopped. Stopping a stopped process is a no-op.
func (s *Supervisor) Stop(ctx context.Context, name string) (ProcessInfo, error) {
	s.mu.Lock()
	p, ok := s.procs[name]
	s.mu.Unlock()
	if !ok {
		return ProcessInfo{}, errors.NotFound("stop", name)
	}

	select {
	case <-p.launched:
	case <-ctx.Done():
		return ProcessInfo{}, ctx.Err()
	}

	s.mu.Lock()
	if s.procs[name] != p {
		// the launch was rolled back
		s.mu.Unlock()
		return ProcessInfo{}, errors.NotFound("stop", name)
	}
	p.stopRequested = true
	if p.restartTimer != nil {
		p.restartTimer.Stop()
		p.restartTimer = nil
	}
	if p.cmd == nil {
		wasStopped := p.info.Status == StatusStopped
		p.info.Status = StatusStopped
		p.info.PID = 0
		info := p.info
		s.mu.Unlock()
		if !wasStopped {
			s.publish(EventStop, info)
		}
		return info, nil
	}
	p.info.Status = StatusStopping
	pid := p.info.PID
	exited := p.exited
	s.mu.Unlock()

	if err := s.terminate(ctx, name, pid, exited); err != nil {
		return ProcessInfo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return p.info, nil
}

func (s *Supervisor) terminate(ctx context.Context, name string, pid int, exited <-chan struct{}) error {
	log := s.logger.WithFields("name", name, "pid", pid)

	s.signal(pid, syscall.SIGTERM, log)

	timer := time.NewTimer(s.cfg.KillTimeout)
	defer timer.Stop()
	select {
	case <-exited:
		log.Debug("process terminated gracefully")
		return nil
	case <-ctx.Done():
		s.signal(pid, syscall.SIGKILL, log)
		return ctx.Err()
	case <-timer.C:
	}

	log.Warn("graceful shutdown timed out, force killing", "timeout", s.cfg.KillTimeout)
	s.signal(pid, syscall.SIGKILL, log)

	select {
	case <-exited:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// signal targets the process group first, then the process itself.
func (s *Supervisor) signal(pid int, sig syscall.Signal, log *logger.Logger) {
	if err := s.platform.Kill(-pid, sig); err != nil {
		log.Debug("failed to signal process group", "signal", sig, "error", err)
		if err := s.platform.Kill(pid, sig); err != nil {
			log.Debug("failed to signal process", "signal", sig, "error", err)
		}
	}
}

// Shutdown stops every process and refuses new starts.
func (s *Supervisor) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	names := make([]string, 0, len(s.procs))
	for name := range s.procs {
		names = append(names, name)
	}
	s.mu.Unlock()

	s.logger.Info("shutting down supervisor", "processes", len(names))

	var wg sync.WaitGroup
	errs := make([]error, len(names))
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			if _, err := s.Stop(ctx, name); err != nil && !errors.IsNotFound(err) {
				errs[i] = fmt.Errorf("stop %s: %w", name, err)
			}
		}(i, name)
	}
	wg.Wait()

	_ = s.events.Close()
	return errors.Join(errs...)
}

func (s *Supervisor) publish(t EventType, info ProcessInfo) {
	if err := s.events.Publish(context.Background(), TopicProcess, Event{Type: t, Process: info}); err != nil {
		s.logger.Debug("dropped lifecycle event", "type", t, "name", info.Name, "error", err)
	}
}
