package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration
type Config struct {
	Version    string           `yaml:"version" json:"version"`
	Server     ServerConfig     `yaml:"server" json:"server"`
	Workspace  WorkspaceConfig  `yaml:"workspace" json:"workspace"`
	Installer  InstallerConfig  `yaml:"installer" json:"installer"`
	Supervisor SupervisorConfig `yaml:"supervisor" json:"supervisor"`
	Identity   IdentityConfig   `yaml:"identity" json:"identity"`
	CORS       CORSConfig       `yaml:"cors" json:"cors"`
	Logging    LoggingConfig    `yaml:"logging" json:"logging"`
}

// ServerConfig holds the HTTP listener configuration
type ServerConfig struct {
	Address         string        `yaml:"address" json:"address"`
	Port            int           `yaml:"port" json:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" json:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
}

// WorkspaceConfig controls where job directories are created.
type WorkspaceConfig struct {
	Root      string `yaml:"root" json:"root"`
	EntryFile string `yaml:"entry_file" json:"entry_file"`
}

// InstallerConfig selects how dependencies are installed.
// Mode "host" runs Command in the workspace, mode "docker" runs it inside Image
// with the workspace bind-mounted.
type InstallerConfig struct {
	Mode        string        `yaml:"mode" json:"mode"`
	Command     []string      `yaml:"command" json:"command"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout"`
	Image       string        `yaml:"image" json:"image"`
	DockerHost  string        `yaml:"docker_host" json:"docker_host"`
	Interpreter string        `yaml:"interpreter" json:"interpreter"`
}

type SupervisorConfig struct {
	// Socket is the Unix socket of the supervisor daemon. When External is false the
	// server embeds the supervisor and, if Socket is set, also exposes it there.
	Socket       string        `yaml:"socket" json:"socket"`
	External     bool          `yaml:"external" json:"external"`
	LogDir       string        `yaml:"log_dir" json:"log_dir"`
	Interpreter  string        `yaml:"interpreter" json:"interpreter"`
	StartTimeout time.Duration `yaml:"start_timeout" json:"start_timeout"`
	KillTimeout  time.Duration `yaml:"kill_timeout" json:"kill_timeout"`
	RestartDelay time.Duration `yaml:"restart_delay" json:"restart_delay"`
	MinUptime    time.Duration `yaml:"min_uptime" json:"min_uptime"`
	MaxRestarts  int           `yaml:"max_restarts" json:"max_restarts"`
	Autorestart  bool          `yaml:"autorestart" json:"autorestart"`
}

// IdentityConfig selects the bot name allocator. Backend is "memory" or "etcd".
type IdentityConfig struct {
	Prefix      string        `yaml:"prefix" json:"prefix"`
	Backend     string        `yaml:"backend" json:"backend"`
	Endpoints   []string      `yaml:"endpoints" json:"endpoints"`
	CounterKey  string        `yaml:"counter_key" json:"counter_key"`
	DialTimeout time.Duration `yaml:"dial_timeout" json:"dial_timeout"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods" json:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers" json:"allowed_headers"`
	MaxAge         int      `yaml:"max_age" json:"max_age"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	Output string `yaml:"output" json:"output"`
}

// DefaultConfig provides default configuration values
var DefaultConfig = Config{
	Version: "1.0",
	Server: ServerConfig{
		Address:         "0.0.0.0",
		Port:            3000,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    10 * time.Minute, // deploy waits for npm install
		ShutdownTimeout: 15 * time.Second,
		MaxBodyBytes:    1 << 20,
	},
	Workspace: WorkspaceConfig{
		Root:      "./temp",
		EntryFile: "script.js",
	},
	Installer: InstallerConfig{
		Mode:        "host",
		Command:     []string{"npm", "install"},
		Timeout:     5 * time.Minute,
		Image:       "node:20-alpine",
		Interpreter: "node",
	},
	Supervisor: SupervisorConfig{
		Socket:       "",
		External:     false,
		LogDir:       "./temp/.logs",
		Interpreter:  "node",
		StartTimeout: 10 * time.Second,
		KillTimeout:  5 * time.Second,
		RestartDelay: time.Second,
		MinUptime:    time.Second,
		MaxRestarts:  15,
		Autorestart:  true,
	},
	Identity: IdentityConfig{
		Prefix:      "bot",
		Backend:     "memory",
		CounterKey:  "/botvisor/identity/counter",
		DialTimeout: 5 * time.Second,
	},
	CORS: CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	},
	Logging: LoggingConfig{
		Level:  "INFO",
		Format: "text",
		Output: "stdout",
	},
}

// GetServerAddress returns the listen address of the HTTP server
func (c *Config) GetServerAddress() string {
	return net.JoinHostPort(c.Server.Address, strconv.Itoa(c.Server.Port))
}

// LoadConfig loads configuration from the first config file found, then applies
// environment overrides. It returns the path the configuration came from.
func LoadConfig() (*Config, string, error) {
	return LoadConfigFrom("")
}

// LoadConfigFrom behaves like LoadConfig but tries explicitPath first.
func LoadConfigFrom(explicitPath string) (*Config, string, error) {
	config := DefaultConfig
	config.Installer.Command = append([]string(nil), DefaultConfig.Installer.Command...)

	path, err := loadFromFile(&config, explicitPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config file: %w", err)
	}

	if err := applyEnv(&config); err != nil {
		return nil, "", err
	}

	if e := config.Validate(); e != nil {
		return nil, "", fmt.Errorf("configuration validation failed: %w", e)
	}

	return &config, path, nil
}

func applyEnv(config *Config) error {
	if val := os.Getenv("BOTVISOR_ADDRESS"); val != "" {
		config.Server.Address = val
	}

	// PORT is honoured for compatibility with PaaS style deployments
	for _, key := range []string{"PORT", "BOTVISOR_PORT"} {
		val := os.Getenv(key)
		if val == "" {
			continue
		}
		port, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, val, err)
		}
		config.Server.Port = port
	}

	if val := os.Getenv("BOTVISOR_WORKSPACE_ROOT"); val != "" {
		config.Workspace.Root = val
	}
	if val := os.Getenv("BOTVISOR_SOCKET"); val != "" {
		config.Supervisor.Socket = val
	}
	if val := os.Getenv("BOTVISOR_LOG_LEVEL"); val != "" {
		config.Logging.Level = val
	}
	if val := os.Getenv("BOTVISOR_LOG_FORMAT"); val != "" {
		config.Logging.Format = val
	}
	return nil
}

func loadFromFile(config *Config, explicitPath string) (string, error) {
	configPaths := []string{
		explicitPath,
		os.Getenv("BOTVISOR_CONFIG_PATH"),
		"./config/botvisor.yml",
		"./botvisor.yml",
		"/etc/botvisor/botvisor.yml",
	}

	for i, path := range configPaths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			// an explicitly requested file must exist
			if i == 0 {
				return "", fmt.Errorf("config file %s does not exist", path)
			}
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return "", fmt.Errorf("failed to parse config file %s: %w", path, err)
		}

		return path, nil
	}

	return "built-in defaults (no config file found)", nil
}

// Flags are the command-line overrides shared by the serve and daemon commands.
type Flags struct {
	ConfigPath    string
	Address       string
	Port          int
	WorkspaceRoot string
	Socket        string
}

// BindFlags registers the override flags on fs.
func (f *Flags) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", "", "path to botvisor.yml")
	fs.StringVar(&f.Address, "address", "", "HTTP listen address")
	fs.IntVar(&f.Port, "port", 0, "HTTP listen port")
	fs.StringVar(&f.WorkspaceRoot, "workspace-root", "", "directory holding bot workspaces")
	fs.StringVar(&f.Socket, "socket", "", "supervisor daemon Unix socket")
}

// Apply copies the flags that were set on the command line into c and re-validates.
func (f *Flags) Apply(c *Config) error {
	if f.Address != "" {
		c.Server.Address = f.Address
	}
	if f.Port != 0 {
		c.Server.Port = f.Port
	}
	if f.WorkspaceRoot != "" {
		c.Workspace.Root = f.WorkspaceRoot
	}
	if f.Socket != "" {
		c.Supervisor.Socket = f.Socket
	}
	return c.Validate()
}

// Validate checks the configuration for values the services cannot run with
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid max body bytes: %d", c.Server.MaxBodyBytes)
	}

	if strings.TrimSpace(c.Workspace.Root) == "" {
		return fmt.Errorf("workspace root must be set")
	}

	if c.Workspace.EntryFile == "" || strings.ContainsRune(c.Workspace.EntryFile, filepath.Separator) {
		return fmt.Errorf("invalid entry file: %q", c.Workspace.EntryFile)
	}

	switch c.Installer.Mode {
	case "host":
		if len(c.Installer.Command) == 0 {
			return fmt.Errorf("installer command must not be empty")
		}
	case "docker":
		if c.Installer.Image == "" {
			return fmt.Errorf("installer image must be set in docker mode")
		}
	default:
		return fmt.Errorf("invalid installer mode: %s", c.Installer.Mode)
	}

	if c.Installer.Timeout <= 0 {
		return fmt.Errorf("invalid installer timeout: %s", c.Installer.Timeout)
	}

	if c.Supervisor.External && c.Supervisor.Socket == "" {
		return fmt.Errorf("external supervisor requires a socket path")
	}

	if c.Supervisor.MaxRestarts < 0 {
		return fmt.Errorf("invalid max restarts: %d", c.Supervisor.MaxRestarts)
	}

	if c.Supervisor.StartTimeout <= 0 || c.Supervisor.KillTimeout <= 0 {
		return fmt.Errorf("supervisor timeouts must be positive")
	}

	if c.Identity.Prefix == "" {
		return fmt.Errorf("identity prefix must be set")
	}

	switch c.Identity.Backend {
	case "memory":
	case "etcd":
		if len(c.Identity.Endpoints) == 0 {
			return fmt.Errorf("etcd identity backend requires endpoints")
		}
	default:
		return fmt.Errorf("invalid identity backend: %s", c.Identity.Backend)
	}

	validLevels := map[string]bool{
		"DEBUG": true, "INFO": true, "WARN": true, "ERROR": true,
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	return nil
}
