// Package workspace owns the per-job directories under the configured root.
package workspace

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ehsaniara/botvisor/pkg/errors"
	"github.com/ehsaniara/botvisor/pkg/logger"
	"github.com/ehsaniara/botvisor/pkg/platform"
)

const (
	dirPerm  = 0755
	filePerm = 0644

	PackageFile = "package.json"
)

// Workspace is a prepared job directory.
type Workspace struct {
	Identity  string
	Path      string
	EntryPath string
}

type Manager struct {
	root      string
	entryFile string
	fs        platform.OSOperations
	logger    *logger.Logger
}

func NewManager(root, entryFile string, fs platform.OSOperations) *Manager {
	abs, err := filepath.Abs(root)
	if err == nil {
		root = abs
	}
	return &Manager{
		root:      root,
		entryFile: entryFile,
		fs:        fs,
		logger:    logger.WithField("component", "workspace"),
	}
}

// Path returns the directory of identity without touching the filesystem.
func (m *Manager) Path(identity string) string {
	return filepath.Join(m.root, identity)
}

// EnsureRoot creates the root directory; calling it again is a no-op.
func (m *Manager) EnsureRoot() error {
	if err := m.fs.MkdirAll(m.root, dirPerm); err != nil {
		return errors.Workspace(m.root, "create root", err)
	}
	return nil
}

// Prepare creates the job directory and writes the entry file and package.json.
// The source is written verbatim.
func (m *Manager) Prepare(identity, source string, dependencies map[string]string) (*Workspace, error) {
	if identity == "" || strings.ContainsAny(identity, `/\`) || identity == "." || identity == ".." {
		return nil, errors.Workspace(identity, "prepare", fmt.Errorf("invalid identity %q", identity))
	}

	dir := m.Path(identity)
	log := m.logger.WithFields("identity", identity, "path", dir)

	if err := m.fs.MkdirAll(dir, dirPerm); err != nil {
		return nil, errors.Workspace(dir, "create directory", err)
	}

	entry := filepath.Join(dir, m.entryFile)
	if err := m.fs.WriteFile(entry, []byte(source), filePerm); err != nil {
		return nil, errors.Workspace(entry, "write source", err)
	}

	manifest, err := m.packageManifest(identity, dependencies)
	if err != nil {
		return nil, errors.Workspace(dir, "encode package.json", err)
	}
	if err := m.fs.WriteFile(filepath.Join(dir, PackageFile), manifest, filePerm); err != nil {
		return nil, errors.Workspace(dir, "write package.json", err)
	}

	log.Debug("workspace prepared", "sourceBytes", len(source), "dependencies", len(dependencies))
	return &Workspace{Identity: identity, Path: dir, EntryPath: entry}, nil
}

type packageJSON struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Private      bool              `json:"private"`
	Main         string            `json:"main"`
	Dependencies map[string]string `json:"dependencies"`
}

func (m *Manager) packageManifest(identity string, dependencies map[string]string) ([]byte, error) {
	deps := make(map[string]string, len(dependencies))
	for name, version := range dependencies {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("dependency with empty name")
		}
		if version == "" {
			version = "*"
		}
		deps[name] = version
	}

	data, err := json.MarshalIndent(packageJSON{
		Name:         identity,
		Version:      "1.0.0",
		Private:      true,
		Main:         m.entryFile,
		Dependencies: deps,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Identities lists the job directories present under the root, sorted by name.
// A missing root yields an empty list.
func (m *Manager) Identities() ([]string, error) {
	entries, err := m.fs.ReadDir(m.root)
	if err != nil {
		if m.fs.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Workspace(m.root, "scan root", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
