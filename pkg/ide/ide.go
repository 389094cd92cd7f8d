// Package ide launches editors on workspace files.
package ide

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/lerenn/workspace-explorer/pkg/fs"
	"github.com/lerenn/workspace-explorer/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=ide.go -destination=mocks/ide.gen.go -package=mocks

// DefaultIDE is the default IDE name used when no IDE is specified.
const DefaultIDE = VSCodeName

// NewWindowFlag asks VS Code family editors to open the path in a new window.
const NewWindowFlag = "--new-window"

// IDE interface defines the methods that all IDE implementations must provide.
type IDE interface {
	// Name returns the name of the IDE
	Name() string

	// IsInstalled checks if the IDE is installed on the system
	IsInstalled() bool

	// OpenWorkspace opens the workspace file at path in a new window
	OpenWorkspace(path string) error
}

// ManagerInterface defines the interface for IDE management.
type ManagerInterface interface {
	// GetIDE returns the IDE implementation for the given name
	GetIDE(name string) (IDE, error)
	// OpenIDE opens the specified IDE with the given workspace file
	OpenIDE(name, path string, verbose bool) error
	// Names returns the registered IDE names, sorted
	Names() []string
}

// Manager manages IDE implementations and provides a unified interface.
type Manager struct {
	ides   map[string]IDE
	logger logger.Logger
}

// NewManager creates a new IDE manager with registered IDE implementations.
func NewManager(fsys fs.FS, l logger.Logger) *Manager {
	if l == nil {
		l = logger.NewNoopLogger()
	}

	m := &Manager{
		ides:   make(map[string]IDE),
		logger: l,
	}

	m.Register(NewVSCode(fsys))
	m.Register(NewVSCodium(fsys))
	m.Register(NewCursor(fsys))
	m.Register(NewDummy())

	return m
}

// Register adds or replaces an IDE implementation.
func (m *Manager) Register(ide IDE) {
	m.ides[ide.Name()] = ide
}

// GetIDE returns the IDE implementation for the given name.
func (m *Manager) GetIDE(name string) (IDE, error) {
	ide, exists := m.ides[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedIDE, name)
	}
	return ide, nil
}

// Names returns the registered IDE names.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.ides))
	for name := range m.ides {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OpenIDE opens the specified IDE with the given workspace file.
func (m *Manager) OpenIDE(name, path string, verbose bool) error {
	ide, err := m.GetIDE(name)
	if err != nil {
		return err
	}

	if !ide.IsInstalled() {
		return fmt.Errorf("%w: %s", ErrIDENotInstalled, name)
	}

	if verbose {
		m.logger.Logf("Opening %s with %s", path, name)
	}

	if err := ide.OpenWorkspace(path); err != nil {
		m.logger.Logf("Failed to open %s: %v", name, err)
		return fmt.Errorf("%w: %s", err, name)
	}

	if verbose {
		m.logger.Logf("Successfully opened %s with %s", path, name)
	}

	return nil
}

// openInNewWindow runs command on the absolute form of path with NewWindowFlag.
func openInNewWindow(fsys fs.FS, command, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	if err := fsys.ExecuteCommand(command, NewWindowFlag, absPath); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrIDEExecutionFailed, command, err)
	}
	return nil
}
