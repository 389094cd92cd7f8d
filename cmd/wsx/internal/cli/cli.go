// Package cli provides the shared flags and wiring of the wsx commands.
package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/lerenn/workspace-explorer/pkg/config"
	"github.com/lerenn/workspace-explorer/pkg/dependencies"
	"github.com/lerenn/workspace-explorer/pkg/explorer"
	"github.com/lerenn/workspace-explorer/pkg/fs"
	defaulthooks "github.com/lerenn/workspace-explorer/pkg/hooks/default"
	"github.com/lerenn/workspace-explorer/pkg/ide"
	"github.com/lerenn/workspace-explorer/pkg/logger"
	"github.com/lerenn/workspace-explorer/pkg/prompt"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom settings file path.
	ConfigPath string
)

// GetConfigPath returns the settings file path used by the commands.
func GetConfigPath(fsys fs.FS) string {
	if ConfigPath != "" {
		return ConfigPath
	}
	return config.DefaultConfigPath(fsys)
}

// NewConfigManager creates a new Manager on the settings file of the commands.
func NewConfigManager(fsys fs.FS) config.Manager {
	return config.NewManager(fsys, GetConfigPath(fsys))
}

// Output returns the logger for user-facing messages written to out.
func Output(out io.Writer) logger.Logger {
	if Quiet {
		return logger.NewNoopLogger()
	}
	return logger.NewWriterLogger(out)
}

// IDENames returns the names accepted by --ide.
func IDENames() []string {
	return ide.NewManager(fs.NewFS(), nil).Names()
}

// IDEFlagUsage returns the help text of the --ide flag.
func IDEFlagUsage() string {
	return "Open in specified IDE (" + strings.Join(IDENames(), ", ") + ")"
}

// ValidateIDE checks an --ide value. An empty name selects the configured or default IDE.
func ValidateIDE(name string) error {
	if name == "" {
		return nil
	}

	names := IDENames()
	if !slices.Contains(names, name) {
		return fmt.Errorf("%w: %s (available: %s)", ide.ErrUnsupportedIDE, name, strings.Join(names, ", "))
	}
	return nil
}

// NewDependencies wires the dependencies of the commands.
// Prompts read from in and write to out, like the dummy IDE.
func NewDependencies(in io.Reader, out io.Writer) (*dependencies.Dependencies, error) {
	deps := dependencies.New()
	cfg := NewConfigManager(deps.FS)
	deps.WithConfig(cfg).WithPrompt(prompt.NewPromptWithIO(in, out))

	var hookLogger logger.Logger
	if Verbose {
		hookLogger = logger.NewVerboseLogger()
		deps.WithLogger(hookLogger)
		hookLogger.Logf("Using settings file %s", cfg.GetConfigPath())
	}

	ideManager := ide.NewManager(deps.FS, hookLogger)
	ideManager.Register(ide.NewDummyWithWriter(out))
	deps.WithIDEManager(ideManager)

	hm, err := defaulthooks.NewDefaultHooksManager(defaulthooks.Params{
		Refresher:  deps.ListingProvider(),
		IDEManager: deps.IDEManager,
		Logger:     hookLogger,
	})
	if err != nil {
		return nil, err
	}

	return deps.WithHookManager(hm), nil
}

// NewExplorer creates a new Explorer instance for the commands.
func NewExplorer(in io.Reader, out io.Writer) (explorer.Explorer, error) {
	deps, err := NewDependencies(in, out)
	if err != nil {
		return nil, err
	}

	return explorer.NewExplorer(explorer.NewExplorerParams{
		Dependencies: deps,
		Verbose:      Verbose,
	})
}
