// Package dependencies provides a centralized dependency container for the explorer.
package dependencies

import (
	"errors"

	"github.com/lerenn/workspace-explorer/pkg/config"
	"github.com/lerenn/workspace-explorer/pkg/events"
	"github.com/lerenn/workspace-explorer/pkg/fs"
	"github.com/lerenn/workspace-explorer/pkg/hooks"
	"github.com/lerenn/workspace-explorer/pkg/ide"
	"github.com/lerenn/workspace-explorer/pkg/listing"
	"github.com/lerenn/workspace-explorer/pkg/logger"
	"github.com/lerenn/workspace-explorer/pkg/prompt"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing          = errors.New("fs dependency is required but not set")
	ErrConfigMissing      = errors.New("config dependency is required but not set")
	ErrLoggerMissing      = errors.New("logger dependency is required but not set")
	ErrPromptMissing      = errors.New("prompt dependency is required but not set")
	ErrHookManagerMissing = errors.New("hook manager dependency is required but not set")
	ErrIDEManagerMissing  = errors.New("IDE manager dependency is required but not set")
	ErrEmitterMissing     = errors.New("emitter dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS          fs.FS
	Config      config.Manager
	Logger      logger.Logger
	Prompt      prompt.Prompter
	HookManager hooks.HookManagerInterface
	IDEManager  ide.ManagerInterface
	Emitter     *events.Emitter
	Provider    listing.Provider
}

// New creates a new Dependencies instance with defaults.
// Config is left nil as it depends on the settings file path.
func New() *Dependencies {
	fsys := fs.NewFS()
	l := logger.NewNoopLogger()

	return &Dependencies{
		FS:          fsys,
		Logger:      l,
		Prompt:      prompt.NewPrompt(),
		HookManager: hooks.NewHookManager(),
		IDEManager:  ide.NewManager(fsys, l),
		Emitter:     events.NewEmitter(),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithHookManager sets the hook manager and returns the instance for chaining.
func (d *Dependencies) WithHookManager(hm hooks.HookManagerInterface) *Dependencies {
	d.HookManager = hm
	return d
}

// WithIDEManager sets the IDE manager and returns the instance for chaining.
func (d *Dependencies) WithIDEManager(im ide.ManagerInterface) *Dependencies {
	d.IDEManager = im
	return d
}

// WithEmitter sets the change emitter and returns the instance for chaining.
func (d *Dependencies) WithEmitter(e *events.Emitter) *Dependencies {
	d.Emitter = e
	return d
}

// WithProvider sets the listing provider and returns the instance for chaining.
func (d *Dependencies) WithProvider(p listing.Provider) *Dependencies {
	d.Provider = p
	return d
}

// ListingProvider returns the configured provider, building one over FS, Config and Emitter
// the first time when none was set.
func (d *Dependencies) ListingProvider() listing.Provider {
	if d.Provider == nil {
		d.Provider = listing.NewProvider(listing.NewProviderParams{
			FS:         d.FS,
			BaseFolder: d.Config,
			Logger:     d.Logger,
			Emitter:    d.Emitter,
		})
	}
	return d.Provider
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	missing bool
	err     error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS == nil, ErrFSMissing},
		{d.Config == nil, ErrConfigMissing},
		{d.Logger == nil, ErrLoggerMissing},
		{d.Prompt == nil, ErrPromptMissing},
		{d.HookManager == nil, ErrHookManagerMissing},
		{d.IDEManager == nil, ErrIDEManagerMissing},
		{d.Emitter == nil, ErrEmitterMissing},
	}

	for _, check := range checks {
		if check.missing {
			return check.err
		}
	}
	return nil
}
