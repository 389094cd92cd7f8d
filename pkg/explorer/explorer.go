package explorer

import (
	"fmt"

	"github.com/lerenn/workspace-explorer/pkg/dependencies"
	"github.com/lerenn/workspace-explorer/pkg/events"
	"github.com/lerenn/workspace-explorer/pkg/hooks"
	"github.com/lerenn/workspace-explorer/pkg/listing"
	"github.com/lerenn/workspace-explorer/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=explorer.go -destination=mocks/explorer.gen.go -package=mocks

// Explorer lists the workspace files of the base folder and opens them.
type Explorer interface {
	// GetBaseFolder returns the configured base folder, empty when unset.
	GetBaseFolder() string
	// SetBaseFolder stores path as the base folder and refreshes the listing.
	// It returns the stored path.
	SetBaseFolder(path string) (string, error)
	// ConfirmAndSetBaseFolder works like SetBaseFolder but asks before storing a folder
	// that does not exist. A declined or cancelled confirmation stores nothing and returns "".
	ConfirmAndSetBaseFolder(path string) (string, error)
	// PickBaseFolder lets the user choose the base folder interactively.
	// It returns an empty path, and changes nothing, when the user cancels.
	PickBaseFolder() (string, error)
	// List returns the rows of the listing: entries, or one placeholder.
	List() ([]listing.Item, error)
	// Entries returns the workspace entries, or the reason there are none.
	Entries() ([]listing.Entry, error)
	// Refresh notifies subscribers that the listing must be read again.
	Refresh() error
	// Subscribe registers a change listener and returns its unsubscribe function.
	Subscribe(listener events.Listener) func()
	// Open opens the entry in a new window of the named IDE.
	Open(entry listing.Entry, ideName string) error
	// OpenByName opens the workspace whose display name or file name matches name.
	OpenByName(name, ideName string) error
	// SelectAndOpen lets the user choose a workspace and opens it.
	SelectAndOpen(ideName string) error
	// SetLogger sets the logger for this Explorer instance.
	SetLogger(logger logger.Logger)
}

// NewExplorerParams contains parameters for creating a new Explorer instance.
type NewExplorerParams struct {
	Dependencies *dependencies.Dependencies
	Verbose      bool
}

type realExplorer struct {
	deps     *dependencies.Dependencies
	provider listing.Provider
	verbose  bool
}

// NewExplorer creates a new Explorer instance.
func NewExplorer(params NewExplorerParams) (Explorer, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &realExplorer{
		deps:     deps,
		provider: deps.ListingProvider(),
		verbose:  params.Verbose,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (e *realExplorer) VerbosePrint(msg string, args ...interface{}) {
	if e.deps.Logger != nil {
		e.deps.Logger.Logf(msg, args...)
	}
}

// SetLogger sets the logger for this Explorer instance.
func (e *realExplorer) SetLogger(logger logger.Logger) {
	e.deps.Logger = logger
}

// Subscribe registers a listener on the listing changes.
func (e *realExplorer) Subscribe(listener events.Listener) func() {
	return e.provider.Subscribe(listener)
}

// executeWithHooks executes an operation with pre and post hooks.
func (e *realExplorer) executeWithHooks(
	operationName string, params map[string]interface{}, operation func() error) error {
	_, err := executeWithHooksAndReturn(e, operationName, params, "", func() (struct{}, error) {
		return struct{}{}, operation()
	})
	return err
}

// executeWithHooksAndReturn executes an operation with pre and post hooks and
// stores its result under resultKey for the post-hooks.
func executeWithHooksAndReturn[T any](
	e *realExplorer,
	operationName string,
	params map[string]interface{},
	resultKey string,
	operation func() (T, error),
) (T, error) {
	var zero T

	if params == nil {
		params = make(map[string]interface{})
	}
	ctx := &hooks.HookContext{
		OperationName: operationName,
		Parameters:    params,
		Results:       make(map[string]interface{}),
		Metadata:      make(map[string]interface{}),
	}

	// Execute pre-hooks (if hook manager is available)
	if err := e.executePreHooks(operationName, ctx); err != nil {
		return zero, err
	}

	// Execute operation
	var result T
	var resultErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				resultErr = fmt.Errorf("panic in %s: %v", operationName, r)
			}
		}()
		result, resultErr = operation()
	}()

	// Update context with results
	ctx.Error = resultErr
	if resultErr == nil {
		if resultKey != "" {
			ctx.Results[resultKey] = result
		}
		ctx.Results["success"] = true
	}

	// Execute post-hooks or error-hooks (if hook manager is available)
	if hookErr := e.executeHooks(operationName, ctx, resultErr); hookErr != nil {
		return zero, hookErr
	}
	if resultErr != nil {
		return zero, resultErr
	}
	return result, nil
}

// executeHooks executes post-hooks or error-hooks based on the operation result.
func (e *realExplorer) executeHooks(operationName string, ctx *hooks.HookContext, resultErr error) error {
	if e.deps.HookManager == nil {
		return nil
	}

	if resultErr != nil {
		return e.deps.HookManager.ExecuteErrorHooks(operationName, ctx)
	}
	return e.deps.HookManager.ExecutePostHooks(operationName, ctx)
}

// executePreHooks executes pre-hooks if hook manager is available.
func (e *realExplorer) executePreHooks(operationName string, ctx *hooks.HookContext) error {
	if e.deps.HookManager == nil {
		return nil
	}
	return e.deps.HookManager.ExecutePreHooks(operationName, ctx)
}
