// Package listing turns the configured base folder into the rows of the workspace view.
package listing

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lerenn/workspace-explorer/pkg/events"
	"github.com/lerenn/workspace-explorer/pkg/fs"
	"github.com/lerenn/workspace-explorer/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=provider.go -destination=mocks/provider.gen.go -package=mocks

// BaseFolderSource provides the base folder to scan. It is read again on every listing.
type BaseFolderSource interface {
	GetBaseFolder() string
}

// Provider lists workspace files of the base folder.
type Provider interface {
	// List returns the current rows: entries, or exactly one placeholder. It never fails.
	List() []Item
	// Entries returns the current entries, or the reason there are none.
	Entries() ([]Entry, error)
	// Refresh tells subscribers to list again.
	Refresh()
	// Subscribe registers a change listener and returns its unsubscribe function.
	Subscribe(listener events.Listener) func()
}

// NewProviderParams contains parameters for creating a new Provider.
type NewProviderParams struct {
	FS         fs.FS
	BaseFolder BaseFolderSource
	Logger     logger.Logger
	Emitter    *events.Emitter
}

type realProvider struct {
	fs         fs.FS
	baseFolder BaseFolderSource
	logger     logger.Logger
	emitter    *events.Emitter
}

// NewProvider creates a new Provider.
func NewProvider(params NewProviderParams) Provider {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}
	emitter := params.Emitter
	if emitter == nil {
		emitter = events.NewEmitter()
	}

	return &realProvider{
		fs:         params.FS,
		baseFolder: params.BaseFolder,
		logger:     l,
		emitter:    emitter,
	}
}

// List returns the rows of the view.
func (p *realProvider) List() []Item {
	entries, placeholder, _ := p.scan()
	if placeholder.Kind != "" {
		return []Item{NewPlaceholderItem(placeholder)}
	}

	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, NewEntryItem(entry))
	}
	return items
}

// Entries returns the workspace entries or the sentinel error explaining their absence.
func (p *realProvider) Entries() ([]Entry, error) {
	entries, _, err := p.scan()
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Refresh notifies subscribers that the listing changed.
func (p *realProvider) Refresh() {
	p.logger.Logf("Refreshing workspace listing (%d subscriber(s))", p.emitter.Len())
	p.emitter.Notify()
}

// Subscribe registers a change listener.
func (p *realProvider) Subscribe(listener events.Listener) func() {
	return p.emitter.Subscribe(listener)
}

// scan applies the listing rules in order; the first matching rule wins.
func (p *realProvider) scan() ([]Entry, Placeholder, error) {
	base := p.baseFolder.GetBaseFolder()
	if base == "" {
		return nil, Placeholder{
			Kind:    KindUnset,
			Message: "No base folder set. Run: " + SetBaseFolderCommand,
		}, ErrBaseFolderUnset
	}

	p.logger.Logf("Listing workspace files in %s", base)

	exists, err := p.fs.Exists(base)
	if err != nil {
		return nil, readErrorPlaceholder(err), fmt.Errorf("%w: %w", ErrReadFolder, err)
	}
	if !exists {
		return nil, Placeholder{
			Kind:    KindNotFound,
			Message: "Folder not found: " + base,
		}, fmt.Errorf("%w: %s", ErrFolderNotFound, base)
	}

	dirEntries, err := p.fs.ReadDir(base)
	if err != nil {
		return nil, readErrorPlaceholder(err), fmt.Errorf("%w: %w", ErrReadFolder, err)
	}

	var entries []Entry
	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		if dirEntry.IsDir() || !IsWorkspaceFile(name) {
			continue
		}
		entries = append(entries, Entry{
			DisplayName: DisplayName(name),
			FullPath:    filepath.Join(base, name),
			FileName:    name,
		})
	}

	if len(entries) == 0 {
		return nil, Placeholder{
			Kind:    KindEmpty,
			Message: "No " + WorkspaceSuffix + " files found.",
		}, fmt.Errorf("%w: %s", ErrNoWorkspaces, base)
	}

	sort.Slice(entries, func(i, j int) bool {
		left, right := strings.ToLower(entries[i].DisplayName), strings.ToLower(entries[j].DisplayName)
		if left != right {
			return left < right
		}
		return entries[i].FileName < entries[j].FileName
	})

	p.logger.Logf("Found %d workspace file(s)", len(entries))

	return entries, Placeholder{}, nil
}

func readErrorPlaceholder(err error) Placeholder {
	return Placeholder{
		Kind:    KindReadError,
		Message: "Error reading folder: " + err.Error(),
	}
}
