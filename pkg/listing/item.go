package listing

import "strings"

// WorkspaceSuffix is the file name suffix of workspace files, matched case-insensitively.
const WorkspaceSuffix = ".code-workspace"

// SetBaseFolderCommand is the command users run to configure the base folder.
const SetBaseFolderCommand = "wsx set-base-folder"

// Entry is a workspace file found in the base folder.
type Entry struct {
	// DisplayName is the file name without the workspace suffix.
	DisplayName string
	// FullPath is the base folder joined with FileName.
	FullPath string
	// FileName is the file name as found on disk.
	FileName string
}

// PlaceholderKind tells why no entries are shown.
type PlaceholderKind string

// Placeholder kinds.
const (
	KindUnset     PlaceholderKind = "unset"
	KindNotFound  PlaceholderKind = "not-found"
	KindReadError PlaceholderKind = "read-error"
	KindEmpty     PlaceholderKind = "empty"
)

// Placeholder is the informational, non-selectable value shown instead of entries.
type Placeholder struct {
	Kind    PlaceholderKind
	Message string
}

// Icon names the glyph a view draws next to an item.
type Icon string

// Icons.
const (
	IconWorkspace Icon = "briefcase"
	IconInfo      Icon = "info"
)

// Item is the rendering-facing value of a listing row.
// It wraps either an Entry or a Placeholder; ID joins it back to the entry.
type Item struct {
	ID          string
	Label       string
	Description string
	Tooltip     string
	Icon        Icon
	Selectable  bool

	Entry       Entry
	Placeholder Placeholder
}

// IsPlaceholder reports whether the item carries a Placeholder.
func (i Item) IsPlaceholder() bool {
	return i.Placeholder.Kind != ""
}

// NewEntryItem wraps an entry for rendering.
func NewEntryItem(entry Entry) Item {
	return Item{
		ID:          entry.FullPath,
		Label:       entry.DisplayName,
		Description: entry.FileName,
		Tooltip:     entry.FullPath,
		Icon:        IconWorkspace,
		Selectable:  true,
		Entry:       entry,
	}
}

// NewPlaceholderItem wraps a placeholder for rendering.
func NewPlaceholderItem(placeholder Placeholder) Item {
	return Item{
		ID:          "placeholder:" + string(placeholder.Kind),
		Label:       placeholder.Message,
		Icon:        IconInfo,
		Placeholder: placeholder,
	}
}

// IsWorkspaceFile reports whether name ends with WorkspaceSuffix, ignoring case.
func IsWorkspaceFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), WorkspaceSuffix)
}

// DisplayName strips the workspace suffix, whatever its case, from name.
// A name made only of the suffix keeps its full form.
func DisplayName(name string) string {
	if !IsWorkspaceFile(name) || len(name) == len(WorkspaceSuffix) {
		return name
	}
	return name[:len(name)-len(WorkspaceSuffix)]
}
