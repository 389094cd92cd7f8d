package hooks

// Refresher is told that the listing must be rendered again.
type Refresher interface {
	Refresh()
}

// RefreshHook refreshes the listing after an operation changed its inputs.
// Operations that report Results["changed"] == false are skipped.
type RefreshHook struct {
	refresher Refresher
}

// NewRefreshHook creates a new RefreshHook instance.
func NewRefreshHook(refresher Refresher) *RefreshHook {
	return &RefreshHook{refresher: refresher}
}

// Name returns the hook name.
func (h *RefreshHook) Name() string {
	return "refresh"
}

// Priority returns the hook priority (lower numbers execute first).
func (h *RefreshHook) Priority() int {
	return 200
}

// PostExecute triggers the refresh.
func (h *RefreshHook) PostExecute(ctx *HookContext) error {
	if changed, ok := ctx.Results["changed"].(bool); ok && !changed {
		return nil
	}
	h.refresher.Refresh()
	return nil
}
