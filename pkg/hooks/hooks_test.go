//go:build unit

package hooks

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lerenn/workspace-explorer/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHook struct {
	name     string
	priority int
	calls    *[]string
	err      error
}

func (h *recordingHook) Name() string  { return h.name }
func (h *recordingHook) Priority() int { return h.priority }

func (h *recordingHook) PreExecute(_ *HookContext) error {
	*h.calls = append(*h.calls, "pre:"+h.name)
	return h.err
}

func (h *recordingHook) PostExecute(_ *HookContext) error {
	*h.calls = append(*h.calls, "post:"+h.name)
	return h.err
}

func (h *recordingHook) OnError(_ *HookContext) error {
	*h.calls = append(*h.calls, "error:"+h.name)
	return h.err
}

func newContext(operation string) *HookContext {
	return &HookContext{
		OperationName: operation,
		Parameters:    map[string]interface{}{},
		Results:       map[string]interface{}{},
		Metadata:      map[string]interface{}{},
	}
}

func TestHookManager_PriorityOrder(t *testing.T) {
	hm := NewHookManager()
	var calls []string

	require.NoError(t, hm.RegisterPostHook("SetBaseFolder", &recordingHook{name: "late", priority: 300, calls: &calls}))
	require.NoError(t, hm.RegisterPostHook("SetBaseFolder", &recordingHook{name: "early", priority: 10, calls: &calls}))
	require.NoError(t, hm.RegisterPreHook("SetBaseFolder", &recordingHook{name: "pre", priority: 1, calls: &calls}))
	require.NoError(t, hm.RegisterErrorHook("SetBaseFolder", &recordingHook{name: "err", priority: 1, calls: &calls}))

	ctx := newContext("SetBaseFolder")
	require.NoError(t, hm.ExecutePreHooks("SetBaseFolder", ctx))
	require.NoError(t, hm.ExecutePostHooks("SetBaseFolder", ctx))
	require.NoError(t, hm.ExecuteErrorHooks("SetBaseFolder", ctx))
	require.NoError(t, hm.ExecutePostHooks("OpenWorkspace", ctx))

	assert.Equal(t, []string{"pre:pre", "post:early", "post:late", "error:err"}, calls)
}

func TestHookManager_HookFailure(t *testing.T) {
	hm := NewHookManager()
	var calls []string

	require.NoError(t, hm.RegisterPreHook("OpenWorkspace", &recordingHook{
		name: "guard", calls: &calls, err: errors.New("denied"),
	}))

	err := hm.ExecutePreHooks("OpenWorkspace", newContext("OpenWorkspace"))
	assert.ErrorContains(t, err, "pre-hook guard failed: denied")
}

func TestHookManager_NilHook(t *testing.T) {
	hm := NewHookManager()

	assert.ErrorIs(t, hm.RegisterPreHook("op", nil), ErrNilHook)
	assert.ErrorIs(t, hm.RegisterPostHook("op", nil), ErrNilHook)
	assert.ErrorIs(t, hm.RegisterErrorHook("op", nil), ErrNilHook)
}

type countingRefresher struct{ count int }

func (c *countingRefresher) Refresh() { c.count++ }

func TestRefreshHook(t *testing.T) {
	refresher := &countingRefresher{}
	hook := NewRefreshHook(refresher)

	ctx := newContext("SetBaseFolder")
	require.NoError(t, hook.PostExecute(ctx))

	ctx.Results["changed"] = false
	require.NoError(t, hook.PostExecute(ctx))

	ctx.Results["changed"] = true
	require.NoError(t, hook.PostExecute(ctx))

	assert.Equal(t, 2, refresher.count)
}

func TestLoggingHook(t *testing.T) {
	var buf bytes.Buffer
	hm := NewHookManager()
	require.NoError(t, NewLoggingHook(logger.NewWriterLogger(&buf)).RegisterForOperations(hm, "ListWorkspaces"))

	ctx := newContext("ListWorkspaces")
	require.NoError(t, hm.ExecutePreHooks("ListWorkspaces", ctx))
	require.NoError(t, hm.ExecutePostHooks("ListWorkspaces", ctx))
	ctx.Error = errors.New("boom")
	require.NoError(t, hm.ExecuteErrorHooks("ListWorkspaces", ctx))

	out := buf.String()
	assert.Contains(t, out, "Starting operation: ListWorkspaces")
	assert.Contains(t, out, "Operation completed: ListWorkspaces")
	assert.Contains(t, out, "Operation error: ListWorkspaces, error: boom")
}
