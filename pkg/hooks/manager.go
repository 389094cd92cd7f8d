package hooks

import (
	"fmt"
	"sort"
	"sync"
)

// HookManager manages hook registration and execution.
type HookManager struct {
	preHooks   map[string][]PreHook
	postHooks  map[string][]PostHook
	errorHooks map[string][]ErrorHook
	mu         sync.RWMutex
}

// HookManagerInterface defines the interface for hook management.
type HookManagerInterface interface {
	// Hook registration.
	RegisterPreHook(operation string, hook PreHook) error
	RegisterPostHook(operation string, hook PostHook) error
	RegisterErrorHook(operation string, hook ErrorHook) error

	// Hook execution.
	ExecutePreHooks(operation string, ctx *HookContext) error
	ExecutePostHooks(operation string, ctx *HookContext) error
	ExecuteErrorHooks(operation string, ctx *HookContext) error
}

// NewHookManager creates a new HookManager instance.
func NewHookManager() HookManagerInterface {
	return &HookManager{
		preHooks:   make(map[string][]PreHook),
		postHooks:  make(map[string][]PostHook),
		errorHooks: make(map[string][]ErrorHook),
	}
}

// RegisterPreHook registers a pre-hook for a specific operation.
func (hm *HookManager) RegisterPreHook(operation string, hook PreHook) error {
	hm.mu.Lock()
	defer hm.mu.Unlock()

	if hook == nil {
		return ErrNilHook
	}

	hm.preHooks[operation] = append(hm.preHooks[operation], hook)
	sort.SliceStable(hm.preHooks[operation], func(i, j int) bool {
		return hm.preHooks[operation][i].Priority() < hm.preHooks[operation][j].Priority()
	})
	return nil
}

// RegisterPostHook registers a post-hook for a specific operation.
func (hm *HookManager) RegisterPostHook(operation string, hook PostHook) error {
	hm.mu.Lock()
	defer hm.mu.Unlock()

	if hook == nil {
		return ErrNilHook
	}

	hm.postHooks[operation] = append(hm.postHooks[operation], hook)
	sort.SliceStable(hm.postHooks[operation], func(i, j int) bool {
		return hm.postHooks[operation][i].Priority() < hm.postHooks[operation][j].Priority()
	})
	return nil
}

// RegisterErrorHook registers an error-hook for a specific operation.
func (hm *HookManager) RegisterErrorHook(operation string, hook ErrorHook) error {
	hm.mu.Lock()
	defer hm.mu.Unlock()

	if hook == nil {
		return ErrNilHook
	}

	hm.errorHooks[operation] = append(hm.errorHooks[operation], hook)
	sort.SliceStable(hm.errorHooks[operation], func(i, j int) bool {
		return hm.errorHooks[operation][i].Priority() < hm.errorHooks[operation][j].Priority()
	})
	return nil
}

// ExecutePreHooks executes all pre-hooks for a specific operation.
func (hm *HookManager) ExecutePreHooks(operation string, ctx *HookContext) error {
	hm.mu.RLock()
	hooks := append([]PreHook(nil), hm.preHooks[operation]...)
	hm.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook.PreExecute(ctx); err != nil {
			return fmt.Errorf("pre-hook %s failed: %w", hook.Name(), err)
		}
	}

	return nil
}

// ExecutePostHooks executes all post-hooks for a specific operation.
func (hm *HookManager) ExecutePostHooks(operation string, ctx *HookContext) error {
	hm.mu.RLock()
	hooks := append([]PostHook(nil), hm.postHooks[operation]...)
	hm.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook.PostExecute(ctx); err != nil {
			return fmt.Errorf("post-hook %s failed: %w", hook.Name(), err)
		}
	}

	return nil
}

// ExecuteErrorHooks executes all error-hooks for a specific operation.
func (hm *HookManager) ExecuteErrorHooks(operation string, ctx *HookContext) error {
	hm.mu.RLock()
	hooks := append([]ErrorHook(nil), hm.errorHooks[operation]...)
	hm.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook.OnError(ctx); err != nil {
			return fmt.Errorf("error-hook %s failed: %w", hook.Name(), err)
		}
	}

	return nil
}
