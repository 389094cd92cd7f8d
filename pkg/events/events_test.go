//go:build unit

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitter_NotifyInSubscriptionOrder(t *testing.T) {
	emitter := NewEmitter()

	var calls []string
	emitter.Subscribe(func() { calls = append(calls, "tree") })
	emitter.Subscribe(func() { calls = append(calls, "status") })

	emitter.Notify()
	emitter.Notify()

	assert.Equal(t, []string{"tree", "status", "tree", "status"}, calls)
}

func TestEmitter_Unsubscribe(t *testing.T) {
	emitter := NewEmitter()

	count := 0
	unsubscribe := emitter.Subscribe(func() { count++ })
	assert.Equal(t, 1, emitter.Len())

	emitter.Notify()
	unsubscribe()
	unsubscribe()
	emitter.Notify()

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, emitter.Len())
}

func TestEmitter_ListenerUnsubscribesDuringNotify(t *testing.T) {
	emitter := NewEmitter()

	count := 0
	var unsubscribe func()
	unsubscribe = emitter.Subscribe(func() {
		count++
		unsubscribe()
	})

	emitter.Notify()
	emitter.Notify()

	assert.Equal(t, 1, count)
}

func TestEmitter_NilListener(t *testing.T) {
	emitter := NewEmitter()

	unsubscribe := emitter.Subscribe(nil)
	unsubscribe()
	emitter.Notify()

	assert.Equal(t, 0, emitter.Len())
}
