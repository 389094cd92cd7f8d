// Package events provides the change-notification channel between the
// workspace listing and the views rendering it.
package events

import "sync"

// Listener is called when the observed listing changed. It carries no payload:
// the receiver is expected to query the listing again.
type Listener func()

// Emitter fans a change notification out to its subscribers.
type Emitter struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
	order     []int
}

// NewEmitter creates an Emitter without subscribers.
func NewEmitter() *Emitter {
	return &Emitter{
		listeners: make(map[int]Listener),
	}
}

// Subscribe registers listener and returns the function removing it.
// Calling the returned function more than once has no further effect.
func (e *Emitter) Subscribe(listener Listener) func() {
	if listener == nil {
		return func() {}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.listeners[id] = listener
	e.order = append(e.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { e.unsubscribe(id) })
	}
}

// Notify calls every listener in subscription order.
// Listeners are snapshotted first so they may subscribe or unsubscribe while running.
func (e *Emitter) Notify() {
	e.mu.Lock()
	snapshot := make([]Listener, 0, len(e.order))
	for _, id := range e.order {
		snapshot = append(snapshot, e.listeners[id])
	}
	e.mu.Unlock()

	for _, listener := range snapshot {
		listener()
	}
}

// Len returns the number of active subscribers.
func (e *Emitter) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners)
}

func (e *Emitter) unsubscribe(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.listeners, id)
	for i, current := range e.order {
		if current == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}
