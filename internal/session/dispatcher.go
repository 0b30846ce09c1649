// Package session owns the mutable side of the store: each browser session
// gets a Dispatcher that serializes action dispatches over its own state, and
// the Manager keeps the session table. The transition function itself stays
// pure; logging, metrics and subscriptions happen here.
package session

import (
	"sync"

	"go.uber.org/zap"

	"bakery-service/internal/store"
	"bakery-service/internal/util"
)

// Listener is notified with the state produced by a dispatch
type Listener func(store.AppState)

// Dispatcher holds one session's state and applies actions to it. All
// mutations go through Dispatch, which serializes them; there is no other
// write path.
type Dispatcher struct {
	mu        sync.Mutex
	state     store.AppState
	listeners map[int]Listener
	nextID    int
	logger    *zap.Logger
}

// NewDispatcher creates a dispatcher starting from the given state
func NewDispatcher(initial store.AppState) *Dispatcher {
	return &Dispatcher{
		state:     initial,
		listeners: make(map[int]Listener),
		logger:    util.GetLogger(),
	}
}

// Dispatch applies the action and returns the resulting state. Listeners are
// invoked after the state has been swapped in, outside the lock.
func (d *Dispatcher) Dispatch(action store.Action) store.AppState {
	d.mu.Lock()
	next := store.Transition(d.state, action)
	d.state = next

	listeners := make([]Listener, 0, len(d.listeners))
	for _, fn := range d.listeners {
		listeners = append(listeners, fn)
	}
	d.mu.Unlock()

	util.ActionsDispatchedTotal.WithLabelValues(action.Kind()).Inc()
	d.logger.Debug("Action dispatched", zap.String("kind", action.Kind()))

	for _, fn := range listeners {
		fn(next)
	}
	return next
}

// State returns the current state snapshot
func (d *Dispatcher) State() store.AppState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Subscribe registers a listener for future dispatches and returns a function
// that removes it again
func (d *Dispatcher) Subscribe(fn Listener) func() {
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.listeners[id] = fn
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.listeners, id)
		d.mu.Unlock()
	}
}
