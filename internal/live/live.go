// Package live implements an observable value.
//
// A Value holds the latest version of some data. Subscribers receive the
// current version immediately and a new version on every change, which is
// how UI state is pushed to views observing the store.
package live

import "sync"

// Value is an observable value of type T.
type Value[T any] struct {
	mu      sync.Mutex
	current T
	subs    map[int]chan T
	next    int
}

// NewValue returns a Value holding the initial value.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		current: initial,
		subs:    make(map[int]chan T),
	}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.current
}

// Set replaces the current value and notifies all subscribers.
//
// Subscribers that have not consumed the previous notification only see
// the newest value. Intermediate values are conflated, a consumer always
// renders the latest state.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.current = value
	for _, ch := range v.subs {
		send(ch, value)
	}
}

// Update atomically replaces the current value with the result of fn and
// notifies all subscribers.
func (v *Value[T]) Update(fn func(T) T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.current = fn(v.current)
	for _, ch := range v.subs {
		send(ch, v.current)
	}
}

// Subscribe registers a subscriber. The returned channel immediately
// carries the current value and every subsequent change.
//
// The cancel function removes the subscription and closes the channel.
// It must be called when the subscriber goes away.
func (v *Value[T]) Subscribe() (<-chan T, func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.next
	v.next++

	ch := make(chan T, 1)
	ch <- v.current
	v.subs[id] = ch

	cancel := func() {
		v.mu.Lock()
		defer v.mu.Unlock()

		if sub, ok := v.subs[id]; ok {
			delete(v.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// send delivers a value without blocking by replacing an unconsumed
// notification.
func send[T any](ch chan T, value T) {
	for {
		select {
		case ch <- value:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
