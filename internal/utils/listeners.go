// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"sync"
)

// Listeners is an ordered set of callbacks receiving values of type T.
//
// Notify calls listeners synchronously in registration order. A panicking
// listener is recovered and reported through the onPanic hook so that it
// cannot affect the notifier or the remaining listeners.
type Listeners[T any] struct {
	mu      sync.RWMutex
	nextID  uint64
	entries []listenerEntry[T]
	onPanic func(error)
}

type listenerEntry[T any] struct {
	id uint64
	fn func(T)
}

// NewListeners returns an empty set. onPanic may be nil.
func NewListeners[T any](onPanic func(error)) *Listeners[T] {
	return &Listeners[T]{onPanic: onPanic}
}

// Add registers fn and returns a function that removes it. The returned
// function is idempotent.
func (l *Listeners[T]) Add(fn func(T)) (remove func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, listenerEntry[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(id) })
	}
}

func (l *Listeners[T]) remove(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered listeners.
func (l *Listeners[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Notify delivers v to every listener registered at the time of the call.
func (l *Listeners[T]) Notify(v T) {
	l.mu.RLock()
	snapshot := make([]listenerEntry[T], len(l.entries))
	copy(snapshot, l.entries)
	l.mu.RUnlock()

	for _, e := range snapshot {
		l.call(e.fn, v)
	}
}

func (l *Listeners[T]) call(fn func(T), v T) {
	defer func() {
		if r := recover(); r != nil && l.onPanic != nil {
			l.onPanic(fmt.Errorf("listener panic: %v", r))
		}
	}()
	fn(v)
}
