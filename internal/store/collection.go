// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "slices"

type entry[T any] interface {
	GetID() string
	Clone() T
}

// collection is an insertion-ordered map. It is not safe for concurrent use;
// QueueStore guards it.
type collection[T entry[T]] struct {
	order []string
	items map[string]T
}

func newCollection[T entry[T]]() *collection[T] {
	return &collection[T]{items: make(map[string]T)}
}

// put inserts v or replaces the entry with the same id in place.
func (c *collection[T]) put(v T) {
	id := v.GetID()
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = v.Clone()
}

// update replaces an existing entry and reports whether it was found.
func (c *collection[T]) update(v T) bool {
	id := v.GetID()
	if _, ok := c.items[id]; !ok {
		return false
	}
	c.items[id] = v.Clone()
	return true
}

func (c *collection[T]) remove(id string) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	c.order = slices.DeleteFunc(c.order, func(s string) bool { return s == id })
	return true
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return v.Clone(), true
}

func (c *collection[T]) all() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id].Clone())
	}
	return out
}

func (c *collection[T]) len() int {
	return len(c.order)
}

func (c *collection[T]) clear() {
	c.order = nil
	c.items = make(map[string]T)
}

// reset replaces the contents with vs, dropping entries without an id and
// keeping the last entry of duplicated ids.
func (c *collection[T]) reset(vs []T) {
	c.clear()
	for _, v := range vs {
		if v.GetID() == "" {
			continue
		}
		c.put(v)
	}
}
