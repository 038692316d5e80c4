// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-keeper/internal/clock"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
)

func newAutoSave(t *testing.T) (*formAutoSave, *store.QueueStore, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(epoch)
	queue := store.NewQueueStore(store.NewMemoryKV(), clk, utils.NewUUIDGenerator(), logger.Nop())
	t.Cleanup(func() { _ = queue.Close() })
	return NewFormAutoSave(queue, clk, 2*time.Second, logger.Nop()).(*formAutoSave), queue, clk
}

func TestFormAutoSave_DebouncesToLastSnapshot(t *testing.T) {
	a, queue, clk := newAutoSave(t)

	a.Save("timer-form", json.RawMessage(`{"project":"A"}`))
	clk.Advance(time.Second)
	a.Save("timer-form", json.RawMessage(`{"project":"AC"}`))
	clk.Advance(time.Second)
	a.Save("timer-form", json.RawMessage(`{"project":"ACM"}`))

	clk.Advance(2*time.Second - time.Millisecond)
	_, ok := queue.GetDraft("timer-form")
	assert.False(t, ok, "nothing is written before the form is idle")

	clk.Advance(time.Millisecond)
	d, ok := queue.GetDraft("timer-form")
	require.True(t, ok)
	assert.JSONEq(t, `{"project":"ACM"}`, string(d.Data))
	assert.Equal(t, epoch.Add(4*time.Second), d.SavedAt)

	saved, ok := a.LastSaved("timer-form")
	require.True(t, ok)
	assert.Equal(t, d.SavedAt, saved)
	assert.Zero(t, clk.Pending())
}

func TestFormAutoSave_FormsAreIndependent(t *testing.T) {
	a, queue, clk := newAutoSave(t)

	a.Save("a", json.RawMessage(`1`))
	clk.Advance(time.Second)
	a.Save("b", json.RawMessage(`2`))

	clk.Advance(time.Second)
	_, okA := queue.GetDraft("a")
	_, okB := queue.GetDraft("b")
	assert.True(t, okA)
	assert.False(t, okB)

	clk.Advance(time.Second)
	assert.Equal(t, 2, queue.DraftCount())
}

func TestFormAutoSave_SnapshotIsCopied(t *testing.T) {
	a, queue, clk := newAutoSave(t)

	data := json.RawMessage(`{"n":1}`)
	a.Save("f", data)
	data[5] = '9'

	clk.Advance(2 * time.Second)
	d, _ := queue.GetDraft("f")
	assert.Equal(t, `{"n":1}`, string(d.Data))
}

func TestFormAutoSave_ClearDraft(t *testing.T) {
	a, queue, clk := newAutoSave(t)

	a.Save("f", json.RawMessage(`{"v":1}`))
	clk.Advance(2 * time.Second)
	a.Save("f", json.RawMessage(`{"v":2}`))

	a.ClearDraft("f")
	clk.Advance(time.Minute)

	_, ok := queue.GetDraft("f")
	assert.False(t, ok, "pending write cancelled and stored draft removed")
	_, ok = a.LastSaved("f")
	assert.False(t, ok)
}

func TestFormAutoSave_ClearDuringWriteIsNotUndone(t *testing.T) {
	tests := []struct {
		name  string
		clear func(a *formAutoSave)
	}{
		{name: "clear draft", clear: func(a *formAutoSave) { a.ClearDraft("timer-form") }},
		{name: "cancel all", clear: func(a *formAutoSave) { a.CancelAll() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, queue, _ := newAutoSave(t)

			a.Save("timer-form", json.RawMessage(`{"project":"Acme"}`))
			a.mu.Lock()
			p := a.pending["timer-form"]
			a.mu.Unlock()

			// The timer has taken the snapshot but not written it yet.
			data, gen, ok := a.take("timer-form", p)
			require.True(t, ok)

			tt.clear(a)
			a.write("timer-form", data, gen)

			_, stored := queue.GetDraft("timer-form")
			assert.False(t, stored, "a cleared draft is not written back")
			_, saved := a.LastSaved("timer-form")
			assert.False(t, saved)
		})
	}
}

func TestFormAutoSave_CancelAllKeepsStoredDrafts(t *testing.T) {
	a, queue, clk := newAutoSave(t)

	a.Save("stored", json.RawMessage(`{}`))
	clk.Advance(2 * time.Second)
	a.Save("stored", json.RawMessage(`{"changed":true}`))
	a.Save("pending", json.RawMessage(`{}`))

	a.CancelAll()
	clk.Advance(time.Minute)

	d, ok := queue.GetDraft("stored")
	require.True(t, ok)
	assert.Equal(t, `{}`, string(d.Data))
	_, ok = queue.GetDraft("pending")
	assert.False(t, ok)
	assert.Zero(t, clk.Pending())
}

func TestFormAutoSave_FlushAll(t *testing.T) {
	a, queue, clk := newAutoSave(t)

	a.Save("b", json.RawMessage(`2`))
	a.Save("a", json.RawMessage(`1`))
	a.FlushAll()

	assert.Equal(t, 2, queue.DraftCount())
	assert.Zero(t, clk.Pending())

	clk.Advance(time.Minute)
	assert.Equal(t, 2, queue.DraftCount())
}

func TestFormAutoSave_CloseStopsAcceptingSnapshots(t *testing.T) {
	a, queue, clk := newAutoSave(t)

	a.Save("f", json.RawMessage(`1`))
	a.Close()
	a.Save("g", json.RawMessage(`2`))

	clk.Advance(time.Minute)
	assert.Zero(t, queue.DraftCount())
}

func TestFormAutoSave_ConcurrentSaves(t *testing.T) {
	a, queue, clk := newAutoSave(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Save("f", json.RawMessage(`{"burst":true}`))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, clk.Pending())
	clk.Advance(2 * time.Second)
	assert.Equal(t, 1, queue.DraftCount())
}
