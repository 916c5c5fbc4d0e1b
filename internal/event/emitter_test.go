// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitter_PriorityOrder(t *testing.T) {
	var em Emitter
	var calls []string

	record := func(name string) Listener {
		return func(info *Info, data any) { calls = append(calls, name) }
	}

	em.On("execute", record("normal-1"), PriorityNormal)
	em.On("execute", record("low"), PriorityLow)
	em.On("execute", record("high"), PriorityHigh)
	em.On("execute", record("normal-2"), PriorityNormal)
	em.On("execute", record("highest"), PriorityHighest)

	em.Fire("execute", nil)

	assert.Equal(t, []string{"highest", "high", "normal-1", "normal-2", "low"}, calls)
}

func TestEmitter_StopShortCircuits(t *testing.T) {
	var em Emitter
	defaultRan := false

	em.On("execute", func(info *Info, data any) { defaultRan = true }, PriorityNormal)
	em.On("execute", func(info *Info, data any) {
		if data == "claim" {
			info.Stop()
		}
	}, PriorityHigh)

	info := em.Fire("execute", "claim")
	require.True(t, info.Stopped())
	assert.False(t, defaultRan, "default listener must not run after Stop")

	info = em.Fire("execute", "other")
	assert.False(t, info.Stopped())
	assert.True(t, defaultRan)
}

func TestEmitter_Off(t *testing.T) {
	var em Emitter
	count := 0

	off := em.On("change", func(info *Info, data any) { count++ }, PriorityNormal)
	em.Fire("change", nil)
	off()
	em.Fire("change", nil)

	assert.Equal(t, 1, count)
	assert.False(t, em.Has("change"))

	// Calling off twice is harmless.
	off()
}

func TestEmitter_ReturnAndSource(t *testing.T) {
	em := Emitter{Source: "cmd"}
	em.On("execute", func(info *Info, data any) {
		info.Return = data.(int) * 2
	}, PriorityNormal)

	info := em.Fire("execute", 21)
	assert.Equal(t, 42, info.Return)
	assert.Equal(t, "cmd", info.Source)
	assert.Equal(t, "execute", info.Name)
}

func TestEmitter_ListenerAddedWhileFiring(t *testing.T) {
	var em Emitter
	late := 0

	em.On("x", func(info *Info, data any) {
		em.On("x", func(info *Info, data any) { late++ }, PriorityNormal)
	}, PriorityNormal)

	em.Fire("x", nil)
	assert.Equal(t, 0, late, "listeners added during Fire run on the next Fire")

	em.Fire("x", nil)
	assert.Equal(t, 1, late)
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{"high", PriorityHigh, false},
		{"HIGHEST", PriorityHighest, false},
		{"", PriorityNormal, false},
		{"low", PriorityLow, false},
		{"lowest", PriorityLowest, false},
		{"urgent", PriorityNormal, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParsePriority(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) Priority {
	t.Helper()
	p, err := ParsePriority(s)
	require.NoError(t, err)
	return p
}
