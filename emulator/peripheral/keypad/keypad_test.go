/*
Copyright (c) 2019-2021 Andreas T Jonsson

This software is provided 'as-is', without any express or implied
warranty. In no event will the authors be held liable for any damages
arising from the use of this software.

Permission is granted to anyone to use this software for any purpose,
including commercial applications, and to alter it and redistribute it
freely, subject to the following restrictions:

1. The origin of this software must not be misrepresented; you must not
   claim that you wrote the original software. If you use this software
   in a product, an acknowledgment in the product documentation would be
   appreciated but is not required.
2. Altered source versions must be plainly marked as such, and must not be
   misrepresented as being the original software.
3. This notice may not be removed or altered from any source distribution.
*/

package keypad

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func newDevice(t *testing.T) *Device {
	m := &Device{}
	assert.NoError(t, m.Install(nil))
	return m
}

func TestSetKey(t *testing.T) {
	m := newDevice(t)
	_, ok := m.FirstPressed()
	assert.False(t, ok)

	m.SetKey(0x1A, true)
	assert.False(t, m.IsPressed(0xA))
	assert.True(t, m.IsPressed(0xF))
	assert.True(t, m.IsPressed(0x2A))
	m.SetKey(0xF, false)

	m.SetKey(0xA, true)
	m.SetKey(0x3, true)
	k, ok := m.FirstPressed()
	assert.True(t, ok)
	assert.Equal(t, byte(0x3), k)

	m.Reset()
	assert.False(t, m.IsPressed(0xA))

	assert.NoError(t, m.SendKeyEvent(Event{Key: 0x20, Pressed: true}))
	assert.NoError(t, m.Step(0))
	assert.True(t, m.IsPressed(0xF))
}

func TestEvents(t *testing.T) {
	t.Run("AppliedOnStep", func(t *testing.T) {
		m := newDevice(t)
		assert.NoError(t, m.SendKeyEvent(Event{Key: 0x4, Pressed: true}))
		assert.NoError(t, m.SendKeyEvent(Event{Key: 0x5, Pressed: true}))
		assert.False(t, m.IsPressed(0x4))

		assert.NoError(t, m.Step(0))
		assert.True(t, m.IsPressed(0x4))
		assert.True(t, m.IsPressed(0x5))
	})

	t.Run("PressVisibleForOneStep", func(t *testing.T) {
		m := newDevice(t)
		assert.NoError(t, m.SendKeyEvent(Event{Key: 0x9, Pressed: true}))
		assert.NoError(t, m.SendKeyEvent(Event{Key: 0x9}))
		assert.NoError(t, m.SendKeyEvent(Event{Key: 0x1, Pressed: true}))

		assert.NoError(t, m.Step(0))
		assert.True(t, m.IsPressed(0x9))
		assert.False(t, m.IsPressed(0x1))

		assert.NoError(t, m.Step(0))
		assert.False(t, m.IsPressed(0x9))
		assert.True(t, m.IsPressed(0x1))
	})

	t.Run("QueueFull", func(t *testing.T) {
		m := newDevice(t)
		for i := 0; i < MaxEvents; i++ {
			assert.NoError(t, m.SendKeyEvent(Event{Key: byte(i), Pressed: i%2 == 0}))
		}
		assert.Equal(t, ErrQueueFull, m.SendKeyEvent(Event{}))

		m.Reset()
		assert.NoError(t, m.SendKeyEvent(Event{}))
	})

	t.Run("NotInstalled", func(t *testing.T) {
		m := &Device{}
		assert.Error(t, m.SendKeyEvent(Event{Key: 1, Pressed: true}), "event queue is full")
		assert.NoError(t, m.Step(0))
	})
}
