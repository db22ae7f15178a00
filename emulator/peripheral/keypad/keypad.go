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
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
	"github.com/pkg/errors"
)

const (
	NumKeys   = 16
	MaxEvents = 64
)

var ErrQueueFull = errors.New("event queue is full")

type Event struct {
	Key     byte
	Pressed bool
}

// Device tracks the 16 key states. Host events are queued by SendKeyEvent
// and applied at the start of each CPU cycle.
type Device struct {
	keys    [NumKeys]bool
	events  chan Event
	pending *Event
}

// Install keeps the event queue of a previous installation so a host can
// hold on to the device across machine rebuilds.
func (m *Device) Install(p processor.Processor) error {
	if m.events == nil {
		m.events = make(chan Event, MaxEvents)
	}
	return nil
}

func (m *Device) Name() string {
	return "Hexadecimal Keypad"
}

func (m *Device) Reset() {
	m.keys = [NumKeys]bool{}
	m.pending = nil
	for {
		select {
		case <-m.events:
		default:
			return
		}
	}
}

// Step applies queued events. A key changing twice within the same batch
// is deferred to the next cycle so every press is visible for at least one
// instruction.
func (m *Device) Step(int) error {
	var changed [NumKeys]bool
	for {
		ev := m.pending
		if ev == nil {
			select {
			case e := <-m.events:
				ev = &e
			default:
				return nil
			}
		}

		k := clamp(ev.Key)
		if changed[k] {
			m.pending = ev
			return nil
		}
		m.pending = nil
		changed[k] = m.keys[k] != ev.Pressed
		m.keys[k] = ev.Pressed
	}
}

// SendKeyEvent is safe to call from another goroutine.
func (m *Device) SendKeyEvent(ev Event) error {
	select {
	case m.events <- ev:
		return nil
	default:
		return ErrQueueFull
	}
}

// SetKey changes a key state immediately. Only call it between cycles on
// the goroutine driving the CPU.
func (m *Device) SetKey(key byte, pressed bool) {
	m.keys[clamp(key)] = pressed
}

func (m *Device) IsPressed(key byte) bool {
	return m.keys[clamp(key)]
}

// FirstPressed returns the lowest pressed key index.
func (m *Device) FirstPressed() (byte, bool) {
	for i, pressed := range m.keys {
		if pressed {
			return byte(i), true
		}
	}
	return 0, false
}

// Out of range indices saturate to the last key.
func clamp(key byte) byte {
	if key >= NumKeys {
		return NumKeys - 1
	}
	return key
}
