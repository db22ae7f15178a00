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

package timer

import (
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
)

// Hz is the nominal rate Tick is expected to be called at.
const Hz = 60

// Device holds the delay and sound timers. It never counts on its own;
// the host calls Tick at Hz.
type Device struct {
	delay, sound byte
}

func (m *Device) Install(p processor.Processor) error {
	return nil
}

func (m *Device) Name() string {
	return "Delay/Sound Timer"
}

func (m *Device) Reset() {
	*m = Device{}
}

func (m *Device) Step(int) error {
	return nil
}

func (m *Device) Tick() {
	if m.delay > 0 {
		m.delay--
	}
	if m.sound > 0 {
		m.sound--
	}
}

func (m *Device) Delay() byte {
	return m.delay
}

func (m *Device) Sound() byte {
	return m.sound
}

func (m *Device) SetDelay(v byte) {
	m.delay = v
}

func (m *Device) SetSound(v byte) {
	m.sound = v
}

// Beeping reports whether the sound timer is active.
func (m *Device) Beeping() bool {
	return m.sound > 0
}
