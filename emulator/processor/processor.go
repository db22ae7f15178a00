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

package processor

import (
	"github.com/andreas-jonsson/virtualc8/emulator/memory"
	"github.com/pkg/errors"
)

type Stats struct {
	NumInstructions uint64
	NumUnknown      uint64
	NumDraws        uint64
	NumTimerTicks   uint64
}

var (
	ErrCPUHalt        = errors.New("CPU HALT")
	ErrStackOverflow  = errors.New("stack overflow")
	ErrStackUnderflow = errors.New("stack underflow")
)

type Debug interface {
	GetStats() Stats
}

// Timers is implemented by the peripheral holding the delay and sound timers.
type Timers interface {
	Delay() byte
	Sound() byte
	SetDelay(v byte)
	SetSound(v byte)
	Tick()
}

// Keypad is the read-only view of the 16 key states.
type Keypad interface {
	IsPressed(key byte) bool
	FirstPressed() (byte, bool)
}

type Display interface {
	Clear()
	DrawSprite(x, y int, sprite []byte) bool
}

type Processor interface {
	Debug

	ReadByte(addr memory.Address) (byte, error)
	WriteByte(addr memory.Address, data byte) error

	GetMappedMemoryDevice(addr memory.Address) memory.Memory

	InstallMemoryDevice(device memory.Memory, from, to memory.Address) error
}
