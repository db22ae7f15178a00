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

package ram

import (
	"github.com/andreas-jonsson/virtualc8/emulator/memory"
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
	"github.com/retroenv/retrogolib/log"
)

const Size = memory.Size

// Font holds the 16 hexadecimal glyphs, five rows each, bit 7 leftmost.
var Font = [memory.FontLength]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

type Device struct {
	Logger *log.Logger

	mem [Size]byte
}

func (m *Device) Install(p processor.Processor) error {
	m.Reset()
	return p.InstallMemoryDevice(m, 0x0, Size-1)
}

func (m *Device) Name() string {
	return "RAM"
}

func (m *Device) Reset() {
	m.mem = [Size]byte{}
	copy(m.mem[memory.FontBase:], Font[:])
}

func (m *Device) Step(int) error {
	return nil
}

func (m *Device) ReadByte(addr memory.Address) byte {
	return m.mem[addr]
}

func (m *Device) WriteByte(addr memory.Address, data byte) {
	if isGlyph(addr) {
		if m.Logger != nil {
			m.Logger.Debug("Ignored write to glyph memory", log.Stringer("address", addr), log.Uint8("data", data))
		}
		return
	}
	m.mem[addr] = data
}

func isGlyph(addr memory.Address) bool {
	return addr >= memory.FontBase && addr < memory.FontBase+memory.FontLength
}
