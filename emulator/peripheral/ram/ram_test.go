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
	"testing"

	"github.com/andreas-jonsson/virtualc8/emulator/memory"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestGlyphs(t *testing.T) {
	m := &Device{Logger: log.NewTestLogger(t)}
	m.Reset()

	for i, v := range Font {
		assert.Equal(t, v, m.ReadByte(memory.FontBase+memory.Address(i)))
	}
	assert.Equal(t, byte(0), m.ReadByte(memory.FontBase-1))
	assert.Equal(t, byte(0), m.ReadByte(memory.FontBase+memory.FontLength))

	m.WriteByte(memory.FontBase, 0x00)
	m.WriteByte(memory.FontBase+memory.FontLength-1, 0x00)
	assert.Equal(t, Font[0], m.ReadByte(memory.FontBase))
	assert.Equal(t, Font[memory.FontLength-1], m.ReadByte(memory.FontBase+memory.FontLength-1))
}

func TestReadWrite(t *testing.T) {
	m := &Device{}
	m.Reset()

	m.WriteByte(0x000, 0x11)
	m.WriteByte(0xFFF, 0x22)
	assert.Equal(t, byte(0x11), m.ReadByte(0x000))
	assert.Equal(t, byte(0x22), m.ReadByte(0xFFF))

	m.Reset()
	assert.Equal(t, byte(0), m.ReadByte(0x000))
	assert.Equal(t, byte(0), m.ReadByte(0xFFF))
}
