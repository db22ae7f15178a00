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

package rom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andreas-jonsson/virtualc8/emulator/memory"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral/ram"
	"github.com/andreas-jonsson/virtualc8/emulator/processor/cpu"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/afero"
)

func install(t *testing.T, dev *Device) *cpu.CPU {
	t.Helper()
	p, errs := cpu.NewCPU([]peripheral.Peripheral{&ram.Device{}, dev}, cpu.WithLogger(log.NewTestLogger(t)))
	for _, err := range errs {
		t.Error(err)
	}
	return p
}

func TestOpen(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, "/roms/pong.ch8", []byte{0x12, 0x34, 0x56}, 0644))
	assert.NoError(t, afero.WriteFile(fs, "/roms/huge.ch8", make([]byte, memory.MaxProgramSize+1), 0644))

	t.Run("Load", func(t *testing.T) {
		dev, err := Open(fs, "/roms/pong.ch8")
		assert.NoError(t, err)
		assert.Equal(t, "pong.ch8", dev.Name())

		p := install(t, dev)
		assert.Equal(t, 3, dev.Size())

		v, err := p.ReadByte(memory.ProgramStart + 2)
		assert.NoError(t, err)
		assert.Equal(t, byte(0x56), v)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := Open(fs, "/roms/missing.ch8")
		assert.True(t, strings.Contains(err.Error(), "could not read program image"))
	})

	t.Run("TooLarge", func(t *testing.T) {
		_, err := Open(fs, "/roms/huge.ch8")
		assert.True(t, errors.Is(err, memory.ErrLoad))
		assert.True(t, strings.Contains(err.Error(), "huge.ch8"))
	})
}

func TestReset(t *testing.T) {
	dev := &Device{Reader: bytes.NewReader([]byte{0xAA, 0xBB})}
	p := install(t, dev)
	assert.Equal(t, "ROM", dev.Name())

	assert.NoError(t, p.WriteByte(memory.ProgramStart, 0x00))
	p.Reset()

	v, err := p.ReadByte(memory.ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xAA), v)
}

func TestLoad(t *testing.T) {
	p := install(t, &Device{Reader: bytes.NewReader(nil)})

	err := Load(p, make([]byte, memory.MaxProgramSize+1))
	var le *memory.LoadError
	assert.True(t, errors.As(err, &le))

	v, err := p.ReadByte(memory.ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), v)

	assert.NoError(t, Load(p, []byte{0x01}))
	v, _ = p.ReadByte(memory.ProgramStart)
	assert.Equal(t, byte(0x01), v)
}
