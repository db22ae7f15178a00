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

package emulator

import (
	"strings"
	"testing"
	"time"

	"github.com/andreas-jonsson/virtualc8/config"
	"github.com/andreas-jonsson/virtualc8/emulator/memory"
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
	"github.com/andreas-jonsson/virtualc8/platform"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/afero"
)

type headless struct {
	fs      afero.Fs
	frames  [][]byte
	title   string
	handler platform.KeyHandler
}

func (h *headless) FileSystem() afero.Fs {
	return h.fs
}

func (h *headless) RenderGraphics(backBuffer []byte) {
	frame := make([]byte, len(backBuffer))
	copy(frame, backBuffer)
	h.frames = append(h.frames, frame)
}

func (h *headless) SetTitle(title string) {
	h.title = title
}

func (h *headless) SetKeyboardHandler(handler platform.KeyHandler) {
	h.handler = handler
}

func newEmulator(t *testing.T, image []byte) (*Emulator, *headless) {
	h := &headless{fs: afero.NewMemMapFs()}
	assert.NoError(t, afero.WriteFile(h.fs, "/roms/test.ch8", image, 0644))

	s := config.Default()
	s.InstructionsPerSecond = 600
	s.Foreground = 0x00FF00

	e := New(h, s, log.NewTestLogger(t))
	t.Cleanup(e.Close)
	assert.True(t, h.handler != nil)
	return e, h
}

func TestFrame(t *testing.T) {
	// Draw glyph 1 at (0,0) then spin.
	e, h := newEmulator(t, []byte{0x60, 0x01, 0xF0, 0x29, 0x61, 0x00, 0xD1, 0x15, 0x12, 0x08})
	assert.NoError(t, e.Frame(time.Second/60))
	assert.Equal(t, 0, len(h.frames))

	assert.NoError(t, e.Load("/roms/test.ch8"))
	assert.NoError(t, e.Frame(time.Second/60))
	assert.Equal(t, 1, len(h.frames))

	// Glyph 1 starts with 0x20, so only x=2 is lit on the first row.
	frame := h.frames[0]
	assert.Equal(t, byte(0x00), frame[1])
	assert.Equal(t, byte(0xFF), frame[2*4+1])
	assert.Equal(t, byte(0xFF), frame[2*4+3])

	assert.NoError(t, e.Frame(time.Second/60))
	assert.Equal(t, 1, len(h.frames))

	e.updateTitle(time.Second)
	assert.True(t, strings.Contains(h.title, "test.ch8"))
}

func TestBudget(t *testing.T) {
	e, _ := newEmulator(t, []byte{0x70, 0x01, 0x12, 0x00})
	assert.NoError(t, e.Load("/roms/test.ch8"))

	assert.NoError(t, e.Frame(10*time.Millisecond))
	assert.Equal(t, uint64(6), e.cpu.GetStats().NumInstructions)

	// A long stall is capped to a tenth of a second worth of instructions.
	assert.NoError(t, e.Frame(5*time.Second))
	assert.Equal(t, uint64(60), e.cpu.GetStats().NumInstructions)
}

func TestKeys(t *testing.T) {
	// Wait for a key, store it in V0.
	e, h := newEmulator(t, []byte{0xF0, 0x0A, 0x12, 0x02})
	assert.NoError(t, e.Load("/roms/test.ch8"))

	assert.NoError(t, e.Frame(10*time.Millisecond))
	assert.Equal(t, uint16(memory.ProgramStart), e.cpu.PC)

	h.handler("p", true)
	h.handler("v", true)
	assert.NoError(t, e.Frame(10*time.Millisecond))
	assert.Equal(t, byte(0xF), e.cpu.V[0])
}

func TestTimersAndReset(t *testing.T) {
	e, _ := newEmulator(t, []byte{0x60, 0x05, 0xF0, 0x15, 0x12, 0x04})
	e.TickTimers()

	assert.NoError(t, e.Load("/roms/test.ch8"))
	assert.NoError(t, e.Frame(10*time.Millisecond))
	e.TickTimers()
	e.TickTimers()

	assert.Equal(t, uint64(2), e.cpu.GetStats().NumTimerTicks)

	e.Reset()
	assert.Equal(t, uint16(memory.ProgramStart), e.cpu.PC)
	assert.Equal(t, byte(0), e.cpu.V[0])
}

func TestSoundTitle(t *testing.T) {
	// Set the sound timer to 2 then spin.
	e, h := newEmulator(t, []byte{0x60, 0x02, 0xF0, 0x18, 0x12, 0x04})
	assert.NoError(t, e.Load("/roms/test.ch8"))
	assert.NoError(t, e.Frame(10*time.Millisecond))

	e.updateTitle(time.Second)
	assert.True(t, strings.HasSuffix(h.title, " - BEEP"))

	e.TickTimers()
	e.TickTimers()
	e.updateTitle(time.Second)
	assert.False(t, strings.Contains(h.title, "BEEP"))
}

func TestLoadErrors(t *testing.T) {
	e, h := newEmulator(t, nil)
	assert.NoError(t, afero.WriteFile(h.fs, "/roms/huge.ch8", make([]byte, memory.Size), 0644))

	err := e.Load("/roms/huge.ch8")
	assert.True(t, errors.Is(err, memory.ErrLoad))
	assert.True(t, e.Load("/roms/missing.ch8") != nil)
	assert.True(t, e.cpu == nil)
}

func TestHalt(t *testing.T) {
	e, _ := newEmulator(t, []byte{0x00, 0xEE})
	assert.NoError(t, e.Load("/roms/test.ch8"))
	assert.True(t, errors.Is(e.Frame(10*time.Millisecond), processor.ErrStackUnderflow))
}
