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

package display

import (
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
)

const (
	Width  = 64
	Height = 32

	PixelOn  uint32 = 0xFFFFFFFF
	PixelOff uint32 = 0
)

type Device struct {
	pixels [Width * Height]uint32
	dirty  bool
}

func (m *Device) Install(p processor.Processor) error {
	m.Reset()
	return nil
}

func (m *Device) Name() string {
	return "Monochrome Display (64x32)"
}

func (m *Device) Reset() {
	m.Clear()
}

func (m *Device) Step(int) error {
	return nil
}

func (m *Device) Clear() {
	m.pixels = [Width * Height]uint32{}
	m.dirty = true
}

// DrawSprite XORs an 8 pixel wide sprite onto the framebuffer. The origin
// wraps around the screen but the sprite itself is clipped at the edges.
// It returns true if any lit pixel was turned off.
func (m *Device) DrawSprite(x, y int, sprite []byte) bool {
	x %= Width
	y %= Height

	var collision bool
	for row, data := range sprite {
		py := y + row
		if py >= Height {
			break
		}
		for col := 0; col < 8; col++ {
			px := x + col
			if px >= Width {
				break
			}
			if data&(0x80>>col) == 0 {
				continue
			}

			p := &m.pixels[py*Width+px]
			if *p == PixelOn {
				collision = true
			}
			*p ^= PixelOn
		}
	}

	m.dirty = true
	return collision
}

// Pixels returns a copy of the framebuffer in row-major order.
func (m *Device) Pixels() []uint32 {
	pixels := make([]uint32, len(m.pixels))
	copy(pixels, m.pixels[:])
	return pixels
}

func (m *Device) Pixel(x, y int) bool {
	return m.pixels[(y%Height)*Width+x%Width] == PixelOn
}

// Dirty reports if the framebuffer changed since the last call.
func (m *Device) Dirty() bool {
	d := m.dirty
	m.dirty = false
	return d
}

// Blit converts the framebuffer to RGBA bytes using the 0xRRGGBB colors
// fg and bg. dst must hold at least Width*Height*4 bytes.
func (m *Device) Blit(dst []byte, fg, bg uint32) {
	for i, v := range m.pixels {
		color := bg
		if v == PixelOn {
			color = fg
		}

		offset := i * 4
		dst[offset] = byte(color >> 16)
		dst[offset+1] = byte(color >> 8)
		dst[offset+2] = byte(color)
		dst[offset+3] = 0xFF
	}
}
