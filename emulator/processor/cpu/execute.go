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

package cpu

import (
	"fmt"

	"github.com/andreas-jonsson/virtualc8/emulator/memory"
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
	"github.com/retroenv/retrogolib/log"
)

func (p *CPU) execute(inst Instruction) error {
	p.cycles++
	p.stats.NumInstructions++

	x, y := inst.X, inst.Y
	switch inst.Op {
	case OpUnknown:
		p.stats.NumUnknown++
		p.logger.Debug("Unknown opcode", log.Uint16("opcode", p.opcode), log.Uint16("pc", p.decodeAt))
	case OpCLS:
		p.display.Clear()
	case OpRET:
		addr, err := p.Pop()
		if err != nil {
			return err
		}
		p.PC = addr
	case OpJP:
		p.PC = inst.NNN
	case OpCALL:
		if err := p.Push(p.PC); err != nil {
			return err
		}
		p.PC = inst.NNN
	case OpSEImm:
		p.skipIf(p.V[x] == inst.KK)
	case OpSNEImm:
		p.skipIf(p.V[x] != inst.KK)
	case OpSEReg:
		p.skipIf(p.V[x] == p.V[y])
	case OpSNEReg:
		p.skipIf(p.V[x] != p.V[y])
	case OpLDImm:
		p.V[x] = inst.KK
	case OpADDImm:
		p.V[x] += inst.KK
	case OpLDReg:
		p.V[x] = p.V[y]
	case OpOR:
		p.V[x] |= p.V[y]
	case OpAND:
		p.V[x] &= p.V[y]
	case OpXOR:
		p.V[x] ^= p.V[y]
	case OpADD:
		sum := uint16(p.V[x]) + uint16(p.V[y])
		p.setWithFlag(x, byte(sum), sum > 0xFF)
	case OpSUB:
		vx, vy := p.V[x], p.V[y]
		p.setWithFlag(x, vx-vy, vx > vy)
	case OpSUBN:
		vx, vy := p.V[x], p.V[y]
		p.setWithFlag(x, vy-vx, vy > vx)
	case OpSHR:
		vx := p.V[x]
		p.setWithFlag(x, vx>>1, vx&1 != 0)
	case OpSHL:
		vx := p.V[x]
		p.setWithFlag(x, vx<<1, vx&0x80 != 0)
	case OpLDI:
		p.I = inst.NNN
	case OpJPV0:
		p.PC = inst.NNN + uint16(p.V[0])
	case OpRND:
		p.V[x] += byte(p.rand.Intn(0x100)) & inst.KK
	case OpDRW:
		return p.draw(x, y, inst.N)
	case OpSKP:
		p.skipIf(p.keypad.IsPressed(p.V[x] & 0xF))
	case OpSKNP:
		p.skipIf(!p.keypad.IsPressed(p.V[x] & 0xF))
	case OpLDVxK:
		if key, ok := p.keypad.FirstPressed(); ok {
			p.V[x] = key
		} else {
			p.PC -= 2
		}
	case OpLDVxDT:
		p.V[x] = p.timers.Delay()
	case OpLDDTVx:
		p.timers.SetDelay(p.V[x])
	case OpLDSTVx:
		p.timers.SetSound(p.V[x])
	case OpADDI:
		p.I += uint16(p.V[x])
	case OpLDF:
		p.I = memory.FontBase + memory.GlyphSize*uint16(p.V[x])
	case OpLDB:
		v := p.V[x]
		return p.writeBlock(int(p.I), []byte{v / 100, (v / 10) % 10, v % 10})
	case OpLDIVx:
		return p.writeBlock(int(p.I), p.V[:x+1])
	case OpLDVxI:
		data, err := p.readBlock(int(p.I), int(x)+1)
		if err != nil {
			return err
		}
		copy(p.V[:], data)
	default:
		panic(fmt.Sprintf("unhandled operation: %v", inst.Op))
	}
	return nil
}

func (p *CPU) skipIf(b bool) {
	if b {
		p.PC += 2
	}
}

// setWithFlag writes VF before the result, so the result survives when x is VF.
func (p *CPU) setWithFlag(x, v byte, flag bool) {
	p.SetFlag(flag)
	p.V[x] = v
}

func (p *CPU) draw(x, y, n byte) error {
	ox, oy := int(p.V[x]), int(p.V[y])
	sprite, err := p.readBlock(int(p.I), int(n))
	if err != nil {
		return err
	}

	p.V[processor.VF] = 0
	p.stats.NumDraws++
	p.SetFlag(p.display.DrawSprite(ox, oy, sprite))
	return nil
}
