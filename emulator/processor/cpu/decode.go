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
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
)

type instructionState struct {
	opcode   uint16
	decodeAt uint16
	cycles   int
}

// Instruction is a decoded opcode with all operand fields extracted.
// Fields that the operation does not use are still populated.
type Instruction struct {
	Op  Op
	X   byte
	Y   byte
	N   byte
	KK  byte
	NNN uint16
}

func (inst Instruction) String() string {
	return fmt.Sprintf("%-12s x=%X y=%X n=%X kk=%02X nnn=%03X", inst.Op, inst.X, inst.Y, inst.N, inst.KK, inst.NNN)
}

func Decode(opcode uint16) Instruction {
	inst := Instruction{
		X:   byte(opcode>>8) & 0xF,
		Y:   byte(opcode>>4) & 0xF,
		N:   byte(opcode) & 0xF,
		KK:  byte(opcode),
		NNN: opcode & 0xFFF,
	}

	var op Op
	switch opcode >> 12 {
	case 0x0:
		op = lookup0[opcode&0xF]
	case 0x8:
		op = lookup8[opcode&0xF]
	case 0xE:
		op = lookupE[opcode&0xF]
	case 0xF:
		op = lookupF[opcode&0xFF]
	default:
		op = lookupMain[opcode>>12]
	}

	if p := patterns[op]; opcode&p.mask != p.value {
		op = OpUnknown
	}
	inst.Op = op
	return inst
}

func (p *CPU) fetch() error {
	hi, err := p.ReadByte(memory.Address(p.PC))
	if err != nil {
		return err
	}
	lo, err := p.ReadByte(memory.Address(p.PC + 1))
	if err != nil {
		return err
	}

	p.decodeAt = p.PC
	p.opcode = uint16(hi)<<8 | uint16(lo)
	p.PC += 2
	return nil
}

// Step executes a single instruction. Timers are not touched, see TickTimers.
func (p *CPU) Step() (int, error) {
	if p.halted != nil {
		return 0, &haltError{p.halted}
	}

	for _, d := range p.peripherals {
		if err := d.Step(p.cycles); err != nil {
			return 0, p.halt(errors.Wrapf(err, "%s failed", d.Name()))
		}
	}

	p.cycles = 0
	if err := p.fetch(); err != nil {
		return 0, p.halt(errors.Wrapf(err, "fetch at %s", memory.Address(p.PC)))
	}

	inst := Decode(p.opcode)
	if p.trace {
		p.logger.Debug("Execute",
			log.Stringer("pc", memory.Address(p.decodeAt)),
			log.Uint16("opcode", p.opcode),
			log.Stringer("op", inst.Op))
	}

	if err := p.execute(inst); err != nil {
		return p.cycles, p.halt(errors.Wrapf(err, "opcode 0x%04X at %s", p.opcode, memory.Address(p.decodeAt)))
	}
	return p.cycles, nil
}

func (p *CPU) halt(err error) error {
	p.halted = err
	p.logger.Error("CPU halted", err, log.String("registers", p.Registers.String()))
	return err
}

type haltError struct {
	cause error
}

func (e *haltError) Error() string {
	return fmt.Sprintf("%s: %s", processor.ErrCPUHalt, e.cause)
}

func (e *haltError) Is(target error) bool {
	return target == processor.ErrCPUHalt
}

func (e *haltError) Unwrap() error {
	return e.cause
}
