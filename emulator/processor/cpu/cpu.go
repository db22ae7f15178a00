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
	"math/rand"
	"time"

	"github.com/andreas-jonsson/virtualc8/emulator/memory"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral"
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
)

const MaxPeripherals = 32

type CPU struct {
	processor.Registers
	instructionState

	trace  bool
	halted error

	stats       processor.Stats
	peripherals []peripheral.Peripheral
	timers      processor.Timers
	keypad      processor.Keypad
	display     processor.Display

	rand   *rand.Rand
	logger *log.Logger

	mmap           [memory.Size]byte
	memPeripherals [MaxPeripherals]memory.Memory
}

type Option func(*CPU)

func WithLogger(logger *log.Logger) Option {
	return func(p *CPU) {
		p.logger = logger
	}
}

// WithRandSource replaces the time seeded source used by CXKK.
func WithRandSource(src rand.Source) Option {
	return func(p *CPU) {
		p.rand = rand.New(src)
	}
}

// WithTrace logs every executed instruction at debug level.
func WithTrace(b bool) Option {
	return func(p *CPU) {
		p.trace = b
	}
}

func NewCPU(peripherals []peripheral.Peripheral, opts ...Option) (*CPU, []error) {
	p := &CPU{peripherals: peripherals}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		cfg := log.DefaultConfig()
		cfg.Level = log.ErrorLevel
		p.logger = log.NewWithConfig(cfg)
	}
	if p.rand == nil {
		p.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	dummyMem := &memory.DummyMemory{}
	for i := range p.memPeripherals[:] {
		p.memPeripherals[i] = dummyMem
	}

	for i := 1; i <= len(peripherals) && i < MaxPeripherals; i++ {
		if dev, ok := peripherals[i-1].(memory.Memory); ok {
			p.memPeripherals[i] = dev
		}
	}

	errs := p.installPeripherals()
	p.Registers.Reset()
	return p, errs
}

func (p *CPU) installPeripherals() []error {
	var errs []error
	if len(p.peripherals) >= MaxPeripherals {
		errs = append(errs, errors.Errorf("too many peripherals: %d (max %d)", len(p.peripherals), MaxPeripherals-1))
	}

	for _, d := range p.peripherals {
		if err := d.Install(p); err != nil {
			errs = append(errs, errors.Wrapf(err, "failed to install peripheral: %s", d.Name()))
			continue
		}
		p.logger.Debug("Installed peripheral", log.String("name", d.Name()))

		if t, ok := d.(processor.Timers); ok {
			p.timers = t
		}
		if k, ok := d.(processor.Keypad); ok {
			p.keypad = k
		}
		if v, ok := d.(processor.Display); ok {
			p.display = v
		}
	}

	if p.timers == nil {
		p.logger.Warn("No timer device detected!")
		p.timers = &nullTimers{}
	}
	if p.keypad == nil {
		p.logger.Warn("No keypad detected!")
		p.keypad = nullKeypad{}
	}
	if p.display == nil {
		p.logger.Warn("No display detected!")
		p.display = nullDisplay{}
	}
	return errs
}

func (p *CPU) Close() {
	for _, d := range p.peripherals {
		if cd, b := d.(peripheral.PeripheralCloser); b {
			if err := cd.Close(); err != nil {
				p.logger.Error("Failed to close peripheral", err, log.String("name", d.Name()))
			}
		}
	}
}

// GetStats returns the counters accumulated since the previous call.
func (p *CPU) GetStats() processor.Stats {
	s := p.stats
	p.stats = processor.Stats{}
	return s
}

// Reset restores the power-on state. Peripherals are reset in installation
// order so the program image is rewritten after RAM is cleared.
func (p *CPU) Reset() {
	p.logger.Info("CPU reset!")

	p.Registers.Reset()
	p.instructionState = instructionState{}
	p.halted = nil
	for _, d := range p.peripherals {
		d.Reset()
	}
}

func (p *CPU) Halted() bool {
	return p.halted != nil
}

// LoadProgram copies image to memory.ProgramStart. Memory is left untouched
// if the image does not fit.
func (p *CPU) LoadProgram(image []byte) error {
	if len(image) > memory.MaxProgramSize {
		return &memory.LoadError{Size: len(image)}
	}
	for i, v := range image {
		if err := p.WriteByte(memory.Address(memory.ProgramStart+i), v); err != nil {
			return err
		}
	}
	return nil
}

// TickTimers decrements the delay and sound timers once. The host calls it
// at 60 Hz independently of Step.
func (p *CPU) TickTimers() {
	p.timers.Tick()
	p.stats.NumTimerTicks++
}

func (p *CPU) GetMappedMemoryDevice(addr memory.Address) memory.Memory {
	return p.memPeripherals[p.mmap[addr]]
}

func (p *CPU) ReadByte(addr memory.Address) (byte, error) {
	if !addr.Valid() {
		return 0, &memory.AccessError{Addr: int(addr)}
	}
	return p.GetMappedMemoryDevice(addr).ReadByte(addr), nil
}

func (p *CPU) WriteByte(addr memory.Address, data byte) error {
	if !addr.Valid() {
		return &memory.AccessError{Addr: int(addr), Write: true}
	}
	p.GetMappedMemoryDevice(addr).WriteByte(addr, data)
	return nil
}

func (p *CPU) readBlock(addr, n int) ([]byte, error) {
	if err := memory.CheckRange(addr, n, false); err != nil {
		return nil, err
	}
	data := make([]byte, n)
	for i := range data {
		a := memory.Address(addr + i)
		data[i] = p.GetMappedMemoryDevice(a).ReadByte(a)
	}
	return data, nil
}

func (p *CPU) writeBlock(addr int, data []byte) error {
	if err := memory.CheckRange(addr, len(data), true); err != nil {
		return err
	}
	for i, v := range data {
		a := memory.Address(addr + i)
		p.GetMappedMemoryDevice(a).WriteByte(a, v)
	}
	return nil
}

func (p *CPU) InstallMemoryDevice(device memory.Memory, from, to memory.Address) error {
	if !from.Valid() || !to.Valid() || from > to {
		return errors.Errorf("invalid memory range: %s-%s", from, to)
	}
	for i, d := range p.memPeripherals[:] {
		if d == device {
			for from <= to {
				p.mmap[from] = byte(i)
				from++
			}
			return nil
		}
	}
	return errors.New("could not find peripheral")
}

type nullTimers struct {
	delay, sound byte
}

func (t *nullTimers) Delay() byte     { return t.delay }
func (t *nullTimers) Sound() byte     { return t.sound }
func (t *nullTimers) SetDelay(v byte) { t.delay = v }
func (t *nullTimers) SetSound(v byte) { t.sound = v }
func (t *nullTimers) Tick()           {}

type nullKeypad struct{}

func (nullKeypad) IsPressed(byte) bool        { return false }
func (nullKeypad) FirstPressed() (byte, bool) { return 0, false }

type nullDisplay struct{}

func (nullDisplay) Clear()                           {}
func (nullDisplay) DrawSprite(int, int, []byte) bool { return false }
