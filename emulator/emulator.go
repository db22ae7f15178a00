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
	"fmt"
	"path/filepath"
	"time"

	"github.com/andreas-jonsson/virtualc8/config"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral/display"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral/keypad"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral/ram"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral/rom"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral/timer"
	"github.com/andreas-jonsson/virtualc8/emulator/processor/cpu"
	"github.com/andreas-jonsson/virtualc8/platform"
	"github.com/andreas-jonsson/virtualc8/platform/dialog"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
)

const frameRate = 60

// Emulator owns one machine at a time and paces it against wall time.
type Emulator struct {
	settings config.Settings
	logger   *log.Logger
	platform platform.Platform

	// The keypad outlives machines so the platform handler stays valid.
	keys   *keypad.Device
	video  *display.Device
	timers *timer.Device
	cpu    *cpu.CPU

	romName    string
	budget     float64
	backBuffer []byte
}

func New(p platform.Platform, s config.Settings, logger *log.Logger) *Emulator {
	e := &Emulator{
		settings:   s,
		logger:     logger,
		platform:   p,
		keys:       &keypad.Device{},
		backBuffer: make([]byte, platform.BackBufferSize),
	}
	p.SetKeyboardHandler(e.handleKey)
	return e
}

// Start returns a main loop for platform.Start.
func Start(s config.Settings, logger *log.Logger) func(platform.Platform) {
	return func(p platform.Platform) {
		e := New(p, s, logger)
		defer e.Close()

		if err := e.Run(); err != nil {
			logger.Error("Emulation stopped", err)
			dialog.ShowErrorMessage(err.Error())
		}
	}
}

func (e *Emulator) handleKey(name string, pressed bool) {
	k, ok := e.settings.KeyIndex(name)
	if !ok {
		e.logger.Debug("Unmapped key", log.String("key", name))
		return
	}
	if err := e.keys.SendKeyEvent(keypad.Event{Key: k, Pressed: pressed}); err != nil {
		e.logger.Warn("Dropped key event", log.String("key", name), log.Err(err))
	}
}

// Load replaces the running machine with a new one executing the named
// program image.
func (e *Emulator) Load(name string) error {
	dev, err := rom.Open(e.platform.FileSystem(), name)
	if err != nil {
		return err
	}

	video, timers := &display.Device{}, &timer.Device{}
	p, errs := cpu.NewCPU([]peripheral.Peripheral{
		&ram.Device{Logger: e.logger}, // RAM needs to go first since it maps the full memory range.
		dev,
		timers,
		e.keys,
		video,
	}, cpu.WithLogger(e.logger), cpu.WithTrace(e.settings.Trace))
	if len(errs) > 0 {
		p.Close()
		return errors.Wrapf(errs[0], "could not create machine for %s", name)
	}

	if e.cpu != nil {
		e.cpu.Close()
	}
	e.keys.Reset()
	e.cpu, e.video, e.timers = p, video, timers
	e.romName = filepath.Base(name)
	e.budget = 0

	e.logger.Info("Program loaded", log.String("name", e.romName), log.Int("size", dev.Size()))
	return nil
}

// Frame runs the instructions due for elapsed time and presents the display
// if it changed.
func (e *Emulator) Frame(elapsed time.Duration) error {
	if e.cpu == nil {
		return nil
	}

	ips := float64(e.settings.InstructionsPerSecond)
	e.budget += ips * elapsed.Seconds()
	if limit := ips / 10; e.budget > limit {
		e.budget = limit
	}

	for ; e.budget >= 1; e.budget-- {
		if _, err := e.cpu.Step(); err != nil {
			return err
		}
	}

	if e.video.Dirty() {
		e.video.Blit(e.backBuffer, uint32(e.settings.Foreground), uint32(e.settings.Background))
		e.platform.RenderGraphics(e.backBuffer)
	}
	return nil
}

func (e *Emulator) TickTimers() {
	if e.cpu != nil {
		e.cpu.TickTimers()
	}
}

func (e *Emulator) Reset() {
	if e.cpu != nil {
		e.cpu.Reset()
		e.budget = 0
	}
}

func (e *Emulator) updateTitle(elapsed time.Duration) {
	if e.cpu == nil {
		e.platform.SetTitle("VirtualC8 - drop a program image to start")
		return
	}
	stats := e.cpu.GetStats()
	ips := float64(stats.NumInstructions) / elapsed.Seconds()
	title := fmt.Sprintf("VirtualC8 - %s - %.0f IPS", e.romName, ips)
	if e.timers.Beeping() {
		title += " - BEEP"
	}
	e.platform.SetTitle(title)

	if stats.NumUnknown > 0 {
		e.logger.Debug("Unknown opcodes executed", log.Int("count", int(stats.NumUnknown)))
	}
}

// Run blocks until a shutdown is requested or the machine halts.
func (e *Emulator) Run() error {
	if e.settings.ROM != "" {
		if err := e.Load(e.settings.ROM); err != nil {
			return err
		}
	}

	frameTicker := time.NewTicker(time.Second / frameRate)
	defer frameTicker.Stop()
	timerTicker := time.NewTicker(time.Second / time.Duration(e.settings.TimerHz))
	defer timerTicker.Stop()
	titleTicker := time.NewTicker(time.Second)
	defer titleTicker.Stop()

	e.updateTitle(time.Second)
	last, lastTitle := time.Now(), time.Now()

	for !dialog.ShutdownRequested() {
		select {
		case <-timerTicker.C:
			e.TickTimers()
		case now := <-titleTicker.C:
			e.updateTitle(now.Sub(lastTitle))
			lastTitle = now
		case now := <-frameTicker.C:
			if err := e.Frame(now.Sub(last)); err != nil {
				return err
			}
			last = now
		}

		if file, ok := dialog.DroppedROM(); ok {
			if err := e.Load(file); err != nil {
				e.logger.Error("Could not load program image", err, log.String("file", file))
				dialog.ShowErrorMessage(err.Error())
			}
		}
		if dialog.RestartRequested() {
			e.Reset()
		}
	}
	return nil
}

func (e *Emulator) Close() {
	if e.cpu != nil {
		e.cpu.Close()
	}
}
