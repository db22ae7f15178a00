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

// Package config holds the host settings and logger setup.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andreas-jonsson/virtualc8/emulator/peripheral/timer"
	"github.com/pkg/errors"
)

const (
	DefaultInstructionsPerSecond = 700
	DefaultTimerHz               = timer.Hz
	DefaultScale                 = 10
)

// DefaultKeyMap is indexed by keypad key and holds the host key bound to it.
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <-   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var DefaultKeyMap = [16]string{
	"x", "1", "2", "3",
	"q", "w", "e", "a",
	"s", "d", "z", "c",
	"4", "r", "f", "v",
}

var ErrInvalidSetting = errors.New("invalid setting")

// Color is a 0xRRGGBB value written as "#RRGGBB" in settings files.
type Color uint32

func (c Color) String() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		return errors.Wrapf(ErrInvalidSetting, "color %q", string(text))
	}
	*c = Color(v)
	return nil
}

type Settings struct {
	ROM                   string     `json:"rom"`
	InstructionsPerSecond int        `json:"ips"`
	TimerHz               int        `json:"timer_hz"`
	Scale                 int        `json:"scale"`
	Foreground            Color      `json:"foreground"`
	Background            Color      `json:"background"`
	KeyMap                [16]string `json:"keymap"`

	Debug     bool `json:"debug"`
	Quiet     bool `json:"quiet"`
	Trace     bool `json:"trace"`
	Text      bool `json:"text"`
	StatsView bool `json:"statsview"`
}

func Default() Settings {
	return Settings{
		InstructionsPerSecond: DefaultInstructionsPerSecond,
		TimerHz:               DefaultTimerHz,
		Scale:                 DefaultScale,
		Foreground:            0xFFFFFF,
		Background:            0x000000,
		KeyMap:                DefaultKeyMap,
	}
}

// Set assigns a single setting by its flag name.
func (s *Settings) Set(key, value string) error {
	var err error
	switch key {
	case "rom":
		s.ROM = value
	case "ips":
		s.InstructionsPerSecond, err = strconv.Atoi(value)
	case "timer-hz":
		s.TimerHz, err = strconv.Atoi(value)
	case "scale":
		s.Scale, err = strconv.Atoi(value)
	case "fg":
		err = s.Foreground.UnmarshalText([]byte(value))
	case "bg":
		err = s.Background.UnmarshalText([]byte(value))
	case "keymap":
		keys := strings.Split(value, ",")
		if len(keys) != len(s.KeyMap) {
			return errors.Wrapf(ErrInvalidSetting, "keymap needs %d keys, got %d", len(s.KeyMap), len(keys))
		}
		for i, k := range keys {
			s.KeyMap[i] = strings.ToLower(strings.TrimSpace(k))
		}
	case "debug":
		s.Debug, err = strconv.ParseBool(value)
	case "quiet":
		s.Quiet, err = strconv.ParseBool(value)
	case "trace":
		s.Trace, err = strconv.ParseBool(value)
	case "text":
		s.Text, err = strconv.ParseBool(value)
	case "statsview":
		s.StatsView, err = strconv.ParseBool(value)
	default:
		return errors.Wrapf(ErrInvalidSetting, "unknown key %q", key)
	}
	if err != nil {
		return errors.Wrapf(ErrInvalidSetting, "%s=%q", key, value)
	}
	return nil
}

func (s *Settings) Validate() error {
	if s.InstructionsPerSecond <= 0 {
		return errors.Wrapf(ErrInvalidSetting, "instructions per second must be positive: %d", s.InstructionsPerSecond)
	}
	if s.TimerHz <= 0 {
		return errors.Wrapf(ErrInvalidSetting, "timer frequency must be positive: %d", s.TimerHz)
	}
	if s.Scale < 1 || s.Scale > 50 {
		return errors.Wrapf(ErrInvalidSetting, "scale out of range: %d", s.Scale)
	}

	seen := make(map[string]int, len(s.KeyMap))
	for i, k := range s.KeyMap {
		if k == "" {
			return errors.Wrapf(ErrInvalidSetting, "key %X is unbound", i)
		}
		if j, ok := seen[k]; ok {
			return errors.Wrapf(ErrInvalidSetting, "host key %q bound to both %X and %X", k, j, i)
		}
		seen[k] = i
	}
	return nil
}

// KeyIndex returns the keypad key bound to the host key name.
func (s *Settings) KeyIndex(name string) (byte, bool) {
	name = strings.ToLower(name)
	for i, k := range s.KeyMap {
		if k == name {
			return byte(i), true
		}
	}
	return 0, false
}
