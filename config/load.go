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

package config

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
	"github.com/spf13/afero"
)

const (
	SettingsFile = "settings.json"
	EnvPrefix    = "VC8_"
)

var flagKeys = []string{"rom", "ips", "timer-hz", "scale", "fg", "bg", "keymap", "debug", "quiet", "trace", "text", "statsview"}

func init() {
	RegisterFlags(flag.CommandLine)
}

// RegisterFlags adds one flag per setting key. Only flags given explicitly
// on the command line override lower layers.
func RegisterFlags(fs *flag.FlagSet) {
	def := Default()

	fs.String("rom", "", "Path to program image")
	fs.Int("ips", def.InstructionsPerSecond, "Instructions executed per second")
	fs.Int("timer-hz", def.TimerHz, "Delay and sound timer frequency")
	fs.Int("scale", def.Scale, "Window scale factor")
	fs.String("fg", def.Foreground.String(), "Foreground color")
	fs.String("bg", def.Background.String(), "Background color")
	fs.String("keymap", strings.Join(def.KeyMap[:], ","), "Host keys bound to keypad keys 0-F")
	fs.Bool("debug", false, "Enable debug logging")
	fs.Bool("quiet", false, "Only log errors")
	fs.Bool("trace", false, "Log every executed instruction (implies -debug)")
	fs.Bool("text", false, "Run in terminal")
	fs.Bool("statsview", false, "Start runtime statistics server")
}

// SearchPaths lists the folders checked for SettingsFile, in priority order.
func SearchPaths() []string {
	var paths []string
	for _, f := range configdir.New("virtualc8", "virtualc8").QueryFolders(configdir.All) {
		paths = append(paths, f.Path)
	}
	return paths
}

// Load builds the settings from defaults, the first settings file found,
// VC8_* environment variables and finally the command line.
func Load(fs afero.Fs) (Settings, error) {
	if !flag.Parsed() {
		flag.Parse()
	}
	return LoadFrom(fs, SearchPaths(), os.LookupEnv, flag.CommandLine)
}

func LoadFrom(fs afero.Fs, dirs []string, lookupEnv func(string) (string, bool), flags *flag.FlagSet) (Settings, error) {
	s := Default()

	for _, dir := range dirs {
		name := filepath.Join(dir, SettingsFile)
		if ok, _ := afero.Exists(fs, name); !ok {
			continue
		}
		data, err := afero.ReadFile(fs, name)
		if err != nil {
			return s, errors.Wrap(err, "could not read settings")
		}
		if err := json.Unmarshal(data, &s); err != nil {
			return s, errors.Wrapf(err, "could not parse %s", name)
		}
		break
	}

	if lookupEnv != nil {
		for _, key := range flagKeys {
			env := EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
			if v, ok := lookupEnv(env); ok {
				if err := s.Set(key, v); err != nil {
					return s, errors.Wrap(err, env)
				}
			}
		}
	}

	if flags != nil {
		var err error
		flags.Visit(func(f *flag.Flag) {
			if err == nil {
				err = s.Set(f.Name, f.Value.String())
			}
		})
		if err != nil {
			return s, err
		}
	}

	if s.Trace {
		s.Debug = true
	}
	if s.ROM == "" && flags != nil && flags.NArg() > 0 {
		s.ROM = flags.Arg(0)
	}
	return s, s.Validate()
}
