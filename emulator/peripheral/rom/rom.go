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
	"io"
	"io/ioutil"
	"path/filepath"

	"github.com/andreas-jonsson/virtualc8/emulator/memory"
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Device copies a program image into RAM at memory.ProgramStart. It must be
// installed after the RAM device, and it rewrites the image on every reset.
type Device struct {
	image []byte
	p     processor.Processor

	RomName string
	Reader  io.Reader
}

// Open reads a program image through fs.
func Open(fs afero.Fs, name string) (*Device, error) {
	image, err := afero.ReadFile(fs, name)
	if err != nil {
		return nil, errors.Wrap(err, "could not read program image")
	}
	if len(image) > memory.MaxProgramSize {
		return nil, errors.Wrap(&memory.LoadError{Size: len(image)}, name)
	}
	return &Device{
		RomName: filepath.Base(name),
		Reader:  bytes.NewReader(image),
	}, nil
}

func (m *Device) Install(p processor.Processor) error {
	var err error
	if m.image, err = ioutil.ReadAll(m.Reader); err != nil {
		return err
	}
	if m.RomName == "" {
		m.RomName = "ROM"
	}
	m.p = p
	return Load(p, m.image)
}

func (m *Device) Name() string {
	return m.RomName
}

func (m *Device) Size() int {
	return len(m.image)
}

func (m *Device) Reset() {
	if m.p != nil {
		// Size was validated by Install.
		Load(m.p, m.image)
	}
}

func (m *Device) Step(int) error {
	return nil
}

// Load copies image verbatim to memory.ProgramStart. Memory is left untouched
// if the image does not fit.
func Load(p processor.Processor, image []byte) error {
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
