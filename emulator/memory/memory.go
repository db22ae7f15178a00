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

package memory

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	Size           = 0x1000
	ProgramStart   = 0x200
	MaxProgramSize = Size - ProgramStart
)

// Built-in hexadecimal glyphs.
const (
	FontBase   = 0x50
	GlyphSize  = 5
	FontLength = 16 * GlyphSize
)

var (
	ErrAccess = errors.New("memory access out of range")
	ErrLoad   = errors.New("program image does not fit in memory")
)

type Address uint16

func (a Address) String() string {
	return fmt.Sprintf("0x%03X", uint16(a))
}

func (a Address) Valid() bool {
	return a < Size
}

// AccessError reports an access outside of the 4K address space. Addr is an
// int since index arithmetic (I+x) can carry past 16 bits.
type AccessError struct {
	Addr  int
	Write bool
}

func (e *AccessError) Error() string {
	op := "read"
	if e.Write {
		op = "write"
	}
	return fmt.Sprintf("%s: %s at 0x%X", ErrAccess, op, e.Addr)
}

func (e *AccessError) Unwrap() error {
	return ErrAccess
}

type LoadError struct {
	Size int
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %d bytes (max %d)", ErrLoad, e.Size, MaxProgramSize)
}

func (e *LoadError) Unwrap() error {
	return ErrLoad
}

// CheckRange validates that the n bytes starting at addr are addressable.
// An empty range never fails.
func CheckRange(addr, n int, write bool) error {
	if n <= 0 {
		return nil
	}
	if addr < 0 || addr >= Size {
		return &AccessError{Addr: addr, Write: write}
	}
	if end := addr + n - 1; end >= Size {
		return &AccessError{Addr: end, Write: write}
	}
	return nil
}

type Memory interface {
	ReadByte(addr Address) byte
	WriteByte(addr Address, data byte)
}

type DummyMemory struct{}

func (m *DummyMemory) ReadByte(addr Address) byte {
	return 0
}

func (m *DummyMemory) WriteByte(addr Address, data byte) {
}
