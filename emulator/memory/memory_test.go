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
	"testing"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
)

func TestCheckRange(t *testing.T) {
	t.Run("InRange", func(t *testing.T) {
		assert.NoError(t, CheckRange(0, 1, false))
		assert.NoError(t, CheckRange(Size-1, 1, true))
		assert.NoError(t, CheckRange(0x300, 16, true))
		assert.NoError(t, CheckRange(0xFFFF, 0, false))
	})

	t.Run("OutOfRange", func(t *testing.T) {
		err := CheckRange(Size, 1, false)
		assert.True(t, errors.Is(err, ErrAccess))

		var ae *AccessError
		assert.True(t, errors.As(err, &ae))
		assert.Equal(t, Size, ae.Addr)
		assert.False(t, ae.Write)
	})

	t.Run("Straddling", func(t *testing.T) {
		err := CheckRange(Size-2, 3, true)
		var ae *AccessError
		assert.True(t, errors.As(err, &ae))
		assert.Equal(t, Size, ae.Addr)
		assert.True(t, ae.Write)
	})
}

func TestLoadError(t *testing.T) {
	err := errors.Wrap(&LoadError{Size: MaxProgramSize + 1}, "test.ch8")
	assert.True(t, errors.Is(err, ErrLoad))
	assert.False(t, errors.Is(err, ErrAccess))
	assert.Equal(t, "test.ch8: program image does not fit in memory: 3585 bytes (max 3584)", err.Error())
}

func TestAddress(t *testing.T) {
	assert.True(t, Address(0xFFF).Valid())
	assert.False(t, Address(0x1000).Valid())
	assert.Equal(t, "0x200", Address(ProgramStart).String())
}
