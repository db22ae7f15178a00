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

package platform

import (
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral/display"
	"github.com/spf13/afero"
)

const (
	ScreenWidth  = display.Width
	ScreenHeight = display.Height

	// BackBufferSize is the size of an RGBA frame passed to RenderGraphics.
	BackBufferSize = ScreenWidth * ScreenHeight * 4
)

type internalPlatform interface{}

type Config func(internalPlatform) error

// KeyHandler receives lower case host key names such as "q", "1" or "f5".
type KeyHandler func(key string, pressed bool)

type Platform interface {
	FileSystem() afero.Fs
	RenderGraphics(backBuffer []byte)
	SetTitle(title string)
	SetKeyboardHandler(h KeyHandler)
}

var Instance Platform

// Keys handled by the platform itself and never forwarded to the handler.
const (
	KeyQuit       = "escape"
	KeyRestart    = "f5"
	KeyFullscreen = "f11"
)
