// +build sdl

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
	"os"

	"github.com/andreas-jonsson/virtualc8/platform/dialog"
	"github.com/spf13/afero"
	"github.com/veandco/go-sdl2/sdl"
)

type sdlPlatform struct {
	cleanCallBacks []func(*sdlPlatform)

	quitChan        chan struct{}
	keyboardHandler KeyHandler
	fileSystem      afero.Fs

	sdlWindowFlags           uint32
	windowSizeX, windowSizeY int32

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

var sdlPlatformInstance sdlPlatform

func registerCleanup(p internalPlatform, cb func(p *sdlPlatform)) {
	sp := p.(*sdlPlatform)
	sp.cleanCallBacks = append(sp.cleanCallBacks, cb)
}

func ConfigWithWindowSize(w, h int) Config {
	return func(p internalPlatform) error {
		sp := p.(*sdlPlatform)
		sp.windowSizeX = int32(w)
		sp.windowSizeY = int32(h)
		return nil
	}
}

func ConfigWithFullscreen(p internalPlatform) error {
	p.(*sdlPlatform).sdlWindowFlags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	return nil
}

func Start(mainLoop func(Platform), configs ...Config) {
	errHandle := func(err error) {
		dialog.ShowErrorMessage(err.Error())
		os.Exit(-1)
	}

	p := &sdlPlatformInstance
	p.windowSizeX = ScreenWidth * 10
	p.windowSizeY = ScreenHeight * 10
	p.sdlWindowFlags = sdl.WINDOW_RESIZABLE
	p.fileSystem = afero.NewOsFs()

	sdl.Main(func() {
		for _, cfg := range configs {
			if err := cfg(p); err != nil {
				errHandle(err)
			}
		}

		var err error
		sdl.Do(func() {
			err = sdl.Init(0)
		})
		if err != nil {
			errHandle(err)
		}
		defer sdl.Do(sdl.Quit)

		defer func() {
			for i := len(p.cleanCallBacks) - 1; i >= 0; i-- {
				p.cleanCallBacks[i](p)
			}
		}()

		Instance = p
		if err := p.initializeVideo(); err != nil {
			errHandle(err)
		}
		if err := p.initializeSDLEvents(); err != nil {
			errHandle(err)
		}
		mainLoop(p)
	})
	os.Exit(0) // Calling Exit is required!
}

// StartText runs mainLoop in the terminal even when SDL is available.
func StartText(mainLoop func(Platform)) {
	tcellStart(mainLoop)
}

func (p *sdlPlatform) FileSystem() afero.Fs {
	return p.fileSystem
}
