// +build !js

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
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell"
	"github.com/spf13/afero"
)

type tcellPlatform struct {
	sync.Mutex

	frame      []byte
	title      string
	screen     tcell.Screen
	fileSystem afero.Fs

	keyboardHandler KeyHandler
}

var tcellPlatformInstance tcellPlatform

func tcellStart(mainLoop func(Platform)) {
	p := &tcellPlatformInstance
	p.fileSystem = afero.NewOsFs()
	p.frame = make([]byte, BackBufferSize)

	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	var err error
	if p.screen, err = tcell.NewScreen(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
	if err = p.screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
	defer p.screen.Fini()

	p.screen.HideCursor()
	p.screen.DisableMouse()
	p.screen.Clear()

	Instance = p
	p.initializeTcellEvents()
	mainLoop(p)
}

func (p *tcellPlatform) FileSystem() afero.Fs {
	return p.fileSystem
}

// RenderGraphics copies the frame and lets the event goroutine draw it.
func (p *tcellPlatform) RenderGraphics(backBuffer []byte) {
	if len(backBuffer) != BackBufferSize {
		panic("invalid back buffer size")
	}

	p.Lock()
	copy(p.frame, backBuffer)
	p.Unlock()
	p.screen.PostEvent(tcell.NewEventInterrupt(frameEvent{}))
}

func (p *tcellPlatform) SetTitle(title string) {
	p.Lock()
	p.title = title
	p.Unlock()
}

func (p *tcellPlatform) SetKeyboardHandler(h KeyHandler) {
	p.Lock()
	p.keyboardHandler = h
	p.Unlock()
}
