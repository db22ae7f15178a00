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
	"time"
	"unicode"

	"github.com/andreas-jonsson/virtualc8/platform/dialog"
	"github.com/gdamore/tcell"
)

// Terminals only report key presses, so a release is faked after keyHold.
const keyHold = 100 * time.Millisecond

type frameEvent struct{}

func (p *tcellPlatform) initializeTcellEvents() {
	go func() {
		s := p.screen
		for {
			switch ev := s.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				p.pushKeyEvent(ev)
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventInterrupt:
				if _, ok := ev.Data().(frameEvent); ok {
					p.drawFrame()
				}
			}
		}
	}()
}

func rgbColor(r, g, b byte) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// drawFrame packs two pixel rows into each terminal cell using the upper
// half block rune.
func (p *tcellPlatform) drawFrame() {
	p.Lock()
	defer p.Unlock()

	s := p.screen
	for y := 0; y < ScreenHeight; y += 2 {
		for x := 0; x < ScreenWidth; x++ {
			top := (y*ScreenWidth + x) * 4
			bottom := top + ScreenWidth*4

			style := tcell.StyleDefault.
				Foreground(rgbColor(p.frame[top], p.frame[top+1], p.frame[top+2])).
				Background(rgbColor(p.frame[bottom], p.frame[bottom+1], p.frame[bottom+2]))
			s.SetContent(x, y/2, '▀', nil, style)
		}
	}

	for i, r := range p.title {
		s.SetContent(i, ScreenHeight/2+1, r, nil, tcell.StyleDefault)
	}
	s.Show()
}

func (p *tcellPlatform) pushKeyEvent(ev *tcell.EventKey) {
	name := tcellKeyName(ev)
	switch name {
	case "":
		return
	case KeyQuit:
		dialog.Quit()
		return
	case KeyRestart:
		dialog.RequestRestart()
		return
	}

	p.Lock()
	h := p.keyboardHandler
	p.Unlock()

	if h == nil {
		return
	}
	h(name, true)

	go func() {
		time.Sleep(keyHold)
		h(name, false)
	}()
}

func tcellKeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		r := unicode.ToLower(ev.Rune())
		if r == ' ' {
			return "space"
		}
		return string(r)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyF5:
		return KeyRestart
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	}
	return ""
}
