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
	"strings"
	"time"

	"github.com/andreas-jonsson/virtualc8/platform/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

func (p *sdlPlatform) initializeSDLEvents() error {
	var err error
	sdl.Do(func() {
		if err = sdl.InitSubSystem(sdl.INIT_EVENTS); err != nil {
			return
		}
		sdl.EventState(sdl.DROPFILE, sdl.ENABLE)
	})
	if err != nil {
		return err
	}

	p.quitChan = make(chan struct{})
	registerCleanup(p, shutdownSDLEvents)

	go func() {
		ticker := time.NewTicker(time.Second / 60)
		defer ticker.Stop()

		for {
			select {
			case <-p.quitChan:
				close(p.quitChan)
				return
			case <-ticker.C:
				sdl.Do(func() {
					for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
						switch ev := event.(type) {
						case *sdl.QuitEvent:
							dialog.AskToQuit()
						case *sdl.KeyboardEvent:
							p.sdlProcessKey(ev)
						case *sdl.DropEvent:
							if ev.Type == sdl.DROPFILE {
								dialog.DropROM(ev.File)
							}
						}
					}
				})
			}
		}
	}()
	return nil
}

func shutdownSDLEvents(p *sdlPlatform) {
	p.quitChan <- struct{}{}
	<-p.quitChan
	sdl.Do(func() {
		sdl.QuitSubSystem(sdl.INIT_EVENTS)
	})
}

func (p *sdlPlatform) sdlProcessKey(ev *sdl.KeyboardEvent) {
	if ev.Repeat != 0 {
		return
	}

	keyUp := ev.Type == sdl.KEYUP
	switch name := sdlKeyName(ev.Keysym.Scancode); name {
	case "":
	case KeyFullscreen:
		if keyUp {
			p.toggleFullscreen()
		}
	case KeyRestart:
		if keyUp {
			dialog.RequestRestart()
		}
	case KeyQuit:
		if keyUp {
			dialog.AskToQuit()
		}
	default:
		if p.keyboardHandler != nil {
			p.keyboardHandler(name, !keyUp)
		}
	}
}

// SetKeyboardHandler must not be called from inside the handler.
func (p *sdlPlatform) SetKeyboardHandler(h KeyHandler) {
	sdl.Do(func() {
		p.keyboardHandler = h
	})
}

// Scancodes are layout independent, so the keypad keeps its physical shape
// on AZERTY and Dvorak keyboards.
func sdlKeyName(scan sdl.Scancode) string {
	switch {
	case scan >= sdl.SCANCODE_A && scan <= sdl.SCANCODE_Z:
		return string(rune('a' + scan - sdl.SCANCODE_A))
	case scan >= sdl.SCANCODE_1 && scan <= sdl.SCANCODE_9:
		return string(rune('1' + scan - sdl.SCANCODE_1))
	case scan == sdl.SCANCODE_0:
		return "0"
	case scan >= sdl.SCANCODE_F1 && scan <= sdl.SCANCODE_F12:
		return "f" + strings.TrimPrefix(sdl.GetScancodeName(scan), "F")
	}

	switch scan {
	case sdl.SCANCODE_ESCAPE:
		return "escape"
	case sdl.SCANCODE_SPACE:
		return "space"
	case sdl.SCANCODE_RETURN:
		return "enter"
	case sdl.SCANCODE_UP:
		return "up"
	case sdl.SCANCODE_DOWN:
		return "down"
	case sdl.SCANCODE_LEFT:
		return "left"
	case sdl.SCANCODE_RIGHT:
		return "right"
	}
	return ""
}
