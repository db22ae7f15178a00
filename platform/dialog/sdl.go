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

package dialog

import (
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
)

func ShowErrorMessage(msg string) error {
	return sdl.ShowSimpleMessageBox(sdl.MESSAGEBOX_ERROR, "Error", msg, nil)
}

// confirm shows a yes/no box. Escape answers no and any failure to show the
// box counts as yes.
func confirm(title, msg string) bool {
	no := sdl.MessageBoxButtonData{Flags: sdl.MESSAGEBOX_BUTTON_ESCAPEKEY_DEFAULT, ButtonID: 0, Text: "No"}
	yes := sdl.MessageBoxButtonData{Flags: sdl.MESSAGEBOX_BUTTON_RETURNKEY_DEFAULT, ButtonID: 1, Text: "Yes"}

	// X11 lays buttons out right to left.
	buttons := []sdl.MessageBoxButtonData{no, yes}
	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		buttons[0], buttons[1] = yes, no
	}

	id, err := sdl.ShowMessageBox(&sdl.MessageBoxData{
		Flags:   sdl.MESSAGEBOX_INFORMATION,
		Title:   title,
		Message: msg,
		Buttons: buttons,
	})
	return err != nil || id == yes.ButtonID
}

func AskToQuit() bool {
	if !confirm("Quit", "Do you want to quit VirtualC8?") {
		return false
	}
	Quit()
	return true
}
