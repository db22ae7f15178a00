// +build js

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
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall/js"

	"github.com/andreas-jonsson/virtualc8/platform/dialog"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const canvasID = "virtualc8-canvas"

type jsPlatform struct {
	canvas, context js.Value
	fileSystem      afero.Fs

	keyboardHandler KeyHandler
}

var jsPlatformInstance jsPlatform

// httpFs downloads files from the page origin the first time they are opened.
type httpFs struct {
	afero.Fs
}

func (fs httpFs) Open(name string) (afero.File, error) {
	if fp, err := fs.Fs.Open(name); err == nil {
		return fp, nil
	}
	if err := fs.download(name); err != nil {
		return nil, err
	}
	return fs.Fs.Open(name)
}

func (fs httpFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if fp, err := fs.Fs.OpenFile(name, flag, perm); err == nil {
		return fp, nil
	}
	if err := fs.download(name); err != nil {
		return nil, err
	}
	return fs.Fs.OpenFile(name, flag, perm)
}

func (fs httpFs) Stat(name string) (os.FileInfo, error) {
	if fi, err := fs.Fs.Stat(name); err == nil {
		return fi, nil
	}
	if err := fs.download(name); err != nil {
		return nil, err
	}
	return fs.Fs.Stat(name)
}

func (fs httpFs) download(name string) error {
	resp, err := http.Get(name)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("could not download %s: %s", name, resp.Status)
	}

	if err := fs.Fs.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return err
	}

	fp, err := fs.Fs.Create(name)
	if err != nil {
		return err
	}
	defer fp.Close()

	_, err = io.Copy(fp, resp.Body)
	return err
}

func ConfigWithWindowSize(w, h int) Config {
	return func(p internalPlatform) error {
		style := p.(*jsPlatform).canvas.Get("style")
		style.Set("width", strconv.Itoa(w)+"px")
		style.Set("height", strconv.Itoa(h)+"px")
		return nil
	}
}

func ConfigWithFullscreen(p internalPlatform) error {
	return nil
}

func Start(mainLoop func(Platform), configs ...Config) {
	p := &jsPlatformInstance
	p.fileSystem = httpFs{afero.NewMemMapFs()}

	document := js.Global().Get("document")
	canvas := document.Call("getElementById", canvasID)
	if canvas.IsNull() {
		panic(errors.Errorf("could not find %q", canvasID))
	}
	p.canvas = canvas

	canvas.Call("setAttribute", "width", strconv.Itoa(ScreenWidth))
	canvas.Call("setAttribute", "height", strconv.Itoa(ScreenHeight))
	canvas.Set("oncontextmenu", js.FuncOf(func(js.Value, []js.Value) interface{} { return nil }))

	style := canvas.Get("style")
	style.Set("width", strconv.Itoa(ScreenWidth*10)+"px")
	style.Set("height", strconv.Itoa(ScreenHeight*10)+"px")
	style.Set("imageRendering", "pixelated")

	for _, cfg := range configs {
		if err := cfg(p); err != nil {
			panic(err)
		}
	}

	p.context = canvas.Call("getContext", "2d")

	keyHandler := func(pressed bool) js.Func {
		return js.FuncOf(func(_ js.Value, e []js.Value) interface{} {
			a := e[0]
			switch name := strings.ToLower(a.Get("key").String()); name {
			case KeyRestart:
				a.Call("preventDefault")
				if !pressed {
					dialog.RequestRestart()
				}
			default:
				if h := p.keyboardHandler; h != nil {
					a.Call("preventDefault")
					h(name, pressed)
				}
			}
			return nil
		})
	}
	document.Set("onkeydown", keyHandler(true))
	document.Set("onkeyup", keyHandler(false))

	Instance = p
	mainLoop(p)
}

func StartText(mainLoop func(Platform)) {
	Start(mainLoop)
}

func (p *jsPlatform) FileSystem() afero.Fs {
	return p.fileSystem
}

func (p *jsPlatform) RenderGraphics(backBuffer []byte) {
	img := p.context.Call("getImageData", 0, 0, ScreenWidth, ScreenHeight)
	data := img.Get("data")

	js.CopyBytesToJS(data, backBuffer)
	p.context.Call("putImageData", img, 0, 0)
}

func (p *jsPlatform) SetTitle(title string) {
	js.Global().Get("document").Set("title", title)
}

func (p *jsPlatform) SetKeyboardHandler(h KeyHandler) {
	p.keyboardHandler = h
}
