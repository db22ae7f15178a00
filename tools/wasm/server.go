// +build ignore

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

// Serves the js/wasm build together with wasm_exec.js and a directory of
// program images that the browser front end downloads on demand.
package main

import (
	"flag"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/retroenv/retrogolib/log"
)

func main() {
	root := flag.String("root", "", "Server root")
	roms := flag.String("roms", "", "Directory with program images served under /roms/")
	port := flag.Int("port", 8080, "Server port")
	flag.Parse()

	logger := log.NewWithConfig(log.DefaultConfig())
	mime.AddExtensionType(".wasm", "application/wasm")

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(*root)))
	mux.HandleFunc("/wasm_exec.js", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(runtime.GOROOT(), "misc", "wasm", "wasm_exec.js"))
	})
	if *roms != "" {
		mux.Handle("/roms/", http.StripPrefix("/roms/", http.FileServer(http.Dir(*roms))))
	}

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("Serving", log.String("address", addr), log.String("root", *root))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("Server failed", err)
		os.Exit(-1)
	}
}
