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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andreas-jonsson/virtualc8/config"
	"github.com/andreas-jonsson/virtualc8/emulator"
	"github.com/andreas-jonsson/virtualc8/platform"
	"github.com/andreas-jonsson/virtualc8/platform/dialog"
	"github.com/andreas-jonsson/virtualc8/statsview"
	"github.com/andreas-jonsson/virtualc8/version"
	"github.com/mgutz/ansi"
	"github.com/spf13/afero"
)

var (
	ver,
	fullscreen bool
)

func init() {
	flag.BoolVar(&ver, "v", false, "Print version information")
	flag.BoolVar(&fullscreen, "fullscreen", false, "Start in fullscreen mode")
}

func main() {
	flag.Parse()

	if ver {
		fmt.Printf("%s (%s)\n", version.Current.FullString(), version.Hash)
		return
	}

	settings, err := config.Load(afero.NewOsFs())
	if err != nil {
		dialog.ShowErrorMessage(err.Error())
		os.Exit(-1)
	}
	logger := settings.Logger()

	if settings.StatsView {
		statsview.Launch(logger)
	}

	mainLoop := emulator.Start(settings, logger)
	if settings.Text {
		platform.StartText(mainLoop)
		return
	}

	printLogo()

	configs := []platform.Config{
		platform.ConfigWithWindowSize(platform.ScreenWidth*settings.Scale, platform.ScreenHeight*settings.Scale),
	}
	if fullscreen {
		configs = append(configs, platform.ConfigWithFullscreen)
	}
	platform.Start(mainLoop, configs...)
}

func printLogo() {
	fmt.Print(ansi.Color(logo, "green+b"))
	fmt.Println(" v" + version.Current.String())
	fmt.Println(ansi.Color(" ───═══ "+version.Copyright+" ═══───\n", "black+h"))
}

var logo = `
██╗   ██╗██╗██████╗ ████████╗██╗   ██╗ █████╗ ██╗      ██████╗ █████╗
██║   ██║██║██╔══██╗╚══██╔══╝██║   ██║██╔══██╗██║     ██╔════╝██╔══██╗
██║   ██║██║██████╔╝   ██║   ██║   ██║███████║██║     ██║     ╚█████╔╝
╚██╗ ██╔╝██║██╔══██╗   ██║   ██║   ██║██╔══██║██║     ██║     ██╔══██╗
 ╚████╔╝ ██║██║  ██║   ██║   ╚██████╔╝██║  ██║███████╗╚██████╗╚█████╔╝
  ╚═══╝  ╚═╝╚═╝  ╚═╝   ╚═╝    ╚═════╝ ╚═╝  ╚═╝╚══════╝ ╚═════╝ ╚════╝`
