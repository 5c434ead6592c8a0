// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"os"
	"runtime"

	"github.com/devblok/triangle/core"
	"github.com/devblok/triangle/gfx/vkr"
	"github.com/devblok/triangle/window"
	"github.com/devblok/triangle/window/glfwwin"
	"github.com/devblok/triangle/window/sdlwin"
	log "github.com/sirupsen/logrus"
)

func init() {
	runtime.LockOSThread()
}

func openWindow(cfg window.Config) (window.Window, error) {
	switch cfg.Backend {
	case window.SDL:
		return sdlwin.Open(cfg)
	default:
		return glfwwin.Open(cfg)
	}
}

// run bootstraps the graphics context, pumps events until the
// window closes and tears everything down.
func run(configuration core.Configuration, openWindow core.WindowOpener, loadDriver core.DriverLoader, logger log.FieldLogger) error {
	gc, err := core.NewBootstrapper(configuration, openWindow, loadDriver, logger).Bootstrap()
	if err != nil {
		return err
	}
	defer gc.Destroy()

	gc.Run(configuration.Time)
	return nil
}

func main() {
	configuration := core.DefaultConfiguration()

	logger := log.New()
	logger.SetOutput(os.Stderr)
	if configuration.Instance.DebugMode {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(configuration, openWindow, vkr.NewDriver, logger); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
