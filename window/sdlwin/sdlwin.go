// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package sdlwin opens windows through SDL2.
// Everything here must run on the main OS thread.
package sdlwin

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/devblok/triangle/gfx"
	"github.com/devblok/triangle/window"
	"github.com/veandco/go-sdl2/sdl"
)

// Open initialises SDL video and events, loads the Vulkan
// library and creates the window.
func Open(cfg window.Config) (window.Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("%w: sdl.Init(): %s", window.ErrInit, err)
	}

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("%w: sdl.VulkanLoadLibrary(): %s", window.ErrInit, err)
	}

	// Not passing WINDOW_RESIZABLE keeps the window fixed size.
	w, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_VULKAN)
	if err != nil {
		sdl.VulkanUnloadLibrary()
		sdl.Quit()
		return nil, fmt.Errorf("%w: sdl.CreateWindow(): %s", window.ErrInit, err)
	}

	return &Window{window: w}, nil
}

// Window is an SDL window. SDL has no close flag of its own,
// it is raised from the event queue.
type Window struct {
	window *sdl.Window
	closed bool
}

// ProcAddr implements interface
func (w *Window) ProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

// RequiredExtensions implements interface
func (w *Window) RequiredExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

// CreateSurface implements interface
func (w *Window) CreateSurface(instance gfx.Instance) (gfx.Surface, error) {
	srf, err := w.window.VulkanCreateSurface(instance.Handle())
	if err != nil {
		return nil, errors.New("sdl.VulkanCreateSurface(): " + err.Error())
	}
	return instance.SurfaceFromHandle(uintptr(srf))
}

// ShouldClose implements interface
func (w *Window) ShouldClose() bool {
	return w.closed
}

// PollEvents implements interface
func (w *Window) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch et := event.(type) {
		case *sdl.KeyboardEvent:
			if et.Keysym.Sym == sdl.K_ESCAPE {
				w.closed = true
			}
		case *sdl.QuitEvent:
			w.closed = true
		}
	}
}

// Release destroys the window, unloads the Vulkan library and quits SDL.
func (w *Window) Release() {
	w.window.Destroy()
	w.window = nil
	sdl.VulkanUnloadLibrary()
	sdl.Quit()
}
