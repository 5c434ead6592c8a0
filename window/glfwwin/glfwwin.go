// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package glfwwin opens windows through GLFW.
// Everything here must run on the main OS thread.
package glfwwin

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/devblok/triangle/gfx"
	"github.com/devblok/triangle/window"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Open initialises GLFW and creates the window.
func Open(cfg window.Config) (window.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw.Init(): %s", window.ErrInit, err)
	}
	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: glfw: vulkan loader not found", window.ErrInit)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: glfw.CreateWindow(): %s", window.ErrInit, err)
	}
	w.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	return &Window{window: w}, nil
}

// Window is a GLFW window.
type Window struct {
	window *glfw.Window
}

// ProcAddr implements interface
func (w *Window) ProcAddr() unsafe.Pointer {
	return glfw.GetVulkanGetInstanceProcAddress()
}

// RequiredExtensions implements interface
func (w *Window) RequiredExtensions() []string {
	return w.window.GetRequiredInstanceExtensions()
}

// CreateSurface implements interface
func (w *Window) CreateSurface(instance gfx.Instance) (gfx.Surface, error) {
	raw, err := w.window.CreateWindowSurface(instance.Handle(), nil)
	if err != nil {
		return nil, errors.New("glfw.CreateWindowSurface(): " + err.Error())
	}
	return instance.SurfaceFromHandle(raw)
}

// ShouldClose implements interface
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// PollEvents implements interface
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Release destroys the window and terminates GLFW.
func (w *Window) Release() {
	w.window.Destroy()
	w.window = nil
	glfw.Terminate()
}
