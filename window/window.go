// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package window describes platform windows that can host a Vulkan surface.
package window

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/devblok/triangle/gfx"
)

// ErrInit is returned when the window system library fails to start.
var ErrInit = errors.New("window system initialisation failed")

// Backend identifies a window system library.
type Backend string

// Known backends
const (
	GLFW Backend = "glfw"
	SDL  Backend = "sdl"
)

// ParseBackend maps a name to a Backend.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(name))); b {
	case GLFW, SDL:
		return b, nil
	case "sdl2":
		return SDL, nil
	default:
		return "", fmt.Errorf("window: unknown backend %q", name)
	}
}

// Config describes the window to open.
type Config struct {
	Backend Backend
	Width   int
	Height  int
	Title   string
}

// Validate checks that a window can be made out of the config.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", c.Width, c.Height)
	}
	if _, err := ParseBackend(string(c.Backend)); err != nil {
		return err
	}
	return nil
}

// Window is a non-resizable platform window without a client rendering API.
// Releasing it destroys the window and shuts the window library down.
type Window interface {
	gfx.Releasable

	// ProcAddr returns the vkGetInstanceProcAddr the window library loaded.
	ProcAddr() unsafe.Pointer

	// RequiredExtensions lists instance extensions needed to present to this window.
	RequiredExtensions() []string

	// CreateSurface creates a presentation surface for the window
	// against the instance. The instance owns the returned surface.
	CreateSurface(gfx.Instance) (gfx.Surface, error)

	// ShouldClose reports if the window was asked to close.
	ShouldClose() bool

	// PollEvents processes pending window system events.
	PollEvents()
}
