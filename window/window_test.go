// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package window_test

import (
	"testing"

	"github.com/devblok/triangle/window"
	qt "github.com/frankban/quicktest"
)

func TestParseBackend(t *testing.T) {
	c := qt.New(t)

	for name, want := range map[string]window.Backend{
		"glfw":   window.GLFW,
		" GLFW ": window.GLFW,
		"sdl":    window.SDL,
		"SDL2":   window.SDL,
	} {
		b, err := window.ParseBackend(name)
		c.Assert(err, qt.IsNil)
		c.Assert(b, qt.Equals, want)
	}

	_, err := window.ParseBackend("wayland")
	c.Assert(err, qt.ErrorMatches, `window: unknown backend "wayland"`)
}

func TestConfigValidate(t *testing.T) {
	c := qt.New(t)

	cfg := window.Config{Backend: window.GLFW, Width: 800, Height: 600, Title: "Vulkan"}
	c.Assert(cfg.Validate(), qt.IsNil)

	cfg.Height = 0
	c.Assert(cfg.Validate(), qt.ErrorMatches, `window: invalid size 800x0`)

	cfg.Height = 600
	cfg.Backend = "x11"
	c.Assert(cfg.Validate(), qt.ErrorMatches, `window: unknown backend "x11"`)
}
