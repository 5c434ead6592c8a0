// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	"github.com/devblok/triangle/core"
	"github.com/devblok/triangle/gfx"
	"github.com/devblok/triangle/window"
	qt "github.com/frankban/quicktest"
)

func TestDefaultConfiguration(t *testing.T) {
	c := qt.New(t)

	cfg := core.DefaultConfiguration()
	c.Assert(cfg.Window, qt.DeepEquals, core.WindowConfiguration{
		Backend:      window.GLFW,
		ScreenWidth:  800,
		ScreenHeight: 600,
		Title:        "Vulkan",
	})
	c.Assert(cfg.Instance.ApplicationVersion, qt.Equals, gfx.MakeVersion(1, 0, 0))
	c.Assert(cfg.Instance.ValidationLayers, qt.DeepEquals, []string{"VK_LAYER_KHRONOS_validation"})
	c.Assert(cfg.Device.QueuePriority, qt.Equals, float32(1.0))
	c.Assert(cfg.Device.Extensions, qt.HasLen, 0)
}

func TestInstanceLayers(t *testing.T) {
	c := qt.New(t)

	cfg := core.InstanceConfiguration{ValidationLayers: []string{core.KhronosValidationLayer}}
	c.Assert(cfg.Layers(), qt.IsNil)

	cfg.DebugMode = true
	c.Assert(cfg.Layers(), qt.DeepEquals, []string{core.KhronosValidationLayer})
}
