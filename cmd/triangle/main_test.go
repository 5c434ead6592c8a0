// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"errors"
	"testing"

	"github.com/devblok/triangle/core"
	"github.com/devblok/triangle/gfx"
	"github.com/devblok/triangle/gfx/gfxtest"
	qt "github.com/frankban/quicktest"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestRunCleanShutdown(t *testing.T) {
	c := qt.New(t)

	driver := gfxtest.NewDriver(gfxtest.NewPhysicalDevice("gpu", gfx.QueueGraphics))
	driver.Layers = []string{core.KhronosValidationLayer}
	w := gfxtest.NewWindow(driver.Recorder, "VK_KHR_surface")
	w.CloseAfter = 2

	cfg := core.DefaultConfiguration()
	cfg.Instance.DebugMode = true
	cfg.Time.EventPollDelay = 1

	logger, _ := test.NewNullLogger()
	err := run(cfg, w.Opener(nil), driver.Loader(), logger)
	c.Assert(err, qt.IsNil)

	c.Assert(w.Polls, qt.Equals, 2)
	c.Assert(driver.Recorder.Releases(), qt.DeepEquals, []string{"device", "surface", "instance", "window"})
	c.Assert(driver.Recorder.Violations, qt.HasLen, 0)
}

func TestRunFailure(t *testing.T) {
	c := qt.New(t)

	driver := gfxtest.NewDriver()
	w := gfxtest.NewWindow(driver.Recorder, "VK_KHR_surface")

	cfg := core.DefaultConfiguration()
	cfg.Instance.DebugMode = false

	logger, _ := test.NewNullLogger()
	err := run(cfg, w.Opener(nil), driver.Loader(), logger)
	c.Assert(errors.Is(err, core.ErrNoPhysicalDevices), qt.Equals, true)
	c.Assert(w.Polls, qt.Equals, 0)
	c.Assert(driver.Recorder.Releases(), qt.DeepEquals, []string{"surface", "instance", "window"})
}
