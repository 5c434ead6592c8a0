// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"errors"
	"testing"

	"github.com/devblok/triangle/core"
	"github.com/devblok/triangle/gfx"
	"github.com/devblok/triangle/gfx/gfxtest"
	qt "github.com/frankban/quicktest"
)

func devices(pds ...*gfxtest.PhysicalDevice) []gfx.PhysicalDevice {
	out := make([]gfx.PhysicalDevice, 0, len(pds))
	for _, pd := range pds {
		out = append(out, pd)
	}
	return out
}

func TestFindQueueFamilies(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name     string
		families []gfx.QueueFlags
		want     core.QueueFamilyIndices
	}{{
		name:     "lowest graphics index wins",
		families: []gfx.QueueFlags{gfx.QueueTransfer, gfx.QueueGraphics, gfx.QueueGraphics},
		want:     core.QueueFamilyIndices{Graphics: 1, HasGraphics: true},
	}, {
		name:     "mixed capabilities",
		families: []gfx.QueueFlags{gfx.QueueGraphics | gfx.QueueCompute | gfx.QueueTransfer},
		want:     core.QueueFamilyIndices{Graphics: 0, HasGraphics: true},
	}, {
		name:     "no graphics",
		families: []gfx.QueueFlags{gfx.QueueCompute, gfx.QueueTransfer},
		want:     core.QueueFamilyIndices{},
	}, {
		name: "no families",
		want: core.QueueFamilyIndices{},
	}}

	for _, test := range tests {
		pd := gfxtest.NewPhysicalDevice(test.name, test.families...)
		got := core.FindQueueFamilies(pd.QueueFamilies())
		c.Assert(got, qt.Equals, test.want, qt.Commentf(test.name))
		c.Assert(got.IsComplete(), qt.Equals, test.want.HasGraphics, qt.Commentf(test.name))
	}
}

func TestSelectPhysicalDeviceNoDevices(t *testing.T) {
	c := qt.New(t)

	called := 0
	probe := func(*core.Candidate) (bool, string) {
		called++
		return true, ""
	}

	candidate, err := core.SelectPhysicalDevice(nil, probe)
	c.Assert(candidate, qt.IsNil)
	c.Assert(errors.Is(err, core.ErrNoPhysicalDevices), qt.Equals, true)
	c.Assert(called, qt.Equals, 0)
}

func TestSelectPhysicalDeviceNoneSuitable(t *testing.T) {
	c := qt.New(t)

	list := devices(
		gfxtest.NewPhysicalDevice("compute", gfx.QueueCompute),
		gfxtest.NewPhysicalDevice("transfer", gfx.QueueTransfer, gfx.QueueSparseBinding),
		gfxtest.NewPhysicalDevice("empty"),
	)

	candidate, err := core.SelectPhysicalDevice(list, core.RequireGraphicsQueue())
	c.Assert(candidate, qt.IsNil)
	c.Assert(errors.Is(err, core.ErrNoSuitableDevice), qt.Equals, true)
	c.Assert(err, qt.ErrorMatches, `could not find suitable GPU: device 0: .*; device 1: .*; device 2: no queue family supports graphics`)
}

func TestSelectPhysicalDeviceFirstMatchWins(t *testing.T) {
	c := qt.New(t)

	for k := 0; k < 4; k++ {
		var pds []*gfxtest.PhysicalDevice
		for i := 0; i < 5; i++ {
			switch {
			case i < k:
				pds = append(pds, gfxtest.NewPhysicalDevice("unsuitable", gfx.QueueTransfer))
			default:
				// every device from k on is suitable
				pds = append(pds, gfxtest.NewPhysicalDevice("suitable", gfx.QueueCompute, gfx.QueueGraphics))
			}
		}

		candidate, err := core.SelectPhysicalDevice(devices(pds...), core.RequireGraphicsQueue())
		c.Assert(err, qt.IsNil)
		c.Assert(candidate.Index, qt.Equals, k)
		c.Assert(candidate.Device, qt.Equals, gfx.PhysicalDevice(pds[k]))
		c.Assert(candidate.Families, qt.Equals, core.QueueFamilyIndices{Graphics: 1, HasGraphics: true})

		for i := k + 1; i < len(pds); i++ {
			c.Assert(pds[i].FamilyQueries, qt.Equals, 0)
		}
	}
}

func TestRequirementsRunInOrder(t *testing.T) {
	c := qt.New(t)

	var order []string
	record := func(name string, ok bool) core.Requirement {
		return func(*core.Candidate) (bool, string) {
			order = append(order, name)
			if !ok {
				return false, name + " failed"
			}
			return true, ""
		}
	}

	pd := gfxtest.NewPhysicalDevice("gpu", gfx.QueueGraphics)
	suitable, reason := core.DeviceIsSuitable(&core.Candidate{Device: pd},
		[]core.Requirement{record("a", true), record("b", false), record("c", true)})
	c.Assert(suitable, qt.Equals, false)
	c.Assert(reason, qt.Equals, "b failed")
	c.Assert(order, qt.DeepEquals, []string{"a", "b"})
}

func TestRequirePresentation(t *testing.T) {
	c := qt.New(t)

	driver := gfxtest.NewDriver()
	instance, err := driver.CreateInstance(gfx.InstanceDescriptor{})
	c.Assert(err, qt.IsNil)
	surface, err := instance.SurfaceFromHandle(1)
	c.Assert(err, qt.IsNil)

	graphicsOnly := gfxtest.NewPhysicalDevice("headless", gfx.QueueGraphics)
	graphicsOnly.Present = map[uint32]bool{}
	presenting := gfxtest.NewPhysicalDevice("display", gfx.QueueGraphics)
	presenting.Present = map[uint32]bool{0: true}
	broken := gfxtest.NewPhysicalDevice("broken", gfx.QueueGraphics)
	broken.SupportErr = errors.New("device lost")

	candidate, err := core.SelectPhysicalDevice(devices(graphicsOnly, broken, presenting),
		core.RequireGraphicsQueue(),
		core.RequirePresentation(surface),
	)
	c.Assert(err, qt.IsNil)
	c.Assert(candidate.Index, qt.Equals, 2)

	_, err = core.SelectPhysicalDevice(devices(graphicsOnly, broken), core.RequirePresentation(surface))
	c.Assert(err, qt.ErrorMatches, `could not find suitable GPU: device 0: queue family 0 cannot present to the surface; device 1: surface support query failed: device lost`)
}

func TestRequireDeviceExtensions(t *testing.T) {
	c := qt.New(t)

	bare := gfxtest.NewPhysicalDevice("bare", gfx.QueueGraphics)
	swapchain := gfxtest.NewPhysicalDevice("swapchain", gfx.QueueGraphics)
	swapchain.DeviceExtensions = []string{"VK_KHR_maintenance1", "VK_KHR_swapchain"}

	ok, reason := core.RequireDeviceExtensions()(&core.Candidate{Device: bare})
	c.Assert(ok, qt.Equals, true)
	c.Assert(reason, qt.Equals, "")

	ok, reason = core.RequireDeviceExtensions("VK_KHR_swapchain")(&core.Candidate{Device: bare})
	c.Assert(ok, qt.Equals, false)
	c.Assert(reason, qt.Equals, "missing device extensions: VK_KHR_swapchain")

	ok, _ = core.RequireDeviceExtensions("VK_KHR_swapchain")(&core.Candidate{Device: swapchain})
	c.Assert(ok, qt.Equals, true)
}
