// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"testing"

	"github.com/devblok/triangle/gfx"
	vk "github.com/devblok/vulkan"
	qt "github.com/frankban/quicktest"
)

func TestSafeStrings(t *testing.T) {
	c := qt.New(t)
	c.Assert(safeString("VK_KHR_surface"), qt.Equals, "VK_KHR_surface\x00")
	c.Assert(safeString("VK_KHR_surface\x00"), qt.Equals, "VK_KHR_surface\x00")
	c.Assert(safeStrings(nil), qt.IsNil)
	c.Assert(safeStrings([]string{"a", "b\x00"}), qt.DeepEquals, []string{"a\x00", "b\x00"})
}

func TestDeviceTypeName(t *testing.T) {
	c := qt.New(t)
	c.Assert(deviceTypeName(vk.PhysicalDeviceTypeDiscreteGpu), qt.Equals, "discrete")
	c.Assert(deviceTypeName(vk.PhysicalDeviceTypeIntegratedGpu), qt.Equals, "integrated")
	c.Assert(deviceTypeName(vk.PhysicalDeviceTypeCpu), qt.Equals, "cpu")
	c.Assert(deviceTypeName(vk.PhysicalDeviceTypeOther), qt.Equals, "other")
}

func TestQueueFlagsMatchVulkanBits(t *testing.T) {
	c := qt.New(t)
	c.Assert(uint32(gfx.QueueGraphics), qt.Equals, uint32(vk.QueueGraphicsBit))
	c.Assert(uint32(gfx.QueueCompute), qt.Equals, uint32(vk.QueueComputeBit))
	c.Assert(uint32(gfx.QueueTransfer), qt.Equals, uint32(vk.QueueTransferBit))
	c.Assert(uint32(gfx.QueueSparseBinding), qt.Equals, uint32(vk.QueueSparseBindingBit))
}

func TestSurfaceFromNullHandle(t *testing.T) {
	c := qt.New(t)
	_, err := (&Instance{}).SurfaceFromHandle(0)
	c.Assert(err, qt.ErrorMatches, "vkr: null surface handle")
}
