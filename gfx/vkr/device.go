// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"errors"
	"fmt"

	"github.com/devblok/triangle/gfx"
	vk "github.com/devblok/vulkan"
)

// PhysicalDevice is a driver reported GPU.
type PhysicalDevice struct {
	device vk.PhysicalDevice
}

// QueueFamilies implements interface
func (p *PhysicalDevice) QueueFamilies() []gfx.QueueFamily {
	var queueFamilyCount uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(p.device, &queueFamilyCount, nil)
	queueFamilies := make([]vk.QueueFamilyProperties, queueFamilyCount)
	vk.GetPhysicalDeviceQueueFamilyProperties(p.device, &queueFamilyCount, queueFamilies)

	families := make([]gfx.QueueFamily, 0, queueFamilyCount)
	for i := uint32(0); i < queueFamilyCount; i++ {
		queueFamilies[i].Deref()
		families = append(families, gfx.QueueFamily{
			Index: i,
			Flags: gfx.QueueFlags(queueFamilies[i].QueueFlags),
			Count: queueFamilies[i].QueueCount,
		})
	}
	return families
}

// SurfaceSupport implements interface
func (p *PhysicalDevice) SurfaceSupport(family uint32, surface gfx.Surface) (bool, error) {
	s, ok := surface.(*Surface)
	if !ok {
		return false, fmt.Errorf("vkr: surface of type %T is not a vulkan surface", surface)
	}
	var supported vk.Bool32
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceSupport(p.device, family, s.surface, &supported)); err != nil {
		return false, errors.New("vk.GetPhysicalDeviceSurfaceSupport(): " + err.Error())
	}
	return supported.B(), nil
}

// Extensions implements interface
func (p *PhysicalDevice) Extensions() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(p.device, "", &count, nil)); err != nil {
		return nil, errors.New("vk.EnumerateDeviceExtensionProperties(): " + err.Error())
	}
	list := make([]vk.ExtensionProperties, count)
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(p.device, "", &count, list)); err != nil {
		return nil, errors.New("vk.EnumerateDeviceExtensionProperties(): " + err.Error())
	}
	names := make([]string, 0, count)
	for _, ext := range list[:count] {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

// Info implements interface
func (p *PhysicalDevice) Info() gfx.PhysicalDeviceInfo {
	var pdi gfx.PhysicalDeviceInfo

	if extensions, err := p.Extensions(); err != nil {
		pdi.Invalid = true
	} else {
		pdi.Extensions = extensions
	}

	// Get layers info
	var numDeviceLayers uint32
	if err := vk.Error(vk.EnumerateDeviceLayerProperties(p.device, &numDeviceLayers, nil)); err != nil {
		pdi.Invalid = true
	}
	deviceLayers := make([]vk.LayerProperties, numDeviceLayers)
	if err := vk.Error(vk.EnumerateDeviceLayerProperties(p.device, &numDeviceLayers, deviceLayers)); err != nil {
		pdi.Invalid = true
	}
	for _, layer := range deviceLayers[:numDeviceLayers] {
		layer.Deref()
		pdi.Layers = append(pdi.Layers, vk.ToString(layer.LayerName[:]))
	}

	// Get memory info
	var memoryProperties vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(p.device, &memoryProperties)
	memoryProperties.Deref()
	for iMem := uint32(0); iMem < memoryProperties.MemoryHeapCount; iMem++ {
		memoryProperties.MemoryHeaps[iMem].Deref()
		pdi.Memory += uint64(memoryProperties.MemoryHeaps[iMem].Size)
	}

	// Get general device info
	var physicalDeviceProperties vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(p.device, &physicalDeviceProperties)
	physicalDeviceProperties.Deref()
	pdi.ID = int(physicalDeviceProperties.DeviceID)
	pdi.VendorID = int(physicalDeviceProperties.VendorID)
	pdi.Name = vk.ToString(physicalDeviceProperties.DeviceName[:])
	pdi.DriverVersion = int(physicalDeviceProperties.DriverVersion)
	pdi.APIVersion = gfx.Version(physicalDeviceProperties.ApiVersion)
	pdi.Type = deviceTypeName(physicalDeviceProperties.DeviceType)

	pdi.QueueFamilies = p.QueueFamilies()
	return pdi
}

// CreateDevice implements interface
func (p *PhysicalDevice) CreateDevice(desc gfx.DeviceDescriptor) (gfx.Device, error) {
	queueInfos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: desc.QueueFamily,
		QueueCount:       uint32(len(desc.QueuePriorities)),
		PQueuePriorities: desc.QueuePriorities,
	}}

	dci := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(desc.Extensions)),
		PpEnabledExtensionNames: safeStrings(desc.Extensions),
		EnabledLayerCount:       uint32(len(desc.Layers)),
		PpEnabledLayerNames:     safeStrings(desc.Layers),
		PEnabledFeatures:        []vk.PhysicalDeviceFeatures{{}},
	}

	var device vk.Device
	if err := vk.Error(vk.CreateDevice(p.device, &dci, nil, &device)); err != nil {
		return nil, errors.New("vk.CreateDevice(): " + err.Error())
	}
	return &Device{device: device}, nil
}

// Device is a Vulkan logical device.
type Device struct {
	device vk.Device
}

// Queue implements interface
func (d *Device) Queue(family, index uint32) gfx.Queue {
	var queue vk.Queue
	vk.GetDeviceQueue(d.device, family, index, &queue)
	return &Queue{family: family, queue: queue}
}

// WaitIdle implements interface
func (d *Device) WaitIdle() error {
	if err := vk.Error(vk.DeviceWaitIdle(d.device)); err != nil {
		return errors.New("vk.DeviceWaitIdle(): " + err.Error())
	}
	return nil
}

// Release implements interface
func (d *Device) Release() {
	vk.DestroyDevice(d.device, nil)
	d.device = nil
}

// Queue is a queue retrieved from a Device.
type Queue struct {
	family uint32
	queue  vk.Queue
}

// Family implements interface
func (q *Queue) Family() uint32 {
	return q.family
}

// Handle returns internal vk.Queue
func (q *Queue) Handle() interface{} {
	return q.queue
}
