// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package vkr implements the gfx contracts on Vulkan.
package vkr

import (
	"errors"
	"unsafe"

	"github.com/devblok/triangle/gfx"
	vk "github.com/devblok/vulkan"
)

// NewDriver initialises the Vulkan loader. procAddr is the
// vkGetInstanceProcAddr a window system hands out; when nil the
// default system loader is used.
func NewDriver(procAddr unsafe.Pointer) (gfx.Driver, error) {
	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return nil, errors.New("vk.SetDefaultGetInstanceProcAddr(): " + err.Error())
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}

	if err := vk.Init(); err != nil {
		return nil, errors.New("vk.Init(): " + err.Error())
	}
	return &Driver{}, nil
}

// Driver is the Vulkan loader.
type Driver struct{}

// AvailableLayers implements interface
func (d *Driver) AvailableLayers() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceLayerProperties(): " + err.Error())
	}
	list := make([]vk.LayerProperties, count)
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, list)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceLayerProperties(): " + err.Error())
	}
	names := make([]string, 0, count)
	for _, layer := range list[:count] {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return names, nil
}

// AvailableExtensions implements interface
func (d *Driver) AvailableExtensions() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, nil)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceExtensionProperties(): " + err.Error())
	}
	list := make([]vk.ExtensionProperties, count)
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, list)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceExtensionProperties(): " + err.Error())
	}
	names := make([]string, 0, count)
	for _, ext := range list[:count] {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

// CreateInstance implements interface
func (d *Driver) CreateInstance(desc gfx.InstanceDescriptor) (gfx.Instance, error) {
	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		ApiVersion:         uint32(desc.Application.APIVersion),
		ApplicationVersion: uint32(desc.Application.Version),
		PApplicationName:   safeString(desc.Application.Name),
		EngineVersion:      uint32(desc.Application.EngineVersion),
		PEngineName:        safeString(desc.Application.EngineName),
	}

	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(desc.Extensions)),
		PpEnabledExtensionNames: safeStrings(desc.Extensions),
		EnabledLayerCount:       uint32(len(desc.Layers)),
		PpEnabledLayerNames:     safeStrings(desc.Layers),
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, errors.New("vk.CreateInstance(): " + err.Error())
	}
	vk.InitInstance(instance)

	return &Instance{
		instance: instance,
	}, nil
}

// Instance describes a Vulkan API Instance
type Instance struct {
	instance vk.Instance
}

// Handle returns internal vk.Instance
func (v *Instance) Handle() interface{} {
	return v.instance
}

// PhysicalDevices implements interface
func (v *Instance) PhysicalDevices() ([]gfx.PhysicalDevice, error) {
	var deviceCount uint32
	if err := vk.Error(vk.EnumeratePhysicalDevices(v.instance, &deviceCount, nil)); err != nil {
		return nil, errors.New("vk.EnumeratePhysicalDevices(): " + err.Error())
	}
	availableDevices := make([]vk.PhysicalDevice, deviceCount)
	if err := vk.Error(vk.EnumeratePhysicalDevices(v.instance, &deviceCount, availableDevices)); err != nil {
		return nil, errors.New("vk.EnumeratePhysicalDevices(): " + err.Error())
	}

	devices := make([]gfx.PhysicalDevice, 0, deviceCount)
	for _, pd := range availableDevices[:deviceCount] {
		devices = append(devices, &PhysicalDevice{device: pd})
	}
	return devices, nil
}

// SurfaceFromHandle implements interface
func (v *Instance) SurfaceFromHandle(raw uintptr) (gfx.Surface, error) {
	if raw == 0 {
		return nil, errors.New("vkr: null surface handle")
	}
	return &Surface{
		instance: v.instance,
		surface:  vk.SurfaceFromPointer(raw),
	}, nil
}

// Release implements interface
func (v *Instance) Release() {
	vk.DestroyInstance(v.instance, nil)
	v.instance = nil
}

// Surface is a VkSurfaceKHR owned by the instance it was created against.
type Surface struct {
	instance vk.Instance
	surface  vk.Surface
}

// Handle returns internal vk.Surface
func (s *Surface) Handle() interface{} {
	return s.surface
}

// Release implements interface
func (s *Surface) Release() {
	vk.DestroySurface(s.instance, s.surface, nil)
	s.surface = vk.NullSurface
}
