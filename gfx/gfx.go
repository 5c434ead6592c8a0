// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx defines the graphics API features that drivers must implement.
package gfx

// Releasable defines any driver-owned object that can be freed.
type Releasable interface {

	// Release destroys the object. It must be called once.
	Release()
}

// ApplicationInfo is informational data handed to the driver on instance creation.
type ApplicationInfo struct {
	Name          string
	Version       Version
	EngineName    string
	EngineVersion Version
	APIVersion    Version
}

// InstanceDescriptor describes an instance to be created.
type InstanceDescriptor struct {
	Application ApplicationInfo
	Extensions  []string
	Layers      []string
}

// DeviceDescriptor describes a logical device to be created
// with a single queue family.
type DeviceDescriptor struct {
	QueueFamily     uint32
	QueuePriorities []float32
	Extensions      []string
	Layers          []string
}

// Driver is the entry point into a graphics API.
type Driver interface {

	// AvailableLayers lists instance layers known to the loader.
	AvailableLayers() ([]string, error)

	// AvailableExtensions lists instance extensions known to the loader.
	AvailableExtensions() ([]string, error)

	// CreateInstance creates the API instance.
	CreateInstance(InstanceDescriptor) (Instance, error)
}

// Instance is the application's connection to the graphics API.
type Instance interface {
	Releasable

	// Handle returns the inner handle of the underlying API,
	// for window systems that create surfaces on their own.
	Handle() interface{}

	// PhysicalDevices enumerates devices in driver order.
	PhysicalDevices() ([]PhysicalDevice, error)

	// SurfaceFromHandle takes ownership of a surface the window system created.
	SurfaceFromHandle(raw uintptr) (Surface, error)
}

// Surface is a presentation target bound to a window.
type Surface interface {
	Releasable

	// Handle returns the inner handle of the underlying API.
	Handle() interface{}
}

// PhysicalDevice is a device reported by the driver. It is not owned
// by the application and is never released.
type PhysicalDevice interface {
	Info() PhysicalDeviceInfo

	// QueueFamilies returns queue family properties ordered by index.
	QueueFamilies() []QueueFamily

	// SurfaceSupport reports if the queue family can present to surface.
	SurfaceSupport(family uint32, surface Surface) (bool, error)

	// Extensions lists device extensions.
	Extensions() ([]string, error)

	CreateDevice(DeviceDescriptor) (Device, error)
}

// Device is an application owned interface to a physical device.
type Device interface {
	Releasable

	// Queue retrieves a queue created along with the device.
	Queue(family, index uint32) Queue

	// WaitIdle blocks until all work submitted to the device is done.
	WaitIdle() error
}

// Queue is a view into a device queue, valid for the life of the device.
type Queue interface {
	Family() uint32
	Handle() interface{}
}
