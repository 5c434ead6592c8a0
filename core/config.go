// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"github.com/devblok/triangle/gfx"
	"github.com/devblok/triangle/window"
)

// KhronosValidationLayer is the validation layer requested in debug builds.
const KhronosValidationLayer = "VK_LAYER_KHRONOS_validation"

// Configuration defines a global bootstrap configuration setting
type Configuration struct {
	Window   WindowConfiguration
	Instance InstanceConfiguration
	Device   DeviceConfiguration
	Time     TimeConfiguration
}

// WindowConfiguration is used to configure the platform window
type WindowConfiguration struct {
	Backend      window.Backend
	ScreenWidth  int
	ScreenHeight int
	Title        string
}

// InstanceConfiguration is used to configure the API instance
type InstanceConfiguration struct {
	ApplicationName    string
	ApplicationVersion gfx.Version
	EngineName         string
	EngineVersion      gfx.Version
	APIVersion         gfx.Version

	// DebugMode enables ValidationLayers on the instance and the device
	DebugMode        bool
	ValidationLayers []string

	// Extensions are requested on top of the ones the window system needs
	Extensions []string
}

// Layers returns the layers to enable, none unless in DebugMode.
func (c InstanceConfiguration) Layers() []string {
	if !c.DebugMode {
		return nil
	}
	return c.ValidationLayers
}

// DeviceConfiguration is used to configure the logical device
type DeviceConfiguration struct {
	// Extensions must be supported by a device for it to be selected
	// and are enabled on the logical device
	Extensions    []string
	QueuePriority float32
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// EventPollDelay is the pause between event polls in milliseconds.
	// To poll continuously, set to 0
	EventPollDelay int
}

// DefaultConfiguration returns the configuration for this build.
func DefaultConfiguration() Configuration {
	return Configuration{
		Window: WindowConfiguration{
			Backend:      window.GLFW,
			ScreenWidth:  800,
			ScreenHeight: 600,
			Title:        "Vulkan",
		},
		Instance: InstanceConfiguration{
			ApplicationName:    "Hello Triangle",
			ApplicationVersion: gfx.MakeVersion(1, 0, 0),
			EngineName:         "No Engine",
			EngineVersion:      gfx.MakeVersion(1, 0, 0),
			APIVersion:         gfx.MakeVersion(1, 0, 0),
			DebugMode:          enableValidationLayers,
			ValidationLayers:   []string{KhronosValidationLayer},
		},
		Device: DeviceConfiguration{
			QueuePriority: 1.0,
		},
		Time: TimeConfiguration{
			EventPollDelay: 10,
		},
	}
}

func (c WindowConfiguration) windowConfig() window.Config {
	return window.Config{
		Backend: c.Backend,
		Width:   c.ScreenWidth,
		Height:  c.ScreenHeight,
		Title:   c.Title,
	}
}
