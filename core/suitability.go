// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"strings"

	"github.com/devblok/triangle/gfx"
)

// Candidate is a physical device under evaluation along
// with what queue family discovery found on it.
type Candidate struct {
	Device   gfx.PhysicalDevice
	Index    int
	Families QueueFamilyIndices
}

// Requirement is one suitability test. When the device does
// not meet it, reason says why.
type Requirement func(*Candidate) (ok bool, reason string)

// RequireGraphicsQueue demands a graphics capable queue family.
func RequireGraphicsQueue() Requirement {
	return func(c *Candidate) (bool, string) {
		if !c.Families.HasGraphics {
			return false, "no queue family supports graphics"
		}
		return true, ""
	}
}

// RequirePresentation demands that the graphics queue family
// can present to surface.
func RequirePresentation(surface gfx.Surface) Requirement {
	return func(c *Candidate) (bool, string) {
		if !c.Families.HasGraphics {
			return false, "no queue family to present from"
		}
		supported, err := c.Device.SurfaceSupport(c.Families.Graphics, surface)
		if err != nil {
			return false, "surface support query failed: " + err.Error()
		}
		if !supported {
			return false, fmt.Sprintf("queue family %d cannot present to the surface", c.Families.Graphics)
		}
		return true, ""
	}
}

// RequireDeviceExtensions demands every named device extension.
func RequireDeviceExtensions(names ...string) Requirement {
	return func(c *Candidate) (bool, string) {
		if len(names) == 0 {
			return true, ""
		}
		available, err := c.Device.Extensions()
		if err != nil {
			return false, "extension enumeration failed: " + err.Error()
		}
		if missing := missingNames(available, names); len(missing) > 0 {
			return false, "missing device extensions: " + strings.Join(missing, ", ")
		}
		return true, ""
	}
}

// DeviceIsSuitable runs requirements in order and
// stops at the first one that is not met.
func DeviceIsSuitable(c *Candidate, requirements []Requirement) (bool, string) {
	for _, req := range requirements {
		if ok, reason := req(c); !ok {
			return false, reason
		}
	}
	return true, ""
}

// SelectPhysicalDevice returns the first device in driver order that
// meets every requirement.
func SelectPhysicalDevice(devices []gfx.PhysicalDevice, requirements ...Requirement) (*Candidate, error) {
	if len(devices) == 0 {
		return nil, ErrNoPhysicalDevices
	}

	reasons := make([]string, 0, len(devices))
	for i, device := range devices {
		candidate := &Candidate{
			Device:   device,
			Index:    i,
			Families: FindQueueFamilies(device.QueueFamilies()),
		}
		suitable, reason := DeviceIsSuitable(candidate, requirements)
		if suitable {
			return candidate, nil
		}
		reasons = append(reasons, fmt.Sprintf("device %d: %s", i, reason))
	}
	return nil, fmt.Errorf("%w: %s", ErrNoSuitableDevice, strings.Join(reasons, "; "))
}

// missingNames returns the required names absent from available, in required order.
func missingNames(available, required []string) []string {
	have := make(map[string]struct{}, len(available))
	for _, name := range available {
		have[name] = struct{}{}
	}
	var missing []string
	for _, name := range required {
		if _, ok := have[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// mergeNames appends extra to names, skipping duplicates.
func mergeNames(names, extra []string) []string {
	merged := append([]string(nil), names...)
	for _, name := range extra {
		if len(missingNames(merged, []string{name})) == 1 {
			merged = append(merged, name)
		}
	}
	return merged
}
