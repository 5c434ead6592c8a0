// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import "fmt"

// Version is a packed major.minor.patch version number.
type Version uint32

// MakeVersion packs a version number.
func MakeVersion(major, minor, patch uint32) Version {
	return Version(major<<22 | minor<<12 | patch)
}

// Major part of the version
func (v Version) Major() uint32 { return uint32(v) >> 22 }

// Minor part of the version
func (v Version) Minor() uint32 { return uint32(v) >> 12 & 0x3ff }

// Patch part of the version
func (v Version) Patch() uint32 { return uint32(v) & 0xfff }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// MarshalText renders the version in dotted form.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// PhysicalDeviceInfo describes available physical properties of a rendering device
type PhysicalDeviceInfo struct {
	ID            int           `json:"id"`
	VendorID      int           `json:"vendorId"`
	DriverVersion int           `json:"driverVersion"`
	APIVersion    Version       `json:"apiVersion"`
	Name          string        `json:"name"`
	Type          string        `json:"type"`
	Invalid       bool          `json:"invalid,omitempty"`
	Extensions    []string      `json:"extensions,omitempty"`
	Layers        []string      `json:"layers,omitempty"`
	Memory        uint64        `json:"memory"`
	QueueFamilies []QueueFamily `json:"queueFamilies"`
}
