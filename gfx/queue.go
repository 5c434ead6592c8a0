// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import "strings"

// QueueFlags is a capability set of a queue family. Values follow Vulkan bits.
type QueueFlags uint32

// Queue capabilities
const (
	QueueGraphics QueueFlags = 1 << iota
	QueueCompute
	QueueTransfer
	QueueSparseBinding
)

// Has reports if every bit of want is set.
func (f QueueFlags) Has(want QueueFlags) bool {
	return f&want == want
}

func (f QueueFlags) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	for _, n := range []struct {
		flag QueueFlags
		name string
	}{
		{QueueGraphics, "graphics"},
		{QueueCompute, "compute"},
		{QueueTransfer, "transfer"},
		{QueueSparseBinding, "sparse"},
	} {
		if f&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "unknown"
	}
	return strings.Join(names, "|")
}

// MarshalText renders the flags in their string form.
func (f QueueFlags) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// QueueFamily describes a group of queues sharing capabilities.
type QueueFamily struct {
	Index uint32     `json:"index"`
	Flags QueueFlags `json:"flags"`
	Count uint32     `json:"count"`
}
