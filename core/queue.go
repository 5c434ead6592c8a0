// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "github.com/devblok/triangle/gfx"

// QueueFamilyIndices records the queue families a device offers for our use.
type QueueFamilyIndices struct {
	Graphics    uint32
	HasGraphics bool
}

// IsComplete reports if every needed family was found.
func (q QueueFamilyIndices) IsComplete() bool {
	return q.HasGraphics
}

// FindQueueFamilies scans families in index order and
// stops at the first one capable of graphics.
func FindQueueFamilies(families []gfx.QueueFamily) QueueFamilyIndices {
	var indices QueueFamilyIndices
	for i, family := range families {
		if family.Flags.Has(gfx.QueueGraphics) {
			indices.Graphics = uint32(i)
			indices.HasGraphics = true
		}

		if indices.IsComplete() {
			break
		}
	}
	return indices
}
