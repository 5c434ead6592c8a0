// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package core brings a window, a graphics API instance, a presentation
// surface and a logical device up in order, and takes them down in reverse.
package core

import (
	"github.com/devblok/triangle/gfx"
	"github.com/devblok/triangle/window"
	log "github.com/sirupsen/logrus"
)

type releaser struct {
	name    string
	release func()
}

// GraphicsContext owns everything the bootstrap sequence acquired.
// Once created it is ready to use.
type GraphicsContext struct {
	window         window.Window
	instance       gfx.Instance
	surface        gfx.Surface
	physicalDevice gfx.PhysicalDevice
	device         gfx.Device
	queue          gfx.Queue
	families       QueueFamilyIndices

	releasers []releaser
	log       log.FieldLogger
}

func newGraphicsContext(logger log.FieldLogger) *GraphicsContext {
	return &GraphicsContext{log: logger}
}

// own registers how to release something just acquired.
func (gc *GraphicsContext) own(name string, release func()) {
	gc.releasers = append(gc.releasers, releaser{name: name, release: release})
}

// Window returns the platform window
func (gc *GraphicsContext) Window() window.Window { return gc.window }

// Instance returns the API instance
func (gc *GraphicsContext) Instance() gfx.Instance { return gc.instance }

// Surface returns the presentation surface
func (gc *GraphicsContext) Surface() gfx.Surface { return gc.surface }

// PhysicalDevice returns the selected physical device
func (gc *GraphicsContext) PhysicalDevice() gfx.PhysicalDevice { return gc.physicalDevice }

// Device returns the logical device
func (gc *GraphicsContext) Device() gfx.Device { return gc.device }

// Queue returns the presentation queue
func (gc *GraphicsContext) Queue() gfx.Queue { return gc.queue }

// QueueFamilies returns the queue families in use
func (gc *GraphicsContext) QueueFamilies() QueueFamilyIndices { return gc.families }

// Run polls window events until the window is asked to close.
func (gc *GraphicsContext) Run(cfg TimeConfiguration) {
	if gc.window == nil {
		return
	}

	timeService := NewTime(cfg)
	defer timeService.Stop()

	for !gc.window.ShouldClose() {
		gc.window.PollEvents()
		timeService.WaitEvent()
	}
	gc.log.Debug("event loop exited")
}

// Destroy releases everything in the reverse order of acquisition.
// It is safe to call more than once.
func (gc *GraphicsContext) Destroy() {
	for i := len(gc.releasers) - 1; i >= 0; i-- {
		r := gc.releasers[i]
		r.release()
		gc.log.WithField("resource", r.name).Debug("released")
	}
	gc.releasers = nil
}
