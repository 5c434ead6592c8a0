// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"
	"strings"
	"unsafe"

	"github.com/devblok/triangle/gfx"
	"github.com/devblok/triangle/window"
	log "github.com/sirupsen/logrus"
)

// WindowOpener opens a platform window.
type WindowOpener func(window.Config) (window.Window, error)

// DriverLoader loads the graphics driver through the
// vkGetInstanceProcAddr a window library provides.
type DriverLoader func(procAddr unsafe.Pointer) (gfx.Driver, error)

// NewBootstrapper creates a Bootstrapper. A nil logger means the standard logger.
func NewBootstrapper(cfg Configuration, openWindow WindowOpener, loadDriver DriverLoader, logger log.FieldLogger) *Bootstrapper {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Bootstrapper{
		configuration: cfg,
		openWindow:    openWindow,
		loadDriver:    loadDriver,
		log:           logger,
	}
}

// Bootstrapper runs the bootstrap sequence.
type Bootstrapper struct {
	configuration Configuration

	openWindow WindowOpener
	loadDriver DriverLoader
	log        log.FieldLogger
}

// Bootstrap opens the window, creates the instance and the surface,
// selects a physical device and creates the logical device. The first
// failing step stops the sequence and everything acquired until then
// is released before the error is returned.
func (b *Bootstrapper) Bootstrap() (gc *GraphicsContext, err error) {
	gc = newGraphicsContext(b.log)
	defer func() {
		if err != nil {
			b.log.WithError(err).Debug("bootstrap failed, releasing")
			gc.Destroy()
			gc = nil
		}
	}()

	for _, step := range []func(*GraphicsContext) error{
		b.initWindow,
		b.createInstance,
		b.createSurface,
		b.selectPhysicalDevice,
		b.createDevice,
	} {
		if err = step(gc); err != nil {
			return gc, err
		}
	}
	return gc, nil
}

func (b *Bootstrapper) initWindow(gc *GraphicsContext) error {
	cfg := b.configuration.Window.windowConfig()
	if err := cfg.Validate(); err != nil {
		return fail(StepWindow, ErrWindowInit, err)
	}

	w, err := b.openWindow(cfg)
	if err != nil {
		if errors.Is(err, ErrWindowInit) {
			return &StepError{Step: StepWindow, Err: err}
		}
		return fail(StepWindow, ErrWindowInit, err)
	}

	gc.window = w
	gc.own("window", func() {
		gc.window.Release()
		gc.window = nil
	})
	b.log.WithFields(log.Fields{
		"step":    StepWindow,
		"backend": cfg.Backend,
		"width":   cfg.Width,
		"height":  cfg.Height,
	}).Debug("window opened")
	return nil
}

func (b *Bootstrapper) createInstance(gc *GraphicsContext) error {
	cfg := b.configuration.Instance
	logger := b.log.WithField("step", StepInstance)

	driver, err := b.loadDriver(gc.window.ProcAddr())
	if err != nil {
		return fail(StepInstance, ErrInstanceCreation, err)
	}

	layers := cfg.Layers()
	if len(layers) > 0 {
		available, err := driver.AvailableLayers()
		if err != nil {
			return fail(StepInstance, ErrValidationLayerUnsupported, err)
		}
		if missing := missingNames(available, layers); len(missing) > 0 {
			return fail(StepInstance, ErrValidationLayerUnsupported, errors.New(strings.Join(missing, ", ")))
		}
		logger.WithField("layers", layers).Debug("validation layers enabled")
	}

	extensions := mergeNames(gc.window.RequiredExtensions(), cfg.Extensions)
	if available, err := driver.AvailableExtensions(); err != nil {
		logger.WithError(err).Warn("instance extensions could not be enumerated")
	} else {
		logger.WithField("extensions", available).Debug("available instance extensions")
		if missing := missingNames(available, extensions); len(missing) > 0 {
			logger.WithField("missing", missing).Warn("required instance extensions not reported by the driver")
		}
	}

	instance, err := driver.CreateInstance(gfx.InstanceDescriptor{
		Application: gfx.ApplicationInfo{
			Name:          cfg.ApplicationName,
			Version:       cfg.ApplicationVersion,
			EngineName:    cfg.EngineName,
			EngineVersion: cfg.EngineVersion,
			APIVersion:    cfg.APIVersion,
		},
		Extensions: extensions,
		Layers:     layers,
	})
	if err != nil {
		return fail(StepInstance, ErrInstanceCreation, err)
	}

	gc.instance = instance
	gc.own("instance", func() {
		gc.instance.Release()
		gc.instance = nil
		gc.physicalDevice = nil
	})
	logger.WithField("extensions", extensions).Debug("instance created")
	return nil
}

func (b *Bootstrapper) createSurface(gc *GraphicsContext) error {
	surface, err := gc.window.CreateSurface(gc.instance)
	if err != nil {
		return fail(StepSurface, ErrSurfaceCreation, err)
	}

	gc.surface = surface
	gc.own("surface", func() {
		gc.surface.Release()
		gc.surface = nil
	})
	b.log.WithField("step", StepSurface).Debug("surface created")
	return nil
}

func (b *Bootstrapper) selectPhysicalDevice(gc *GraphicsContext) error {
	devices, err := gc.instance.PhysicalDevices()
	if err != nil {
		return fail(StepPhysicalDevice, ErrNoPhysicalDevices, err)
	}

	candidate, err := SelectPhysicalDevice(devices,
		RequireGraphicsQueue(),
		RequirePresentation(gc.surface),
		RequireDeviceExtensions(b.configuration.Device.Extensions...),
	)
	if err != nil {
		return &StepError{Step: StepPhysicalDevice, Err: err}
	}

	gc.physicalDevice = candidate.Device
	gc.families = candidate.Families

	info := candidate.Device.Info()
	b.log.WithFields(log.Fields{
		"step":   StepPhysicalDevice,
		"index":  candidate.Index,
		"name":   info.Name,
		"type":   info.Type,
		"family": candidate.Families.Graphics,
	}).Info("physical device selected")
	return nil
}

func (b *Bootstrapper) createDevice(gc *GraphicsContext) error {
	cfg := b.configuration.Device
	priority := cfg.QueuePriority
	if priority <= 0 || priority > 1 {
		priority = 1.0
	}

	device, err := gc.physicalDevice.CreateDevice(gfx.DeviceDescriptor{
		QueueFamily:     gc.families.Graphics,
		QueuePriorities: []float32{priority},
		Extensions:      cfg.Extensions,
		Layers:          b.configuration.Instance.Layers(),
	})
	if err != nil {
		return fail(StepDevice, ErrDeviceCreation, err)
	}

	gc.device = device
	gc.own("device", func() {
		if err := gc.device.WaitIdle(); err != nil {
			b.log.WithError(err).Warn("device did not go idle before release")
		}
		gc.device.Release()
		gc.device = nil
		gc.queue = nil
	})
	gc.queue = device.Queue(gc.families.Graphics, 0)

	b.log.WithFields(log.Fields{
		"step":   StepDevice,
		"family": gc.families.Graphics,
	}).Debug("logical device created")
	return nil
}
