// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfxtest provides in-memory gfx drivers and windows that record
// every acquisition and release, for testing code that drives them.
package gfxtest

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/devblok/triangle/gfx"
	"github.com/devblok/triangle/window"
)

// Kinds of recorded objects
const (
	KindWindow   = "window"
	KindInstance = "instance"
	KindSurface  = "surface"
	KindDevice   = "device"
	KindQueue    = "queue"
)

// Recorder keeps an ordered log of lifecycle events, such as
// "create instance" or "release surface", and of contract violations.
type Recorder struct {
	Events     []string
	Violations []string

	created  map[string]int
	released map[string]int
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		created:  make(map[string]int),
		released: make(map[string]int),
	}
}

func (r *Recorder) create(kind string) {
	r.created[kind]++
	r.Events = append(r.Events, "create "+kind)
}

func (r *Recorder) release(kind string) {
	r.released[kind]++
	r.Events = append(r.Events, "release "+kind)
}

func (r *Recorder) violate(format string, args ...interface{}) {
	r.Violations = append(r.Violations, fmt.Sprintf(format, args...))
}

// Created counts objects of kind created so far.
func (r *Recorder) Created(kind string) int { return r.created[kind] }

// Released counts objects of kind released so far.
func (r *Recorder) Released(kind string) int { return r.released[kind] }

// Live counts objects of kind created and not yet released.
func (r *Recorder) Live(kind string) int { return r.created[kind] - r.released[kind] }

// Releases returns the release events in order.
func (r *Recorder) Releases() []string {
	var out []string
	for _, e := range r.Events {
		if len(e) > 8 && e[:8] == "release " {
			out = append(out, e[8:])
		}
	}
	return out
}

// Driver is a fake gfx.Driver.
type Driver struct {
	Recorder *Recorder

	Layers     []string
	Extensions []string
	Devices    []*PhysicalDevice

	LayersErr     error
	ExtensionsErr error
	CreateErr     error
	EnumerateErr  error

	// Descriptor is the last descriptor CreateInstance received
	Descriptor gfx.InstanceDescriptor
	// LayerQueries counts AvailableLayers calls
	LayerQueries int
}

// NewDriver creates a Driver with its own Recorder.
func NewDriver(devices ...*PhysicalDevice) *Driver {
	return &Driver{
		Recorder: NewRecorder(),
		Devices:  devices,
	}
}

// Loader returns a loader function handing out d.
func (d *Driver) Loader() func(unsafe.Pointer) (gfx.Driver, error) {
	return func(unsafe.Pointer) (gfx.Driver, error) {
		return d, nil
	}
}

// AvailableLayers implements interface
func (d *Driver) AvailableLayers() ([]string, error) {
	d.LayerQueries++
	return d.Layers, d.LayersErr
}

// AvailableExtensions implements interface
func (d *Driver) AvailableExtensions() ([]string, error) {
	return d.Extensions, d.ExtensionsErr
}

// CreateInstance implements interface
func (d *Driver) CreateInstance(desc gfx.InstanceDescriptor) (gfx.Instance, error) {
	d.Descriptor = desc
	if d.CreateErr != nil {
		return nil, d.CreateErr
	}
	d.Recorder.create(KindInstance)
	for _, pd := range d.Devices {
		pd.recorder = d.Recorder
	}
	return &Instance{driver: d}, nil
}

// Instance is a fake gfx.Instance.
type Instance struct {
	driver   *Driver
	released bool
}

// Handle implements interface
func (i *Instance) Handle() interface{} {
	return i
}

// PhysicalDevices implements interface
func (i *Instance) PhysicalDevices() ([]gfx.PhysicalDevice, error) {
	if i.released {
		i.driver.Recorder.violate("physical devices enumerated on a released instance")
	}
	if i.driver.EnumerateErr != nil {
		return nil, i.driver.EnumerateErr
	}
	devices := make([]gfx.PhysicalDevice, 0, len(i.driver.Devices))
	for _, pd := range i.driver.Devices {
		pd.instance = i
		devices = append(devices, pd)
	}
	return devices, nil
}

// SurfaceFromHandle implements interface
func (i *Instance) SurfaceFromHandle(raw uintptr) (gfx.Surface, error) {
	if i.released {
		i.driver.Recorder.violate("surface adopted by a released instance")
	}
	if raw == 0 {
		return nil, errors.New("gfxtest: null surface handle")
	}
	i.driver.Recorder.create(KindSurface)
	return &Surface{instance: i, raw: raw}, nil
}

// Release implements interface
func (i *Instance) Release() {
	r := i.driver.Recorder
	if i.released {
		r.violate("instance released twice")
	}
	if r.Live(KindSurface) > 0 {
		r.violate("instance released with a live surface")
	}
	if r.Live(KindDevice) > 0 {
		r.violate("instance released with a live device")
	}
	i.released = true
	r.release(KindInstance)
}

// Surface is a fake gfx.Surface.
type Surface struct {
	instance *Instance
	raw      uintptr
	released bool
}

// Handle implements interface
func (s *Surface) Handle() interface{} {
	return s.raw
}

// Release implements interface
func (s *Surface) Release() {
	r := s.instance.driver.Recorder
	if s.released {
		r.violate("surface released twice")
	}
	if s.instance.released {
		r.violate("surface released after its instance")
	}
	s.released = true
	r.release(KindSurface)
}

// PhysicalDevice is a fake gfx.PhysicalDevice.
type PhysicalDevice struct {
	Name             string
	Families         []gfx.QueueFamily
	DeviceExtensions []string

	// Present lists families able to present; nil means all of them
	Present map[uint32]bool

	CreateErr  error
	SupportErr error

	// FamilyQueries counts QueueFamilies calls
	FamilyQueries int
	// Descriptor is the last descriptor CreateDevice received
	Descriptor gfx.DeviceDescriptor

	instance *Instance
	recorder *Recorder
}

// NewPhysicalDevice creates a device with the given queue family flags.
func NewPhysicalDevice(name string, families ...gfx.QueueFlags) *PhysicalDevice {
	pd := &PhysicalDevice{Name: name}
	for i, flags := range families {
		pd.Families = append(pd.Families, gfx.QueueFamily{
			Index: uint32(i),
			Flags: flags,
			Count: 1,
		})
	}
	return pd
}

func (p *PhysicalDevice) checkInstance(op string) {
	if p.instance != nil && p.instance.released && p.recorder != nil {
		p.recorder.violate("%s on %s after its instance was released", op, p.Name)
	}
}

// Info implements interface
func (p *PhysicalDevice) Info() gfx.PhysicalDeviceInfo {
	p.checkInstance("info")
	return gfx.PhysicalDeviceInfo{
		Name:          p.Name,
		Type:          "virtual",
		Extensions:    p.DeviceExtensions,
		QueueFamilies: p.Families,
	}
}

// QueueFamilies implements interface
func (p *PhysicalDevice) QueueFamilies() []gfx.QueueFamily {
	p.checkInstance("queue family query")
	p.FamilyQueries++
	return p.Families
}

// SurfaceSupport implements interface
func (p *PhysicalDevice) SurfaceSupport(family uint32, surface gfx.Surface) (bool, error) {
	p.checkInstance("surface support query")
	if s, ok := surface.(*Surface); ok && s.released && p.recorder != nil {
		p.recorder.violate("surface support queried on a released surface")
	}
	if p.SupportErr != nil {
		return false, p.SupportErr
	}
	if p.Present == nil {
		return true, nil
	}
	return p.Present[family], nil
}

// Extensions implements interface
func (p *PhysicalDevice) Extensions() ([]string, error) {
	p.checkInstance("extension query")
	return p.DeviceExtensions, nil
}

// CreateDevice implements interface
func (p *PhysicalDevice) CreateDevice(desc gfx.DeviceDescriptor) (gfx.Device, error) {
	p.checkInstance("device creation")
	p.Descriptor = desc
	if p.CreateErr != nil {
		return nil, p.CreateErr
	}
	p.recorder.create(KindDevice)
	return &Device{physical: p}, nil
}

// Device is a fake gfx.Device.
type Device struct {
	physical *PhysicalDevice
	released bool

	// WaitIdleCalls counts WaitIdle calls
	WaitIdleCalls int
}

// Queue implements interface
func (d *Device) Queue(family, index uint32) gfx.Queue {
	if d.released {
		d.physical.recorder.violate("queue retrieved from a released device")
	}
	d.physical.recorder.create(KindQueue)
	return &Queue{family: family, index: index}
}

// WaitIdle implements interface
func (d *Device) WaitIdle() error {
	if d.released {
		d.physical.recorder.violate("wait idle on a released device")
	}
	d.WaitIdleCalls++
	return nil
}

// Release implements interface
func (d *Device) Release() {
	r := d.physical.recorder
	if d.released {
		r.violate("device released twice")
	}
	if d.physical.instance != nil && d.physical.instance.released {
		r.violate("device released after its instance")
	}
	d.released = true
	r.release(KindDevice)
}

// Queue is a fake gfx.Queue.
type Queue struct {
	family uint32
	index  uint32
}

// Family implements interface
func (q *Queue) Family() uint32 { return q.family }

// Handle implements interface
func (q *Queue) Handle() interface{} { return q.index }

// Window is a fake window.Window that asks to close after CloseAfter polls.
type Window struct {
	Recorder *Recorder

	Config     window.Config
	Extensions []string
	SurfaceErr error
	CloseAfter int

	Polls    int
	released bool
}

// NewWindow creates a Window recording into r.
func NewWindow(r *Recorder, extensions ...string) *Window {
	return &Window{
		Recorder:   r,
		Extensions: extensions,
	}
}

// Opener returns an opener function handing out w, or err when set.
func (w *Window) Opener(err error) func(window.Config) (window.Window, error) {
	return func(cfg window.Config) (window.Window, error) {
		if err != nil {
			return nil, err
		}
		w.Config = cfg
		w.Recorder.create(KindWindow)
		return w, nil
	}
}

// ProcAddr implements interface
func (w *Window) ProcAddr() unsafe.Pointer {
	return nil
}

// RequiredExtensions implements interface
func (w *Window) RequiredExtensions() []string {
	return w.Extensions
}

// CreateSurface implements interface
func (w *Window) CreateSurface(instance gfx.Instance) (gfx.Surface, error) {
	if w.released {
		w.Recorder.violate("surface created on a released window")
	}
	if w.SurfaceErr != nil {
		return nil, w.SurfaceErr
	}
	return instance.SurfaceFromHandle(0xC0FFEE)
}

// ShouldClose implements interface
func (w *Window) ShouldClose() bool {
	return w.Polls >= w.CloseAfter
}

// PollEvents implements interface
func (w *Window) PollEvents() {
	if w.released {
		w.Recorder.violate("events polled on a released window")
	}
	w.Polls++
}

// Release implements interface
func (w *Window) Release() {
	if w.released {
		w.Recorder.violate("window released twice")
	}
	if w.Recorder.Live(KindSurface) > 0 {
		w.Recorder.violate("window released with a live surface")
	}
	if w.Recorder.Live(KindInstance) > 0 {
		w.Recorder.violate("window library shut down with a live instance")
	}
	w.released = true
	w.Recorder.release(KindWindow)
}
