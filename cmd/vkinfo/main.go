// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command vkinfo prints what the Vulkan loader and the physical devices
// report, and which device the bootstrapper would pick, as JSON.
// It opens no window, so presentation support is not checked.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"os"

	"github.com/devblok/triangle/core"
	"github.com/devblok/triangle/gfx"
	"github.com/devblok/triangle/gfx/vkr"
	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var (
	envFile = flag.String("env", envy.Get("VKINFO_ENV", ""), "Dotenv file loaded before the Vulkan loader starts, e.g. to pin VK_ICD_FILENAMES")
	layers  = flag.Bool("layers", false, "Enable the Khronos validation layer on the instance")
	indent  = flag.String("indent", envy.Get("VKINFO_INDENT", "  "), "JSON indentation")
)

type deviceReport struct {
	gfx.PhysicalDeviceInfo
	GraphicsFamily *uint32 `json:"graphicsFamily,omitempty"`
	Suitable       bool    `json:"suitable"`
	Reason         string  `json:"reason,omitempty"`
}

type report struct {
	Layers     []string       `json:"layers"`
	Extensions []string       `json:"extensions"`
	Devices    []deviceReport `json:"devices"`
	Selected   *int           `json:"selected"`
}

func inspect(driver gfx.Driver, cfg core.InstanceConfiguration) (*report, error) {
	var (
		r   report
		err error
	)
	if r.Layers, err = driver.AvailableLayers(); err != nil {
		return nil, err
	}
	if r.Extensions, err = driver.AvailableExtensions(); err != nil {
		return nil, err
	}

	instance, err := driver.CreateInstance(gfx.InstanceDescriptor{
		Application: gfx.ApplicationInfo{
			Name:          "vkinfo",
			Version:       cfg.ApplicationVersion,
			EngineName:    cfg.EngineName,
			EngineVersion: cfg.EngineVersion,
			APIVersion:    cfg.APIVersion,
		},
		Layers: cfg.Layers(),
	})
	if err != nil {
		return nil, err
	}
	defer instance.Release()

	devices, err := instance.PhysicalDevices()
	if err != nil {
		return nil, err
	}

	requirements := []core.Requirement{core.RequireGraphicsQueue()}
	for i, device := range devices {
		candidate := &core.Candidate{
			Device:   device,
			Index:    i,
			Families: core.FindQueueFamilies(device.QueueFamilies()),
		}
		dr := deviceReport{PhysicalDeviceInfo: device.Info()}
		if candidate.Families.HasGraphics {
			family := candidate.Families.Graphics
			dr.GraphicsFamily = &family
		}
		dr.Suitable, dr.Reason = core.DeviceIsSuitable(candidate, requirements)
		r.Devices = append(r.Devices, dr)
	}

	if candidate, err := core.SelectPhysicalDevice(devices, requirements...); err != nil {
		log.WithError(err).Warn("no device would be selected")
	} else {
		r.Selected = &candidate.Index
	}
	return &r, nil
}

func write(w io.Writer, r *report, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	return enc.Encode(r)
}

func main() {
	flag.Parse()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			log.WithError(err).Fatal("could not load environment file")
		}
	}

	driver, err := vkr.NewDriver(nil)
	if err != nil {
		log.WithError(err).Fatal("could not load the vulkan driver")
	}

	cfg := core.DefaultConfiguration().Instance
	cfg.DebugMode = *layers

	r, err := inspect(driver, cfg)
	if err != nil {
		log.WithError(err).Fatal("inspection failed")
	}

	if err := write(os.Stdout, r, *indent); err != nil {
		log.WithError(err).Fatal("could not write report")
	}
}
