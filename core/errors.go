// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"
	"fmt"

	"github.com/devblok/triangle/window"
)

// Bootstrap failures. All of them are fatal.
var (
	ErrWindowInit                 = window.ErrInit
	ErrInstanceCreation           = errors.New("failed to create instance")
	ErrValidationLayerUnsupported = errors.New("validation layers requested but not supported")
	ErrSurfaceCreation            = errors.New("failed to create window surface")
	ErrNoPhysicalDevices          = errors.New("no physical devices")
	ErrNoSuitableDevice           = errors.New("could not find suitable GPU")
	ErrDeviceCreation             = errors.New("logical device could not be created")
)

// Step names a stage of the bootstrap sequence.
type Step string

// Bootstrap steps, in the order they run
const (
	StepWindow         Step = "open window"
	StepInstance       Step = "create instance"
	StepSurface        Step = "create surface"
	StepPhysicalDevice Step = "select physical device"
	StepDevice         Step = "create logical device"
)

// StepError is the error a failed bootstrap step returns.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return string(e.Step) + ": " + e.Err.Error()
}

// Unwrap gives access to the sentinel error.
func (e *StepError) Unwrap() error {
	return e.Err
}

// fail wraps cause under kind for step. A nil cause reports kind alone.
func fail(step Step, kind, cause error) error {
	if cause == nil {
		return &StepError{Step: step, Err: kind}
	}
	return &StepError{Step: step, Err: fmt.Errorf("%w: %v", kind, cause)}
}
