// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build !release
// +build !release

package core_test

import (
	"testing"

	"github.com/devblok/triangle/core"
	qt "github.com/frankban/quicktest"
)

func TestDebugBuildEnablesValidation(t *testing.T) {
	c := qt.New(t)
	c.Assert(core.DefaultConfiguration().Instance.DebugMode, qt.Equals, true)
}
