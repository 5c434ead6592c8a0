// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"
	"time"

	"github.com/devblok/triangle/core"
	qt "github.com/frankban/quicktest"
)

func TestTimeUnpaced(t *testing.T) {
	c := qt.New(t)

	ts := core.NewTime(core.TimeConfiguration{})
	defer ts.Stop()
	c.Assert(ts.EventTicker(), qt.IsNil)

	done := make(chan struct{})
	go func() {
		ts.WaitEvent()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		c.Fatal("WaitEvent blocked without a poll delay")
	}
}

func TestTimePaced(t *testing.T) {
	c := qt.New(t)

	ts := core.NewTime(core.TimeConfiguration{EventPollDelay: 5})
	defer ts.Stop()
	c.Assert(ts.EventPollDelay(), qt.Equals, 5)
	c.Assert(ts.EventTicker(), qt.Not(qt.IsNil))

	start := time.Now()
	ts.WaitEvent()
	ts.WaitEvent()
	c.Assert(time.Since(start) >= 5*time.Millisecond, qt.Equals, true)
}
