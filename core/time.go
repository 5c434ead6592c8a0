// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"time"
)

// NewTime creates a new time service
func NewTime(cfg TimeConfiguration) *Time {
	t := &Time{
		eventPollDelay: cfg.EventPollDelay,
	}
	if cfg.EventPollDelay > 0 {
		t.eventTicker = time.NewTicker(time.Duration(cfg.EventPollDelay) * time.Millisecond)
	}
	return t
}

// Time paces the event loop
type Time struct {
	eventPollDelay int
	eventTicker    *time.Ticker
}

// EventPollDelay gets the configured delay in milliseconds
func (t *Time) EventPollDelay() int {
	return t.eventPollDelay
}

// EventTicker gets the initialized event ticker for the event loop,
// nil when polling is not paced
func (t *Time) EventTicker() *time.Ticker {
	return t.eventTicker
}

// WaitEvent blocks until the next poll is due.
func (t *Time) WaitEvent() {
	if t.eventTicker == nil {
		return
	}
	<-t.eventTicker.C
}

// Stop releases the tickers
func (t *Time) Stop() {
	if t.eventTicker != nil {
		t.eventTicker.Stop()
	}
}
