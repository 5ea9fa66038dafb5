// Package app is the runtime core of the dashboard: the event vocabulary,
// the background producers that feed it, and the state machine that reduces
// the merged event stream into one coherent application state.
//
// All state mutation happens on one goroutine (the Bubble Tea update loop);
// producers and fetch goroutines communicate exclusively by sending events
// into the shared channel.
package app

import (
	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

// Event is the closed union of everything that can arrive on the event
// channel. Exactly one event is processed at a time, in channel order.
type Event interface {
	appEvent()
}

// Bootstrap is enqueued once at startup. It validates configuration,
// launches the clocks, and kicks off the initial fetch.
type Bootstrap struct{}

// TickFrame advances one animation frame.
type TickFrame struct{}

// TickRefresh asks for a fetch, from either the refresh clock or a one-shot
// retry timer.
type TickRefresh struct{}

// ForceRedraw asks the render layer to repaint from scratch.
type ForceRedraw struct{}

// Input wraps one decoded terminal event.
type Input struct {
	Term TermEvent
}

// FetchStarted marks a fetch as in flight.
type FetchStarted struct{}

// GeocodeResolved delivers the outcome of a geocode lookup.
type GeocodeResolved struct {
	Resolution weather.GeocodeResolution
}

// FetchSucceeded delivers a fresh forecast bundle.
type FetchSucceeded struct {
	Bundle *weather.ForecastBundle
}

// FetchFailed delivers a human-readable failure message for any recoverable
// fetch or geocode error.
type FetchFailed struct {
	Message string
}

// Demo delivers one scripted demo step.
type Demo struct {
	Action DemoAction
}

// Quit moves the state machine to its terminal mode.
type Quit struct{}

func (Bootstrap) appEvent()       {}
func (TickFrame) appEvent()       {}
func (TickRefresh) appEvent()     {}
func (ForceRedraw) appEvent()     {}
func (Input) appEvent()           {}
func (FetchStarted) appEvent()    {}
func (GeocodeResolved) appEvent() {}
func (FetchSucceeded) appEvent()  {}
func (FetchFailed) appEvent()     {}
func (Demo) appEvent()            {}
func (Quit) appEvent()            {}

// EventChannelCapacity bounds the shared event channel. Producers block
// when it fills rather than dropping events.
const EventChannelCapacity = 256
