// Package particles animates the ambient weather layer of the dashboard:
// rain streaks, drifting snow, fog wisps, and the storm flash. Positions
// are normalized to [0,1] so the render layer can scale them to whatever
// canvas the hero panel currently occupies.
package particles

import (
	"math"
	"math/rand/v2"
	"time"

	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

// Kind is the precipitation family a weather code animates as.
type Kind int

const (
	KindNone Kind = iota
	KindRain
	KindSnow
	KindFog
	KindThunder
)

// KindForCode maps a WMO weather code to its particle family. Clear and
// cloudy skies animate nothing.
func KindForCode(code int) Kind {
	switch weather.CodeCategory(code) {
	case weather.CategoryRain:
		return KindRain
	case weather.CategorySnow:
		return KindSnow
	case weather.CategoryFog:
		return KindFog
	case weather.CategoryThunder:
		return KindThunder
	default:
		return KindNone
	}
}

// Particle is one animated glyph in normalized canvas coordinates.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Glyph  rune
}

// Engine owns the particle field. It is driven from the frame tick and
// read by the render layer; neither happens concurrently, so there is no
// locking here.
type Engine struct {
	disabled   bool
	reduced    bool
	noFlash    bool
	field      []Particle
	accum      float64
	flashTimer float64
	randFloat  func() float64 // [0,1), swappable in tests
}

// New builds an engine with the given motion options.
func New(disabled, reduced, noFlash bool) *Engine {
	return &Engine{
		disabled:  disabled,
		reduced:   reduced,
		noFlash:   noFlash,
		randFloat: rand.Float64,
	}
}

// Reset clears the field, typically after a terminal resize.
func (e *Engine) Reset() {
	e.field = e.field[:0]
}

// SetOptions applies the current motion settings. Changing the motion
// mode restarts the field so density changes take effect immediately.
func (e *Engine) SetOptions(disabled, reduced, noFlash bool) {
	modeChanged := e.disabled != disabled || e.reduced != reduced
	e.disabled = disabled
	e.reduced = reduced
	e.noFlash = noFlash
	if modeChanged || disabled {
		e.Reset()
	}
}

// FlashActive reports whether the thunder flash overlay should paint
// this frame.
func (e *Engine) FlashActive() bool {
	return !e.noFlash && e.flashTimer > 0
}

// Field returns the live particles for rendering.
func (e *Engine) Field() []Particle {
	return e.field
}

// Update advances the simulation by delta. Nil readings mean the value
// is unknown and fall back to still air or no precipitation.
func (e *Engine) Update(weatherCode *int, windSpeed, windDirection *float64, delta time.Duration) {
	if e.disabled {
		e.field = e.field[:0]
		return
	}
	dt := delta.Seconds()
	if dt < 0 {
		dt = 0
	} else if dt > 0.25 {
		dt = 0.25
	}
	e.accum += dt

	kind := KindNone
	if weatherCode != nil {
		kind = KindForCode(*weatherCode)
	}
	drift := windDrift(windSpeed, windDirection)

	e.spawn(kind, drift)
	e.advance(dt)
	e.maybeFlash(kind)
	e.flashTimer = math.Max(e.flashTimer-dt, 0)
}

func (e *Engine) spawn(kind Kind, drift float64) {
	if e.accum < 0.04 {
		return
	}
	e.accum = 0
	density := 14
	if e.reduced {
		density = 4
	}
	for i := 0; i < density; i++ {
		if p, ok := e.spawnOne(kind, drift); ok {
			e.field = append(e.field, p)
		}
	}
}

func (e *Engine) advance(dt float64) {
	step := dt * 60
	kept := e.field[:0]
	for _, p := range e.field {
		p.X += p.VX * step
		p.Y += p.VY * step
		if p.Y < 1.2 && p.X > -0.2 && p.X < 1.2 {
			kept = append(kept, p)
		}
	}
	e.field = kept
}

func (e *Engine) maybeFlash(kind Kind) {
	if kind != KindThunder || e.noFlash {
		return
	}
	chance := 0.016
	if e.reduced {
		chance = 0.004
	}
	if e.randFloat() < chance {
		e.flashTimer = 0.12
	}
}

func (e *Engine) spawnOne(kind Kind, drift float64) (Particle, bool) {
	x := e.randFloat()
	switch kind {
	case KindRain:
		return Particle{
			X: x, Y: 0,
			VX:    drift*0.002 + e.inRange(-0.0005, 0.0005),
			VY:    e.inRange(0.008, 0.015),
			Glyph: '│',
		}, true
	case KindSnow:
		return Particle{
			X: x, Y: 0,
			VX:    drift*0.001 + e.inRange(-0.0015, 0.0015),
			VY:    e.inRange(0.002, 0.006),
			Glyph: '•',
		}, true
	case KindFog:
		return Particle{
			X: x, Y: e.inRange(0.2, 0.8),
			VX:    drift*0.001 + e.inRange(0.0003, 0.0012),
			VY:    e.inRange(-0.0003, 0.0003),
			Glyph: '·',
		}, true
	case KindThunder:
		return Particle{
			X: x, Y: 0,
			VX:    drift*0.0022 + e.inRange(-0.0006, 0.0006),
			VY:    e.inRange(0.01, 0.018),
			Glyph: '│',
		}, true
	default:
		return Particle{}, false
	}
}

func (e *Engine) inRange(lo, hi float64) float64 {
	return lo + e.randFloat()*(hi-lo)
}

// windDrift converts a wind reading into a horizontal bias in [-1,1].
// Speed saturates at 40 km/h; the direction's sine picks the sign, so
// easterly and westerly components push the field apart.
func windDrift(speed, direction *float64) float64 {
	base := 0.0
	if speed != nil {
		base = math.Min(math.Max(*speed/40, 0), 1)
	}
	sign := 1.0
	if direction != nil && math.Sin(*direction*math.Pi/180) < 0 {
		sign = -1
	}
	return base * sign
}
