package particles

import (
	"testing"
	"time"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func tick() time.Duration         { return 50 * time.Millisecond }

func TestRainSpawnsParticles(t *testing.T) {
	e := New(false, false, false)
	e.Update(intPtr(61), floatPtr(10), floatPtr(180), tick())
	if len(e.Field()) == 0 {
		t.Fatal("expected particles after a rain update")
	}
	for _, p := range e.Field() {
		if p.Glyph != '│' {
			t.Fatalf("rain glyph = %q", p.Glyph)
		}
	}
}

func TestDisabledClearsFieldOnUpdate(t *testing.T) {
	e := New(false, false, false)
	e.Update(intPtr(61), nil, nil, tick())
	if len(e.Field()) == 0 {
		t.Fatal("setup: expected particles")
	}
	e.SetOptions(true, false, false)
	e.Update(intPtr(61), nil, nil, tick())
	if len(e.Field()) != 0 {
		t.Fatalf("disabled engine kept %d particles", len(e.Field()))
	}
}

func TestSetOptionsKeepsFieldWhenModeUnchanged(t *testing.T) {
	e := New(false, false, false)
	e.Update(intPtr(61), nil, nil, tick())
	before := len(e.Field())
	e.SetOptions(false, false, true) // only the flash toggle changed
	if len(e.Field()) != before {
		t.Fatalf("field changed from %d to %d", before, len(e.Field()))
	}
	e.SetOptions(false, true, true) // motion mode changed
	if len(e.Field()) != 0 {
		t.Fatal("mode change should reset the field")
	}
}

func TestReducedMotionSpawnsFewer(t *testing.T) {
	reduced := New(false, true, false)
	full := New(false, false, false)
	for i := 0; i < 20; i++ {
		reduced.Update(intPtr(61), nil, nil, tick())
		full.Update(intPtr(61), nil, nil, tick())
	}
	if len(reduced.Field()) > len(full.Field()) {
		t.Fatalf("reduced=%d > full=%d", len(reduced.Field()), len(full.Field()))
	}
}

func TestNoCodeSpawnsNothing(t *testing.T) {
	e := New(false, false, false)
	e.Update(nil, nil, nil, tick())
	if len(e.Field()) != 0 {
		t.Fatalf("spawned %d particles without a weather code", len(e.Field()))
	}
	e.Update(intPtr(0), nil, nil, tick()) // clear sky
	if len(e.Field()) != 0 {
		t.Fatal("clear sky should animate nothing")
	}
}

func TestParticlesFallOffCanvas(t *testing.T) {
	e := New(false, false, false)
	e.Update(intPtr(61), nil, nil, tick())
	if len(e.Field()) == 0 {
		t.Fatal("setup: expected particles")
	}
	// A long quiet stretch with no weather lets the field drain.
	for i := 0; i < 400; i++ {
		e.Update(nil, nil, nil, tick())
	}
	if len(e.Field()) != 0 {
		t.Fatalf("%d particles never left the canvas", len(e.Field()))
	}
}

func TestFlashHonorsNoFlash(t *testing.T) {
	e := New(false, false, true)
	e.randFloat = func() float64 { return 0 } // would always trigger
	for i := 0; i < 10; i++ {
		e.Update(intPtr(95), nil, nil, tick())
	}
	if e.FlashActive() {
		t.Fatal("flash fired with the flash disabled")
	}
}

func TestThunderTriggersAndDecays(t *testing.T) {
	e := New(false, false, false)
	e.randFloat = func() float64 { return 0 }
	e.Update(intPtr(95), nil, nil, tick())
	if !e.FlashActive() {
		t.Fatal("expected an active flash")
	}
	e.randFloat = func() float64 { return 1 }
	for i := 0; i < 5; i++ {
		e.Update(intPtr(95), nil, nil, tick())
	}
	if e.FlashActive() {
		t.Fatal("flash should decay after ~120ms")
	}
}

func TestWindDrift(t *testing.T) {
	if got := windDrift(nil, nil); got != 0 {
		t.Fatalf("no wind drift = %v", got)
	}
	if got := windDrift(floatPtr(80), floatPtr(90)); got != 1 {
		t.Fatalf("saturated easterly drift = %v", got)
	}
	if got := windDrift(floatPtr(20), floatPtr(270)); got != -0.5 {
		t.Fatalf("westerly drift = %v", got)
	}
}

func TestKindForCode(t *testing.T) {
	cases := []struct {
		code int
		want Kind
	}{
		{0, KindNone},
		{3, KindNone},
		{45, KindFog},
		{61, KindRain},
		{71, KindSnow},
		{95, KindThunder},
	}
	for _, tc := range cases {
		if got := KindForCode(tc.code); got != tc.want {
			t.Errorf("KindForCode(%d) = %v, want %v", tc.code, got, tc.want)
		}
	}
}
