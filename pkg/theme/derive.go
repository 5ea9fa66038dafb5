package theme

import (
	"fmt"
	"math"
)

type scaffold struct {
	top            RGB
	bottom         RGB
	surface        RGB
	surfaceAlt     RGB
	popupSurface   RGB
	darkText       bool
	allBackgrounds []RGB
	heroBackgrounds []RGB
}

// derivePalette computes the full palette for truecolor and 256-color
// terminals from a seed.
func derivePalette(seed Seed, capability Capability) Palette {
	sc := buildScaffold(seed)

	textSeed := choose(sc.darkText, RGB{12, 16, 24}, RGB{240, 245, 250})
	mutedSeed := choose(sc.darkText, RGB{55, 68, 85}, RGB{183, 198, 214})

	text := ensureContrastMulti(textSeed, sc.allBackgrounds, choosef(sc.darkText, 4.9, 4.7))
	muted := ensureContrastMulti(mutedSeed, sc.allBackgrounds, choosef(sc.darkText, 4.5, 4.2))
	accent := ensureContrastMulti(seed.Accent, sc.allBackgrounds, choosef(sc.darkText, 4.5, 4.0))

	borderSeed := choose(sc.darkText,
		mix(sc.surface, RGB{18, 26, 38}, 0.74),
		mix(sc.surface, accent, 0.54))
	popupBorderSeed := choose(sc.darkText,
		mix(sc.popupSurface, RGB{5, 11, 18}, 0.82),
		mix(sc.popupSurface, accent, 0.70))

	border := ensureContrastMulti(borderSeed,
		[]RGB{sc.surface, sc.surfaceAlt, sc.top, sc.bottom}, 3.0)
	popupBorder := ensureContrast(popupBorderSeed, sc.popupSurface, 3.2)

	info := ensureContrastMulti(choose(sc.darkText, RGB{3, 105, 161}, RGB{125, 211, 252}), sc.allBackgrounds, 4.5)
	success := ensureContrastMulti(choose(sc.darkText, RGB{21, 128, 61}, RGB{74, 222, 128}), sc.allBackgrounds, 4.5)
	warning := ensureContrastMulti(warningSeedFor(seed.Accent, sc.darkText), sc.allBackgrounds, 4.5)
	danger := ensureContrastMulti(choose(sc.darkText, RGB{185, 28, 28}, RGB{248, 113, 113}), sc.allBackgrounds, 4.5)

	landmarkThreshold := choosef(sc.darkText, 4.5, 3.5)
	landmarkWarm := ensureContrastMulti(RGB{253, 230, 138}, sc.heroBackgrounds, landmarkThreshold)
	landmarkCool := ensureContrastMulti(RGB{147, 197, 253}, sc.heroBackgrounds, landmarkThreshold)
	landmarkNeutral := ensureContrastMulti(muted, sc.heroBackgrounds, choosef(sc.darkText, 4.2, 3.2))

	tempThreshold := choosef(sc.darkText, 4.5, 3.8)

	return Palette{
		Top:          quantize(sc.top, capability),
		Bottom:       quantize(sc.bottom, capability),
		Surface:      quantize(sc.surface, capability),
		SurfaceAlt:   quantize(sc.surfaceAlt, capability),
		PopupSurface: quantize(sc.popupSurface, capability),

		Accent:     quantize(accent, capability),
		Text:       quantize(text, capability),
		MutedText:  quantize(muted, capability),
		PopupText:  quantize(ensureContrast(textSeed, sc.popupSurface, 4.7), capability),
		PopupMuted: quantize(ensureContrast(mutedSeed, sc.popupSurface, 4.5), capability),
		Particle:   quantize(choose(sc.darkText, RGB{92, 108, 124}, RGB{202, 218, 235}), capability),

		Border:      quantize(border, capability),
		PopupBorder: quantize(popupBorder, capability),

		Info:    quantize(info, capability),
		Success: quantize(success, capability),
		Warning: quantize(warning, capability),
		Danger:  quantize(danger, capability),

		TempFreezing: quantize(ensureContrast(RGB{147, 197, 253}, sc.surfaceAlt, tempThreshold), capability),
		TempCold:     quantize(ensureContrast(RGB{56, 189, 248}, sc.surfaceAlt, tempThreshold), capability),
		TempMild:     quantize(ensureContrast(RGB{110, 231, 183}, sc.surfaceAlt, tempThreshold), capability),
		TempWarm:     quantize(ensureContrast(RGB{251, 191, 36}, sc.surfaceAlt, tempThreshold), capability),
		TempHot:      quantize(ensureContrast(RGB{248, 113, 113}, sc.surfaceAlt, tempThreshold), capability),

		RangeTrack:      quantize(ensureContrast(muted, sc.surfaceAlt, choosef(sc.darkText, 4.0, 3.2)), capability),
		LandmarkWarm:    quantize(landmarkWarm, capability),
		LandmarkCool:    quantize(landmarkCool, capability),
		LandmarkNeutral: quantize(landmarkNeutral, capability),
	}
}

func buildScaffold(seed Seed) scaffold {
	avgLuma := (luma(seed.Top) + luma(seed.Bottom)) / 2
	darkText := avgLuma >= 170

	top, bottom := seed.Top, seed.Bottom
	if darkText {
		// Keep light themes readable by pulling gradients away from near-white.
		top = mix(top, RGB{198, 210, 226}, 0.42)
		bottom = mix(bottom, RGB{176, 193, 214}, 0.40)
	}

	baseSurface := mix(top, bottom, 0.80)
	baseSurfaceAlt := mix(top, bottom, 0.60)

	// Reduce accent tint on very dark backgrounds to avoid hue-on-hue
	// illegibility.
	tint, tintAlt := 0.16, 0.24
	if darkText || avgLuma < 40 {
		tint, tintAlt = 0.08, 0.12
	}
	surface := mix(baseSurface, seed.Accent, tint)
	surfaceAlt := mix(baseSurfaceAlt, seed.Accent, tintAlt)

	popupSurface := choose(darkText,
		mix(surfaceAlt, seed.Accent, 0.20),
		mix(surfaceAlt, RGB{236, 243, 251}, 0.18))

	return scaffold{
		top:             top,
		bottom:          bottom,
		surface:         surface,
		surfaceAlt:      surfaceAlt,
		popupSurface:    popupSurface,
		darkText:        darkText,
		allBackgrounds:  []RGB{surface, surfaceAlt, popupSurface, top, bottom},
		heroBackgrounds: []RGB{top, bottom, surface},
	}
}

// warningSeedFor shifts the warning color toward pink-red when the accent
// is already warm amber, so the two stay distinguishable.
func warningSeedFor(accent RGB, darkText bool) RGB {
	warmAccent := accent.R > 180 && accent.G > 140 && accent.B < 140
	if warmAccent {
		return choose(darkText, RGB{180, 40, 60}, RGB{255, 110, 130})
	}
	return choose(darkText, RGB{161, 98, 7}, RGB{251, 191, 36})
}

func choose(cond bool, whenTrue, whenFalse RGB) RGB {
	if cond {
		return whenTrue
	}
	return whenFalse
}

func choosef(cond bool, whenTrue, whenFalse float64) float64 {
	if cond {
		return whenTrue
	}
	return whenFalse
}

func luma(c RGB) float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

func mix(a, b RGB, t float64) RGB {
	t = math.Min(math.Max(t, 0), 1)
	m := func(x, y uint8) uint8 {
		v := float64(x) + (float64(y)-float64(x))*t
		return uint8(math.Min(math.Max(math.Round(v), 0), 255))
	}
	return RGB{m(a.R, b.R), m(a.G, b.G), m(a.B, b.B)}
}

func ensureContrast(fg, bg RGB, minRatio float64) RGB {
	return ensureContrastMulti(fg, []RGB{bg}, minRatio)
}

// ensureContrastMulti nudges fg toward black or white, whichever helps,
// until it clears minRatio against every background, or as close as 24
// mixing steps allow.
func ensureContrastMulti(fg RGB, backgrounds []RGB, minRatio float64) RGB {
	if len(backgrounds) == 0 {
		return fg
	}
	if minContrastRatio(fg, backgrounds) >= minRatio {
		return fg
	}

	black, white := RGB{}, RGB{255, 255, 255}
	target := black
	if minContrastRatio(white, backgrounds) >= minContrastRatio(black, backgrounds) {
		target = white
	}

	best, bestRatio := fg, minContrastRatio(fg, backgrounds)
	for step := 1; step <= 24; step++ {
		candidate := mix(fg, target, float64(step)/24)
		ratio := minContrastRatio(candidate, backgrounds)
		if ratio > bestRatio {
			best, bestRatio = candidate, ratio
		}
		if ratio >= minRatio {
			return candidate
		}
	}
	return best
}

func minContrastRatio(c RGB, backgrounds []RGB) float64 {
	minimum := math.Inf(1)
	for _, bg := range backgrounds {
		minimum = math.Min(minimum, contrastRatio(c, bg))
	}
	return minimum
}

func contrastRatio(a, b RGB) float64 {
	la, lb := relativeLuminance(a), relativeLuminance(b)
	hi, lo := math.Max(la, lb), math.Min(la, lb)
	return (hi + 0.05) / (lo + 0.05)
}

func relativeLuminance(c RGB) float64 {
	return 0.2126*srgbToLinear(c.R) + 0.7152*srgbToLinear(c.G) + 0.0722*srgbToLinear(c.B)
}

func srgbToLinear(v uint8) float64 {
	s := float64(v) / 255
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// quantize renders an RGB triple as the closest color string the terminal
// capability supports.
func quantize(c RGB, capability Capability) string {
	switch capability {
	case CapabilityTrueColor:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	case CapabilityXterm256:
		toCube := func(v uint8) int {
			return int(math.Round(float64(v) / 255 * 5))
		}
		return fmt.Sprintf("%d", 16+36*toCube(c.R)+6*toCube(c.G)+toCube(c.B))
	default:
		return basic16FromRGB(c)
	}
}

func basic16FromRGB(c RGB) string {
	rf := float64(c.R) / 255
	gf := float64(c.G) / 255
	bf := float64(c.B) / 255

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	delta := maxC - minC
	light := (maxC + minC) / 2

	if delta < 0.08 {
		switch {
		case light < 0.20:
			return ansiBlack
		case light < 0.40:
			return ansiDarkGray
		case light < 0.72:
			return ansiGray
		default:
			return ansiWhite
		}
	}

	var hue float64
	switch maxC {
	case rf:
		hue = 60 * math.Mod(math.Mod((gf-bf)/delta, 6)+6, 6)
	case gf:
		hue = 60 * ((bf-rf)/delta + 2)
	default:
		hue = 60 * ((rf-gf)/delta + 4)
	}

	bright := light >= 0.55
	var band int
	switch {
	case hue < 30 || hue >= 330:
		band = 0
	case hue < 90:
		band = 1
	case hue < 150:
		band = 2
	case hue < 210:
		band = 3
	case hue < 270:
		band = 4
	default:
		band = 5
	}

	dim := [6]string{ansiRed, ansiYellow, ansiGreen, ansiCyan, ansiBlue, ansiMagenta}
	brightBands := [6]string{ansiLightRed, ansiLightYellow, ansiLightGreen, ansiLightCyan, ansiLightBlue, ansiLightMagenta}
	if bright {
		return brightBands[band]
	}
	return dim[band]
}
