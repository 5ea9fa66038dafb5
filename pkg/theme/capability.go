package theme

import (
	"os"
	"strings"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/skycast/pkg/config"
)

// Capability is the color depth the terminal can render.
type Capability int

const (
	CapabilityTrueColor Capability = iota
	CapabilityXterm256
	CapabilityBasic16
)

func (c Capability) String() string {
	switch c {
	case CapabilityXterm256:
		return "256-color"
	case CapabilityBasic16:
		return "16-color"
	default:
		return "truecolor"
	}
}

// DetectCapability resolves the color depth from the configured mode and
// the environment. NO_COLOR and TERM=dumb force the 16-color fallback in
// auto mode; an explicit --color=always trusts termenv's probe.
func DetectCapability(mode config.ColorMode) Capability {
	return detectCapabilityFrom(mode, os.Getenv("TERM"), os.Getenv("COLORTERM"), os.Getenv("NO_COLOR"))
}

func detectCapabilityFrom(mode config.ColorMode, term, colorterm, noColor string) Capability {
	switch {
	case mode == config.ColorNever,
		mode == config.ColorAuto && noColor != "",
		strings.EqualFold(term, "dumb"):
		return CapabilityBasic16
	}

	lc := strings.ToLower(colorterm)
	if strings.Contains(lc, "truecolor") || strings.Contains(lc, "24bit") {
		return CapabilityTrueColor
	}
	if strings.Contains(strings.ToLower(term), "256color") {
		return CapabilityXterm256
	}

	// TERM and COLORTERM said nothing useful; let termenv probe the
	// terminfo database before giving up.
	switch termenv.ColorProfile() {
	case termenv.TrueColor:
		return CapabilityTrueColor
	case termenv.ANSI256:
		return CapabilityXterm256
	default:
		return CapabilityBasic16
	}
}
