package theme

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

// tomlSeed is the on-disk form of a custom theme: three hex colors that
// feed the same derivation pipeline as the built-in seeds.
type tomlSeed struct {
	Top    string `toml:"top"`
	Bottom string `toml:"bottom"`
	Accent string `toml:"accent"`
}

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadSeedFile reads a custom theme seed from a TOML file. The file wins
// over the configured theme when present.
func LoadSeedFile(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return ParseSeedTOML(raw)
}

// ParseSeedTOML parses and validates a custom seed definition.
func ParseSeedTOML(raw []byte) (Seed, error) {
	var ts tomlSeed
	if err := toml.Unmarshal(raw, &ts); err != nil {
		return Seed{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	top, err := parseHex("top", ts.Top)
	if err != nil {
		return Seed{}, err
	}
	bottom, err := parseHex("bottom", ts.Bottom)
	if err != nil {
		return Seed{}, err
	}
	accent, err := parseHex("accent", ts.Accent)
	if err != nil {
		return Seed{}, err
	}
	return Seed{Top: top, Bottom: bottom, Accent: accent}, nil
}

// Custom derives a palette directly from a user-provided seed. On plain
// 16-color terminals the seed cannot be honored and the neutral fallback
// palette is used instead.
func Custom(seed Seed, capability Capability) Palette {
	if capability == CapabilityBasic16 {
		return autoBasic16Palette(weather.CategoryUnknown)
	}
	return derivePalette(seed, capability)
}

func parseHex(field, value string) (RGB, error) {
	if !hexColorPattern.MatchString(value) {
		return RGB{}, fmt.Errorf("theme: %s: want #rrggbb, got %q", field, value)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(value[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("theme: %s: %w", field, err)
	}
	return RGB{r, g, b}, nil
}
