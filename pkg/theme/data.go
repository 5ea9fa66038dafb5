package theme

import (
	"gitlab.com/tinyland/lab/skycast/pkg/settings"
	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

type autoKey struct {
	category weather.Category
	isDay    bool
}

// autoSeeds are the gradient/accent seeds the auto theme picks from based
// on the current weather and time of day.
var autoSeeds = map[autoKey]Seed{
	{weather.CategoryClear, true}:    {RGB{13, 53, 102}, RGB{30, 102, 158}, RGB{255, 215, 117}},
	{weather.CategoryClear, false}:   {RGB{9, 18, 44}, RGB{21, 43, 79}, RGB{173, 216, 255}},
	{weather.CategoryCloudy, true}:   {RGB{25, 36, 51}, RGB{48, 63, 84}, RGB{210, 223, 235}},
	{weather.CategoryCloudy, false}:  {RGB{20, 26, 40}, RGB{34, 42, 62}, RGB{194, 207, 224}},
	{weather.CategoryRain, true}:     {RGB{17, 47, 88}, RGB{32, 73, 126}, RGB{153, 214, 255}},
	{weather.CategoryRain, false}:    {RGB{12, 25, 52}, RGB{25, 44, 78}, RGB{143, 196, 255}},
	{weather.CategorySnow, true}:     {RGB{27, 51, 77}, RGB{43, 74, 106}, RGB{237, 247, 255}},
	{weather.CategorySnow, false}:    {RGB{19, 35, 55}, RGB{34, 55, 80}, RGB{226, 241, 255}},
	{weather.CategoryFog, true}:      {RGB{30, 34, 40}, RGB{50, 55, 62}, RGB{216, 220, 224}},
	{weather.CategoryFog, false}:     {RGB{21, 24, 30}, RGB{33, 37, 43}, RGB{201, 207, 211}},
	{weather.CategoryThunder, true}:  {RGB{28, 25, 66}, RGB{42, 40, 97}, RGB{255, 223, 112}},
	{weather.CategoryThunder, false}: {RGB{18, 15, 44}, RGB{28, 24, 63}, RGB{255, 208, 95}},
	{weather.CategoryUnknown, true}:  {RGB{28, 36, 51}, RGB{42, 53, 73}, RGB{205, 219, 234}},
	{weather.CategoryUnknown, false}: {RGB{19, 24, 35}, RGB{31, 39, 53}, RGB{195, 205, 215}},
}

var autoFallbackSeed = Seed{RGB{28, 36, 51}, RGB{42, 53, 73}, RGB{205, 219, 234}}

// presetSeeds define the named themes.
var presetSeeds = map[settings.Theme]Seed{
	settings.ThemeAurora:          {RGB{9, 31, 65}, RGB{16, 70, 105}, RGB{102, 232, 242}},
	settings.ThemeMidnightCyan:    {RGB{10, 14, 42}, RGB{28, 22, 84}, RGB{122, 230, 255}},
	settings.ThemeAubergine:       {RGB{46, 24, 73}, RGB{82, 36, 114}, RGB{106, 212, 243}},
	settings.ThemeHoth:            {RGB{229, 236, 247}, RGB{204, 218, 236}, RGB{32, 109, 167}},
	settings.ThemeMonument:        {RGB{17, 33, 33}, RGB{33, 58, 57}, RGB{242, 176, 68}},
	settings.ThemeNord:            {RGB{46, 52, 64}, RGB{59, 66, 82}, RGB{136, 192, 208}},
	settings.ThemeCatppuccinMocha: {RGB{30, 30, 46}, RGB{49, 50, 68}, RGB{203, 166, 247}},
	settings.ThemeMono:            {RGB{17, 17, 24}, RGB{32, 35, 44}, RGB{196, 201, 214}},
	settings.ThemeHighContrast:    {RGB{0, 0, 0}, RGB{10, 10, 16}, RGB{255, 210, 0}},
	settings.ThemeDracula:         {RGB{40, 42, 54}, RGB{68, 71, 90}, RGB{189, 147, 249}},
	settings.ThemeGruvboxMaterialDark: {RGB{40, 40, 40}, RGB{60, 56, 54}, RGB{216, 166, 87}},
	settings.ThemeKanagawaWave:    {RGB{31, 31, 40}, RGB{43, 46, 58}, RGB{152, 187, 108}},
	settings.ThemeAyuMirage:       {RGB{31, 36, 48}, RGB{46, 53, 71}, RGB{255, 173, 102}},
	settings.ThemeAyuLight:        {RGB{248, 249, 250}, RGB{232, 236, 242}, RGB{255, 148, 64}},
	settings.ThemePoimandresStorm: {RGB{37, 43, 55}, RGB{56, 65, 84}, RGB{209, 159, 232}},
	settings.ThemeSelenizedDark:   {RGB{16, 60, 72}, RGB{24, 73, 86}, RGB{90, 170, 255}},
	settings.ThemeNoClownFiesta:   {RGB{16, 16, 16}, RGB{33, 37, 45}, RGB{179, 168, 241}},
}

// ANSI color names as decimal palette indices, the form lipgloss accepts.
const (
	ansiBlack        = "0"
	ansiRed          = "1"
	ansiGreen        = "2"
	ansiYellow       = "3"
	ansiBlue         = "4"
	ansiMagenta      = "5"
	ansiCyan         = "6"
	ansiGray         = "7"
	ansiDarkGray     = "8"
	ansiLightRed     = "9"
	ansiLightGreen   = "10"
	ansiLightYellow  = "11"
	ansiLightBlue    = "12"
	ansiLightMagenta = "13"
	ansiLightCyan    = "14"
	ansiWhite        = "15"
)

// basic16Surfaces is the hand-picked 16-color mapping for one theme:
// surface, surface-alt, popup surface, accent, border, popup border.
type basic16Surfaces struct {
	surface     string
	surfaceAlt  string
	popup       string
	accent      string
	border      string
	popupBorder string
}

var basic16Map = map[settings.Theme]basic16Surfaces{
	settings.ThemeAurora:          {ansiBlue, ansiCyan, ansiDarkGray, ansiLightCyan, ansiLightCyan, ansiWhite},
	settings.ThemeMidnightCyan:    {ansiBlue, ansiDarkGray, ansiDarkGray, ansiLightCyan, ansiLightCyan, ansiYellow},
	settings.ThemeAubergine:       {ansiMagenta, ansiBlue, ansiDarkGray, ansiLightCyan, ansiLightMagenta, ansiYellow},
	settings.ThemeHoth:            {ansiGray, ansiWhite, ansiDarkGray, ansiBlue, ansiBlue, ansiBlack},
	settings.ThemeMonument:        {ansiBlack, ansiDarkGray, ansiDarkGray, ansiYellow, ansiLightGreen, ansiWhite},
	settings.ThemeNord:            {ansiBlue, ansiDarkGray, ansiDarkGray, ansiLightCyan, ansiLightBlue, ansiWhite},
	settings.ThemeCatppuccinMocha: {ansiMagenta, ansiBlue, ansiDarkGray, ansiLightMagenta, ansiLightCyan, ansiWhite},
	settings.ThemeMono:            {ansiBlack, ansiDarkGray, ansiDarkGray, ansiWhite, ansiGray, ansiWhite},
	settings.ThemeHighContrast:    {ansiBlack, ansiBlack, ansiBlack, ansiYellow, ansiWhite, ansiYellow},
	settings.ThemeDracula:         {ansiMagenta, ansiBlue, ansiDarkGray, ansiLightMagenta, ansiLightMagenta, ansiWhite},
	settings.ThemeGruvboxMaterialDark: {ansiBlack, ansiDarkGray, ansiDarkGray, ansiYellow, ansiYellow, ansiWhite},
	settings.ThemeKanagawaWave:    {ansiGreen, ansiDarkGray, ansiDarkGray, ansiLightGreen, ansiLightGreen, ansiWhite},
	settings.ThemeAyuMirage:       {ansiYellow, ansiDarkGray, ansiDarkGray, ansiLightYellow, ansiYellow, ansiWhite},
	settings.ThemeAyuLight:        {ansiGray, ansiWhite, ansiDarkGray, ansiRed, ansiYellow, ansiBlack},
	settings.ThemePoimandresStorm: {ansiMagenta, ansiDarkGray, ansiDarkGray, ansiLightMagenta, ansiLightMagenta, ansiWhite},
	settings.ThemeSelenizedDark:   {ansiCyan, ansiBlue, ansiDarkGray, ansiLightCyan, ansiLightBlue, ansiWhite},
	settings.ThemeNoClownFiesta:   {ansiBlack, ansiDarkGray, ansiDarkGray, ansiLightMagenta, ansiMagenta, ansiWhite},
}

type basic16Semantics struct {
	text         string
	muted        string
	particle     string
	info         string
	success      string
	warning      string
	danger       string
	tempFreezing string
	tempCold     string
	tempMild     string
	tempWarm     string
	tempHot      string
	landmarkWarm string
	landmarkCool string
}

var basic16Dark = basic16Semantics{
	text:         ansiWhite,
	muted:        ansiGray,
	particle:     ansiDarkGray,
	info:         ansiLightCyan,
	success:      ansiLightGreen,
	warning:      ansiYellow,
	danger:       ansiLightRed,
	tempFreezing: ansiLightBlue,
	tempCold:     ansiCyan,
	tempMild:     ansiGreen,
	tempWarm:     ansiYellow,
	tempHot:      ansiLightRed,
	landmarkWarm: ansiYellow,
	landmarkCool: ansiLightBlue,
}

var basic16Light = basic16Semantics{
	text:         ansiBlack,
	muted:        ansiDarkGray,
	particle:     ansiGray,
	info:         ansiBlue,
	success:      ansiGreen,
	warning:      ansiMagenta,
	danger:       ansiRed,
	tempFreezing: ansiBlue,
	tempCold:     ansiCyan,
	tempMild:     ansiGreen,
	tempWarm:     ansiMagenta,
	tempHot:      ansiRed,
	landmarkWarm: ansiMagenta,
	landmarkCool: ansiBlue,
}

// basic16Palette assembles the degraded palette for terminals without
// 256-color or truecolor support.
func basic16Palette(t settings.Theme, category weather.Category, seed Seed) Palette {
	if t == settings.ThemeAuto {
		return autoBasic16Palette(category)
	}

	surfaces, ok := basic16Map[t]
	if !ok {
		return autoBasic16Palette(category)
	}
	sem := basic16Dark
	if t == settings.ThemeAyuLight || t == settings.ThemeHoth {
		sem = basic16Light
	}

	return Palette{
		Top:          quantize(seed.Top, CapabilityBasic16),
		Bottom:       quantize(seed.Bottom, CapabilityBasic16),
		Surface:      surfaces.surface,
		SurfaceAlt:   surfaces.surfaceAlt,
		PopupSurface: surfaces.popup,
		Accent:       surfaces.accent,
		Text:         sem.text,
		MutedText:    sem.muted,
		PopupText:    sem.text,
		PopupMuted:   sem.muted,
		Particle:     sem.particle,
		Border:       surfaces.border,
		PopupBorder:  surfaces.popupBorder,

		Info:    sem.info,
		Success: sem.success,
		Warning: sem.warning,
		Danger:  sem.danger,

		TempFreezing: sem.tempFreezing,
		TempCold:     sem.tempCold,
		TempMild:     sem.tempMild,
		TempWarm:     sem.tempWarm,
		TempHot:      sem.tempHot,

		RangeTrack:      sem.muted,
		LandmarkWarm:    sem.landmarkWarm,
		LandmarkCool:    sem.landmarkCool,
		LandmarkNeutral: sem.muted,
	}
}

func autoBasic16Gradient(category weather.Category) (RGB, RGB) {
	top := RGB{0, 0, 0}
	var bottom RGB
	switch category {
	case weather.CategoryClear:
		bottom = RGB{0, 32, 72}
	case weather.CategoryCloudy:
		bottom = RGB{25, 30, 35}
	case weather.CategoryRain:
		bottom = RGB{0, 22, 56}
	case weather.CategorySnow:
		bottom = RGB{28, 38, 56}
	case weather.CategoryFog:
		bottom = RGB{30, 30, 30}
	case weather.CategoryThunder:
		bottom = RGB{24, 0, 44}
	default:
		bottom = RGB{20, 24, 32}
	}
	return top, bottom
}

func autoBasic16Palette(category weather.Category) Palette {
	top, bottom := autoBasic16Gradient(category)
	return Palette{
		Top:          quantize(top, CapabilityBasic16),
		Bottom:       quantize(bottom, CapabilityBasic16),
		Surface:      ansiBlack,
		SurfaceAlt:   ansiDarkGray,
		PopupSurface: ansiBlue,
		Accent:       ansiCyan,
		Text:         ansiWhite,
		MutedText:    ansiGray,
		PopupText:    ansiWhite,
		PopupMuted:   ansiGray,
		Particle:     ansiGray,
		Border:       ansiLightCyan,
		PopupBorder:  ansiYellow,

		Info:    ansiLightCyan,
		Success: ansiLightGreen,
		Warning: ansiYellow,
		Danger:  ansiLightRed,

		TempFreezing: ansiLightBlue,
		TempCold:     ansiCyan,
		TempMild:     ansiGreen,
		TempWarm:     ansiYellow,
		TempHot:      ansiLightRed,

		RangeTrack:      ansiGray,
		LandmarkWarm:    ansiYellow,
		LandmarkCool:    ansiLightBlue,
		LandmarkNeutral: ansiGray,
	}
}
