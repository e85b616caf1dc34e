// Package window runs the game in a desktop window with ebiten. The real
// frontend is only built with the ebiten build tag; other builds get a
// stub whose Run reports ErrUnavailable.
package window

import (
	"errors"
	"image/color"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vovakirdan/barigueira/internal/core"
	"github.com/vovakirdan/barigueira/internal/platform"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("window: built without the ebiten tag (rebuild with -tags ebiten)")

// Options configures the window frontend.
type Options struct {
	Title    string
	TickRate int   // Updates per second; 0 means 60
	Seed     int64 // 0 means a time-based seed per session
	Recorder *platform.Recorder
}

// Palette used by the window renderer.
var (
	colorPark     = color.RGBA{R: 70, G: 130, B: 60, A: 255}
	colorMenuBG   = color.RGBA{R: 40, G: 70, B: 40, A: 255}
	colorBurrow   = color.RGBA{R: 80, G: 50, B: 25, A: 255}
	colorCapybara = color.RGBA{R: 150, G: 100, B: 60, A: 255}
	colorGolden   = color.RGBA{R: 235, G: 190, B: 40, A: 255}
	colorPest     = color.RGBA{R: 205, G: 110, B: 40, A: 255}
	colorStunned  = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	colorRain     = color.RGBA{R: 120, G: 160, B: 235, A: 180}
	colorButton   = color.RGBA{R: 190, G: 40, B: 40, A: 255}
	colorButtonHi = color.RGBA{R: 120, G: 75, B: 40, A: 255}
	colorOverlay  = color.RGBA{A: 170}
	colorText     = color.RGBA{R: 245, G: 235, B: 210, A: 255}
	colorTitle    = color.RGBA{R: 250, G: 210, B: 90, A: 255}
)

// coreColors maps the terminal palette to window colours.
var coreColors = map[core.Color]color.RGBA{
	core.ColorBrown:  colorCapybara,
	core.ColorBeige:  colorText,
	core.ColorGold:   colorGolden,
	core.ColorGray:   colorStunned,
	core.ColorBlue:   colorRain,
	core.ColorRed:    colorButton,
	core.ColorOrange: colorPest,
}

// rgba returns the window colour for a terminal colour, white when unmapped.
func rgba(c core.Color) color.RGBA {
	if v, ok := coreColors[c]; ok {
		return v
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

// spriteColor returns the body colour of a slot's sprite.
func spriteColor(kind string, stunned bool) color.RGBA {
	switch {
	case stunned:
		return colorStunned
	case kind == "golden":
		return colorGolden
	case kind == "pest":
		return colorPest
	default:
		return colorCapybara
	}
}

// fold strips diacritics so labels render with the ASCII bitmap font.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
