package sim

import (
	"github.com/nkarpov/mariosim/internal/core"
)

// Scene characters. The frame is a mock: a red block for Mario, a brown
// block for the obstacle, a blinking coin and two clouds over a green
// ground band.
const (
	GroundChar   = '▓'
	MarioChar    = '█'
	ObstacleChar = '▒'
	CoinChar     = '◉'
	CloudChar    = '○'
	SkyChar      = '·'
)

// groundRows is the height of the ground band at the bottom of the frame.
const groundRows = 2

// Render draws the placeholder frame for the current session state into dst.
// The variant only restyles the output; the scene layout is a pure function
// of the counters.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < 10 || h < groundRows+3 {
		return
	}

	// Rectangular mode letterboxes the scene into a squashed middle band.
	top, bottom := 0, h
	if s.variant == VariantRectangular {
		bar := h / 6
		top, bottom = bar, h-bar
	}

	sceneH := bottom - top
	groundY := bottom - groundRows

	put := s.variantPainter(dst)

	// Sky
	for y := top; y < groundY; y++ {
		for x := 0; x < w; x++ {
			put(x, y, SkyChar, core.ColorBlue)
		}
	}

	// Ground band
	for y := groundY; y < bottom; y++ {
		for x := 0; x < w; x++ {
			put(x, y, GroundChar, core.ColorGreen)
		}
	}

	// Clouds, fixed in the upper left quarter
	cloudY := top + sceneH/5
	for dx := 0; dx < 5; dx++ {
		put(w/8+dx, cloudY, CloudChar, core.ColorBrightWhite)
		put(w/8+2+dx, cloudY+1, CloudChar, core.ColorBrightWhite)
	}

	// Coin blinks on a fixed step cycle
	frame := s.tuning.Frame
	if s.steps%frame.CoinPeriod < frame.CoinVisible {
		put(w*2/5, top+sceneH/2, CoinChar, core.ColorBrightYellow)
	}

	// Obstacle shows up once the session has run long enough
	if s.steps > frame.ObstacleAfter {
		ox := w * 3 / 5
		for dy := 1; dy <= 2; dy++ {
			put(ox, groundY-dy, ObstacleChar, core.ColorOrange)
			put(ox+1, groundY-dy, ObstacleChar, core.ColorOrange)
		}
	}

	// Mario, logical x scaled to the drawable width
	mx := s.marioX * (w - 2) / frame.Width
	for dy := 1; dy <= 2; dy++ {
		put(mx, groundY-dy, MarioChar, core.ColorBrightRed)
		put(mx+1, groundY-dy, MarioChar, core.ColorBrightRed)
	}
}

// variantPainter returns the cell painter for the active display variant.
// Standard paints cells as given, downsampled drops odd columns, pixelated
// flattens everything to gray shade blocks.
func (s *Session) variantPainter(dst *core.Screen) func(x, y int, r rune, c core.Color) {
	switch s.variant {
	case VariantDownsampled:
		return func(x, y int, r rune, c core.Color) {
			if x%2 != 0 {
				return
			}
			dst.SetColored(x, y, r, c)
		}
	case VariantPixelated:
		return func(x, y int, r rune, c core.Color) {
			dst.SetColored(x, y, pixelShade(r), core.ColorGray)
		}
	default:
		return dst.SetColored
	}
}

// pixelShade maps a scene rune to a monochrome shade block.
func pixelShade(r rune) rune {
	switch r {
	case MarioChar, GroundChar:
		return '▓'
	case ObstacleChar, CloudChar:
		return '▒'
	case CoinChar:
		return '░'
	default:
		return ' '
	}
}
