package term

import "image/color"

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15), 216 color cube (16-231), 24 grayscale (232-255).
var DefaultPalette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White

	// 216 colors (16-231)
	// Generated programmatically below

	// Grayscale (232-255)
	// Generated programmatically below
}

func init() {
	// Generate 216 color cube (16-231)
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	// Generate grayscale (232-255)
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// DefaultCursorColor is the default cursor rendering color (light gray).
var DefaultCursorColor = color.RGBA{229, 229, 229, 255}

// Named color indices for semantic colors (used with NamedColor).
const (
	NamedColorForeground       = 256 // Default foreground text color
	NamedColorBackground       = 257 // Default background color
	NamedColorCursor           = 258 // Cursor color
	NamedColorDimBlack         = 259 // Dim black
	NamedColorDimRed           = 260 // Dim red
	NamedColorDimGreen         = 261 // Dim green
	NamedColorDimYellow        = 262 // Dim yellow
	NamedColorDimBlue          = 263 // Dim blue
	NamedColorDimMagenta       = 264 // Dim magenta
	NamedColorDimCyan          = 265 // Dim cyan
	NamedColorDimWhite         = 266 // Dim white
	NamedColorBrightForeground = 267 // Bright foreground (white)
	NamedColorDimForeground    = 268 // Dim foreground
)

// ResolveDefaultColor converts a color.Color to RGBA using the stock palette,
// with no regard for any terminal-set overrides (OSC 4/10/11/12). Terminal
// code should call (*Terminal).resolveColorLocked instead; this is exported
// for callers that genuinely want the palette as shipped, e.g. a config
// loader previewing the default theme before any session has run.
func ResolveDefaultColor(c color.Color, fg bool) color.RGBA {
	return resolveColor(nil, c, fg)
}

// resolveColorLocked converts c to RGBA, consulting this terminal's runtime
// palette overrides (set via SetColor / OSC 4, 10, 11, 12) ahead of the
// stock DefaultPalette. Caller must hold at least the read lock.
func (t *Terminal) resolveColorLocked(c color.Color, fg bool) color.RGBA {
	return resolveColor(t.colors, c, fg)
}

// resolveColor is the shared resolution path for both the override-free and
// override-aware entry points above.
func resolveColor(overrides map[int]color.Color, c color.Color, fg bool) color.RGBA {
	if c == nil {
		return resolveNamedColor(overrides, boolToDefaultIndex(fg), fg)
	}

	switch v := c.(type) {
	case color.RGBA:
		return v
	case *IndexedColor:
		if ov, ok := overrides[int(v.Index)]; ok {
			return resolveColor(overrides, ov, fg)
		}
		if v.Index >= 0 && int(v.Index) < len(DefaultPalette) {
			return DefaultPalette[v.Index]
		}
		return resolveNamedColor(overrides, boolToDefaultIndex(fg), fg)
	case *NamedColor:
		return resolveNamedColor(overrides, v.Name, fg)
	default:
		r, g, b, a := c.RGBA()
		return color.RGBA{
			R: uint8(r >> 8),
			G: uint8(g >> 8),
			B: uint8(b >> 8),
			A: uint8(a >> 8),
		}
	}
}

func boolToDefaultIndex(fg bool) int {
	if fg {
		return NamedColorForeground
	}
	return NamedColorBackground
}

// resolveNamedColor resolves a named color index to RGBA, checking
// terminal-set overrides across the full palette (0-255) and the semantic
// foreground/background/cursor/dim slots (256+) before falling back to the
// stock values baked into DefaultPalette/DefaultForeground/DefaultBackground/
// DefaultCursorColor.
func resolveNamedColor(overrides map[int]color.Color, name int, fg bool) color.RGBA {
	if ov, ok := overrides[name]; ok {
		return resolveColor(overrides, ov, fg)
	}

	switch {
	case name >= 0 && name < len(DefaultPalette):
		return DefaultPalette[name]
	case name == NamedColorForeground:
		return DefaultForeground
	case name == NamedColorBackground:
		return DefaultBackground
	case name == NamedColorCursor:
		return DefaultCursorColor
	case name >= NamedColorDimBlack && name <= NamedColorDimWhite:
		base := DefaultPalette[name-NamedColorDimBlack]
		return dim(base)
	case name == NamedColorBrightForeground:
		return DefaultPalette[15] // Bright White
	case name == NamedColorDimForeground:
		return dim(DefaultForeground)
	default:
		if fg {
			return DefaultForeground
		}
		return DefaultBackground
	}
}

// dim scales an RGBA color to 66% intensity, matching xterm's "dim" SGR
// attribute rendering.
func dim(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.66),
		G: uint8(float64(c.G) * 0.66),
		B: uint8(float64(c.B) * 0.66),
		A: 255,
	}
}
