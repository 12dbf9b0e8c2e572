package palette

import "image/color"

// FromRGB converts a packed 0xRRGGBB value into an opaque color.
// Bits above 23 must be zero; they are not checked.
func FromRGB(c uint32) color.RGBA {
	return color.RGBA{
		R: uint8((c >> 16) & 0xFF),
		G: uint8((c >> 8) & 0xFF),
		B: uint8(c & 0xFF),
		A: 0xFF,
	}
}

var (
	DayBall         = FromRGB(0xB4D4FF)
	NightBall       = FromRGB(0x3282B8)
	DayBackground   = FromRGB(0xECF9FF)
	NightBackground = FromRGB(0x001F3F)

	// Hint matches raylib's DARKGREEN.
	Hint = FromRGB(0x00752C)
)
