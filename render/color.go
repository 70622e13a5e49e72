package render

import "github.com/lixenwraith/radfield/parameter"

// RGB stores explicit 8-bit color channels, decoupled from tcell and ebiten
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBBlack  = RGB{0, 0, 0}
	RGBArrow  = RGB{40, 110, 255}
	RGBCharge = RGB{255, 60, 60}
	RGBBox    = RGB{100, 100, 110}
	RGBText   = RGB{200, 200, 210}
	RGBTitle  = RGB{255, 255, 255}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// ArrowColor shades the arrow color by relative magnitude in [0,1]
// Weak arrows keep ArrowMinIntensity so they stay visible
func ArrowColor(relative float64) RGB {
	if relative < 0 {
		relative = 0
	}
	if relative > 1 {
		relative = 1
	}
	alpha := parameter.ArrowMinIntensity + (1-parameter.ArrowMinIntensity)*relative
	return RGBBlack.Blend(RGBArrow, alpha)
}
