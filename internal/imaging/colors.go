package imaging

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/region-tools-mcp/internal/dataset"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult carries one color in the formats clients ask for:
// compact hex for display, 8-bit RGB components, and HSL for
// perceptual comparisons.
type ColorResult struct {
	Hex string   `json:"hex"` // "#RRGGBB"
	RGB RGBColor `json:"rgb"`
	HSL HSLColor `json:"hsl"`
}

// ParseHexColor parses a "#RRGGBB" (or "RRGGBB") paint color.
func ParseHexColor(hex string) (colorful.Color, error) {
	s := strings.TrimSpace(hex)
	if s == "" {
		return colorful.Color{}, fmt.Errorf("empty color string")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return c, nil
}

// FormatColor renders a color into the multi-format result shape.
func FormatColor(c colorful.Color) ColorResult {
	r, g, b := c.RGB255()
	h, s, l := c.Hsl()
	return ColorResult{
		Hex: c.Hex(),
		RGB: RGBColor{R: r, G: g, B: b},
		HSL: HSLColor{
			H: int(math.Round(h)),
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}
}

// SamplePlaneColor reads the pixel at (x, y) on a dataset's X/Y plane
// and reports it as a ColorResult. Scalar datasets report their gray
// level on all three channels.
func SamplePlaneColor(ds *dataset.Dataset, x, y int64) (*ColorResult, error) {
	xAxis := ds.AxisIndex(dataset.AxisX)
	yAxis := ds.AxisIndex(dataset.AxisY)
	if xAxis < 0 || yAxis < 0 {
		return nil, fmt.Errorf("dataset has no X/Y plane to sample")
	}
	if x < 0 || x >= ds.Extent(xAxis) || y < 0 || y >= ds.Extent(yAxis) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside plane bounds %dx%d",
			x, y, ds.Extent(xAxis), ds.Extent(yAxis))
	}

	acc := ds.Access()
	acc.SetPosition(x, xAxis)
	acc.SetPosition(y, yAxis)

	var c colorful.Color
	if ch := ds.ChannelAxis(); ch >= 0 {
		acc.SetPosition(0, ch)
		r := acc.Get()
		acc.SetPosition(1, ch)
		g := acc.Get()
		acc.SetPosition(2, ch)
		b := acc.Get()
		c = colorful.Color{R: r / 255, G: g / 255, B: b / 255}
	} else {
		v := acc.Get() / 255
		c = colorful.Color{R: v, G: v, B: v}
	}
	result := FormatColor(c)
	return &result, nil
}
