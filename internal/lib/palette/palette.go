// Package palette generates well separated calendar colors for household members.
package palette

import (
	"fmt"
	"math"
	"regexp"
)

const (
	DefaultOffset     = 0.17
	defaultLightness  = 0.5
	defaultSaturation = 0.65
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// phi is the golden ratio conjugate; stepping the hue by it keeps neighbours far apart.
var phi = (math.Sqrt(5) - 1) / 2

// IsHexColor reports whether c is a #RRGGBB color.
func IsHexColor(c string) bool {
	return hexColor.MatchString(c)
}

// Golden returns n colors with hues spread by the golden ratio starting at offset.
func Golden(n int, offset float64) []string {
	colors := make([]string, 0, n)
	for i := 0; i < n; i++ {
		h := frac(offset + float64(i)*phi)
		colors = append(colors, hlsToHex(h, defaultLightness, defaultSaturation))
	}

	return colors
}

func hlsToHex(h, l, s float64) string {
	r, g, b := hlsToRGB(h, l, s)

	return fmt.Sprintf("#%02X%02X%02X", int(r*255), int(g*255), int(b*255))
}

func hlsToRGB(h, l, s float64) (float64, float64, float64) {
	if s == 0 {
		return l, l, l
	}

	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2

	return channel(m1, m2, h+1.0/3), channel(m1, m2, h), channel(m1, m2, h-1.0/3)
}

func channel(m1, m2, hue float64) float64 {
	hue = frac(hue)

	switch {
	case hue < 1.0/6:
		return m1 + (m2-m1)*hue*6
	case hue < 0.5:
		return m2
	case hue < 2.0/3:
		return m1 + (m2-m1)*(2.0/3-hue)*6
	default:
		return m1
	}
}

func frac(x float64) float64 {
	return x - math.Floor(x)
}
