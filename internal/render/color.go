package render

import (
	"image/color"
	"strings"
)

// ParseColor parses #RGB or #RRGGBB into an opaque color. Returns false on any other form.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return color.RGBA{}, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexNibble(hex[i]); !ok {
			return color.RGBA{}, false
		}
	}
	n := func(i int) uint8 {
		v, _ := hexNibble(hex[i])
		return v
	}
	switch len(hex) {
	case 3:
		return color.RGBA{R: n(0) * 17, G: n(1) * 17, B: n(2) * 17, A: 255}, true
	case 6:
		return color.RGBA{R: n(0)<<4 + n(1), G: n(2)<<4 + n(3), B: n(4)<<4 + n(5), A: 255}, true
	}
	return color.RGBA{}, false
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
