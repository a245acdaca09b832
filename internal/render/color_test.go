package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("#fff")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c)

	c, ok = ParseColor(" #00FF7f ")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{0, 255, 127, 255}, c)

	for _, bad := range []string{"", "fff", "#ff", "#ggg", "#12345", "#1234567"} {
		_, ok := ParseColor(bad)
		assert.False(t, ok, bad)
	}
}
