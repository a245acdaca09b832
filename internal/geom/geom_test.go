package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint3Ops(t *testing.T) {
	p := P3(1, 2, 3)
	assert.Equal(t, P3(2, 4, 6), p.Scale(2))
	assert.Equal(t, P3(1, 3, 3), p.Add(P3(0, 1, 0)))
	assert.InDelta(t, 5, P3(0, 0, 0).Distance(P3(3, 4, 0)), 1e-6)
	assert.Zero(t, p.Distance(p))
}

func TestPoint2Ops(t *testing.T) {
	p := P2(3, 4)
	assert.Equal(t, P2(-3, -4), p.Scale(-1))
	assert.Equal(t, P2(4, 4), p.Add(P2(1, 0)))
	assert.InDelta(t, 5, P2(0, 0).Distance(p), 1e-6)
}
