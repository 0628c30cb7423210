package scene

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowHitMapsClicksToRows(t *testing.T) {
	bounds := image.Rect(100, 50, 400, 300)

	assert.Equal(t, 0, rowHit(150, 80, bounds, 80, 20, 5))
	assert.Equal(t, 2, rowHit(150, 125, bounds, 80, 20, 5))
	assert.Equal(t, 4, rowHit(399, 99+80, bounds, 80, 20, 5))
}

func TestRowHitRejectsMisses(t *testing.T) {
	bounds := image.Rect(100, 50, 400, 300)

	assert.Equal(t, -1, rowHit(99, 90, bounds, 80, 20, 5), "left of bounds")
	assert.Equal(t, -1, rowHit(400, 90, bounds, 80, 20, 5), "right edge exclusive")
	assert.Equal(t, -1, rowHit(150, 79, bounds, 80, 20, 5), "above first row")
	assert.Equal(t, -1, rowHit(150, 80+5*20, bounds, 80, 20, 5), "past last row")
	assert.Equal(t, -1, rowHit(150, 90, bounds, 80, 0, 5), "degenerate row height")
	assert.Equal(t, -1, rowHit(150, 90, bounds, 80, 20, 0), "empty list")
}
