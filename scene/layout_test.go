package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestComputeMetricsScaleClamps(t *testing.T) {
	small := ComputeMetrics(400, 300)
	assert.Equal(t, 1.0, small.Scale)

	huge := ComputeMetrics(3840, 2160)
	assert.Equal(t, 2.5, huge.Scale)
}

func TestComputeMetricsPanelInsideViewport(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(320, 4096).Draw(t, "w")
		h := rapid.IntRange(240, 2304).Draw(t, "h")
		lm := ComputeMetrics(w, h)

		assert.GreaterOrEqual(t, lm.Panel.Min.X, 0)
		assert.GreaterOrEqual(t, lm.Panel.Min.Y, 0)
		assert.LessOrEqual(t, lm.Panel.Max.X, w)
		assert.LessOrEqual(t, lm.Panel.Max.Y, h)
		assert.GreaterOrEqual(t, lm.ListRows, 3)
		assert.Positive(t, lm.RowHeight)
	})
}

func TestComputeMetricsListFitsPanel(t *testing.T) {
	lm := ComputeMetrics(960, 640)
	bottom := lm.ListTop + lm.ListRows*lm.RowHeight
	assert.LessOrEqual(t, bottom, lm.Panel.Max.Y)
}
