package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitLandscapeIntoWiderScreen(t *testing.T) {
	scale, dx, dy := fit(200, 100, 400, 100)
	assert.Equal(t, 1.0, scale)
	assert.Equal(t, 100.0, dx)
	assert.Equal(t, 0.0, dy)
}

func TestFitShrinksToSmallerSide(t *testing.T) {
	scale, dx, dy := fit(1000, 500, 500, 500)
	assert.Equal(t, 0.5, scale)
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 125.0, dy)
}

func TestFitEmptyImage(t *testing.T) {
	scale, dx, dy := fit(0, 0, 500, 500)
	assert.Equal(t, 1.0, scale)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestWindowSize(t *testing.T) {
	w, h := windowSize(1190, 842, 1400)
	assert.Equal(t, 1190, w)
	assert.Equal(t, 842, h)

	w, h = windowSize(2800, 1400, 1400)
	assert.Equal(t, 1400, w)
	assert.Equal(t, 700, h)

	w, h = windowSize(700, 2800, 1400)
	assert.Equal(t, 350, w)
	assert.Equal(t, 1400, h)
}
