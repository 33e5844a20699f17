package grid_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomnav/grid"
)

// testBitmap draws a 3×2 white image with black pixels at (1,0) and (2,1).
func testBitmap() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, color.White)
		}
	}
	img.Set(1, 0, color.Black)
	img.Set(2, 1, color.Black)
	return img
}

func TestFromImage_RedChannelRule(t *testing.T) {
	g := grid.FromImage(testBitmap())
	require.Equal(t, ".#.\n..#", g.String())
}

func TestFromImage_CustomRule(t *testing.T) {
	// Treat everything bright as blocked instead.
	g := grid.FromImage(testBitmap(), grid.WithBlockedFunc(func(c color.Color) bool {
		return !grid.RedIsZero(c)
	}))
	require.Equal(t, "#.#\n##.", g.String())
}

func TestFromImage_OffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 7, 6))
	img.Set(5, 5, color.White)
	img.Set(6, 5, color.Black)

	g := grid.FromImage(img)
	require.Equal(t, 2, g.Width)
	require.Equal(t, 1, g.Height)
	require.Equal(t, ".#", g.String())
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testBitmap()))

	g, err := grid.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, ".#.\n..#", g.String())

	_, err = grid.Decode(strings.NewReader("not an image"))
	require.ErrorIs(t, err, grid.ErrDecode)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := grid.Load("testdata/does-not-exist.png")
	require.ErrorIs(t, err, grid.ErrDecode)
}
