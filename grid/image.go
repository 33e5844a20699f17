package grid

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder for Load
	_ "image/jpeg" // register JPEG decoder for Load
	_ "image/png"  // register PNG decoder for Load
	"io"
	"os"
)

// ImageOption configures how bitmap pixels map to cells.
type ImageOption func(*imageOptions)

type imageOptions struct {
	blocked func(color.Color) bool
}

// RedIsZero is the default pixel rule: a pixel is blocked when its red
// channel is exactly 0, so black walls on a white map become obstacles.
func RedIsZero(c color.Color) bool {
	r, _, _, _ := c.RGBA()
	return r == 0
}

// WithBlockedFunc overrides the pixel rule. A nil fn keeps the default.
func WithBlockedFunc(fn func(color.Color) bool) ImageOption {
	return func(o *imageOptions) {
		if fn != nil {
			o.blocked = fn
		}
	}
}

// FromImage converts img into a Grid, one cell per pixel, relative to the
// image bounds (the top-left pixel of img.Bounds() becomes cell (0,0)).
// Complexity: O(W×H).
func FromImage(img image.Image, opts ...ImageOption) *Grid {
	o := imageOptions{blocked: RedIsZero}
	for _, opt := range opts {
		opt(&o)
	}

	b := img.Bounds()
	g := New(b.Dx(), b.Dy())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.blocked[g.index(x, y)] = o.blocked(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return g
}

// Decode reads a PNG, GIF or JPEG bitmap from r and converts it with FromImage.
func Decode(r io.Reader, opts ...ImageOption) (*Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return FromImage(img, opts...), nil
}

// Load opens the bitmap at path and decodes it into a Grid.
func Load(path string, opts ...ImageOption) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()

	return Decode(f, opts...)
}
