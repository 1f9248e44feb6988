package gfx_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"

	"github.com/roman65536/tfblib/gfx"
)

// inked reports how many pixels carry ink and their bounding box.
func inked(img *image.RGBA) (int, image.Rectangle) {
	n := 0
	var box image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				px := image.Rect(x, y, x+1, y+1)
				if n == 0 {
					box = px
				} else {
					box = box.Union(px)
				}
				n++
			}
		}
	}
	return n, box
}

func TestDrawString(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	gfx.DrawString(img, basicfont.Face7x13, gfx.White, 4, 2, "Hi")

	n, box := inked(img)
	assert.NotZero(t, n)
	// Two 7x13 glyph boxes with their top-left corner at (4, 2).
	assert.True(t, box.In(image.Rect(4, 2, 18, 15)), "ink at %v", box)
}

func TestDrawStringNoops(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	gfx.DrawString(nil, basicfont.Face7x13, gfx.White, 0, 0, "x")
	gfx.DrawString(img, nil, gfx.White, 0, 0, "x")
	gfx.DrawString(img, basicfont.Face7x13, gfx.White, 0, 0, "")

	n, _ := inked(img)
	assert.Zero(t, n)
}

func TestDrawStringRespectsBoundsOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 74, 52))
	gfx.DrawString(img, basicfont.Face7x13, gfx.White, 0, 0, "A")

	n, box := inked(img)
	assert.NotZero(t, n)
	assert.True(t, box.In(image.Rect(10, 20, 17, 33)), "ink at %v", box)
}

func TestCenterString(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 20))
	gfx.CenterString(img, basicfont.Face7x13, gfx.White, 3, "W")

	n, box := inked(img)
	assert.NotZero(t, n)
	// One 7-wide glyph centered in 100 columns starts at x = 46.
	assert.True(t, box.In(image.Rect(46, 3, 53, 16)), "ink at %v", box)
}
