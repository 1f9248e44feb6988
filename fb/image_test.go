package fb

import (
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testFormat() PixFmt {
	return PixFmt{
		R: Channel{Offset: 16, Width: 8, Mask: 0x00FF0000},
		G: Channel{Offset: 8, Width: 8, Mask: 0x0000FF00},
		B: Channel{Offset: 0, Width: 8, Mask: 0x000000FF},
	}
}

func TestImageSetAtRoundTrip(t *testing.T) {
	s := newTestSession(16, 8, 16*4, true)
	s.format = testFormat()
	img := s.Image()

	c := color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}
	img.Set(3, 2, c)
	assert.Equal(t, c, img.At(3, 2))
}

func TestImageIsWindowRelative(t *testing.T) {
	s := newTestSession(16, 8, 16*4, true)
	s.format = testFormat()
	if err := s.SetWindow(4, 2, 8, 4); err != nil {
		t.Fatal(err)
	}
	img := s.Image()
	assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())

	img.Set(0, 0, color.NRGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xFF})
	off := 2*s.stride + 4*4
	v := binary.LittleEndian.Uint32(s.shadow[off : off+4])
	assert.Equal(t, uint32(0x00AABBCC), v)
}

func TestImageDropsWritesOutsideWindow(t *testing.T) {
	s := newTestSession(16, 8, 16*4, true)
	s.format = testFormat()
	if err := s.SetWindow(4, 2, 8, 4); err != nil {
		t.Fatal(err)
	}
	img := s.Image()

	img.Set(-1, 0, color.White)
	img.Set(0, -1, color.White)
	img.Set(8, 0, color.White)
	img.Set(0, 4, color.White)
	for i, b := range s.shadow {
		if b != 0 {
			t.Fatalf("byte %d written by out-of-window Set", i)
		}
	}
	assert.Equal(t, color.NRGBA{}, img.At(8, 0))
}
