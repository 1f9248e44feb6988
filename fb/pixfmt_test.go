package fb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roman65536/tfblib/fb"
	"github.com/roman65536/tfblib/internal/fbdev"
)

func TestResolveFormatMasks(t *testing.T) {
	// the common xRGB little-endian layout
	format, err := fb.ResolveFormat(
		fbdev.BitField{Offset: 16, Length: 8},
		fbdev.BitField{Offset: 8, Length: 8},
		fbdev.BitField{Offset: 0, Length: 8},
	)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, uint32(0x00FF0000), format.R.Mask)
	assert.Equal(t, uint32(0x0000FF00), format.G.Mask)
	assert.Equal(t, uint32(0x000000FF), format.B.Mask)
	assert.Equal(t, uint32(16), format.R.Offset)
	assert.Equal(t, uint32(8), format.R.Width)
}

func TestResolveFormatNarrowChannels(t *testing.T) {
	format, err := fb.ResolveFormat(
		fbdev.BitField{Offset: 11, Length: 5},
		fbdev.BitField{Offset: 5, Length: 6},
		fbdev.BitField{Offset: 0, Length: 5},
	)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, uint32(0xF800), format.R.Mask)
	assert.Equal(t, uint32(0x07E0), format.G.Mask)
	assert.Equal(t, uint32(0x001F), format.B.Mask)
}

func TestResolveFormatRejectsMSBFirst(t *testing.T) {
	lsb := fbdev.BitField{Offset: 0, Length: 8}
	msb := fbdev.BitField{Offset: 8, Length: 8, MSBRight: 1}

	for _, channels := range [][3]fbdev.BitField{
		{msb, lsb, lsb},
		{lsb, msb, lsb},
		{lsb, lsb, msb},
	} {
		_, err := fb.ResolveFormat(channels[0], channels[1], channels[2])
		assert.ErrorIs(t, err, fb.ErrPixelFormat)
	}
}

func TestPackUnpack(t *testing.T) {
	format, err := fb.ResolveFormat(
		fbdev.BitField{Offset: 16, Length: 8},
		fbdev.BitField{Offset: 8, Length: 8},
		fbdev.BitField{Offset: 0, Length: 8},
	)
	if err != nil {
		t.Fatal(err)
	}

	v := format.Pack(0x12, 0x34, 0x56)
	assert.Equal(t, uint32(0x00123456), v)

	r, g, b := format.Unpack(v)
	assert.Equal(t, uint8(0x12), r)
	assert.Equal(t, uint8(0x34), g)
	assert.Equal(t, uint8(0x56), b)
}
