package fb

import (
	"github.com/roman65536/tfblib/internal/consts"
	"github.com/roman65536/tfblib/internal/errors"
	"github.com/roman65536/tfblib/internal/fbdev"
)

// Channel describes where one color component sits inside a 32-bit pixel
// value: bit offset from the least significant bit, bit width, and the
// derived mask ((1<<Width)-1)<<Offset.
type Channel struct {
	Offset uint32
	Width  uint32
	Mask   uint32
}

// PixFmt is the channel layout reported by the device. Immutable once
// resolved.
type PixFmt struct {
	R Channel
	G Channel
	B Channel
}

// ResolveFormat derives the pixel format from the device-reported channel
// layout. Layouts placing channel bits msb-first are rejected; the
// compositor and all pixel packing assume lsb-first placement.
func ResolveFormat(red, green, blue fbdev.BitField) (PixFmt, error) {
	r, err := resolveChannel(red)
	if err != nil {
		return PixFmt{}, err
	}
	g, err := resolveChannel(green)
	if err != nil {
		return PixFmt{}, err
	}
	b, err := resolveChannel(blue)
	if err != nil {
		return PixFmt{}, err
	}
	return PixFmt{R: r, G: g, B: b}, nil
}

func resolveChannel(b fbdev.BitField) (Channel, error) {
	if b.MSBRight != 0 {
		return Channel{}, errors.Tag(consts.ErrPixelFormat,
			errors.Errorf(`channel bits placed msb first (offset %d, length %d)`, b.Offset, b.Length))
	}
	return Channel{
		Offset: b.Offset,
		Width:  b.Length,
		Mask:   uint32((uint64(1)<<b.Length)-1) << b.Offset,
	}, nil
}

// Pack places 8-bit components into a pixel value. Channels narrower
// than 8 bits keep only the bits that fit their mask.
func (p PixFmt) Pack(r, g, b uint8) uint32 {
	return (uint32(r)<<p.R.Offset)&p.R.Mask |
		(uint32(g)<<p.G.Offset)&p.G.Mask |
		(uint32(b)<<p.B.Offset)&p.B.Mask
}

// Unpack extracts the 8-bit components of a pixel value.
func (p PixFmt) Unpack(v uint32) (r, g, b uint8) {
	return uint8((v & p.R.Mask) >> p.R.Offset),
		uint8((v & p.G.Mask) >> p.G.Offset),
		uint8((v & p.B.Mask) >> p.B.Offset)
}
