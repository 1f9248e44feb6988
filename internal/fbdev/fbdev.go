// Package fbdev exposes the Linux framebuffer device ABI: the fixed and
// variable screen info structures from <linux/fb.h>, the ioctls querying
// them, and the memory mapping of the device.
package fbdev

// BitField describes the placement of one color channel inside a pixel
// value. Offset counts from the least significant bit. MSBRight != 0
// means the bits are placed from the most significant bit instead.
type BitField struct {
	Offset   uint32
	Length   uint32
	MSBRight uint32
}

// FixScreenInfo mirrors struct fb_fix_screeninfo.
type FixScreenInfo struct {
	ID        [16]byte
	SMemStart uintptr
	SMemLen   uint32
	Type      uint32
	TypeAux   uint32
	Visual    uint32
	XPanStep  uint16
	YPanStep  uint16
	YWrapStep uint16
	// LineLength is the length of a scanline in bytes.
	LineLength   uint32
	MMIOStart    uintptr
	MMIOLen      uint32
	Accel        uint32
	Capabilities uint16
	_            [2]uint16
}

// VarScreenInfo mirrors struct fb_var_screeninfo.
type VarScreenInfo struct {
	XRes         uint32
	YRes         uint32
	XResVirtual  uint32
	YResVirtual  uint32
	XOffset      uint32
	YOffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	Red          BitField
	Green        BitField
	Blue         BitField
	Transp       BitField
	NonStd       uint32
	Activate     uint32
	Height       uint32
	Width        uint32
	AccelFlags   uint32
	PixClock     uint32
	LeftMargin   uint32
	RightMargin  uint32
	UpperMargin  uint32
	LowerMargin  uint32
	HSyncLen     uint32
	VSyncLen     uint32
	Sync         uint32
	VMode        uint32
	Rotate       uint32
	Colorspace   uint32
	_            [4]uint32
}

// <linux/fb.h> ioctls, 0x46 is 'F'.
const (
	FBIOGET_VSCREENINFO = 0x4600
	FBIOPUT_VSCREENINFO = 0x4601
	FBIOGET_FSCREENINFO = 0x4602
)
