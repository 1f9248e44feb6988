package main

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"os"

	"github.com/fogleman/gg"
	errorsGo "github.com/go-errors/errors"
	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/term"

	"github.com/roman65536/tfblib"
	"github.com/roman65536/tfblib/fb"
	"github.com/roman65536/tfblib/font"
	"github.com/roman65536/tfblib/gfx"
	"github.com/roman65536/tfblib/kbd"
)

var bars = []gfx.RGB{
	gfx.White, gfx.Yellow, gfx.Cyan, gfx.Green,
	gfx.Magenta, gfx.Red, gfx.Blue, gfx.Black,
}

func demo() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errorsGo.New(`standard input is not a terminal`)
	}

	var opts []fb.Option
	if len(fbDevice) > 0 {
		opts = append(opts, fb.SetDevice(fbDevice))
	}
	if len(ttyDevice) > 0 {
		opts = append(opts, fb.SetTerminal(ttyDevice))
	}
	if !noShadow {
		opts = append(opts, fb.ShadowBuffer)
	}
	if keepConsole {
		opts = append(opts, fb.KeepConsoleMode)
	}
	if verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, fb.SetSLogger(h, true))
	}

	goFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return errorsGo.New(err)
	}
	face := truetype.NewFace(goFont, &truetype.Options{Size: 16})
	defer face.Close()
	_, _ = font.RegisterBasic()
	if err := font.Register(`go-regular`, face); err == nil {
		_ = font.SetDefault(`go-regular`)
	}

	if err := tfblib.AcquireFB(opts...); err != nil {
		return err
	}
	defer func() { _ = tfblib.ReleaseFB() }()

	if err := tfblib.ClearScreen(gfx.GrayLevel(0x20)); err != nil {
		return err
	}
	if err := tfblib.SetCenterWindow(tfblib.ScreenWidth()*3/4, tfblib.ScreenHeight()*3/4); err != nil {
		return err
	}
	if err := drawCard(face); err != nil {
		return err
	}
	if err := tfblib.FlushWindow(); err != nil {
		return err
	}

	if err := tfblib.SetKbRawMode(); err != nil {
		return err
	}
	defer func() { _ = tfblib.RestoreKbMode() }()

	return keyLoop()
}

func drawCard(face xfont.Face) error {
	w, h := tfblib.WinWidth(), tfblib.WinHeight()

	if err := tfblib.ClearWin(gfx.GrayLevel(0x30)); err != nil {
		return err
	}
	if err := tfblib.DrawRect(0, 0, w, h, gfx.White); err != nil {
		return err
	}

	// classic color bars across the upper band
	barH := h * 2 / 5
	for i, c := range bars {
		x0 := 1 + (w-2)*i/len(bars)
		x1 := 1 + (w-2)*(i+1)/len(bars)
		if err := tfblib.FillRect(x0, 1, x1-x0, barH, c); err != nil {
			return err
		}
	}

	// gray ramp under the bars
	rampY := barH + 1
	rampH := h / 5
	for x := 1; x < w-1; x++ {
		shade := gfx.GrayLevel(uint8(255 * x / (w - 1)))
		if err := tfblib.DrawVLine(x, rampY, rampH, shade); err != nil {
			return err
		}
	}

	if err := tfblib.DrawLine(1, h-2, w-2, rampY+rampH, gfx.Yellow); err != nil {
		return err
	}

	s, err := tfblib.Session()
	if err != nil {
		return err
	}
	badge := renderBadge(face, fmt.Sprintf(`%dx%d`, tfblib.ScreenWidth(), tfblib.ScreenHeight()))
	bb := badge.Bounds()
	pos := image.Rect(w-bb.Dx()-8, h-bb.Dy()-8, w-8, h-8)
	draw.Draw(s.Image(), pos, badge, bb.Min, draw.Src)

	return tfblib.DrawCenterString(rampY+rampH+8, gfx.White, `press q to quit`)
}

// renderBadge composes the resolution badge offscreen.
func renderBadge(face xfont.Face, title string) image.Image {
	tw := len(title)*10 + 24
	c := gg.NewContext(tw, 32)
	c.SetRGB(0.07, 0.07, 0.1)
	c.Clear()
	c.SetRGB255(255, 196, 0)
	c.SetLineWidth(2)
	c.DrawRoundedRectangle(2, 2, float64(tw-4), 28, 6)
	c.Stroke()
	c.SetFontFace(face)
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(title, float64(tw)/2, 16, 0.5, 0.5)
	return c.Image()
}

func keyLoop() error {
	for {
		k, err := tfblib.ReadKeypress()
		if err != nil {
			// unknown or overlong sequences are worth reporting, not fatal
			if errorsGo.Is(err, kbd.ErrUnknownSequence) || errorsGo.Is(err, kbd.ErrSequenceOverflow) {
				if err := showKey(`?`); err != nil {
					return err
				}
				continue
			}
			return err
		}
		if isQuitKey(k) {
			return nil
		}
		if err := showKey(keyLabel(k)); err != nil {
			return err
		}
	}
}

// isQuitKey matches 'q' and ctrl-C, which arrives as a raw 0x03 byte
// since raw mode disables signal characters.
func isQuitKey(k kbd.Key) bool {
	b := k.Byte()
	return b == 'q' || b == 0x03
}

// showKey repaints the status strip at the top of the window.
func showKey(label string) error {
	w := tfblib.WinWidth()
	if err := tfblib.FillRect(1, 1, w-2, 20, gfx.Black); err != nil {
		return err
	}
	if err := tfblib.DrawString(8, 2, gfx.Green, `key: `+label); err != nil {
		return err
	}
	return tfblib.FlushRect(1, 1, w-2, 20)
}

func keyLabel(k kbd.Key) string {
	if n := tfblib.FnKeyNum(k); n > 0 {
		return fmt.Sprintf(`F%d`, n)
	}
	switch k {
	case kbd.KeyUp:
		return `up`
	case kbd.KeyDown:
		return `down`
	case kbd.KeyLeft:
		return `left`
	case kbd.KeyRight:
		return `right`
	case kbd.KeyHome:
		return `home`
	case kbd.KeyEnd:
		return `end`
	case kbd.KeyIns:
		return `insert`
	case kbd.KeyDel:
		return `delete`
	case kbd.KeyPgUp:
		return `page up`
	case kbd.KeyPgDn:
		return `page down`
	}
	if k.IsEscape() {
		return fmt.Sprintf(`seq %#x`, uint64(k))
	}
	if b := k.Byte(); b >= 0x20 && b < 0x7F {
		return string(rune(b))
	}
	return fmt.Sprintf(`%#x`, uint64(k))
}
