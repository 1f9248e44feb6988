package tfblib_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roman65536/tfblib"
	"github.com/roman65536/tfblib/fb"
	"github.com/roman65536/tfblib/font"
	"github.com/roman65536/tfblib/gfx"
	"github.com/roman65536/tfblib/kbd"
)

func TestSessionRequiresAcquire(t *testing.T) {
	_, err := tfblib.Session()
	assert.ErrorIs(t, err, fb.ErrNotAcquired)
}

func TestAcquireFBMissingDevice(t *testing.T) {
	err := tfblib.AcquireFB(fb.SetDevice(filepath.Join(t.TempDir(), `fb9`)))
	assert.ErrorIs(t, err, fb.ErrDeviceOpen)

	// the failed acquire must not leave a half-acquired session behind
	_, err = tfblib.Session()
	assert.ErrorIs(t, err, fb.ErrNotAcquired)
}

func TestReleaseFBWithoutSession(t *testing.T) {
	assert.NoError(t, tfblib.ReleaseFB())
}

func TestDimensionsWithoutSession(t *testing.T) {
	assert.Zero(t, tfblib.ScreenWidth())
	assert.Zero(t, tfblib.ScreenHeight())
	assert.Zero(t, tfblib.WinWidth())
	assert.Zero(t, tfblib.WinHeight())
}

func TestOperationsRequireSession(t *testing.T) {
	for name, err := range map[string]error{
		`SetWindow`:        tfblib.SetWindow(0, 0, 1, 1),
		`SetCenterWindow`:  tfblib.SetCenterWindow(1, 1),
		`FlushWindow`:      tfblib.FlushWindow(),
		`FlushRect`:        tfblib.FlushRect(0, 0, 1, 1),
		`ClearScreen`:      tfblib.ClearScreen(gfx.Black),
		`ClearWin`:         tfblib.ClearWin(gfx.Black),
		`DrawPixel`:        tfblib.DrawPixel(0, 0, gfx.White),
		`DrawHLine`:        tfblib.DrawHLine(0, 0, 1, gfx.White),
		`DrawVLine`:        tfblib.DrawVLine(0, 0, 1, gfx.White),
		`DrawLine`:         tfblib.DrawLine(0, 0, 1, 1, gfx.White),
		`DrawRect`:         tfblib.DrawRect(0, 0, 1, 1, gfx.White),
		`FillRect`:         tfblib.FillRect(0, 0, 1, 1, gfx.White),
		`DrawString`:       tfblib.DrawString(0, 0, gfx.White, `x`),
		`DrawCenterString`: tfblib.DrawCenterString(0, gfx.White, `x`),
	} {
		assert.ErrorIs(t, err, fb.ErrNotAcquired, name)
	}
}

func TestRestoreKbModeBeforeSet(t *testing.T) {
	assert.ErrorIs(t, tfblib.RestoreKbMode(), kbd.ErrWrongMode)
}

func TestFnKeyNumForwards(t *testing.T) {
	fn := kbd.FnKeySequences()
	assert.Equal(t, 1, tfblib.FnKeyNum(fn[0]))
	assert.Equal(t, 12, tfblib.FnKeyNum(fn[11]))
	assert.Equal(t, 0, tfblib.FnKeyNum(kbd.Key('q')))
}

func TestSetDefaultFontUnknown(t *testing.T) {
	err := tfblib.SetDefaultFont(`no-such-font`)
	assert.ErrorIs(t, err, font.ErrFontUnknown)
}
