package kbd_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roman65536/tfblib/internal/consts"
	"github.com/roman65536/tfblib/kbd"
)

func decode(t *testing.T, input []byte) (kbd.Key, error) {
	t.Helper()
	return kbd.NewDecoder(bytes.NewReader(input)).ReadKey()
}

func TestReadKeyPlainByte(t *testing.T) {
	k, err := decode(t, []byte{'A'})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, kbd.Key(65), k)
	assert.Equal(t, byte('A'), k.Byte())
	assert.False(t, k.IsEscape())
}

func TestReadKeyArrow(t *testing.T) {
	k, err := decode(t, []byte{0x1B, '[', 'A'})
	if err != nil {
		t.Fatal(err)
	}
	// three little-endian packed bytes, five zero bytes
	assert.Equal(t, kbd.Key(0x1B|uint64('[')<<8|uint64('A')<<16), k)
	assert.Equal(t, kbd.KeyUp, k)
	assert.True(t, k.IsEscape())
	assert.Equal(t, byte(0), k.Byte())
}

func TestReadKeyFnKeySequences(t *testing.T) {
	inputs := [][]byte{
		{0x1B, '[', '[', 'A'},
		{0x1B, '[', '1', '7', '~'},
		{0x1B, '[', '2', '4', '~'},
	}
	wantNums := []int{1, 6, 12}
	for i, input := range inputs {
		k, err := decode(t, input)
		if err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		assert.Equal(t, wantNums[i], kbd.FnKeyNum(k), "%q", input)
	}
}

func TestReadKeyNonBracketEscape(t *testing.T) {
	k, err := decode(t, []byte{0x1B, 'X'})
	assert.ErrorIs(t, err, kbd.ErrUnknownSequence)
	assert.True(t, k.Zero())
}

func TestReadKeyEightByteSequence(t *testing.T) {
	// a sequence whose final byte lands exactly on the eighth slot
	input := []byte{0x1B, '[', '1', ';', '5', ';', '7', 'R'}
	k, err := decode(t, input)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, kbd.Seq(input...), k)
}

func TestReadKeySequenceOverflow(t *testing.T) {
	d := kbd.NewDecoder(bytes.NewReader([]byte{0x1B, '[', '1', '2', '3', '4', '5', '6', 'x'}))

	k, err := d.ReadKey()
	assert.ErrorIs(t, err, kbd.ErrSequenceOverflow)
	assert.True(t, k.Zero())

	// overflow consumes exactly eight bytes, the following key is intact
	k, err = d.ReadKey()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, kbd.Key('x'), k)
}

func TestReadKeyStreamClosed(t *testing.T) {
	for _, input := range [][]byte{
		{},
		{0x1B},
		{0x1B, '['},
		{0x1B, '[', '1'},
	} {
		k, err := decode(t, input)
		assert.ErrorIs(t, err, io.EOF, "%q", input)
		assert.True(t, k.Zero())
	}
}

func TestReadKeySequential(t *testing.T) {
	d := kbd.NewDecoder(bytes.NewReader([]byte{'a', 0x1B, '[', 'B', 'q'}))

	k, err := d.ReadKey()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, kbd.Key('a'), k)

	k, err = d.ReadKey()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, kbd.KeyDown, k)

	k, err = d.ReadKey()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, kbd.Key('q'), k)

	_, err = d.ReadKey()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadKeyNilDecoder(t *testing.T) {
	var d *kbd.Decoder
	_, err := d.ReadKey()
	assert.ErrorIs(t, err, consts.ErrNilReceiver)
}
