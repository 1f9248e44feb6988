package kbd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roman65536/tfblib/kbd"
)

func TestSeqPacking(t *testing.T) {
	assert.Equal(t, kbd.Key(0x415B1B), kbd.Seq(0x1B, '[', 'A'))
	assert.Equal(t, kbd.Key(0), kbd.Seq())
}

func TestFnKeyNumCoversTable(t *testing.T) {
	seqs := kbd.FnKeySequences()
	if len(seqs) != 12 {
		t.Fatalf("table has %d entries, want 12", len(seqs))
	}
	for i, k := range seqs {
		assert.Equal(t, i+1, kbd.FnKeyNum(k))
	}
}

func TestFnKeyNumUnknown(t *testing.T) {
	assert.Equal(t, 0, kbd.FnKeyNum(kbd.Key(0)))
	assert.Equal(t, 0, kbd.FnKeyNum(kbd.Key('x')))
	assert.Equal(t, 0, kbd.FnKeyNum(kbd.KeyUp))
	// F10's neighbor that the console never sends
	assert.Equal(t, 0, kbd.FnKeyNum(kbd.Seq(0x1B, '[', '2', '2', '~')))
}

func TestFnKeySequencesIsACopy(t *testing.T) {
	seqs := kbd.FnKeySequences()
	f1 := seqs[0]
	seqs[0] = 0
	assert.Equal(t, f1, kbd.FnKeySequences()[0])
}
