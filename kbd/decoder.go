// Package kbd reads keyboard input from a terminal: a controller for
// entering and leaving raw mode, and a decoder turning the raw byte
// stream into fixed-width key codes.
package kbd

import (
	"encoding/binary"
	"io"

	"github.com/roman65536/tfblib/internal/consts"
	"github.com/roman65536/tfblib/internal/errors"
)

// Key is a decoded keypress. A plain byte is its zero-extended value; an
// escape sequence is up to eight raw bytes packed little-endian, first
// byte lowest. The zero Key is never returned together with a nil error.
type Key uint64

// Zero reports whether k is the "no key" value.
func (k Key) Zero() bool { return k == 0 }

// IsEscape reports whether k encodes an escape sequence.
func (k Key) IsEscape() bool { return byte(k) == escByte && k > 0xFF }

// Byte returns the character of a plain single-byte key, 0 for escape
// sequences.
func (k Key) Byte() byte {
	if k > 0xFF {
		return 0
	}
	return byte(k)
}

const (
	escByte   = 0x1B
	seqMaxLen = 8
)

// Failure variants, matched with errors.Is.
var (
	ErrWrongMode        = consts.ErrWrongMode
	ErrModeQuery        = consts.ErrModeQuery
	ErrModeSet          = consts.ErrModeSet
	ErrUnknownSequence  = consts.ErrUnknownSequence
	ErrSequenceOverflow = consts.ErrSequenceOverflow
)

// Decoder assembles keypresses from an input byte stream, typically a
// terminal in raw mode. Reads block until a byte arrives.
type Decoder struct {
	r io.Reader
}

func NewDecoder(r io.Reader) *Decoder { return &Decoder{r: r} }

// ReadKey decodes one keypress.
//
// A byte other than escape is the key itself. On escape, bytes are
// assembled until a final byte in 0x40..0x7E arrives per ANSI
// convention; the packed sequence is the key. Failure variants:
// ErrUnknownSequence for an escape not followed by '[' (the second
// byte is consumed, not replayed), ErrSequenceOverflow when no final
// byte arrived within eight bytes, and the underlying read error,
// io.EOF included, when the stream fails or closes.
func (d *Decoder) ReadKey() (Key, error) {
	if d == nil || d.r == nil {
		return 0, errors.New(consts.ErrNilReceiver)
	}
	b, err := d.readByte()
	if err != nil {
		return 0, errors.New(err)
	}
	if b != escByte {
		return Key(b), nil
	}
	return d.readSequence()
}

func (d *Decoder) readSequence() (Key, error) {
	var buf [seqMaxLen]byte
	buf[0] = escByte
	n := 1

	b, err := d.readByte()
	if err != nil {
		return 0, errors.New(err)
	}
	if b != '[' {
		return 0, errors.Tag(consts.ErrUnknownSequence,
			errors.Errorf(`escape followed by %#x, not '['`, b))
	}
	buf[n] = b
	n++

	for {
		b, err := d.readByte()
		if err != nil {
			return 0, errors.New(err)
		}
		buf[n] = b
		n++
		if isFinalByte(b) {
			break
		}
		// checked after the final byte test: a sequence may end exactly
		// on the eighth byte, and overflow must not eat a ninth
		if n == len(buf) {
			return 0, errors.New(consts.ErrSequenceOverflow)
		}
	}
	return Key(binary.LittleEndian.Uint64(buf[:])), nil
}

func (d *Decoder) readByte() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(d.r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// isFinalByte reports whether b terminates a control sequence per ANSI
// convention. '[' keeps linux console F1..F5 sequences going.
func isFinalByte(b byte) bool {
	return b >= 0x40 && b <= 0x7E && b != '['
}
