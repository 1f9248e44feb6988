package kbd

import "encoding/binary"

// Seq packs raw escape-sequence bytes into a Key the way ReadKey does:
// little-endian, first byte lowest, zero padded.
func Seq(bs ...byte) Key {
	var buf [seqMaxLen]byte
	copy(buf[:], bs)
	return Key(binary.LittleEndian.Uint64(buf[:]))
}

// Keys the linux console sends for the navigation block.
var (
	KeyUp    = Seq(escByte, '[', 'A')
	KeyDown  = Seq(escByte, '[', 'B')
	KeyRight = Seq(escByte, '[', 'C')
	KeyLeft  = Seq(escByte, '[', 'D')
	KeyHome  = Seq(escByte, '[', '1', '~')
	KeyIns   = Seq(escByte, '[', '2', '~')
	KeyDel   = Seq(escByte, '[', '3', '~')
	KeyEnd   = Seq(escByte, '[', '4', '~')
	KeyPgUp  = Seq(escByte, '[', '5', '~')
	KeyPgDn  = Seq(escByte, '[', '6', '~')
)

// fnKeys holds the sequences the linux console sends for F1..F12.
// There is no 22: the console jumps from 21 to 23.
var fnKeys = [...]Key{
	Seq(escByte, '[', '[', 'A'),
	Seq(escByte, '[', '[', 'B'),
	Seq(escByte, '[', '[', 'C'),
	Seq(escByte, '[', '[', 'D'),
	Seq(escByte, '[', '[', 'E'),
	Seq(escByte, '[', '1', '7', '~'),
	Seq(escByte, '[', '1', '8', '~'),
	Seq(escByte, '[', '1', '9', '~'),
	Seq(escByte, '[', '2', '0', '~'),
	Seq(escByte, '[', '2', '1', '~'),
	Seq(escByte, '[', '2', '3', '~'),
	Seq(escByte, '[', '2', '4', '~'),
}

// FnKeyNum maps a decoded key to its function key number 1..12, or 0
// when the key is not a function key.
func FnKeyNum(k Key) int {
	for i, fk := range fnKeys {
		if fk == k {
			return i + 1
		}
	}
	return 0
}

// FnKeySequences returns the F1..F12 sequence codes in order.
func FnKeySequences() []Key {
	seqs := make([]Key, len(fnKeys))
	copy(seqs, fnKeys[:])
	return seqs
}
