package id3v2

// decoder is a cursor over a single frame's body bytes. It is the
// common tool every frames_*.go content decoder uses to pull fields
// off the front of the body in order, tracking the enclosing tag's
// version (several frame shapes differ between 2.2 and 2.3+) and the
// "current" text encoding set by a frame's leading encoding byte.
//
// Grounded on the Cursor shape implied by
// original_source/crates/parser/src/decode/decoder.rs and the
// buffered-cursor-reuse pattern in oshokin-id3v2's parse.go.
type decoder struct {
	s       Slice
	version Version
	enc     Encoding
}

func newDecoder(version Version, b []byte) *decoder {
	return &decoder{s: NewSlice(b), version: version}
}

// remaining reports how many bytes are left unconsumed.
func (d *decoder) remaining() int { return d.s.Len() }

// isEmpty reports whether the cursor has consumed the whole body.
func (d *decoder) isEmpty() bool { return d.s.IsEmpty() }

// byte consumes and returns the next single byte.
func (d *decoder) byte() (byte, error) {
	head, rest, err := d.s.Take(1)
	if err != nil {
		return 0, err
	}
	d.s = rest
	return head.Bytes()[0], nil
}

// take consumes and returns the next n bytes.
func (d *decoder) take(n int) ([]byte, error) {
	head, rest, err := d.s.Take(n)
	if err != nil {
		return nil, err
	}
	d.s = rest
	return head.Bytes(), nil
}

// rest consumes and returns every remaining byte.
func (d *decoder) rest() []byte {
	b := d.s.Bytes()
	d.s = Slice{}
	return b
}

// u24 consumes a 3-byte big-endian unsigned integer.
func (d *decoder) u24() (uint32, error) {
	b, err := d.take(3)
	if err != nil {
		return 0, err
	}
	return u24(b), nil
}

// u32 consumes a 4-byte big-endian unsigned integer.
func (d *decoder) u32() (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// varint consumes every remaining byte as a big-endian unsigned
// integer, as PCNT/POPM's play-counter field does (it grows past 32
// bits rather than wrapping, per the format's own note).
func (d *decoder) varint() uint64 {
	var n uint64
	for _, c := range d.rest() {
		n = n<<8 | uint64(c)
	}
	return n
}

// encodingByte consumes the leading text-encoding byte most
// text-bearing frames start with and remembers it as the decoder's
// current encoding for subsequent string reads.
func (d *decoder) encodingByte() (Encoding, error) {
	b, err := d.byte()
	if err != nil {
		return 0, err
	}
	enc := Encoding(b)
	if !enc.Valid() {
		return 0, newError(KindInvalidFrameData)
	}
	d.enc = enc
	return enc, nil
}

// terminatedString consumes a string in the decoder's current
// encoding up to (and including) its NUL terminator. If no terminator
// is found, every remaining byte is consumed instead: several
// encoders omit the terminator on a frame's final text field.
func (d *decoder) terminatedString() (string, error) {
	var head, rest Slice
	if d.enc.TerminatorWidth() == 2 {
		head, rest = d.s.UntilNULPair()
	} else {
		head, rest = d.s.UntilNUL()
	}
	d.s = rest
	return decodeText(d.enc, head.Bytes())
}

// fullString decodes every remaining byte as a string in the
// decoder's current encoding, with no terminator search. This is used
// for a frame's final text field, which runs to the end of the body.
func (d *decoder) fullString() (string, error) {
	return decodeText(d.enc, d.rest())
}

// latin1Terminated consumes a NUL-terminated ISO-8859-1 string
// regardless of the decoder's current encoding state. Fields such as
// MIME types, owner identifiers, element ids and prices are always
// Latin-1 even inside a UTF-16 frame.
func (d *decoder) latin1Terminated() (string, error) {
	head, rest := d.s.UntilNUL()
	d.s = rest
	return decodeLatin1(head.Bytes())
}

// fixedLatin1 consumes exactly n bytes and decodes them as
// ISO-8859-1, with no terminator, for fixed-width fields such as
// v2.2 PIC's 3-character image format.
func (d *decoder) fixedLatin1(n int) (string, error) {
	b, err := d.take(n)
	if err != nil {
		return "", err
	}
	return decodeLatin1(b)
}
