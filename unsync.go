package id3v2

import "io"

// UnsyncReader removes ID3 unsynchronisation codes from an underlying
// byte stream: wherever the source emits the pair 0xFF 0x00, the 0x00
// is elided from the output. State carries across Read calls, so the
// pair is still caught even if it straddles two calls.
//
// Grounded on the dhowden-tag unsynchroniser (other_examples), but
// generalized to fill as much of the caller's buffer as the
// underlying reader makes available in one pass rather than reading a
// single byte at a time.
type UnsyncReader struct {
	r      io.Reader
	lastFF bool
	raw    []byte
}

// NewUnsyncReader wraps r, undoing its ID3 unsynchronisation scheme.
func NewUnsyncReader(r io.Reader) *UnsyncReader {
	return &UnsyncReader{r: r}
}

func (u *UnsyncReader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	if cap(u.raw) < len(p) {
		u.raw = make([]byte, len(p))
	}
	raw := u.raw[:len(p)-0] // reuse backing array at full request size

	for n < len(p) {
		rn, rerr := u.r.Read(raw[:len(p)-n])
		for i := 0; i < rn; i++ {
			b := raw[i]
			if u.lastFF && b == 0x00 {
				u.lastFF = false
				continue
			}
			p[n] = b
			n++
			u.lastFF = b == 0xFF
		}
		if rerr != nil {
			return n, rerr
		}
		if rn == 0 {
			break
		}
	}
	return n, nil
}
