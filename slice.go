package id3v2

import "bytes"

// Slice is a zero-copy, read-only view over a byte buffer. All of the
// frame and content decoders operate on one of these rather than on
// []byte directly so that "how many bytes are left" and "cut the next
// N bytes off the front" read the same way throughout the decode
// layer.
type Slice struct {
	b []byte
}

// NewSlice wraps b without copying it.
func NewSlice(b []byte) Slice { return Slice{b: b} }

// Len returns the number of bytes remaining in the view.
func (s Slice) Len() int { return len(s.b) }

// IsEmpty reports whether the view has no bytes left.
func (s Slice) IsEmpty() bool { return len(s.b) == 0 }

// Bytes returns the view's underlying bytes. The caller must not
// retain or mutate them past the lifetime of the Tag they came from
// without first copying (see IntoOwned).
func (s Slice) Bytes() []byte { return s.b }

// Take splits off the first n bytes as their own view, returning the
// remainder as a second view. It errors with KindIO if n exceeds the
// view's length.
func (s Slice) Take(n int) (head, rest Slice, err error) {
	if n < 0 || n > len(s.b) {
		return Slice{}, s, newError(KindIO)
	}
	return Slice{s.b[:n]}, Slice{s.b[n:]}, nil
}

// Skip drops the first n bytes, returning the remainder. It errors
// with KindIO if n exceeds the view's length.
func (s Slice) Skip(n int) (Slice, error) {
	if n < 0 || n > len(s.b) {
		return Slice{}, newError(KindIO)
	}
	return Slice{s.b[n:]}, nil
}

// View returns the first n bytes without consuming them from s. It
// errors with KindIO if n exceeds the view's length.
func (s Slice) View(n int) (Slice, error) {
	if n < 0 || n > len(s.b) {
		return Slice{}, newError(KindIO)
	}
	return Slice{s.b[:n]}, nil
}

// UntilNUL splits the view at the first 0x00 byte, returning the bytes
// before it and the remainder advanced past the terminator. If no NUL
// is present, the whole view is returned as the head and rest is
// empty.
func (s Slice) UntilNUL() (head, rest Slice) {
	i := bytes.IndexByte(s.b, 0x00)
	if i < 0 {
		return s, Slice{}
	}
	return Slice{s.b[:i]}, Slice{s.b[i+1:]}
}

// UntilNULPair splits the view at the first 0x00 0x00 pair falling on
// an even byte offset (a UTF-16 code-unit boundary), returning the
// bytes before it and the remainder advanced past the terminator. If
// no such pair is present, the whole view is returned as the head and
// rest is empty.
func (s Slice) UntilNULPair() (head, rest Slice) {
	for i := 0; i+1 < len(s.b); i += 2 {
		if s.b[i] == 0x00 && s.b[i+1] == 0x00 {
			return Slice{s.b[:i]}, Slice{s.b[i+2:]}
		}
	}
	return s, Slice{}
}
