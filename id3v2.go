// Package id3v2 implements a reader for ID3v2 tags, the length-prefixed
// metadata envelope found at the head of MP3 and similar audio files.
//
// Versions 2.2, 2.3 and 2.4 of the format are supported. Each tag is a
// sequence of typed frames (title, artist, attached picture, lyrics,
// chapters, ...), each frame using a version-specific binary layout
// with its own text encoding, and optionally compressed, encrypted or
// unsynchronised.
//
// This package does not write tags back out, does not decode ID3v1 or
// Lyrics3, and does not decode audio.
package id3v2

import (
	"io"
	"os"
)

// Version is the version of an ID3 tag.
//
// Only Version2_2, Version2_3 and Version2_4 can be decoded by this
// package; Version1_1 and Version1_2 exist so that callers working
// with a mix of ID3v1 and ID3v2 tags can reject the former cleanly
// through the same type.
type Version uint8

const (
	VersionUnknown Version = iota
	Version1_1
	Version1_2
	Version2_2
	Version2_3
	Version2_4
)

func (v Version) String() string {
	switch v {
	case Version1_1:
		return "id3v1.1"
	case Version1_2:
		return "id3v1.2"
	case Version2_2:
		return "id3v2.2"
	case Version2_3:
		return "id3v2.3"
	case Version2_4:
		return "id3v2.4"
	default:
		return "id3(unknown)"
	}
}

// Decodable reports whether tags of this version can be parsed by this
// package.
func (v Version) Decodable() bool {
	switch v {
	case Version2_2, Version2_3, Version2_4:
		return true
	default:
		return false
	}
}

func versionFromMajor(major byte) (Version, error) {
	switch major {
	case 2:
		return Version2_2, nil
	case 3:
		return Version2_3, nil
	case 4:
		return Version2_4, nil
	default:
		return VersionUnknown, newFieldError(KindInvalidField, FieldVersion)
	}
}

// Tag is a fully decoded ID3v2 tag: its header plus the raw, still
// owned, frame body bytes backing every frame yielded by Frames.
//
// A Tag slurps its entire body into one owned buffer up front; every
// Frame and Content value returned from it borrows from that buffer
// for as long as the Tag (or a promoted copy via IntoOwned) is kept
// alive.
type Tag struct {
	Header Header

	// Decompressor is used to inflate any frame marked compressed.
	// When nil, decoding a compressed frame fails with
	// KindInvalidFrameData instead of silently skipping it.
	Decompressor Decompressor

	body []byte // owned; everything below is a view into this
}

// ReadFrom decodes a single ID3v2 tag from r, reading only as many
// bytes as the header reports. It implements io.ReaderFrom.
func (t *Tag) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}

	h, err := readHeader(cr)
	if err != nil {
		return cr.n, err
	}
	t.Header = h

	bodySize := h.bodySize()
	t.body = make([]byte, bodySize)
	if _, err := io.ReadFull(cr, t.body); err != nil {
		return cr.n, &Error{Kind: KindIO, Cause: err}
	}

	if h.Flags&HeaderFlagUnsynchronisation != 0 {
		un := NewUnsyncReader(&sliceReader{b: t.body})
		out, err := io.ReadAll(un)
		if err != nil {
			return cr.n, &Error{Kind: KindIO, Cause: err}
		}
		t.body = out
	}

	if h.Ext != nil && h.Ext.CRCPresent {
		if err := verifyCRC(h.Ext.CRC, t.body); err != nil {
			return cr.n, err
		}
	}

	return cr.n, nil
}

// Decode reads a single ID3v2 tag from r.
func Decode(r io.Reader) (*Tag, error) {
	var t Tag
	if _, err := t.ReadFrom(r); err != nil {
		return nil, err
	}
	return &t, nil
}

// Open opens the file at path and decodes a single ID3v2 tag from its
// head. This is the file-open convenience mentioned as an external
// collaborator in scope notes; it performs no parsing beyond Decode.
func Open(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Frames returns an iterator over the tag's frames in file order.
func (t *Tag) Frames() *FrameIter {
	return newFrameIter(t.Header.Version, t.body).WithDecompressor(t.Decompressor)
}

// ReadAllFrames decodes every frame in the tag eagerly and returns them
// as a Frames slice, stopping at the first frame-iteration error (but
// keeping every frame already yielded).
func (t *Tag) ReadAllFrames() (Frames, error) {
	var frames Frames

	it := t.Frames()
	for it.Next() {
		frames = append(frames, it.Frame())
	}

	return frames, it.Err()
}

type countingReader struct {
	r io.Reader
	n int64
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	r.n += int64(n)
	return n, err
}

// sliceReader adapts a []byte to io.Reader without copying.
type sliceReader struct {
	b []byte
	i int
}

func (r *sliceReader) Read(p []byte) (int, error) {
	if r.i >= len(r.b) {
		return 0, io.EOF
	}
	n := copy(p, r.b[r.i:])
	r.i += n
	return n, nil
}

// synchsafe reconstructs a big-endian integer from the low 7 bits of
// each byte in b, most-significant byte first. Each byte's top bit is
// required to be zero by the producer; this is not validated here (a
// malformed producer yields a truncated value, matching the format's
// documented tolerance for slightly malformed tags). Callers that need
// to reject malformed input should check the source bytes themselves.
func synchsafe(b []byte) uint32 {
	var n uint32
	for _, c := range b {
		n = n<<7 | uint32(c&0x7f)
	}
	return n
}

// synchsafe64 is synchsafe for inputs wider than 32 bits (the 35-bit
// CRC field in the v2.4 extended header).
func synchsafe64(b []byte) uint64 {
	var n uint64
	for _, c := range b {
		n = n<<7 | uint64(c&0x7f)
	}
	return n
}

// encodeSynchsafe28 is the inverse of synchsafe for a 28-bit value,
// used only by tests to exercise the round-trip invariant.
func encodeSynchsafe28(n uint32) [4]byte {
	return [4]byte{
		byte((n >> 21) & 0x7f),
		byte((n >> 14) & 0x7f),
		byte((n >> 7) & 0x7f),
		byte(n & 0x7f),
	}
}

// encodeSynchsafe35 is the inverse of synchsafe64 for a 35-bit value.
func encodeSynchsafe35(n uint64) [5]byte {
	return [5]byte{
		byte((n >> 28) & 0x7f),
		byte((n >> 21) & 0x7f),
		byte((n >> 14) & 0x7f),
		byte((n >> 7) & 0x7f),
		byte(n & 0x7f),
	}
}

// u24 reads a 24-bit big-endian unsigned integer from the first three
// bytes of b.
func u24(b []byte) uint32 {
	_ = b[2]
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}
