package id3v2

// FrameIter walks the frames of a tag's body in file order, stopping
// at exhaustion, a zero/padding frame id, or the first decode error.
//
// Grounded on the teacher's frame loop inside Scan (split out here
// into its own iterator type) and the shape of
// original_source/crates/parser/src/id3v2/iter.rs.
type FrameIter struct {
	version      Version
	body         []byte
	pos          int
	decompressor Decompressor

	frame Frame
	err   error
	done  bool
}

func newFrameIter(version Version, body []byte) *FrameIter {
	return &FrameIter{version: version, body: body}
}

// WithDecompressor sets the Decompressor used for frames whose
// Compression flag is set, and returns the iterator for chaining.
func (it *FrameIter) WithDecompressor(d Decompressor) *FrameIter {
	it.decompressor = d
	return it
}

func (it *FrameIter) headerWidth() int {
	if it.version == Version2_2 {
		return 6
	}
	return 10
}

// Next advances to the next frame, reporting whether one was
// produced. Once it returns false, Err reports whether that was due
// to a real error or ordinary exhaustion/padding.
func (it *FrameIter) Next() bool {
	if it.done {
		return false
	}

	hw := it.headerWidth()
	remaining := it.body[it.pos:]

	if len(remaining) < hw {
		it.done = true
		return false
	}

	if isAllZero(remaining[:hw]) {
		it.done = true
		return false
	}

	fh, n, err := readFrameHeader(it.version, remaining)
	if err != nil {
		it.done = true
		it.err = err
		return false
	}

	bodyStart := it.pos + n
	bodyEnd := bodyStart + int(fh.Size)
	if bodyEnd > len(it.body) {
		// The frame header parsed cleanly but claims more body than the
		// tag has left: a truncated/corrupt frame, not a short read, so
		// this is a content error rather than an IO one.
		it.done = true
		it.err = newError(KindInvalidFrameData)
		return false
	}
	frameBody := it.body[bodyStart:bodyEnd]
	it.pos = bodyEnd

	if fh.Flags.Unsynchronisation {
		// v2.4 per-frame unsynchronisation is not undone here; the frame
		// is rejected rather than decoded from still-escaped bytes.
		it.done = true
		it.err = newError(KindInvalidFrameData)
		return false
	}

	raw := frameBody
	if fh.Flags.Compression {
		if it.decompressor == nil {
			it.done = true
			it.err = errNoDecompressor
			return false
		}
		// The decompressed-size prefix is no longer part of frameBody:
		// readFrameHeader23/24 already parsed it out of the extras block
		// ahead of the header's declared size (see frameheader.go), in
		// the correct per-version byte order alongside any
		// encryption-method/group-id extras that precede it on the
		// wire. frameBody here is exactly the compressed payload.
		out, err := it.decompressor.Decompress(raw, fh.Extras.DecompressedSize)
		if err != nil {
			it.done = true
			it.err = err
			return false
		}
		raw = out
	}

	if fh.Flags.Encryption {
		it.frame = Frame{ID: fh.ID, Version: it.version, Flags: fh.Flags, Extras: fh.Extras, Raw: raw, Content: UnknownContent{Data: raw}}
		return true
	}

	content, err := decodeFrameContent(it.version, fh.ID, raw)
	if err != nil {
		it.done = true
		it.err = err
		return false
	}

	it.frame = Frame{
		ID:      fh.ID,
		Version: it.version,
		Flags:   fh.Flags,
		Extras:  fh.Extras,
		Raw:     raw,
		Content: content,
	}
	return true
}

// Frame returns the frame produced by the most recent call to Next
// that returned true.
func (it *FrameIter) Frame() Frame { return it.frame }

// Err returns the error that stopped iteration, or nil if iteration
// stopped because the frames were exhausted or padding was reached.
func (it *FrameIter) Err() error { return it.err }

func isAllZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// decodeEmbeddedFrames decodes a run of frames from b using version,
// for frame shapes that nest other frames inside themselves (CHAP's
// optional sub-frames, CTOC's child/sub-frames). Sub-frames are never
// compressed or encrypted independently of their parent, so no
// Decompressor is threaded through here.
func decodeEmbeddedFrames(version Version, b []byte) (Frames, error) {
	it := newFrameIter(version, b)
	var frames Frames
	for it.Next() {
		frames = append(frames, it.Frame())
	}
	return frames, it.Err()
}
