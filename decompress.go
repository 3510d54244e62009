package id3v2

import (
	"bytes"
	"compress/zlib"
	"io"
)

// Decompressor inflates a compressed frame's body back to its
// original size. A frame's Compression flag (v2.3) or
// Compression+DataLengthIndicator flags (v2.4) mark its body as
// needing this step before the type-specific content decoders run.
//
// Grounded on moshee-sound's direct compress/zlib use on a compressed
// frame body, generalized to an interface so a caller that never
// wants compressed frames doesn't have to carry the dependency.
type Decompressor interface {
	Decompress(compressed []byte, expectedSize uint32) ([]byte, error)
}

// ZlibDecompressor is the default Decompressor, backed by the
// standard library's zlib reader. ID3v2 has used zlib for frame
// compression since v2.3.
type ZlibDecompressor struct{}

func (ZlibDecompressor) Decompress(compressed []byte, expectedSize uint32) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, wrapError(KindInvalidFrameData, err, "zlib header")
	}
	defer zr.Close()

	out := make([]byte, 0, expectedSize)
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, zr); err != nil {
		return nil, wrapError(KindInvalidFrameData, err, "zlib inflate")
	}
	return buf.Bytes(), nil
}

// errNoDecompressor is returned when a frame is marked compressed but
// no Decompressor was wired in.
var errNoDecompressor = newError(KindInvalidFrameData)
