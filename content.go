package id3v2

// Content is the typed, decoded payload of a frame. Each frame kind in
// frames_*.go implements this with its own concrete record type
// (TextContent, CommentContent, AttachedPictureContent, ...);
// UnknownContent carries the raw bytes of any frame id this package
// has no specific decoder for.
//
// Grounded on the Content sum type implied by
// original_source/crates/parser/src/content/content.rs (filtered to
// imports only, but its module list in content/frames/*.rs fixes the
// variant set).
type Content interface {
	// frameContent is unexported so Content can only be implemented by
	// types in this package.
	frameContent()

	// IntoOwned returns a copy of this content with every byte slice it
	// holds copied out of the Tag's backing buffer, safe to keep after
	// the Tag is discarded. Implementations that hold no slices return
	// themselves unchanged.
	IntoOwned() Content
}

// Frame is one decoded frame: its identity, flags, any extras carried
// in the frame header, and typed content.
type Frame struct {
	ID      FrameID
	Version Version
	Flags   FrameFlags
	Extras  FrameExtras // group id / encryption method / decompressed size, per Flags
	Content Content

	// Raw is the frame's body, post-decompression if the frame was
	// compressed, but still possibly a view into the owning Tag's
	// buffer (see Content.IntoOwned).
	Raw []byte
}

// IntoOwned returns a copy of the frame with its Content and Raw bytes
// copied out of the owning Tag's buffer.
func (f Frame) IntoOwned() Frame {
	raw := make([]byte, len(f.Raw))
	copy(raw, f.Raw)
	f.Raw = raw
	if f.Content != nil {
		f.Content = f.Content.IntoOwned()
	}
	return f
}

// Frames is an ordered collection of decoded frames, as returned by
// Tag.ReadAllFrames.
type Frames []Frame

// Lookup returns the first frame with the given id, or nil if none is
// present.
func (fs Frames) Lookup(id FrameID) *Frame {
	for i := range fs {
		if fs[i].ID == id {
			return &fs[i]
		}
	}
	return nil
}

// All returns every frame with the given id, in file order.
func (fs Frames) All(id FrameID) []Frame {
	var out []Frame
	for _, f := range fs {
		if f.ID == id {
			out = append(out, f)
		}
	}
	return out
}

// IntoOwned returns a copy of fs with every frame's bytes copied out
// of the owning Tag's buffer. Safe to call on an already-owned Frames
// value; copying owned bytes again is a no-op cost, not a
// correctness issue.
func (fs Frames) IntoOwned() Frames {
	out := make(Frames, len(fs))
	for i, f := range fs {
		out[i] = f.IntoOwned()
	}
	return out
}

// Language is a 3-character ISO 639-2 language code, the fixed-width
// field several frames (COMM, USLT, SYLT) lead their text with.
//
// Modeled on the Language fixed-width validated string type that
// original_source/crates/parser/src/decode/macros.rs's
// impl_stack_string! macro generates; Go has no declarative macro
// system, so the equivalent here is a named string type with its own
// decode function.
type Language string

func decodeLanguage(b []byte) (Language, error) {
	if len(b) != 3 {
		return "", newError(KindInvalidFrameData)
	}
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return "", newError(KindInvalidFrameData)
		}
	}
	return Language(b), nil
}

// Date is an 8-digit YYYYMMDD date string, as embedded directly in
// OWNE's date of purchase and COMR's valid-until field. The v2.3
// TDAT/TYER/TIME frames are ordinary text frames and do not use it.
type Date string

func decodeDate(b []byte) (Date, error) {
	if len(b) != 8 {
		return "", newError(KindInvalidFrameData)
	}
	for _, c := range b {
		if c < '0' || c > '9' {
			return "", newError(KindInvalidFrameData)
		}
	}
	return Date(b), nil
}

// TimestampFormat is the one-byte format field in ETCO, SYLT, SYTC and
// similar timing frames.
type TimestampFormat uint8

const (
	TimestampMPEGFrames   TimestampFormat = 0x01
	TimestampMilliseconds TimestampFormat = 0x02
)

func (f TimestampFormat) Valid() bool {
	return f == TimestampMPEGFrames || f == TimestampMilliseconds
}

// PictureType is APIC's picture-type enumeration byte.
type PictureType uint8

const (
	PictureOther             PictureType = 0x00
	PictureFileIcon          PictureType = 0x01
	PictureOtherFileIcon     PictureType = 0x02
	PictureCoverFront        PictureType = 0x03
	PictureCoverBack         PictureType = 0x04
	PictureLeafletPage       PictureType = 0x05
	PictureMedia             PictureType = 0x06
	PictureLeadArtist        PictureType = 0x07
	PictureArtist            PictureType = 0x08
	PictureConductor         PictureType = 0x09
	PictureBand              PictureType = 0x0a
	PictureComposer          PictureType = 0x0b
	PictureLyricist          PictureType = 0x0c
	PictureRecordingLocation PictureType = 0x0d
	PictureDuringRecording   PictureType = 0x0e
	PictureDuringPerformance PictureType = 0x0f
	PictureVideoCapture      PictureType = 0x10
	PictureFish              PictureType = 0x11
	PictureIllustration      PictureType = 0x12
	PictureBandLogo          PictureType = 0x13
	PicturePublisherLogo     PictureType = 0x14
)

func (p PictureType) Valid() bool {
	return p <= PicturePublisherLogo
}
