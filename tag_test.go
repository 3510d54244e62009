package id3v2

import (
	"bytes"
	"testing"
)

// v2.2 tag with a single TAL text frame, ISO-8859-1 encoded "Hello".
func TestDecodeV22TextFrame(t *testing.T) {
	raw := []byte{
		'I', 'D', '3', 2, 0, 0x00, 0x00, 0x00, 0x00, 0x0D, // header, size=13
		'T', 'A', 'L', 0x00, 0x00, 0x07, // frame header: id, size=7
		0x00, 'H', 'e', 'l', 'l', 'o', 0x00, // encoding + "Hello" + NUL
	}

	tag, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	frames, err := tag.ReadAllFrames()
	if err != nil {
		t.Fatalf("ReadAllFrames: %v", err)
	}
	if len(frames) != 1 {
		t.Fatalf("len(frames) = %d, want 1", len(frames))
	}

	f := frames[0]
	if got := f.ID.rawString(); got != "TAL" {
		t.Errorf("ID = %q, want TAL", got)
	}
	text, ok := f.Content.(TextContent)
	if !ok {
		t.Fatalf("Content = %T, want TextContent", f.Content)
	}
	if len(text.Values) != 1 || text.Values[0] != "Hello" {
		t.Errorf("Values = %v, want [Hello]", text.Values)
	}
}

// v2.3 tag with a single TALB frame, UTF-16BE encoded "Hi!". The
// size fields here are corrected to be internally consistent (a
// 7-byte content: 1 encoding byte + 6 bytes of UTF-16BE text).
func TestDecodeV23UTF16BETextFrame(t *testing.T) {
	raw := []byte{
		'I', 'D', '3', 3, 0, 0x00, 0x00, 0x00, 0x00, 0x11, // header, size=17
		'T', 'A', 'L', 'B', 0x00, 0x00, 0x00, 0x07, 0x00, 0x00, // frame header: id, size=7, flags
		0x02, 0x00, 'H', 0x00, 'i', 0x00, '!', // encoding=UTF16BE + "Hi!"
	}

	tag, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	frames, err := tag.ReadAllFrames()
	if err != nil {
		t.Fatalf("ReadAllFrames: %v", err)
	}
	f := frames.Lookup(FrameTALB)
	if f == nil {
		t.Fatal("TALB frame not found")
	}
	text, ok := f.Content.(TextContent)
	if !ok {
		t.Fatalf("Content = %T, want TextContent", f.Content)
	}
	if len(text.Values) != 1 || text.Values[0] != "Hi!" {
		t.Errorf("Values = %v, want [Hi!]", text.Values)
	}
}

// v2.4 tag containing a single CHAP frame with a nested TIT2
// sub-frame. Iterating the CHAP's sub-frames should yield exactly one
// TIT2, "Intro".
func TestDecodeV24ChapterWithNestedTitle(t *testing.T) {
	tit2Header := []byte{'T', 'I', 'T', '2', 0x00, 0x00, 0x00, 0x06, 0x00, 0x00}
	tit2Body := []byte{0x00, 'I', 'n', 't', 'r', 'o'}

	chapBody := []byte{}
	chapBody = append(chapBody, 'c', '1', 0x00) // element id
	chapBody = append(chapBody, 0x00, 0x00, 0x00, 0x00) // start time ms = 0
	chapBody = append(chapBody, 0x00, 0x00, 0x03, 0xE8) // end time ms = 1000
	chapBody = append(chapBody, 0x00, 0x00, 0x00, 0x00) // start offset = 0 (unused)
	chapBody = append(chapBody, 0x00, 0x00, 0x03, 0xE8) // end offset = 1000
	chapBody = append(chapBody, tit2Header...)
	chapBody = append(chapBody, tit2Body...)

	chapSize := encodeSynchsafe28(uint32(len(chapBody)))
	chapHeader := []byte{'C', 'H', 'A', 'P'}
	chapHeader = append(chapHeader, chapSize[:]...)
	chapHeader = append(chapHeader, 0x00, 0x00)

	frame := append(chapHeader, chapBody...)

	tagSize := encodeSynchsafe28(uint32(len(frame)))
	head := []byte{'I', 'D', '3', 4, 0, 0x00}
	head = append(head, tagSize[:]...)

	raw := append(head, frame...)

	tag, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	frames, err := tag.ReadAllFrames()
	if err != nil {
		t.Fatalf("ReadAllFrames: %v", err)
	}
	if len(frames) != 1 {
		t.Fatalf("len(frames) = %d, want 1", len(frames))
	}

	chap, ok := frames[0].Content.(ChapterContent)
	if !ok {
		t.Fatalf("Content = %T, want ChapterContent", frames[0].Content)
	}
	if chap.ElementID != "c1" {
		t.Errorf("ElementID = %q, want c1", chap.ElementID)
	}
	if chap.StartTimeMS != 0 || chap.EndTimeMS != 1000 {
		t.Errorf("StartTimeMS/EndTimeMS = %d/%d, want 0/1000", chap.StartTimeMS, chap.EndTimeMS)
	}

	titles := chap.SubFrames.All(FrameTIT2)
	if len(titles) != 1 {
		t.Fatalf("len(titles) = %d, want 1", len(titles))
	}
	text, ok := titles[0].Content.(TextContent)
	if !ok {
		t.Fatalf("Content = %T, want TextContent", titles[0].Content)
	}
	if len(text.Values) != 1 || text.Values[0] != "Intro" {
		t.Errorf("Values = %v, want [Intro]", text.Values)
	}
}

// v2.3 tag with a single zlib-compressed TCON frame. Decoding with a
// Decompressor wired in recovers "Rock"; without one, decoding fails
// rather than silently skipping the frame.
func TestDecodeV23CompressedFrame(t *testing.T) {
	// zlib-compressed form of {0x00, 'R', 'o', 'c', 'k', 0x00}
	// (encoding byte + "Rock" + NUL), decompressed size 6.
	compressed := []byte{
		0x78, 0x9c, 0x63, 0x08, 0xca, 0x4f, 0xce, 0x66,
		0x00, 0x00, 0x05, 0x5b, 0x01, 0x90,
	}

	body := []byte{0x00, 0x00, 0x00, 0x06} // decompressed size prefix
	body = append(body, compressed...)

	frameHeader := []byte{'T', 'C', 'O', 'N', 0x00, 0x00, 0x00, byte(len(body)), 0x00, 0x80}
	frame := append(frameHeader, body...)

	tagSize := encodeSynchsafe28(uint32(len(frame)))
	head := []byte{'I', 'D', '3', 3, 0, 0x00}
	head = append(head, tagSize[:]...)
	raw := append(head, frame...)

	t.Run("with decompressor", func(t *testing.T) {
		tag, err := Decode(bytes.NewReader(raw))
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		tag.Decompressor = ZlibDecompressor{}

		frames, err := tag.ReadAllFrames()
		if err != nil {
			t.Fatalf("ReadAllFrames: %v", err)
		}
		f := frames.Lookup(FrameTCON)
		if f == nil {
			t.Fatal("TCON frame not found")
		}
		text, ok := f.Content.(TextContent)
		if !ok {
			t.Fatalf("Content = %T, want TextContent", f.Content)
		}
		if len(text.Values) != 1 || text.Values[0] != "Rock" {
			t.Errorf("Values = %v, want [Rock]", text.Values)
		}
	})

	t.Run("without decompressor", func(t *testing.T) {
		tag, err := Decode(bytes.NewReader(raw))
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}

		_, err = tag.ReadAllFrames()
		if err == nil {
			t.Fatal("expected an error decoding a compressed frame with no Decompressor")
		}
	})
}

func TestDecodeEmptyBodyYieldsNoFrames(t *testing.T) {
	raw := []byte{'I', 'D', '3', 3, 0, 0x00, 0x00, 0x00, 0x00, 0x00}
	tag, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	frames, err := tag.ReadAllFrames()
	if err != nil {
		t.Fatalf("ReadAllFrames: %v", err)
	}
	if len(frames) != 0 {
		t.Errorf("len(frames) = %d, want 0", len(frames))
	}
}

func TestDecodeAllNULBodyHaltsSilently(t *testing.T) {
	body := make([]byte, 20)
	raw := []byte{'I', 'D', '3', 3, 0, 0x00, 0x00, 0x00, 0x00, 0x14}
	raw = append(raw, body...)

	tag, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	frames, err := tag.ReadAllFrames()
	if err != nil {
		t.Fatalf("ReadAllFrames: %v", err)
	}
	if len(frames) != 0 {
		t.Errorf("len(frames) = %d, want 0", len(frames))
	}
}

func TestDecodeTruncatedFrameBodyIsInvalidFrameData(t *testing.T) {
	// A frame header claiming 100 bytes of body but the tag only has 4.
	raw := []byte{
		'I', 'D', '3', 3, 0, 0x00, 0x00, 0x00, 0x00, 0x0E,
		'T', 'I', 'T', '2', 0x00, 0x00, 0x00, 0x64, 0x00, 0x00,
		0x00, 'H', 'i', '!',
	}
	tag, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	_, err = tag.ReadAllFrames()
	if err == nil {
		t.Fatal("expected an error for a truncated frame body")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != KindInvalidFrameData {
		t.Errorf("err = %v, want KindInvalidFrameData", err)
	}
}

// A v2.4 TIT2 frame carrying a grouping identifier (common for iTunes
// podcast grouping) must still decode its text correctly: the 1-byte
// group id sits in the extras block ahead of the content, not as a
// leading byte of the text itself.
func TestDecodeV24TextFrameWithGroupingIdentity(t *testing.T) {
	raw := []byte{
		'I', 'D', '3', 4, 0, 0x00, 0x00, 0x00, 0x00, 0x10, // header, size=16
		'T', 'I', 'T', '2', 0x00, 0x00, 0x00, 0x06, 0x00, 0x40, // id, descriptor=6, flags: GroupingIdentity
		0x2a,                      // group id
		0x00, 'H', 'i', '!', 0x00, // encoding + "Hi!" + NUL
	}

	tag, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	frames, err := tag.ReadAllFrames()
	if err != nil {
		t.Fatalf("ReadAllFrames: %v", err)
	}
	f := frames.Lookup(FrameTIT2)
	if f == nil {
		t.Fatal("TIT2 frame not found")
	}
	if !f.Extras.HasGroupID || f.Extras.GroupID != 0x2a {
		t.Errorf("Extras = %+v, want GroupID 0x2a", f.Extras)
	}
	text, ok := f.Content.(TextContent)
	if !ok || len(text.Values) != 1 || text.Values[0] != "Hi!" {
		t.Errorf("Content = %+v, want text Hi! (not shifted by the group id byte)", f.Content)
	}
}

// RVRB has a fixed 12-byte shape and never drains to the end of its
// body; a frame whose declared size leaves trailing junk past those
// 12 bytes is a framing bug and must fail rather than silently ignore
// the extra bytes.
func TestDecodeFrameWithResidualBytesFails(t *testing.T) {
	content := make([]byte, 12)
	for i := range content {
		content[i] = byte(i + 1)
	}
	content = append(content, 0xde, 0xad, 0xbe, 0xef) // 4 stray trailing bytes

	raw := []byte{'I', 'D', '3', 3, 0, 0x00, 0x00, 0x00, 0x00, 0x00}
	frameHeader := []byte{'R', 'V', 'R', 'B', 0x00, 0x00, 0x00, byte(len(content)), 0x00, 0x00}
	frame := append(frameHeader, content...)
	tagSize := encodeSynchsafe28(uint32(len(frame)))
	copy(raw[6:10], tagSize[:])
	raw = append(raw, frame...)

	tag, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	_, err = tag.ReadAllFrames()
	if err == nil {
		t.Fatal("expected an error for residual bytes left after content decode")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != KindInvalidFrameData {
		t.Errorf("err = %v, want KindInvalidFrameData", err)
	}
}

func TestTagIntoOwned(t *testing.T) {
	raw := []byte{
		'I', 'D', '3', 2, 0, 0x00, 0x00, 0x00, 0x00, 0x0D,
		'T', 'A', 'L', 0x00, 0x00, 0x07,
		0x00, 'H', 'e', 'l', 'l', 'o', 0x00,
	}
	tag, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	owned, err := tag.IntoOwned()
	if err != nil {
		t.Fatalf("IntoOwned: %v", err)
	}
	if len(owned.Frames) != 1 {
		t.Fatalf("len(Frames) = %d, want 1", len(owned.Frames))
	}
	text, ok := owned.Frames[0].Content.(TextContent)
	if !ok || len(text.Values) != 1 || text.Values[0] != "Hello" {
		t.Errorf("Frames[0].Content = %+v, want text Hello", owned.Frames[0].Content)
	}
}
