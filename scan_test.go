package id3v2

import (
	"bytes"
	"testing"
)

func TestTagsFindsMultipleTags(t *testing.T) {
	tag1 := []byte{
		'I', 'D', '3', 2, 0, 0x00, 0x00, 0x00, 0x00, 0x0D,
		'T', 'A', 'L', 0x00, 0x00, 0x07,
		0x00, 'H', 'e', 'l', 'l', 'o', 0x00,
	}
	tag2 := []byte{
		'I', 'D', '3', 3, 0, 0x00, 0x00, 0x00, 0x00, 0x11,
		'T', 'A', 'L', 'B', 0x00, 0x00, 0x00, 0x07, 0x00, 0x00,
		0x02, 0x00, 'H', 0x00, 'i', 0x00, '!',
	}

	var stream bytes.Buffer
	stream.Write([]byte("some leading audio noise ID3 but not a header"))
	stream.Write(tag1)
	stream.Write([]byte("more audio data in between"))
	stream.Write(tag2)

	tags, err := Tags(&stream)
	if err != nil {
		t.Fatalf("Tags: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("len(tags) = %d, want 2", len(tags))
	}
	if tags[0].Header.Version != Version2_2 {
		t.Errorf("tags[0].Header.Version = %v, want Version2_2", tags[0].Header.Version)
	}
	if tags[1].Header.Version != Version2_3 {
		t.Errorf("tags[1].Header.Version = %v, want Version2_3", tags[1].Header.Version)
	}

	frames1, err := tags[0].ReadAllFrames()
	if err != nil {
		t.Fatalf("ReadAllFrames(tags[0]): %v", err)
	}
	f1 := frames1.Lookup(FrameTAL)
	if f1 == nil {
		t.Fatal("tags[0]: TAL frame not found")
	}
	if text1, ok := f1.Content.(TextContent); !ok || text1.Values[0] != "Hello" {
		t.Errorf("tags[0] TAL content = %+v, want Hello", f1.Content)
	}

	frames2, err := tags[1].ReadAllFrames()
	if err != nil {
		t.Fatalf("ReadAllFrames(tags[1]): %v", err)
	}
	f2 := frames2.Lookup(FrameTALB)
	if f2 == nil {
		t.Fatal("tags[1]: TALB frame not found")
	}
	if text2, ok := f2.Content.(TextContent); !ok || text2.Values[0] != "Hi!" {
		t.Errorf("tags[1] TALB content = %+v, want Hi!", f2.Content)
	}
}

func TestTagsNoTagsFound(t *testing.T) {
	tags, err := Tags(bytes.NewReader([]byte("just some plain audio bytes with no tag at all")))
	if err != nil {
		t.Fatalf("Tags: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("len(tags) = %d, want 0", len(tags))
	}
}
