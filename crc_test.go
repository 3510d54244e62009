package id3v2

import (
	"bytes"
	"testing"
)

func buildV24TagWithCRC(t *testing.T, crc uint64) []byte {
	t.Helper()

	frameArea := []byte{
		'T', 'I', 'T', '2', 0x00, 0x00, 0x00, 0x03, 0x00, 0x00,
		0x00, 'H', 'i',
	}

	crcBytes := encodeSynchsafe35(crc)
	ext := []byte{0x00, 0x00, 0x00, 0x00, 0x01, 0x20, 0x05}
	ext = append(ext, crcBytes[:]...)

	body := append(append([]byte{}, ext...), frameArea...)

	sizeBytes := encodeSynchsafe28(uint32(len(body)))
	head := []byte{'I', 'D', '3', 4, 0, 0x40}
	head = append(head, sizeBytes[:]...)

	return append(head, body...)
}

func TestTagCRCMatchDecodesCleanly(t *testing.T) {
	raw := buildV24TagWithCRC(t, 1169556728)

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
}

func TestTagCRCMismatchFailsDecode(t *testing.T) {
	raw := buildV24TagWithCRC(t, 1169556728+1)

	if _, err := Decode(bytes.NewReader(raw)); err == nil {
		t.Fatal("expected a CRC mismatch error, got nil")
	}
}
