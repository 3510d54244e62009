package id3v2

import (
	"bytes"
	"testing"
)

func TestReadHeaderV23Basic(t *testing.T) {
	b := []byte{'I', 'D', '3', 3, 0, 0x00, 0x00, 0x00, 0x00, 0x11}
	h, err := readHeader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	if h.Version != Version2_3 {
		t.Errorf("Version = %v, want Version2_3", h.Version)
	}
	if h.Size != 17 {
		t.Errorf("Size = %d, want 17", h.Size)
	}
	if h.Ext != nil {
		t.Errorf("Ext = %+v, want nil", h.Ext)
	}
}

func TestReadHeaderRejectsBadMagic(t *testing.T) {
	b := []byte{'X', 'D', '3', 3, 0, 0, 0, 0, 0, 0}
	if _, err := readHeader(bytes.NewReader(b)); err == nil {
		t.Error("expected an error for a bad magic, got nil")
	}
}

func TestReadHeaderRejectsReservedFlagBit(t *testing.T) {
	// v2.3 only defines the top three flag bits; 0x08 is reserved.
	b := []byte{'I', 'D', '3', 3, 0, 0x08, 0, 0, 0, 0}
	if _, err := readHeader(bytes.NewReader(b)); err == nil {
		t.Error("expected an error for a reserved flag bit, got nil")
	}
}

func TestReadHeaderRejectsNonSynchsafeSize(t *testing.T) {
	b := []byte{'I', 'D', '3', 3, 0, 0, 0x80, 0, 0, 0}
	if _, err := readHeader(bytes.NewReader(b)); err == nil {
		t.Error("expected an error for a non-synchsafe size byte, got nil")
	}
}

// A v2.4 tag with an extended header carrying both a CRC and a
// restrictions byte; the main header's reported Size must have the
// extended header's own consumed length subtracted out, leaving only
// the frame area for the caller to read.
func TestReadHeaderV24ExtendedHeader(t *testing.T) {
	ext := []byte{
		0x00, 0x00, 0x00, 0x0f, // ext size = 15 (synchsafe)
		0x01,       // number of flag bytes
		0x30,       // flags: CRC present (0x20) | restrictions present (0x10)
		0x05,       // CRC data length
		0x00, 0x00, 0x00, 0x00, 0x01, // 35-bit CRC, synchsafe
		0x01, // restrictions data length
		0x00, // restrictions byte: all unrestricted
	}
	frameArea := []byte{'T', 'I', 'T', '2', 0x00, 0x00, 0x00, 0x06, 0x00, 0x00, 0x00, 'H', 'i', '!', 0, 0}

	totalBody := len(ext) + len(frameArea)
	sizeBytes := encodeSynchsafe28(uint32(totalBody))
	head := []byte{'I', 'D', '3', 4, 0, 0x40}
	head = append(head, sizeBytes[:]...)

	var buf bytes.Buffer
	buf.Write(head)
	buf.Write(ext)
	buf.Write(frameArea)

	h, err := readHeader(&buf)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	if h.Ext == nil {
		t.Fatal("Ext = nil, want non-nil")
	}
	if !h.Ext.CRCPresent {
		t.Error("CRCPresent = false, want true")
	}
	if h.Ext.Restrictions == nil {
		t.Fatal("Restrictions = nil, want non-nil")
	}
	if h.Ext.CRC != 1 {
		t.Errorf("CRC = %d, want 1", h.Ext.CRC)
	}
	if h.bodySize() != len(frameArea) {
		t.Errorf("bodySize() = %d, want %d (ext header bytes subtracted)", h.bodySize(), len(frameArea))
	}
}

func TestReadHeaderRejectsUnsyncWithExtendedHeader(t *testing.T) {
	// Flags: Unsynchronisation (0x80) | ExtendedHeader (0x40).
	b := []byte{'I', 'D', '3', 4, 0, 0xc0, 0x00, 0x00, 0x00, 0x0a}
	_, err := readHeader(bytes.NewReader(b))
	if err == nil {
		t.Fatal("expected an error for unsynchronisation + extended header, got nil")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != KindInvalidField || e.Field != FieldHeaderFlags {
		t.Errorf("err = %v, want KindInvalidField/FieldHeaderFlags", err)
	}
}

func TestDecodeRestrictions(t *testing.T) {
	// 11 1 11 1 11 -> TagSize=3, TextEncoding=1, TextFieldSize=3, ImageEncoding=1, ImageSize=3
	r := decodeRestrictions(0xff)
	if r.TagSize != TagSizeMax32Frames4KB {
		t.Errorf("TagSize = %v, want TagSizeMax32Frames4KB", r.TagSize)
	}
	if r.TextEncoding != TextEncodingLatin1OrUTF8Only {
		t.Errorf("TextEncoding = %v, want TextEncodingLatin1OrUTF8Only", r.TextEncoding)
	}
	if r.TextFieldSize != TextFieldSizeMax30 {
		t.Errorf("TextFieldSize = %v, want TextFieldSizeMax30", r.TextFieldSize)
	}
	if r.ImageEncoding != ImageEncodingPNGOrJPEGOnly {
		t.Errorf("ImageEncoding = %v, want ImageEncodingPNGOrJPEGOnly", r.ImageEncoding)
	}
	if r.ImageSize != ImageSizeExactly64 {
		t.Errorf("ImageSize = %v, want ImageSizeExactly64", r.ImageSize)
	}
}
