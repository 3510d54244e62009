package id3v2

import "testing"

// A v2.4 frame header whose size field is synchsafe-encoded must
// recover the intended size (200) rather than the value a plain u32be
// read of the same bytes would give (328).
func TestReadFrameHeader24SynchsafeSize(t *testing.T) {
	b := []byte{
		'T', 'I', 'T', '2', // id
		0x00, 0x00, 0x01, 0x48, // synchsafe size: 1*128 + 72 = 200
		0x00, 0x00, // flags
	}

	fh, n, err := readFrameHeader24(b)
	if err != nil {
		t.Fatalf("readFrameHeader24: %v", err)
	}
	if n != 10 {
		t.Errorf("consumed = %d, want 10", n)
	}
	if fh.Size != 200 {
		t.Errorf("Size = %d, want 200 (not 328)", fh.Size)
	}
	if fh.ID != FrameTIT2 {
		t.Errorf("ID = %v, want %v", fh.ID, FrameTIT2)
	}
}

func TestReadFrameHeader22(t *testing.T) {
	b := []byte{'T', 'A', 'L', 0x00, 0x00, 0x07}
	fh, n, err := readFrameHeader22(b)
	if err != nil {
		t.Fatalf("readFrameHeader22: %v", err)
	}
	if n != 6 {
		t.Errorf("consumed = %d, want 6", n)
	}
	if fh.Size != 7 {
		t.Errorf("Size = %d, want 7", fh.Size)
	}
}

func TestParseFrameIDRejectsInvalidBytes(t *testing.T) {
	if _, err := parseFrameID4([]byte("T!T2")); err == nil {
		t.Error("parseFrameID4 accepted an invalid byte, want error")
	}
	if _, err := parseFrameID3([]byte("t1l")); err == nil {
		t.Error("parseFrameID3 accepted a lowercase byte, want error")
	}
}

func TestDecodeFrameFlags24RejectsCompressionWithoutDataLengthIndicator(t *testing.T) {
	// Compression bit (lo 0x08) set, DataLengthIndicator (lo 0x01) clear.
	_, err := decodeFrameFlags24(0x0008)
	if err == nil {
		t.Fatal("expected an error for Compression without DataLengthIndicator")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != KindInvalidBitFlag {
		t.Errorf("err = %v, want KindInvalidBitFlag", err)
	}
}

// A v2.4 frame with only GroupingIdentity set (no compression) must
// have its 1-byte group id stripped from the content view entirely,
// not left as a leading byte for the content decoder to misread.
func TestReadFrameHeader24GroupingIdentityOnly(t *testing.T) {
	b := []byte{
		'T', 'I', 'T', '2',
		0x00, 0x00, 0x00, 0x07, // descriptor: 7 (6 content bytes + 1 group id byte)
		0x00, 0x40, // flags: GroupingIdentity (lo 0x40)
		0x2a,             // group id
		0x00, 'H', 'i', '!', 0, 0, // encoding + "Hi!" + NUL + padding byte belonging to content
	}

	fh, n, err := readFrameHeader24(b)
	if err != nil {
		t.Fatalf("readFrameHeader24: %v", err)
	}
	if n != 11 {
		t.Errorf("consumed = %d, want 11 (10-byte header + 1-byte group id)", n)
	}
	if !fh.Extras.HasGroupID || fh.Extras.GroupID != 0x2a {
		t.Errorf("Extras = %+v, want GroupID 0x2a", fh.Extras)
	}
	if fh.Size != 6 {
		t.Errorf("Size = %d, want 6 (descriptor minus the 1-byte group id)", fh.Size)
	}
}

// v2.3's extras precede in decompressed-size, encryption-method,
// group-id order; a frame with only GroupingIdentity set must still
// have its group id byte excluded from Size/consumed content.
func TestReadFrameHeader23GroupingIdentityOnly(t *testing.T) {
	b := []byte{
		'T', 'I', 'T', '2',
		0x00, 0x00, 0x00, 0x08, // descriptor: 8 (7 content bytes + 1 group id byte)
		0x00, 0x20, // flags: GroupingIdentity (lo 0x20)
		0x07,                               // group id
		0x00, 'H', 'e', 'l', 'l', 'o', 0x00, // encoding + "Hello" + NUL
	}

	fh, n, err := readFrameHeader23(b)
	if err != nil {
		t.Fatalf("readFrameHeader23: %v", err)
	}
	if n != 11 {
		t.Errorf("consumed = %d, want 11", n)
	}
	if !fh.Extras.HasGroupID || fh.Extras.GroupID != 0x07 {
		t.Errorf("Extras = %+v, want GroupID 0x07", fh.Extras)
	}
	if fh.Size != 7 {
		t.Errorf("Size = %d, want 7", fh.Size)
	}
}

func TestFrameIDRawString(t *testing.T) {
	id, err := parseFrameID3([]byte("TAL"))
	if err != nil {
		t.Fatalf("parseFrameID3: %v", err)
	}
	if got := id.rawString(); got != "TAL" {
		t.Errorf("rawString = %q, want TAL", got)
	}
}
