package id3v2

import "testing"

func TestDecodeLatin1EmptyFromNULOnly(t *testing.T) {
	d := newDecoder(Version2_3, []byte{0x00})
	s, err := d.latin1Terminated()
	if err != nil {
		t.Fatalf("latin1Terminated: %v", err)
	}
	if s != "" {
		t.Errorf("s = %q, want empty string", s)
	}
}

func TestDecodeLatin1RejectsControlBytes(t *testing.T) {
	if _, err := decodeLatin1([]byte{0x01, 'a'}); err == nil {
		t.Error("decodeLatin1 accepted a control byte, want error")
	}
}

func TestDecodeUTF16BOMOnlyIsEmptyString(t *testing.T) {
	s, err := decodeUTF16BOM([]byte{0xFE, 0xFF})
	if err != nil {
		t.Fatalf("decodeUTF16BOM: %v", err)
	}
	if s != "" {
		t.Errorf("s = %q, want empty string", s)
	}
}

func TestDecodeLanguageValidatesLength(t *testing.T) {
	if _, err := decodeLanguage([]byte("en")); err == nil {
		t.Error("decodeLanguage accepted a 2-byte code, want error")
	}
	lang, err := decodeLanguage([]byte("eng"))
	if err != nil {
		t.Fatalf("decodeLanguage: %v", err)
	}
	if lang != "eng" {
		t.Errorf("lang = %q, want eng", lang)
	}
}

func TestDecodeDateValidatesDigits(t *testing.T) {
	if _, err := decodeDate([]byte("2020AB01")); err == nil {
		t.Error("decodeDate accepted non-digit bytes, want error")
	}
	d, err := decodeDate([]byte("20200101"))
	if err != nil {
		t.Fatalf("decodeDate: %v", err)
	}
	if d != "20200101" {
		t.Errorf("d = %q, want 20200101", d)
	}
}

func TestPictureTypeValid(t *testing.T) {
	if !PictureBandLogo.Valid() {
		t.Error("PictureBandLogo (0x13) should be valid")
	}
	if !PictureType(0x00).Valid() {
		t.Error("0x00 (PictureOther) should be valid")
	}
	if PictureType(0x15).Valid() {
		t.Error("0x15 is past PicturePublisherLogo, want invalid")
	}
}

func TestTimestampFormatValid(t *testing.T) {
	if !TimestampMPEGFrames.Valid() || !TimestampMilliseconds.Valid() {
		t.Error("0x01 and 0x02 should be valid timestamp formats")
	}
	if TimestampFormat(0x00).Valid() || TimestampFormat(0x03).Valid() {
		t.Error("0x00 and 0x03 should not be valid timestamp formats")
	}
}

func TestDecodeAttachedPictureRejectsOutOfRangePictureType(t *testing.T) {
	b := []byte{
		0x00,      // encoding: Latin-1
		'j', 'p', 'e', 'g', 0x00, // mime
		0x15,      // picture type: one past PicturePublisherLogo
		0x00,      // description: empty
		0xff, 0xd8, // fake image data
	}
	d := newDecoder(Version2_3, b)
	if _, err := decodeAttachedPictureContent(d); err == nil {
		t.Error("decodeAttachedPictureContent accepted an out-of-range picture type, want error")
	} else if e, ok := err.(*Error); !ok || e.Kind != KindInvalidFrameData {
		t.Errorf("err = %v, want KindInvalidFrameData", err)
	}
}

func TestDecodeEventTimingRejectsInvalidTimestampFormat(t *testing.T) {
	b := []byte{0x03} // timestamp format: neither 0x01 nor 0x02
	d := newDecoder(Version2_3, b)
	if _, err := decodeEventTimingContent(d); err == nil {
		t.Error("decodeEventTimingContent accepted an invalid timestamp format, want error")
	} else if e, ok := err.(*Error); !ok || e.Kind != KindInvalidFrameData {
		t.Errorf("err = %v, want KindInvalidFrameData", err)
	}
}

func TestFrameIntoOwnedIdempotent(t *testing.T) {
	raw := []byte{0xde, 0xad, 0xbe, 0xef}
	f := Frame{
		ID:      FrameAPIC,
		Content: AttachedPictureContent{MIMEType: "image/png", Data: raw},
		Raw:     raw,
	}

	once := f.IntoOwned()
	twice := once.IntoOwned()

	if string(once.Raw) != string(twice.Raw) {
		t.Errorf("Raw changed across a second IntoOwned: %x vs %x", once.Raw, twice.Raw)
	}
	onceContent := once.Content.(AttachedPictureContent)
	twiceContent := twice.Content.(AttachedPictureContent)
	if string(onceContent.Data) != string(twiceContent.Data) {
		t.Errorf("Content.Data changed across a second IntoOwned: %x vs %x", onceContent.Data, twiceContent.Data)
	}

	// The promoted copy must not alias the original backing array.
	if len(raw) > 0 {
		raw[0] = 0xff
		if once.Raw[0] == 0xff {
			t.Error("IntoOwned's Raw aliases the original buffer")
		}
	}
}
