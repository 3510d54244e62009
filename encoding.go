package id3v2

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Encoding is the text-encoding byte that leads many ID3v2 frames.
type Encoding uint8

const (
	EncodingISO88591 Encoding = 0x00
	EncodingUTF16BOM Encoding = 0x01
	EncodingUTF16BE  Encoding = 0x02
	EncodingUTF8     Encoding = 0x03
)

func (e Encoding) String() string {
	switch e {
	case EncodingISO88591:
		return "ISO-8859-1"
	case EncodingUTF16BOM:
		return "UTF-16"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF8:
		return "UTF-8"
	default:
		return "unknown"
	}
}

// Valid reports whether e is one of the four encoding bytes the format
// defines.
func (e Encoding) Valid() bool {
	switch e {
	case EncodingISO88591, EncodingUTF16BOM, EncodingUTF16BE, EncodingUTF8:
		return true
	default:
		return false
	}
}

// TerminatorWidth is 1 for the single-byte encodings and 2 for the
// UTF-16 variants, matching the NUL-terminator width a string in that
// encoding uses.
func (e Encoding) TerminatorWidth() int {
	switch e {
	case EncodingUTF16BOM, EncodingUTF16BE:
		return 2
	default:
		return 1
	}
}

var (
	bomBE = [2]byte{0xFE, 0xFF}
	bomLE = [2]byte{0xFF, 0xFE}
)

func isASCIIPrintable(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// decodeText decodes b per the ID3 text-encoding byte enc. Control
// bytes below 0x20 (other than NUL, which strings still carry as a
// terminator/separator at this layer) in a Latin-1 string are rejected
// as InvalidFrameData rather than silently lifted to code points (see
// DESIGN.md, open question 1).
func decodeText(enc Encoding, b []byte) (string, error) {
	switch enc {
	case EncodingISO88591:
		return decodeLatin1(b)
	case EncodingUTF16BOM:
		return decodeUTF16BOM(b)
	case EncodingUTF16BE:
		return decodeUTF16BE(b)
	case EncodingUTF8:
		return decodeUTF8(b)
	default:
		return "", newError(KindInvalidFrameData)
	}
}

func decodeLatin1(b []byte) (string, error) {
	for _, c := range b {
		// 0x00 is excluded from the rejected range: text frames often
		// carry their NUL terminator (or a multi-value separator) as
		// part of the bytes handed to decodeText, with splitting done
		// on the decoded string afterward rather than stripped first.
		if c < 0x20 && c != 0x00 {
			return "", newError(KindInvalidFrameData)
		}
	}

	if isASCIIPrintable(b) {
		// Every byte is already a valid single-byte UTF-8 code point;
		// no transcoding allocation needed beyond the string copy.
		return string(b), nil
	}

	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", wrapError(KindInvalidFrameData, err, "latin1")
	}
	return string(out), nil
}

func decodeUTF16BOM(b []byte) (string, error) {
	if len(b) < 2 {
		return "", newError(KindInvalidFrameData)
	}

	var bom [2]byte
	copy(bom[:], b[:2])
	if bom != bomBE && bom != bomLE {
		return "", newError(KindInvalidFrameData)
	}

	dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", wrapError(KindInvalidFrameData, err, "utf16 bom")
	}
	return string(out), nil
}

func decodeUTF16BE(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", newError(KindInvalidFrameData)
	}

	dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", wrapError(KindInvalidFrameData, err, "utf16be")
	}
	return string(out), nil
}

func decodeUTF8(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", newError(KindInvalidFrameData)
	}
	return string(b), nil
}

// stripControlChars NFKD-normalises a decoded string and removes every
// C0 control character from it, NUL included (so a trailing
// terminator left by fullString is dropped here). It is the cleanup
// pass applied to COMM/USLT text: for UTF-16 and UTF-8 text, control
// characters are removed rather than failing the frame. Latin-1 text
// containing bytes 0x01-0x1F never reaches it, since decodeLatin1 has
// already rejected it.
func stripControlChars(s string) string {
	isControl := func(r rune) bool {
		return r < 0x20
	}
	t := transform.Chain(norm.NFKD, transform.RemoveFunc(isControl))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
