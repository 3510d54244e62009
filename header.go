package id3v2

import (
	"hash/crc32"
	"io"
)

// HeaderFlags are the bits of the ID3v2 header's flags byte. Which
// bits are meaningful depends on Header.Version; readHeader rejects
// any reserved bit being set for the version at hand.
type HeaderFlags uint8

const (
	HeaderFlagUnsynchronisation HeaderFlags = 0x80
	HeaderFlagExtendedHeader    HeaderFlags = 0x40 // v2.3, v2.4
	HeaderFlagExperimental      HeaderFlags = 0x20 // v2.3, v2.4
	HeaderFlagFooterPresent     HeaderFlags = 0x10 // v2.4 only
)

func (f HeaderFlags) reservedMask(v Version) HeaderFlags {
	switch v {
	case Version2_2:
		return ^HeaderFlagUnsynchronisation
	case Version2_3:
		return ^(HeaderFlagUnsynchronisation | HeaderFlagExtendedHeader | HeaderFlagExperimental)
	case Version2_4:
		return ^(HeaderFlagUnsynchronisation | HeaderFlagExtendedHeader | HeaderFlagExperimental | HeaderFlagFooterPresent)
	default:
		return ^HeaderFlags(0)
	}
}

// Header is the fixed 10-byte ID3v2 header plus its optional extended
// header.
type Header struct {
	Version  Version
	Revision byte
	Flags    HeaderFlags
	Size     uint32 // body size from the synchsafe size field, less the extended header bytes readHeader consumed; excludes header and (if present) footer

	Ext *ExtHeader // non-nil only when HeaderFlagExtendedHeader is set
}

// bodySize is the number of bytes a caller must read following the
// 10-byte header and any extended header (which readHeader has already
// consumed) to get the tag's frame area, including padding but not a
// footer.
func (h Header) bodySize() int { return int(h.Size) }

// readHeader reads and validates the 10-byte ID3v2 header, followed by
// the extended header when HeaderFlagExtendedHeader is set.
func readHeader(r io.Reader) (Header, error) {
	var buf [10]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, wrapError(KindIO, err, "tag header")
	}

	if buf[0] != 'I' || buf[1] != 'D' || buf[2] != '3' {
		return Header{}, newFieldError(KindInvalidField, FieldIdentifier)
	}

	version, err := versionFromMajor(buf[3])
	if err != nil {
		return Header{}, err
	}
	if !version.Decodable() {
		return Header{}, newFieldError(KindInvalidVersion, FieldVersion)
	}

	flags := HeaderFlags(buf[5])
	h := Header{
		Version:  version,
		Revision: buf[4],
		Flags:    flags,
	}
	if flags&flags.reservedMask(version) != 0 {
		return Header{}, newFieldError(KindInvalidField, FieldVersion)
	}

	for _, c := range buf[6:10] {
		if c&0x80 != 0 {
			return Header{}, newFieldError(KindInvalidField, FieldSize)
		}
	}
	h.Size = synchsafe(buf[6:10])

	if flags&HeaderFlagUnsynchronisation != 0 && flags&HeaderFlagExtendedHeader != 0 {
		// A tag claiming both whole-tag unsynchronisation and an
		// extended header is rejected rather than parsed: the extended
		// header sits in the still-synchronised stream as read here, but
		// ReadFrom only applies the unsync transform to the frame body
		// afterward, so an extended header under these flags can never
		// be decoded correctly. Current policy is to fail the tag
		// outright instead of silently misreading it.
		return Header{}, newFieldError(KindInvalidField, FieldHeaderFlags)
	}

	if flags&HeaderFlagExtendedHeader != 0 {
		ext, n, err := readExtHeader(r, version)
		if err != nil {
			return Header{}, err
		}
		h.Ext = &ext
		h.Size -= uint32(n)
	}

	return h, nil
}

// ExtHeader is the ID3v2 extended header. Its shape differs between
// v2.3 and v2.4; fields that don't apply to the header's own version
// are left at their zero value.
type ExtHeader struct {
	Size int // total size of the extended header itself, in bytes, as declared by its size field (not checked against the bytes consumed)

	// v2.3
	PaddingSize uint32

	// v2.4
	TagIsUpdate  bool
	Restrictions *Restrictions

	CRCPresent bool
	CRC        uint64 // 35-bit value when CRCPresent
}

func readExtHeader(r io.Reader, version Version) (ExtHeader, int, error) {
	switch version {
	case Version2_3:
		return readExtHeader23(r)
	case Version2_4:
		return readExtHeader24(r)
	default:
		// Unreachable: readHeader only sets HeaderFlagExtendedHeader's
		// bit meaning for 2.3/2.4, and 2.2 never reaches here because
		// the bit isn't in its reservedMask.
		return ExtHeader{}, 0, newFieldError(KindInvalidField, FieldExtSize)
	}
}

// readExtHeader23 reads the v2.3 extended header: a 4-byte size (not
// synchsafe in this version), a 2-byte flags field, a 4-byte padding
// size, and, if the CRC flag is set, a 4-byte CRC.
func readExtHeader23(r io.Reader) (ExtHeader, int, error) {
	var head [10]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return ExtHeader{}, 0, wrapError(KindIO, err, "ext header (2.3)")
	}

	size := u32be(head[0:4])
	flags := head[4]
	padding := u32be(head[6:10])

	ext := ExtHeader{
		Size:        int(size) + 4, // the size field itself isn't counted in "size"
		PaddingSize: padding,
		CRCPresent:  flags&0x80 != 0,
	}

	consumed := 10
	if ext.CRCPresent {
		var crc [4]byte
		if _, err := io.ReadFull(r, crc[:]); err != nil {
			return ExtHeader{}, 0, wrapError(KindIO, err, "ext header crc (2.3)")
		}
		ext.CRC = uint64(u32be(crc[:]))
		consumed += 4
	}

	return ext, consumed, nil
}

// readExtHeader24 reads the v2.4 extended header: a synchsafe 4-byte
// size, a flag-byte count (always 1), a single flags byte, and then
// one length-prefixed data block per set flag bit (tag-is-update, CRC,
// then restrictions, in that bit order).
func readExtHeader24(r io.Reader) (ExtHeader, int, error) {
	var head [6]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return ExtHeader{}, 0, wrapError(KindIO, err, "ext header (2.4)")
	}

	for _, c := range head[0:4] {
		if c&0x80 != 0 {
			return ExtHeader{}, 0, newFieldError(KindInvalidField, FieldExtSize)
		}
	}
	size := synchsafe(head[0:4])

	if head[4] != 1 {
		return ExtHeader{}, 0, newFieldError(KindInvalidField, FieldExtFlagSize)
	}
	flags := head[5]
	if flags&^0x70 != 0 {
		return ExtHeader{}, 0, newFieldError(KindInvalidField, FieldExtFlagData)
	}

	ext := ExtHeader{Size: int(size)}
	consumed := 6

	if flags&0x40 != 0 { // tag is an update
		var n [1]byte
		if _, err := io.ReadFull(r, n[:]); err != nil {
			return ExtHeader{}, 0, wrapError(KindIO, err, "ext header update flag (2.4)")
		}
		if n[0] != 0 {
			return ExtHeader{}, 0, newFieldError(KindInvalidField, FieldExtFlagSize)
		}
		ext.TagIsUpdate = true
		consumed++
	}

	if flags&0x20 != 0 { // CRC present
		var lenByte [1]byte
		if _, err := io.ReadFull(r, lenByte[:]); err != nil {
			return ExtHeader{}, 0, wrapError(KindIO, err, "ext header crc length (2.4)")
		}
		if lenByte[0] != 5 {
			return ExtHeader{}, 0, newFieldError(KindInvalidField, FieldExtFlagSize)
		}
		var crc [5]byte
		if _, err := io.ReadFull(r, crc[:]); err != nil {
			return ExtHeader{}, 0, wrapError(KindIO, err, "ext header crc (2.4)")
		}
		for _, c := range crc {
			if c&0x80 != 0 {
				return ExtHeader{}, 0, newFieldError(KindInvalidField, FieldExtFlagData)
			}
		}
		ext.CRCPresent = true
		ext.CRC = synchsafe64(crc[:])
		consumed += 1 + 5
	}

	if flags&0x10 != 0 { // restrictions present
		var lenByte [1]byte
		if _, err := io.ReadFull(r, lenByte[:]); err != nil {
			return ExtHeader{}, 0, wrapError(KindIO, err, "ext header restrictions length (2.4)")
		}
		if lenByte[0] != 1 {
			return ExtHeader{}, 0, newFieldError(KindInvalidField, FieldExtFlagSize)
		}
		var b [1]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return ExtHeader{}, 0, wrapError(KindIO, err, "ext header restrictions (2.4)")
		}
		restr := decodeRestrictions(b[0])
		ext.Restrictions = &restr
		consumed += 1 + 1
	}

	return ext, consumed, nil
}

func u32be(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// TagSizeRestriction is the %xx tag-size restriction reported by a
// v2.4 extended header's restrictions byte.
type TagSizeRestriction uint8

const (
	TagSizeMax128Frames1MB  TagSizeRestriction = iota // 00
	TagSizeMax64Frames128KB                           // 01
	TagSizeMax32Frames40KB                            // 10
	TagSizeMax32Frames4KB                             // 11
)

// TextEncodingRestriction is the restrictions byte's single-bit text
// encoding restriction.
type TextEncodingRestriction uint8

const (
	TextEncodingUnrestricted      TextEncodingRestriction = iota // 0
	TextEncodingLatin1OrUTF8Only                                 // 1
)

// TextFieldSizeRestriction is the restrictions byte's text field
// length restriction.
type TextFieldSizeRestriction uint8

const (
	TextFieldSizeUnrestricted TextFieldSizeRestriction = iota // 00
	TextFieldSizeMax1024                                      // 01
	TextFieldSizeMax128                                       // 10
	TextFieldSizeMax30                                        // 11
)

// ImageEncodingRestriction is the restrictions byte's single-bit image
// encoding restriction.
type ImageEncodingRestriction uint8

const (
	ImageEncodingUnrestricted ImageEncodingRestriction = iota // 0
	ImageEncodingPNGOrJPEGOnly                                // 1
)

// ImageSizeRestriction is the restrictions byte's image dimension
// restriction.
type ImageSizeRestriction uint8

const (
	ImageSizeUnrestricted ImageSizeRestriction = iota // 00
	ImageSizeMax256                                   // 01
	ImageSizeMax64                                    // 10
	ImageSizeExactly64                                // 11
)

// Restrictions decomposes the v2.4 extended header's single
// restrictions byte (ID3v2.4 section 3.4) into its five independent
// fields.
type Restrictions struct {
	TagSize       TagSizeRestriction
	TextEncoding  TextEncodingRestriction
	TextFieldSize TextFieldSizeRestriction
	ImageEncoding ImageEncodingRestriction
	ImageSize     ImageSizeRestriction
}

// verifyCRC compares an extended header's CRC field (v2.3's 32-bit or
// v2.4's 35-bit value) against the
// IEEE CRC-32 of the tag's frame area, failing decode early if the tag
// was corrupted or truncated in transit.
//
// Grounded on stef824-id3's v24.go CRC check (decode, then
// crc32.ChecksumIEEE, then compare) rather than the teacher, which
// never reads the extended header's CRC bit at all.
func verifyCRC(want uint64, body []byte) error {
	got := uint64(crc32.ChecksumIEEE(body))
	if got != want {
		return newFieldError(KindInvalidField, FieldExtFlagData)
	}
	return nil
}

func decodeRestrictions(b byte) Restrictions {
	return Restrictions{
		TagSize:       TagSizeRestriction((b >> 6) & 0x03),
		TextEncoding:  TextEncodingRestriction((b >> 5) & 0x01),
		TextFieldSize: TextFieldSizeRestriction((b >> 3) & 0x03),
		ImageEncoding: ImageEncodingRestriction((b >> 2) & 0x01),
		ImageSize:     ImageSizeRestriction(b & 0x03),
	}
}
