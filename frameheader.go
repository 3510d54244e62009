package id3v2

import "encoding/binary"

// FrameID is a frame identifier packed big-endian into a uint32, the
// way the v2.3/v2.4 format lays out its four-character identifiers. A
// v2.2 three-character identifier is represented with its unused top
// byte left zero.
//
// Grounded on the teacher's FrameID, extended down to v2.2's 3-byte
// identifiers (which the teacher never parsed on their own terms,
// only tolerated as a common mis-encoding of v2.3).
type FrameID uint32

// rawString renders id as its 3- or 4-character text form with no
// description lookup, used as the fallback case of the generated
// FrameID.String (see frame_ids.go) for ids this package doesn't
// recognize.
func (id FrameID) rawString() string {
	buf := [4]byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
	if buf[0] == 0 {
		return string(buf[1:])
	}
	return string(buf[:])
}

func validIDByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func parseFrameID3(b []byte) (FrameID, error) {
	if !validIDByte(b[0]) || !validIDByte(b[1]) || !validIDByte(b[2]) {
		return 0, ErrInvalidFrameID
	}
	return FrameID(b[0])<<16 | FrameID(b[1])<<8 | FrameID(b[2]), nil
}

func parseFrameID4(b []byte) (FrameID, error) {
	for _, c := range b[:4] {
		if !validIDByte(c) {
			return 0, ErrInvalidFrameID
		}
	}
	return FrameID(binary.BigEndian.Uint32(b)), nil
}

// FrameFlags are the frame-header flag bits. Which fields are
// meaningful, and which byte/bit they occupy, differs between v2.3
// and v2.4 (v2.2 has no frame flags at all); Raw preserves the
// original two bytes verbatim for callers that need them.
type FrameFlags struct {
	Raw uint16

	TagAlterPreservation  bool
	FileAlterPreservation bool
	ReadOnly              bool

	Compression      bool
	Encryption       bool
	GroupingIdentity bool

	// v2.4 only.
	Unsynchronisation   bool
	DataLengthIndicator bool
}

func decodeFrameFlags23(raw uint16) (FrameFlags, error) {
	hi, lo := byte(raw>>8), byte(raw)
	if hi&0x1f != 0 || lo&0x1f != 0 {
		return FrameFlags{}, newError(KindInvalidBitFlag)
	}
	return FrameFlags{
		Raw:                   raw,
		TagAlterPreservation:  hi&0x80 != 0,
		FileAlterPreservation: hi&0x40 != 0,
		ReadOnly:              hi&0x20 != 0,
		Compression:           lo&0x80 != 0,
		Encryption:            lo&0x40 != 0,
		GroupingIdentity:      lo&0x20 != 0,
	}, nil
}

func decodeFrameFlags24(raw uint16) (FrameFlags, error) {
	hi, lo := byte(raw>>8), byte(raw)
	if hi&0x8f != 0 || lo&0xb0 != 0 {
		return FrameFlags{}, newError(KindInvalidBitFlag)
	}

	f := FrameFlags{
		Raw:                   raw,
		TagAlterPreservation:  hi&0x40 != 0,
		FileAlterPreservation: hi&0x20 != 0,
		ReadOnly:              hi&0x10 != 0,
		GroupingIdentity:      lo&0x40 != 0,
		Compression:           lo&0x08 != 0,
		Encryption:            lo&0x04 != 0,
		Unsynchronisation:     lo&0x02 != 0,
		DataLengthIndicator:   lo&0x01 != 0,
	}
	if f.Compression && !f.DataLengthIndicator {
		return FrameFlags{}, newError(KindInvalidBitFlag)
	}
	return f, nil
}

// FrameExtras holds the optional per-frame fields that, when present,
// sit between the frame header's flag bytes and its content: the
// compressed frame's decompressed-size prefix, an encryption method
// byte, and a grouping identifier byte. Their presence and byte order
// differ between v2.3 and v2.4 (readFrameExtras23/24); a zero value
// with its Has* bit unset means the corresponding flag wasn't set.
type FrameExtras struct {
	HasDecompressedSize bool
	DecompressedSize    uint32

	HasEncryptionMethod bool
	EncryptionMethod    byte

	HasGroupID bool
	GroupID    byte
}

// size reports how many bytes the present extras occupy on the wire.
func (e FrameExtras) size() int {
	n := 0
	if e.HasDecompressedSize {
		n += 4
	}
	if e.HasEncryptionMethod {
		n++
	}
	if e.HasGroupID {
		n++
	}
	return n
}

// FrameHeader is a single frame's header, normalized across the three
// on-wire shapes (v2.2's 3+3 bytes, v2.3's 4+4+2[+extras], v2.4's
// 4+synchsafe-4+2[+extras]) into one version-independent type.
type FrameHeader struct {
	ID     FrameID
	Size   uint32 // frame content size in bytes: the on-wire descriptor minus Extras.size()
	Flags  FrameFlags
	Extras FrameExtras
}

// readFrameExtras23 reads the v2.3 extras block, present in this
// fixed order per set flag: a 4-byte decompressed size (Compression),
// a 1-byte encryption method (Encryption), a 1-byte group id
// (GroupingIdentity).
func readFrameExtras23(b []byte, flags FrameFlags) (FrameExtras, int, error) {
	var e FrameExtras
	n := 0

	if flags.Compression {
		if len(b) < n+4 {
			return FrameExtras{}, 0, newError(KindIO)
		}
		e.HasDecompressedSize = true
		e.DecompressedSize = u32be(b[n : n+4])
		n += 4
	}
	if flags.Encryption {
		if len(b) < n+1 {
			return FrameExtras{}, 0, newError(KindIO)
		}
		e.HasEncryptionMethod = true
		e.EncryptionMethod = b[n]
		n++
	}
	if flags.GroupingIdentity {
		if len(b) < n+1 {
			return FrameExtras{}, 0, newError(KindIO)
		}
		e.HasGroupID = true
		e.GroupID = b[n]
		n++
	}

	return e, n, nil
}

// readFrameExtras24 reads the v2.4 extras block, present in this fixed
// order per set flag: a 1-byte group id (GroupingIdentity), a 1-byte
// encryption method (Encryption), a synchsafe 4-byte data length
// indicator (DataLengthIndicator).
func readFrameExtras24(b []byte, flags FrameFlags) (FrameExtras, int, error) {
	var e FrameExtras
	n := 0

	if flags.GroupingIdentity {
		if len(b) < n+1 {
			return FrameExtras{}, 0, newError(KindIO)
		}
		e.HasGroupID = true
		e.GroupID = b[n]
		n++
	}
	if flags.Encryption {
		if len(b) < n+1 {
			return FrameExtras{}, 0, newError(KindIO)
		}
		e.HasEncryptionMethod = true
		e.EncryptionMethod = b[n]
		n++
	}
	if flags.DataLengthIndicator {
		if len(b) < n+4 {
			return FrameExtras{}, 0, newError(KindIO)
		}
		for _, c := range b[n : n+4] {
			if c&0x80 != 0 {
				return FrameExtras{}, 0, newError(KindInvalidFrameData)
			}
		}
		e.HasDecompressedSize = true
		e.DecompressedSize = synchsafe(b[n : n+4])
		n += 4
	}

	return e, n, nil
}

// readFrameHeader22 parses a v2.2 frame header: a 3-byte identifier
// followed by a 3-byte big-endian (not synchsafe) size. v2.2 has no
// frame flags.
func readFrameHeader22(b []byte) (FrameHeader, int, error) {
	if len(b) < 6 {
		return FrameHeader{}, 0, newError(KindIO)
	}
	id, err := parseFrameID3(b[0:3])
	if err != nil {
		return FrameHeader{}, 0, err
	}
	return FrameHeader{ID: id, Size: u24(b[3:6])}, 6, nil
}

// readFrameHeader23 parses a v2.3 frame header: a 4-byte identifier, a
// 4-byte big-endian (not synchsafe) size, 2 flag bytes, and any extras
// the flags call for. The returned Size and consumed width both
// account for the extras block, so callers never see it as part of
// the frame's content.
func readFrameHeader23(b []byte) (FrameHeader, int, error) {
	if len(b) < 10 {
		return FrameHeader{}, 0, newError(KindIO)
	}
	id, err := parseFrameID4(b[0:4])
	if err != nil {
		return FrameHeader{}, 0, err
	}
	descriptor := u32be(b[4:8])
	flags, err := decodeFrameFlags23(binary.BigEndian.Uint16(b[8:10]))
	if err != nil {
		return FrameHeader{}, 0, err
	}

	extras, extrasLen, err := readFrameExtras23(b[10:], flags)
	if err != nil {
		return FrameHeader{}, 0, err
	}
	if uint32(extrasLen) > descriptor {
		return FrameHeader{}, 0, newError(KindInvalidFrameData)
	}

	return FrameHeader{
		ID:     id,
		Size:   descriptor - uint32(extrasLen),
		Flags:  flags,
		Extras: extras,
	}, 10 + extrasLen, nil
}

// readFrameHeader24 parses a v2.4 frame header: a 4-byte identifier, a
// synchsafe 4-byte size, 2 flag bytes, and any extras the flags call
// for. The returned Size and consumed width both account for the
// extras block, so callers never see it as part of the frame's
// content.
func readFrameHeader24(b []byte) (FrameHeader, int, error) {
	if len(b) < 10 {
		return FrameHeader{}, 0, newError(KindIO)
	}
	id, err := parseFrameID4(b[0:4])
	if err != nil {
		return FrameHeader{}, 0, err
	}
	for _, c := range b[4:8] {
		if c&0x80 != 0 {
			return FrameHeader{}, 0, newError(KindInvalidFrameData)
		}
	}
	descriptor := synchsafe(b[4:8])
	flags, err := decodeFrameFlags24(binary.BigEndian.Uint16(b[8:10]))
	if err != nil {
		return FrameHeader{}, 0, err
	}

	extras, extrasLen, err := readFrameExtras24(b[10:], flags)
	if err != nil {
		return FrameHeader{}, 0, err
	}
	if uint32(extrasLen) > descriptor {
		return FrameHeader{}, 0, newError(KindInvalidFrameData)
	}

	return FrameHeader{
		ID:     id,
		Size:   descriptor - uint32(extrasLen),
		Flags:  flags,
		Extras: extras,
	}, 10 + extrasLen, nil
}

// readFrameHeader dispatches to the version-specific frame header
// reader.
func readFrameHeader(version Version, b []byte) (FrameHeader, int, error) {
	switch version {
	case Version2_2:
		return readFrameHeader22(b)
	case Version2_3:
		return readFrameHeader23(b)
	case Version2_4:
		return readFrameHeader24(b)
	default:
		return FrameHeader{}, 0, newFieldError(KindInvalidVersion, FieldVersion)
	}
}
