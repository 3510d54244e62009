package id3v2

// UnknownContent holds the raw body of any frame id this package has
// no specific decoder for, or whose Encryption flag left it opaque
// (decrypting requires out-of-band key material an ENCR registration
// only names, never carries).
type UnknownContent struct {
	Data []byte
}

func (UnknownContent) frameContent() {}

func (c UnknownContent) IntoOwned() Content {
	data := make([]byte, len(c.Data))
	copy(data, c.Data)
	c.Data = data
	return c
}

func decodeUnknownContent(d *decoder) (UnknownContent, error) {
	return UnknownContent{Data: d.rest()}, nil
}

// UniqueFileIDContent is UFID: an owner-namespaced binary identifier,
// such as a MusicBrainz recording id.
type UniqueFileIDContent struct {
	Owner      string
	Identifier []byte
}

func (UniqueFileIDContent) frameContent() {}

func (c UniqueFileIDContent) IntoOwned() Content {
	id := make([]byte, len(c.Identifier))
	copy(id, c.Identifier)
	c.Identifier = id
	return c
}

func decodeUniqueFileIDContent(d *decoder) (UniqueFileIDContent, error) {
	owner, err := d.latin1Terminated()
	if err != nil {
		return UniqueFileIDContent{}, err
	}
	return UniqueFileIDContent{Owner: owner, Identifier: d.rest()}, nil
}

// PrivateContent is PRIV: an owner-namespaced application-private
// binary blob.
type PrivateContent struct {
	Owner string
	Data  []byte
}

func (PrivateContent) frameContent() {}

func (c PrivateContent) IntoOwned() Content {
	data := make([]byte, len(c.Data))
	copy(data, c.Data)
	c.Data = data
	return c
}

func decodePrivateContent(d *decoder) (PrivateContent, error) {
	owner, err := d.latin1Terminated()
	if err != nil {
		return PrivateContent{}, err
	}
	return PrivateContent{Owner: owner, Data: d.rest()}, nil
}

// MusicCDIDContent is MCDI: the raw table-of-contents bytes from a
// CD-DA TOC, copied verbatim from the disc.
type MusicCDIDContent struct {
	TOC []byte
}

func (MusicCDIDContent) frameContent() {}

func (c MusicCDIDContent) IntoOwned() Content {
	toc := make([]byte, len(c.TOC))
	copy(toc, c.TOC)
	c.TOC = toc
	return c
}

func decodeMusicCDIDContent(d *decoder) (MusicCDIDContent, error) {
	return MusicCDIDContent{TOC: d.rest()}, nil
}

// PlayCounterContent is PCNT: a monotonically increasing play count
// that grows past 32 bits rather than wrapping, per the format's own
// note; stored here as the widest integer the decoder cursor
// supports.
type PlayCounterContent struct {
	Count uint64
}

func (PlayCounterContent) frameContent() {}

func (c PlayCounterContent) IntoOwned() Content { return c }

func decodePlayCounterContent(d *decoder) (PlayCounterContent, error) {
	return PlayCounterContent{Count: d.varint()}, nil
}

// PopularimeterContent is POPM: a per-user star rating plus an
// optional play counter, namespaced by the rating software's email
// address.
type PopularimeterContent struct {
	Email  string
	Rating byte // 1-255, 0 means unset
	Count  uint64
}

func (PopularimeterContent) frameContent() {}

func (c PopularimeterContent) IntoOwned() Content { return c }

func decodePopularimeterContent(d *decoder) (PopularimeterContent, error) {
	email, err := d.latin1Terminated()
	if err != nil {
		return PopularimeterContent{}, err
	}
	rating, err := d.byte()
	if err != nil {
		return PopularimeterContent{}, err
	}
	return PopularimeterContent{Email: email, Rating: rating, Count: d.varint()}, nil
}

// EventTimingEntry is one (type, timestamp) pair within ETCO.
type EventTimingEntry struct {
	Type      byte
	Timestamp uint32
}

// EventTimingContent is ETCO: a sequence of event markers (intro
// start, outro start, and so on) at given timestamps.
type EventTimingContent struct {
	TimestampFormat TimestampFormat
	Events          []EventTimingEntry
}

func (EventTimingContent) frameContent() {}

func (c EventTimingContent) IntoOwned() Content { return c }

func decodeEventTimingContent(d *decoder) (EventTimingContent, error) {
	tf, err := d.byte()
	if err != nil {
		return EventTimingContent{}, err
	}
	if !TimestampFormat(tf).Valid() {
		return EventTimingContent{}, newError(KindInvalidFrameData)
	}

	var events []EventTimingEntry
	for d.remaining() > 0 {
		typ, err := d.byte()
		if err != nil {
			return EventTimingContent{}, err
		}
		ts, err := d.u32()
		if err != nil {
			return EventTimingContent{}, err
		}
		events = append(events, EventTimingEntry{Type: typ, Timestamp: ts})
	}

	return EventTimingContent{TimestampFormat: TimestampFormat(tf), Events: events}, nil
}

// SyncedTempoCodesContent is SYTC: raw tempo-change data, a sequence
// the format defines bit-for-bit but which carries no text to decode;
// kept as opaque bytes alongside the leading timestamp format.
type SyncedTempoCodesContent struct {
	TimestampFormat TimestampFormat
	Data            []byte
}

func (SyncedTempoCodesContent) frameContent() {}

func (c SyncedTempoCodesContent) IntoOwned() Content {
	data := make([]byte, len(c.Data))
	copy(data, c.Data)
	c.Data = data
	return c
}

func decodeSyncedTempoCodesContent(d *decoder) (SyncedTempoCodesContent, error) {
	tf, err := d.byte()
	if err != nil {
		return SyncedTempoCodesContent{}, err
	}
	if !TimestampFormat(tf).Valid() {
		return SyncedTempoCodesContent{}, newError(KindInvalidFrameData)
	}
	return SyncedTempoCodesContent{TimestampFormat: TimestampFormat(tf), Data: d.rest()}, nil
}

// MPEGLocationLookupContent is MLLT: a seek table mapping playback
// position to byte/frame offsets. The reference values are fixed
// fields; the table itself is a bitpacked sequence this package does
// not unpack field-by-field, kept as opaque bytes.
type MPEGLocationLookupContent struct {
	FramesBetweenReference uint16
	BytesBetweenReference  uint32
	MSBetweenReference     uint32
	BitsForBytesDeviation  byte
	BitsForMSDeviation     byte
	Table                  []byte
}

func (MPEGLocationLookupContent) frameContent() {}

func (c MPEGLocationLookupContent) IntoOwned() Content {
	table := make([]byte, len(c.Table))
	copy(table, c.Table)
	c.Table = table
	return c
}

func decodeMPEGLocationLookupContent(d *decoder) (MPEGLocationLookupContent, error) {
	fb, err := d.take(2)
	if err != nil {
		return MPEGLocationLookupContent{}, err
	}
	bb, err := d.u24()
	if err != nil {
		return MPEGLocationLookupContent{}, err
	}
	mb, err := d.u24()
	if err != nil {
		return MPEGLocationLookupContent{}, err
	}
	bitsBytes, err := d.byte()
	if err != nil {
		return MPEGLocationLookupContent{}, err
	}
	bitsMS, err := d.byte()
	if err != nil {
		return MPEGLocationLookupContent{}, err
	}
	return MPEGLocationLookupContent{
		FramesBetweenReference: uint16(fb[0])<<8 | uint16(fb[1]),
		BytesBetweenReference:  bb,
		MSBetweenReference:     mb,
		BitsForBytesDeviation:  bitsBytes,
		BitsForMSDeviation:     bitsMS,
		Table:                  d.rest(),
	}, nil
}

// EncryptionMethodContent is ENCR: registers a symbol for an
// encryption method an ENCR-flagged frame's body refers to.
type EncryptionMethodContent struct {
	Owner        string
	MethodSymbol byte
	Data         []byte
}

func (EncryptionMethodContent) frameContent() {}

func (c EncryptionMethodContent) IntoOwned() Content {
	data := make([]byte, len(c.Data))
	copy(data, c.Data)
	c.Data = data
	return c
}

func decodeEncryptionMethodContent(d *decoder) (EncryptionMethodContent, error) {
	owner, err := d.latin1Terminated()
	if err != nil {
		return EncryptionMethodContent{}, err
	}
	symbol, err := d.byte()
	if err != nil {
		return EncryptionMethodContent{}, err
	}
	return EncryptionMethodContent{Owner: owner, MethodSymbol: symbol, Data: d.rest()}, nil
}

// GroupIDRegistrationContent is GRID: registers a symbol used by the
// GroupingIdentity frame flag to tag a set of frames as belonging
// together.
type GroupIDRegistrationContent struct {
	Owner       string
	GroupSymbol byte
	Data        []byte
}

func (GroupIDRegistrationContent) frameContent() {}

func (c GroupIDRegistrationContent) IntoOwned() Content {
	data := make([]byte, len(c.Data))
	copy(data, c.Data)
	c.Data = data
	return c
}

func decodeGroupIDRegistrationContent(d *decoder) (GroupIDRegistrationContent, error) {
	owner, err := d.latin1Terminated()
	if err != nil {
		return GroupIDRegistrationContent{}, err
	}
	symbol, err := d.byte()
	if err != nil {
		return GroupIDRegistrationContent{}, err
	}
	return GroupIDRegistrationContent{Owner: owner, GroupSymbol: symbol, Data: d.rest()}, nil
}

// LinkedInfoContent is LINK: a pointer to a frame's content stored in
// another file.
type LinkedInfoContent struct {
	FrameID        FrameID
	URL            string
	AdditionalData []byte
}

func (LinkedInfoContent) frameContent() {}

func (c LinkedInfoContent) IntoOwned() Content {
	data := make([]byte, len(c.AdditionalData))
	copy(data, c.AdditionalData)
	c.AdditionalData = data
	return c
}

func decodeLinkedInfoContent(d *decoder) (LinkedInfoContent, error) {
	idWidth := 3
	if d.version != Version2_2 {
		idWidth = 4
	}
	idBytes, err := d.take(idWidth)
	if err != nil {
		return LinkedInfoContent{}, err
	}

	var id FrameID
	if idWidth == 3 {
		id, err = parseFrameID3(idBytes)
	} else {
		id, err = parseFrameID4(idBytes)
	}
	if err != nil {
		return LinkedInfoContent{}, err
	}

	url, err := d.latin1Terminated()
	if err != nil {
		return LinkedInfoContent{}, err
	}

	return LinkedInfoContent{FrameID: id, URL: url, AdditionalData: d.rest()}, nil
}

// OwnershipContent is OWNE: records the purchase of the file.
type OwnershipContent struct {
	Encoding    Encoding
	PricePaid   string
	DateOfPurch Date
	Seller      string
}

func (OwnershipContent) frameContent() {}

func (c OwnershipContent) IntoOwned() Content { return c }

func decodeOwnershipContent(d *decoder) (OwnershipContent, error) {
	enc, err := d.encodingByte()
	if err != nil {
		return OwnershipContent{}, err
	}
	price, err := d.latin1Terminated()
	if err != nil {
		return OwnershipContent{}, err
	}
	dateBytes, err := d.take(8)
	if err != nil {
		return OwnershipContent{}, err
	}
	date, err := decodeDate(dateBytes)
	if err != nil {
		return OwnershipContent{}, err
	}
	seller, err := d.fullString()
	if err != nil {
		return OwnershipContent{}, err
	}
	return OwnershipContent{Encoding: enc, PricePaid: price, DateOfPurch: date, Seller: seller}, nil
}

// PositionSyncContent is POSS: the current reading position within
// the file, in the units TimestampFormat names.
type PositionSyncContent struct {
	TimestampFormat TimestampFormat
	Position        uint64
}

func (PositionSyncContent) frameContent() {}

func (c PositionSyncContent) IntoOwned() Content { return c }

func decodePositionSyncContent(d *decoder) (PositionSyncContent, error) {
	tf, err := d.byte()
	if err != nil {
		return PositionSyncContent{}, err
	}
	if !TimestampFormat(tf).Valid() {
		return PositionSyncContent{}, newError(KindInvalidFrameData)
	}
	return PositionSyncContent{TimestampFormat: TimestampFormat(tf), Position: d.varint()}, nil
}

// RecommendedBufferSizeContent is RBUF: a hint for how large a
// playback buffer to reserve, plus an optional offset to the next
// embedded-info flag byte in a streamed file.
type RecommendedBufferSizeContent struct {
	BufferSize        uint32
	EmbeddedInfoFlag  bool
	OffsetToNextFlag  uint32
}

func (RecommendedBufferSizeContent) frameContent() {}

func (c RecommendedBufferSizeContent) IntoOwned() Content { return c }

func decodeRecommendedBufferSizeContent(d *decoder) (RecommendedBufferSizeContent, error) {
	size, err := d.u24()
	if err != nil {
		return RecommendedBufferSizeContent{}, err
	}
	flag, err := d.byte()
	if err != nil {
		return RecommendedBufferSizeContent{}, err
	}
	c := RecommendedBufferSizeContent{BufferSize: size, EmbeddedInfoFlag: flag != 0}
	if d.remaining() > 0 {
		offset, err := d.u32()
		if err != nil {
			return RecommendedBufferSizeContent{}, err
		}
		c.OffsetToNextFlag = offset
	}
	return c, nil
}

// VolumeAdjustmentChannel is one channel's entry within RVA2.
type VolumeAdjustmentChannel struct {
	Channel      byte
	AdjustmentDB float64 // encoded in 1/512 dB units
	PeakBits     byte
	Peak         []byte
}

// RelativeVolumeContent is RVA2: per-channel volume adjustments
// relative to the track's normal playback level.
type RelativeVolumeContent struct {
	Identification string
	Channels       []VolumeAdjustmentChannel
}

func (RelativeVolumeContent) frameContent() {}

func (c RelativeVolumeContent) IntoOwned() Content {
	channels := make([]VolumeAdjustmentChannel, len(c.Channels))
	for i, ch := range c.Channels {
		peak := make([]byte, len(ch.Peak))
		copy(peak, ch.Peak)
		ch.Peak = peak
		channels[i] = ch
	}
	c.Channels = channels
	return c
}

func decodeRelativeVolumeContent(d *decoder) (RelativeVolumeContent, error) {
	id, err := d.latin1Terminated()
	if err != nil {
		return RelativeVolumeContent{}, err
	}

	var channels []VolumeAdjustmentChannel
	for d.remaining() > 0 {
		ch, err := d.byte()
		if err != nil {
			return RelativeVolumeContent{}, err
		}
		adjBytes, err := d.take(2)
		if err != nil {
			return RelativeVolumeContent{}, err
		}
		adj := int16(uint16(adjBytes[0])<<8 | uint16(adjBytes[1]))
		bits, err := d.byte()
		if err != nil {
			return RelativeVolumeContent{}, err
		}
		peak, err := d.take((int(bits) + 7) / 8)
		if err != nil {
			return RelativeVolumeContent{}, err
		}
		channels = append(channels, VolumeAdjustmentChannel{
			Channel:      ch,
			AdjustmentDB: float64(adj) / 512.0,
			PeakBits:     bits,
			Peak:         peak,
		})
	}

	return RelativeVolumeContent{Identification: id, Channels: channels}, nil
}

// ReverbContent is RVRB: reverb timing and feedback parameters.
type ReverbContent struct {
	ReverbLeftMS    uint16
	ReverbRightMS   uint16
	FeedbackLeft2L  byte
	FeedbackLeft2R  byte
	FeedbackRight2R byte
	FeedbackRight2L byte
	PremixLeft2R    byte
	PremixRight2L   byte
}

func (ReverbContent) frameContent() {}

func (c ReverbContent) IntoOwned() Content { return c }

func decodeReverbContent(d *decoder) (ReverbContent, error) {
	b, err := d.take(12)
	if err != nil {
		return ReverbContent{}, err
	}
	return ReverbContent{
		ReverbLeftMS:    uint16(b[0])<<8 | uint16(b[1]),
		ReverbRightMS:   uint16(b[2])<<8 | uint16(b[3]),
		FeedbackLeft2L:  b[4],
		FeedbackLeft2R:  b[5],
		FeedbackRight2R: b[6],
		FeedbackRight2L: b[7],
		PremixLeft2R:    b[10],
		PremixRight2L:   b[11],
	}, nil
}

// LegacyVolumeAdjustmentContent covers the v2.2 RVA, v2.3 RVAD and
// EQUA frames and the v2.4 EQU2 frame. Each encodes a table of
// per-frequency-band or per-channel adjustments; this package keeps
// their bodies as opaque bytes and does not unpack the table.
type LegacyVolumeAdjustmentContent struct {
	Data []byte
}

func (LegacyVolumeAdjustmentContent) frameContent() {}

func (c LegacyVolumeAdjustmentContent) IntoOwned() Content {
	data := make([]byte, len(c.Data))
	copy(data, c.Data)
	c.Data = data
	return c
}

func decodeLegacyVolumeAdjustmentContent(d *decoder) (LegacyVolumeAdjustmentContent, error) {
	return LegacyVolumeAdjustmentContent{Data: d.rest()}, nil
}

// AudioEncryptionContent is AENC: marks a range of the audio itself
// as encrypted and names the owner registration describing how.
type AudioEncryptionContent struct {
	Owner          string
	PreviewStart   uint16
	PreviewLength  uint16
	EncryptionInfo []byte
}

func (AudioEncryptionContent) frameContent() {}

func (c AudioEncryptionContent) IntoOwned() Content {
	info := make([]byte, len(c.EncryptionInfo))
	copy(info, c.EncryptionInfo)
	c.EncryptionInfo = info
	return c
}

func decodeAudioEncryptionContent(d *decoder) (AudioEncryptionContent, error) {
	owner, err := d.latin1Terminated()
	if err != nil {
		return AudioEncryptionContent{}, err
	}
	startBytes, err := d.take(2)
	if err != nil {
		return AudioEncryptionContent{}, err
	}
	lenBytes, err := d.take(2)
	if err != nil {
		return AudioEncryptionContent{}, err
	}
	return AudioEncryptionContent{
		Owner:          owner,
		PreviewStart:   uint16(startBytes[0])<<8 | uint16(startBytes[1]),
		PreviewLength:  uint16(lenBytes[0])<<8 | uint16(lenBytes[1]),
		EncryptionInfo: d.rest(),
	}, nil
}

// CommercialContent is COMR: an offer to buy the recording, including
// an optional embedded seller logo image.
type CommercialContent struct {
	Encoding     Encoding
	PriceString  string
	ValidUntil   Date
	ContactURL   string
	ReceivedAs   byte
	SellerName   string
	Description  string
	PictureMIME  string
	PictureData  []byte
}

func (CommercialContent) frameContent() {}

func (c CommercialContent) IntoOwned() Content {
	data := make([]byte, len(c.PictureData))
	copy(data, c.PictureData)
	c.PictureData = data
	return c
}

func decodeCommercialContent(d *decoder) (CommercialContent, error) {
	enc, err := d.encodingByte()
	if err != nil {
		return CommercialContent{}, err
	}
	price, err := d.latin1Terminated()
	if err != nil {
		return CommercialContent{}, err
	}
	dateBytes, err := d.take(8)
	if err != nil {
		return CommercialContent{}, err
	}
	date, err := decodeDate(dateBytes)
	if err != nil {
		return CommercialContent{}, err
	}
	url, err := d.latin1Terminated()
	if err != nil {
		return CommercialContent{}, err
	}
	receivedAs, err := d.byte()
	if err != nil {
		return CommercialContent{}, err
	}
	seller, err := d.terminatedString()
	if err != nil {
		return CommercialContent{}, err
	}
	desc, err := d.terminatedString()
	if err != nil {
		return CommercialContent{}, err
	}

	c := CommercialContent{
		Encoding:    enc,
		PriceString: price,
		ValidUntil:  date,
		ContactURL:  url,
		ReceivedAs:  receivedAs,
		SellerName:  seller,
		Description: desc,
	}
	if d.remaining() > 0 {
		mime, err := d.latin1Terminated()
		if err != nil {
			return CommercialContent{}, err
		}
		c.PictureMIME = mime
		c.PictureData = d.rest()
	}
	return c, nil
}
