package id3v2

// CommentContent is COMM: a short description plus a longer comment
// body, both in the frame's own encoding, qualified by a language
// code.
//
// Grounded on moshee-sound's COMM decode (language skip, then a
// terminated description, then the remainder as the comment text).
type CommentContent struct {
	Encoding    Encoding
	Language    Language
	Description string
	Text        string
}

func (CommentContent) frameContent() {}

func (c CommentContent) IntoOwned() Content { return c }

func decodeCommentContent(d *decoder) (CommentContent, error) {
	enc, err := d.encodingByte()
	if err != nil {
		return CommentContent{}, err
	}
	langBytes, err := d.take(3)
	if err != nil {
		return CommentContent{}, err
	}
	lang, err := decodeLanguage(langBytes)
	if err != nil {
		return CommentContent{}, err
	}
	desc, err := d.terminatedString()
	if err != nil {
		return CommentContent{}, err
	}
	text, err := d.fullString()
	if err != nil {
		return CommentContent{}, err
	}
	return CommentContent{
		Encoding:    enc,
		Language:    lang,
		Description: desc,
		Text:        stripControlChars(text),
	}, nil
}

// UnsyncLyricsContent is USLT: unsynchronised (plain, non-karaoke)
// lyrics or transcription text. Same wire shape as COMM.
type UnsyncLyricsContent struct {
	Encoding    Encoding
	Language    Language
	Description string
	Text        string
}

func (UnsyncLyricsContent) frameContent() {}

func (c UnsyncLyricsContent) IntoOwned() Content { return c }

func decodeUnsyncLyricsContent(d *decoder) (UnsyncLyricsContent, error) {
	enc, err := d.encodingByte()
	if err != nil {
		return UnsyncLyricsContent{}, err
	}
	langBytes, err := d.take(3)
	if err != nil {
		return UnsyncLyricsContent{}, err
	}
	lang, err := decodeLanguage(langBytes)
	if err != nil {
		return UnsyncLyricsContent{}, err
	}
	desc, err := d.terminatedString()
	if err != nil {
		return UnsyncLyricsContent{}, err
	}
	text, err := d.fullString()
	if err != nil {
		return UnsyncLyricsContent{}, err
	}
	return UnsyncLyricsContent{
		Encoding:    enc,
		Language:    lang,
		Description: desc,
		Text:        stripControlChars(text),
	}, nil
}

// TermsOfUseContent is USER: a license/terms-of-use statement with no
// free-text description field.
type TermsOfUseContent struct {
	Encoding Encoding
	Language Language
	Text     string
}

func (TermsOfUseContent) frameContent() {}

func (c TermsOfUseContent) IntoOwned() Content { return c }

func decodeTermsOfUseContent(d *decoder) (TermsOfUseContent, error) {
	enc, err := d.encodingByte()
	if err != nil {
		return TermsOfUseContent{}, err
	}
	langBytes, err := d.take(3)
	if err != nil {
		return TermsOfUseContent{}, err
	}
	lang, err := decodeLanguage(langBytes)
	if err != nil {
		return TermsOfUseContent{}, err
	}
	text, err := d.fullString()
	if err != nil {
		return TermsOfUseContent{}, err
	}
	return TermsOfUseContent{Encoding: enc, Language: lang, Text: text}, nil
}

// SynchronisedLyricsContent is SYLT: time-tagged lyrics/text, a
// sequence of (text, timestamp) pairs.
type SynchronisedLyricsContent struct {
	Encoding        Encoding
	Language        Language
	TimestampFormat TimestampFormat
	ContentType     byte
	Descriptor      string
	Entries         []SyncedTextEntry
}

// SyncedTextEntry is one (text, timestamp) pair within SYLT.
type SyncedTextEntry struct {
	Text      string
	Timestamp uint32
}

func (SynchronisedLyricsContent) frameContent() {}

func (c SynchronisedLyricsContent) IntoOwned() Content { return c }

func decodeSynchronisedLyricsContent(d *decoder) (SynchronisedLyricsContent, error) {
	enc, err := d.encodingByte()
	if err != nil {
		return SynchronisedLyricsContent{}, err
	}
	langBytes, err := d.take(3)
	if err != nil {
		return SynchronisedLyricsContent{}, err
	}
	lang, err := decodeLanguage(langBytes)
	if err != nil {
		return SynchronisedLyricsContent{}, err
	}
	tf, err := d.byte()
	if err != nil {
		return SynchronisedLyricsContent{}, err
	}
	if !TimestampFormat(tf).Valid() {
		return SynchronisedLyricsContent{}, newError(KindInvalidFrameData)
	}
	ct, err := d.byte()
	if err != nil {
		return SynchronisedLyricsContent{}, err
	}
	desc, err := d.terminatedString()
	if err != nil {
		return SynchronisedLyricsContent{}, err
	}

	var entries []SyncedTextEntry
	for d.remaining() > 0 {
		text, err := d.terminatedString()
		if err != nil {
			return SynchronisedLyricsContent{}, err
		}
		ts, err := d.u32()
		if err != nil {
			return SynchronisedLyricsContent{}, err
		}
		entries = append(entries, SyncedTextEntry{Text: text, Timestamp: ts})
	}

	return SynchronisedLyricsContent{
		Encoding:        enc,
		Language:        lang,
		TimestampFormat: TimestampFormat(tf),
		ContentType:     ct,
		Descriptor:      desc,
		Entries:         entries,
	}, nil
}
