package id3v2

// ChapterContent is CHAP: a named time range within the audio,
// optionally carrying its own nested frames (a TIT2 chapter title,
// for instance).
//
// Sub-frame decoding always uses the enclosing tag's own version
// rather than guessing between v2.4 and v2.3 layouts, correcting an
// inconsistency in the implementation this package's CHAP/CTOC
// handling was ported from (see SPEC_FULL.md).
type ChapterContent struct {
	ElementID   string
	StartTimeMS uint32
	EndTimeMS   uint32
	StartOffset uint32 // 0xFFFFFFFF means "not used"; use StartTimeMS instead
	EndOffset   uint32
	SubFrames   Frames
}

func (ChapterContent) frameContent() {}

func (c ChapterContent) IntoOwned() Content {
	c.SubFrames = c.SubFrames.IntoOwned()
	return c
}

func decodeChapterContent(d *decoder) (ChapterContent, error) {
	id, err := d.latin1Terminated()
	if err != nil {
		return ChapterContent{}, err
	}
	startTime, err := d.u32()
	if err != nil {
		return ChapterContent{}, err
	}
	endTime, err := d.u32()
	if err != nil {
		return ChapterContent{}, err
	}
	startOffset, err := d.u32()
	if err != nil {
		return ChapterContent{}, err
	}
	endOffset, err := d.u32()
	if err != nil {
		return ChapterContent{}, err
	}

	var sub Frames
	if d.remaining() > 0 {
		sub, err = decodeEmbeddedFrames(d.version, d.rest())
		if err != nil {
			return ChapterContent{}, err
		}
	}

	return ChapterContent{
		ElementID:   id,
		StartTimeMS: startTime,
		EndTimeMS:   endTime,
		StartOffset: startOffset,
		EndOffset:   endOffset,
		SubFrames:   sub,
	}, nil
}

// TOCFlags are CTOC's single flags byte, decomposed into its two
// meaningful bits. The top six bits are reserved and ignored rather
// than rejected: a zero flags byte is indistinguishable from one
// simply not setting either bit, so there is nothing to validate
// beyond the two defined positions.
type TOCFlags struct {
	TopLevel bool
	Ordered  bool
}

// TableOfContentsContent is CTOC: an ordered or unordered grouping of
// child element ids (other CHAP/CTOC frames), optionally with its own
// nested frames (a TIT2 section title, for instance).
type TableOfContentsContent struct {
	ElementID string
	Flags     TOCFlags
	ChildIDs  []string
	SubFrames Frames
}

func (TableOfContentsContent) frameContent() {}

func (c TableOfContentsContent) IntoOwned() Content {
	c.SubFrames = c.SubFrames.IntoOwned()
	return c
}

func decodeTableOfContentsContent(d *decoder) (TableOfContentsContent, error) {
	id, err := d.latin1Terminated()
	if err != nil {
		return TableOfContentsContent{}, err
	}
	flagsByte, err := d.byte()
	if err != nil {
		return TableOfContentsContent{}, err
	}
	flags := TOCFlags{
		TopLevel: flagsByte&0x02 != 0,
		Ordered:  flagsByte&0x01 != 0,
	}

	count, err := d.byte()
	if err != nil {
		return TableOfContentsContent{}, err
	}

	childIDs := make([]string, 0, count)
	for i := 0; i < int(count); i++ {
		cid, err := d.latin1Terminated()
		if err != nil {
			return TableOfContentsContent{}, err
		}
		childIDs = append(childIDs, cid)
	}

	var sub Frames
	if d.remaining() > 0 {
		sub, err = decodeEmbeddedFrames(d.version, d.rest())
		if err != nil {
			return TableOfContentsContent{}, err
		}
	}

	return TableOfContentsContent{
		ElementID: id,
		Flags:     flags,
		ChildIDs:  childIDs,
		SubFrames: sub,
	}, nil
}
