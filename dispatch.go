package id3v2

// decodeFrameContent dispatches on id to the matching content decoder
// and runs it over body, returning UnknownContent for any id this
// package doesn't have a specific decoder for. It is a total
// function: every FrameID value, known or not, produces a Content
// without panicking.
//
// Grounded on oshokin-id3v2's parsers map-of-closures dispatch
// (other_examples), adapted to a plain switch since FrameID's literal
// constants already give the compiler an exhaustiveness-friendly,
// allocation-free dispatch table without needing a map.
func decodeFrameContent(version Version, id FrameID, body []byte) (Content, error) {
	d := newDecoder(version, body)

	content, err := dispatchFrameContent(d, id)
	if err != nil {
		return nil, err
	}
	if !d.isEmpty() {
		// Most decoders above drain their cursor to the end (their last
		// field is either a terminator-free string or d.rest()); the
		// fixed-shape ones (RVRB, RBUF) read only their own fields.
		// Bytes left over mean the frame's declared size didn't match
		// what its own content actually describes: a framing bug, not a
		// benign trailer to ignore.
		return nil, newError(KindInvalidFrameData)
	}
	return content, nil
}

func dispatchFrameContent(d *decoder, id FrameID) (Content, error) {
	switch id {
	case FrameCOMM, FrameCOM:
		return decodeCommentContent(d)
	case FrameUSLT, FrameULT:
		return decodeUnsyncLyricsContent(d)
	case FrameUSER:
		return decodeTermsOfUseContent(d)
	case FrameSYLT, FrameSLT:
		return decodeSynchronisedLyricsContent(d)

	case FrameAPIC, FramePIC:
		return decodeAttachedPictureContent(d)
	case FrameGEOB, FrameGEO:
		return decodeGeneralObjectContent(d)

	case FrameCHAP:
		return decodeChapterContent(d)
	case FrameCTOC:
		return decodeTableOfContentsContent(d)

	case FrameTXXX, FrameTXX:
		return decodeUserTextContent(d)
	case FrameWXXX, FrameWXX:
		return decodeUserURLContent(d)

	case FrameUFID, FrameUFI:
		return decodeUniqueFileIDContent(d)
	case FramePRIV:
		return decodePrivateContent(d)
	case FrameMCDI, FrameMCI:
		return decodeMusicCDIDContent(d)
	case FramePCNT, FrameCNT:
		return decodePlayCounterContent(d)
	case FramePOPM, FramePOP:
		return decodePopularimeterContent(d)
	case FrameETCO, FrameETC:
		return decodeEventTimingContent(d)
	case FrameSYTC, FrameSTC:
		return decodeSyncedTempoCodesContent(d)
	case FrameMLLT, FrameMLL:
		return decodeMPEGLocationLookupContent(d)
	case FrameENCR:
		return decodeEncryptionMethodContent(d)
	case FrameGRID:
		return decodeGroupIDRegistrationContent(d)
	case FrameLINK, FrameLNK:
		return decodeLinkedInfoContent(d)
	case FrameOWNE:
		return decodeOwnershipContent(d)
	case FramePOSS:
		return decodePositionSyncContent(d)
	case FrameRBUF, FrameBUF:
		return decodeRecommendedBufferSizeContent(d)
	case FrameRVA2:
		return decodeRelativeVolumeContent(d)
	case FrameRVRB, FrameREV:
		return decodeReverbContent(d)
	case FrameRVAD, FrameRVA, FrameEQUA, FrameEQU2:
		return decodeLegacyVolumeAdjustmentContent(d)
	case FrameAENC, FrameCRA:
		return decodeAudioEncryptionContent(d)
	case FrameCOMR:
		return decodeCommercialContent(d)

	default:
		if isTextFrame(id) {
			return decodeTextContent(d)
		}
		if isURLFrame(id) {
			return decodeURLContent(d)
		}
		return decodeUnknownContent(d)
	}
}

// isTextFrame reports whether id follows the standard T*** text
// information frame shape: an encoding byte followed by one or more
// encoded strings. TXXX/TXX are handled separately above since they
// additionally carry a description.
func isTextFrame(id FrameID) bool {
	lead := byte(id >> 24)
	if lead == 0 {
		lead = byte(id >> 16)
	}
	return lead == 'T'
}

// isURLFrame reports whether id follows the standard W*** URL link
// frame shape: a single Latin-1 URL with no encoding byte. WXXX/WXX
// are handled separately above since they additionally carry a
// description and encoding byte.
func isURLFrame(id FrameID) bool {
	lead := byte(id >> 24)
	if lead == 0 {
		lead = byte(id >> 16)
	}
	return lead == 'W'
}
