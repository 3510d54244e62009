package id3v2

// OwnedTag is a Tag's frames promoted out of the Tag's backing buffer:
// every byte slice any frame holds (APIC/GEOB data, UFID identifiers,
// raw frame bytes, ...) is copied, so the result outlives the Tag (or
// the io.Reader it was decoded from) without aliasing it.
//
// Go's string conversion from []byte always copies, so every decoded
// string field is already independent of the Tag's buffer the moment
// it's produced; IntoOwned's real work is promoting the []byte blobs
// the frames_*.go record types still borrow (see DESIGN.md).
type OwnedTag struct {
	Header Header
	Frames Frames
}

// IntoOwned decodes every frame in t and returns a copy with all of
// their byte slices copied, safe to retain after t (and the reader it
// came from) is discarded.
func (t *Tag) IntoOwned() (OwnedTag, error) {
	frames, err := t.ReadAllFrames()
	if err != nil {
		return OwnedTag{}, err
	}
	return OwnedTag{Header: t.Header, Frames: frames.IntoOwned()}, nil
}
