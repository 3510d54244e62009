package id3v2

// AttachedPictureContent is APIC (v2.3/v2.4) or PIC (v2.2): an
// embedded image plus a textual description.
//
// v2.2's PIC uses a fixed 3-character image format code in place of a
// free-form MIME type; decodeAttachedPictureContent branches on the
// decoder's tag version to read that field the right width.
type AttachedPictureContent struct {
	Encoding    Encoding
	MIMEType    string // v2.3/v2.4: a MIME type; v2.2: a 3-character format code such as "JPG"
	PictureType PictureType
	Description string
	Data        []byte
}

func (AttachedPictureContent) frameContent() {}

func (c AttachedPictureContent) IntoOwned() Content {
	data := make([]byte, len(c.Data))
	copy(data, c.Data)
	c.Data = data
	return c
}

func decodeAttachedPictureContent(d *decoder) (AttachedPictureContent, error) {
	enc, err := d.encodingByte()
	if err != nil {
		return AttachedPictureContent{}, err
	}

	var mime string
	if d.version == Version2_2 {
		mime, err = d.fixedLatin1(3)
	} else {
		mime, err = d.latin1Terminated()
	}
	if err != nil {
		return AttachedPictureContent{}, err
	}

	pt, err := d.byte()
	if err != nil {
		return AttachedPictureContent{}, err
	}
	if !PictureType(pt).Valid() {
		return AttachedPictureContent{}, newError(KindInvalidFrameData)
	}

	desc, err := d.terminatedString()
	if err != nil {
		return AttachedPictureContent{}, err
	}

	return AttachedPictureContent{
		Encoding:    enc,
		MIMEType:    mime,
		PictureType: PictureType(pt),
		Description: desc,
		Data:        d.rest(),
	}, nil
}

// GeneralObjectContent is GEOB: an arbitrary encapsulated file or
// blob, with a MIME type, a suggested filename, and a description.
type GeneralObjectContent struct {
	Encoding    Encoding
	MIMEType    string
	Filename    string
	Description string
	Data        []byte
}

func (GeneralObjectContent) frameContent() {}

func (c GeneralObjectContent) IntoOwned() Content {
	data := make([]byte, len(c.Data))
	copy(data, c.Data)
	c.Data = data
	return c
}

func decodeGeneralObjectContent(d *decoder) (GeneralObjectContent, error) {
	enc, err := d.encodingByte()
	if err != nil {
		return GeneralObjectContent{}, err
	}
	mime, err := d.latin1Terminated()
	if err != nil {
		return GeneralObjectContent{}, err
	}
	filename, err := d.terminatedString()
	if err != nil {
		return GeneralObjectContent{}, err
	}
	desc, err := d.terminatedString()
	if err != nil {
		return GeneralObjectContent{}, err
	}
	return GeneralObjectContent{
		Encoding:    enc,
		MIMEType:    mime,
		Filename:    filename,
		Description: desc,
		Data:        d.rest(),
	}, nil
}
