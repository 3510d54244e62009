package id3v2

import "strings"

// TextContent is the decoded content of a standard T*** text
// information frame: an encoding byte followed by one or more encoded
// string values. v2.4 allows multiple values NUL-separated within the
// frame's own encoding; this package splits on that separator
// regardless of version, since some v2.3 encoders write multi-value
// TCOM/TPE1 fields the same non-conformant way.
type TextContent struct {
	Encoding Encoding
	Values   []string
}

func (TextContent) frameContent() {}

func (c TextContent) IntoOwned() Content { return c }

func decodeTextContent(d *decoder) (TextContent, error) {
	enc, err := d.encodingByte()
	if err != nil {
		return TextContent{}, err
	}
	s, err := d.fullString()
	if err != nil {
		return TextContent{}, err
	}
	return TextContent{Encoding: enc, Values: splitNULTerminated(s)}, nil
}

// splitNULTerminated splits a decoded string on embedded NULs and
// drops a single trailing empty element, the way encoders that
// terminate their last multi-value entry anyway produce one.
func splitNULTerminated(s string) []string {
	values := strings.Split(s, "\x00")
	if n := len(values); n > 1 && values[n-1] == "" {
		values = values[:n-1]
	}
	return values
}

// UserTextContent is TXXX: a user-defined, freeform-named text value.
type UserTextContent struct {
	Encoding    Encoding
	Description string
	Values      []string
}

func (UserTextContent) frameContent() {}

func (c UserTextContent) IntoOwned() Content { return c }

func decodeUserTextContent(d *decoder) (UserTextContent, error) {
	enc, err := d.encodingByte()
	if err != nil {
		return UserTextContent{}, err
	}
	desc, err := d.terminatedString()
	if err != nil {
		return UserTextContent{}, err
	}
	s, err := d.fullString()
	if err != nil {
		return UserTextContent{}, err
	}
	return UserTextContent{Encoding: enc, Description: desc, Values: splitNULTerminated(s)}, nil
}

// URLContent is a standard W*** URL link frame: a single Latin-1 URL
// with no leading encoding byte.
type URLContent struct {
	URL string
}

func (URLContent) frameContent() {}

func (c URLContent) IntoOwned() Content { return c }

func decodeURLContent(d *decoder) (URLContent, error) {
	url, err := decodeLatin1(d.rest())
	if err != nil {
		return URLContent{}, err
	}
	return URLContent{URL: url}, nil
}

// UserURLContent is WXXX: a user-defined, freeform-named URL.
type UserURLContent struct {
	Encoding    Encoding
	Description string
	URL         string
}

func (UserURLContent) frameContent() {}

func (c UserURLContent) IntoOwned() Content { return c }

func decodeUserURLContent(d *decoder) (UserURLContent, error) {
	enc, err := d.encodingByte()
	if err != nil {
		return UserURLContent{}, err
	}
	desc, err := d.terminatedString()
	if err != nil {
		return UserURLContent{}, err
	}
	url, err := decodeLatin1(d.rest())
	if err != nil {
		return UserURLContent{}, err
	}
	return UserURLContent{Encoding: enc, Description: desc, URL: url}, nil
}
