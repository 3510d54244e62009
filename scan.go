package id3v2

import (
	"bufio"
	"bytes"
	"io"
	"sync"
)

var id3Token = []byte("ID3")

var tagBufPool = &sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 4<<10)
		return &buf
	},
}

// id3Split is a bufio.SplitFunc that locates the next complete ID3v2
// tag (header through any footer) in data. An "ID3" marker that turns
// out not to be followed by a valid header is treated as incidental
// noise and scanning resumes just past it, the same tolerance the
// teacher's id3Split applied, extended here to also recognize v2.2
// tags rather than only v2.3/v2.4.
func id3Split(data []byte, atEOF bool) (advance int, token []byte, err error) {
	i := bytes.Index(data, id3Token)
	if i == -1 {
		if len(data) < 2 {
			return 0, nil, nil
		}
		return len(data) - 2, nil, nil
	}

	rest := data[i:]
	if len(rest) < 10 {
		if atEOF {
			return 0, nil, io.ErrUnexpectedEOF
		}
		return i, nil, nil
	}

	version, verr := versionFromMajor(rest[3])
	if verr != nil || !version.Decodable() || rest[4] == 0xff {
		return i + 3, nil, nil
	}

	hasFooter := version == Version2_4 && rest[5]&byte(HeaderFlagFooterPresent) != 0

	bad := false
	for _, c := range rest[6:10] {
		if c&0x80 != 0 {
			bad = true
		}
	}
	if bad {
		return i + 3, nil, nil
	}
	size := synchsafe(rest[6:10])

	total := 10 + int(size)
	if hasFooter {
		total += 10
	}

	if len(rest) < total {
		if atEOF {
			return 0, nil, io.ErrUnexpectedEOF
		}
		return i, nil, nil
	}

	return i + total, rest[:total], nil
}

// Tags reads every ID3v2 tag present in r, in file order, tolerating
// leading or interleaved non-tag bytes (an "ID3" byte sequence
// occurring incidentally in audio data). It stops and returns what it
// has found so far at the first tag that parses a valid header but
// fails body decoding.
//
// Adapted from the teacher's bufio.Scanner-based multi-tag Scan: the
// scanning and buffer-pooling machinery is unchanged, but each located
// tag is now handed to the single-Tag decoder instead of being
// flattened into a raw Frame slice by hand.
func Tags(r io.Reader) ([]*Tag, error) {
	bufp := tagBufPool.Get().(*[]byte)
	defer tagBufPool.Put(bufp)

	s := bufio.NewScanner(r)
	s.Buffer(*bufp, 20+1<<28)
	s.Split(id3Split)

	var tags []*Tag
	for s.Scan() {
		tok := s.Bytes()

		var tag Tag
		n, err := tag.ReadFrom(bytes.NewReader(tok))
		if err != nil {
			return tags, err
		}

		if tag.Header.Version == Version2_4 && tag.Header.Flags&HeaderFlagFooterPresent != 0 {
			if int(n)+10 > len(tok) {
				return tags, newError(KindIO)
			}
			footer := tok[n : int(n)+10]
			if string(footer[0:3]) != "3DI" {
				return tags, newFieldError(KindInvalidField, FieldIdentifier)
			}
		}

		tags = append(tags, &tag)
	}
	return tags, s.Err()
}
