package core

// encoding.go normalizes raw file bytes to clean UTF-8 before parsing:
// legacy single-byte encodings are decoded, a UTF-8 BOM is removed and any
// remaining invalid sequences become U+FFFD.

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Supported input encodings.
const (
	EncodingUTF8        = "utf-8"
	EncodingLatin1      = "latin1"
	EncodingWindows1252 = "windows-1252"
)

// charmapFor returns the decoder table for a legacy encoding name, or nil for
// UTF-8.
func charmapFor(encoding string) (*charmap.Charmap, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", EncodingUTF8, "utf8":
		return nil, nil
	case EncodingLatin1, "iso-8859-1":
		return charmap.ISO8859_1, nil
	case EncodingWindows1252, "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
}

// normalizeEncoding converts data in the given encoding to UTF-8.
func normalizeEncoding(data []byte, encoding string) ([]byte, error) {
	cm, err := charmapFor(encoding)
	if err != nil {
		return nil, err
	}

	if cm != nil {
		decoded, _, err := transform.Bytes(cm.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("encoding error: decode %s: %w", encoding, err)
		}
		return decoded, nil
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	return sanitizeUTF8(data), nil
}

func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune(utf8.RuneError)
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}
