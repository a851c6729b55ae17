package cache

import (
	"errors"
	"fmt"
	"unicode/utf16"
)

const maxEncodedLength = 0xFFFF

var (
	// ErrNameTooLong is returned when a name needs more than 65535 encoded bytes.
	ErrNameTooLong = errors.New("name too long for cache")
	// ErrMalformedName is returned when a cached name is not valid modified UTF-8.
	ErrMalformedName = errors.New("malformed name in cache")
)

// encodeModifiedUTF8 returns s in Java's modified UTF-8, without the length prefix.
func encodeModifiedUTF8(s string) ([]byte, error) {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, len(units))
	for _, c := range units {
		switch {
		case c >= 0x0001 && c <= 0x007F:
			out = append(out, byte(c))
		case c <= 0x07FF:
			out = append(out,
				byte(0xC0|(c>>6)&0x1F),
				byte(0x80|c&0x3F))
		default:
			out = append(out,
				byte(0xE0|(c>>12)&0x0F),
				byte(0x80|(c>>6)&0x3F),
				byte(0x80|c&0x3F))
		}
	}
	if len(out) > maxEncodedLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrNameTooLong, len(out))
	}
	return out, nil
}

// decodeModifiedUTF8 is the inverse of encodeModifiedUTF8.
func decodeModifiedUTF8(b []byte) (string, error) {
	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80:
			units = append(units, uint16(c))
			i++
		case c&0xE0 == 0xC0:
			if i+1 >= len(b) || b[i+1]&0xC0 != 0x80 {
				return "", fmt.Errorf("%w: bad 2-byte sequence at offset %d", ErrMalformedName, i)
			}
			units = append(units, uint16(c&0x1F)<<6|uint16(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0:
			if i+2 >= len(b) || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 {
				return "", fmt.Errorf("%w: bad 3-byte sequence at offset %d", ErrMalformedName, i)
			}
			units = append(units, uint16(c&0x0F)<<12|uint16(b[i+1]&0x3F)<<6|uint16(b[i+2]&0x3F))
			i += 3
		default:
			return "", fmt.Errorf("%w: unexpected byte 0x%02x at offset %d", ErrMalformedName, c, i)
		}
	}
	return string(utf16.Decode(units)), nil
}
