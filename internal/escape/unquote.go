package escape

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string.
// The input must have the enclosing double quotation marks already removed.
//
// Single-character escapes are replaced with their unescaped equivalents.
// Unicode escapes (\uXXXX) have their four hex digits validated but are
// copied through undecoded. Unknown or incomplete escapes are an error.
func Unquote(src mem.RO) ([]byte, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(nil, src), nil
	}

	dec := make([]byte, 0, src.Len())
	for {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		ch := src.At(0)
		src = src.SliceFrom(1)
		switch ch {
		case '"', '\\', '/':
			dec = append(dec, ch)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			// Validate the shape of the escape, but do not decode it.
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			for j := 0; j < 4; j++ {
				if !isHexDigit(src.At(j)) {
					return nil, fmt.Errorf("invalid hex digit %q", src.At(j))
				}
			}
			dec = append(dec, '\\', 'u')
			dec = mem.Append(dec, src.SliceTo(4))
			src = src.SliceFrom(4)
		default:
			return nil, fmt.Errorf("invalid escape %q", ch)
		}

		// Look for the next escape sequence, and if one is not found we can
		// blit the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			return dec, nil
		}
	}
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
