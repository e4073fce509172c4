package jet

import (
	"errors"

	"github.com/jjfrost/jet/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and single-character escape sequences are replaced with their unescaped
// equivalents. Unicode escapes (\uXXXX) are checked for shape but passed
// through verbatim; decoding them is out of scope for this package.
//
// Unquote reports an error for an unknown or incomplete escape sequence.
func Unquote(src []byte) ([]byte, error) {
	if len(src) < 2 || src[0] != '"' || src[len(src)-1] != '"' {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.B(src[1 : len(src)-1]))
}
