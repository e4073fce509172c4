package jet_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/jjfrost/jet"
	"github.com/jjfrost/jet/ast"
)

// benchInput builds a representative document: an array of records mixing
// strings, numbers, booleans, nulls, and nested containers.
func benchInput() []byte {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < 1000; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"id": %d, "name": "record %d", "score": %d.%d, `+
			`"active": %v, "note": null, "tags": ["x", "y\tz", %d]}`,
			i, i, i, i%10, i%2 == 0, i)
	}
	sb.WriteString("]")
	return []byte(sb.String())
}

func BenchmarkParse(b *testing.B) {
	input := benchInput()
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Unmarshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Parse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := ast.Parse(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}

func BenchmarkScanner(b *testing.B) {
	input := benchInput()
	for i := 0; i < b.N; i++ {
		s := jet.NewScanner(input)
		for {
			if err := s.Next(); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			if s.Token() == jet.EOF {
				break
			}
		}
	}
}
