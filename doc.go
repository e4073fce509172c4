// Package jet implements the lexical layer of a strict JSON reader: a
// pull-model scanner over an in-memory buffer, source locations, and the
// string quote/unquote codec. The value tree and the recursive-descent
// parser that builds it live in the ast subpackage.
//
// # Scanning
//
// Construct a Scanner from a byte buffer and call its Next method to
// iterate over the input. Each call consumes whitespace and exactly one
// lexeme; the end of input is reported as a zero-width EOF token rather
// than an error:
//
//	s := jet.NewScanner(data)
//	for {
//	   if err := s.Next(); err != nil {
//	      log.Fatalf("Scanning failed: %v", err)
//	   }
//	   if s.Token() == jet.EOF {
//	      break
//	   }
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Errors from Next have concrete type *SyntaxError and carry the line and
// column of the fault.
//
// The grammar is strict JSON: comments are rejected with a dedicated
// error, since a slash can begin nothing else. String tokens are reported
// undecoded, surrounding quotes included; use Unquote to decode one.
package jet
