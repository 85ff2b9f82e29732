package mail

import "testing"

// BenchmarkParseAddress benchmarks the hot path of splitting and
// validating a plain address.
func BenchmarkParseAddress(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := ParseAddress("first.last@sub.example.com"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParseMailbox benchmarks the full mailbox surface syntax.
func BenchmarkParseMailbox(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := ParseMailbox("First Last <first.last@sub.example.com>"); err != nil {
			b.Fatal(err)
		}
	}
}
