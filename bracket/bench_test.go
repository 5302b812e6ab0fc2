package bracket

import (
	"strings"
	"testing"
)

// BenchmarkValid_Balanced measures a full scan of a deeply nested
// balanced input.
func BenchmarkValid_Balanced(b *testing.B) {
	s := strings.Repeat("({[", 1024) + strings.Repeat("]})", 1024)
	b.SetBytes(int64(len(s)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Valid(s)
	}
}

// BenchmarkValid_EarlyReject measures the short-circuit on a leading
// closer.
func BenchmarkValid_EarlyReject(b *testing.B) {
	s := ")" + strings.Repeat("()", 4096)
	for i := 0; i < b.N; i++ {
		Valid(s)
	}
}
