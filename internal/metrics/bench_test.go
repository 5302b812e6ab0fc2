package metrics

import "testing"

// BenchmarkCollector_RecordCheck measures the overhead of recording a
// single validation (atomic operations).
func BenchmarkCollector_RecordCheck(b *testing.B) {
	c := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.RecordCheck(64, i%2 == 0)
	}
}

// BenchmarkCollector_Snapshot measures the cost of taking a snapshot.
func BenchmarkCollector_Snapshot(b *testing.B) {
	c := New()
	c.RecordCheck(8, true)
	c.RecordError("test")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Snapshot()
	}
}

// BenchmarkNilCollector verifies nil-safe no-ops have zero overhead.
func BenchmarkNilCollector(b *testing.B) {
	var c *Collector
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.RecordCheck(64, true)
		c.RecordCase(true)
		c.RecordError("test")
	}
}
