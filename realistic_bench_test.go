package vector

import (
	"testing"
)

// BenchmarkRealisticUsage compares the sequence with the builtin slice on
// common access patterns
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: Append-heavy workload starting from empty
	b.Run("Append/Sequence", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := New[int]()
			for j := 0; j < 1000; j++ {
				_ = s.PushBack(j)
			}
			s.Release()
		}
	})

	b.Run("Append/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < 1000; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	// Test 2: Appending after an explicit reservation
	b.Run("Reserved/Sequence", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := New[int]()
			_ = s.Reserve(1000)
			for j := 0; j < 1000; j++ {
				_ = s.PushBack(j)
			}
			s.Release()
		}
	})

	b.Run("Reserved/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, 1000)
			for j := 0; j < 1000; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	// Test 3: Struct elements with a non-trivial copy
	type record struct {
		ID   int64
		Data [56]byte // Total 64 bytes
	}

	b.Run("StructCopyRelocation/Sequence", func(b *testing.B) {
		tr := Traits[record]{} // relocate by copying
		for i := 0; i < b.N; i++ {
			s := NewSequence(tr)
			for j := 0; j < 256; j++ {
				_ = s.PushBack(record{ID: int64(j)})
			}
			s.Release()
		}
	})

	b.Run("StructMoveRelocation/Sequence", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := New[record]()
			for j := 0; j < 256; j++ {
				_ = s.PushBack(record{ID: int64(j)})
			}
			s.Release()
		}
	})

	// Test 4: Front insertion and removal
	b.Run("FrontInsertErase/Sequence", func(b *testing.B) {
		s := New[int]()
		_ = s.Reserve(512)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < 256; j++ {
				_, _ = s.Insert(0, j)
			}
			for s.Len() > 0 {
				_, _ = s.Erase(0)
			}
		}
	})

	b.Run("FrontInsertErase/Builtin", func(b *testing.B) {
		s := make([]int, 0, 512)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < 256; j++ {
				s = append(s, 0)
				copy(s[1:], s)
				s[0] = j
			}
			for len(s) > 0 {
				s = s[:copy(s, s[1:])]
			}
		}
	})
}

func BenchmarkSequenceAt(b *testing.B) {
	s, _ := NewSized(1024, DefaultTraits[int]())
	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		sum += *s.At(i & 1023)
	}
	_ = sum
}
