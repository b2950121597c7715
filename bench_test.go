package sha256

import (
	mrand "math/rand"
	"testing"
)

// BenchmarkSum measures one-shot hashing across message sizes.
func BenchmarkSum(b *testing.B) {
	sizes := []struct {
		name string
		len  int
	}{
		{"64B", 64},
		{"1kB", 1024},
		{"8kB", 8 * 1024},
		{"1MB", 1024 * 1024},
	}
	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			rng := mrand.New(mrand.NewSource(5))
			data := make([]byte, size.len)
			rng.Read(data)

			b.SetBytes(int64(size.len))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Sum(data)
			}
		})
	}
}

// BenchmarkCompress measures the round function alone.
func BenchmarkCompress(b *testing.B) {
	block := make([]byte, BlockSize)
	for i := range block {
		block[i] = byte(i)
	}
	w := expand(block)
	state := initHash

	b.SetBytes(BlockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		state = compress(state, &w)
	}
}
