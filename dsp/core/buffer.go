package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}

	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]float64, n)
}

// Clone returns a copy of src that shares no memory with it.
// A nil or empty src yields an empty, non-nil slice.
func Clone(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)

	return out
}

// EvenPrefix returns the largest even-length prefix of x.
// The returned slice aliases x.
func EvenPrefix(x []float64) []float64 {
	return x[:len(x)&^1]
}
