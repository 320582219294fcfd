// Package sizealign implements the alignment arithmetic shared by the arena
// allocator and the token-text interning it backs.
package sizealign

// Align is a byte alignment. Valid values are powers of two in [Min, Max];
// only ForBytes guarantees that invariant (by clamping), so callers
// constructing an Align directly are responsible for it.
type Align int16

const (
	// Min is the smallest alignment this package supports: nothing can be
	// less aligned than a single byte.
	Min Align = 1
	// Max is the largest alignment representable in a signed 16-bit
	// twos-complement integer: 1 << 14.
	Max Align = 1 << 14
)

// Padding returns the number of bytes that must be added to size so that,
// as an offset, it becomes aligned to align.
func Padding(size int, align Align) int {
	a := int(align)
	return (a - (size % a)) % a
}

// AlignUp returns size rounded up to the next multiple of align.
func AlignUp(size int, align Align) int {
	return size + Padding(size, align)
}

// ForBytes returns the minimum alignment sufficient to align a block of the
// given size: the next power of two, clamped to [Min, Max].
func ForBytes(bytes int) Align {
	if bytes >= int(Max) {
		return Max
	}
	if bytes <= int(Min) {
		return Min
	}

	// https://graphics.stanford.edu/~seander/bithacks.html#RoundUpPowerOf2
	n := bytes - 1
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n++

	return Align(n)
}
