// Package arena implements the append-only region allocator that backs
// interned token text and formatted diagnostic strings.
//
// Grounded on original_source/lib/kos/arena.c: an ordered sequence of large
// blocks, allocation pads requests up to a boundary and appends into the
// first block with room, or creates a new block. There is no per-allocation
// free; lifetime is the arena's lifetime.
package arena

import (
	"unsafe"

	"github.com/laye-lang/choir-c/sizealign"
)

// BlockSize is the size, in bytes, of each block the arena allocates.
const BlockSize = 8 * 1024 * 1024

// defaultAlign is the boundary every allocation is padded up to, matching
// K_ARENA_ALIGN in the C source.
const defaultAlign sizealign.Align = 16

type block struct {
	data      []byte
	allocated int
}

// Arena is an append-only region allocator. The zero value is ready to use.
// An Arena is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type Arena struct {
	blocks []*block
}

// Alloc returns a zeroed byte slice of at least size bytes, padded up to
// defaultAlign. The returned slice is backed by arena memory and remains
// valid for the arena's entire lifetime; it is never individually freed.
func (a *Arena) Alloc(size int) []byte {
	aligned := sizealign.AlignUp(size, defaultAlign)
	if aligned <= 0 {
		aligned = int(defaultAlign)
	}
	if aligned > BlockSize {
		panic("arena: allocation larger than block size")
	}

	for _, b := range a.blocks {
		if BlockSize-b.allocated >= aligned {
			start := b.allocated
			b.allocated += aligned
			return b.data[start : start+aligned : start+aligned]
		}
	}

	nb := &block{data: make([]byte, BlockSize)}
	a.blocks = append(a.blocks, nb)
	nb.allocated = aligned
	return nb.data[0:aligned:aligned]
}

// AllocString copies s into the arena and returns a string view over the
// copy, so the returned value stays valid for the arena's lifetime even if
// the original s is later mutated or freed.
func (a *Arena) AllocString(s string) string {
	buf := a.Alloc(len(s))
	copy(buf, s)
	return unsafe.String(&buf[0], len(s))
}

// AllocBytes copies b into the arena and returns the copy.
func (a *Arena) AllocBytes(b []byte) []byte {
	buf := a.Alloc(len(b))
	copy(buf, b)
	return buf[:len(b)]
}

// NumBlocks reports how many blocks the arena has allocated so far. Useful
// for tests asserting growth behavior; not part of the allocator's
// contract otherwise.
func (a *Arena) NumBlocks() int {
	return len(a.blocks)
}
