package vector

import (
	"fmt"
	"math/bits"
	"unsafe"
)

// maxAllocBytes caps a single block below the runtime's heap address range.
const maxAllocBytes = 1 << 47

// noCopy makes go vet's copylocks check reject value copies of its holder.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Storage owns a block of slots for up to Capacity() elements of T.
// Storage never constructs or destroys elements: which slots hold live
// values is entirely the owner's business. A Storage must not be copied;
// ownership moves with Take and Swap.
type Storage[T any] struct {
	noCopy noCopy
	buf    []T // nil when capacity is 0
}

// NewStorage reserves a block of exactly capacity slots.
// A capacity of 0 allocates nothing. The returned error wraps ErrAllocation
// if the block cannot be obtained.
func NewStorage[T any](capacity int) (*Storage[T], error) {
	s := &Storage[T]{}
	if capacity == 0 {
		return s, nil
	}
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrAllocation, capacity)
	}
	buf, err := allocate[T](capacity)
	if err != nil {
		return nil, err
	}
	s.buf = buf
	return s, nil
}

// allocate obtains n slots, turning size overflow and runtime allocation
// panics into errors.
func allocate[T any](n int) (buf []T, err error) {
	size := elementSize[T]()
	hi, total := bits.Mul64(uint64(n), uint64(size))
	if hi != 0 || total > maxAllocBytes {
		return nil, fmt.Errorf("%w: %d slots of %d bytes", ErrAllocation, n, size)
	}
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: %d slots of %d bytes: %v", ErrAllocation, n, size, r)
		}
	}()
	return make([]T, n), nil
}

func elementSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Capacity returns the number of slots in the block.
func (s *Storage[T]) Capacity() int {
	return len(s.buf)
}

// ElementSize returns the size in bytes of one slot.
func (s *Storage[T]) ElementSize() uintptr {
	return elementSize[T]()
}

// Bytes returns the size of the block in bytes.
func (s *Storage[T]) Bytes() int {
	return len(s.buf) * int(elementSize[T]())
}

// Slot returns a pointer to slot i. Checked builds assert i < Capacity().
func (s *Storage[T]) Slot(i int) *T {
	assert(i >= 0 && i < len(s.buf), "slot index out of range")
	return &s.buf[i]
}

// Tail returns the slots from offset off to the end of the block.
// off may equal Capacity(), which yields an empty slice.
func (s *Storage[T]) Tail(off int) []T {
	assert(off >= 0 && off <= len(s.buf), "slot offset out of range")
	return s.buf[off:]
}

// Take moves the block into a new Storage and leaves s empty.
func (s *Storage[T]) Take() *Storage[T] {
	out := &Storage[T]{}
	out.Swap(s)
	return out
}

// Swap exchanges the blocks owned by s and other.
func (s *Storage[T]) Swap(other *Storage[T]) {
	s.buf, other.buf = other.buf, s.buf
}

// Release drops the block. No element in it is destroyed: any value still
// live in the block is abandoned without its Destroy hook running.
func (s *Storage[T]) Release() {
	s.buf = nil
}
