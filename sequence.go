package vector

import (
	"fmt"
	"iter"
	"math"
)

// Sequence is a growable contiguous sequence of T built on a Storage.
// Slots [0, Len()) hold live elements; slots [Len(), Cap()) are raw.
// Every element is brought to life and destroyed through the sequence's
// Traits. Not goroutine-safe.
//
// The zero value is an empty sequence using DefaultTraits. A Sequence must
// not be copied; use Clone, Take or Swap.
type Sequence[T any] struct {
	data   Storage[T]
	size   int
	traits Traits[T]
	stats  counters
}

// New returns an empty sequence using DefaultTraits.
func New[T any]() *Sequence[T] {
	return NewSequence(DefaultTraits[T]())
}

// NewSequence returns an empty sequence managing its elements through traits.
func NewSequence[T any](traits Traits[T]) *Sequence[T] {
	return &Sequence[T]{traits: traits.withDefaults()}
}

// NewSized returns a sequence of n default-constructed elements in storage
// of exactly n slots. If a construction fails, the elements already built
// are destroyed and the error is returned.
func NewSized[T any](n int, traits Traits[T]) (*Sequence[T], error) {
	s := NewSequence(traits)
	nd, err := NewStorage[T](n)
	if err != nil {
		return nil, err
	}
	s.data.Swap(nd)
	if err := s.constructDefault(n); err != nil {
		s.data.Release()
		return nil, err
	}
	return s, nil
}

// Clone returns a copy of s whose storage is sized exactly to s.Len().
func (s *Sequence[T]) Clone() (*Sequence[T], error) {
	c := &Sequence[T]{traits: *s.ops()}
	if err := c.copyFrom(s); err != nil {
		return nil, err
	}
	return c, nil
}

// Take moves the contents of s into a new sequence and leaves s empty.
func (s *Sequence[T]) Take() *Sequence[T] {
	out := &Sequence[T]{traits: *s.ops()}
	out.Swap(s)
	return out
}

// MoveFrom destroys the elements of s, then takes over the storage and
// elements of rhs, leaving rhs empty.
func (s *Sequence[T]) MoveFrom(rhs *Sequence[T]) {
	if s == rhs {
		return
	}
	s.Release()
	s.Swap(rhs)
}

// Release destroys every live element in order and drops the storage.
// The sequence is empty and reusable afterwards.
func (s *Sequence[T]) Release() {
	s.destroyRange(s.live())
	s.size = 0
	s.data.Release()
}

// Len returns the number of live elements.
func (s *Sequence[T]) Len() int {
	return s.size
}

// Cap returns the number of slots in the current storage.
func (s *Sequence[T]) Cap() int {
	return s.data.Capacity()
}

// At returns a pointer to element i for reading or writing.
// i must be in [0, Len()); checked builds panic otherwise.
func (s *Sequence[T]) At(i int) *T {
	assert(i >= 0 && i < s.size, "index out of range")
	return &s.data.buf[i]
}

// Get returns a copy of element i. Same contract as At.
func (s *Sequence[T]) Get(i int) T {
	return *s.At(i)
}

// Slice returns a view of the live elements. The view shares storage with
// s and is invalidated by any operation that reallocates or shifts
// elements. Appending to the view never touches the raw slots of s.
func (s *Sequence[T]) Slice() []T {
	return s.data.buf[:s.size:s.size]
}

// All yields the live elements with their positions, front to back.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.Slice() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward yields the live elements with their positions, back to front.
func (s *Sequence[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		view := s.Slice()
		for i := len(view) - 1; i >= 0; i-- {
			if !yield(i, view[i]) {
				return
			}
		}
	}
}

// Values yields the live elements front to back.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.Slice() {
			if !yield(v) {
				return
			}
		}
	}
}

// Resize destroys trailing elements when n < Len(), or reserves room and
// default-constructs new trailing elements when n > Len().
func (s *Sequence[T]) Resize(n int) error {
	assert(n >= 0, "negative size")
	switch {
	case n < s.size:
		s.destroyRange(s.data.buf[n:s.size])
		s.size = n
	case n > s.size:
		if err := s.Reserve(n); err != nil {
			return err
		}
		return s.constructDefault(n)
	}
	return nil
}

// Reserve grows the storage to exactly n slots when n > Cap() and is a
// no-op otherwise. If allocation or migration fails, s is unchanged.
func (s *Sequence[T]) Reserve(n int) error {
	if n <= s.data.Capacity() {
		return nil
	}
	nd, err := NewStorage[T](n)
	if err != nil {
		return err
	}
	if err := s.relocate(nd.buf, s.live()); err != nil {
		return err
	}
	s.adopt(nd)
	return nil
}

// Swap exchanges the storage and elements of s and other. Views taken
// before the swap follow the storage, not the sequence.
func (s *Sequence[T]) Swap(other *Sequence[T]) {
	s.data.Swap(&other.data)
	s.size, other.size = other.size, s.size
}

// InfallibleMove reports whether reallocation relocates elements by moving
// them rather than copying.
func (s *Sequence[T]) InfallibleMove() bool {
	return s.ops().InfallibleMove
}

// ops returns the element traits, installing the defaults on a zero value.
func (s *Sequence[T]) ops() *Traits[T] {
	if s.traits.Destroy == nil {
		s.traits = DefaultTraits[T]()
	}
	return &s.traits
}

func (s *Sequence[T]) live() []T {
	return s.data.buf[:s.size]
}

// construct runs ctor on a raw slot.
func (s *Sequence[T]) construct(slot *T, ctor func(*T) error) error {
	if err := ctor(slot); err != nil {
		return err
	}
	s.stats.constructions++
	return nil
}

func (s *Sequence[T]) destroy(slot *T) {
	s.ops().Destroy(slot)
	s.stats.destructions++
}

func (s *Sequence[T]) destroyRange(slots []T) {
	for i := range slots {
		s.destroy(&slots[i])
	}
}

// constructDefault brings slots [Len(), n) to life. If a construction
// fails, the ones made by this call are destroyed and Len() is unchanged.
func (s *Sequence[T]) constructDefault(n int) error {
	ctor := s.ops().Construct
	for i := s.size; i < n; i++ {
		if err := s.construct(&s.data.buf[i], ctor); err != nil {
			s.destroyRange(s.data.buf[s.size:i])
			return err
		}
	}
	s.size = n
	return nil
}

// copyConstruct copies src into the raw slots dst. If a copy fails, the
// copies made by this call are destroyed.
func (s *Sequence[T]) copyConstruct(dst, src []T) error {
	cp := s.ops().Copy
	for i := range src {
		if err := s.construct(&dst[i], func(slot *T) error { return cp(slot, &src[i]) }); err != nil {
			s.destroyRange(dst[:i])
			return err
		}
	}
	return nil
}

// copyFrom fills an empty s with copies of src in storage of exactly
// src.Len() slots.
func (s *Sequence[T]) copyFrom(src *Sequence[T]) error {
	nd, err := NewStorage[T](src.size)
	if err != nil {
		return err
	}
	if err := s.copyConstruct(nd.buf, src.live()); err != nil {
		return err
	}
	s.data.Swap(nd)
	s.size = src.size
	return nil
}

// relocate transfers the live elements src into the raw slots dst: moved
// when the traits declare moves infallible, copied otherwise. A failed copy
// leaves src intact, and the copies already placed in dst are abandoned
// without being destroyed.
func (s *Sequence[T]) relocate(dst, src []T) error {
	tr := s.ops()
	for i := range src {
		if tr.InfallibleMove {
			if err := tr.Move(&dst[i], &src[i]); err != nil {
				panic("vector: infallible move failed: " + err.Error())
			}
		} else if err := tr.Copy(&dst[i], &src[i]); err != nil {
			return err
		}
		s.stats.constructions++
	}
	return nil
}

// adopt destroys the live elements of the current storage and takes
// ownership of nd, leaving nd empty.
func (s *Sequence[T]) adopt(nd *Storage[T]) {
	s.destroyRange(s.live())
	s.data.Swap(nd)
	nd.Release()
	s.stats.reallocations++
}

// grow allocates the storage for one more element than fits now: double
// the current size, or a single slot when empty.
func (s *Sequence[T]) grow() (*Storage[T], error) {
	if s.size == 0 {
		return NewStorage[T](1)
	}
	if s.size > math.MaxInt/2 {
		return nil, fmt.Errorf("%w: %w: doubling %d slots", ErrAllocation, ErrCapacityOverflow, s.size)
	}
	return NewStorage[T](2 * s.size)
}
