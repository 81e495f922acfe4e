package vector

// PushBack appends a copy of v.
func (s *Sequence[T]) PushBack(v T) error {
	cp := s.ops().Copy
	_, err := s.EmplaceBack(func(slot *T) error { return cp(slot, &v) })
	return err
}

// MoveBack appends the value of *v, leaving *v in a moved-from state.
func (s *Sequence[T]) MoveBack(v *T) error {
	mv := s.ops().Move
	_, err := s.EmplaceBack(func(slot *T) error { return mv(slot, v) })
	return err
}

// EmplaceBack appends an element built in place by ctor and returns a
// pointer to it. Amortized O(1).
//
// When the storage is full, ctor runs on the target slot of the new
// storage before any existing element is touched, so a failing ctor or a
// failing allocation leaves s unchanged.
func (s *Sequence[T]) EmplaceBack(ctor func(slot *T) error) (*T, error) {
	if s.size < s.data.Capacity() {
		slot := &s.data.buf[s.size]
		if err := s.construct(slot, ctor); err != nil {
			return nil, err
		}
		s.size++
		return slot, nil
	}

	nd, err := s.grow()
	if err != nil {
		return nil, err
	}
	slot := &nd.buf[s.size]
	if err := s.construct(slot, ctor); err != nil {
		return nil, err
	}
	if err := s.relocate(nd.buf[:s.size], s.live()); err != nil {
		return nil, err
	}
	s.adopt(nd)
	s.size++
	return slot, nil
}

// PopBack destroys the last element. The sequence must not be empty;
// checked builds panic otherwise.
func (s *Sequence[T]) PopBack() {
	assert(s.size > 0, "PopBack on empty sequence")
	s.destroy(&s.data.buf[s.size-1])
	s.size--
}

// Insert inserts a copy of v before position pos and returns pos.
func (s *Sequence[T]) Insert(pos int, v T) (int, error) {
	cp := s.ops().Copy
	return s.Emplace(pos, func(slot *T) error { return cp(slot, &v) })
}

// InsertMove inserts the value of *v before position pos, leaving *v in a
// moved-from state, and returns pos.
func (s *Sequence[T]) InsertMove(pos int, v *T) (int, error) {
	mv := s.ops().Move
	return s.Emplace(pos, func(slot *T) error { return mv(slot, v) })
}

// Emplace inserts an element built by ctor before position pos, which must
// be in [0, Len()], and returns the position of the new element.
// Positions at or after pos shift one place right.
//
// With a full storage the new element is built in the new storage first,
// so a failing ctor leaves s unchanged. A failing copy while migrating the
// other elements also leaves s unchanged, but the elements already placed
// in the abandoned storage are not destroyed.
//
// With spare capacity the element is built in a temporary, the last
// element is moved into the first raw slot, the tail is shifted right by
// moves and the temporary is moved into place. Once the last element has
// been moved the sequence counts one more element; a failing MoveAssign
// leaves it at that length with the elements between pos and the end only
// partly shifted.
func (s *Sequence[T]) Emplace(pos int, ctor func(slot *T) error) (int, error) {
	assert(pos >= 0 && pos <= s.size, "insert position out of range")
	if pos == s.size {
		_, err := s.EmplaceBack(ctor)
		return pos, err
	}

	if s.size == s.data.Capacity() {
		nd, err := s.grow()
		if err != nil {
			return pos, err
		}
		if err := s.construct(&nd.buf[pos], ctor); err != nil {
			return pos, err
		}
		if err := s.relocate(nd.buf[:pos], s.data.buf[:pos]); err != nil {
			return pos, err
		}
		if err := s.relocate(nd.buf[pos+1:s.size+1], s.data.buf[pos:s.size]); err != nil {
			return pos, err
		}
		s.adopt(nd)
		s.size++
		return pos, nil
	}

	var tmp T
	if err := s.construct(&tmp, ctor); err != nil {
		return pos, err
	}
	defer s.destroy(&tmp)

	mv, assign := s.ops().Move, s.ops().MoveAssign
	last := s.size - 1
	if err := s.construct(&s.data.buf[s.size], func(slot *T) error { return mv(slot, &s.data.buf[last]) }); err != nil {
		return pos, err
	}
	s.size++
	for i := last; i > pos; i-- {
		if err := assign(&s.data.buf[i], &s.data.buf[i-1]); err != nil {
			return pos, err
		}
	}
	if err := assign(&s.data.buf[pos], &tmp); err != nil {
		return pos, err
	}
	return pos, nil
}

// Erase removes the element at pos, which must be in [0, Len()), shifting
// later elements one place left, and returns the position that now holds
// the element that followed it (pos itself). The removed element is ended
// by MoveAssign overwriting it. A failing MoveAssign leaves the sequence at
// its old length with the tail partly shifted.
func (s *Sequence[T]) Erase(pos int) (int, error) {
	assert(pos >= 0 && pos < s.size, "erase position out of range")
	assign := s.ops().MoveAssign
	for i := pos; i+1 < s.size; i++ {
		if err := assign(&s.data.buf[i], &s.data.buf[i+1]); err != nil {
			return pos, err
		}
	}
	s.PopBack()
	return pos, nil
}
