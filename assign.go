package vector

// Assign replaces the contents of s with copies of the elements of rhs.
//
// When rhs does not fit in the current storage, a complete copy is built
// first and exchanged with s only once it succeeded; on failure s is
// unchanged. Otherwise the storage is reused: live elements are overwritten
// with Assign, surplus ones destroyed and missing ones copy-constructed. A
// failure on that path returns with s valid but only partly updated.
func (s *Sequence[T]) Assign(rhs *Sequence[T]) error {
	if s == rhs {
		return nil
	}
	if rhs.size > s.data.Capacity() {
		tmp := &Sequence[T]{traits: *s.ops()}
		if err := tmp.copyFrom(rhs); err != nil {
			s.stats.merge(tmp.stats)
			return err
		}
		s.Swap(tmp)
		tmp.Release()
		s.stats.merge(tmp.stats)
		s.stats.reallocations++
		return nil
	}

	assign := s.ops().Assign
	if rhs.size <= s.size {
		for i := range rhs.size {
			if err := assign(&s.data.buf[i], &rhs.data.buf[i]); err != nil {
				return err
			}
		}
		s.destroyRange(s.data.buf[rhs.size:s.size])
	} else {
		for i := range s.size {
			if err := assign(&s.data.buf[i], &rhs.data.buf[i]); err != nil {
				return err
			}
		}
		if err := s.copyConstruct(s.data.buf[s.size:rhs.size], rhs.data.buf[s.size:rhs.size]); err != nil {
			return err
		}
	}
	s.size = rhs.size
	return nil
}
