package vector

import (
	json "github.com/goccy/go-json"
)

// MarshalJSON encodes the live elements as a JSON array.
func (s *Sequence[T]) MarshalJSON() ([]byte, error) {
	if s.size == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(s.Slice())
}

// UnmarshalJSON replaces the contents of s with the elements of a JSON
// array. Each decoded element is moved into the sequence through its
// traits. If decoding fails, s is unchanged.
func (s *Sequence[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	s.Release()
	if err := s.Reserve(len(elems)); err != nil {
		return err
	}
	for i := range elems {
		if err := s.MoveBack(&elems[i]); err != nil {
			return err
		}
	}
	return nil
}
