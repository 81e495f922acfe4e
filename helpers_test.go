package vector

import (
	"errors"
	"maps"
	"slices"
	"testing"
)

var errInjected = errors.New("injected failure")

// recorder builds int traits that count every hook call and fail the n-th
// call of a chosen hook. Move and MoveAssign share the "move" counter and
// mark their source -1 so moved-from slots are visible.
type recorder struct {
	calls  map[string]int
	failAt map[string]int
}

func newRecorder() *recorder {
	return &recorder{calls: map[string]int{}, failAt: map[string]int{}}
}

func (p *recorder) hit(op string) error {
	p.calls[op]++
	if n, ok := p.failAt[op]; ok && p.calls[op] == n {
		return errInjected
	}
	return nil
}

func (p *recorder) traits(infallibleMove bool) Traits[int] {
	return Traits[int]{
		Construct: func(slot *int) error {
			if err := p.hit("construct"); err != nil {
				return err
			}
			*slot = 0
			return nil
		},
		Copy: func(dst, src *int) error {
			if err := p.hit("copy"); err != nil {
				return err
			}
			*dst = *src
			return nil
		},
		Assign: func(dst, src *int) error {
			if err := p.hit("assign"); err != nil {
				return err
			}
			*dst = *src
			return nil
		},
		Move: func(dst, src *int) error {
			if err := p.hit("move"); err != nil {
				return err
			}
			*dst, *src = *src, -1
			return nil
		},
		MoveAssign: func(dst, src *int) error {
			if err := p.hit("move"); err != nil {
				return err
			}
			*dst, *src = *src, -1
			return nil
		},
		Destroy: func(slot *int) {
			p.calls["destroy"]++
			*slot = 0
		},
		InfallibleMove: infallibleMove,
	}
}

func pushAll(t *testing.T, s *Sequence[int], vals ...int) {
	t.Helper()
	for _, v := range vals {
		if err := s.PushBack(v); err != nil {
			t.Fatalf("PushBack(%d) error = %v", v, err)
		}
	}
}

// fixed returns a sequence holding vals in storage of exactly len(vals)
// slots, so the next insertion has to grow.
func fixed(t *testing.T, traits Traits[int], vals ...int) *Sequence[int] {
	t.Helper()
	s := NewSequence(traits)
	if err := s.Reserve(len(vals)); err != nil {
		t.Fatalf("Reserve(%d) error = %v", len(vals), err)
	}
	pushAll(t, s, vals...)
	return s
}

func checkContents(t *testing.T, s *Sequence[int], want ...int) {
	t.Helper()
	got := slices.Collect(s.Values())
	if !slices.Equal(got, want) {
		t.Errorf("contents = %v, want %v", got, want)
	}
	if s.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", s.Len(), len(want))
	}
	if s.Len() > s.Cap() {
		t.Errorf("Len() = %d exceeds Cap() = %d", s.Len(), s.Cap())
	}
}

// resource stands in for an element owning something outside the
// sequence. closeLog counts how often each id was closed.
type resource struct{ id int }

type closeLog map[int]int

// traits moves by pointer transfer and copies into a fresh resource with
// id*10, so every closed id is attributable to one element.
func (l closeLog) traits() Traits[*resource] {
	return Traits[*resource]{
		Copy: func(dst, src **resource) error {
			*dst = &resource{id: (*src).id * 10}
			return nil
		},
		Destroy: func(slot **resource) {
			if *slot != nil {
				l[(*slot).id]++
			}
			*slot = nil
		},
		InfallibleMove: true,
	}
}

func moveAll(t *testing.T, s *Sequence[*resource], ids ...int) {
	t.Helper()
	for _, id := range ids {
		r := &resource{id: id}
		if err := s.MoveBack(&r); err != nil {
			t.Fatalf("MoveBack(%d) error = %v", id, err)
		}
	}
}

func checkClosed(t *testing.T, l closeLog, want map[int]int) {
	t.Helper()
	if !maps.Equal(l, closeLog(want)) {
		t.Errorf("closed = %v, want %v", l, want)
	}
}
