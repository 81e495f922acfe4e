package vector

// Traits describes how a Sequence brings elements of T to life, transfers
// them and ends their lifetime. Every hook is invoked explicitly by the
// Sequence on a single slot; a nil hook falls back to plain Go value
// semantics.
//
// Hooks that write into a raw slot (Construct, Copy, Move) must leave the
// slot raw when they return an error. Hooks that overwrite a live slot
// (Assign, MoveAssign) end the lifetime of the value they replace and leave
// the slot live whether or not they fail.
//
// Destroy also runs on moved-from values.
type Traits[T any] struct {
	// Construct initializes a default value in a raw slot.
	Construct func(slot *T) error

	// Copy initializes dst from src without disturbing src.
	Copy func(dst, src *T) error

	// Assign overwrites the live element dst with a copy of src.
	Assign func(dst, src *T) error

	// Move transfers the value of src into the raw slot dst. src stays
	// live in a moved-from state until it is destroyed or overwritten.
	Move func(dst, src *T) error

	// MoveAssign transfers the value of src into the live element dst,
	// leaving src moved-from. Used when shifting elements.
	MoveAssign func(dst, src *T) error

	// Destroy ends the lifetime of a live element. It cannot fail.
	Destroy func(slot *T)

	// InfallibleMove declares that Move never fails. Reallocation relocates
	// elements with Move when it is set and copies them otherwise, so a
	// failed migration never leaves the originals half moved.
	InfallibleMove bool
}

// DefaultTraits returns value-semantics traits for T: Construct yields the
// zero value, Copy is plain assignment, Move zeroes its source and Destroy
// zeroes the slot so the collector can reclaim what it referenced.
// Relocation never fails.
func DefaultTraits[T any]() Traits[T] {
	return Traits[T]{InfallibleMove: true}.withDefaults()
}

func (tr Traits[T]) withDefaults() Traits[T] {
	if tr.Construct == nil {
		tr.Construct = func(slot *T) error {
			var zero T
			*slot = zero
			return nil
		}
	}
	if tr.Copy == nil {
		tr.Copy = func(dst, src *T) error {
			*dst = *src
			return nil
		}
	}
	if tr.Move == nil {
		tr.Move = func(dst, src *T) error {
			var zero T
			*dst, *src = *src, zero
			return nil
		}
	}
	if tr.Destroy == nil {
		tr.Destroy = func(slot *T) {
			var zero T
			*slot = zero
		}
	}
	if tr.Assign == nil {
		tr.Assign = replaceWith(tr.Copy, tr.Destroy)
	}
	if tr.MoveAssign == nil {
		tr.MoveAssign = replaceWith(tr.Move, tr.Destroy)
	}
	return tr
}

// replaceWith builds an overwrite of a live slot from a hook that fills a
// raw one: the new value is built aside first, so dst keeps its old value
// when build fails, and the old value is destroyed before it is replaced.
func replaceWith[T any](build func(dst, src *T) error, destroy func(*T)) func(dst, src *T) error {
	return func(dst, src *T) error {
		var next T
		if err := build(&next, src); err != nil {
			return err
		}
		destroy(dst)
		*dst = next
		return nil
	}
}
