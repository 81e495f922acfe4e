// Package vector implements a growable contiguous sequence with explicit
// control over storage allocation and element lifetime.
//
// # Overview
//
// The package has two layers:
//
//   - Storage owns a block of slots sized for a fixed capacity. It never
//     constructs or destroys elements and must not be copied; ownership
//     moves with Take and Swap.
//   - Sequence owns one Storage and tracks how many of its leading slots
//     hold live elements. Every element operation goes through Sequence,
//     which allocates new storage, migrates elements, destroys the old ones
//     and adopts the new block.
//
// Go zero-initializes memory, so a raw slot is a slot at or past Len(),
// whatever it holds. An element only becomes live when the sequence runs
// one of its Traits hooks on that slot.
//
// # Basic Usage
//
//	s := vector.New[int]()
//	defer s.Release()
//
//	_ = s.PushBack(1)
//	_ = s.PushBack(3)
//	_, _ = s.Insert(1, 2)    // [1 2 3]
//	_, _ = s.Erase(0)        // [2 3]
//	_ = s.Reserve(16)        // capacity 16, elements unchanged
//
//	for i, v := range s.All() {
//		fmt.Println(i, v)
//	}
//
// # Element Lifetime
//
// Traits carries the Construct, Copy, Assign, Move, MoveAssign and Destroy
// hooks and the InfallibleMove flag. Reallocation relocates elements with
// Move when the flag is set and copies them otherwise, so a failure halfway
// through a migration never leaves the original elements half moved.
// Shifting in Emplace and Erase overwrites live elements with MoveAssign,
// whose default destroys the element it replaces.
//
// Destroy runs on moved-from values too (the default Move leaves the zero
// value behind), so it must accept them:
//
//	tr := vector.Traits[*Conn]{
//		Copy: func(dst, src **Conn) error { c, err := (*src).Dup(); *dst = c; return err },
//		Destroy: func(slot **Conn) {
//			if *slot != nil {
//				(*slot).Close()
//			}
//			*slot = nil
//		},
//	}
//	conns := vector.NewSequence(tr)
//
// # Failure Guarantees
//
// Allocation failures wrap ErrAllocation, including a growth step past the
// largest capacity, which also wraps ErrCapacityOverflow. Hook errors are
// returned as is.
//
//   - Strong (s unchanged): appending or inserting into full storage,
//     Reserve, and Assign from a sequence larger than Cap().
//   - Basic (s valid, partly updated): Assign into existing capacity,
//     shifting moves in Emplace and Erase.
//
// When a copy fails while migrating into new storage, the copies already
// placed there are abandoned without their Destroy hook running. Metrics
// reports them through SequenceMetrics.Abandoned.
//
// # Checked Builds
//
// Position and precondition checks (At, PopBack, Emplace, Erase, Storage
// slot access) are compiled in only with the vectordebug build tag:
//
//	go test -tags vectordebug ./...
//
// Violations then panic immediately. Without the tag only Go's own slice
// bounds checks apply, which cover the storage block but not the live range.
//
// # Thread Safety
//
// Nothing in this package is goroutine-safe. Callers serialize access.
package vector
