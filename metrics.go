package vector

// counters tracks element lifecycle work done by one Sequence. Counters
// stay with the Sequence value; Swap and Take do not exchange them.
type counters struct {
	reallocations int
	constructions int
	destructions  int
}

func (c *counters) merge(o counters) {
	c.reallocations += o.reallocations
	c.constructions += o.constructions
	c.destructions += o.destructions
}

// Bytes returns the size in bytes of the current storage.
func (s *Sequence[T]) Bytes() int {
	return s.data.Bytes()
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the sequence has no capacity.
func (s *Sequence[T]) Utilization() float64 {
	capacity := s.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(s.size) / float64(capacity)
}

// Reallocations returns how many times the sequence replaced its storage
// with a larger one.
func (s *Sequence[T]) Reallocations() int {
	return s.stats.reallocations
}

// Constructions returns how many elements the sequence brought to life,
// including elements relocated into new storage.
func (s *Sequence[T]) Constructions() int {
	return s.stats.constructions
}

// Destructions returns how many elements the sequence destroyed.
func (s *Sequence[T]) Destructions() int {
	return s.stats.destructions
}

// Metrics returns a snapshot of sequence statistics.
func (s *Sequence[T]) Metrics() SequenceMetrics {
	return SequenceMetrics{
		Len:           s.Len(),
		Cap:           s.Cap(),
		Bytes:         s.Bytes(),
		Utilization:   s.Utilization(),
		Reallocations: s.Reallocations(),
		Constructions: s.Constructions(),
		Destructions:  s.Destructions(),
	}
}

// SequenceMetrics contains statistical information about a sequence.
type SequenceMetrics struct {
	Len           int     // Live elements
	Cap           int     // Slots in the current storage
	Bytes         int     // Size of the current storage in bytes
	Utilization   float64 // Ratio of live elements to slots (0.0-1.0)
	Reallocations int     // Storage replacements
	Constructions int     // Elements constructed, copied or relocated into a slot
	Destructions  int     // Elements destroyed
}

// Abandoned returns the number of elements that were constructed but are
// neither live nor destroyed: copies left behind in storage abandoned by a
// failed migration. Only meaningful for a sequence that never exchanged
// elements with another through Swap, Take or MoveFrom.
func (m SequenceMetrics) Abandoned() int {
	return m.Constructions - m.Destructions - m.Len
}
