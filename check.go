package vector

// assert panics with msg when cond is false in checked builds.
// Release builds compile the call away.
func assert(cond bool, msg string) {
	if checked && !cond {
		panic("vector: " + msg)
	}
}
