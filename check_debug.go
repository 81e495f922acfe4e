//go:build vectordebug

package vector

// checked enables contract assertions. Build with -tags vectordebug.
const checked = true
