//go:build !vectordebug

package vector

const checked = false
