// Package memzero provides best-effort erasure of sensitive byte slices.
package memzero

import "runtime"

// Zero overwrites b with zeros without allocating. Best-effort: the buffer
// is kept alive past the loop so the compiler cannot elide the writes.
//
//go:noinline
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
