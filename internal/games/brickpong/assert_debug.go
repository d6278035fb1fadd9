//go:build debug

package brickpong

import "fmt"

// debugAssertions reports whether invariant checks panic.
const debugAssertions = true

// assertf panics when cond is false. Build with -tags debug to enable.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("brickpong: invariant violated: "+format, args...))
	}
}
