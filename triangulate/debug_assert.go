//go:build !nodebugassert

package triangulate

// debugAssert runs the full consistency check after every mutating call.
// Build with -tags nodebugassert to drop it from a release binary.
func (t *Triangulation) debugAssert() {
	t.CheckInvariants()
}
