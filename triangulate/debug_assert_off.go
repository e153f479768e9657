//go:build nodebugassert

package triangulate

func (t *Triangulation) debugAssert() {}
