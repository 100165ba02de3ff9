package x11

import "testing"

func TestPresentWithoutImageIsNoop(t *testing.T) {
	var s SurfaceWindow
	s.Present([]uint32{0xFF112233})
}
