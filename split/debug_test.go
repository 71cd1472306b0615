package split

import (
	"testing"

	"github.com/akmonengine/planesplit/geom"
)

func TestDebugWrapRecordsDump(t *testing.T) {
	inner := NewNaiveSplitter[int]()
	wrap := NewDebugWrap[int](inner)

	input := []Polygon[int]{unitSquareXY(0), unitSquareXY(1)}
	view := geom.Vec3{0, 0, 1}

	out := wrap.Solve(input, view)

	dump := wrap.Dump()
	if len(dump.Input) != len(input) {
		t.Errorf("dump recorded %d inputs, want %d", len(dump.Input), len(input))
	}
	if dump.View != view {
		t.Errorf("dump recorded view %v, want %v", dump.View, view)
	}
	if len(dump.Output) != len(out) {
		t.Errorf("dump recorded %d outputs, want %d", len(dump.Output), len(out))
	}
}

func TestDebugWrapIsPassthrough(t *testing.T) {
	plain := NewNaiveSplitter[int]()
	wrapped := NewDebugWrap[int](NewNaiveSplitter[int]())

	input := MakeGrid(2)
	view := geom.Vec3{1, 1, 1}

	plainOut := plain.Solve(input, view)
	wrappedOut := wrapped.Solve(input, view)

	if len(plainOut) != len(wrappedOut) {
		t.Errorf("wrapping changed the result size: plain=%d wrapped=%d", len(plainOut), len(wrappedOut))
	}
}

var _ Splitter[int] = (*DebugWrap[int])(nil)
