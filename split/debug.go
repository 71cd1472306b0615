package split

import "github.com/akmonengine/planesplit/geom"

// Dump records one complete reset/add*/sort cycle of a wrapped Splitter, for
// external serialization (see DebugWrap).
type Dump[A comparable] struct {
	Input  []Polygon[A] `yaml:"input"`
	View   geom.Vec3    `yaml:"view"`
	Output []Polygon[A] `yaml:"output"`
}

// DebugWrap decorates a Splitter, recording every Reset/Add/Sort call into a
// Dump. It is a pure pass-through: the wrapped splitter's semantics are
// unchanged.
type DebugWrap[A comparable] struct {
	inner Splitter[A]
	dump  Dump[A]
}

// NewDebugWrap wraps inner.
func NewDebugWrap[A comparable](inner Splitter[A]) *DebugWrap[A] {
	return &DebugWrap[A]{inner: inner}
}

// Dump returns the most recently recorded work.
func (d *DebugWrap[A]) Dump() Dump[A] {
	return d.dump
}

func (d *DebugWrap[A]) Reset() {
	d.dump.Input = d.dump.Input[:0]
	d.inner.Reset()
}

func (d *DebugWrap[A]) Add(poly Polygon[A]) {
	d.dump.Input = append(d.dump.Input, poly)
	d.inner.Add(poly)
}

func (d *DebugWrap[A]) Sort(view geom.Vec3) []Polygon[A] {
	d.dump.View = view
	out := d.inner.Sort(view)
	d.dump.Output = append(d.dump.Output[:0], out...)
	return out
}

func (d *DebugWrap[A]) Solve(input []Polygon[A], view geom.Vec3) []Polygon[A] {
	d.Reset()
	for _, p := range input {
		d.Add(p)
	}
	return d.Sort(view)
}

var _ Splitter[int] = (*DebugWrap[int])(nil)
