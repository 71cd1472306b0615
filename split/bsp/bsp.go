// Package bsp implements a binary space partitioning splitter: a tree that
// simultaneously partitions space and produces a back-to-front traversal
// relative to a view direction.
package bsp

import (
	"github.com/akmonengine/planesplit/geom"
	"github.com/akmonengine/planesplit/metrics"
	"github.com/akmonengine/planesplit/split"
)

// Node is a node in a BSP tree. Its Values are mutually coplanar (all
// sharing the same geometric plane, modulo normal direction); Front and Back
// own their subtrees exclusively.
type Node[A comparable] struct {
	Values []split.Polygon[A]
	Front  *Node[A]
	Back   *Node[A]
}

// NewNode returns an empty node.
func NewNode[A comparable]() *Node[A] {
	return &Node[A]{}
}

// Insert adds value to the subtree rooted at n, splitting it by the node's
// base plane (Values[0]'s plane) if it isn't already empty.
func (n *Node[A]) Insert(value split.Polygon[A]) {
	if len(n.Values) == 0 {
		n.Values = append(n.Values, value)
		metrics.RecordFragment()
		return
	}

	cut := split.Cut(n.Values[0], value)
	if cut.IsSibling() {
		n.Values = append(n.Values, *cut.Sibling)
		metrics.RecordFragment()
		return
	}

	addSide(&n.Front, cut.Front)
	addSide(&n.Back, cut.Back)
}

func addSide[A comparable](side **Node[A], polys []split.Polygon[A]) {
	if len(polys) == 0 {
		return
	}
	if *side == nil {
		*side = NewNode[A]()
	}
	for _, p := range polys {
		(*side).Insert(p)
	}
}

// isAligned reports whether other's plane normal points into the same
// half-space as base's plane normal (used to decide traversal order).
func isAligned[A comparable](base, other split.Polygon[A]) bool {
	return base.Plane.Normal.Dot(other.Plane.Normal) > 0
}

// Order appends this subtree's polygons to out in back-to-front order
// relative to base, whose plane normal encodes the view direction (see
// Splitter.Sort: base.Plane.Normal is set to -view).
func (n *Node[A]) Order(base split.Polygon[A], out []split.Polygon[A]) []split.Polygon[A] {
	if len(n.Values) == 0 {
		return out
	}

	former, latter := n.Front, n.Back
	if !isAligned(base, n.Values[0]) {
		former, latter = n.Back, n.Front
	}

	if former != nil {
		out = former.Order(base, out)
	}
	out = append(out, n.Values...)
	if latter != nil {
		out = latter.Order(base, out)
	}

	return out
}

// Splitter is a binary-space-partitioning Splitter: Add incorporates
// polygons incrementally into the tree, and Sort traverses it back-to-front
// relative to view.
type Splitter[A comparable] struct {
	tree   *Node[A]
	result []split.Polygon[A]
}

// New returns an empty BSP splitter.
func New[A comparable]() *Splitter[A] {
	return &Splitter[A]{tree: NewNode[A]()}
}

func (s *Splitter[A]) Reset() {
	s.tree = NewNode[A]()
}

func (s *Splitter[A]) Add(poly split.Polygon[A]) {
	s.tree.Insert(poly)
}

// Sort returns a back-to-front traversal of the tree relative to view,
// which should point toward the camera.
func (s *Splitter[A]) Sort(view geom.Vec3) []split.Polygon[A] {
	var zero A
	base := split.Polygon[A]{
		Plane:  geom.Plane{Normal: view.Mul(-1), Offset: 0},
		Anchor: zero,
	}

	s.result = s.result[:0]
	s.result = s.tree.Order(base, s.result)
	return s.result
}

// Solve is Reset + Add(each of input) + Sort(view).
func (s *Splitter[A]) Solve(input []split.Polygon[A], view geom.Vec3) []split.Polygon[A] {
	s.Reset()
	for _, p := range input {
		s.Add(p)
	}
	return s.Sort(view)
}

var _ split.Splitter[int] = (*Splitter[int])(nil)
