package broadphase

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// CellKey is the integer coordinate of a grid cell.
type CellKey struct {
	X, Y, Z int
}

type cell struct {
	indices []int
	keys    []CellKey
}

// Grid is a uniform spatial hash: AABBs are inserted once, then Query finds
// the indices sharing a cell with a given box without testing every entry.
type Grid struct {
	cellSize float64
	cells    []cell
	cellMask int
}

// NewGrid returns a grid with the given cell size, sized to hold roughly
// numCells distinct hash buckets (rounded up to a power of two).
func NewGrid(cellSize float64, numCells int) *Grid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]cell, numCells)
	for i := range cells {
		cells[i].indices = make([]int, 0, 8)
	}

	return &Grid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Clear empties every cell, retaining their backing storage.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].indices = g.cells[i].indices[:0]
		g.cells[i].keys = g.cells[i].keys[:0]
	}
}

// Insert registers index against every cell its bounding box overlaps.
func (g *Grid) Insert(index int, box AABB) {
	minCell := g.worldToCell(box.Min)
	maxCell := g.worldToCell(box.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				key := CellKey{x, y, z}
				idx := g.hashCell(key)
				g.cells[idx].indices = append(g.cells[idx].indices, index)
				g.cells[idx].keys = append(g.cells[idx].keys, key)
			}
		}
	}
}

// Query returns the ascending, deduplicated indices of every entry whose
// cell range overlaps box's. Candidates share a cell with box but may still
// be AABB-disjoint from it (a box can span more cells than it truly
// touches); callers confirm with AABB.Overlaps before doing real geometry
// work, same as the teacher's FindPairs confirmed with Overlaps before
// reporting a pair.
func (g *Grid) Query(box AABB) []int {
	minCell := g.worldToCell(box.Min)
	maxCell := g.worldToCell(box.Max)

	seen := make(map[int]bool)
	var out []int
	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				key := CellKey{x, y, z}
				idx := g.hashCell(key)
				for n, j := range g.cells[idx].indices {
					// Entries from other cells can land in the same hash
					// bucket; only the ones registered under key count.
					if g.cells[idx].keys[n] == key && !seen[j] {
						seen[j] = true
						out = append(out, j)
					}
				}
			}
		}
	}

	sort.Ints(out)
	return out
}

func (g *Grid) worldToCell(pos mgl64.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X() / g.cellSize)),
		Y: int(math.Floor(pos.Y() / g.cellSize)),
		Z: int(math.Floor(pos.Z() / g.cellSize)),
	}
}

func (g *Grid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & g.cellMask
}
