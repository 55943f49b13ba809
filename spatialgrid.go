package bounds

import (
	"sort"

	"github.com/akmonengine/bounds/actor"
	"github.com/akmonengine/bounds/vector"
)

// ============================================================================
// Types
// ============================================================================

// CellKey - Coordinates of a cell in world space
type CellKey struct {
	X, Y, Z int
}

// Cell - Volume indices stored in a cell
type Cell struct {
	indices []int
}

// SpatialGrid - Uniform hashed grid, broad phase for world region queries
type SpatialGrid struct {
	cellSize int
	cells    []Cell
	cellMask int
}

// ============================================================================
// Constructor
// ============================================================================

// NewSpatialGrid - Creates a grid of cellSize world units, with numCells buckets
// rounded up to a power of two
func NewSpatialGrid(cellSize int, numCells int) *SpatialGrid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].indices = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize: max(1, cellSize),
		cells:    cells,
		cellMask: numCells - 1,
	}
}

// nextPowerOfTwo - Rounds up to the next power of two
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

// Insert - Adds an index to every cell the box covers
func (sg *SpatialGrid) Insert(index int, box actor.Box) {
	sg.forEachCell(box, func(cellIdx int) {
		sg.cells[cellIdx].indices = append(sg.cells[cellIdx].indices, index)
	})
}

func (sg *SpatialGrid) Clear() {
	for i := range sg.cells {
		sg.cells[i].indices = sg.cells[i].indices[:0]
	}
}

// Query - Returns the sorted, unique indices stored in the cells region covers.
// Hash collisions can add false positives; callers confirm with an exact test.
func (sg *SpatialGrid) Query(region actor.Box) []int {
	seen := make(map[int]struct{})
	sg.forEachCell(region, func(cellIdx int) {
		for _, index := range sg.cells[cellIdx].indices {
			seen[index] = struct{}{}
		}
	})

	found := make([]int, 0, len(seen))
	for index := range seen {
		found = append(found, index)
	}
	sort.Ints(found)

	return found
}

func (sg *SpatialGrid) forEachCell(box actor.Box, fn func(cellIdx int)) {
	minCell := sg.worldToCell(box.Start)
	maxCell := sg.worldToCell(box.End)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				fn(sg.hashCell(CellKey{x, y, z}))
			}
		}
	}
}

// worldToCell - Converts a world position to cell coordinates
func (sg *SpatialGrid) worldToCell(pos vector.Vector3) CellKey {
	return CellKey{
		X: floorDiv(pos.X, sg.cellSize),
		Y: floorDiv(pos.Y, sg.cellSize),
		Z: floorDiv(pos.Z, sg.cellSize),
	}
}

// hashCell - Hashes a cell to an index in the array
func (sg *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & sg.cellMask
}

// floorDiv rounds toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
