package scene

// Flat is a terrain with the same elevation everywhere
type Flat int

func (f Flat) TileHeight(x, z, plane int) int {
	return int(f)
}

// Heightmap stores corner elevations per plane, indexed [plane][tileX][tileZ].
// A map of n x m tiles needs (n+1) x (m+1) corners.
type Heightmap struct {
	TileSize int
	Planes   [][][]int
}

// TileHeight interpolates bilinearly between the 4 corners of the tile under (x, z).
// Unknown planes and columns outside the map read as 0.
func (h *Heightmap) TileHeight(x, z, plane int) int {
	if h.TileSize <= 0 || plane < 0 || plane >= len(h.Planes) || x < 0 || z < 0 {
		return 0
	}

	corners := h.Planes[plane]
	tx, tz := x/h.TileSize, z/h.TileSize
	if tx+1 >= len(corners) || tz+1 >= len(corners[tx]) || tz+1 >= len(corners[tx+1]) {
		return 0
	}

	size := h.TileSize
	fx, fz := x%size, z%size
	south := (corners[tx][tz]*(size-fx) + corners[tx+1][tz]*fx) / size
	north := (corners[tx][tz+1]*(size-fx) + corners[tx+1][tz+1]*fx) / size

	return (south*(size-fz) + north*fz) / size
}
