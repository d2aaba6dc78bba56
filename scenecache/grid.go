package scenecache

import (
	"math"
	"sort"

	"github.com/golang/geo/r3"

	"github.com/meshforge/worldcollide/scene"
	"github.com/meshforge/worldcollide/spatialmath"
)

// cellSpan maps a 1D interval onto the clamped cell range it covers.
func cellSpan(lo, hi, origin, cellSize float64, cells int32) (int32, int32) {
	a := int32(math.Floor((lo - origin) / cellSize))
	b := int32(math.Floor((hi - origin) / cellSize))
	if a < 0 {
		a = 0
	}
	if b > cells-1 {
		b = cells - 1
	}
	return a, b
}

// buildGrid flattens per-cell triangle buckets into the shared CSR
// arrays. A record lands in every cell its XY bounding box touches, so
// the per-cell ranges are disjoint in the index array while a spanning
// triangle appears under several cells.
func buildGrid(records []TriangleRecord, bounds spatialmath.AABB, cellSize float64) (gridW, gridH int32, cellOffsets, cellCounts, triIndex []uint32) {
	gridW = gridCells(bounds.Max.X-bounds.Min.X, cellSize)
	gridH = gridCells(bounds.Max.Y-bounds.Min.Y, cellSize)

	cellCounts = make([]uint32, gridW*gridH)
	spans := make([][4]int32, len(records))
	total := 0
	for i := range records {
		rb := records[i].bounds()
		x0, x1 := cellSpan(rb.Min.X, rb.Max.X, bounds.Min.X, cellSize, gridW)
		y0, y1 := cellSpan(rb.Min.Y, rb.Max.Y, bounds.Min.Y, cellSize, gridH)
		spans[i] = [4]int32{x0, x1, y0, y1}
		for iy := y0; iy <= y1; iy++ {
			for ix := x0; ix <= x1; ix++ {
				cellCounts[iy*gridW+ix]++
				total++
			}
		}
	}

	cellOffsets = make([]uint32, gridW*gridH)
	var run uint32
	for i, n := range cellCounts {
		cellOffsets[i] = run
		run += n
	}

	triIndex = make([]uint32, total)
	cursor := make([]uint32, gridW*gridH)
	for i := range records {
		s := spans[i]
		for iy := s[2]; iy <= s[3]; iy++ {
			for ix := s[0]; ix <= s[1]; ix++ {
				cell := iy*gridW + ix
				triIndex[cellOffsets[cell]+cursor[cell]] = uint32(i)
				cursor[cell]++
			}
		}
	}
	return gridW, gridH, cellOffsets, cellCounts, triIndex
}

// QueryTrianglesInAABB returns the baked triangles whose bounds touch
// the storage-space box, each exactly once, ascending by id. This is the
// engine's cached broad phase.
func (c *Cache) QueryTrianglesInAABB(bounds spatialmath.AABB) []scene.TriangleRef {
	if len(c.records) == 0 || !c.bounds.Intersects(bounds) {
		return nil
	}
	origin := c.gridOrigin()
	x0, x1 := cellSpan(bounds.Min.X, bounds.Max.X, origin.X, c.cellSize, c.gridW)
	y0, y1 := cellSpan(bounds.Min.Y, bounds.Max.Y, origin.Y, c.cellSize, c.gridH)

	visited := make(map[uint32]struct{})
	var ids []uint32
	for iy := y0; iy <= y1; iy++ {
		for ix := x0; ix <= x1; ix++ {
			cell := iy*c.gridW + ix
			start := c.cellOffsets[cell]
			for k := start; k < start+c.cellCounts[cell]; k++ {
				id := c.triIndex[k]
				if _, seen := visited[id]; seen {
					continue
				}
				visited[id] = struct{}{}
				if !c.records[id].bounds().Intersects(bounds) {
					continue
				}
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	refs := make([]scene.TriangleRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, c.Triangle(id))
	}
	return refs
}

// GroundZ interpolates the baked surface height directly under or over
// (x, y). With stacked surfaces in the column the one nearest the query
// height wins, so a probe on a bridge stays on the bridge instead of
// snapping to the ravine floor under it.
func (c *Cache) GroundZ(x, y, z float64) (float64, bool) {
	if len(c.records) == 0 {
		return 0, false
	}
	origin := c.gridOrigin()
	fx := (x - origin.X) / c.cellSize
	fy := (y - origin.Y) / c.cellSize
	if fx < 0 || fy < 0 || fx >= float64(c.gridW) || fy >= float64(c.gridH) {
		return 0, false
	}
	cell := int32(fy)*c.gridW + int32(fx)

	var best float64
	found := false
	start := c.cellOffsets[cell]
	for k := start; k < start+c.cellCounts[cell]; k++ {
		rec := &c.records[c.triIndex[k]]
		if x < min3(rec.V0.X, rec.V1.X, rec.V2.X) || x > max3(rec.V0.X, rec.V1.X, rec.V2.X) ||
			y < min3(rec.V0.Y, rec.V1.Y, rec.V2.Y) || y > max3(rec.V0.Y, rec.V1.Y, rec.V2.Y) {
			continue
		}
		w0, w1, w2, ok := barycentricXY(x, y, rec.V0, rec.V1, rec.V2)
		if !ok {
			continue
		}
		zi := w0*rec.V0.Z + w1*rec.V1.Z + w2*rec.V2.Z
		if !found || math.Abs(zi-z) < math.Abs(best-z) {
			best = zi
			found = true
		}
	}
	return best, found
}

// barycentricXY solves for the weights of (px, py) in the triangle's XY
// projection. ok is false outside the triangle or when the projection is
// degenerate. The slightly negative tolerance keeps a point on a shared
// edge inside both neighboring triangles.
func barycentricXY(px, py float64, a, b, c r3.Vector) (float64, float64, float64, bool) {
	abx, aby := b.X-a.X, b.Y-a.Y
	acx, acy := c.X-a.X, c.Y-a.Y
	den := abx*acy - acx*aby
	if math.Abs(den) < 1e-12 {
		return 0, 0, 0, false
	}
	px0, py0 := px-a.X, py-a.Y
	w1 := (px0*acy - acx*py0) / den
	w2 := (abx*py0 - px0*aby) / den
	w0 := 1 - w1 - w2
	const tol = -1e-9
	if w0 < tol || w1 < tol || w2 < tol {
		return 0, 0, 0, false
	}
	return w0, w1, w2, true
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
