package scenecache

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"

	"github.com/meshforge/worldcollide/logging"
)

const (
	cacheMagic   uint32 = 0x57435343 // "WCSC"
	cacheVersion uint32 = 1
)

// cacheWriter and cacheReader thread one error through the fixed field
// sequence so the layout reads as a layout.
type cacheWriter struct {
	w   io.Writer
	err error
}

func (cw *cacheWriter) write(v interface{}) {
	if cw.err == nil {
		cw.err = binary.Write(cw.w, binary.LittleEndian, v)
	}
}

type cacheReader struct {
	r   io.Reader
	err error
}

func (cr *cacheReader) read(v interface{}) {
	if cr.err == nil {
		cr.err = binary.Read(cr.r, binary.LittleEndian, v)
	}
}

// Encode writes the cache in its fixed little-endian layout: magic,
// version, map id, triangle count, collision grid parameters, bounds,
// liquid grid parameters, then the record, cell, index, and liquid
// arrays. Floats round-trip bit for bit.
func (c *Cache) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	cw := &cacheWriter{w: bw}
	cw.write(cacheMagic)
	cw.write(cacheVersion)
	cw.write(c.mapID)
	cw.write(uint32(len(c.records)))
	cw.write(c.cellSize)
	cw.write(c.gridW)
	cw.write(c.gridH)
	cw.write(c.bounds.Min)
	cw.write(c.bounds.Max)
	if c.liquid != nil {
		cw.write(c.liquid.cellSize)
		cw.write(c.liquid.width)
		cw.write(c.liquid.height)
		cw.write(c.liquid.origin)
	} else {
		cw.write(float64(0))
		cw.write(int32(0))
		cw.write(int32(0))
		cw.write(r2.Point{})
	}
	cw.write(c.records)
	cw.write(c.cellOffsets)
	cw.write(c.cellCounts)
	cw.write(uint32(len(c.triIndex)))
	cw.write(c.triIndex)
	if c.liquid != nil {
		cw.write(c.liquid.cells)
	}
	if cw.err != nil {
		return errors.Wrap(cw.err, "encoding scene cache")
	}
	return bw.Flush()
}

// Decode reads a cache written by Encode. Magic and version are checked
// before anything else is trusted; a mismatch yields no cache at all.
func Decode(r io.Reader) (*Cache, error) {
	br := bufio.NewReader(r)
	var magic uint32
	if err := binary.Read(br, binary.LittleEndian, &magic); err != nil {
		return nil, errors.Wrap(err, "reading scene cache magic")
	}
	if magic != cacheMagic {
		return nil, errors.Errorf("not a scene cache: magic 0x%08X, want 0x%08X", magic, cacheMagic)
	}
	var version uint32
	if err := binary.Read(br, binary.LittleEndian, &version); err != nil {
		return nil, errors.Wrap(err, "reading scene cache version")
	}
	if version != cacheVersion {
		return nil, errors.Errorf("unsupported scene cache version %d, want %d", version, cacheVersion)
	}

	cr := &cacheReader{r: br}
	c := &Cache{}
	var triCount uint32
	cr.read(&c.mapID)
	cr.read(&triCount)
	cr.read(&c.cellSize)
	cr.read(&c.gridW)
	cr.read(&c.gridH)
	cr.read(&c.bounds.Min)
	cr.read(&c.bounds.Max)
	var (
		lCellSize float64
		lw, lh    int32
		lOrigin   r2.Point
	)
	cr.read(&lCellSize)
	cr.read(&lw)
	cr.read(&lh)
	cr.read(&lOrigin)
	if cr.err != nil {
		return nil, errors.Wrap(cr.err, "reading scene cache header")
	}
	if c.cellSize <= 0 || c.gridW < 1 || c.gridH < 1 {
		return nil, errors.Errorf("corrupt scene cache: %dx%d grid with cell size %f",
			c.gridW, c.gridH, c.cellSize)
	}

	cells := int(c.gridW) * int(c.gridH)
	c.records = make([]TriangleRecord, triCount)
	cr.read(c.records)
	c.cellOffsets = make([]uint32, cells)
	cr.read(c.cellOffsets)
	c.cellCounts = make([]uint32, cells)
	cr.read(c.cellCounts)
	var idxCount uint32
	cr.read(&idxCount)
	if cr.err == nil {
		c.triIndex = make([]uint32, idxCount)
		cr.read(c.triIndex)
	}
	if lw > 0 && lh > 0 {
		g := &LiquidGrid{
			origin:   lOrigin,
			cellSize: lCellSize,
			width:    lw,
			height:   lh,
			cells:    make([]LiquidCell, int(lw)*int(lh)),
		}
		cr.read(g.cells)
		c.liquid = g
	}
	if cr.err != nil {
		return nil, errors.Wrap(cr.err, "reading scene cache body")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes the cache to path, replacing any existing file.
func (c *Cache) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating scene cache %s", path)
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	return c.Encode(f)
}

// Load reads a cache file written by Save.
func Load(path string, logger logging.Logger) (*Cache, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening scene cache %s", path)
	}
	defer utils.UncheckedErrorFunc(f.Close)
	c, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading scene cache %s", path)
	}
	logger.Debugw("scene cache loaded",
		"path", path,
		"map_id", c.mapID,
		"triangles", len(c.records),
	)
	return c, nil
}
