package grid

// TileSize is the side of one tile in pixels.
const TileSize = 32

// Point is a tile address together with the pixel position of its
// top-left corner. The pixel fields are derived from the tile fields.
type Point struct {
	x, y           int
	pixelX, pixelY float32
}

func newPoint(x, y int) Point {
	return Point{
		x:      x,
		y:      y,
		pixelX: float32(x * TileSize),
		pixelY: float32(y * TileSize),
	}
}

func (p Point) X() int          { return p.x }
func (p Point) Y() int          { return p.y }
func (p Point) PixelX() float32 { return p.pixelX }
func (p Point) PixelY() float32 { return p.pixelY }

// Grid converts between pixel space and tiles. It is computed once from the
// viewport and never changes.
type Grid struct {
	rows    int
	columns int
}

// New computes the grid for a viewport. The size is not validated.
func New(viewportWidth, viewportHeight float32) Grid {
	return Grid{
		rows:    int(viewportHeight) / TileSize,
		columns: int(viewportWidth) / TileSize,
	}
}

func (g Grid) Rows() int    { return g.rows }
func (g Grid) Columns() int { return g.columns }

// PointAt snaps a pixel position to the tile containing it.
func (g Grid) PointAt(pixelX, pixelY float32) Point {
	return newPoint(int(pixelX)/TileSize, int(pixelY)/TileSize)
}

// TileAt returns the point for a tile index.
func (g Grid) TileAt(x, y int) Point {
	return g.PointAt(float32(x*TileSize), float32(y*TileSize))
}

// Advance moves a point one tile in the given direction. There is no
// clamping or wraparound: off-grid points are valid.
func (g Grid) Advance(p Point, d Direction) Point {
	dx, dy := d.Delta()
	return Point{
		x:      p.x + dx,
		y:      p.y + dy,
		pixelX: p.pixelX + float32(dx*TileSize),
		pixelY: p.pixelY + float32(dy*TileSize),
	}
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.x >= 0 && p.x < g.columns && p.y >= 0 && p.y < g.rows
}
