package brickpong

import (
	"github.com/vovakirdan/brickpong/internal/core"
)

// quadrants lists the grid directions from the playfield center.
var quadrants = [4]struct{ sx, sy float64 }{
	{1, 1},
	{-1, 1},
	{1, -1},
	{-1, -1},
}

// layoutBricks fills a grid radiating from the playfield center into all four
// quadrants. Cells are sized so that Divisions of them span Spread times the
// half-width (and half-height); each holds a brick with the configured
// probability.
func (g *Game) layoutBricks() []Brick {
	bc := g.cfg.Bricks
	if !bc.Enabled || !g.sized || bc.Divisions <= 0 {
		return nil
	}

	cx, cy := g.width/2, g.height/2
	w := bc.Spread * cx / float64(bc.Divisions)
	h := bc.Spread * cy / float64(bc.Divisions)

	cols := gridSize(bc.Columns, g.width, w)
	rows := gridSize(bc.Rows, g.height, h)

	bricks := make([]Brick, 0, 4*cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			color := core.BrickPalette[core.Max(row, col)%len(core.BrickPalette)]

			if bc.Mirror {
				if !g.roll(bc.Probability) {
					continue
				}
				for _, q := range quadrants {
					bricks = append(bricks, newBrick(cx, cy, w, h, col, row, q.sx, q.sy, color))
				}
				continue
			}

			for _, q := range quadrants {
				if g.roll(bc.Probability) {
					bricks = append(bricks, newBrick(cx, cy, w, h, col, row, q.sx, q.sy, color))
				}
			}
		}
	}
	return bricks
}

// gridSize returns the cells per quadrant along one axis. Zero derives the
// count so the grid reaches a third of the playfield extent from the center.
func gridSize(n int, extent, cell float64) int {
	if n > 0 {
		return n
	}
	return int(extent / 3 / cell)
}

// newBrick places the cell (col, row) of the quadrant given by (sx, sy).
// Cell (0, 0) of every quadrant touches the center.
func newBrick(cx, cy, w, h float64, col, row int, sx, sy float64, color core.Color) Brick {
	left := cx + float64(col)*w
	if sx < 0 {
		left = cx - float64(col+1)*w
	}
	top := cy + float64(row)*h
	if sy < 0 {
		top = cy - float64(row+1)*h
	}
	return Brick{
		Rect:   core.RectFromSize(left, top, w, h),
		Health: 1,
		Color:  color,
	}
}

func (g *Game) roll(p float64) bool {
	return g.rng.Float64() < p
}
