package ascii

// grid is a fixed-size character matrix addressed by 1-based (row, column)
// coordinates matching the layout math: row 1 is the first leaf, column 1 is
// the most recent sampling time. Rows are reversed on serialization so the
// root ends up on the left of each printed line.
type grid struct {
	rows, cols int
	cells      [][]rune
}

func newGrid(rows, cols int) *grid {
	cells := make([][]rune, rows)
	for i := range cells {
		row := make([]rune, cols)
		for j := range row {
			row[j] = ' '
		}
		cells[i] = row
	}
	return &grid{rows: rows, cols: cols, cells: cells}
}

// set writes a single cell. Out-of-range coordinates are ignored rather than
// panicking; rounding can push an elbow onto the grid border.
func (g *grid) set(row, col int, r rune) {
	if row < 1 || row > g.rows || col < 1 || col > g.cols {
		return
	}
	g.cells[row-1][col-1] = r
}

func (g *grid) at(row, col int) rune {
	return g.cells[row-1][col-1]
}

// drawEdge rasterizes the elbow connector between a child cell and its
// parent cell: a horizontal '-' run along the child's row up to the parent's
// column, then a vertical '|' run in the parent's column with '/' at the top
// end and '\' at the bottom end. When child and parent share a row the
// vertical run degenerates and neither '|' nor elbows are drawn.
func (g *grid) drawEdge(childRow, childCol, parentRow, parentCol int) {
	for col := childCol; col <= parentCol; col++ {
		g.set(childRow, col, '-')
	}

	if childRow == parentRow {
		return
	}
	top, bottom := childRow, parentRow
	if top > bottom {
		top, bottom = bottom, top
	}
	for row := top; row <= bottom; row++ {
		g.set(row, parentCol, '|')
	}
	g.set(top, parentCol, '/')
	g.set(bottom, parentCol, '\\')
}

// drawLeaders fills the blank cells on the root side of a leaf marker with
// the dot-leader character, up to the grid border. Existing strokes and
// markers are never overwritten.
func (g *grid) drawLeaders(row, col int) {
	if row < 1 || row > g.rows {
		return
	}
	for c := col + 1; c <= g.cols; c++ {
		if g.at(row, c) == ' ' {
			g.set(row, c, leader)
		}
	}
}

// reversedRow serializes one row with its columns reversed, so the root-side
// border prints first.
func (g *grid) reversedRow(row int) string {
	src := g.cells[row-1]
	out := make([]rune, len(src))
	for i, r := range src {
		out[len(src)-1-i] = r
	}
	return string(out)
}
