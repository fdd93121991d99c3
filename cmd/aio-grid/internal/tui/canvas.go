package tui

// canvas is a plain rune grid the sections are composited onto. Styling
// happens after composition so column arithmetic never sees ANSI codes.
type canvas struct {
	cells [][]rune
	w, h  int
}

func newCanvas(w, h int) *canvas {
	cells := make([][]rune, h)
	for i := range cells {
		row := make([]rune, w)
		for j := range row {
			row[j] = ' '
		}
		cells[i] = row
	}
	return &canvas{cells: cells, w: w, h: h}
}

func (c *canvas) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = r
}

// drawBox renders one cell's outline and label. Boxes shorter than two
// rows degrade to a bare label so dense layouts stay readable.
func (c *canvas) drawBox(x, y, w, h int, label string) {
	if w < 2 || h < 2 {
		c.drawText(x, y, w, label)
		return
	}

	for i := 1; i < w-1; i++ {
		c.set(x+i, y, '─')
		c.set(x+i, y+h-1, '─')
	}
	for i := 1; i < h-1; i++ {
		c.set(x, y+i, '│')
		c.set(x+w-1, y+i, '│')
	}
	c.set(x, y, '┌')
	c.set(x+w-1, y, '┐')
	c.set(x, y+h-1, '└')
	c.set(x+w-1, y+h-1, '┘')

	c.drawText(x+1, y+1, w-2, label)
}

func (c *canvas) drawText(x, y, maxW int, s string) {
	runes := []rune(s)
	if len(runes) > maxW && maxW > 1 {
		runes = append(runes[:maxW-1], '…')
	}
	for i, r := range runes {
		if i >= maxW {
			break
		}
		c.set(x+i, y, r)
	}
}

func (c *canvas) lines() [][]rune {
	return c.cells
}
