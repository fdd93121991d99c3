package masonry

import (
	"errors"
	"math"
)

// Packing errors returned by [Packer.Place].
var (
	// ErrMissingDimensions marks an item without a usable aspect ratio.
	// Callers skip the item silently; it stays in the ordered item list.
	ErrMissingDimensions = errors.New("item has no source dimensions")
	// ErrInvalidHeight marks an item whose derived height is non-finite
	// or not positive. Callers log and continue with the batch.
	ErrInvalidHeight = errors.New("derived item height is not positive")
)

// Packer assigns items to fixed-width columns, always extending the
// currently shortest column. It is strictly greedy and online: the result
// is optimal only relative to insertion order, never a global bin-packing
// optimum, which is exactly what makes replays deterministic.
type Packer struct {
	columnWidth float64
	spacing     float64
	paddingLeft float64
	heights     []float64
}

// NewPacker returns a packer for the given column count and geometry.
// The column count is fixed for the packer's lifetime; Reset changes the
// column width but never the number of columns.
func NewPacker(columns int, columnWidth, spacing, paddingLeft float64) *Packer {
	if columns < 1 {
		columns = 1
	}
	return &Packer{
		columnWidth: columnWidth,
		spacing:     spacing,
		paddingLeft: paddingLeft,
		heights:     make([]float64, columns),
	}
}

// Place assigns the item to the shortest column, ties broken toward the
// lowest column index, and returns the resulting placement.
func (p *Packer) Place(item Item) (Placement, error) {
	if !item.HasDimensions() {
		return Placement{}, ErrMissingDimensions
	}

	itemHeight := math.Round(p.columnWidth * item.Height / item.Width)
	if math.IsNaN(itemHeight) || math.IsInf(itemHeight, 0) || itemHeight <= 0 {
		return Placement{}, ErrInvalidHeight
	}

	col := 0
	for i := 1; i < len(p.heights); i++ {
		if p.heights[i] < p.heights[col] {
			col = i
		}
	}

	placement := Placement{
		X:      p.paddingLeft + float64(col)*(p.columnWidth+p.spacing),
		Y:      p.heights[col],
		Width:  p.columnWidth,
		Height: itemHeight,
	}
	p.heights[col] += itemHeight + p.spacing

	return placement, nil
}

// Columns returns the fixed column count.
func (p *Packer) Columns() int {
	return len(p.heights)
}

// ColumnWidth returns the width items are currently packed at.
func (p *Packer) ColumnWidth() float64 {
	return p.columnWidth
}

// Heights returns a copy of the cumulative column heights.
func (p *Packer) Heights() []float64 {
	out := make([]float64, len(p.heights))
	copy(out, p.heights)
	return out
}

// TallestColumn returns the maximum cumulative column height. After a
// completed render pass this is the container height.
func (p *Packer) TallestColumn() float64 {
	tallest := 0.0
	for _, h := range p.heights {
		if h > tallest {
			tallest = h
		}
	}
	return tallest
}

// SetColumnWidth adopts a new width for subsequent placements without
// touching the accumulated column heights.
func (p *Packer) SetColumnWidth(columnWidth float64) {
	p.columnWidth = columnWidth
}

// Reset zeroes every column height and adopts a new column width, keeping
// the column count. Used when replaying items after a resize.
func (p *Packer) Reset(columnWidth float64) {
	p.columnWidth = columnWidth
	for i := range p.heights {
		p.heights[i] = 0
	}
}
