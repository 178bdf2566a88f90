package cloud

import "image"

// cellSize is the side, in pixels, of one occupancy cell.
const cellSize = 2

// occupancy records which canvas cells hold a word. A summed-area table
// over the cells answers whether a rectangle is free in constant time.
type occupancy struct {
	cols, rows int
	used       []bool
	sum        []int32
}

func newOccupancy(canvas image.Rectangle) *occupancy {
	cols := (canvas.Dx() + cellSize - 1) / cellSize
	rows := (canvas.Dy() + cellSize - 1) / cellSize
	return &occupancy{
		cols: cols,
		rows: rows,
		used: make([]bool, cols*rows),
		sum:  make([]int32, (cols+1)*(rows+1)),
	}
}

// cells returns the half-open cell range touched by r.
func (o *occupancy) cells(r image.Rectangle) (x0, y0, x1, y1 int) {
	x0 = max(0, r.Min.X/cellSize)
	y0 = max(0, r.Min.Y/cellSize)
	x1 = min(o.cols, (r.Max.X+cellSize-1)/cellSize)
	y1 = min(o.rows, (r.Max.Y+cellSize-1)/cellSize)
	return x0, y0, x1, y1
}

func (o *occupancy) free(r image.Rectangle) bool {
	x0, y0, x1, y1 := o.cells(r)
	if x0 >= x1 || y0 >= y1 {
		return true
	}
	w := o.cols + 1
	return o.sum[y1*w+x1]-o.sum[y0*w+x1]-o.sum[y1*w+x0]+o.sum[y0*w+x0] == 0
}

// mark claims every cell r touches and refreshes the table from its first
// row down.
func (o *occupancy) mark(r image.Rectangle) {
	x0, y0, x1, y1 := o.cells(r)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			o.used[y*o.cols+x] = true
		}
	}
	w := o.cols + 1
	for y := y0; y < o.rows; y++ {
		var row int32
		for x := 0; x < o.cols; x++ {
			if o.used[y*o.cols+x] {
				row++
			}
			o.sum[(y+1)*w+x+1] = o.sum[y*w+x+1] + row
		}
	}
}
