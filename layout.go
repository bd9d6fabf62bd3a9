package doodle

import "iter"

// MakeGrid positions doodles from seq in a column-major grid: cols columns of
// rows cells, each cell width by height world units, the whole grid shifted
// by (xOffset, yOffset). Stops after filling the grid or exhausting seq,
// whichever comes first.
func MakeGrid(seq iter.Seq[*Doodle], cols, rows int, width, height, xOffset, yOffset float64) {
	c, r := 0, 0
	for d := range seq {
		d.SetPos(width*float64(c)+xOffset, height*float64(r)+yOffset)
		r++
		if r == rows {
			r = 0
			c++
			// Stop before pulling anything past the last cell: with a
			// generator-backed seq an extra pull would construct a doodle
			// that never gets placed.
			if c == cols {
				break
			}
		}
	}
}
