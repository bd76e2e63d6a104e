package animate

import "xsplot/pkg/dataset"

// Frame is the set of slices drawn by one redraw.
type Frame struct {
	Number int
	Slices []dataset.Slice
}

// Cursor walks a dataset in fixed-length slices. It only moves forward and
// is never reset once it has run past the end.
type Cursor struct {
	ds     *dataset.Dataset
	points int
	plots  int
	next   int
	frames int
}

// NewCursor returns a cursor drawing points rows per slice and at most
// plots slices per frame; plots <= 0 draws every remaining slice.
func NewCursor(ds *dataset.Dataset, points, plots int) *Cursor {
	return &Cursor{ds: ds, points: points, plots: plots}
}

// Advance performs one redraw step. It reports false on the call where the
// cursor is found to be past the end of the data, and on every call after.
func (c *Cursor) Advance() (Frame, bool) {
	frame := Frame{Number: c.frames}
	c.frames++

	for i := 0; c.plots <= 0 || i < c.plots; i++ {
		s, ok := c.ds.Slice(c.next, c.points)
		if !ok {
			return frame, false
		}

		frame.Slices = append(frame.Slices, s)
		c.next++
	}

	return frame, true
}

func (c *Cursor) Position() int { return c.next }
