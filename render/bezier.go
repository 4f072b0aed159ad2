package render

import "math"

// quadBezier splits the curve at its horizontal and vertical turning points
// and rasterizes each monotone piece with quadBezierSeg
func (c *Canvas) quadBezier(p Paint, x0, y0, x1, y1, x2, y2 int) {
	x := x0 - x1
	y := y0 - y1
	t := float64(x0 - 2*x1 + x2)

	// Horizontal cut
	if x*(x2-x1) > 0 {
		if y*(y2-y1) > 0 && math.Abs(float64(y0-2*y1+y2)/t*float64(x)) > math.Abs(float64(y)) {
			x0, x2 = x2, x+x1
			y0, y2 = y2, y+y1
		}
		t = float64(x0-x1) / t
		r := (1-t)*((1-t)*float64(y0)+2*t*float64(y1)) + t*t*float64(y2)
		t = float64(x0*x2-x1*x1) * t / float64(x0-x1)
		x = round(t)
		y = round(r)
		r = float64(y1-y0)*(t-float64(x0))/float64(x1-x0) + float64(y0)
		c.quadBezierSeg(p, x0, y0, x, round(r), x, y)
		r = float64(y1-y2)*(t-float64(x2))/float64(x1-x2) + float64(y2)
		x0, x1 = x, x
		y0, y1 = y, round(r)
	}

	// Vertical cut
	if (y0-y1)*(y2-y1) > 0 {
		t = float64(y0-y1) / float64(y0-2*y1+y2)
		r := (1-t)*((1-t)*float64(x0)+2*t*float64(x1)) + t*t*float64(x2)
		t = float64(y0*y2-y1*y1) * t / float64(y0-y1)
		x = round(r)
		y = round(t)
		r = float64(x1-x0)*(t-float64(y0))/float64(y1-y0) + float64(x0)
		c.quadBezierSeg(p, x0, y0, round(r), y, x, y)
		r = float64(x1-x2)*(t-float64(y2))/float64(y1-y2) + float64(x2)
		x0, x1 = x, round(r)
		y0, y1 = y, y
	}

	c.quadBezierSeg(p, x0, y0, x1, y1, x2, y2)
}

// quadBezierSeg rasterizes a piece whose gradient does not change sign
// Degenerate or flat pieces fall back to a straight line
func (c *Canvas) quadBezierSeg(p Paint, x0, y0, x1, y1, x2, y2 int) {
	sx := x2 - x1
	sy := y2 - y1
	xx := x0 - x1
	yy := y0 - y1
	cur := xx*sy - yy*sx

	if xx*sx > 0 || yy*sy > 0 {
		// Rounding at a cut point can leave a piece that is not monotone
		c.line(p, x0, y0, x2, y2)
		return
	}

	if sx*sx+sy*sy > xx*xx+yy*yy {
		// Start from the longer leg
		x2, x0 = x0, sx+x1
		y2, y0 = y0, sy+y1
		cur = -cur
	}

	if cur == 0 {
		c.line(p, x0, y0, x2, y2)
		return
	}

	xx += sx
	if x0 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	xx *= sx
	yy += sy
	if y0 < y2 {
		sy = 1
	} else {
		sy = -1
	}
	yy *= sy
	xy := 2 * xx * yy
	xx *= xx
	yy *= yy
	if cur*sx*sy < 0 {
		xx, yy, xy, cur = -xx, -yy, -xy, -cur
	}
	dx := 4*sy*cur*(x1-x0) + xx - xy
	dy := 4*sx*cur*(y0-y1) + yy - xy
	xx += xx
	yy += yy
	err := dx + dy + xy

	// Bound the walk so rounding at the cut points can never spin forever
	limit := abs(x2-x0) + abs(y2-y0) + 2
	for step := 0; step < limit; step++ {
		c.plot(p, x0, y0)
		if x0 == x2 && y0 == y2 {
			return
		}
		ystep := 2*err < dx
		if 2*err > dy {
			x0 += sx
			dx -= xy
			dy += yy
			err += dy
		}
		if ystep {
			y0 += sy
			dy -= xy
			dx += xx
			err += dx
		}
		if dy >= dx {
			break
		}
	}

	c.line(p, x0, y0, x2, y2)
}

func round(f float64) int {
	return int(math.Floor(f + 0.5))
}
