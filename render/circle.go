package render

// circle walks one quadrant with the midpoint error term and mirrors it
// Filled circles paint vertical spans between mirrored points
func (c *Canvas) circle(p Paint, cx, cy, r int, filled bool) {
	if r == 0 {
		c.plot(p, cx, cy)
		return
	}

	x, y := -r, 0
	err := 2 - 2*r

	for {
		if filled {
			c.vspan(p, cx-x, cy-y, cy+y)
			c.vspan(p, cx+x, cy-y, cy+y)
		} else {
			c.plot(p, cx-x, cy+y)
			c.plot(p, cx-y, cy-x)
			c.plot(p, cx+x, cy-y)
			c.plot(p, cx+y, cy+x)
		}

		e := err
		if e <= y {
			y++
			err += y*2 + 1
		}
		if e > x || err > y {
			x++
			err += x*2 + 1
		}
		if x >= 0 {
			break
		}
	}

	if filled {
		c.vspan(p, cx, cy-r, cy+r)
	}
}

func (c *Canvas) vspan(p Paint, x, y0, y1 int) {
	for y := y0; y <= y1; y++ {
		c.plot(p, x, y)
	}
}

func (c *Canvas) hspan(p Paint, x0, x1, y int) {
	for x := x0; x <= x1; x++ {
		c.plot(p, x, y)
	}
}
