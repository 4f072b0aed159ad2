package render

// ellipse rasterizes the ellipse inscribed in the inclusive box (x0,y0)-(x1,y1)
func (c *Canvas) ellipse(p Paint, x0, y0, x1, y1 int, filled bool) {
	a := abs(x1 - x0)
	b := abs(y1 - y0)
	b1 := b & 1

	dx := 4 * (1 - a) * b * b
	dy := 4 * (b1 + 1) * a * a
	err := dx + dy + b1*a*a

	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0 = y1
	}
	y0 += (b + 1) / 2
	y1 = y0 - b1
	aa := 8 * a * a
	bb := 8 * b * b

	for {
		if filled {
			c.hspan(p, x0, x1, y0)
			c.hspan(p, x0, x1, y1)
		} else {
			c.plot(p, x1, y0)
			c.plot(p, x0, y0)
			c.plot(p, x0, y1)
			c.plot(p, x1, y1)
		}

		e2 := 2 * err
		if e2 <= dy {
			y0++
			y1--
			dy += aa
			err += dy
		}
		if e2 >= dx || 2*err > dy {
			x0++
			x1--
			dx += bb
			err += dx
		}
		if x0 > x1 {
			break
		}
	}

	// Flat ellipses stop early, finish the tips
	for y0-y1 <= b {
		if filled {
			c.hspan(p, x0-1, x1+1, y0)
			c.hspan(p, x0-1, x1+1, y1)
		} else {
			c.plot(p, x0-1, y0)
			c.plot(p, x1+1, y0)
			c.plot(p, x0-1, y1)
			c.plot(p, x1+1, y1)
		}
		y0++
		y1--
	}
}
