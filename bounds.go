package easel

// OpaqueBounds is the minimal axis-aligned rectangle containing every pixel
// with non-zero alpha, in pixmap coordinates. X2 and Y2 are the column and
// row where the reverse sweeps of ScanOpaqueBounds stopped; Width and
// Height are the raw X2-X1 and Y2-Y1 differences.
type OpaqueBounds struct {
	X1, Y1 int
	X2, Y2 int
	Width  int
	Height int
}

// ScanOpaqueBounds computes the visually opaque extent of a rasterized
// object: the tightest rectangle around all pixels whose alpha is non-zero.
// It is a pure function of the pixmap; nothing is cached.
//
// The scan runs four independent single-axis sweeps, each stopping at the
// first opaque pixel it meets:
//
//  1. rows top→bottom for Y1 (defaults to height-1 when the buffer is
//     fully transparent),
//  2. rows bottom→top, stopping above Y1, for Y2 (defaults to Y1+1),
//  3. columns left→right within rows [Y1, Y2) for X1 (seeded at width),
//  4. columns right→left down to but not including X1 for X2 (seeded at 0).
//
// A fully transparent buffer therefore yields the documented fallback
// rectangle (X1 = width, X2 = 0, negative Width) rather than an error.
func ScanOpaqueBounds(pm *Pixmap) OpaqueBounds {
	w, h := pm.Width(), pm.Height()
	if h == 0 {
		// No rows to sweep; all four results keep their seeds.
		return OpaqueBounds{X1: w, Y1: -1, X2: 0, Y2: 0, Width: -w, Height: 1}
	}

	y1 := h - 1
scanTop:
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if pm.alpha(x, y) != 0 {
				y1 = y
				break scanTop
			}
		}
	}

	y2 := y1 + 1
scanBottom:
	for y := h - 1; y > y1; y-- {
		for x := 0; x < w; x++ {
			if pm.alpha(x, y) != 0 {
				y2 = y
				break scanBottom
			}
		}
	}

	x1 := w
	for y := y1; y < y2; y++ {
		for x := 0; x < w; x++ {
			if pm.alpha(x, y) != 0 {
				if x < x1 {
					x1 = x
				}
				break
			}
		}
	}

	x2 := 0
	for y := y1; y < y2; y++ {
		for x := w - 1; x > x1; x-- {
			if pm.alpha(x, y) != 0 {
				if x > x2 {
					x2 = x
				}
				break
			}
		}
	}

	return OpaqueBounds{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: x2 - x1, Height: y2 - y1}
}
