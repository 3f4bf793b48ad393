package easel

import "testing"

// TestScanOpaqueBoundsFullyOpaque: every pixel opaque in a 4×4 buffer. The
// reverse sweeps stop at index 3, so X2/Y2 are 3 and Width/Height are 3.
func TestScanOpaqueBoundsFullyOpaque(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(Black)

	got := ScanOpaqueBounds(pm)
	want := OpaqueBounds{X1: 0, Y1: 0, X2: 3, Y2: 3, Width: 3, Height: 3}
	if got != want {
		t.Errorf("ScanOpaqueBounds = %+v, want %+v", got, want)
	}
}

// TestScanOpaqueBoundsTransparent: a fully transparent buffer yields the
// documented fallback rectangle, with X1 and X2 keeping their sweep seeds.
func TestScanOpaqueBoundsTransparent(t *testing.T) {
	pm := NewPixmap(10, 10) // all alpha zero

	got := ScanOpaqueBounds(pm)
	want := OpaqueBounds{X1: 10, Y1: 9, X2: 0, Y2: 10, Width: -10, Height: 1}
	if got != want {
		t.Errorf("ScanOpaqueBounds = %+v, want %+v", got, want)
	}
}

// TestScanOpaqueBoundsPaddedContent: an opaque block surrounded by a
// transparent margin, the typical rasterized-object case.
func TestScanOpaqueBoundsPaddedContent(t *testing.T) {
	pm := NewPixmap(64, 64)
	pm.Fill(16, 20, 48, 44, Red) // x in [16,48), y in [20,44)

	got := ScanOpaqueBounds(pm)
	want := OpaqueBounds{X1: 16, Y1: 20, X2: 47, Y2: 43, Width: 31, Height: 23}
	if got != want {
		t.Errorf("ScanOpaqueBounds = %+v, want %+v", got, want)
	}
}

// TestScanOpaqueBoundsSemiTransparent: any non-zero alpha counts as
// content, not just fully opaque pixels.
func TestScanOpaqueBoundsSemiTransparent(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.SetPixel(2, 3, RGBA{R: 1, A: 0.02})
	pm.SetPixel(5, 4, RGBA{R: 1, A: 0.5})
	pm.SetPixel(4, 6, RGBA{R: 1, A: 0.8})

	got := ScanOpaqueBounds(pm)
	want := OpaqueBounds{X1: 2, Y1: 3, X2: 5, Y2: 6, Width: 3, Height: 3}
	if got != want {
		t.Errorf("ScanOpaqueBounds = %+v, want %+v", got, want)
	}
}

// TestScanOpaqueBoundsSingleColumn documents the seeded right-to-left
// sweep: it scans down to but not including X1, so content confined to a
// single column never updates X2 and Width goes negative. Callers that
// "fix" this change the scan contract.
func TestScanOpaqueBoundsSingleColumn(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(2, 5, Black)

	got := ScanOpaqueBounds(pm)
	want := OpaqueBounds{X1: 2, Y1: 5, X2: 0, Y2: 6, Width: -2, Height: 1}
	if got != want {
		t.Errorf("ScanOpaqueBounds = %+v, want %+v", got, want)
	}
}

// TestScanOpaqueBoundsBottomRow: content touching the last row exercises
// the bottom-up sweep's exclusive stop above Y1.
func TestScanOpaqueBoundsBottomRow(t *testing.T) {
	pm := NewPixmap(6, 6)
	pm.Fill(1, 4, 5, 6, Blue) // rows 4 and 5

	got := ScanOpaqueBounds(pm)
	want := OpaqueBounds{X1: 1, Y1: 4, X2: 4, Y2: 5, Width: 3, Height: 1}
	if got != want {
		t.Errorf("ScanOpaqueBounds = %+v, want %+v", got, want)
	}
}

// TestScanOpaqueBoundsIsPure: scanning twice gives identical results and
// leaves the pixmap untouched.
func TestScanOpaqueBoundsIsPure(t *testing.T) {
	pm := NewPixmap(16, 16)
	pm.Fill(3, 3, 9, 9, Green)

	before := make([]uint8, len(pm.Data()))
	copy(before, pm.Data())

	first := ScanOpaqueBounds(pm)
	second := ScanOpaqueBounds(pm)
	if first != second {
		t.Errorf("repeated scans differ: %+v vs %+v", first, second)
	}
	for i, v := range pm.Data() {
		if v != before[i] {
			t.Fatalf("scan modified pixel data at index %d", i)
		}
	}
}
