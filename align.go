package easel

// Anchor selects which surface edge or center line an alignment targets.
type Anchor int

const (
	AlignLeft Anchor = iota
	AlignCenterH
	AlignRight
	AlignTop
	AlignCenterV
	AlignBottom
)

// String returns the anchor name as used in alignment commands.
func (a Anchor) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenterH:
		return "center-h"
	case AlignRight:
		return "right"
	case AlignTop:
		return "top"
	case AlignCenterV:
		return "center-v"
	case AlignBottom:
		return "bottom"
	}
	return "unknown"
}

// Align computes the corrected position that puts an object's visually
// opaque content flush against the requested surface edge, or centered on
// its axis. nominal is the object's reported bounding box including any
// transparent padding; opaque is the content extent from ScanOpaqueBounds,
// in the object's local raster space; pos is the object's current position.
//
// Only the adjusted coordinate changes: horizontal anchors move X,
// vertical anchors move Y. An unrecognized anchor returns pos unchanged —
// it is a defined no-op, not an error. Applying the returned coordinate,
// recomputing control points and re-rendering are the host's job.
func Align(anchor Anchor, nominal Rect, opaque OpaqueBounds, pos Point, surfaceWidth, surfaceHeight float64) Point {
	switch anchor {
	case AlignLeft:
		pos.X = pos.X - nominal.X - float64(opaque.X1)
	case AlignCenterH:
		pos.X = pos.X - nominal.X - float64(opaque.X1) + surfaceWidth/2 - float64(opaque.Width)/2
	case AlignRight:
		pos.X = pos.X - nominal.X - float64(opaque.X1) + surfaceWidth - float64(opaque.Width)
	case AlignTop:
		pos.Y = pos.Y - nominal.Y - float64(opaque.Y1)
	case AlignCenterV:
		pos.Y = pos.Y - nominal.Y - float64(opaque.Y1) + surfaceHeight/2 - float64(opaque.Height)/2
	case AlignBottom:
		pos.Y = pos.Y - nominal.Y - float64(opaque.Y1) + surfaceHeight - float64(opaque.Height)
	}
	return pos
}
