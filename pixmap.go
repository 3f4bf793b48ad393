package easel

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp" // register BMP decoding for DecodePixmap
	xdraw "golang.org/x/image/draw"
)

// Pixmap is a decoded raster: width×height pixels in RGBA byte order,
// row-major, origin top-left. It is the input to ScanOpaqueBounds and is
// produced by the host when it rasterizes a single object to an image.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel, alpha at offset 3
}

// NewPixmap creates a fully transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap in pixels.
func (p *Pixmap) Height() int { return p.height }

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 { return p.data }

// SetPixel sets the color of a single pixel. Out-of-range coordinates are
// silently ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel. Out-of-range coordinates
// return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// alpha returns the raw alpha byte of a pixel. The caller must keep x and y
// in range; the opaque-bounds sweeps do.
func (p *Pixmap) alpha(x, y int) uint8 {
	return p.data[(y*p.width+x)*4+3]
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Fill sets every pixel in the given rectangle, clipped to the pixmap.
func (p *Pixmap) Fill(x0, y0, x1, y1 int, c RGBA) {
	for y := max(y0, 0); y < min(y1, p.height); y++ {
		for x := max(x0, 0); x < min(x1, p.width); x++ {
			p.SetPixel(x, y, c)
		}
	}
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	xdraw.Draw(pm.ToDraw(), pm.Bounds(), img, bounds.Min, xdraw.Src)
	return pm
}

// ToDraw wraps the pixmap's storage in an image.NRGBA that shares the
// underlying pixels, so standard draw operations write through.
func (p *Pixmap) ToDraw() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// DecodePixmap reads an encoded image (PNG or BMP) and decodes it into a
// pixmap with matching dimensions.
func DecodePixmap(r io.Reader) (*Pixmap, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode pixmap: %w", err)
	}
	Logger().Debug("pixmap: decoded", "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return FromImage(img), nil
}

// Scale returns a new pixmap resampled to the given dimensions using
// bilinear interpolation. The receiver is not modified.
func (p *Pixmap) Scale(width, height int) *Pixmap {
	dst := NewPixmap(width, height)
	xdraw.ApproxBiLinear.Scale(dst.ToDraw(), dst.Bounds(), p.ToDraw(), p.Bounds(), xdraw.Src, nil)
	return dst
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
