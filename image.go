package grid

import (
	"image"

	"github.com/gogpu/gg"
)

// Image is a raster image drawable.
type Image struct {
	buf *gg.ImageBuf
}

// NewImage copies img into an image drawable.
func NewImage(img image.Image) *Image {
	return &Image{buf: gg.ImageBufFromImage(img)}
}

// NewImageFromBuf wraps an existing image buffer without copying.
func NewImageFromBuf(buf *gg.ImageBuf) *Image {
	return &Image{buf: buf}
}

// Buf returns the underlying image buffer.
func (im *Image) Buf() *gg.ImageBuf {
	return im.buf
}

// Kind implements Drawable.
func (im *Image) Kind() Kind { return KindImage }

func (im *Image) private() {}

// Dimensions implements Drawable.
func (im *Image) Dimensions() (gg.Rect, bool) {
	if im.buf == nil {
		return gg.Rect{}, false
	}
	w, h := im.buf.Bounds()
	return gg.Rect{Max: gg.Pt(float64(w), float64(h))}, true
}

// Draw implements Drawable. The image's top-left corner is placed at the
// transformed origin.
func (im *Image) Draw(dc *gg.Context, p DrawParam) error {
	if dc == nil {
		return ErrNilContext
	}
	if im.buf == nil {
		return nil
	}

	restore := p.apply(dc)
	defer restore()

	dc.DrawImage(im.buf, 0, 0)
	return nil
}
