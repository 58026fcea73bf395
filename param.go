package grid

import "github.com/gogpu/gg"

// DrawParam positions a drawable on the context.
//
// The zero value draws at the origin without rotation or scaling:
// a zero Scale component is treated as 1.
type DrawParam struct {
	// Dest is the translation applied before drawing.
	Dest gg.Point

	// Rotation is the rotation in radians around Dest.
	Rotation float64

	// Scale multiplies the drawable's coordinates after rotation.
	Scale gg.Vec2
}

// DefaultDrawParam returns the identity parameters.
func DefaultDrawParam() DrawParam {
	return DrawParam{Scale: gg.V2(1, 1)}
}

// At returns a copy of p translated to dest.
func (p DrawParam) At(dest gg.Point) DrawParam {
	p.Dest = dest
	return p
}

func (p DrawParam) scale() (sx, sy float64) {
	sx, sy = p.Scale.X, p.Scale.Y
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

func (p DrawParam) identity() bool {
	sx, sy := p.scale()
	return p.Dest.X == 0 && p.Dest.Y == 0 && p.Rotation == 0 && sx == 1 && sy == 1
}

// apply saves the context state and installs the transform.
// The returned function restores the state. Push and Pop only cover the
// transform, clip and mask, so the brush, stroke style and font are saved
// separately.
func (p DrawParam) apply(dc *gg.Context) (restore func()) {
	brush, stroke, face := dc.FillBrush(), dc.GetStroke(), dc.Font()
	dc.Push()

	if !p.identity() {
		dc.Translate(p.Dest.X, p.Dest.Y)
		if p.Rotation != 0 {
			dc.Rotate(p.Rotation)
		}
		if sx, sy := p.scale(); sx != 1 || sy != 1 {
			dc.Scale(sx, sy)
		}
	}

	return func() {
		dc.Pop()
		dc.SetFillBrush(brush)
		dc.SetStroke(stroke)
		dc.SetFont(face)
	}
}
