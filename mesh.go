package grid

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// PrimitiveKind identifies the shape stored in a Primitive.
type PrimitiveKind uint8

const (
	PrimFillRect PrimitiveKind = iota // Filled axis-aligned rectangle
	PrimLine                          // Stroked polyline
)

var primitiveKindNames = [...]string{
	PrimFillRect: "FillRect",
	PrimLine:     "Line",
}

// String returns the string representation of a PrimitiveKind.
func (k PrimitiveKind) String() string {
	if int(k) < len(primitiveKindNames) {
		return primitiveKindNames[k]
	}
	return "Unknown"
}

// Primitive is a single colored shape inside a Mesh.
type Primitive struct {
	Kind  PrimitiveKind
	Color gg.RGBA

	// Rect is set for PrimFillRect.
	Rect gg.Rect

	// Points and Width are set for PrimLine.
	Points []gg.Point
	Width  float64
}

// bounds returns the area touched by the primitive.
func (p *Primitive) bounds() gg.Rect {
	if p.Kind == PrimFillRect {
		return p.Rect
	}
	r := gg.Rect{Min: p.Points[0], Max: p.Points[0]}
	for _, pt := range p.Points[1:] {
		r = r.Union(gg.Rect{Min: pt, Max: pt})
	}
	hw := p.Width / 2
	r.Min = gg.Pt(r.Min.X-hw, r.Min.Y-hw)
	r.Max = gg.Pt(r.Max.X+hw, r.Max.Y+hw)
	return r
}

// sameRun reports whether q can share a fill or stroke call with p.
func (p *Primitive) sameRun(q *Primitive) bool {
	return p.Kind == q.Kind && p.Color == q.Color && p.Width == q.Width
}

// MeshBuilder accumulates primitives for a Mesh.
//
// MeshBuilder validates geometry as it is added; malformed shapes are
// rejected with ErrInvalidRect or ErrInvalidLine and leave the builder
// unchanged.
type MeshBuilder struct {
	prims []Primitive
}

// NewMeshBuilder creates an empty builder.
func NewMeshBuilder() *MeshBuilder {
	return &MeshBuilder{prims: make([]Primitive, 0, 16)}
}

// Rectangle adds a filled rectangle.
func (b *MeshBuilder) Rectangle(r gg.Rect, c gg.RGBA) error {
	if !finite(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y) || r.Width() < 0 || r.Height() < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRect, r)
	}
	b.prims = append(b.prims, Primitive{Kind: PrimFillRect, Color: c, Rect: r})
	return nil
}

// Line adds a polyline stroked with the given width.
func (b *MeshBuilder) Line(points []gg.Point, width float64, c gg.RGBA) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: %d points", ErrInvalidLine, len(points))
	}
	if !(width > 0) || math.IsInf(width, 0) {
		return fmt.Errorf("%w: width %g", ErrInvalidLine, width)
	}
	for _, pt := range points {
		if !finite(pt.X, pt.Y) {
			return fmt.Errorf("%w: point %v", ErrInvalidLine, pt)
		}
	}
	b.prims = append(b.prims, Primitive{
		Kind:   PrimLine,
		Color:  c,
		Points: append([]gg.Point(nil), points...),
		Width:  width,
	})
	return nil
}

// Len returns the number of primitives added so far.
func (b *MeshBuilder) Len() int {
	return len(b.prims)
}

// Reset discards all primitives, keeping the allocated storage.
func (b *MeshBuilder) Reset() {
	b.prims = b.prims[:0]
}

// Build returns a Mesh holding a snapshot of the builder's primitives.
// The builder can keep being used afterwards.
func (b *MeshBuilder) Build() *Mesh {
	prims := make([]Primitive, len(b.prims))
	copy(prims, b.prims)
	return &Mesh{prims: prims}
}

// Mesh is an immutable batch of colored primitives.
//
// Consecutive primitives that share kind, color and width are submitted
// to the context as a single path, so a mesh of N same-colored cells costs
// one fill.
type Mesh struct {
	prims []Primitive
}

// Len returns the number of primitives in the mesh.
func (m *Mesh) Len() int {
	return len(m.prims)
}

// Count returns the number of primitives of the given kind.
func (m *Mesh) Count(kind PrimitiveKind) int {
	n := 0
	for i := range m.prims {
		if m.prims[i].Kind == kind {
			n++
		}
	}
	return n
}

// Primitives returns a copy of the mesh's primitives in insertion order.
func (m *Mesh) Primitives() []Primitive {
	out := make([]Primitive, len(m.prims))
	copy(out, m.prims)
	return out
}

// Kind implements Drawable.
func (m *Mesh) Kind() Kind { return KindMesh }

func (m *Mesh) private() {}

// Dimensions implements Drawable. An empty mesh has no dimensions.
func (m *Mesh) Dimensions() (gg.Rect, bool) {
	if len(m.prims) == 0 {
		return gg.Rect{}, false
	}
	r := m.prims[0].bounds()
	for i := 1; i < len(m.prims); i++ {
		r = r.Union(m.prims[i].bounds())
	}
	return r, true
}

// Draw implements Drawable.
func (m *Mesh) Draw(dc *gg.Context, p DrawParam) error {
	if dc == nil {
		return ErrNilContext
	}
	if len(m.prims) == 0 {
		return nil
	}

	restore := p.apply(dc)
	defer restore()

	dc.ClearPath()
	for start := 0; start < len(m.prims); {
		end := start + 1
		for end < len(m.prims) && m.prims[start].sameRun(&m.prims[end]) {
			end++
		}
		if err := drawRun(dc, m.prims[start:end]); err != nil {
			return err
		}
		start = end
	}
	return nil
}

// drawRun submits primitives sharing kind, color and width as one path.
func drawRun(dc *gg.Context, run []Primitive) error {
	first := &run[0]
	c := first.Color
	dc.SetRGBA(c.R, c.G, c.B, c.A)

	switch first.Kind {
	case PrimFillRect:
		for i := range run {
			r := run[i].Rect
			dc.DrawRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
		}
		return dc.Fill()
	case PrimLine:
		dc.SetLineWidth(first.Width)
		for i := range run {
			pts := run[i].Points
			dc.MoveTo(pts[0].X, pts[0].Y)
			for _, pt := range pts[1:] {
				dc.LineTo(pt.X, pt.Y)
			}
		}
		return dc.Stroke()
	default:
		return fmt.Errorf("grid: unknown primitive %v", first.Kind)
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
