package grid

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

// pixelAt returns the 8-bit color of dc at (x, y).
func pixelAt(t *testing.T, dc *gg.Context, x, y int) color.NRGBA {
	t.Helper()
	return color.NRGBAModel.Convert(dc.Image().At(x, y)).(color.NRGBA)
}

// isColor reports whether px is within a small tolerance of c.
func isColor(px color.NRGBA, c gg.RGBA) bool {
	near := func(v uint8, f float64) bool {
		return math.Abs(float64(v)-f*255) <= 8
	}
	return near(px.R, c.R) && near(px.G, c.G) && near(px.B, c.B) && near(px.A, c.A)
}

func TestMeshBuilderRectangle(t *testing.T) {
	tests := []struct {
		name    string
		rect    gg.Rect
		wantErr bool
	}{
		{"unit", gg.Rect{Max: gg.Pt(1, 1)}, false},
		{"offset", gg.Rect{Min: gg.Pt(-5, 10), Max: gg.Pt(5, 20)}, false},
		{"empty", gg.Rect{}, false},
		{"negative width", gg.Rect{Min: gg.Pt(10, 0), Max: gg.Pt(0, 10)}, true},
		{"negative height", gg.Rect{Min: gg.Pt(0, 10), Max: gg.Pt(10, 0)}, true},
		{"nan", gg.Rect{Max: gg.Pt(math.NaN(), 1)}, true},
		{"inf", gg.Rect{Max: gg.Pt(1, math.Inf(1))}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewMeshBuilder()
			err := b.Rectangle(tt.rect, gg.Red)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRect) {
					t.Errorf("Rectangle(%v) = %v, want ErrInvalidRect", tt.rect, err)
				}
				if b.Len() != 0 {
					t.Errorf("rejected rectangle was added, Len() = %d", b.Len())
				}
				return
			}
			if err != nil {
				t.Fatalf("Rectangle(%v) = %v", tt.rect, err)
			}
			if b.Len() != 1 {
				t.Errorf("Len() = %d, want 1", b.Len())
			}
		})
	}
}

func TestMeshBuilderLine(t *testing.T) {
	two := []gg.Point{gg.Pt(0, 0), gg.Pt(10, 0)}
	tests := []struct {
		name    string
		points  []gg.Point
		width   float64
		wantErr bool
	}{
		{"segment", two, 1, false},
		{"polyline", []gg.Point{gg.Pt(0, 0), gg.Pt(5, 5), gg.Pt(10, 0)}, 2, false},
		{"single point", two[:1], 1, true},
		{"no points", nil, 1, true},
		{"zero width", two, 0, true},
		{"negative width", two, -1, true},
		{"nan width", two, math.NaN(), true},
		{"inf point", []gg.Point{gg.Pt(0, 0), gg.Pt(math.Inf(-1), 0)}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewMeshBuilder()
			err := b.Line(tt.points, tt.width, gg.Black)
			if tt.wantErr != errors.Is(err, ErrInvalidLine) {
				t.Errorf("Line() = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Line() unexpected error %v", err)
			}
		})
	}
}

func TestMeshBuilderLineCopiesPoints(t *testing.T) {
	pts := []gg.Point{gg.Pt(0, 0), gg.Pt(10, 0)}
	b := NewMeshBuilder()
	if err := b.Line(pts, 1, gg.Black); err != nil {
		t.Fatal(err)
	}
	pts[1] = gg.Pt(99, 99)

	got := b.Build().Primitives()[0].Points[1]
	if got != gg.Pt(10, 0) {
		t.Errorf("mesh point changed with caller slice: %v", got)
	}
}

func TestMeshBuildSnapshot(t *testing.T) {
	b := NewMeshBuilder()
	_ = b.Rectangle(gg.Rect{Max: gg.Pt(1, 1)}, gg.Red)
	m := b.Build()

	_ = b.Rectangle(gg.Rect{Max: gg.Pt(2, 2)}, gg.Blue)
	if m.Len() != 1 {
		t.Errorf("built mesh changed after builder use, Len() = %d", m.Len())
	}

	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Reset() left %d primitives", b.Len())
	}
	if m.Len() != 1 {
		t.Errorf("built mesh changed after Reset, Len() = %d", m.Len())
	}
}

func TestMeshCountAndKind(t *testing.T) {
	b := NewMeshBuilder()
	_ = b.Rectangle(gg.Rect{Max: gg.Pt(1, 1)}, gg.Red)
	_ = b.Line([]gg.Point{gg.Pt(0, 0), gg.Pt(1, 1)}, 1, gg.Red)
	_ = b.Line([]gg.Point{gg.Pt(0, 1), gg.Pt(1, 0)}, 1, gg.Red)
	m := b.Build()

	if got := m.Count(PrimFillRect); got != 1 {
		t.Errorf("Count(PrimFillRect) = %d, want 1", got)
	}
	if got := m.Count(PrimLine); got != 2 {
		t.Errorf("Count(PrimLine) = %d, want 2", got)
	}
	if m.Kind() != KindMesh {
		t.Errorf("Kind() = %v, want mesh", m.Kind())
	}
	if PrimLine.String() != "Line" || PrimitiveKind(42).String() != "Unknown" {
		t.Errorf("unexpected PrimitiveKind names %q, %q", PrimLine, PrimitiveKind(42))
	}
}

func TestMeshDimensions(t *testing.T) {
	if _, ok := NewMeshBuilder().Build().Dimensions(); ok {
		t.Error("empty mesh should have unknown dimensions")
	}

	b := NewMeshBuilder()
	_ = b.Rectangle(gg.Rect{Min: gg.Pt(10, 10), Max: gg.Pt(20, 20)}, gg.Red)
	_ = b.Line([]gg.Point{gg.Pt(0, 30), gg.Pt(40, 30)}, 2, gg.Black)

	r, ok := b.Build().Dimensions()
	if !ok {
		t.Fatal("Dimensions() ok = false")
	}
	want := gg.Rect{Min: gg.Pt(-1, 10), Max: gg.Pt(41, 31)}
	if r != want {
		t.Errorf("Dimensions() = %v, want %v", r, want)
	}
}

func TestMeshDraw(t *testing.T) {
	dc := gg.NewContext(60, 60)
	dc.ClearWithColor(gg.White)

	b := NewMeshBuilder()
	_ = b.Rectangle(gg.Rect{Min: gg.Pt(0, 0), Max: gg.Pt(20, 20)}, gg.Red)
	_ = b.Rectangle(gg.Rect{Min: gg.Pt(20, 0), Max: gg.Pt(40, 20)}, gg.Red)
	_ = b.Rectangle(gg.Rect{Min: gg.Pt(0, 30), Max: gg.Pt(20, 50)}, gg.Blue)

	if err := b.Build().Draw(dc, DefaultDrawParam()); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	checks := []struct {
		x, y int
		want gg.RGBA
	}{
		{10, 10, gg.Red},
		{30, 10, gg.Red},
		{10, 40, gg.Blue},
		{50, 50, gg.White},
	}
	for _, c := range checks {
		if px := pixelAt(t, dc, c.x, c.y); !isColor(px, c.want) {
			t.Errorf("pixel (%d,%d) = %v, want %v", c.x, c.y, px, c.want)
		}
	}
}

func TestMeshDrawWithParam(t *testing.T) {
	dc := gg.NewContext(60, 60)
	dc.ClearWithColor(gg.White)

	b := NewMeshBuilder()
	_ = b.Rectangle(gg.Rect{Max: gg.Pt(10, 10)}, gg.Green)

	p := DrawParam{Dest: gg.Pt(30, 30), Scale: gg.V2(2, 2)}
	if err := b.Build().Draw(dc, p); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	if px := pixelAt(t, dc, 45, 45); !isColor(px, gg.Green) {
		t.Errorf("pixel inside scaled rect = %v, want green", px)
	}
	if px := pixelAt(t, dc, 5, 5); !isColor(px, gg.White) {
		t.Errorf("pixel at origin = %v, want white", px)
	}

	// The transform must not leak into later drawing.
	if m := dc.GetTransform(); m != gg.Identity() {
		t.Errorf("transform after Draw = %v, want identity", m)
	}
}

func TestMeshDrawNilContext(t *testing.T) {
	if err := NewMeshBuilder().Build().Draw(nil, DrawParam{}); !errors.Is(err, ErrNilContext) {
		t.Errorf("Draw(nil) = %v, want ErrNilContext", err)
	}
}
