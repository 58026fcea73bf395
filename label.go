package grid

import (
	"unicode/utf8"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Text is a single line of text.
//
// The top-left corner of the line box is placed at DrawParam.Dest; Rotation
// and Scale then apply around that corner.
type Text struct {
	Content string
	Face    text.Face
	Color   gg.RGBA

	// Bounds is the W x H box the line is laid out in, in the text's own
	// units before scaling. Content wider than Bounds.X is cut at the last
	// rune that fits. A zero component leaves
	// that axis unbounded.
	Bounds gg.Vec2
}

// NewText creates a text drawable.
func NewText(content string, face text.Face, c gg.RGBA) *Text {
	return &Text{Content: content, Face: face, Color: c}
}

// Kind implements Drawable.
func (t *Text) Kind() Kind { return KindText }

func (t *Text) private() {}

// Dimensions implements Drawable.
// The size is the measured line box, clamped to Bounds.
func (t *Text) Dimensions() (gg.Rect, bool) {
	if t.Face == nil {
		return gg.Rect{}, false
	}
	w, h := text.Measure(t.Content, t.Face)
	if t.Bounds.X > 0 && w > t.Bounds.X {
		w = t.Bounds.X
	}
	if t.Bounds.Y > 0 && h > t.Bounds.Y {
		h = t.Bounds.Y
	}
	return gg.Rect{Max: gg.Pt(w, h)}, true
}

// Draw implements Drawable.
func (t *Text) Draw(dc *gg.Context, p DrawParam) error {
	if dc == nil {
		return ErrNilContext
	}
	if t.Face == nil {
		return ErrNoFace
	}
	if t.Content == "" {
		return nil
	}

	s := t.fit()
	if s == "" {
		return nil
	}

	restore := p.apply(dc)
	defer restore()

	dc.SetFont(t.Face)
	dc.SetRGBA(t.Color.R, t.Color.G, t.Color.B, t.Color.A)
	dc.DrawString(s, 0, t.Face.Metrics().Ascent)
	return nil
}

// fit returns the longest prefix of Content that fits in Bounds.X.
func (t *Text) fit() string {
	s := t.Content
	if t.Bounds.X <= 0 {
		return s
	}
	for s != "" {
		if w, _ := text.Measure(s, t.Face); w <= t.Bounds.X {
			return s
		}
		_, n := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-n]
	}
	return s
}
