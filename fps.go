package grid

import (
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Size of the FPS overlay box in the top-left corner.
const (
	fpsBoxWidth  = 80.0
	fpsBoxHeight = 20.0
)

// maxFPS caps the displayed frame rate so rounding stays within int range.
const maxFPS = math.MaxInt32

// defaultFontSource parses Go Regular once per process.
var defaultFontSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// DisplayFPS queues the frame rate overlay: a black box in the top-left
// corner with the rounded frame rate written over it, e.g. "Fps: 60".
//
// fps is the host's own measurement (for example ebiten.ActualFPS).
// Negative and non-finite values are shown as 0, values above MaxInt32 as
// MaxInt32.
func (h *Handler) DisplayFPS(fps float64) error {
	face, err := h.labelFace()
	if err != nil {
		return err
	}

	if h.background == nil {
		b := NewMeshBuilder()
		if err := b.Rectangle(gg.Rect{Max: gg.Pt(fpsBoxWidth, fpsBoxHeight)}, gg.Black); err != nil {
			return err
		}
		h.background = b.Build()
	}

	label := h.FormatFPS(fps)
	t, created := h.labels.GetOrCreate(label, func() *Text {
		t := NewText(label, face, gg.White)
		t.Bounds = gg.V2(fpsBoxWidth, fpsBoxHeight)
		return t
	})
	if created {
		Logger().Debug("grid: fps label created", "label", label, "cached", h.labels.Len())
	}

	h.Enqueue(h.background, DefaultDrawParam())
	h.Enqueue(t, DefaultDrawParam())
	return nil
}

// FormatFPS returns the overlay text for a frame rate, formatted for the
// handler's label language.
func (h *Handler) FormatFPS(fps float64) string {
	n := 0
	if !math.IsNaN(fps) && !math.IsInf(fps, 0) && fps > 0 {
		n = int(math.Round(math.Min(fps, maxFPS)))
	}
	return h.printer.Sprintf("Fps: %d", n)
}

// labelFace returns the configured face, loading Go Regular on first use.
func (h *Handler) labelFace() (text.Face, error) {
	if h.face != nil {
		return h.face, nil
	}
	src, err := defaultFontSource()
	if err != nil {
		return nil, fmt.Errorf("grid: load default font: %w", err)
	}
	h.face = src.Face(DefaultLabelSize)
	return h.face, nil
}

// SetFont replaces the face used for the FPS label. Cached labels built with
// the previous face are dropped.
func (h *Handler) SetFont(face text.Face) {
	h.face = face
	h.labels.Clear()
}
