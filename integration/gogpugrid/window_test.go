// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpugrid

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	grid "github.com/gogpu/gg-grid"
)

// stubDevice implements gpucontext.Device.
type stubDevice struct{}

func (stubDevice) Poll(wait bool) {}
func (stubDevice) Destroy()       {}

type stubQueue struct{}

type stubAdapter struct{}

// stubProvider implements gpucontext.DeviceProvider without a GPU.
type stubProvider struct{}

func (stubProvider) Device() gpucontext.Device   { return stubDevice{} }
func (stubProvider) Queue() gpucontext.Queue     { return stubQueue{} }
func (stubProvider) Adapter() gpucontext.Adapter { return stubAdapter{} }
func (stubProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}
func (stubProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

func newTestWindow(t *testing.T, cfg Config) *Window {
	t.Helper()
	w, err := New(cfg)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	t.Cleanup(w.close)
	return w
}

func pixel(dc *gg.Context, x, y int) color.RGBA {
	return color.RGBAModel.Convert(dc.Image().At(x, y)).(color.RGBA)
}

func TestNewInvalidCellSize(t *testing.T) {
	for _, size := range []grid.Size{{}, {W: 10}, {W: 10, H: -2}} {
		if _, err := New(Config{CellSize: size}); !errors.Is(err, grid.ErrInvalidCellSize) {
			t.Errorf("New(%v) = %v, want ErrInvalidCellSize", size, err)
		}
	}
}

func TestEnsureCanvas(t *testing.T) {
	w := newTestWindow(t, Config{CellSize: grid.Size{W: 15, H: 15}})
	if w.Canvas() != nil {
		t.Fatal("canvas created before the first frame")
	}

	if err := w.ensureCanvas(stubProvider{}, 300, 200); err != nil {
		t.Fatalf("ensureCanvas() = %v", err)
	}
	c := w.Canvas()
	if c == nil {
		t.Fatal("ensureCanvas() did not create a canvas")
	}
	if cw, ch := c.Size(); cw != 300 || ch != 200 {
		t.Errorf("canvas size = %dx%d, want 300x200", cw, ch)
	}

	if err := w.ensureCanvas(stubProvider{}, 400, 250); err != nil {
		t.Fatalf("ensureCanvas() after resize = %v", err)
	}
	if w.Canvas() != c {
		t.Error("resize should keep the canvas")
	}
	if cw, ch := c.Size(); cw != 400 || ch != 250 {
		t.Errorf("canvas size after resize = %dx%d, want 400x250", cw, ch)
	}
}

func TestEnsureCanvasNilProvider(t *testing.T) {
	w := newTestWindow(t, Config{CellSize: grid.Size{W: 15, H: 15}})
	if err := w.ensureCanvas(nil, 100, 100); err == nil {
		t.Error("ensureCanvas(nil) should fail")
	}
}

func TestFrame(t *testing.T) {
	blue := gg.Blue
	now := time.Unix(0, 0)
	w := newTestWindow(t, Config{
		CellSize:   grid.Size{W: 15, H: 15},
		Background: &blue,
		Options: []grid.Option{grid.WithClock(func() time.Time {
			now = now.Add(16 * time.Millisecond)
			return now
		})},
		Update: func(h *grid.Handler, viewport grid.Size) error {
			h.Register(grid.NewCell(grid.NewPosition(6, 6, h.CellSize()), gg.Red))
			return nil
		},
	})
	if err := w.ensureCanvas(stubProvider{}, 300, 300); err != nil {
		t.Fatal(err)
	}

	var frameErr error
	if err := w.Canvas().Draw(func(cc *gg.Context) {
		frameErr = w.frame(cc, grid.Size{W: 300, H: 300})
	}); err != nil {
		t.Fatal(err)
	}
	if frameErr != nil {
		t.Fatalf("frame() = %v", frameErr)
	}
	if !w.Canvas().IsDirty() {
		t.Error("canvas not marked for upload")
	}

	cc := w.Canvas().Context()
	if px := pixel(cc, 97, 97); px.R < 200 || px.B > 50 {
		t.Errorf("cell pixel = %v, want red", px)
	}
	if px := pixel(cc, 52, 52); px.B < 200 || px.R > 50 {
		t.Errorf("background pixel = %v, want blue", px)
	}
	if px := pixel(cc, 2, 2); px.R > 50 || px.B > 50 {
		t.Errorf("fps box pixel = %v, want black", px)
	}
	if n := len(w.Handler().Pending()); n != 0 {
		t.Errorf("Pending() = %d after frame, want 0", n)
	}
}

func TestFrameUpdateError(t *testing.T) {
	errStop := errors.New("stop")
	w := newTestWindow(t, Config{
		CellSize: grid.Size{W: 10, H: 10},
		Update:   func(*grid.Handler, grid.Size) error { return errStop },
	})

	if err := w.frame(gg.NewContext(20, 20), grid.Size{W: 20, H: 20}); !errors.Is(err, errStop) {
		t.Errorf("frame() = %v, want update error", err)
	}
}

func TestHandleKeyTogglesFPS(t *testing.T) {
	w := newTestWindow(t, Config{CellSize: grid.Size{W: 10, H: 10}})
	dc := gg.NewContext(100, 40)
	var mods gpucontext.Modifiers

	// (75,15) lies inside the overlay box, right of the label text.
	w.handleKey(gpucontext.KeySpace, mods)
	if err := w.frame(dc, grid.Size{W: 100, H: 40}); err != nil {
		t.Fatal(err)
	}
	if px := pixel(dc, 75, 15); px != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel = %v, want white with the overlay hidden", px)
	}

	w.handleKey(gpucontext.KeySpace, mods)
	if err := w.frame(dc, grid.Size{W: 100, H: 40}); err != nil {
		t.Fatal(err)
	}
	if px := pixel(dc, 75, 15); px.R > 50 {
		t.Errorf("pixel = %v, want the black overlay box", px)
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		frame time.Duration
		want  float64
	}{
		{0, 0},
		{-time.Second, 0},
		{time.Second / 4, 4},
		{20 * time.Millisecond, 50},
	}
	for _, tt := range tests {
		if got := rate(tt.frame); got != tt.want {
			t.Errorf("rate(%v) = %g, want %g", tt.frame, got, tt.want)
		}
	}
}
