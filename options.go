package grid

import (
	"time"

	"github.com/gogpu/gg/text"
	"golang.org/x/text/language"
)

// Default configuration values.
const (
	// DefaultGridLineWidth is the stroke width of grid lines.
	DefaultGridLineWidth = 1.0

	// DefaultLabelSize is the pixel size of the FPS label font.
	DefaultLabelSize = 18.0

	// DefaultLabelCacheSize is the number of FPS label drawables kept
	// between frames.
	DefaultLabelCacheSize = 64
)

// Option configures a Handler during creation.
//
// Example:
//
//	h := grid.New(grid.Size{W: 15, H: 15},
//	    grid.WithGridLineWidth(2),
//	    grid.WithLabelLanguage(language.German))
type Option func(*options)

// options holds optional configuration for Handler creation.
type options struct {
	face      text.Face
	lang      language.Tag
	lineWidth float64
	now       func() time.Time
	cacheSize int
}

// defaultOptions returns the default handler options.
func defaultOptions() options {
	return options{
		face:      nil, // Go Regular is loaded on first DisplayFPS
		lang:      language.English,
		lineWidth: DefaultGridLineWidth,
		now:       time.Now,
		cacheSize: DefaultLabelCacheSize,
	}
}

// WithFont sets the face used for the FPS label.
// By default the handler loads Go Regular at DefaultLabelSize.
func WithFont(face text.Face) Option {
	return func(o *options) {
		o.face = face
	}
}

// WithLabelLanguage sets the language used to format the FPS label.
// Large frame rates are grouped according to the language, e.g. "1,200"
// for English and "1.200" for German.
func WithLabelLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

// WithGridLineWidth sets the stroke width of lines produced by DrawGrid.
// Non-positive widths are ignored.
func WithGridLineWidth(width float64) Option {
	return func(o *options) {
		if width > 0 {
			o.lineWidth = width
		}
	}
}

// WithClock replaces the clock backing FrameTime.
// Tests use it to make frame timing deterministic.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLabelCacheSize sets how many distinct FPS labels are kept between
// frames. If size <= 0, DefaultLabelCacheSize is used.
func WithLabelCacheSize(size int) Option {
	return func(o *options) {
		if size <= 0 {
			size = DefaultLabelCacheSize
		}
		o.cacheSize = size
	}
}
