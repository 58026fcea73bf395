package grid

import "errors"

// Sentinel errors for the grid package.
var (
	// ErrInvalidCellSize is returned when a cell width or height is not
	// a positive finite number.
	ErrInvalidCellSize = errors.New("grid: invalid cell size")

	// ErrInvalidRect is returned by MeshBuilder when a rectangle has a
	// negative or non-finite extent.
	ErrInvalidRect = errors.New("grid: invalid rectangle")

	// ErrInvalidLine is returned by MeshBuilder when a polyline has fewer
	// than two points or a non-positive width.
	ErrInvalidLine = errors.New("grid: invalid line")

	// ErrNoFace is returned when a Text is drawn without a font face.
	ErrNoFace = errors.New("grid: text has no font face")

	// ErrNilContext is returned when Flush or Draw receives a nil context.
	ErrNilContext = errors.New("grid: nil drawing context")
)

// DrawError reports a failed submission during Flush.
// Index is the position of the failing entry in the draw stack,
// or -1 when the batched cell mesh failed.
type DrawError struct {
	Index int
	Kind  Kind
	Err   error
}

func (e *DrawError) Error() string {
	if e.Index < 0 {
		return "grid: draw cell mesh: " + e.Err.Error()
	}
	return "grid: draw " + e.Kind.String() + " entry: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *DrawError) Unwrap() error {
	return e.Err
}
