package grid

import "github.com/gogpu/gg"

// Kind identifies the variant of a Drawable.
type Kind uint8

const (
	KindText  Kind = iota // *Text
	KindImage             // *Image
	KindMesh              // *Mesh
)

var kindNames = [...]string{
	KindText:  "text",
	KindImage: "image",
	KindMesh:  "mesh",
}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Drawable is anything that can be queued on a Handler's draw stack.
//
// The set of drawables is closed: *Text, *Image and *Mesh are the only
// implementations. Use a type switch on the concrete type, or Kind, to
// inspect a queued drawable.
type Drawable interface {
	// Draw renders the drawable into dc with the given parameters.
	Draw(dc *gg.Context, p DrawParam) error

	// Dimensions returns the intrinsic bounds of the drawable in its own
	// coordinate space. ok is false when the bounds cannot be determined.
	Dimensions() (r gg.Rect, ok bool)

	// Kind returns the variant.
	Kind() Kind

	// private prevents external implementation
	private()
}

// Entry is one pending submission on the draw stack.
type Entry struct {
	Param    DrawParam
	Drawable Drawable
}

var (
	_ Drawable = (*Text)(nil)
	_ Drawable = (*Image)(nil)
	_ Drawable = (*Mesh)(nil)
)
