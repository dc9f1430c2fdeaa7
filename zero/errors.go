package zero

import "errors"

// Sentinel errors for the zero package.
var (
	// ErrDuplicateKey is returned when a namespace insertion would overwrite
	// an existing inner key.
	ErrDuplicateKey = errors.New("zero: namespace key already present")

	// ErrUnknownSegment names a QualifiedName segment that the namespace has
	// no entry for. No function in this package returns it: Namespace
	// lookups report absence through LookupNone or a text-label fallback.
	ErrUnknownSegment = errors.New("zero: unknown name segment")
)

// InvalidFunction classifies why a Mapping fails to be a total function from
// dom to cod. Kind says which of the two failures occurred; Key holds the
// offending domain element.
type InvalidFunction[Dom any] struct {
	// Kind is "dom" when the mapping is undefined at Key, "cod" when it is
	// defined but the image escapes the codomain set.
	Kind string
	Key  Dom
}

func (e InvalidFunction[Dom]) Error() string {
	switch e.Kind {
	case "dom":
		return "zero: mapping undefined at domain element"
	case "cod":
		return "zero: mapping image not contained in codomain"
	default:
		return "zero: invalid function"
	}
}

// NewDomInvalid builds an InvalidFunction for an element missing from the
// mapping's domain of definition.
func NewDomInvalid[Dom any](x Dom) InvalidFunction[Dom] {
	return InvalidFunction[Dom]{Kind: "dom", Key: x}
}

// NewCodInvalid builds an InvalidFunction for an element whose image escapes
// the declared codomain set.
func NewCodInvalid[Dom any](x Dom) InvalidFunction[Dom] {
	return InvalidFunction[Dom]{Kind: "cod", Key: x}
}
