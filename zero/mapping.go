package zero

// Mapping is a partial function Dom -> Cod with no intrinsic knowledge of
// its domain or codomain sets (those are supplied separately wherever a
// Mapping is validated against them, e.g. graph.ColumnarGraph).
type Mapping[Dom comparable, Cod any] interface {
	// Apply returns the image of x and whether the mapping is defined there.
	// Complexity: O(1) for the map-backed implementation.
	Apply(x Dom) (Cod, bool)

	// IsSet reports whether the mapping is defined at x, without allocating
	// the zero value of Cod.
	IsSet(x Dom) bool
}

// MapMapping is the default Mapping, backed by a Go map.
type MapMapping[Dom comparable, Cod any] struct {
	data map[Dom]Cod
}

// NewMapMapping builds an empty MapMapping.
func NewMapMapping[Dom comparable, Cod any]() *MapMapping[Dom, Cod] {
	return &MapMapping[Dom, Cod]{data: make(map[Dom]Cod)}
}

func (m *MapMapping[Dom, Cod]) Apply(x Dom) (Cod, bool) {
	v, ok := m.data[x]
	return v, ok
}

func (m *MapMapping[Dom, Cod]) IsSet(x Dom) bool {
	_, ok := m.data[x]
	return ok
}

// Set assigns x -> y, returning the previous image if any.
// Complexity: O(1).
func (m *MapMapping[Dom, Cod]) Set(x Dom, y Cod) (old Cod, hadOld bool) {
	old, hadOld = m.data[x]
	m.data[x] = y
	return old, hadOld
}

// Unset removes the assignment at x, returning the previous image if any.
// Complexity: O(1).
func (m *MapMapping[Dom, Cod]) Unset(x Dom) (old Cod, hadOld bool) {
	old, hadOld = m.data[x]
	delete(m.data, x)
	return old, hadOld
}

// Update sets the mapping at x to y when present is true, and clears it
// otherwise.
func (m *MapMapping[Dom, Cod]) Update(x Dom, y Cod, present bool) {
	if present {
		m.data[x] = y
		return
	}
	delete(m.data, x)
}
