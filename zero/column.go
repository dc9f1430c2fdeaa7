package zero

// Column is a Mapping of finite support: it additionally knows its own
// domain of definition and can enumerate it, and can answer preimage
// queries. Every higher-layer generator table (object/morphism types, graph
// src/tgt maps) is built on a Column.
type Column[Dom comparable, Cod comparable] interface {
	Mapping[Dom, Cod]

	// Iter returns the (x, y) pairs currently defined, in insertion order.
	Iter() []Pair[Dom, Cod]

	// Values returns the distinct images currently in the support, in
	// first-seen order.
	Values() []Cod

	// Preimage returns every x with Apply(x) == (y, true).
	// Complexity: O(support) for HashColumn, O(preimage) for IndexedColumn.
	Preimage(y Cod) []Dom

	// Set assigns x -> y, returning the previous image if any.
	Set(x Dom, y Cod) (old Cod, hadOld bool)

	// Unset clears the assignment at x, returning the previous image if any.
	Unset(x Dom) (old Cod, hadOld bool)

	// Update sets or clears the mapping at x depending on present.
	Update(x Dom, y Cod, present bool)
}

// Pair is a (domain, codomain) element pair, used by Column.Iter.
type Pair[Dom, Cod any] struct {
	Key Dom
	Val Cod
}

// HashColumn is the unindexed Column: Preimage is a linear scan of the
// support. Cheap to mutate, expensive to query by image.
type HashColumn[Dom comparable, Cod comparable] struct {
	data  map[Dom]Cod
	order []Dom
	pos   map[Dom]int
}

// NewHashColumn builds an empty HashColumn.
func NewHashColumn[Dom comparable, Cod comparable]() *HashColumn[Dom, Cod] {
	return &HashColumn[Dom, Cod]{
		data: make(map[Dom]Cod),
		pos:  make(map[Dom]int),
	}
}

func (c *HashColumn[Dom, Cod]) Apply(x Dom) (Cod, bool) {
	v, ok := c.data[x]
	return v, ok
}

func (c *HashColumn[Dom, Cod]) IsSet(x Dom) bool {
	_, ok := c.data[x]
	return ok
}

func (c *HashColumn[Dom, Cod]) Iter() []Pair[Dom, Cod] {
	out := make([]Pair[Dom, Cod], 0, len(c.order))
	for _, x := range c.order {
		out = append(out, Pair[Dom, Cod]{Key: x, Val: c.data[x]})
	}
	return out
}

func (c *HashColumn[Dom, Cod]) Values() []Cod {
	seen := make(map[Cod]struct{}, len(c.order))
	out := make([]Cod, 0, len(c.order))
	for _, x := range c.order {
		v := c.data[x]
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Preimage scans the support linearly. Complexity: O(|support|).
func (c *HashColumn[Dom, Cod]) Preimage(y Cod) []Dom {
	var out []Dom
	for _, x := range c.order {
		if c.data[x] == y {
			out = append(out, x)
		}
	}
	return out
}

func (c *HashColumn[Dom, Cod]) Set(x Dom, y Cod) (Cod, bool) {
	old, hadOld := c.data[x]
	if _, tracked := c.pos[x]; !tracked {
		c.pos[x] = len(c.order)
		c.order = append(c.order, x)
	}
	c.data[x] = y
	return old, hadOld
}

func (c *HashColumn[Dom, Cod]) Unset(x Dom) (Cod, bool) {
	old, hadOld := c.data[x]
	if hadOld {
		delete(c.data, x)
		i := c.pos[x]
		delete(c.pos, x)
		c.order = append(c.order[:i], c.order[i+1:]...)
		for j := i; j < len(c.order); j++ {
			c.pos[c.order[j]] = j
		}
	}
	return old, hadOld
}

func (c *HashColumn[Dom, Cod]) Update(x Dom, y Cod, present bool) {
	if present {
		c.Set(x, y)
		return
	}
	c.Unset(x)
}

// IterInvalid reports where the Column fails to be a total function from
// dom to cod: InvalidFunction{Kind:"dom"} for dom elements missing from the
// support, InvalidFunction{Kind:"cod"} for support elements whose image
// escapes cod.
func IterInvalid[Dom comparable, Cod comparable](col Column[Dom, Cod], dom FinSet[Dom], cod Set[Cod]) []InvalidFunction[Dom] {
	var errs []InvalidFunction[Dom]
	for _, x := range dom.Iter() {
		y, ok := col.Apply(x)
		if !ok {
			errs = append(errs, NewDomInvalid[Dom](x))
			continue
		}
		if !cod.Contains(y) {
			errs = append(errs, NewCodInvalid[Dom](x))
		}
	}
	return errs
}
