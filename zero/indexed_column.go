package zero

// IndexedColumn is a Column that eagerly maintains a reverse cache
// Cod -> []Dom so Preimage is O(|preimage|) instead of O(|support|). The
// index is a hard invariant: every mutation path (Set/Unset/Update) rewrites
// it before returning.
type IndexedColumn[Dom comparable, Cod comparable] struct {
	data  map[Dom]Cod
	order []Dom
	pos   map[Dom]int
	index map[Cod]map[Dom]struct{}
}

// NewIndexedColumn builds an empty IndexedColumn.
func NewIndexedColumn[Dom comparable, Cod comparable]() *IndexedColumn[Dom, Cod] {
	return &IndexedColumn[Dom, Cod]{
		data:  make(map[Dom]Cod),
		pos:   make(map[Dom]int),
		index: make(map[Cod]map[Dom]struct{}),
	}
}

func (c *IndexedColumn[Dom, Cod]) Apply(x Dom) (Cod, bool) {
	v, ok := c.data[x]
	return v, ok
}

func (c *IndexedColumn[Dom, Cod]) IsSet(x Dom) bool {
	_, ok := c.data[x]
	return ok
}

func (c *IndexedColumn[Dom, Cod]) Iter() []Pair[Dom, Cod] {
	out := make([]Pair[Dom, Cod], 0, len(c.order))
	for _, x := range c.order {
		out = append(out, Pair[Dom, Cod]{Key: x, Val: c.data[x]})
	}
	return out
}

func (c *IndexedColumn[Dom, Cod]) Values() []Cod {
	out := make([]Cod, 0, len(c.index))
	seen := make(map[Cod]struct{}, len(c.index))
	for _, x := range c.order {
		y := c.data[x]
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		out = append(out, y)
	}
	return out
}

// Preimage reads directly from the reverse index. Complexity: O(|preimage|).
func (c *IndexedColumn[Dom, Cod]) Preimage(y Cod) []Dom {
	bucket, ok := c.index[y]
	if !ok {
		return nil
	}
	out := make([]Dom, 0, len(bucket))
	for x := range bucket {
		out = append(out, x)
	}
	return out
}

func (c *IndexedColumn[Dom, Cod]) unindex(x Dom, y Cod) {
	bucket, ok := c.index[y]
	if !ok {
		return
	}
	delete(bucket, x)
	if len(bucket) == 0 {
		delete(c.index, y)
	}
}

func (c *IndexedColumn[Dom, Cod]) reindex(x Dom, y Cod) {
	bucket, ok := c.index[y]
	if !ok {
		bucket = make(map[Dom]struct{})
		c.index[y] = bucket
	}
	bucket[x] = struct{}{}
}

// Set assigns x -> y and keeps the reverse index consistent.
func (c *IndexedColumn[Dom, Cod]) Set(x Dom, y Cod) (Cod, bool) {
	old, hadOld := c.data[x]
	if hadOld {
		c.unindex(x, old)
	} else {
		c.pos[x] = len(c.order)
		c.order = append(c.order, x)
	}
	c.data[x] = y
	c.reindex(x, y)
	return old, hadOld
}

// Unset clears the assignment at x and keeps the reverse index consistent.
func (c *IndexedColumn[Dom, Cod]) Unset(x Dom) (Cod, bool) {
	old, hadOld := c.data[x]
	if !hadOld {
		return old, false
	}
	c.unindex(x, old)
	delete(c.data, x)
	i := c.pos[x]
	delete(c.pos, x)
	c.order = append(c.order[:i], c.order[i+1:]...)
	for j := i; j < len(c.order); j++ {
		c.pos[c.order[j]] = j
	}
	return old, true
}

func (c *IndexedColumn[Dom, Cod]) Update(x Dom, y Cod, present bool) {
	if present {
		c.Set(x, y)
		return
	}
	c.Unset(x)
}
