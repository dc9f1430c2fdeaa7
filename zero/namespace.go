package zero

import "github.com/google/uuid"

// LabelSegment is the human-oriented counterpart of NameSegment: either a
// display string or a positional index (used for anonymous list-like
// children, e.g. "the 3rd field").
type LabelSegment struct {
	text    string
	index   int
	isIndex bool
}

// TextLabel builds a text LabelSegment.
func TextLabel(s string) LabelSegment { return LabelSegment{text: s} }

// IndexLabel builds an Index(usize) LabelSegment.
func IndexLabel(i int) LabelSegment { return LabelSegment{index: i, isIndex: true} }

// Text returns the label's text and whether it is the Text variant.
func (l LabelSegment) Text() (string, bool) {
	if l.isIndex {
		return "", false
	}
	return l.text, true
}

// Index returns the label's index and whether it is the Index variant.
func (l LabelSegment) Index() (int, bool) { return l.index, l.isIndex }

func (l LabelSegment) Equal(o LabelSegment) bool {
	if l.isIndex != o.isIndex {
		return false
	}
	if l.isIndex {
		return l.index == o.index
	}
	return l.text == o.text
}

// LabelLookup is the result kind of Namespace.LabelToName: a label may
// resolve to Unique a single NameSegment, Arbitrary one of several (the
// namespace does not commit to which), or None.
type LabelLookup int

const (
	// LookupNone means no UUID in scope carries the queried label.
	LookupNone LabelLookup = iota
	// LookupUnique means exactly one UUID carries the queried label.
	LookupUnique
	// LookupArbitrary means multiple UUIDs share the queried label; the
	// namespace returns one of them without guaranteeing which.
	LookupArbitrary
)

// namespaceNode is one level of the Namespace tree.
type namespaceNode struct {
	children map[NameSegment]*namespaceNode
	// labels maps a child's NameSegment (restricted to UUID children) to its
	// human label, and the reverse for lookup.
	labelOf map[uuid.UUID]LabelSegment
	byLabel map[LabelSegment][]uuid.UUID
}

func newNamespaceNode() *namespaceNode {
	return &namespaceNode{
		children: make(map[NameSegment]*namespaceNode),
		labelOf:  make(map[uuid.UUID]LabelSegment),
		byLabel:  make(map[LabelSegment][]uuid.UUID),
	}
}

// Namespace is a tree keyed by NameSegment, carrying an optional
// uuid<->label bijection-ish mapping per node.
type Namespace struct {
	root *namespaceNode
}

// NewNamespace builds an empty Namespace.
func NewNamespace() *Namespace {
	return &Namespace{root: newNamespaceNode()}
}

func (ns *Namespace) descend(path []NameSegment, create bool) *namespaceNode {
	node := ns.root
	for _, seg := range path {
		child, ok := node.children[seg]
		if !ok {
			if !create {
				return nil
			}
			child = newNamespaceNode()
			node.children[seg] = child
		}
		node = child
	}
	return node
}

// Insert places a child NameSegment under the parent path, optionally
// attaching a human label when the child is a UUID segment. Returns
// ErrDuplicateKey if the child is already present under that parent -
// namespaces never re-insert the same inner key.
func (ns *Namespace) Insert(parent []NameSegment, child NameSegment, label *LabelSegment) error {
	node := ns.descend(parent, true)
	if _, exists := node.children[child]; exists {
		return ErrDuplicateKey
	}
	node.children[child] = newNamespaceNode()
	if label != nil {
		if id, ok := child.UUID(); ok {
			node.labelOf[id] = *label
			node.byLabel[*label] = append(node.byLabel[*label], id)
		}
	}
	return nil
}

// NameToLabel resolves a NameSegment to its human label within the node
// addressed by parent. It always succeeds: falling back to the raw segment
// string (wrapped as a text label) when no label was registered.
func (ns *Namespace) NameToLabel(parent []NameSegment, child NameSegment) LabelSegment {
	node := ns.descend(parent, false)
	if node != nil {
		if id, ok := child.UUID(); ok {
			if lbl, ok := node.labelOf[id]; ok {
				return lbl
			}
		}
	}
	return TextLabel(child.String())
}

// LabelToName resolves a human label back to a NameSegment within the node
// addressed by parent, reporting whether the resolution was Unique,
// Arbitrary (multiple UUIDs share the label at this level), or None.
func (ns *Namespace) LabelToName(parent []NameSegment, label LabelSegment) (NameSegment, LabelLookup) {
	node := ns.descend(parent, false)
	if node == nil {
		return NameSegment{}, LookupNone
	}
	ids, ok := node.byLabel[label]
	switch {
	case !ok || len(ids) == 0:
		return NameSegment{}, LookupNone
	case len(ids) == 1:
		return NameSegment{uuid: ids[0], kind: segUUID}, LookupUnique
	default:
		return NameSegment{uuid: ids[0], kind: segUUID}, LookupArbitrary
	}
}
