package zero

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NameSegment is one component of a QualifiedName: either a machine-generated
// uuid.UUID (unique across the process) or an interned Text string (unique
// within whatever scope inserted it). Grounded in google/uuid, the same
// identifier library the rest of the example pack reaches for.
type NameSegment struct {
	uuid uuid.UUID
	text string
	kind segmentKind
}

type segmentKind uint8

const (
	segUUID segmentKind = iota
	segText
)

// NewUUIDSegment mints a fresh, process-unique NameSegment.
func NewUUIDSegment() NameSegment {
	return NameSegment{uuid: uuid.New(), kind: segUUID}
}

// TextSegment wraps an interned string as a NameSegment.
func TextSegment(s string) NameSegment {
	return NameSegment{text: s, kind: segText}
}

// IsUUID reports whether the segment is the Uuid variant.
func (s NameSegment) IsUUID() bool { return s.kind == segUUID }

// Text returns the segment's text and whether it is the Text variant.
func (s NameSegment) Text() (string, bool) {
	if s.kind == segText {
		return s.text, true
	}
	return "", false
}

// UUID returns the segment's uuid.UUID and whether it is the Uuid variant.
func (s NameSegment) UUID() (uuid.UUID, bool) {
	if s.kind == segUUID {
		return s.uuid, true
	}
	return uuid.UUID{}, false
}

// needsBacktick reports whether a text segment must be backtick-quoted to
// round-trip unambiguously (contains the '.' separator, a backtick, or
// parses as a bare UUID, which would otherwise collide with the Uuid
// variant's serialization).
func needsBacktick(s string) bool {
	if s == "" {
		return true
	}
	if strings.ContainsAny(s, ".`") {
		return true
	}
	if _, err := uuid.Parse(s); err == nil {
		return true
	}
	return false
}

// String serializes a single segment: RFC-4122 lower-case for Uuid, raw text
// (or backtick-quoted text) for Text.
func (s NameSegment) String() string {
	switch s.kind {
	case segUUID:
		return s.uuid.String()
	default:
		if needsBacktick(s.text) {
			return "`" + strings.ReplaceAll(s.text, "`", "``") + "`"
		}
		return s.text
	}
}

// Equal compares two segments by variant and payload.
func (s NameSegment) Equal(o NameSegment) bool {
	if s.kind != o.kind {
		return false
	}
	if s.kind == segUUID {
		return s.uuid == o.uuid
	}
	return s.text == o.text
}

// QualifiedName is an ordered sequence of NameSegments, serialized
// dot-separated.
type QualifiedName struct {
	segments []NameSegment
}

// NewQualifiedName builds a QualifiedName from segments, root-to-leaf.
func NewQualifiedName(segments ...NameSegment) QualifiedName {
	cp := make([]NameSegment, len(segments))
	copy(cp, segments)
	return QualifiedName{segments: cp}
}

// Segments returns a defensive copy of the segment sequence.
func (n QualifiedName) Segments() []NameSegment {
	out := make([]NameSegment, len(n.segments))
	copy(out, n.segments)
	return out
}

// Len reports the number of segments.
func (n QualifiedName) Len() int { return len(n.segments) }

// Append returns a new QualifiedName with seg appended.
func (n QualifiedName) Append(seg NameSegment) QualifiedName {
	out := make([]NameSegment, len(n.segments)+1)
	copy(out, n.segments)
	out[len(n.segments)] = seg
	return QualifiedName{segments: out}
}

// Equal compares two qualified names segment-wise.
func (n QualifiedName) Equal(o QualifiedName) bool {
	if len(n.segments) != len(o.segments) {
		return false
	}
	for i := range n.segments {
		if !n.segments[i].Equal(o.segments[i]) {
			return false
		}
	}
	return true
}

// SerializeString renders the name as dot-separated segments, backticking
// ambiguous text segments. Complexity: O(total segment length).
func (n QualifiedName) SerializeString() string {
	parts := make([]string, len(n.segments))
	for i, s := range n.segments {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

func (n QualifiedName) String() string { return n.SerializeString() }

// DeserializeStr parses a dot-separated qualified name, honoring backtick
// quoting and doubled-backtick escaping within quoted segments. It is the
// exact left inverse of SerializeString for every name constructible by
// NewQualifiedName/Append: DeserializeStr(n.SerializeString()) == n.
func DeserializeStr(s string) (QualifiedName, error) {
	var segs []NameSegment
	i := 0
	for i < len(s) {
		var raw string
		if s[i] == '`' {
			j := i + 1
			var b strings.Builder
			for j < len(s) {
				if s[j] == '`' {
					if j+1 < len(s) && s[j+1] == '`' {
						b.WriteByte('`')
						j += 2
						continue
					}
					break
				}
				b.WriteByte(s[j])
				j++
			}
			if j >= len(s) {
				return QualifiedName{}, fmt.Errorf("zero: unterminated backtick segment in %q", s)
			}
			raw = b.String()
			i = j + 1
			if i < len(s) {
				if s[i] != '.' {
					return QualifiedName{}, fmt.Errorf("zero: expected '.' after backtick segment in %q", s)
				}
				i++
			}
			segs = append(segs, TextSegment(raw))
			continue
		}
		j := strings.IndexByte(s[i:], '.')
		if j < 0 {
			raw = s[i:]
			i = len(s)
		} else {
			raw = s[i : i+j]
			i = i + j + 1
		}
		if id, err := uuid.Parse(raw); err == nil {
			segs = append(segs, NameSegment{uuid: id, kind: segUUID})
		} else {
			segs = append(segs, TextSegment(raw))
		}
	}
	return QualifiedName{segments: segs}, nil
}
