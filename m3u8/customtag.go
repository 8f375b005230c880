package m3u8

/*
 This file defines the custom-tag extension contract: how a
 caller registers additional tag types that participate in line
 classification alongside the 32 built-in HLS tags.
*/

// WritableTagValue mirrors ParsedTagValue but uses owned strings so a
// custom tag can be constructed from scratch (a builder) rather than only
// decoded from input bytes.
type WritableTagValue struct {
	Kind        ValueKind
	Integer     uint64
	RangeLength uint64
	RangeOffset *uint64
	Float       float64
	Title       string
	DateTime    DateTime
	Attributes  AttributeList
}

// CustomTag is implemented by a caller-registered tag type once it has been
// parsed from (or built in place of) an UnknownTag.
type CustomTag interface {
	// Name returns the tag name, without the leading "#EXT" prefix or a
	// trailing colon.
	Name() string
	// Value returns the writable form of this tag's current value, for
	// serialization.
	Value() WritableTagValue
}

// CustomTagFactory is implemented by a caller wanting to extend the line
// classifier with tag names outside the built-in catalog.
type CustomTagFactory interface {
	// IsKnownName reports whether name (as found in an UnknownTag) should
	// be promoted by this factory.
	IsKnownName(name string) bool
	// TryFrom attempts to parse an UnknownTag whose name this factory
	// claimed via IsKnownName.
	TryFrom(u UnknownTag) (CustomTag, error)
}

// customTagAdapter lets a parsed CustomTag participate as a Tag in a Line,
// by rendering WritableTagValue through the standard §6.2 output grammar.
type customTagAdapter struct {
	inner CustomTag
}

func (c customTagAdapter) Name() string   { return c.inner.Name() }
func (c customTagAdapter) IsDirty() bool  { return true }
func (c customTagAdapter) Serialize() []byte {
	return []byte(serializeCustomTag(c.inner.Name(), c.inner.Value()))
}

func serializeCustomTag(name string, v WritableTagValue) string {
	out := "#EXT" + name
	switch v.Kind {
	case ValueEmpty:
		return out
	case ValueInteger:
		return out + ":" + uitoa(v.Integer)
	case ValueIntegerRange:
		s := out + ":" + uitoa(v.RangeLength)
		if v.RangeOffset != nil {
			s += "@" + uitoa(*v.RangeOffset)
		}
		return s
	case ValueFloatWithTitle:
		s := out + ":" + formatFloat(v.Float)
		if v.Title != "" {
			s += "," + v.Title
		}
		return s
	case ValueDateTime:
		return out + ":" + v.DateTime.String()
	case ValueAttributeList:
		return out + ":" + formatAttributeList(v.Attributes)
	}
	return out
}
