package m3u8

/*
 This file defines UnknownTag: the record produced for every "#EXT..."
 line before the line classifier decides whether its name is enabled for
 promotion to a typed KnownTag.
*/

// UnknownTag carries the pieces the classifier sliced out of a tag line:
// the name after "#EXT" and before ':' or end-of-line, the value bytes
// after ':' (nil/HasValue=false if no colon was present at all — distinct
// from a colon followed by nothing), and the complete original line bytes
// (terminator excluded) for byte-exact passthrough.
type UnknownTag struct {
	Name     string
	Value    []byte
	HasValue bool
	Original []byte
}

// TagValue wraps the unknown tag's raw value for use with the §4.2
// converters. Calling this on a tag with HasValue == false yields a
// TagValue over a nil slice, whose IsEmpty is true but which is distinct
// from "colon present, nothing after" at the UnknownTag level.
func (u UnknownTag) TagValue() TagValue { return NewTagValue(u.Value) }
