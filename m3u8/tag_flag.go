package m3u8

/*
 This file implements the six HLS tags that carry no value at all:
 EXTM3U, EXT-X-INDEPENDENT-SEGMENTS, EXT-X-ENDLIST, EXT-X-I-FRAMES-ONLY,
 EXT-X-DISCONTINUITY and EXT-X-GAP. Their typed-tag wrappers are
 structurally identical — nothing but a name distinguishes one from
 another — so rather than hand-duplicate six empty structs they share one
 FlagTag implementation parameterized by tag name.
*/

// FlagTag is a known tag whose value is always ParsedTagValue::Empty — the
// tag's mere presence is the signal.
type FlagTag struct {
	tagBase
	tagName string
}

func (f *FlagTag) Name() string { return f.tagName }

func (f *FlagTag) Serialize() []byte {
	return f.serializeWith(func() []byte { return []byte("#EXT" + f.tagName) })
}

func newFlagTag(u UnknownTag, name string) (*FlagTag, error) {
	if u.HasValue && len(u.Value) > 0 {
		return nil, &ValidationError{TagName: name, Reason: "unexpected value on a tag that carries none"}
	}
	return &FlagTag{tagBase: tagBase{outputLine: u.Original}, tagName: name}, nil
}

// NewFlagTag builds a fresh flag tag of the given name, already dirty so
// its first Serialize() synthesizes "#EXT<name>".
func NewFlagTag(name string) *FlagTag {
	return &FlagTag{tagBase: tagBase{dirty: true}, tagName: name}
}

func newM3U(u UnknownTag) (*FlagTag, error)       { return newFlagTag(u, TagM3U) }
func newEndList(u UnknownTag) (*FlagTag, error)   { return newFlagTag(u, TagEndList) }
func newIFramesOnly(u UnknownTag) (*FlagTag, error) {
	return newFlagTag(u, TagIFramesOnly)
}
func newDiscontinuity(u UnknownTag) (*FlagTag, error) {
	return newFlagTag(u, TagDiscontinuity)
}
func newGap(u UnknownTag) (*FlagTag, error) { return newFlagTag(u, TagGap) }
func newIndependentSegments(u UnknownTag) (*FlagTag, error) {
	return newFlagTag(u, TagIndependentSegments)
}
