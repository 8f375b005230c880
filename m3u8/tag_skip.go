package m3u8

/*
 EXT-X-SKIP: SKIPPED-SEGMENTS (required, integer) and
 RECENTLY-REMOVED-DATERANGES (optional, quoted, tab-separated) — stored
 and round-tripped as a single string; callers needing the individual
 IDs split on '\t' themselves.
*/

// Skip is the EXT-X-SKIP tag.
type Skip struct {
	tagBase
	skippedSegments         uint64
	recentlyRemovedDateranges LazyAttribute[string]
}

func (s *Skip) Name() string { return TagSkip }

// SkippedSegments returns SKIPPED-SEGMENTS.
func (s *Skip) SkippedSegments() uint64 { return s.skippedSegments }

// SetSkippedSegments overwrites SKIPPED-SEGMENTS and marks the tag dirty.
func (s *Skip) SetSkippedSegments(v uint64) {
	s.skippedSegments = v
	s.markDirty()
}

// RecentlyRemovedDateranges returns the raw RECENTLY-REMOVED-DATERANGES
// string, if present.
func (s *Skip) RecentlyRemovedDateranges() (string, bool) {
	v, ok, _ := s.recentlyRemovedDateranges.Get(decodeQuotedString)
	return v, ok
}

// SetRecentlyRemovedDateranges overwrites RECENTLY-REMOVED-DATERANGES and
// marks the tag dirty.
func (s *Skip) SetRecentlyRemovedDateranges(v string) {
	s.recentlyRemovedDateranges.Set(v)
	s.markDirty()
}

func (s *Skip) Serialize() []byte {
	return s.serializeWith(func() []byte {
		var b attrBuilder
		b.uint("SKIPPED-SEGMENTS", s.skippedSegments)
		if v, ok := s.RecentlyRemovedDateranges(); ok {
			b.str("RECENTLY-REMOVED-DATERANGES", v)
		}
		return b.build(TagSkip)
	})
}

func newSkip(u UnknownTag) (*Skip, error) {
	pv, err := u.TagValue().AttributeListValue()
	if err != nil {
		return nil, err
	}
	raw, err := requireAttr(TagSkip, pv.Attributes, "SKIPPED-SEGMENTS")
	if err != nil {
		return nil, err
	}
	n, err := raw.Uint64()
	if err != nil {
		return nil, err
	}
	return &Skip{
		tagBase:                   tagBase{outputLine: u.Original},
		skippedSegments:           n,
		recentlyRemovedDateranges: lazyFromAttrs[string](pv.Attributes, "RECENTLY-REMOVED-DATERANGES"),
	}, nil
}

// NewSkip builds a fresh EXT-X-SKIP tag, already dirty.
func NewSkip(skippedSegments uint64) *Skip {
	return &Skip{tagBase: tagBase{dirty: true}, skippedSegments: skippedSegments}
}
