package m3u8

/*
 EXT-X-START: TIME-OFFSET (required, signed float — negative measures back
 from the last segment) and PRECISE (YES/absent, default NO).
*/

// Start is the EXT-X-START tag.
type Start struct {
	tagBase
	timeOffset float64
	precise    LazyAttribute[bool]
}

func (s *Start) Name() string { return TagStart }

// TimeOffset returns TIME-OFFSET in seconds.
func (s *Start) TimeOffset() float64 { return s.timeOffset }

// SetTimeOffset overwrites TIME-OFFSET and marks the tag dirty.
func (s *Start) SetTimeOffset(v float64) {
	s.timeOffset = v
	s.markDirty()
}

// Precise reports PRECISE, defaulting to false when absent.
func (s *Start) Precise() bool { return getFlag(s.precise) }

// SetPrecise overwrites PRECISE and marks the tag dirty.
func (s *Start) SetPrecise(v bool) {
	if v {
		s.precise.Set(true)
	} else {
		s.precise.Unset()
	}
	s.markDirty()
}

func (s *Start) Serialize() []byte {
	return s.serializeWith(func() []byte {
		var b attrBuilder
		b.float("TIME-OFFSET", s.timeOffset)
		if s.Precise() {
			b.flag("PRECISE")
		}
		return b.build(TagStart)
	})
}

func newStart(u UnknownTag) (*Start, error) {
	pv, err := u.TagValue().AttributeListValue()
	if err != nil {
		return nil, err
	}
	offsetRaw, err := requireAttr(TagStart, pv.Attributes, "TIME-OFFSET")
	if err != nil {
		return nil, err
	}
	offset, err := offsetRaw.Float64()
	if err != nil {
		return nil, err
	}
	return &Start{
		tagBase:    tagBase{outputLine: u.Original},
		timeOffset: offset,
		precise:    lazyFromAttrs[bool](pv.Attributes, "PRECISE"),
	}, nil
}

// NewStart builds a fresh EXT-X-START tag, already dirty.
func NewStart(timeOffset float64) *Start {
	return &Start{tagBase: tagBase{dirty: true}, timeOffset: timeOffset}
}
