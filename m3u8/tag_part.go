package m3u8

/*
 EXT-X-PART: URI (required, quoted), DURATION (required, float),
 INDEPENDENT (YES/absent, default NO), BYTERANGE (optional, quoted range —
 unlike EXT-X-BYTERANGE/EXT-X-MAP's nested form, a part's range carries no
 offset: it is always relative to the end of the previous part in the same
 parent segment), GAP (YES/absent, default NO).
*/

// Part is the EXT-X-PART tag.
type Part struct {
	tagBase
	uri         string
	duration    float64
	independent LazyAttribute[bool]
	byterange   LazyAttribute[uint64]
	gap         LazyAttribute[bool]
}

func (p *Part) Name() string { return TagPart }

// URI returns the partial segment's URI.
func (p *Part) URI() string { return p.uri }

// SetURI overwrites URI and marks the tag dirty.
func (p *Part) SetURI(v string) {
	p.uri = v
	p.markDirty()
}

// Duration returns DURATION in seconds.
func (p *Part) Duration() float64 { return p.duration }

// SetDuration overwrites DURATION and marks the tag dirty.
func (p *Part) SetDuration(v float64) {
	p.duration = v
	p.markDirty()
}

// Independent reports INDEPENDENT, defaulting to false.
func (p *Part) Independent() bool { return getFlag(p.independent) }

// SetIndependent overwrites INDEPENDENT and marks the tag dirty.
func (p *Part) SetIndependent(v bool) {
	if v {
		p.independent.Set(true)
	} else {
		p.independent.Unset()
	}
	p.markDirty()
}

// Byterange returns the part's length-only byte range, if present.
func (p *Part) Byterange() (uint64, bool) {
	v, ok, _ := p.byterange.Get(func(v AttributeValue) (uint64, error) {
		s, err := v.QuotedString()
		if err != nil {
			return 0, err
		}
		return parseU64([]byte(s))
	})
	return v, ok
}

// SetByterange overwrites BYTERANGE and marks the tag dirty.
func (p *Part) SetByterange(length uint64) {
	p.byterange.Set(length)
	p.markDirty()
}

// UnsetByterange clears BYTERANGE and marks the tag dirty.
func (p *Part) UnsetByterange() {
	p.byterange.Unset()
	p.markDirty()
}

// Gap reports GAP, defaulting to false.
func (p *Part) Gap() bool { return getFlag(p.gap) }

// SetGap overwrites GAP and marks the tag dirty.
func (p *Part) SetGap(v bool) {
	if v {
		p.gap.Set(true)
	} else {
		p.gap.Unset()
	}
	p.markDirty()
}

func (p *Part) Serialize() []byte {
	return p.serializeWith(func() []byte {
		var b attrBuilder
		b.str("URI", p.uri)
		b.float("DURATION", p.duration)
		if p.Independent() {
			b.flag("INDEPENDENT")
		}
		if v, ok := p.Byterange(); ok {
			b.str("BYTERANGE", uitoa(v))
		}
		if p.Gap() {
			b.flag("GAP")
		}
		return b.build(TagPart)
	})
}

func newPart(u UnknownTag) (*Part, error) {
	pv, err := u.TagValue().AttributeListValue()
	if err != nil {
		return nil, err
	}
	uriRaw, err := requireAttr(TagPart, pv.Attributes, "URI")
	if err != nil {
		return nil, err
	}
	uri, err := uriRaw.QuotedString()
	if err != nil {
		return nil, err
	}
	durationRaw, err := requireAttr(TagPart, pv.Attributes, "DURATION")
	if err != nil {
		return nil, err
	}
	duration, err := durationRaw.Float64()
	if err != nil {
		return nil, err
	}
	return &Part{
		tagBase:     tagBase{outputLine: u.Original},
		uri:         uri,
		duration:    duration,
		independent: lazyFromAttrs[bool](pv.Attributes, "INDEPENDENT"),
		byterange:   lazyFromAttrs[uint64](pv.Attributes, "BYTERANGE"),
		gap:         lazyFromAttrs[bool](pv.Attributes, "GAP"),
	}, nil
}

// NewPart builds a fresh EXT-X-PART tag, already dirty.
func NewPart(uri string, duration float64) *Part {
	return &Part{tagBase: tagBase{dirty: true}, uri: uri, duration: duration}
}
