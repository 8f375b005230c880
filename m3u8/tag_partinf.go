package m3u8

// EXT-X-PART-INF: PART-TARGET (required, float) — the target duration of
// EXT-X-PART segments in this playlist.

// PartInf is the EXT-X-PART-INF tag.
type PartInf struct {
	tagBase
	partTarget float64
}

func (p *PartInf) Name() string { return TagPartInf }

// PartTarget returns PART-TARGET in seconds.
func (p *PartInf) PartTarget() float64 { return p.partTarget }

// SetPartTarget overwrites PART-TARGET and marks the tag dirty.
func (p *PartInf) SetPartTarget(v float64) {
	p.partTarget = v
	p.markDirty()
}

func (p *PartInf) Serialize() []byte {
	return p.serializeWith(func() []byte {
		var b attrBuilder
		b.float("PART-TARGET", p.partTarget)
		return b.build(TagPartInf)
	})
}

func newPartInf(u UnknownTag) (*PartInf, error) {
	pv, err := u.TagValue().AttributeListValue()
	if err != nil {
		return nil, err
	}
	raw, err := requireAttr(TagPartInf, pv.Attributes, "PART-TARGET")
	if err != nil {
		return nil, err
	}
	v, err := raw.Float64()
	if err != nil {
		return nil, err
	}
	return &PartInf{tagBase: tagBase{outputLine: u.Original}, partTarget: v}, nil
}

// NewPartInf builds a fresh EXT-X-PART-INF tag, already dirty.
func NewPartInf(partTarget float64) *PartInf {
	return &PartInf{tagBase: tagBase{dirty: true}, partTarget: partTarget}
}
