package m3u8

// EXT-X-RENDITION-REPORT: URI (required, quoted), LAST-MSN (optional,
// integer), LAST-PART (optional, integer).

// RenditionReport is the EXT-X-RENDITION-REPORT tag.
type RenditionReport struct {
	tagBase
	uri      string
	lastMSN  LazyAttribute[uint64]
	lastPart LazyAttribute[uint64]
}

func (r *RenditionReport) Name() string { return TagRenditionReport }

// URI returns the referenced playlist's URI.
func (r *RenditionReport) URI() string { return r.uri }

// SetURI overwrites URI and marks the tag dirty.
func (r *RenditionReport) SetURI(v string) {
	r.uri = v
	r.markDirty()
}

// LastMSN returns LAST-MSN, if present.
func (r *RenditionReport) LastMSN() (uint64, bool) {
	v, ok, _ := r.lastMSN.Get(decodeUint64)
	return v, ok
}

// SetLastMSN overwrites LAST-MSN and marks the tag dirty.
func (r *RenditionReport) SetLastMSN(v uint64) {
	r.lastMSN.Set(v)
	r.markDirty()
}

// LastPart returns LAST-PART, if present.
func (r *RenditionReport) LastPart() (uint64, bool) {
	v, ok, _ := r.lastPart.Get(decodeUint64)
	return v, ok
}

// SetLastPart overwrites LAST-PART and marks the tag dirty.
func (r *RenditionReport) SetLastPart(v uint64) {
	r.lastPart.Set(v)
	r.markDirty()
}

func (r *RenditionReport) Serialize() []byte {
	return r.serializeWith(func() []byte {
		var b attrBuilder
		b.str("URI", r.uri)
		if v, ok := r.LastMSN(); ok {
			b.uint("LAST-MSN", v)
		}
		if v, ok := r.LastPart(); ok {
			b.uint("LAST-PART", v)
		}
		return b.build(TagRenditionReport)
	})
}

func newRenditionReport(u UnknownTag) (*RenditionReport, error) {
	pv, err := u.TagValue().AttributeListValue()
	if err != nil {
		return nil, err
	}
	uriRaw, err := requireAttr(TagRenditionReport, pv.Attributes, "URI")
	if err != nil {
		return nil, err
	}
	uri, err := uriRaw.QuotedString()
	if err != nil {
		return nil, err
	}
	return &RenditionReport{
		tagBase:  tagBase{outputLine: u.Original},
		uri:      uri,
		lastMSN:  lazyFromAttrs[uint64](pv.Attributes, "LAST-MSN"),
		lastPart: lazyFromAttrs[uint64](pv.Attributes, "LAST-PART"),
	}, nil
}

// NewRenditionReport builds a fresh EXT-X-RENDITION-REPORT tag, already
// dirty.
func NewRenditionReport(uri string) *RenditionReport {
	return &RenditionReport{tagBase: tagBase{dirty: true}, uri: uri}
}
