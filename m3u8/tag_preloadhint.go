package m3u8

/*
 EXT-X-PRELOAD-HINT: TYPE (required, enumerated: PART or MAP), URI
 (required, quoted), BYTERANGE-START (integer, default 0),
 BYTERANGE-LENGTH (integer, default "to the end of the resource").
*/

// PreloadHintType is EXT-X-PRELOAD-HINT's TYPE attribute.
type PreloadHintType int

const (
	PreloadHintPart PreloadHintType = iota
	PreloadHintMap
)

func (t PreloadHintType) String() string {
	switch t {
	case PreloadHintPart:
		return "PART"
	case PreloadHintMap:
		return "MAP"
	}
	return ""
}

func lookupPreloadHintType(s string) (PreloadHintType, bool) {
	switch s {
	case "PART":
		return PreloadHintPart, true
	case "MAP":
		return PreloadHintMap, true
	}
	return 0, false
}

// PreloadHint is the EXT-X-PRELOAD-HINT tag.
type PreloadHint struct {
	tagBase
	hintType        EnumeratedString[PreloadHintType]
	uri             string
	byterangeStart  LazyAttribute[uint64]
	byterangeLength LazyAttribute[uint64]
}

func (p *PreloadHint) Name() string { return TagPreloadHint }

// Type returns TYPE.
func (p *PreloadHint) Type() EnumeratedString[PreloadHintType] { return p.hintType }

// SetType overwrites TYPE and marks the tag dirty.
func (p *PreloadHint) SetType(t PreloadHintType) {
	p.hintType = KnownEnumeratedString(t)
	p.markDirty()
}

// URI returns URI.
func (p *PreloadHint) URI() string { return p.uri }

// SetURI overwrites URI and marks the tag dirty.
func (p *PreloadHint) SetURI(v string) {
	p.uri = v
	p.markDirty()
}

// ByterangeStart returns BYTERANGE-START, defaulting to 0 when absent.
func (p *PreloadHint) ByterangeStart() uint64 {
	v, ok, _ := p.byterangeStart.Get(decodeUint64)
	if !ok {
		return 0
	}
	return v
}

// SetByterangeStart overwrites BYTERANGE-START and marks the tag dirty.
func (p *PreloadHint) SetByterangeStart(v uint64) {
	p.byterangeStart.Set(v)
	p.markDirty()
}

// ByterangeLength returns BYTERANGE-LENGTH, if present.
func (p *PreloadHint) ByterangeLength() (uint64, bool) {
	v, ok, _ := p.byterangeLength.Get(decodeUint64)
	return v, ok
}

// SetByterangeLength overwrites BYTERANGE-LENGTH and marks the tag dirty.
func (p *PreloadHint) SetByterangeLength(v uint64) {
	p.byterangeLength.Set(v)
	p.markDirty()
}

func (p *PreloadHint) Serialize() []byte {
	return p.serializeWith(func() []byte {
		var b attrBuilder
		typ := ""
		if k, ok := p.hintType.Known(); ok {
			typ = k.String()
		} else if u, ok := p.hintType.Unrecognized(); ok {
			typ = u
		}
		b.raw("TYPE", typ)
		b.str("URI", p.uri)
		if v, ok, _ := p.byterangeStart.Get(decodeUint64); ok {
			b.uint("BYTERANGE-START", v)
		}
		if v, ok := p.ByterangeLength(); ok {
			b.uint("BYTERANGE-LENGTH", v)
		}
		return b.build(TagPreloadHint)
	})
}

func newPreloadHint(u UnknownTag) (*PreloadHint, error) {
	pv, err := u.TagValue().AttributeListValue()
	if err != nil {
		return nil, err
	}
	typeRaw, err := requireAttr(TagPreloadHint, pv.Attributes, "TYPE")
	if err != nil {
		return nil, err
	}
	typeStr, err := typeRaw.UTF8String()
	if err != nil {
		return nil, err
	}
	uriRaw, err := requireAttr(TagPreloadHint, pv.Attributes, "URI")
	if err != nil {
		return nil, err
	}
	uri, err := uriRaw.QuotedString()
	if err != nil {
		return nil, err
	}
	return &PreloadHint{
		tagBase:         tagBase{outputLine: u.Original},
		hintType:        NewEnumeratedString(typeStr, lookupPreloadHintType),
		uri:             uri,
		byterangeStart:  lazyFromAttrs[uint64](pv.Attributes, "BYTERANGE-START"),
		byterangeLength: lazyFromAttrs[uint64](pv.Attributes, "BYTERANGE-LENGTH"),
	}, nil
}

// NewPreloadHint builds a fresh EXT-X-PRELOAD-HINT tag, already dirty.
func NewPreloadHint(t PreloadHintType, uri string) *PreloadHint {
	return &PreloadHint{tagBase: tagBase{dirty: true}, hintType: KnownEnumeratedString(t), uri: uri}
}
