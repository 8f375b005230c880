package m3u8

/*
 EXT-X-MAP: URI (required, quoted) and an optional BYTERANGE attribute
 whose value is itself a quoted "<length>[@<offset>]" string, parsed
 lazily only when the caller asks for it.
*/

// MapByterange is EXT-X-MAP's nested BYTERANGE attribute value.
type MapByterange struct {
	Length uint64
	Offset *uint64
}

func (r MapByterange) String() string {
	s := uitoa(r.Length)
	if r.Offset != nil {
		s += "@" + uitoa(*r.Offset)
	}
	return s
}

func decodeMapByterange(v AttributeValue) (MapByterange, error) {
	s, err := v.QuotedString()
	if err != nil {
		return MapByterange{}, err
	}
	pv, err := NewTagValue([]byte(s)).DecimalIntegerRange()
	if err != nil {
		return MapByterange{}, err
	}
	return MapByterange{Length: pv.RangeLength, Offset: pv.RangeOffset}, nil
}

// Map is the EXT-X-MAP tag.
type Map struct {
	tagBase
	uri       string
	byterange LazyAttribute[MapByterange]
}

func (m *Map) Name() string { return TagMap }

// URI returns the Media Initialization Section's URI.
func (m *Map) URI() string { return m.uri }

// SetURI overwrites URI and marks the tag dirty.
func (m *Map) SetURI(v string) {
	m.uri = v
	m.markDirty()
}

// Byterange returns the nested byte range, decoding it lazily if it was
// only seen, not yet overwritten.
func (m *Map) Byterange() (MapByterange, bool) {
	v, ok, _ := m.byterange.Get(decodeMapByterange)
	return v, ok
}

// SetByterange overwrites BYTERANGE and marks the tag dirty.
func (m *Map) SetByterange(r MapByterange) {
	m.byterange.Set(r)
	m.markDirty()
}

// UnsetByterange clears BYTERANGE and marks the tag dirty.
func (m *Map) UnsetByterange() {
	m.byterange.Unset()
	m.markDirty()
}

func (m *Map) Serialize() []byte {
	return m.serializeWith(func() []byte {
		var b attrBuilder
		b.str("URI", m.uri)
		if r, ok := m.Byterange(); ok {
			b.str("BYTERANGE", r.String())
		}
		return b.build(TagMap)
	})
}

func newMap(u UnknownTag) (*Map, error) {
	pv, err := u.TagValue().AttributeListValue()
	if err != nil {
		return nil, err
	}
	uriRaw, err := requireAttr(TagMap, pv.Attributes, "URI")
	if err != nil {
		return nil, err
	}
	uri, err := uriRaw.QuotedString()
	if err != nil {
		return nil, err
	}
	return &Map{
		tagBase:   tagBase{outputLine: u.Original},
		uri:       uri,
		byterange: lazyFromAttrs[MapByterange](pv.Attributes, "BYTERANGE"),
	}, nil
}

// NewMap builds a fresh EXT-X-MAP tag, already dirty.
func NewMap(uri string) *Map {
	return &Map{tagBase: tagBase{dirty: true}, uri: uri}
}
