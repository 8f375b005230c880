package m3u8

// EXT-X-I-FRAME-STREAM-INF shares streamInfCommon with EXT-X-STREAM-INF
// (see tag_streaminf.go) and adds its own required URI attribute in place
// of a following URI line.

// IFrameStreamInf is the EXT-X-I-FRAME-STREAM-INF tag.
type IFrameStreamInf struct {
	tagBase
	streamInfCommon
	uri string
}

func (s *IFrameStreamInf) Name() string { return TagIFrameStreamInf }

// URI returns the I-frame playlist's URI.
func (s *IFrameStreamInf) URI() string { return s.uri }

// SetURI overwrites URI and marks the tag dirty.
func (s *IFrameStreamInf) SetURI(v string) {
	s.uri = v
	s.markDirty()
}

func (s *IFrameStreamInf) Serialize() []byte {
	return s.serializeWith(func() []byte {
		var b attrBuilder
		s.streamInfCommon.appendTo(&b)
		b.str("URI", s.uri)
		return b.build(TagIFrameStreamInf)
	})
}

func newIFrameStreamInf(u UnknownTag) (*IFrameStreamInf, error) {
	pv, err := u.TagValue().AttributeListValue()
	if err != nil {
		return nil, err
	}
	common, err := newStreamInfCommon(pv.Attributes)
	if err != nil {
		return nil, err
	}
	uriRaw, err := requireAttr(TagIFrameStreamInf, pv.Attributes, "URI")
	if err != nil {
		return nil, err
	}
	uri, err := uriRaw.QuotedString()
	if err != nil {
		return nil, err
	}
	return &IFrameStreamInf{
		tagBase:         tagBase{outputLine: u.Original},
		streamInfCommon: common,
		uri:             uri,
	}, nil
}

// NewIFrameStreamInf builds a fresh EXT-X-I-FRAME-STREAM-INF tag, already
// dirty.
func NewIFrameStreamInf(bandwidth uint64, uri string) *IFrameStreamInf {
	return &IFrameStreamInf{
		tagBase:         tagBase{dirty: true},
		streamInfCommon: streamInfCommon{bandwidth: bandwidth},
		uri:             uri,
	}
}
