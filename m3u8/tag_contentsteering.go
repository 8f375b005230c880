package m3u8

// EXT-X-CONTENT-STEERING: SERVER-URI (required, quoted), PATHWAY-ID
// (optional, quoted).

// ContentSteering is the EXT-X-CONTENT-STEERING tag.
type ContentSteering struct {
	tagBase
	serverURI string
	pathwayID LazyAttribute[string]
}

func (c *ContentSteering) Name() string { return TagContentSteering }

// ServerURI returns SERVER-URI.
func (c *ContentSteering) ServerURI() string { return c.serverURI }

// SetServerURI overwrites SERVER-URI and marks the tag dirty.
func (c *ContentSteering) SetServerURI(v string) {
	c.serverURI = v
	c.markDirty()
}

// PathwayID returns PATHWAY-ID, if present.
func (c *ContentSteering) PathwayID() (string, bool) {
	v, ok, _ := c.pathwayID.Get(decodeQuotedString)
	return v, ok
}

// SetPathwayID overwrites PATHWAY-ID and marks the tag dirty.
func (c *ContentSteering) SetPathwayID(v string) {
	c.pathwayID.Set(v)
	c.markDirty()
}

func (c *ContentSteering) Serialize() []byte {
	return c.serializeWith(func() []byte {
		var b attrBuilder
		b.str("SERVER-URI", c.serverURI)
		if v, ok := c.PathwayID(); ok {
			b.str("PATHWAY-ID", v)
		}
		return b.build(TagContentSteering)
	})
}

func newContentSteering(u UnknownTag) (*ContentSteering, error) {
	pv, err := u.TagValue().AttributeListValue()
	if err != nil {
		return nil, err
	}
	raw, err := requireAttr(TagContentSteering, pv.Attributes, "SERVER-URI")
	if err != nil {
		return nil, err
	}
	uri, err := raw.QuotedString()
	if err != nil {
		return nil, err
	}
	return &ContentSteering{
		tagBase:   tagBase{outputLine: u.Original},
		serverURI: uri,
		pathwayID: lazyFromAttrs[string](pv.Attributes, "PATHWAY-ID"),
	}, nil
}

// NewContentSteering builds a fresh EXT-X-CONTENT-STEERING tag, already
// dirty.
func NewContentSteering(serverURI string) *ContentSteering {
	return &ContentSteering{tagBase: tagBase{dirty: true}, serverURI: serverURI}
}
