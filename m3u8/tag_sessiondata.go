package m3u8

/*
 EXT-X-SESSION-DATA: DATA-ID (required, quoted), VALUE (quoted, mutually
 exclusive with URI), URI (quoted, mutually exclusive with VALUE), FORMAT
 (enumerated JSON/RAW, default JSON), LANGUAGE (optional, quoted, RFC
 5646). Cross-attribute mutual exclusion is a validation concern this
 package leaves to the caller, per the Non-goal on cross-tag validation.
*/

// SessionDataFormat is EXT-X-SESSION-DATA's FORMAT attribute.
type SessionDataFormat int

const (
	SessionDataJSON SessionDataFormat = iota
	SessionDataRaw
)

func (f SessionDataFormat) String() string {
	switch f {
	case SessionDataJSON:
		return "JSON"
	case SessionDataRaw:
		return "RAW"
	}
	return ""
}

func lookupSessionDataFormat(s string) (SessionDataFormat, bool) {
	switch s {
	case "JSON":
		return SessionDataJSON, true
	case "RAW":
		return SessionDataRaw, true
	}
	return 0, false
}

// SessionData is the EXT-X-SESSION-DATA tag.
type SessionData struct {
	tagBase
	dataID   string
	value    LazyAttribute[string]
	uri      LazyAttribute[string]
	format   LazyAttribute[EnumeratedString[SessionDataFormat]]
	language LazyAttribute[string]
}

func (s *SessionData) Name() string { return TagSessionData }

// DataID returns DATA-ID.
func (s *SessionData) DataID() string { return s.dataID }

// SetDataID overwrites DATA-ID and marks the tag dirty.
func (s *SessionData) SetDataID(v string) {
	s.dataID = v
	s.markDirty()
}

// Value returns VALUE, if present.
func (s *SessionData) Value() (string, bool) {
	v, ok, _ := s.value.Get(decodeQuotedString)
	return v, ok
}

// SetValue overwrites VALUE and marks the tag dirty.
func (s *SessionData) SetValue(v string) {
	s.value.Set(v)
	s.markDirty()
}

// URI returns URI, if present.
func (s *SessionData) URI() (string, bool) {
	v, ok, _ := s.uri.Get(decodeQuotedString)
	return v, ok
}

// SetURI overwrites URI and marks the tag dirty.
func (s *SessionData) SetURI(v string) {
	s.uri.Set(v)
	s.markDirty()
}

// Format returns FORMAT, defaulting to SessionDataJSON when absent.
func (s *SessionData) Format() SessionDataFormat {
	v, ok, _ := s.format.Get(func(v AttributeValue) (EnumeratedString[SessionDataFormat], error) {
		str, err := v.UTF8String()
		if err != nil {
			return EnumeratedString[SessionDataFormat]{}, err
		}
		return NewEnumeratedString(str, lookupSessionDataFormat), nil
	})
	if !ok {
		return SessionDataJSON
	}
	if k, known := v.Known(); known {
		return k
	}
	return SessionDataJSON
}

// SetFormat overwrites FORMAT and marks the tag dirty.
func (s *SessionData) SetFormat(f SessionDataFormat) {
	s.format.Set(KnownEnumeratedString(f))
	s.markDirty()
}

// Language returns LANGUAGE, if present.
func (s *SessionData) Language() (string, bool) {
	v, ok, _ := s.language.Get(decodeQuotedString)
	return v, ok
}

// SetLanguage overwrites LANGUAGE and marks the tag dirty.
func (s *SessionData) SetLanguage(v string) {
	s.language.Set(v)
	s.markDirty()
}

func (s *SessionData) Serialize() []byte {
	return s.serializeWith(func() []byte {
		var b attrBuilder
		b.str("DATA-ID", s.dataID)
		if v, ok := s.Value(); ok {
			b.str("VALUE", v)
		}
		if v, ok := s.URI(); ok {
			b.str("URI", v)
		}
		if !s.format.IsNone() {
			b.raw("FORMAT", s.Format().String())
		}
		if v, ok := s.Language(); ok {
			b.str("LANGUAGE", v)
		}
		return b.build(TagSessionData)
	})
}

func newSessionData(u UnknownTag) (*SessionData, error) {
	pv, err := u.TagValue().AttributeListValue()
	if err != nil {
		return nil, err
	}
	raw, err := requireAttr(TagSessionData, pv.Attributes, "DATA-ID")
	if err != nil {
		return nil, err
	}
	id, err := raw.QuotedString()
	if err != nil {
		return nil, err
	}
	return &SessionData{
		tagBase:  tagBase{outputLine: u.Original},
		dataID:   id,
		value:    lazyFromAttrs[string](pv.Attributes, "VALUE"),
		uri:      lazyFromAttrs[string](pv.Attributes, "URI"),
		format:   lazyFromAttrs[EnumeratedString[SessionDataFormat]](pv.Attributes, "FORMAT"),
		language: lazyFromAttrs[string](pv.Attributes, "LANGUAGE"),
	}, nil
}

// NewSessionData builds a fresh EXT-X-SESSION-DATA tag, already dirty.
func NewSessionData(dataID string) *SessionData {
	return &SessionData{tagBase: tagBase{dirty: true}, dataID: dataID}
}
