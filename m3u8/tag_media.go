package m3u8

/*
 EXT-X-MEDIA: TYPE (required, enumerated: AUDIO/VIDEO/SUBTITLES/
 CLOSED-CAPTIONS), URI (quoted, forbidden when TYPE=CLOSED-CAPTIONS — left
 to the caller), GROUP-ID (required, quoted), LANGUAGE/ASSOC-LANGUAGE
 (optional, quoted), NAME (required, quoted), DEFAULT/AUTOSELECT/FORCED
 (YES/NO, default NO), INSTREAM-ID (quoted, required iff
 TYPE=CLOSED-CAPTIONS), CHARACTERISTICS (quoted, comma-separated),
 CHANNELS (quoted, slash-separated parameters).
*/

// MediaType is EXT-X-MEDIA's TYPE attribute.
type MediaType int

const (
	MediaAudio MediaType = iota
	MediaVideo
	MediaSubtitles
	MediaClosedCaptions
)

func (t MediaType) String() string {
	switch t {
	case MediaAudio:
		return "AUDIO"
	case MediaVideo:
		return "VIDEO"
	case MediaSubtitles:
		return "SUBTITLES"
	case MediaClosedCaptions:
		return "CLOSED-CAPTIONS"
	}
	return ""
}

func lookupMediaType(s string) (MediaType, bool) {
	switch s {
	case "AUDIO":
		return MediaAudio, true
	case "VIDEO":
		return MediaVideo, true
	case "SUBTITLES":
		return MediaSubtitles, true
	case "CLOSED-CAPTIONS":
		return MediaClosedCaptions, true
	}
	return 0, false
}

// Media is the EXT-X-MEDIA tag.
type Media struct {
	tagBase
	mediaType       EnumeratedString[MediaType]
	uri             LazyAttribute[string]
	groupID         string
	language        LazyAttribute[string]
	assocLanguage   LazyAttribute[string]
	name            string
	isDefault       LazyAttribute[bool]
	autoselect      LazyAttribute[bool]
	forced          LazyAttribute[bool]
	instreamID        LazyAttribute[string]
	characteristics   LazyAttribute[string]
	channels          LazyAttribute[string]
	stableRenditionID LazyAttribute[string]
	bitDepth          LazyAttribute[uint64]
	sampleRate        LazyAttribute[uint64]
}

func (m *Media) Name() string { return TagMedia }

// Type returns TYPE.
func (m *Media) Type() EnumeratedString[MediaType] { return m.mediaType }

// SetType overwrites TYPE and marks the tag dirty.
func (m *Media) SetType(t MediaType) {
	m.mediaType = KnownEnumeratedString(t)
	m.markDirty()
}

// URI returns URI, if present.
func (m *Media) URI() (string, bool) {
	v, ok, _ := m.uri.Get(decodeQuotedString)
	return v, ok
}

// SetURI overwrites URI and marks the tag dirty.
func (m *Media) SetURI(v string) {
	m.uri.Set(v)
	m.markDirty()
}

// GroupID returns GROUP-ID.
func (m *Media) GroupID() string { return m.groupID }

// SetGroupID overwrites GROUP-ID and marks the tag dirty.
func (m *Media) SetGroupID(v string) {
	m.groupID = v
	m.markDirty()
}

// Language returns LANGUAGE, if present.
func (m *Media) Language() (string, bool) {
	v, ok, _ := m.language.Get(decodeQuotedString)
	return v, ok
}

// SetLanguage overwrites LANGUAGE and marks the tag dirty.
func (m *Media) SetLanguage(v string) {
	m.language.Set(v)
	m.markDirty()
}

// AssocLanguage returns ASSOC-LANGUAGE, if present.
func (m *Media) AssocLanguage() (string, bool) {
	v, ok, _ := m.assocLanguage.Get(decodeQuotedString)
	return v, ok
}

// SetAssocLanguage overwrites ASSOC-LANGUAGE and marks the tag dirty.
func (m *Media) SetAssocLanguage(v string) {
	m.assocLanguage.Set(v)
	m.markDirty()
}

// MediaName returns NAME. (Name() already returns the tag's own identity
// per the Tag interface, so the NAME attribute is exposed under this name
// instead.)
func (m *Media) MediaName() string { return m.name }

// SetMediaName overwrites NAME and marks the tag dirty.
func (m *Media) SetMediaName(v string) {
	m.name = v
	m.markDirty()
}

// Default reports DEFAULT, defaulting to false.
func (m *Media) Default() bool { return getFlag(m.isDefault) }

// SetDefault overwrites DEFAULT and marks the tag dirty.
func (m *Media) SetDefault(v bool) {
	if v {
		m.isDefault.Set(true)
	} else {
		m.isDefault.Unset()
	}
	m.markDirty()
}

// Autoselect reports AUTOSELECT, defaulting to false.
func (m *Media) Autoselect() bool { return getFlag(m.autoselect) }

// SetAutoselect overwrites AUTOSELECT and marks the tag dirty.
func (m *Media) SetAutoselect(v bool) {
	if v {
		m.autoselect.Set(true)
	} else {
		m.autoselect.Unset()
	}
	m.markDirty()
}

// Forced reports FORCED, defaulting to false.
func (m *Media) Forced() bool { return getFlag(m.forced) }

// SetForced overwrites FORCED and marks the tag dirty.
func (m *Media) SetForced(v bool) {
	if v {
		m.forced.Set(true)
	} else {
		m.forced.Unset()
	}
	m.markDirty()
}

// InstreamID returns INSTREAM-ID, if present.
func (m *Media) InstreamID() (string, bool) {
	v, ok, _ := m.instreamID.Get(decodeQuotedString)
	return v, ok
}

// SetInstreamID overwrites INSTREAM-ID and marks the tag dirty.
func (m *Media) SetInstreamID(v string) {
	m.instreamID.Set(v)
	m.markDirty()
}

// Characteristics returns CHARACTERISTICS split on ',', or nil if absent.
func (m *Media) Characteristics() []string {
	v, ok, _ := m.characteristics.Get(decodeQuotedString)
	if !ok {
		return nil
	}
	return splitNonEmpty(v, ",")
}

// SetCharacteristics overwrites CHARACTERISTICS (comma-joined) and marks
// the tag dirty.
func (m *Media) SetCharacteristics(v string) {
	m.characteristics.Set(v)
	m.markDirty()
}

// Channels returns CHANNELS, if present.
func (m *Media) Channels() (string, bool) {
	v, ok, _ := m.channels.Get(decodeQuotedString)
	return v, ok
}

// SetChannels overwrites CHANNELS and marks the tag dirty.
func (m *Media) SetChannels(v string) {
	m.channels.Set(v)
	m.markDirty()
}

// StableRenditionID returns STABLE-RENDITION-ID, if present.
func (m *Media) StableRenditionID() (string, bool) {
	v, ok, _ := m.stableRenditionID.Get(decodeQuotedString)
	return v, ok
}

// SetStableRenditionID overwrites STABLE-RENDITION-ID and marks the tag
// dirty.
func (m *Media) SetStableRenditionID(v string) {
	m.stableRenditionID.Set(v)
	m.markDirty()
}

// BitDepth returns BIT-DEPTH, if present.
func (m *Media) BitDepth() (uint64, bool) {
	v, ok, _ := m.bitDepth.Get(decodeUint64)
	return v, ok
}

// SetBitDepth overwrites BIT-DEPTH and marks the tag dirty.
func (m *Media) SetBitDepth(v uint64) {
	m.bitDepth.Set(v)
	m.markDirty()
}

// SampleRate returns SAMPLE-RATE, if present.
func (m *Media) SampleRate() (uint64, bool) {
	v, ok, _ := m.sampleRate.Get(decodeUint64)
	return v, ok
}

// SetSampleRate overwrites SAMPLE-RATE and marks the tag dirty.
func (m *Media) SetSampleRate(v uint64) {
	m.sampleRate.Set(v)
	m.markDirty()
}

func (m *Media) Serialize() []byte {
	return m.serializeWith(func() []byte {
		var b attrBuilder
		typ := ""
		if k, ok := m.mediaType.Known(); ok {
			typ = k.String()
		} else if u, ok := m.mediaType.Unrecognized(); ok {
			typ = u
		}
		b.raw("TYPE", typ)
		if v, ok := m.URI(); ok {
			b.str("URI", v)
		}
		b.str("GROUP-ID", m.groupID)
		if v, ok := m.Language(); ok {
			b.str("LANGUAGE", v)
		}
		if v, ok := m.AssocLanguage(); ok {
			b.str("ASSOC-LANGUAGE", v)
		}
		b.str("NAME", m.name)
		if m.Default() {
			b.raw("DEFAULT", "YES")
		}
		if m.Autoselect() {
			b.raw("AUTOSELECT", "YES")
		}
		if m.Forced() {
			b.raw("FORCED", "YES")
		}
		if v, ok := m.InstreamID(); ok {
			b.str("INSTREAM-ID", v)
		}
		if v, ok, _ := m.characteristics.Get(decodeQuotedString); ok {
			b.str("CHARACTERISTICS", v)
		}
		if v, ok := m.Channels(); ok {
			b.str("CHANNELS", v)
		}
		if v, ok := m.StableRenditionID(); ok {
			b.str("STABLE-RENDITION-ID", v)
		}
		if v, ok := m.BitDepth(); ok {
			b.uint("BIT-DEPTH", v)
		}
		if v, ok := m.SampleRate(); ok {
			b.uint("SAMPLE-RATE", v)
		}
		return b.build(TagMedia)
	})
}

func newMedia(u UnknownTag) (*Media, error) {
	pv, err := u.TagValue().AttributeListValue()
	if err != nil {
		return nil, err
	}
	typeRaw, err := requireAttr(TagMedia, pv.Attributes, "TYPE")
	if err != nil {
		return nil, err
	}
	typeStr, err := typeRaw.UTF8String()
	if err != nil {
		return nil, err
	}
	groupRaw, err := requireAttr(TagMedia, pv.Attributes, "GROUP-ID")
	if err != nil {
		return nil, err
	}
	groupID, err := groupRaw.QuotedString()
	if err != nil {
		return nil, err
	}
	nameRaw, err := requireAttr(TagMedia, pv.Attributes, "NAME")
	if err != nil {
		return nil, err
	}
	name, err := nameRaw.QuotedString()
	if err != nil {
		return nil, err
	}
	return &Media{
		tagBase:         tagBase{outputLine: u.Original},
		mediaType:       NewEnumeratedString(typeStr, lookupMediaType),
		uri:             lazyFromAttrs[string](pv.Attributes, "URI"),
		groupID:         groupID,
		language:        lazyFromAttrs[string](pv.Attributes, "LANGUAGE"),
		assocLanguage:   lazyFromAttrs[string](pv.Attributes, "ASSOC-LANGUAGE"),
		name:            name,
		isDefault:       lazyFromAttrs[bool](pv.Attributes, "DEFAULT"),
		autoselect:      lazyFromAttrs[bool](pv.Attributes, "AUTOSELECT"),
		forced:          lazyFromAttrs[bool](pv.Attributes, "FORCED"),
		instreamID:        lazyFromAttrs[string](pv.Attributes, "INSTREAM-ID"),
		characteristics:   lazyFromAttrs[string](pv.Attributes, "CHARACTERISTICS"),
		channels:          lazyFromAttrs[string](pv.Attributes, "CHANNELS"),
		stableRenditionID: lazyFromAttrs[string](pv.Attributes, "STABLE-RENDITION-ID"),
		bitDepth:          lazyFromAttrs[uint64](pv.Attributes, "BIT-DEPTH"),
		sampleRate:        lazyFromAttrs[uint64](pv.Attributes, "SAMPLE-RATE"),
	}, nil
}

// NewMedia builds a fresh EXT-X-MEDIA tag, already dirty.
func NewMedia(t MediaType, groupID, name string) *Media {
	return &Media{tagBase: tagBase{dirty: true}, mediaType: KnownEnumeratedString(t), groupID: groupID, name: name}
}
