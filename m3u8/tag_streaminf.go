package m3u8

/*
 EXT-X-STREAM-INF / EXT-X-I-FRAME-STREAM-INF share almost their entire
 attribute set: both describe a
 Variant Stream's encoding characteristics, differing only in that
 EXT-X-STREAM-INF's URI is the tag value's OWN next line (the following URI
 line in the playlist, outside this tag's scope per the Non-goal on
 cross-line interpretation) while EXT-X-I-FRAME-STREAM-INF's URI is itself
 an attribute, and EXT-X-STREAM-INF alone carries FRAME-RATE/AUDIO/
 SUBTITLES/CLOSED-CAPTIONS. Both wire REQ-VIDEO-LAYOUT through VideoLayout
 and ALLOWED-CPC through AllowedCpc.
*/

// HdcpLevel is the HDCP-LEVEL attribute shared by both stream-inf tags.
type HdcpLevel int

const (
	HdcpNone HdcpLevel = iota
	HdcpType0
	HdcpType1
)

func (h HdcpLevel) String() string {
	switch h {
	case HdcpNone:
		return "NONE"
	case HdcpType0:
		return "TYPE-0"
	case HdcpType1:
		return "TYPE-1"
	}
	return ""
}

func lookupHdcpLevel(s string) (HdcpLevel, bool) {
	switch s {
	case "NONE":
		return HdcpNone, true
	case "TYPE-0":
		return HdcpType0, true
	case "TYPE-1":
		return HdcpType1, true
	}
	return 0, false
}

// VideoRange is the VIDEO-RANGE attribute shared by both stream-inf tags.
type VideoRange int

const (
	VideoRangeSDR VideoRange = iota
	VideoRangeHLG
	VideoRangePQ
)

func (v VideoRange) String() string {
	switch v {
	case VideoRangeSDR:
		return "SDR"
	case VideoRangeHLG:
		return "HLG"
	case VideoRangePQ:
		return "PQ"
	}
	return ""
}

func lookupVideoRange(s string) (VideoRange, bool) {
	switch s {
	case "SDR":
		return VideoRangeSDR, true
	case "HLG":
		return VideoRangeHLG, true
	case "PQ":
		return VideoRangePQ, true
	}
	return 0, false
}

func decodeAllowedCpc(v AttributeValue) (AllowedCpc, error) {
	s, err := v.QuotedString()
	if err != nil {
		return AllowedCpc{}, err
	}
	return ParseAllowedCpc(s), nil
}

func decodeVideoLayout(v AttributeValue) (VideoLayout, error) {
	s, err := v.QuotedString()
	if err != nil {
		return VideoLayout{}, err
	}
	return ParseVideoLayout(s), nil
}

// streamInfCommon is the field set shared by StreamInf and IFrameStreamInf,
// embedded rather than duplicated in each.
type streamInfCommon struct {
	bandwidth        uint64
	averageBandwidth LazyAttribute[uint64]
	codecs           LazyAttribute[string]
	resolution       LazyAttribute[DecimalResolution]
	hdcpLevel        LazyAttribute[EnumeratedString[HdcpLevel]]
	allowedCpc       LazyAttribute[AllowedCpc]
	videoRange       LazyAttribute[EnumeratedString[VideoRange]]
	videoLayout      LazyAttribute[VideoLayout]
	stableVariantID  LazyAttribute[string]
	video            LazyAttribute[string]
	pathwayID        LazyAttribute[string]
}

func (s *streamInfCommon) Bandwidth() uint64 { return s.bandwidth }

func (s *streamInfCommon) AverageBandwidth() (uint64, bool) {
	v, ok, _ := s.averageBandwidth.Get(decodeUint64)
	return v, ok
}

func (s *streamInfCommon) Codecs() (string, bool) {
	v, ok, _ := s.codecs.Get(decodeQuotedString)
	return v, ok
}

func (s *streamInfCommon) Resolution() (DecimalResolution, bool) {
	v, ok, _ := s.resolution.Get(decodeResolution)
	return v, ok
}

func (s *streamInfCommon) HdcpLevel() (HdcpLevel, bool) {
	v, ok, _ := s.hdcpLevel.Get(func(v AttributeValue) (EnumeratedString[HdcpLevel], error) {
		str, err := v.UTF8String()
		if err != nil {
			return EnumeratedString[HdcpLevel]{}, err
		}
		return NewEnumeratedString(str, lookupHdcpLevel), nil
	})
	if !ok {
		return 0, false
	}
	k, known := v.Known()
	return k, known
}

func (s *streamInfCommon) AllowedCpc() (AllowedCpc, bool) {
	v, ok, _ := s.allowedCpc.Get(decodeAllowedCpc)
	return v, ok
}

func (s *streamInfCommon) VideoRange() VideoRange {
	v, ok, _ := s.videoRange.Get(func(v AttributeValue) (EnumeratedString[VideoRange], error) {
		str, err := v.UTF8String()
		if err != nil {
			return EnumeratedString[VideoRange]{}, err
		}
		return NewEnumeratedString(str, lookupVideoRange), nil
	})
	if !ok {
		return VideoRangeSDR
	}
	if k, known := v.Known(); known {
		return k
	}
	return VideoRangeSDR
}

func (s *streamInfCommon) VideoLayout() (VideoLayout, bool) {
	v, ok, _ := s.videoLayout.Get(decodeVideoLayout)
	return v, ok
}

func (s *streamInfCommon) StableVariantID() (string, bool) {
	v, ok, _ := s.stableVariantID.Get(decodeQuotedString)
	return v, ok
}

func (s *streamInfCommon) Video() (string, bool) {
	v, ok, _ := s.video.Get(decodeQuotedString)
	return v, ok
}

func (s *streamInfCommon) PathwayID() (string, bool) {
	v, ok, _ := s.pathwayID.Get(decodeQuotedString)
	return v, ok
}

func newStreamInfCommon(attrs AttributeList) (streamInfCommon, error) {
	bwRaw, err := requireAttr(TagStreamInf, attrs, "BANDWIDTH")
	if err != nil {
		return streamInfCommon{}, err
	}
	bw, err := bwRaw.Uint64()
	if err != nil {
		return streamInfCommon{}, err
	}
	return streamInfCommon{
		bandwidth:        bw,
		averageBandwidth: lazyFromAttrs[uint64](attrs, "AVERAGE-BANDWIDTH"),
		codecs:           lazyFromAttrs[string](attrs, "CODECS"),
		resolution:       lazyFromAttrs[DecimalResolution](attrs, "RESOLUTION"),
		hdcpLevel:        lazyFromAttrs[EnumeratedString[HdcpLevel]](attrs, "HDCP-LEVEL"),
		allowedCpc:       lazyFromAttrs[AllowedCpc](attrs, "ALLOWED-CPC"),
		videoRange:       lazyFromAttrs[EnumeratedString[VideoRange]](attrs, "VIDEO-RANGE"),
		videoLayout:      lazyFromAttrs[VideoLayout](attrs, "REQ-VIDEO-LAYOUT"),
		stableVariantID:  lazyFromAttrs[string](attrs, "STABLE-VARIANT-ID"),
		video:            lazyFromAttrs[string](attrs, "VIDEO"),
		pathwayID:        lazyFromAttrs[string](attrs, "PATHWAY-ID"),
	}, nil
}

func (s *streamInfCommon) appendTo(b *attrBuilder) {
	b.uint("BANDWIDTH", s.bandwidth)
	if v, ok := s.AverageBandwidth(); ok {
		b.uint("AVERAGE-BANDWIDTH", v)
	}
	if v, ok := s.Codecs(); ok {
		b.str("CODECS", v)
	}
	if v, ok := s.Resolution(); ok {
		b.raw("RESOLUTION", v.String())
	}
	if v, ok := s.HdcpLevel(); ok {
		b.raw("HDCP-LEVEL", v.String())
	}
	if v, ok := s.AllowedCpc(); ok {
		b.str("ALLOWED-CPC", v.String())
	}
	if !s.videoRange.IsNone() {
		b.raw("VIDEO-RANGE", s.VideoRange().String())
	}
	if v, ok := s.VideoLayout(); ok {
		b.str("REQ-VIDEO-LAYOUT", v.String())
	}
	if v, ok := s.StableVariantID(); ok {
		b.str("STABLE-VARIANT-ID", v)
	}
	if v, ok := s.Video(); ok {
		b.str("VIDEO", v)
	}
	if v, ok := s.PathwayID(); ok {
		b.str("PATHWAY-ID", v)
	}
}

// StreamInf is the EXT-X-STREAM-INF tag.
type StreamInf struct {
	tagBase
	streamInfCommon
	frameRate      LazyAttribute[float64]
	audio          LazyAttribute[string]
	subtitles      LazyAttribute[string]
	closedCaptions LazyAttribute[string]
}

func (s *StreamInf) Name() string { return TagStreamInf }

// FrameRate returns FRAME-RATE, if present.
func (s *StreamInf) FrameRate() (float64, bool) {
	v, ok, _ := s.frameRate.Get(decodeFloat64)
	return v, ok
}

// SetFrameRate overwrites FRAME-RATE and marks the tag dirty.
func (s *StreamInf) SetFrameRate(v float64) {
	s.frameRate.Set(v)
	s.markDirty()
}

// Audio returns AUDIO, if present.
func (s *StreamInf) Audio() (string, bool) {
	v, ok, _ := s.audio.Get(decodeQuotedString)
	return v, ok
}

// SetAudio overwrites AUDIO and marks the tag dirty.
func (s *StreamInf) SetAudio(v string) {
	s.audio.Set(v)
	s.markDirty()
}

// Subtitles returns SUBTITLES, if present.
func (s *StreamInf) Subtitles() (string, bool) {
	v, ok, _ := s.subtitles.Get(decodeQuotedString)
	return v, ok
}

// SetSubtitles overwrites SUBTITLES and marks the tag dirty.
func (s *StreamInf) SetSubtitles(v string) {
	s.subtitles.Set(v)
	s.markDirty()
}

// ClosedCaptions returns CLOSED-CAPTIONS's raw form: either a quoted
// GROUP-ID or the unquoted literal "NONE".
func (s *StreamInf) ClosedCaptions() (string, bool) {
	v, ok, _ := s.closedCaptions.Get(func(v AttributeValue) (string, error) {
		if v.Kind == AttrQuoted {
			return v.QuotedString()
		}
		if v.RawString() == "NONE" {
			return "NONE", nil
		}
		return "", &TagValueSyntaxError{Reason: "CLOSED-CAPTIONS must be quoted or NONE"}
	})
	return v, ok
}

// SetClosedCaptions overwrites CLOSED-CAPTIONS with a quoted GROUP-ID and
// marks the tag dirty.
func (s *StreamInf) SetClosedCaptions(groupID string) {
	s.closedCaptions.Set(groupID)
	s.markDirty()
}

// SetClosedCaptionsNone overwrites CLOSED-CAPTIONS with NONE and marks the
// tag dirty.
func (s *StreamInf) SetClosedCaptionsNone() {
	s.closedCaptions.Set("NONE")
	s.markDirty()
}

func (s *StreamInf) Serialize() []byte {
	return s.serializeWith(func() []byte {
		var b attrBuilder
		s.streamInfCommon.appendTo(&b)
		if v, ok := s.FrameRate(); ok {
			b.float("FRAME-RATE", v)
		}
		if v, ok := s.Audio(); ok {
			b.str("AUDIO", v)
		}
		if v, ok := s.Subtitles(); ok {
			b.str("SUBTITLES", v)
		}
		if v, ok := s.ClosedCaptions(); ok {
			if v == "NONE" {
				b.raw("CLOSED-CAPTIONS", "NONE")
			} else {
				b.str("CLOSED-CAPTIONS", v)
			}
		}
		return b.build(TagStreamInf)
	})
}

func newStreamInf(u UnknownTag) (*StreamInf, error) {
	pv, err := u.TagValue().AttributeListValue()
	if err != nil {
		return nil, err
	}
	common, err := newStreamInfCommon(pv.Attributes)
	if err != nil {
		return nil, err
	}
	return &StreamInf{
		tagBase:         tagBase{outputLine: u.Original},
		streamInfCommon: common,
		frameRate:       lazyFromAttrs[float64](pv.Attributes, "FRAME-RATE"),
		audio:           lazyFromAttrs[string](pv.Attributes, "AUDIO"),
		subtitles:       lazyFromAttrs[string](pv.Attributes, "SUBTITLES"),
		closedCaptions:  lazyFromAttrs[string](pv.Attributes, "CLOSED-CAPTIONS"),
	}, nil
}

// NewStreamInf builds a fresh EXT-X-STREAM-INF tag, already dirty. The
// following URI line is outside this package's scope (no cross-line
// interpretation is performed) and is the caller's responsibility to emit.
func NewStreamInf(bandwidth uint64) *StreamInf {
	return &StreamInf{tagBase: tagBase{dirty: true}, streamInfCommon: streamInfCommon{bandwidth: bandwidth}}
}
