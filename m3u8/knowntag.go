package m3u8

/*
 This file defines the Tag contract every known-tag wrapper implements, the
 registry of the 32 built-in HLS tag constructors, and the
 promotion step the line classifier uses to turn an UnknownTag into a
 KnownTag when its name is enabled in ParsingOptions.
*/

// Tag is the common contract satisfied by every typed-tag wrapper:
// a name for re-synthesis, the current serialized bytes (borrowed
// from the input when clean, re-synthesized when dirty), and whether it
// has been mutated since parsing.
type Tag interface {
	Name() string
	Serialize() []byte
	IsDirty() bool
}

// The constants below name the 32 HLS tags this package knows how to parse,
// in the catalog order of SPEC_FULL.md §5. The name is the bytes after
// "#EXT" and before ':' or end-of-line — "M3U" has no "-X-" prefix, all
// others do.
const (
	TagM3U                  = "M3U"
	TagVersion              = "-X-VERSION"
	TagIndependentSegments  = "-X-INDEPENDENT-SEGMENTS"
	TagStart                = "-X-START"
	TagDefine               = "-X-DEFINE"
	TagTargetDuration       = "-X-TARGETDURATION"
	TagMediaSequence        = "-X-MEDIA-SEQUENCE"
	TagDiscontinuitySeq     = "-X-DISCONTINUITY-SEQUENCE"
	TagEndList              = "-X-ENDLIST"
	TagPlaylistType         = "-X-PLAYLIST-TYPE"
	TagIFramesOnly          = "-X-I-FRAMES-ONLY"
	TagPartInf              = "-X-PART-INF"
	TagServerControl        = "-X-SERVER-CONTROL"
	TagInf                  = "INF"
	TagByterange            = "-X-BYTERANGE"
	TagDiscontinuity        = "-X-DISCONTINUITY"
	TagKey                  = "-X-KEY"
	TagMap                  = "-X-MAP"
	TagProgramDateTime      = "-X-PROGRAM-DATE-TIME"
	TagGap                  = "-X-GAP"
	TagBitrate              = "-X-BITRATE"
	TagPart                 = "-X-PART"
	TagDaterange            = "-X-DATERANGE"
	TagMedia                = "-X-MEDIA"
	TagStreamInf            = "-X-STREAM-INF"
	TagIFrameStreamInf      = "-X-I-FRAME-STREAM-INF"
	TagSessionData          = "-X-SESSION-DATA"
	TagSessionKey           = "-X-SESSION-KEY"
	TagContentSteering      = "-X-CONTENT-STEERING"
	TagSkip                 = "-X-SKIP"
	TagPreloadHint          = "-X-PRELOAD-HINT"
	TagRenditionReport      = "-X-RENDITION-REPORT"
)

// AllTagNames returns the 32 built-in tag names, in catalog order.
func AllTagNames() []string {
	return append([]string(nil), allTagNamesOrdered...)
}

var allTagNamesOrdered = []string{
	TagM3U, TagVersion, TagIndependentSegments, TagStart, TagDefine,
	TagTargetDuration, TagMediaSequence, TagDiscontinuitySeq, TagEndList,
	TagPlaylistType, TagIFramesOnly, TagPartInf, TagServerControl,
	TagInf, TagByterange, TagDiscontinuity, TagKey, TagMap,
	TagProgramDateTime, TagGap, TagBitrate, TagPart, TagDaterange,
	TagMedia, TagStreamInf, TagIFrameStreamInf, TagSessionData,
	TagSessionKey, TagContentSteering, TagSkip, TagPreloadHint,
	TagRenditionReport,
}

type tagConstructor func(UnknownTag) (Tag, error)

var builtinTagConstructors = map[string]tagConstructor{
	TagM3U:                 func(u UnknownTag) (Tag, error) { return newM3U(u) },
	TagVersion:             func(u UnknownTag) (Tag, error) { return newVersion(u) },
	TagIndependentSegments: func(u UnknownTag) (Tag, error) { return newIndependentSegments(u) },
	TagStart:               func(u UnknownTag) (Tag, error) { return newStart(u) },
	TagDefine:              func(u UnknownTag) (Tag, error) { return newDefine(u) },
	TagTargetDuration:      func(u UnknownTag) (Tag, error) { return newTargetDuration(u) },
	TagMediaSequence:       func(u UnknownTag) (Tag, error) { return newMediaSequence(u) },
	TagDiscontinuitySeq:    func(u UnknownTag) (Tag, error) { return newDiscontinuitySequence(u) },
	TagEndList:             func(u UnknownTag) (Tag, error) { return newEndList(u) },
	TagPlaylistType:        func(u UnknownTag) (Tag, error) { return newPlaylistType(u) },
	TagIFramesOnly:         func(u UnknownTag) (Tag, error) { return newIFramesOnly(u) },
	TagPartInf:             func(u UnknownTag) (Tag, error) { return newPartInf(u) },
	TagServerControl:       func(u UnknownTag) (Tag, error) { return newServerControl(u) },
	TagInf:                 func(u UnknownTag) (Tag, error) { return newInf(u) },
	TagByterange:           func(u UnknownTag) (Tag, error) { return newByterange(u) },
	TagDiscontinuity:       func(u UnknownTag) (Tag, error) { return newDiscontinuity(u) },
	TagKey:                 func(u UnknownTag) (Tag, error) { return newKey(u) },
	TagMap:                 func(u UnknownTag) (Tag, error) { return newMap(u) },
	TagProgramDateTime:     func(u UnknownTag) (Tag, error) { return newProgramDateTime(u) },
	TagGap:                 func(u UnknownTag) (Tag, error) { return newGap(u) },
	TagBitrate:             func(u UnknownTag) (Tag, error) { return newBitrate(u) },
	TagPart:                func(u UnknownTag) (Tag, error) { return newPart(u) },
	TagDaterange:           func(u UnknownTag) (Tag, error) { return newDaterange(u) },
	TagMedia:               func(u UnknownTag) (Tag, error) { return newMedia(u) },
	TagStreamInf:           func(u UnknownTag) (Tag, error) { return newStreamInf(u) },
	TagIFrameStreamInf:     func(u UnknownTag) (Tag, error) { return newIFrameStreamInf(u) },
	TagSessionData:         func(u UnknownTag) (Tag, error) { return newSessionData(u) },
	TagSessionKey:          func(u UnknownTag) (Tag, error) { return newSessionKey(u) },
	TagContentSteering:     func(u UnknownTag) (Tag, error) { return newContentSteering(u) },
	TagSkip:                func(u UnknownTag) (Tag, error) { return newSkip(u) },
	TagPreloadHint:         func(u UnknownTag) (Tag, error) { return newPreloadHint(u) },
	TagRenditionReport:     func(u UnknownTag) (Tag, error) { return newRenditionReport(u) },
}

// ParsingOptions carries the set of tag names the parser should promote
// from UnknownTag to a typed Tag. The zero value enables
// nothing; use DefaultParsingOptions for "all 32 built-in tags enabled".
type ParsingOptions struct {
	enabled map[string]bool
	customs []CustomTagFactory
}

// DefaultParsingOptions returns options with all 32 built-in HLS tags
// enabled and no custom tag factories.
func DefaultParsingOptions() *ParsingOptions {
	o := &ParsingOptions{enabled: make(map[string]bool, len(allTagNamesOrdered))}
	for _, n := range allTagNamesOrdered {
		o.enabled[n] = true
	}
	return o
}

// NewParsingOptions returns options with no tags enabled, for a caller
// that wants to opt in selectively.
func NewParsingOptions() *ParsingOptions {
	return &ParsingOptions{enabled: make(map[string]bool)}
}

func (o *ParsingOptions) withTag(name string, enable bool) *ParsingOptions {
	o.enabled[name] = enable
	return o
}

// WithParsingFor enables promotion of the named built-in tag.
func (o *ParsingOptions) WithParsingFor(name string) *ParsingOptions { return o.withTag(name, true) }

// WithoutParsingFor disables promotion of the named built-in tag; a line
// with this name will surface as an UnknownTag instead.
func (o *ParsingOptions) WithoutParsingFor(name string) *ParsingOptions {
	return o.withTag(name, false)
}

// WithCustomTag registers an additional tag factory, consulted after the
// 32 built-in names fail to match.
func (o *ParsingOptions) WithCustomTag(f CustomTagFactory) *ParsingOptions {
	o.customs = append(o.customs, f)
	return o
}

// IsEnabled reports whether name is enabled for promotion.
func (o *ParsingOptions) IsEnabled(name string) bool {
	return o != nil && o.enabled[name]
}

// promote attempts to turn u into a KnownTag: first the built-in
// catalog (if enabled), then any registered
// custom-tag factory whose IsKnownName matches. A decoding failure from
// either source is surfaced, not swallowed — the unknown-tag record is not
// silently retained on error.
func promote(u UnknownTag, opts *ParsingOptions) (Tag, bool, error) {
	if opts == nil {
		return nil, false, nil
	}
	if opts.enabled[u.Name] {
		if ctor, ok := builtinTagConstructors[u.Name]; ok {
			tag, err := ctor(u)
			if err != nil {
				return nil, true, err
			}
			return tag, true, nil
		}
	}
	for _, f := range opts.customs {
		if f.IsKnownName(u.Name) {
			ct, err := f.TryFrom(u)
			if err != nil {
				return nil, true, err
			}
			return customTagAdapter{inner: ct}, true, nil
		}
	}
	return nil, false, nil
}
