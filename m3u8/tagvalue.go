package m3u8

/*
 This file implements the tag-value micro-parser: the bytes
 after "#EXT<name>:" converted into one of six semantic shapes. TagValue is
 a thin newtype over the raw bytes; the converters are independent and a
 caller picks the one matching the expected shape for a given tag name.
*/

// ValueKind names the shape a ParsedTagValue was decoded into, or that a
// ValidationError found where a different shape was expected.
type ValueKind int

const (
	ValueEmpty ValueKind = iota
	ValueInteger
	ValueIntegerRange
	ValueFloatWithTitle
	ValueDateTime
	ValueAttributeList
)

func (k ValueKind) String() string {
	switch k {
	case ValueEmpty:
		return "Empty"
	case ValueInteger:
		return "DecimalInteger"
	case ValueIntegerRange:
		return "DecimalIntegerRange"
	case ValueFloatWithTitle:
		return "DecimalFloatingPointWithOptionalTitle"
	case ValueDateTime:
		return "DateTime"
	case ValueAttributeList:
		return "AttributeList"
	}
	return "Unknown"
}

// ParsedTagValue is the discriminated decode of a tag's raw value bytes.
// Only the fields matching Kind are meaningful.
type ParsedTagValue struct {
	Kind        ValueKind
	Integer     uint64
	RangeLength uint64
	RangeOffset *uint64
	Float       float64
	Title       string
	DateTime    DateTime
	Attributes  AttributeList
}

// TagValue is a newtype over the raw value bytes of a tag, offering
// fallible converters to each of the six ParsedTagValue shapes. Converters
// are independent of each other; nothing here commits to a shape until a
// caller asks for one.
type TagValue struct {
	b []byte
}

// NewTagValue wraps raw value bytes (the bytes after "#EXT<name>:", or nil
// if the tag had no colon at all).
func NewTagValue(b []byte) TagValue { return TagValue{b: b} }

// Bytes returns the raw, unconverted value bytes.
func (t TagValue) Bytes() []byte { return t.b }

// IsEmpty reports whether the value is zero-length. DecimalInteger rejects
// such a value with an error; it never yields ParsedTagValue{Kind:
// ValueEmpty}.
func (t TagValue) IsEmpty() bool { return len(t.b) == 0 }

// DecimalInteger parses the whole value as an unsigned decimal integer.
func (t TagValue) DecimalInteger() (ParsedTagValue, error) {
	n, err := parseU64(t.b)
	if err != nil {
		return ParsedTagValue{}, err
	}
	return ParsedTagValue{Kind: ValueInteger, Integer: n}, nil
}

// DecimalIntegerRange parses "<length>[@<offset>]". Both sides must be
// present and valid when '@' appears; offset is nil when it does not.
func (t TagValue) DecimalIntegerRange() (ParsedTagValue, error) {
	at := -1
	for i, c := range t.b {
		if c == '@' {
			at = i
			break
		}
	}
	if at < 0 {
		length, err := parseU64(t.b)
		if err != nil {
			return ParsedTagValue{}, err
		}
		return ParsedTagValue{Kind: ValueIntegerRange, RangeLength: length}, nil
	}
	length, err := parseU64(t.b[:at])
	if err != nil {
		return ParsedTagValue{}, err
	}
	offset, err := parseU64(t.b[at+1:])
	if err != nil {
		return ParsedTagValue{}, err
	}
	return ParsedTagValue{Kind: ValueIntegerRange, RangeLength: length, RangeOffset: &offset}, nil
}

// DecimalFloatingPointWithOptionalTitle parses "<n>[,<title>]": everything
// up to the first comma is the float, everything after is the title
// (which may be empty or contain arbitrary bytes up to line-end). Absent a
// comma, the whole input is the float and the title is empty.
func (t TagValue) DecimalFloatingPointWithOptionalTitle() (ParsedTagValue, error) {
	comma := -1
	for i, c := range t.b {
		if c == ',' {
			comma = i
			break
		}
	}
	if comma < 0 {
		f, err := parseFloat(t.b)
		if err != nil {
			return ParsedTagValue{}, err
		}
		return ParsedTagValue{Kind: ValueFloatWithTitle, Float: f}, nil
	}
	f, err := parseFloat(t.b[:comma])
	if err != nil {
		return ParsedTagValue{}, err
	}
	return ParsedTagValue{Kind: ValueFloatWithTitle, Float: f, Title: string(t.b[comma+1:])}, nil
}

// PlaylistType byte-compares the value against "VOD" or "EVENT".
func (t TagValue) PlaylistType() (HlsPlaylistType, error) {
	switch string(t.b) {
	case "VOD":
		return PlaylistVOD, nil
	case "EVENT":
		return PlaylistEvent, nil
	}
	return 0, &TagValueSyntaxError{Reason: "playlist type must be VOD or EVENT"}
}

// DateTimeValue delegates to the §4.1 date-time parser.
func (t TagValue) DateTimeValue() (ParsedTagValue, error) {
	r, err := parseDateTime(t.b)
	if err != nil {
		return ParsedTagValue{}, err
	}
	return ParsedTagValue{Kind: ValueDateTime, DateTime: r.Parsed}, nil
}

// AttributeListValue runs the §4.3 state machine over the value bytes.
func (t TagValue) AttributeListValue() (ParsedTagValue, error) {
	attrs, err := parseAttributeList(t.b)
	if err != nil {
		return ParsedTagValue{}, err
	}
	return ParsedTagValue{Kind: ValueAttributeList, Attributes: attrs}, nil
}

// HlsPlaylistType is EXT-X-PLAYLIST-TYPE's value: EVENT or VOD.
type HlsPlaylistType int

const (
	PlaylistEvent HlsPlaylistType = iota + 1
	PlaylistVOD
)

func (t HlsPlaylistType) String() string {
	switch t {
	case PlaylistEvent:
		return "EVENT"
	case PlaylistVOD:
		return "VOD"
	}
	return ""
}
