package m3u8

/*
 This file implements the line classifier: given one line's bytes (its
 terminator already stripped by the reader), decide whether it
 is blank, a comment, a URI, or a tag — and for a tag, whether its name is
 enabled for promotion to a typed Tag.
*/

// LineKind discriminates the variant a Line currently holds.
type LineKind int

const (
	LineBlank LineKind = iota
	LineComment
	LineURI
	LineUnknown
	LineKnown
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "Blank"
	case LineComment:
		return "Comment"
	case LineURI:
		return "Uri"
	case LineUnknown:
		return "UnknownTag"
	case LineKnown:
		return "KnownTag"
	}
	return "Unknown"
}

// Line is the tagged union produced for each line of input: exactly one of
// Comment / URI / Unknown / Known is meaningful, selected by Kind.
type Line struct {
	Kind    LineKind
	Comment []byte
	URI     []byte
	Unknown *UnknownTag
	Known   Tag
}

// ClassifyLine decodes a single line's bytes (terminator already stripped)
// into a Line. opts may be nil, in which case every tag surfaces as
// LineUnknown.
func ClassifyLine(line []byte, opts *ParsingOptions) (Line, error) {
	if len(line) == 0 {
		return Line{Kind: LineBlank}, nil
	}
	if line[0] != '#' {
		for _, c := range line {
			if c == '\r' || c == '\n' {
				return Line{}, &GenericSyntaxError{Reason: "unexpected line terminator inside URI"}
			}
		}
		return Line{Kind: LineURI, URI: line}, nil
	}
	if len(line) >= 4 && line[1] == 'E' && line[2] == 'X' && line[3] == 'T' {
		return classifyTag(line, opts)
	}
	return Line{Kind: LineComment, Comment: line[1:]}, nil
}

func classifyTag(line []byte, opts *ParsingOptions) (Line, error) {
	rest := line[4:]
	colon := -1
	for i, c := range rest {
		if c == ':' {
			colon = i
			break
		}
	}
	var name string
	var value []byte
	hasValue := false
	if colon < 0 {
		name = string(rest)
		if name == "" {
			return Line{}, &UnknownTagSyntaxError{Reason: "unexpected no tag name"}
		}
	} else {
		name = string(rest[:colon])
		if name == "" {
			return Line{}, &UnknownTagSyntaxError{Reason: "unexpected no tag name"}
		}
		value = rest[colon+1:]
		hasValue = true
	}

	u := UnknownTag{Name: name, Value: value, HasValue: hasValue, Original: line}

	tag, handled, err := promote(u, opts)
	if err != nil {
		return Line{}, err
	}
	if handled {
		return Line{Kind: LineKnown, Known: tag}, nil
	}
	return Line{Kind: LineUnknown, Unknown: &u}, nil
}

// Bytes returns the serialized form of whatever this Line currently holds,
// suitable for the writer to append a line terminator to. Blank lines
// serialize to an empty slice.
func (l Line) Bytes() []byte {
	switch l.Kind {
	case LineBlank:
		return nil
	case LineComment:
		return append([]byte{'#'}, l.Comment...)
	case LineURI:
		return l.URI
	case LineUnknown:
		return l.Unknown.Original
	case LineKnown:
		return l.Known.Serialize()
	}
	return nil
}
