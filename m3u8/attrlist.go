package m3u8

/*
 This file implements the attribute-list tokenizer: a hand-written
 character-by-character state machine rather than a regular expression,
 so that empty unquoted values, stray quotes, and end-of-input
 in each state are rejected with a specific error kind instead of silently
 matching or not matching.
*/

type attrListState int

const (
	stateReadingName attrListState = iota
	stateReadingValue
	stateReadingQuotedValue
	stateFinishedReadingQuotedValue
)

// NamedAttribute is one (name, value) pair from an attribute list, in
// source order.
type NamedAttribute struct {
	Name  string
	Value AttributeValue
}

// AttributeList is the ordered collection produced by the tokenizer: it
// preserves first-seen order and keeps duplicates, which a caller can then
// collect into an unordered map (last-write-wins) via ToMap.
type AttributeList []NamedAttribute

// ToMap collects the list into an unordered map, where the last occurrence
// of a duplicate name wins.
func (l AttributeList) ToMap() map[string]AttributeValue {
	m := make(map[string]AttributeValue, len(l))
	for _, a := range l {
		m[a.Name] = a.Value
	}
	return m
}

// Get returns the last-occurring value for name, matching ToMap's
// last-write-wins semantics without allocating the whole map.
func (l AttributeList) Get(name string) (AttributeValue, bool) {
	var v AttributeValue
	found := false
	for _, a := range l {
		if a.Name == name {
			v = a.Value
			found = true
		}
	}
	return v, found
}

func listErr(kind AttributeListErrorKind) error {
	return &TagValueSyntaxError{IsList: true, ListKind: kind}
}

// parseAttributeList tokenizes a comma-separated "KEY=VALUE" list where
// values are quoted or unquoted. Only two exit points terminate
// successfully: the unquoted-value accumulation
// reaching end-of-input, and FinishedReadingQuotedValue reaching
// end-of-input. Every other state reaching end-of-input is an error.
func parseAttributeList(b []byte) (AttributeList, error) {
	var out AttributeList
	state := stateReadingName
	nameStart := 0
	var name string
	valueStart := 0

	i := 0
	for i < len(b) {
		c := b[i]
		switch state {
		case stateReadingName:
			switch c {
			case '=':
				if i == nameStart {
					return nil, listErr(EmptyAttributeName)
				}
				name = string(b[nameStart:i])
				state = stateReadingValue
				i++
			case ',', '"':
				return nil, listErr(UnexpectedCharacterInAttributeName)
			default:
				i++
			}

		case stateReadingValue:
			// The very next byte after '=' decides whether this is a
			// quoted or unquoted value.
			switch c {
			case '"':
				state = stateReadingQuotedValue
				valueStart = i + 1
				i++
			case ',':
				return nil, listErr(EmptyUnquotedValue)
			case '=':
				return nil, listErr(UnexpectedCharacterInAttributeValue)
			default:
				valueStart = i
				j := i
				for j < len(b) && b[j] != ',' {
					if b[j] == '"' || b[j] == '=' {
						return nil, listErr(UnexpectedCharacterInAttributeValue)
					}
					j++
				}
				out = append(out, NamedAttribute{Name: name, Value: AttributeValue{Kind: AttrUnquoted, Bytes: b[valueStart:j]}})
				if j >= len(b) {
					return out, nil // terminal: accumulation ran to end-of-input
				}
				i = j + 1
				state = stateReadingName
				nameStart = i
			}

		case stateReadingQuotedValue:
			j := i
			for j < len(b) && b[j] != '"' {
				j++
			}
			if j >= len(b) {
				return nil, listErr(EndOfLineWhileReadingQuotedValue)
			}
			out = append(out, NamedAttribute{Name: name, Value: AttributeValue{Kind: AttrQuoted, Bytes: b[valueStart:j]}})
			i = j + 1
			state = stateFinishedReadingQuotedValue

		case stateFinishedReadingQuotedValue:
			if c != ',' {
				return nil, listErr(UnexpectedCharacterAfterQuoteEnd)
			}
			i++
			state = stateReadingName
			nameStart = i
		}
	}

	switch state {
	case stateReadingName:
		return nil, listErr(EndOfLineWhileReadingAttributeName)
	case stateReadingValue:
		return nil, listErr(EmptyUnquotedValue)
	case stateReadingQuotedValue:
		return nil, listErr(EndOfLineWhileReadingQuotedValue)
	case stateFinishedReadingQuotedValue:
		return out, nil // terminal: closing quote was the final byte
	}
	return out, nil
}
