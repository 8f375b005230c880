package m3u8

/*
 This file defines the EXT-X-DATERANGE extension-attribute value shape:
 any attribute whose name begins with "X-" is collected separately from
 the tag's own fields, typed as one of QuotedString / HexadecimalSequence
 / SignedDecimalFloatingPoint.
*/

// ExtAttrKind discriminates an extension attribute's decoded shape.
type ExtAttrKind int

const (
	ExtQuotedString ExtAttrKind = iota
	ExtHexadecimalSequence
	ExtSignedFloat
)

// ExtAttrValue is one EXT-X-DATERANGE extension attribute's decoded value.
type ExtAttrValue struct {
	Kind        ExtAttrKind
	QuotedValue string
	HexValue    string
	FloatValue  float64
}

func decodeExtAttrValue(v AttributeValue) (ExtAttrValue, error) {
	if v.Kind == AttrQuoted {
		return ExtAttrValue{Kind: ExtQuotedString, QuotedValue: string(v.Bytes)}, nil
	}
	if v.IsHexadecimalSequence() {
		return ExtAttrValue{Kind: ExtHexadecimalSequence, HexValue: v.RawString()}, nil
	}
	f, err := v.Float64()
	if err != nil {
		return ExtAttrValue{}, err
	}
	return ExtAttrValue{Kind: ExtSignedFloat, FloatValue: f}, nil
}

func (v ExtAttrValue) raw() string {
	switch v.Kind {
	case ExtQuotedString:
		return quote(v.QuotedValue)
	case ExtHexadecimalSequence:
		return v.HexValue
	case ExtSignedFloat:
		return formatFloat(v.FloatValue)
	}
	return ""
}

// NamedExtAttr is one (name, value) extension attribute pair, name
// including its "X-" prefix.
type NamedExtAttr struct {
	Name  string
	Value ExtAttrValue
}

func collectExtAttrs(attrs AttributeList) ([]NamedExtAttr, error) {
	var out []NamedExtAttr
	seen := make(map[string]int)
	for _, a := range attrs {
		if len(a.Name) < 2 || a.Name[:2] != "X-" {
			continue
		}
		v, err := decodeExtAttrValue(a.Value)
		if err != nil {
			return nil, err
		}
		if idx, ok := seen[a.Name]; ok {
			out[idx] = NamedExtAttr{Name: a.Name, Value: v} // last occurrence wins
			continue
		}
		seen[a.Name] = len(out)
		out = append(out, NamedExtAttr{Name: a.Name, Value: v})
	}
	return out, nil
}

func extAttrsEqual(a, b []NamedExtAttr) bool {
	if len(a) != len(b) {
		return false
	}
	am := make(map[string]ExtAttrValue, len(a))
	for _, e := range a {
		am[e.Name] = e.Value
	}
	for _, e := range b {
		v, ok := am[e.Name]
		if !ok || v != e.Value {
			return false
		}
	}
	return true
}
