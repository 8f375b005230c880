package m3u8

/*
 This file collects the small helpers every attribute-list tag's
 constructor uses: pulling a required attribute out (or reporting
 MissingRequiredAttribute), and seeding a LazyAttribute cell from whatever
 the attribute list contains for an optional attribute.
*/

// requireAttr fetches name from attrs or reports it missing for tagName.
func requireAttr(tagName string, attrs AttributeList, name string) (AttributeValue, error) {
	v, ok := attrs.Get(name)
	if !ok {
		return AttributeValue{}, MissingRequiredAttribute(tagName, name)
	}
	return v, nil
}

// lazyFromAttrs seeds a LazyAttribute[T] as Unparsed(raw) if name is
// present in attrs, or None otherwise.
func lazyFromAttrs[T any](attrs AttributeList, name string) LazyAttribute[T] {
	if v, ok := attrs.Get(name); ok {
		return UnparsedAttribute[T](v)
	}
	return NoneAttribute[T]()
}

// decodeQuotedString and decodeUTF8String are the two most common
// LazyAttribute[string] decoders.
func decodeQuotedString(v AttributeValue) (string, error) { return v.QuotedString() }

func decodeUTF8String(v AttributeValue) (string, error) { return v.UTF8String() }

func decodeUint64(v AttributeValue) (uint64, error) { return v.Uint64() }

func decodeFloat64(v AttributeValue) (float64, error) { return v.Float64() }

func decodeResolution(v AttributeValue) (DecimalResolution, error) { return v.Resolution() }

// decodeYesFlag resolves a YES/absent attribute: present means YES
// (anything else is a TagValueSyntaxError — HLS enumerated booleans are only
// ever "YES" when present at all).
func decodeYesFlag(v AttributeValue) (bool, error) {
	s := v.RawString()
	if s != "YES" {
		return false, &TagValueSyntaxError{Reason: "expected YES"}
	}
	return true, nil
}

// getFlag resolves a LazyAttribute[bool] that represents a YES/absent
// attribute, treating a decode error the same as absent (lenient, per
// EnumeratedString's forward-compatibility philosophy) while still
// surfacing state correctly for a UserDefined override.
func getFlag(l LazyAttribute[bool]) bool {
	v, ok, err := l.Get(decodeYesFlag)
	if err != nil || !ok {
		return false
	}
	return v
}
