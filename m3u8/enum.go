package m3u8

/*
 This file defines EnumeratedString and EnumeratedStringList, the
 forward-compatibility wrapper used for every enumerated attribute
 value: HDCP-LEVEL, VIDEO-RANGE, METHOD, TYPE, CUE, and the Interstitials
 X-SNAP/X-RESTRICT lists. An enum value the parser doesn't recognize
 degrades to Unrecognized instead of failing the whole tag.
*/

import "strings"

// KnownEnum is implemented by each enum type usable inside EnumeratedString,
// so the wrapper can attempt to recover a known value from a string without
// reflection.
type KnownEnum interface {
	comparable
}

// EnumeratedString is either a recognized enum value (Known) or the raw
// string as seen in the source (Unrecognized) — conversion never fails
// outright, it degrades.
type EnumeratedString[E KnownEnum] struct {
	known        E
	isKnown      bool
	unrecognized string
}

// NewEnumeratedString builds a wrapper from a raw string using lookup to
// attempt recovery of a known E; on lookup failure it degrades to
// Unrecognized.
func NewEnumeratedString[E KnownEnum](s string, lookup func(string) (E, bool)) EnumeratedString[E] {
	if v, ok := lookup(s); ok {
		return EnumeratedString[E]{known: v, isKnown: true}
	}
	return EnumeratedString[E]{unrecognized: s}
}

// KnownEnumeratedString builds a wrapper that is already a known value,
// e.g. for a builder/setter.
func KnownEnumeratedString[E KnownEnum](v E) EnumeratedString[E] {
	return EnumeratedString[E]{known: v, isKnown: true}
}

// Known returns the recognized enum value and true, or the zero value and
// false if this wrapper holds an unrecognized string.
func (e EnumeratedString[E]) Known() (E, bool) { return e.known, e.isKnown }

// Unrecognized returns the raw string and true if this wrapper failed to
// resolve to a known E.
func (e EnumeratedString[E]) Unrecognized() (string, bool) {
	return e.unrecognized, !e.isKnown
}

// EnumeratedStringList is a comma-separated flat sequence of enumerated
// strings with set-like operations that act textually, so duplicates
// collapse and the relative order of surviving members is stable. Used by
// CUE, X-SNAP, X-RESTRICT.
type EnumeratedStringList struct {
	members []string
}

// ParseEnumeratedStringList splits a comma-separated string into a list,
// dropping empty members and repeats of an earlier member.
func ParseEnumeratedStringList(s string) EnumeratedStringList {
	var l EnumeratedStringList
	for _, m := range splitNonEmpty(s, ",") {
		l.Insert(m)
	}
	return l
}

// Contains reports whether member is present, exact string match.
func (l EnumeratedStringList) Contains(member string) bool {
	for _, m := range l.members {
		if m == member {
			return true
		}
	}
	return false
}

// Insert adds member if not already present, returning true if it changed
// the list.
func (l *EnumeratedStringList) Insert(member string) bool {
	if l.Contains(member) {
		return false
	}
	l.members = append(l.members, member)
	return true
}

// Remove drops member if present, returning true if it changed the list.
func (l *EnumeratedStringList) Remove(member string) bool {
	for i, m := range l.members {
		if m == member {
			l.members = append(l.members[:i], l.members[i+1:]...)
			return true
		}
	}
	return false
}

// Members returns the list's members in stable order.
func (l EnumeratedStringList) Members() []string {
	return append([]string(nil), l.members...)
}

// String renders the list back to its comma-separated form.
func (l EnumeratedStringList) String() string {
	return strings.Join(l.members, ",")
}
