package m3u8

/*
 This file collects the output-grammar helpers shared by every typed-tag
 wrapper's re-synthesis path: integer/float formatting, quoted string
 escaping (there is none — quotes are never escaped), and attribute-list
 assembly.
*/

import (
	"strconv"
	"strings"
)

// formatFloat renders a float using the language's default formatting,
// except a pure-integer result like "2" is forced to "2.0" so a
// signed-decimal-floating-point value never degrades to integer-looking
// output.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// quote wraps s in double quotes with no escaping: quoted values are
// assumed to never contain '"'.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	b.WriteString(s)
	b.WriteByte('"')
	return b.String()
}

// formatAttributeList renders an attribute list as "NAME=<value>,...".
// Quoted values are wrapped in double quotes; unquoted values,
// hex sequences and enums are written verbatim.
func formatAttributeList(attrs AttributeList) string {
	var b strings.Builder
	for i, a := range attrs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.Name)
		b.WriteByte('=')
		if a.Value.Kind == AttrQuoted {
			b.WriteString(quote(string(a.Value.Bytes)))
		} else {
			b.Write(a.Value.Bytes)
		}
	}
	return b.String()
}

// attrBuilder accumulates NamedAttributes for a tag's re-synthesis in a
// fixed order (serialization need not match the original order for a
// dirty tag, but a stable order keeps diffs small).
type attrBuilder struct {
	attrs AttributeList
}

func (a *attrBuilder) str(name, v string) {
	a.attrs = append(a.attrs, NamedAttribute{Name: name, Value: AttributeValue{Kind: AttrQuoted, Bytes: []byte(v)}})
}

func (a *attrBuilder) raw(name, v string) {
	a.attrs = append(a.attrs, NamedAttribute{Name: name, Value: AttributeValue{Kind: AttrUnquoted, Bytes: []byte(v)}})
}

func (a *attrBuilder) uint(name string, v uint64) {
	a.raw(name, uitoa(v))
}

func (a *attrBuilder) float(name string, v float64) {
	a.raw(name, formatFloat(v))
}

func (a *attrBuilder) flag(name string) {
	a.raw(name, "YES")
}

func (a *attrBuilder) build(tagName string) []byte {
	return []byte("#EXT" + tagName + ":" + formatAttributeList(a.attrs))
}
