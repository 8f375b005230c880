package m3u8

/*
 VideoLayout models REQ-VIDEO-LAYOUT: a slash-separated list
 of comma-separated specifier groups, where the prefix of each group's
 first member identifies the kind — "CH-*" for channel specifiers,
 "PROJ-*" for projection specifiers. Unknown prefixes round-trip through
 UnknownEntries so forward compatibility is preserved.
*/

import "strings"

// ChannelSpecifier is a CH-* member of REQ-VIDEO-LAYOUT.
type ChannelSpecifier int

const (
	ChannelStereo ChannelSpecifier = iota
	ChannelMono
)

func (c ChannelSpecifier) String() string {
	switch c {
	case ChannelStereo:
		return "CH-STEREO"
	case ChannelMono:
		return "CH-MONO"
	}
	return ""
}

func lookupChannelSpecifier(s string) (ChannelSpecifier, bool) {
	switch s {
	case "CH-STEREO":
		return ChannelStereo, true
	case "CH-MONO":
		return ChannelMono, true
	}
	return 0, false
}

// ProjectionSpecifier is a PROJ-* member of REQ-VIDEO-LAYOUT.
type ProjectionSpecifier int

const (
	ProjectionRectangular ProjectionSpecifier = iota
	ProjectionEquirectangular
	ProjectionHalfEquirectangular
	ProjectionParametricImmersive
)

func (p ProjectionSpecifier) String() string {
	switch p {
	case ProjectionRectangular:
		return "PROJ-RECT"
	case ProjectionEquirectangular:
		return "PROJ-EQUI"
	case ProjectionHalfEquirectangular:
		return "PROJ-HEQU"
	case ProjectionParametricImmersive:
		return "PROJ-PRIM"
	}
	return ""
}

func lookupProjectionSpecifier(s string) (ProjectionSpecifier, bool) {
	switch s {
	case "PROJ-RECT":
		return ProjectionRectangular, true
	case "PROJ-EQUI":
		return ProjectionEquirectangular, true
	case "PROJ-HEQU":
		return ProjectionHalfEquirectangular, true
	case "PROJ-PRIM":
		return ProjectionParametricImmersive, true
	}
	return 0, false
}

// VideoLayout parses and builds the REQ-VIDEO-LAYOUT quoted string value.
type VideoLayout struct {
	channels   []EnumeratedString[ChannelSpecifier]
	projection []EnumeratedString[ProjectionSpecifier]
	unknown    []string
}

// ParseVideoLayout splits s on '/' into comma-groups and classifies each
// group by its first member's prefix. Order within the string does not
// matter.
func ParseVideoLayout(s string) VideoLayout {
	var v VideoLayout
	for _, group := range splitNonEmpty(s, "/") {
		members := splitNonEmpty(group, ",")
		if len(members) == 0 {
			continue
		}
		switch {
		case strings.HasPrefix(members[0], "CH-"):
			for _, m := range members {
				v.channels = append(v.channels, NewEnumeratedString(m, lookupChannelSpecifier))
			}
		case strings.HasPrefix(members[0], "PROJ-"):
			for _, m := range members {
				v.projection = append(v.projection, NewEnumeratedString(m, lookupProjectionSpecifier))
			}
		default:
			v.unknown = append(v.unknown, group)
		}
	}
	return v
}

// Channels returns the recognized channel specifiers found, in order.
func (v VideoLayout) Channels() []ChannelSpecifier {
	out := make([]ChannelSpecifier, 0, len(v.channels))
	for _, c := range v.channels {
		if k, ok := c.Known(); ok {
			out = append(out, k)
		}
	}
	return out
}

// Projection returns the recognized projection specifiers found, in order.
func (v VideoLayout) Projection() []ProjectionSpecifier {
	out := make([]ProjectionSpecifier, 0, len(v.projection))
	for _, p := range v.projection {
		if k, ok := p.Known(); ok {
			out = append(out, k)
		}
	}
	return out
}

// UnknownEntries returns the comma-groups whose prefix matched neither
// "CH-" nor "PROJ-", preserved verbatim for forward compatibility.
func (v VideoLayout) UnknownEntries() []string {
	return append([]string(nil), v.unknown...)
}

// NewVideoLayout builds a layout from explicit specifier groups.
func NewVideoLayout(channels []ChannelSpecifier, projection []ProjectionSpecifier) VideoLayout {
	var v VideoLayout
	for _, c := range channels {
		v.channels = append(v.channels, KnownEnumeratedString(c))
	}
	for _, p := range projection {
		v.projection = append(v.projection, KnownEnumeratedString(p))
	}
	return v
}

// String renders the layout back to its slash-separated form, concatenating
// the parts and omitting empty ones.
func (v VideoLayout) String() string {
	var parts []string
	if len(v.projection) > 0 {
		members := make([]string, len(v.projection))
		for i, p := range v.projection {
			if k, ok := p.Known(); ok {
				members[i] = k.String()
			} else if u, ok := p.Unrecognized(); ok {
				members[i] = u
			}
		}
		parts = append(parts, strings.Join(members, ","))
	}
	if len(v.channels) > 0 {
		members := make([]string, len(v.channels))
		for i, c := range v.channels {
			if k, ok := c.Known(); ok {
				members[i] = k.String()
			} else if u, ok := c.Unrecognized(); ok {
				members[i] = u
			}
		}
		parts = append(parts, strings.Join(members, ","))
	}
	parts = append(parts, v.unknown...)
	return strings.Join(parts, "/")
}
