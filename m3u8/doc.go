package m3u8

/* Package m3u8 implements line-level parsing, mutation, and
re-serialization of HLS m3u8 playlists.

HLS (HTTP Live Streaming) is an evolving protocol. Versions 1-7 are
described in [IETF RFC8216][rfc8216], and the protocol has continued to
evolve through a series of Internet Drafts [rfc8216bis], currently at
[rfc8216bis-18].

## Structure and design of the code

This package works one line at a time rather than decoding a whole
playlist into a single eager struct. ReadAll/ReadFrom split the input on
line terminators and classify each line independently via ClassifyLine
into a Line: Blank, Comment, Uri, an UnknownTag (a recognized "#EXT..."
line whose name is not enabled for typed decoding), or a KnownTag (one of
the 32 built-in HLS tags, or a caller-registered CustomTag).

A KnownTag borrows its bytes from the input until something calls one of
its setters; only then is it marked dirty, and only a dirty tag pays for
re-synthesizing its line on the next Serialize(). An untouched tag's
Serialize() returns the exact bytes it was parsed from, byte for byte.

Within a tag, attributes follow the same laziness one level down:
LazyAttribute[T] holds an attribute as either absent, present-but-not-yet-
decoded (pointing at the raw bytes), or overwritten with an owned typed
value. A getter on an Unparsed attribute decodes on demand and never
mutates the cell; only a setter promotes it to UserDefined.

Which of the 32 built-in tags get promoted from UnknownTag to a typed
KnownTag is controlled by ParsingOptions, built with DefaultParsingOptions
(all 32 enabled) or NewParsingOptions (none enabled, opt in via
WithParsingFor) and extended with caller-defined tag types via
WithCustomTag.

This package does not fetch playlists, resolve relative URIs, validate
cross-tag invariants (e.g. that a Variant Stream's AUDIO group actually
exists), interpret segment media, or offer a streaming/incremental reader
across line boundaries — see the package-level Non-goals in the design
notes shipped alongside this repository.

Examples of usage may be found in *_test.go files of this package. A
simple parse-mutate-reserialize round trip looks like this (error handling
omitted):

	lines, _ := m3u8.ReadAll(data, m3u8.DefaultParsingOptions())
	for _, l := range lines {
	    if l.Kind == m3u8.LineKnown {
	        if inf, ok := l.Known.(*m3u8.Inf); ok {
	            inf.SetTitle("chapter 1")
	        }
	    }
	}
	out := m3u8.WriteAll(lines)

[rfc8216]: https://tools.ietf.org/html/rfc8216
[rfc8216bis]: https://tools.ietf.org/html/draft-pantos-rfc8216bis
[rfc8216bis-18]: https://tools.ietf.org/html/draft-pantos-rfc8216bis-18
*/
