package m3u8

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/matryer/is"
)

func TestClassifyLine(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		desc  string
		line  string
		kind  LineKind
		error string
	}{
		{desc: "blank", line: "", kind: LineBlank},
		{desc: "comment", line: "# just a note", kind: LineComment},
		{desc: "uri", line: "segment0.ts", kind: LineURI},
		{desc: "m3u8 header", line: "#EXTM3U", kind: LineKnown},
		{desc: "known tag with value", line: "#EXT-X-VERSION:7", kind: LineKnown},
		{desc: "unrecognized tag name", line: "#EXT-X-FOOBAR:1", kind: LineUnknown},
		{desc: "empty tag name", line: "#EXT:", error: "unexpected no tag name"},
		{desc: "bare cr in uri", line: "segment\r0.ts", error: "unexpected line terminator inside URI"},
	}
	for _, c := range cases {
		l, err := ClassifyLine([]byte(c.line), DefaultParsingOptions())
		if c.error != "" {
			is.True(err != nil) // desc: " + c.desc
			continue
		}
		is.NoErr(err)
		is.Equal(l.Kind, c.kind)
	}
}

func TestClassifyLineNilOptionsNeverPromotes(t *testing.T) {
	is := is.New(t)
	l, err := ClassifyLine([]byte("#EXTM3U"), nil)
	is.NoErr(err)
	is.Equal(l.Kind, LineUnknown)
}

// TestRoundTripStability checks that parsing an untouched tag and
// re-serializing it reproduces the original bytes exactly.
func TestRoundTripStability(t *testing.T) {
	is := is.New(t)
	lines := []string{
		"#EXTM3U",
		"#EXT-X-VERSION:7",
		"#EXT-X-TARGETDURATION:10",
		`#EXT-X-KEY:METHOD=AES-128,URI="key.bin",IV=0x0123456789ABCDEF0123456789ABCDEF`,
		"#EXTINF:9.009,",
		"segment0.ts",
		"#EXT-X-ENDLIST",
	}
	for _, raw := range lines {
		l, err := ClassifyLine([]byte(raw), DefaultParsingOptions())
		is.NoErr(err) // desc: " + raw
		is.Equal(string(l.Bytes()), raw)
	}
}

// TestMutationIdempotence checks that setting a field to the value it
// already holds does not change the serialized bytes' meaning, and that a
// second identical Serialize() call is stable.
func TestMutationIdempotence(t *testing.T) {
	is := is.New(t)
	l, err := ClassifyLine([]byte("#EXTINF:9.009,chapter"), DefaultParsingOptions())
	is.NoErr(err)
	inf, ok := l.Known.(*Inf)
	is.True(ok)

	first := inf.Serialize()
	inf.SetTitle("chapter")
	second := inf.Serialize()
	is.Equal(string(first), string(second))
	is.Equal(string(inf.Serialize()), string(second))
}

// TestByteExactUnknownPassthrough checks that an unrecognized tag line is
// returned byte for byte, regardless of internal whitespace oddities.
func TestByteExactUnknownPassthrough(t *testing.T) {
	is := is.New(t)
	raw := "#EXT-X-WEIRD-VENDOR-TAG:A=1,B=\"two words\""
	l, err := ClassifyLine([]byte(raw), DefaultParsingOptions())
	is.NoErr(err)
	is.Equal(l.Kind, LineUnknown)
	is.Equal(string(l.Bytes()), raw)
}

func TestReadAllWriteAllRoundTrip(t *testing.T) {
	is := is.New(t)
	input := "#EXTM3U\n#EXT-X-VERSION:3\n#EXTINF:9.009,\nseg0.ts\n#EXT-X-ENDLIST\n"
	lines, err := ReadAll([]byte(input), DefaultParsingOptions())
	is.NoErr(err)
	is.Equal(len(lines), 5)

	out := WriteAll(lines)
	is.Equal(string(out), input)
}

func TestReadAllNoSpuriousTrailingBlank(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		desc  string
		input string
		kinds []LineKind
	}{
		{desc: "single tag, trailing newline", input: "#EXTM3U\n", kinds: []LineKind{LineKnown}},
		{desc: "single tag, no trailing newline", input: "#EXTM3U", kinds: []LineKind{LineKnown}},
		{desc: "wholly empty input", input: "", kinds: []LineKind{LineBlank}},
		{desc: "bare newline", input: "\n", kinds: []LineKind{LineBlank}},
		{desc: "interior blank line preserved", input: "a\n\n", kinds: []LineKind{LineURI, LineBlank}},
	}
	for _, c := range cases {
		lines, err := ReadAll([]byte(c.input), DefaultParsingOptions())
		is.NoErr(err) // desc: " + c.desc
		is.Equal(len(lines), len(c.kinds)) // desc: " + c.desc
		for i, k := range c.kinds {
			is.Equal(lines[i].Kind, k) // desc: " + c.desc
		}
	}
}

func TestReadFromRoundTrip(t *testing.T) {
	is := is.New(t)
	input := "#EXTM3U\n#EXT-X-ENDLIST\n"
	lines, err := ReadFrom(bytes.NewBufferString(input), DefaultParsingOptions())
	is.NoErr(err)

	var buf bytes.Buffer
	n, err := WriteTo(&buf, lines)
	is.NoErr(err)
	is.Equal(int(n), len(input))
	is.Equal(buf.String(), input)
}

func TestClassifyLineTableSubtests(t *testing.T) {
	cases := []struct {
		desc string
		line string
	}{
		{desc: "master playlist stream-inf", line: `#EXT-X-STREAM-INF:BANDWIDTH=1280000,CODECS="avc1.4d401f,mp4a.40.2"`},
		{desc: "daterange with scte35", line: `#EXT-X-DATERANGE:ID="ad1",START-DATE="2020-01-02T03:04:05.000Z",SCTE35-OUT=0x0123`},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			is := is.New(t)
			l, err := ClassifyLine([]byte(c.line), DefaultParsingOptions())
			is.NoErr(err) // desc: " + c.desc
			is.Equal(l.Kind, LineKnown)
		})
	}
}
