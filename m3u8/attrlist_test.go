package m3u8

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestParseAttributeList(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		desc    string
		input   string
		wantLen int
		kind    AttributeListErrorKind
		wantErr bool
	}{
		{desc: "single unquoted", input: "BANDWIDTH=1200000", wantLen: 1},
		{desc: "single quoted", input: `URI="foo.m3u8"`, wantLen: 1},
		{desc: "mixed", input: `TYPE=AUDIO,GROUP-ID="audio",DEFAULT=YES`, wantLen: 3},
		{desc: "quoted then unquoted", input: `NAME="x",BANDWIDTH=5`, wantLen: 2},
		{desc: "empty name", input: "=1", wantErr: true, kind: EmptyAttributeName},
		{desc: "eof reading name", input: "BANDWIDTH", wantErr: true, kind: EndOfLineWhileReadingAttributeName},
		{desc: "empty unquoted value", input: "BANDWIDTH=,NAME=1", wantErr: true, kind: EmptyUnquotedValue},
		{desc: "eof in quoted value", input: `NAME="unterminated`, wantErr: true, kind: EndOfLineWhileReadingQuotedValue},
		{desc: "stray char after quote", input: `NAME="x"Y=1`, wantErr: true, kind: UnexpectedCharacterAfterQuoteEnd},
		{desc: "quote inside name", input: `NA"ME=1`, wantErr: true, kind: UnexpectedCharacterInAttributeName},
	}
	for _, c := range cases {
		attrs, err := parseAttributeList([]byte(c.input))
		if c.wantErr {
			is.True(err != nil) // desc: " + c.desc
			var tverr *TagValueSyntaxError
			is.True(errors.As(err, &tverr))
			is.True(tverr.IsList)
			is.Equal(tverr.ListKind, c.kind)
			continue
		}
		is.NoErr(err)
		is.Equal(len(attrs), c.wantLen)
	}
}

func TestAttributeListGetLastWriteWins(t *testing.T) {
	is := is.New(t)
	attrs, err := parseAttributeList([]byte("A=1,A=2"))
	is.NoErr(err)
	v, ok := attrs.Get("A")
	is.True(ok)
	is.Equal(v.RawString(), "2")
}

func TestAttributeListOrderInsensitiveEquality(t *testing.T) {
	is := is.New(t)
	a, err := parseAttributeList([]byte(`A=1,B="x"`))
	is.NoErr(err)
	b, err := parseAttributeList([]byte(`B="x",A=1`))
	is.NoErr(err)
	is.Equal(a.ToMap(), b.ToMap())
}
