package m3u8

import (
	"testing"

	"github.com/matryer/is"
)

func TestSplitOnNewLine(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		desc      string
		input     string
		parsed    string
		remaining string
		hasMore   bool
	}{
		{desc: "no terminator", input: "abc", parsed: "abc", hasMore: false},
		{desc: "lf", input: "abc\ndef", parsed: "abc", remaining: "def", hasMore: true},
		{desc: "crlf", input: "abc\r\ndef", parsed: "abc", remaining: "def", hasMore: true},
		{desc: "trailing lf", input: "abc\n", parsed: "abc", remaining: "", hasMore: true},
		{desc: "bare cr kept", input: "ab\rc\nd", parsed: "ab\rc", remaining: "d", hasMore: true},
	}
	for _, c := range cases {
		r := splitOnNewLine([]byte(c.input))
		is.Equal(string(r.Parsed), c.parsed) // desc: " + c.desc
		is.Equal(r.HasMore, c.hasMore)
		if r.HasMore {
			is.Equal(string(r.Remaining), c.remaining)
		}
	}
}

func TestParseU64(t *testing.T) {
	is := is.New(t)
	n, err := parseU64([]byte("12345"))
	is.NoErr(err)
	is.Equal(n, uint64(12345))

	_, err = parseU64([]byte(""))
	is.True(err != nil)

	_, err = parseU64([]byte("12a"))
	is.True(err != nil)

	_, err = parseU64([]byte("99999999999999999999999"))
	is.True(err != nil)
}

func TestParseFloat(t *testing.T) {
	is := is.New(t)
	f, err := parseFloat([]byte("9.009"))
	is.NoErr(err)
	is.Equal(f, 9.009)

	f, err = parseFloat([]byte("-3.5e2"))
	is.NoErr(err)
	is.Equal(f, -350.0)

	_, err = parseFloat([]byte(""))
	is.True(err != nil)
}
