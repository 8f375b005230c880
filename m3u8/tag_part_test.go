package m3u8

import (
	"testing"

	"github.com/matryer/is"
)

func TestPartParseFull(t *testing.T) {
	is := is.New(t)
	raw := `#EXT-X-PART:URI="part0.mp4",DURATION=1.001,INDEPENDENT=YES,BYTERANGE="4096",GAP=YES`
	l, err := ClassifyLine([]byte(raw), DefaultParsingOptions())
	is.NoErr(err)
	p, ok := l.Known.(*Part)
	is.True(ok)
	is.Equal(p.URI(), "part0.mp4")
	is.Equal(p.Duration(), 1.001)
	is.True(p.Independent())
	br, ok := p.Byterange()
	is.True(ok)
	is.Equal(br, uint64(4096))
	is.True(p.Gap())
	is.Equal(string(p.Serialize()), raw)
}

func TestPartDefaultsFalse(t *testing.T) {
	is := is.New(t)
	l, err := ClassifyLine([]byte(`#EXT-X-PART:URI="part0.mp4",DURATION=1.0`), DefaultParsingOptions())
	is.NoErr(err)
	p := l.Known.(*Part)
	is.True(!p.Independent())
	is.True(!p.Gap())
	_, ok := p.Byterange()
	is.True(!ok)
}

func TestPartMissingRequired(t *testing.T) {
	is := is.New(t)
	_, err := ClassifyLine([]byte(`#EXT-X-PART:URI="part0.mp4"`), DefaultParsingOptions())
	is.True(err != nil)
}

func TestPartUnsetByterange(t *testing.T) {
	is := is.New(t)
	p := NewPart("p.mp4", 1.0)
	p.SetByterange(100)
	p.UnsetByterange()
	_, ok := p.Byterange()
	is.True(!ok)
}
