package m3u8

import (
	"testing"

	"github.com/matryer/is"
)

func TestPreloadHintParsePart(t *testing.T) {
	is := is.New(t)
	raw := `#EXT-X-PRELOAD-HINT:TYPE=PART,URI="part5.mp4",BYTERANGE-START=1024,BYTERANGE-LENGTH=512`
	l, err := ClassifyLine([]byte(raw), DefaultParsingOptions())
	is.NoErr(err)
	p, ok := l.Known.(*PreloadHint)
	is.True(ok)
	typ, ok := p.Type().Known()
	is.True(ok)
	is.Equal(typ, PreloadHintPart)
	is.Equal(p.URI(), "part5.mp4")
	is.Equal(p.ByterangeStart(), uint64(1024))
	length, ok := p.ByterangeLength()
	is.True(ok)
	is.Equal(length, uint64(512))
	is.Equal(string(p.Serialize()), raw)
}

func TestPreloadHintByterangeStartDefaultsZero(t *testing.T) {
	is := is.New(t)
	l, err := ClassifyLine([]byte(`#EXT-X-PRELOAD-HINT:TYPE=MAP,URI="init.mp4"`), DefaultParsingOptions())
	is.NoErr(err)
	p := l.Known.(*PreloadHint)
	is.Equal(p.ByterangeStart(), uint64(0))
	_, ok := p.ByterangeLength()
	is.True(!ok)
}

func TestNewPreloadHintBuilder(t *testing.T) {
	is := is.New(t)
	p := NewPreloadHint(PreloadHintMap, "init.mp4")
	is.Equal(string(p.Serialize()), `#EXT-X-PRELOAD-HINT:TYPE=MAP,URI="init.mp4"`)
}
