package m3u8

import (
	"testing"

	"github.com/matryer/is"
)

func TestMapParseBasic(t *testing.T) {
	is := is.New(t)
	l, err := ClassifyLine([]byte(`#EXT-X-MAP:URI="init.mp4"`), DefaultParsingOptions())
	is.NoErr(err)
	m, ok := l.Known.(*Map)
	is.True(ok)
	is.Equal(m.URI(), "init.mp4")
	_, ok = m.Byterange()
	is.True(!ok)
}

func TestMapParseWithByterange(t *testing.T) {
	is := is.New(t)
	l, err := ClassifyLine([]byte(`#EXT-X-MAP:URI="init.mp4",BYTERANGE="1024@0"`), DefaultParsingOptions())
	is.NoErr(err)
	m := l.Known.(*Map)
	r, ok := m.Byterange()
	is.True(ok)
	is.Equal(r.Length, uint64(1024))
	is.True(r.Offset != nil)
	is.Equal(*r.Offset, uint64(0))
	is.Equal(string(m.Serialize()), `#EXT-X-MAP:URI="init.mp4",BYTERANGE="1024@0"`)
}

func TestMapMissingURI(t *testing.T) {
	is := is.New(t)
	_, err := ClassifyLine([]byte("#EXT-X-MAP:BYTERANGE=\"1@0\""), DefaultParsingOptions())
	is.True(err != nil)
}

func TestMapSetAndUnsetByterange(t *testing.T) {
	is := is.New(t)
	m := NewMap("init.mp4")
	m.SetByterange(MapByterange{Length: 100})
	is.Equal(string(m.Serialize()), `#EXT-X-MAP:URI="init.mp4",BYTERANGE="100"`)
	m.UnsetByterange()
	is.Equal(string(m.Serialize()), `#EXT-X-MAP:URI="init.mp4"`)
}
