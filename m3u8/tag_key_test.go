package m3u8

import (
	"testing"

	"github.com/matryer/is"
)

func TestKeyParseAES128(t *testing.T) {
	is := is.New(t)
	l, err := ClassifyLine([]byte(`#EXT-X-KEY:METHOD=AES-128,URI="key.bin",IV=0x0123456789ABCDEF0123456789ABCDEF`), DefaultParsingOptions())
	is.NoErr(err)
	k, ok := l.Known.(*Key)
	is.True(ok)
	m, ok := k.Method().Known()
	is.True(ok)
	is.Equal(m, MethodAES128)
	uri, ok := k.URI()
	is.True(ok)
	is.Equal(uri, "key.bin")
	iv, ok := k.IV()
	is.True(ok)
	is.Equal(iv, "0x0123456789ABCDEF0123456789ABCDEF")
	is.Equal(k.Keyformat(), "identity") // default when absent
}

func TestKeyMethodNone(t *testing.T) {
	is := is.New(t)
	l, err := ClassifyLine([]byte("#EXT-X-KEY:METHOD=NONE"), DefaultParsingOptions())
	is.NoErr(err)
	k := l.Known.(*Key)
	m, ok := k.Method().Known()
	is.True(ok)
	is.Equal(m, MethodNone)
	_, ok = k.URI()
	is.True(!ok)
}

func TestKeyUnrecognizedMethodDegrades(t *testing.T) {
	is := is.New(t)
	l, err := ClassifyLine([]byte("#EXT-X-KEY:METHOD=FUTURE-CIPHER,URI=\"k\""), DefaultParsingOptions())
	is.NoErr(err)
	k := l.Known.(*Key)
	_, ok := k.Method().Known()
	is.True(!ok)
	u, ok := k.Method().Unrecognized()
	is.True(ok)
	is.Equal(u, "FUTURE-CIPHER")
	is.Equal(string(k.Serialize()), "#EXT-X-KEY:METHOD=FUTURE-CIPHER,URI=\"k\"")
}

func TestSessionKeySharesKeyImplementation(t *testing.T) {
	is := is.New(t)
	l, err := ClassifyLine([]byte(`#EXT-X-SESSION-KEY:METHOD=AES-128,URI="key.bin"`), DefaultParsingOptions())
	is.NoErr(err)
	k, ok := l.Known.(*Key)
	is.True(ok)
	is.Equal(k.Name(), TagSessionKey)
}

func TestKeyKeyformatVersions(t *testing.T) {
	is := is.New(t)
	l, err := ClassifyLine([]byte(`#EXT-X-KEY:METHOD=AES-128,URI="k",KEYFORMATVERSIONS="1/2/3"`), DefaultParsingOptions())
	is.NoErr(err)
	k := l.Known.(*Key)
	is.Equal(k.KeyformatVersions(), []uint64{1, 2, 3})
}
