package m3u8

import (
	"testing"

	"github.com/matryer/is"
)

func TestDaterangeParseBasic(t *testing.T) {
	is := is.New(t)
	raw := `#EXT-X-DATERANGE:ID="ad1",CLASS="com.example.ad",START-DATE="2020-01-02T03:04:05.000Z",DURATION=30.5,X-VENDOR-ID=0x1A2B`
	l, err := ClassifyLine([]byte(raw), DefaultParsingOptions())
	is.NoErr(err)
	d, ok := l.Known.(*Daterange)
	is.True(ok)
	is.Equal(d.ID(), "ad1")
	class, ok := d.Class()
	is.True(ok)
	is.Equal(class, "com.example.ad")
	is.Equal(d.StartDate().String(), "2020-01-02T03:04:05.000Z")
	dur, ok := d.Duration()
	is.True(ok)
	is.Equal(dur, 30.5)

	v, ok := d.ExtAttr("X-VENDOR-ID")
	is.True(ok)
	is.Equal(v.Kind, ExtHexadecimalSequence)
	is.Equal(v.HexValue, "0x1A2B")

	is.Equal(string(d.Serialize()), raw)
}

func TestDaterangeMissingRequiredAttrs(t *testing.T) {
	is := is.New(t)
	_, err := ClassifyLine([]byte(`#EXT-X-DATERANGE:CLASS="x"`), DefaultParsingOptions())
	is.True(err != nil)
}

// TestDaterangeScte35LeniencyQuotedOrHex covers the Open Question about
// SCTE35-* attributes appearing as either a hexadecimal-sequence or a
// quoted string in real playlists.
func TestDaterangeScte35LeniencyQuotedOrHex(t *testing.T) {
	is := is.New(t)

	hexLine := `#EXT-X-DATERANGE:ID="a",START-DATE="2020-01-02T03:04:05Z",SCTE35-OUT=0x0123`
	l, err := ClassifyLine([]byte(hexLine), DefaultParsingOptions())
	is.NoErr(err)
	d := l.Known.(*Daterange)
	v, ok := d.Scte35Out()
	is.True(ok)
	is.Equal(v.Kind, ExtHexadecimalSequence)

	quotedLine := `#EXT-X-DATERANGE:ID="a",START-DATE="2020-01-02T03:04:05Z",SCTE35-OUT="0x0123"`
	l2, err := ClassifyLine([]byte(quotedLine), DefaultParsingOptions())
	is.NoErr(err)
	d2 := l2.Known.(*Daterange)
	v2, ok := d2.Scte35Out()
	is.True(ok)
	is.Equal(v2.Kind, ExtQuotedString)
}

func TestDaterangeEqualIsOrderInsensitive(t *testing.T) {
	is := is.New(t)
	a, err := ClassifyLine([]byte(`#EXT-X-DATERANGE:ID="a",START-DATE="2020-01-02T03:04:05Z",X-ONE=1,X-TWO="y"`), DefaultParsingOptions())
	is.NoErr(err)
	b, err := ClassifyLine([]byte(`#EXT-X-DATERANGE:ID="a",START-DATE="2020-01-02T03:04:05Z",X-TWO="y",X-ONE=1`), DefaultParsingOptions())
	is.NoErr(err)
	is.True(a.Known.(*Daterange).Equal(b.Known.(*Daterange)))
}

func TestDaterangeInterstitialView(t *testing.T) {
	is := is.New(t)
	raw := `#EXT-X-DATERANGE:ID="i1",CLASS="com.apple.hls.interstitial",START-DATE="2020-01-02T03:04:05Z",X-ASSET-URI="ad.m3u8",X-RESUME-OFFSET=0.0`
	l, err := ClassifyLine([]byte(raw), DefaultParsingOptions())
	is.NoErr(err)
	d := l.Known.(*Daterange)

	view, ok := d.Interstitial()
	is.True(ok)
	uri, ok := view.AssetURI()
	is.True(ok)
	is.Equal(uri, "ad.m3u8")
	offset, ok := view.ResumeOffset()
	is.True(ok)
	is.Equal(offset, 0.0)
	is.True(view.ContentMayVary()) // defaults true when absent
}

func TestDaterangeNotInterstitialWhenClassDiffers(t *testing.T) {
	is := is.New(t)
	l, err := ClassifyLine([]byte(`#EXT-X-DATERANGE:ID="i1",CLASS="com.example.other",START-DATE="2020-01-02T03:04:05Z"`), DefaultParsingOptions())
	is.NoErr(err)
	d := l.Known.(*Daterange)
	_, ok := d.Interstitial()
	is.True(!ok)
}

func TestDaterangeSetExtAttrReflectsInView(t *testing.T) {
	is := is.New(t)
	d := NewDaterange("i1", DateTime{})
	d.SetClass("com.apple.hls.interstitial")
	d.SetExtAttr("X-ASSET-URI", ExtAttrValue{Kind: ExtQuotedString, QuotedValue: "ad2.m3u8"})

	view, ok := d.Interstitial()
	is.True(ok)
	uri, ok := view.AssetURI()
	is.True(ok)
	is.Equal(uri, "ad2.m3u8")
}
