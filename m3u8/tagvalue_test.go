package m3u8

import (
	"testing"

	"github.com/matryer/is"
)

func TestTagValueDecimalInteger(t *testing.T) {
	is := is.New(t)
	pv, err := NewTagValue([]byte("42")).DecimalInteger()
	is.NoErr(err)
	is.Equal(pv.Kind, ValueInteger)
	is.Equal(pv.Integer, uint64(42))

	_, err = NewTagValue([]byte("")).DecimalInteger()
	is.True(err != nil)
}

func TestTagValueDecimalIntegerRange(t *testing.T) {
	is := is.New(t)
	pv, err := NewTagValue([]byte("1024@512")).DecimalIntegerRange()
	is.NoErr(err)
	is.Equal(pv.RangeLength, uint64(1024))
	is.True(pv.RangeOffset != nil)
	is.Equal(*pv.RangeOffset, uint64(512))

	pv, err = NewTagValue([]byte("1024")).DecimalIntegerRange()
	is.NoErr(err)
	is.Equal(pv.RangeLength, uint64(1024))
	is.True(pv.RangeOffset == nil)

	_, err = NewTagValue([]byte("1024@")).DecimalIntegerRange()
	is.True(err != nil)
}

func TestTagValueDecimalFloatingPointWithOptionalTitle(t *testing.T) {
	is := is.New(t)
	pv, err := NewTagValue([]byte("9.009,chapter 1")).DecimalFloatingPointWithOptionalTitle()
	is.NoErr(err)
	is.Equal(pv.Float, 9.009)
	is.Equal(pv.Title, "chapter 1")

	pv, err = NewTagValue([]byte("9.009")).DecimalFloatingPointWithOptionalTitle()
	is.NoErr(err)
	is.Equal(pv.Float, 9.009)
	is.Equal(pv.Title, "")

	pv, err = NewTagValue([]byte("9.009,")).DecimalFloatingPointWithOptionalTitle()
	is.NoErr(err)
	is.Equal(pv.Title, "")
}

func TestTagValuePlaylistType(t *testing.T) {
	is := is.New(t)
	pt, err := NewTagValue([]byte("VOD")).PlaylistType()
	is.NoErr(err)
	is.Equal(pt, PlaylistVOD)

	pt, err = NewTagValue([]byte("EVENT")).PlaylistType()
	is.NoErr(err)
	is.Equal(pt, PlaylistEvent)

	_, err = NewTagValue([]byte("vod")).PlaylistType()
	is.True(err != nil)
}

func TestTagValueDateTimeValue(t *testing.T) {
	is := is.New(t)
	pv, err := NewTagValue([]byte("2020-01-02T03:04:05.000Z")).DateTimeValue()
	is.NoErr(err)
	is.Equal(pv.Kind, ValueDateTime)
	is.Equal(pv.DateTime.String(), "2020-01-02T03:04:05.000Z")
}

func TestTagValueAttributeListValue(t *testing.T) {
	is := is.New(t)
	pv, err := NewTagValue([]byte(`A=1,B="two"`)).AttributeListValue()
	is.NoErr(err)
	is.Equal(pv.Kind, ValueAttributeList)
	is.Equal(len(pv.Attributes), 2)
}

func TestTagValueIsEmpty(t *testing.T) {
	is := is.New(t)
	is.True(NewTagValue(nil).IsEmpty())
	is.True(!NewTagValue([]byte("x")).IsEmpty())
}
