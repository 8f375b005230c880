package m3u8

import (
	"testing"

	"github.com/matryer/is"
)

func TestFlagTagRoundTrip(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		line string
		name string
	}{
		{"#EXTM3U", TagM3U},
		{"#EXT-X-ENDLIST", TagEndList},
		{"#EXT-X-I-FRAMES-ONLY", TagIFramesOnly},
		{"#EXT-X-DISCONTINUITY", TagDiscontinuity},
		{"#EXT-X-GAP", TagGap},
		{"#EXT-X-INDEPENDENT-SEGMENTS", TagIndependentSegments},
	}
	for _, c := range cases {
		l, err := ClassifyLine([]byte(c.line), DefaultParsingOptions())
		is.NoErr(err) // name: " + c.name
		f, ok := l.Known.(*FlagTag)
		is.True(ok)
		is.Equal(f.Name(), c.name)
		is.Equal(string(f.Serialize()), c.line)
	}
}

func TestFlagTagRejectsUnexpectedValue(t *testing.T) {
	is := is.New(t)
	_, err := ClassifyLine([]byte("#EXTM3U:unexpected"), DefaultParsingOptions())
	is.True(err != nil)
}

func TestIntegerTagRoundTrip(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		line string
		name string
		want uint64
	}{
		{"#EXT-X-VERSION:7", TagVersion, 7},
		{"#EXT-X-TARGETDURATION:10", TagTargetDuration, 10},
		{"#EXT-X-MEDIA-SEQUENCE:100", TagMediaSequence, 100},
		{"#EXT-X-DISCONTINUITY-SEQUENCE:3", TagDiscontinuitySeq, 3},
		{"#EXT-X-BITRATE:5000", TagBitrate, 5000},
	}
	for _, c := range cases {
		l, err := ClassifyLine([]byte(c.line), DefaultParsingOptions())
		is.NoErr(err) // name: " + c.name
		it, ok := l.Known.(*IntegerTag)
		is.True(ok)
		is.Equal(it.Name(), c.name)
		is.Equal(it.Value(), c.want)
		is.Equal(string(it.Serialize()), c.line)
	}
}

func TestPlaylistTypeTagRoundTrip(t *testing.T) {
	is := is.New(t)
	l, err := ClassifyLine([]byte("#EXT-X-PLAYLIST-TYPE:VOD"), DefaultParsingOptions())
	is.NoErr(err)
	p := l.Known.(*PlaylistTypeTag)
	is.Equal(p.Value(), PlaylistVOD)
	is.Equal(string(p.Serialize()), "#EXT-X-PLAYLIST-TYPE:VOD")
}

func TestPlaylistTypeTagRejectsInvalid(t *testing.T) {
	is := is.New(t)
	_, err := ClassifyLine([]byte("#EXT-X-PLAYLIST-TYPE:LIVE"), DefaultParsingOptions())
	is.True(err != nil)
}

func TestProgramDateTimeRoundTrip(t *testing.T) {
	is := is.New(t)
	raw := "#EXT-X-PROGRAM-DATE-TIME:2020-01-02T03:04:05.000Z"
	l, err := ClassifyLine([]byte(raw), DefaultParsingOptions())
	is.NoErr(err)
	p := l.Known.(*ProgramDateTime)
	is.Equal(p.Value().String(), "2020-01-02T03:04:05.000Z")
	is.Equal(string(p.Serialize()), raw)
}

func TestStartParseAndDefault(t *testing.T) {
	is := is.New(t)
	l, err := ClassifyLine([]byte("#EXT-X-START:TIME-OFFSET=-5.0,PRECISE=YES"), DefaultParsingOptions())
	is.NoErr(err)
	s := l.Known.(*Start)
	is.Equal(s.TimeOffset(), -5.0)
	is.True(s.Precise())

	l, err = ClassifyLine([]byte("#EXT-X-START:TIME-OFFSET=10.0"), DefaultParsingOptions())
	is.NoErr(err)
	is.True(!l.Known.(*Start).Precise()) // PRECISE defaults to NO when absent
}

func TestPartInfRoundTrip(t *testing.T) {
	is := is.New(t)
	raw := "#EXT-X-PART-INF:PART-TARGET=1.0"
	l, err := ClassifyLine([]byte(raw), DefaultParsingOptions())
	is.NoErr(err)
	p := l.Known.(*PartInf)
	is.Equal(p.PartTarget(), 1.0)
	is.Equal(string(p.Serialize()), raw)
}

func TestServerControlAllAttributes(t *testing.T) {
	is := is.New(t)
	raw := "#EXT-X-SERVER-CONTROL:CAN-SKIP-UNTIL=12.0,CAN-SKIP-DATERANGES=YES,HOLD-BACK=18.0,PART-HOLD-BACK=3.0,CAN-BLOCK-RELOAD=YES"
	l, err := ClassifyLine([]byte(raw), DefaultParsingOptions())
	is.NoErr(err)
	s := l.Known.(*ServerControl)
	v, ok := s.CanSkipUntil()
	is.True(ok)
	is.Equal(v, 12.0)
	is.True(s.CanSkipDateranges())
	is.True(s.CanBlockReload())
}

func TestNewServerControlEmpty(t *testing.T) {
	is := is.New(t)
	s := NewServerControl()
	is.Equal(string(s.Serialize()), "#EXT-X-SERVER-CONTROL:")
}

func TestSkipRequiresSkippedSegments(t *testing.T) {
	is := is.New(t)
	l, err := ClassifyLine([]byte(`#EXT-X-SKIP:SKIPPED-SEGMENTS=5,RECENTLY-REMOVED-DATERANGES="id1\tid2"`), DefaultParsingOptions())
	is.NoErr(err)
	s := l.Known.(*Skip)
	is.Equal(s.SkippedSegments(), uint64(5))
	rr, ok := s.RecentlyRemovedDateranges()
	is.True(ok)
	is.Equal(rr, `id1\tid2`)

	_, err = ClassifyLine([]byte("#EXT-X-SKIP:"), DefaultParsingOptions())
	is.True(err != nil)
}

func TestRenditionReportParse(t *testing.T) {
	is := is.New(t)
	raw := `#EXT-X-RENDITION-REPORT:URI="../audio/rendition.m3u8",LAST-MSN=10,LAST-PART=2`
	l, err := ClassifyLine([]byte(raw), DefaultParsingOptions())
	is.NoErr(err)
	r := l.Known.(*RenditionReport)
	is.Equal(r.URI(), "../audio/rendition.m3u8")
	msn, ok := r.LastMSN()
	is.True(ok)
	is.Equal(msn, uint64(10))
	is.Equal(string(r.Serialize()), raw)
}

func TestContentSteeringParse(t *testing.T) {
	is := is.New(t)
	raw := `#EXT-X-CONTENT-STEERING:SERVER-URI="steering.json",PATHWAY-ID="US"`
	l, err := ClassifyLine([]byte(raw), DefaultParsingOptions())
	is.NoErr(err)
	c := l.Known.(*ContentSteering)
	is.Equal(c.ServerURI(), "steering.json")
	pid, ok := c.PathwayID()
	is.True(ok)
	is.Equal(pid, "US")
}

func TestSessionDataValueForm(t *testing.T) {
	is := is.New(t)
	raw := `#EXT-X-SESSION-DATA:DATA-ID="com.example.title",VALUE="Episode 1",LANGUAGE="en"`
	l, err := ClassifyLine([]byte(raw), DefaultParsingOptions())
	is.NoErr(err)
	s := l.Known.(*SessionData)
	is.Equal(s.DataID(), "com.example.title")
	v, ok := s.Value()
	is.True(ok)
	is.Equal(v, "Episode 1")
	is.Equal(s.Format(), SessionDataJSON) // default when absent
}

func TestSessionDataExplicitRawFormat(t *testing.T) {
	is := is.New(t)
	raw := `#EXT-X-SESSION-DATA:DATA-ID="com.example.blob",URI="data.bin",FORMAT=RAW`
	l, err := ClassifyLine([]byte(raw), DefaultParsingOptions())
	is.NoErr(err)
	s := l.Known.(*SessionData)
	is.Equal(s.Format(), SessionDataRaw)
	is.Equal(string(s.Serialize()), raw)
}
