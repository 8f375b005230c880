package m3u8

import (
	"testing"

	"github.com/matryer/is"
)

func TestMediaParseAudio(t *testing.T) {
	is := is.New(t)
	raw := `#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID="aac",NAME="English",LANGUAGE="en",DEFAULT=YES,AUTOSELECT=YES,CHANNELS="2",SAMPLE-RATE=48000,BIT-DEPTH=16`
	l, err := ClassifyLine([]byte(raw), DefaultParsingOptions())
	is.NoErr(err)
	m, ok := l.Known.(*Media)
	is.True(ok)
	typ, ok := m.Type().Known()
	is.True(ok)
	is.Equal(typ, MediaAudio)
	is.Equal(m.GroupID(), "aac")
	is.Equal(m.MediaName(), "English")
	lang, ok := m.Language()
	is.True(ok)
	is.Equal(lang, "en")
	is.True(m.Default())
	is.True(m.Autoselect())
	is.True(!m.Forced())
	ch, ok := m.Channels()
	is.True(ok)
	is.Equal(ch, "2")
	sr, ok := m.SampleRate()
	is.True(ok)
	is.Equal(sr, uint64(48000))
	bd, ok := m.BitDepth()
	is.True(ok)
	is.Equal(bd, uint64(16))
	is.Equal(string(m.Serialize()), raw)
}

func TestMediaClosedCaptionsInstreamID(t *testing.T) {
	is := is.New(t)
	raw := `#EXT-X-MEDIA:TYPE=CLOSED-CAPTIONS,GROUP-ID="cc",NAME="English",INSTREAM-ID="CC1"`
	l, err := ClassifyLine([]byte(raw), DefaultParsingOptions())
	is.NoErr(err)
	m := l.Known.(*Media)
	id, ok := m.InstreamID()
	is.True(ok)
	is.Equal(id, "CC1")
}

func TestMediaMissingRequiredAttrs(t *testing.T) {
	is := is.New(t)
	_, err := ClassifyLine([]byte(`#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID="aac"`), DefaultParsingOptions())
	is.True(err != nil)
}

func TestMediaCharacteristicsSplit(t *testing.T) {
	is := is.New(t)
	l, err := ClassifyLine([]byte(`#EXT-X-MEDIA:TYPE=SUBTITLES,GROUP-ID="subs",NAME="English",CHARACTERISTICS="public.accessibility.describes-video,public.easy-to-read"`), DefaultParsingOptions())
	is.NoErr(err)
	m := l.Known.(*Media)
	is.Equal(m.Characteristics(), []string{"public.accessibility.describes-video", "public.easy-to-read"})
}

func TestNewMediaBuilderDefaults(t *testing.T) {
	is := is.New(t)
	m := NewMedia(MediaVideo, "video-group", "Main")
	is.True(!m.Default())
	is.True(!m.Autoselect())
	is.True(!m.Forced())
	is.Equal(string(m.Serialize()), `#EXT-X-MEDIA:TYPE=VIDEO,GROUP-ID="video-group",NAME="Main"`)
}
