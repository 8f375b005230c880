package m3u8

import (
	"testing"

	"github.com/matryer/is"
)

func classifyAll(t *testing.T, raws []string) []Line {
	t.Helper()
	opts := DefaultParsingOptions()
	lines := make([]Line, 0, len(raws))
	for _, r := range raws {
		l, err := ClassifyLine([]byte(r), opts)
		if err != nil {
			t.Fatalf("classify %q: %s", r, err)
		}
		lines = append(lines, l)
	}
	return lines
}

func TestCalcMinVersionBaseline(t *testing.T) {
	is := is.New(t)
	ver, _ := CalcMinVersion(classifyAll(t, []string{
		`#EXTM3U`,
		`#EXT-X-TARGETDURATION:10`,
		`#EXTINF:10,`,
		`segment0.ts`,
	}))
	is.Equal(ver, MinVersion)
}

func TestCalcMinVersionKeyIV(t *testing.T) {
	is := is.New(t)
	ver, _ := CalcMinVersion(classifyAll(t, []string{
		`#EXT-X-KEY:METHOD=AES-128,URI="key",IV=0x0123456789ABCDEF0123456789ABCDEF`,
	}))
	is.Equal(ver, uint8(2))
}

func TestCalcMinVersionFloatingExtinf(t *testing.T) {
	is := is.New(t)
	ver, _ := CalcMinVersion(classifyAll(t, []string{
		`#EXTINF:10.5,`,
	}))
	is.Equal(ver, uint8(3))
}

func TestCalcMinVersionByterange(t *testing.T) {
	is := is.New(t)
	ver, _ := CalcMinVersion(classifyAll(t, []string{
		`#EXT-X-BYTERANGE:1024@0`,
	}))
	is.Equal(ver, uint8(4))
}

func TestCalcMinVersionMapWithIFramesOnly(t *testing.T) {
	is := is.New(t)
	ver, reason := CalcMinVersion(classifyAll(t, []string{
		`#EXT-X-I-FRAMES-ONLY`,
		`#EXT-X-MAP:URI="init.mp4"`,
	}))
	is.Equal(ver, uint8(5))
	is.True(reason != "")
}

func TestCalcMinVersionMapWithoutIFramesOnly(t *testing.T) {
	is := is.New(t)
	ver, _ := CalcMinVersion(classifyAll(t, []string{
		`#EXT-X-MAP:URI="init.mp4"`,
	}))
	is.Equal(ver, uint8(6))
}

func TestCalcMinVersionSampleAES(t *testing.T) {
	is := is.New(t)
	ver, _ := CalcMinVersion(classifyAll(t, []string{
		`#EXT-X-KEY:METHOD=SAMPLE-AES,URI="key"`,
	}))
	is.Equal(ver, uint8(5))
}

func TestCalcMinVersionKeyformat(t *testing.T) {
	is := is.New(t)
	ver, _ := CalcMinVersion(classifyAll(t, []string{
		`#EXT-X-KEY:METHOD=AES-128,URI="key",KEYFORMAT="identity"`,
	}))
	is.Equal(ver, uint8(5))
}

func TestCalcMinVersionKeyformatVersions(t *testing.T) {
	is := is.New(t)
	ver, _ := CalcMinVersion(classifyAll(t, []string{
		`#EXT-X-KEY:METHOD=AES-128,URI="key",KEYFORMATVERSIONS="1/2"`,
	}))
	is.Equal(ver, uint8(5))
}

func TestCalcMinVersionMediaServiceInstreamID(t *testing.T) {
	is := is.New(t)
	ver, _ := CalcMinVersion(classifyAll(t, []string{
		`#EXT-X-MEDIA:TYPE=CLOSED-CAPTIONS,GROUP-ID="cc",NAME="English",INSTREAM-ID="SERVICE1"`,
	}))
	is.Equal(ver, uint8(7))
}

func TestCalcMinVersionMediaInstreamIDNonClosedCaptions(t *testing.T) {
	is := is.New(t)
	ver, _ := CalcMinVersion(classifyAll(t, []string{
		`#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID="aud",NAME="English",INSTREAM-ID="CC1"`,
	}))
	is.Equal(ver, uint8(13))
}

func TestCalcMinVersionDefine(t *testing.T) {
	is := is.New(t)
	ver, _ := CalcMinVersion(classifyAll(t, []string{
		`#EXT-X-DEFINE:NAME="x",VALUE="y"`,
	}))
	is.Equal(ver, uint8(8))
}

func TestCalcMinVersionSkip(t *testing.T) {
	is := is.New(t)
	ver, _ := CalcMinVersion(classifyAll(t, []string{
		`#EXT-X-SKIP:SKIPPED-SEGMENTS=10`,
	}))
	is.Equal(ver, uint8(9))
}

func TestCalcMinVersionDefineQueryParam(t *testing.T) {
	is := is.New(t)
	ver, _ := CalcMinVersion(classifyAll(t, []string{
		`#EXT-X-DEFINE:QUERYPARAM="token"`,
	}))
	is.Equal(ver, uint8(11))
}

func TestCalcMinVersionReqVideoLayout(t *testing.T) {
	is := is.New(t)
	ver, _ := CalcMinVersion(classifyAll(t, []string{
		`#EXT-X-STREAM-INF:BANDWIDTH=1000000,REQ-VIDEO-LAYOUT="CH-STEREO"`,
		`video.m3u8`,
	}))
	is.Equal(ver, uint8(12))
}

func TestCalcMinVersionHighestWins(t *testing.T) {
	is := is.New(t)
	ver, _ := CalcMinVersion(classifyAll(t, []string{
		`#EXT-X-BYTERANGE:1024@0`,
		`#EXT-X-DEFINE:QUERYPARAM="token"`,
	}))
	is.Equal(ver, uint8(11))
}
