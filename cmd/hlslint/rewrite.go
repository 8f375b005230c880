package main

import "github.com/hlstools/hls-m3u8/m3u8"

// rewritePlaylist parses data in full, strips every EXT-X-BYTERANGE offset,
// raises EXT-X-VERSION to whatever the remaining tags actually require, and
// re-serializes — exercising the dirty/clean mutation path against a real
// playlist rather than only tests.
func rewritePlaylist(data []byte) ([]byte, error) {
	lines, err := m3u8.ReadAll(data, m3u8.DefaultParsingOptions())
	if err != nil {
		return nil, err
	}

	for _, l := range lines {
		if l.Kind != m3u8.LineKnown {
			continue
		}
		if b, ok := l.Known.(*m3u8.Byterange); ok {
			if _, ok := b.Offset(); ok {
				b.UnsetOffset()
			}
		}
	}

	minVer, reason := m3u8.CalcMinVersion(lines)
	for _, l := range lines {
		if l.Kind != m3u8.LineKnown {
			continue
		}
		tag, ok := l.Known.(*m3u8.IntegerTag)
		if !ok || tag.Name() != m3u8.TagVersion {
			continue
		}
		if tag.Value() < uint64(minVer) {
			log.Infof("raising %s to %d: %s", m3u8.TagVersion, minVer, reason)
			tag.SetValue(uint64(minVer))
		}
	}

	return m3u8.WriteAll(lines), nil
}
