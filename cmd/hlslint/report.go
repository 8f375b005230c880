package main

import (
	"bytes"

	"github.com/hlstools/hls-m3u8/m3u8"
)

// lineReport is one classified line, numbered from 1.
type lineReport struct {
	number int
	kind   m3u8.LineKind
}

// lintError pins a classification failure to its 1-based line number.
type lintError struct {
	line int
	err  error
}

// playlistReport is the outcome of lintPlaylist: every line classified
// before the first failure (if any).
type playlistReport struct {
	lines []lineReport
}

// lintPlaylist classifies data one line at a time, rather than going
// through m3u8.ReadAll, so a failure can be pinned to the line that
// produced it instead of the whole input being discarded.
func lintPlaylist(path string, data []byte) (playlistReport, *lintError) {
	var report playlistReport
	opts := m3u8.DefaultParsingOptions()

	number := 0
	for _, raw := range splitLines(data) {
		number++
		line, err := m3u8.ClassifyLine(raw, opts)
		if err != nil {
			return report, &lintError{line: number, err: err}
		}
		report.lines = append(report.lines, lineReport{number: number, kind: line.Kind})
	}
	return report, nil
}

// splitLines breaks data on '\n', stripping a '\r' that precedes each '\n'.
// This matches m3u8.ReadAll's own splitting exactly: a terminator already
// consumed leaves nothing more to classify, so the empty piece after a
// final '\n' is dropped rather than counted as one more blank line — the
// same rule ReadAll applies — while a wholly empty input still yields one
// blank line, and genuine interior blank lines are kept.
func splitLines(data []byte) [][]byte {
	parts := bytes.Split(data, []byte("\n"))
	for i := 0; i < len(parts)-1; i++ {
		parts[i] = bytes.TrimSuffix(parts[i], []byte("\r"))
	}
	if len(parts) > 1 && len(parts[len(parts)-1]) == 0 {
		parts = parts[:len(parts)-1]
	}
	return parts
}
