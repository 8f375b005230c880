package m3u8

/*
 This file defines functions related to playlist generation, the write-side
 counterpart to reader.go: joining a []Line back into bytes, each line's own
 Bytes() already deciding between the retained original and a freshly
 synthesized form.
*/

import (
	"bytes"
	"io"
)

// WriteAll re-assembles lines into a single byte slice, one line per entry,
// terminated with "\n" — never "\r\n" — regardless of what terminators the
// original input used.
func WriteAll(lines []Line) []byte {
	var buf bytes.Buffer
	for _, l := range lines {
		buf.Write(l.Bytes())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// WriteTo writes lines to w via WriteAll.
func WriteTo(w io.Writer, lines []Line) (int64, error) {
	n, err := w.Write(WriteAll(lines))
	return int64(n), err
}
