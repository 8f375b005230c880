package m3u8

/*
 This file defines the leaf byte utilities: splitting a buffer on line
 terminators and parsing unsigned integers and floats straight from byte
 slices, without an intermediate string allocation on the hot path.
*/

import (
	"strconv"
)

// SplitResult is the outcome of splitOnNewLine: the bytes before the first
// line terminator, and whatever bytes remain after it (nil if the input
// contained no terminator at all).
type SplitResult struct {
	Parsed    []byte
	Remaining []byte
	HasMore   bool
}

// splitOnNewLine returns the prefix of data up to (but not including) the
// first LF, with a trailing CR stripped. If no LF is present, the whole
// input is returned as Parsed and HasMore is false. If LF is the final
// byte, Remaining is a non-nil empty slice and HasMore is true.
func splitOnNewLine(data []byte) SplitResult {
	for i, b := range data {
		if b == '\n' {
			end := i
			if end > 0 && data[end-1] == '\r' {
				end--
			}
			return SplitResult{Parsed: data[:end], Remaining: data[i+1:], HasMore: true}
		}
	}
	return SplitResult{Parsed: data, HasMore: false}
}

// parseU64 parses an unsigned decimal integer from bytes. It rejects empty
// input, any byte outside '0'..'9', and overflow. No leading whitespace, no
// sign, no radix prefix.
func parseU64(b []byte) (uint64, error) {
	if len(b) == 0 {
		return 0, &TagValueSyntaxError{Reason: "empty decimal integer"}
	}
	var n uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, &TagValueSyntaxError{Reason: "invalid digit in decimal integer", Offending: c, HasByte: true}
		}
		d := uint64(c - '0')
		if n > (1<<64-1-d)/10 {
			return 0, &TagValueSyntaxError{Reason: "decimal integer overflow"}
		}
		n = n*10 + d
	}
	return n, nil
}

// parseU32 parses an unsigned 32-bit decimal integer from bytes, applying
// the same grammar as parseU64.
func parseU32(b []byte) (uint32, error) {
	n, err := parseU64(b)
	if err != nil {
		return 0, err
	}
	if n > 0xffffffff {
		return 0, &TagValueSyntaxError{Reason: "decimal integer overflow for 32-bit field"}
	}
	return uint32(n), nil
}

// parseU8 parses an unsigned 8-bit decimal integer from bytes, applying the
// same grammar as parseU64.
func parseU8(b []byte) (uint8, error) {
	n, err := parseU64(b)
	if err != nil {
		return 0, err
	}
	if n > 0xff {
		return 0, &TagValueSyntaxError{Reason: "decimal integer overflow for 8-bit field"}
	}
	return uint8(n), nil
}

// parseFloat parses an IEEE 754 decimal float with optional leading sign,
// optional fractional part, and optional exponent, delegating the actual
// decimal-to-binary conversion to strconv rather than hand-rolling it.
func parseFloat(b []byte) (float64, error) {
	if len(b) == 0 {
		return 0, &TagValueSyntaxError{Reason: "empty decimal floating point value"}
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return 0, &TagValueSyntaxError{Reason: "invalid decimal floating point value: " + err.Error()}
	}
	return f, nil
}
