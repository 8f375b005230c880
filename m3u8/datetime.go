package m3u8

/*
 This file defines DateTime and its byte-level parser, used both as a
 standalone ParsedTagValue shape and embedded inside attribute decoding
 (e.g. EXT-X-DATERANGE's START-DATE / END-DATE).
*/

import "fmt"

// DateTime is an RFC 3339 date-time with sub-second precision preserved as
// a float rather than truncated to nanoseconds.
type DateTime struct {
	Year    uint32
	Month   uint8
	MDay    uint8
	Hour    uint8
	Minute  uint8
	Second  float64
	TZHour  int8
	TZMinute uint8
}

// String renders the date-time as "YYYY-MM-DDThh:mm:ss.sssZ" for a zero
// offset, or "...±hh:mm" otherwise. Fractional seconds always carry three
// digits.
func (d DateTime) String() string {
	s := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%06.3f", d.Year, d.Month, d.MDay, d.Hour, d.Minute, d.Second)
	if d.TZHour == 0 && d.TZMinute == 0 {
		return s + "Z"
	}
	sign := "+"
	hour := d.TZHour
	if hour < 0 {
		sign = "-"
		hour = -hour
	}
	return fmt.Sprintf("%s%s%02d:%02d", s, sign, hour, d.TZMinute)
}

// dateTimeParseResult is the outcome of parseDateTime: the decoded value and
// whatever bytes follow the timezone component (suitable for embedding
// inside a larger parser loop).
type dateTimeParseResult struct {
	Parsed    DateTime
	Remaining []byte
}

// parseDateTime decodes "YYYY-MM-DDThh:mm:ss[.sss...]TZ" where the
// date-time separator is 'T', 't', or a single space (RFC 3339 §5.6), and
// TZ is "Z"/"z" or "+hh:mm"/"-hh:mm". After the timezone the only permitted
// remainder is a line terminator, which the caller (already having had its
// terminator stripped per §3.3) will normally find empty.
func parseDateTime(b []byte) (dateTimeParseResult, error) {
	if len(b) < 19 {
		return dateTimeParseResult{}, &DateTimeSyntaxError{Field: "length", Reason: "too short for YYYY-MM-DDThh:mm:ss"}
	}
	year, err := parseU32(b[0:4])
	if err != nil {
		return dateTimeParseResult{}, &DateTimeSyntaxError{Field: "year", Reason: err.Error()}
	}
	if b[4] != '-' {
		return dateTimeParseResult{}, &DateTimeSyntaxError{Field: "separator", Reason: "expected '-' after year"}
	}
	month, err := parseU8(b[5:7])
	if err != nil {
		return dateTimeParseResult{}, &DateTimeSyntaxError{Field: "month", Reason: err.Error()}
	}
	if b[7] != '-' {
		return dateTimeParseResult{}, &DateTimeSyntaxError{Field: "separator", Reason: "expected '-' after month"}
	}
	mday, err := parseU8(b[8:10])
	if err != nil {
		return dateTimeParseResult{}, &DateTimeSyntaxError{Field: "day", Reason: err.Error()}
	}
	switch b[10] {
	case 'T', 't', ' ':
	default:
		return dateTimeParseResult{}, &DateTimeSyntaxError{Field: "separator", Reason: "expected 'T', 't' or ' ' between date and time"}
	}
	hour, err := parseU8(b[11:13])
	if err != nil {
		return dateTimeParseResult{}, &DateTimeSyntaxError{Field: "hour", Reason: err.Error()}
	}
	if b[13] != ':' {
		return dateTimeParseResult{}, &DateTimeSyntaxError{Field: "separator", Reason: "expected ':' after hour"}
	}
	minute, err := parseU8(b[14:16])
	if err != nil {
		return dateTimeParseResult{}, &DateTimeSyntaxError{Field: "minute", Reason: err.Error()}
	}
	if b[16] != ':' {
		return dateTimeParseResult{}, &DateTimeSyntaxError{Field: "separator", Reason: "expected ':' after minute"}
	}

	tzIdx := -1
	for i := 17; i < len(b); i++ {
		switch b[i] {
		case 'Z', 'z', '+', '-':
			tzIdx = i
		}
		if tzIdx != -1 {
			break
		}
	}
	if tzIdx == -1 {
		return dateTimeParseResult{}, &DateTimeSyntaxError{Field: "timezone", Reason: "no timezone found"}
	}
	second, err := parseFloat(b[17:tzIdx])
	if err != nil {
		return dateTimeParseResult{}, &DateTimeSyntaxError{Field: "second", Reason: err.Error()}
	}

	var tzHour int8
	var tzMinute uint8
	var rest []byte
	switch b[tzIdx] {
	case 'Z', 'z':
		rest = b[tzIdx+1:]
	case '+', '-':
		if len(b)-tzIdx < 6 || b[tzIdx+3] != ':' {
			return dateTimeParseResult{}, &DateTimeSyntaxError{Field: "timezone", Reason: "expected ±hh:mm"}
		}
		h, err := parseU8(b[tzIdx+1 : tzIdx+3])
		if err != nil {
			return dateTimeParseResult{}, &DateTimeSyntaxError{Field: "timezone hour", Reason: err.Error()}
		}
		m, err := parseU8(b[tzIdx+4 : tzIdx+6])
		if err != nil {
			return dateTimeParseResult{}, &DateTimeSyntaxError{Field: "timezone minute", Reason: err.Error()}
		}
		tzHour = int8(h)
		if b[tzIdx] == '-' {
			tzHour = -tzHour
		}
		tzMinute = m
		rest = b[tzIdx+6:]
	}
	if len(rest) != 0 && string(rest) != "\n" && string(rest) != "\r\n" {
		return dateTimeParseResult{}, &DateTimeSyntaxError{Field: "trailing", Reason: "unexpected bytes after timezone"}
	}

	return dateTimeParseResult{
		Parsed: DateTime{
			Year: year, Month: month, MDay: mday,
			Hour: hour, Minute: minute, Second: second,
			TZHour: tzHour, TZMinute: tzMinute,
		},
		Remaining: rest,
	}, nil
}
