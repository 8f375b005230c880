package m3u8

import "math"

// MinVersion is the lowest EXT-X-VERSION this package assumes a playlist
// carries when nothing forces it higher.
const MinVersion uint8 = 1

func updateMinVersion(ver *uint8, reason *string, newVer uint8, newReason string) {
	if newVer <= *ver {
		return
	}
	*ver = newVer
	*reason = newReason
}

// CalcMinVersion scans a classified line sequence and returns the lowest
// EXT-X-VERSION the HLS Protocol Version Compatibility table requires for
// the tags actually present, along with a human-readable reason for that
// requirement. It does not look at any existing EXT-X-VERSION tag — callers
// decide whether to raise, lower, or leave alone what is already there.
func CalcMinVersion(lines []Line) (ver uint8, reason string) {
	ver = MinVersion
	reason = "no version-gated feature present"

	hasIFramesOnly := false
	for _, l := range lines {
		if l.Kind != LineKnown {
			continue
		}
		if f, ok := l.Known.(*FlagTag); ok && f.Name() == TagIFramesOnly {
			hasIFramesOnly = true
			break
		}
	}

	for _, l := range lines {
		if l.Kind != LineKnown {
			continue
		}
		switch tag := l.Known.(type) {
		case *Key:
			if _, ok := tag.IV(); ok {
				updateMinVersion(&ver, &reason, 2, "IV attribute of the EXT-X-KEY tag")
			}
			if m, ok := tag.Method().Known(); ok && m == MethodSampleAES {
				updateMinVersion(&ver, &reason, 5, "EXT-X-KEY tag with a METHOD of SAMPLE-AES")
			}
			if !tag.keyformat.IsNone() {
				updateMinVersion(&ver, &reason, 5, "KEYFORMAT attribute of the EXT-X-KEY tag")
			}
			if !tag.keyformatVersions.IsNone() {
				updateMinVersion(&ver, &reason, 5, "KEYFORMATVERSIONS attribute of the EXT-X-KEY tag")
			}

		case *Inf:
			if tag.Duration() != math.Trunc(tag.Duration()) {
				updateMinVersion(&ver, &reason, 3, "floating-point EXTINF duration value")
			}

		case *Byterange:
			updateMinVersion(&ver, &reason, 4, "EXT-X-BYTERANGE tag")

		case *Map:
			updateMinVersion(&ver, &reason, 5, "EXT-X-MAP tag")
			if !hasIFramesOnly {
				updateMinVersion(&ver, &reason, 6, "EXT-X-MAP tag in a playlist that does not contain EXT-X-I-FRAMES-ONLY")
			}

		case *Media:
			if id, ok := tag.InstreamID(); ok {
				if len(id) >= len("SERVICE") && id[:len("SERVICE")] == "SERVICE" {
					updateMinVersion(&ver, &reason, 7, `SERVICE value for the INSTREAM-ID attribute of the EXT-X-MEDIA tag`)
				}
				if typ, ok := tag.Type().Known(); !ok || typ != MediaClosedCaptions {
					updateMinVersion(&ver, &reason, 13, "EXT-X-MEDIA tag with INSTREAM-ID attribute for a non-CLOSED-CAPTIONS TYPE")
				}
			}

		case *Define:
			updateMinVersion(&ver, &reason, 8, "variable substitution (EXT-X-DEFINE)")
			if tag.Kind() == DefineQueryParam {
				updateMinVersion(&ver, &reason, 11, "EXT-X-DEFINE tag with a QUERYPARAM attribute")
			}

		case *Skip:
			updateMinVersion(&ver, &reason, 9, "EXT-X-SKIP tag")

		case *StreamInf:
			if _, ok := tag.VideoLayout(); ok {
				updateMinVersion(&ver, &reason, 12, `attribute whose name starts with "REQ-"`)
			}

		case *IFrameStreamInf:
			if _, ok := tag.VideoLayout(); ok {
				updateMinVersion(&ver, &reason, 12, `attribute whose name starts with "REQ-"`)
			}
		}
	}

	return ver, reason
}
