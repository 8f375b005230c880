package m3u8

/*
 AllowedCpc models ALLOWED-CPC: a comma-separated list of
 "<KEYFORMAT>:<LABEL>[/<LABEL>...]" entries. KEYFORMAT has no syntactic
 restriction (it may itself contain ':'), so this parser treats the first
 ':' after a comma or string start as the separator — documented here as a
 known source of surprise for future KEYFORMAT values.
*/

import "strings"

// FairPlayStreamingKeyformat is the well-known FairPlay KEYFORMAT used by
// the convenience wrappers below.
const FairPlayStreamingKeyformat = "com.apple.streamingkeydelivery"

// AllowedCpc is the parsed/mutable form of ALLOWED-CPC.
type AllowedCpc struct {
	// order preserves first-seen KEYFORMAT order; labels preserves
	// first-seen label order within a KEYFORMAT.
	order  []string
	labels map[string][]string
}

// ParseAllowedCpc parses the quoted-string value of ALLOWED-CPC.
func ParseAllowedCpc(s string) AllowedCpc {
	a := AllowedCpc{labels: make(map[string][]string)}
	for _, entry := range splitNonEmpty(s, ",") {
		colon := strings.IndexByte(entry, ':')
		if colon < 0 {
			continue
		}
		keyformat := entry[:colon]
		labels := splitNonEmpty(entry[colon+1:], "/")
		if _, ok := a.labels[keyformat]; !ok {
			a.order = append(a.order, keyformat)
		}
		a.labels[keyformat] = append(a.labels[keyformat], labels...)
	}
	return a
}

// AllowedCpcForKeyformat returns the labels registered for keyformat, in
// first-seen order.
func (a AllowedCpc) AllowedCpcForKeyformat(keyformat string) []string {
	return append([]string(nil), a.labels[keyformat]...)
}

// InsertCpcForKeyformat idempotently adds label under keyformat, creating
// the entry if absent. Returns true if the call changed the value.
func (a *AllowedCpc) InsertCpcForKeyformat(keyformat, label string) bool {
	if a.labels == nil {
		a.labels = make(map[string][]string)
	}
	for _, l := range a.labels[keyformat] {
		if l == label {
			return false
		}
	}
	if _, ok := a.labels[keyformat]; !ok {
		a.order = append(a.order, keyformat)
	}
	a.labels[keyformat] = append(a.labels[keyformat], label)
	return true
}

// RemoveCpcForKeyformat removes label from keyformat; if it was the last
// label, the keyformat entry itself is removed. Returns true if the call
// changed the value.
func (a *AllowedCpc) RemoveCpcForKeyformat(keyformat, label string) bool {
	labels := a.labels[keyformat]
	for i, l := range labels {
		if l == label {
			a.labels[keyformat] = append(labels[:i], labels[i+1:]...)
			if len(a.labels[keyformat]) == 0 {
				delete(a.labels, keyformat)
				for j, k := range a.order {
					if k == keyformat {
						a.order = append(a.order[:j], a.order[j+1:]...)
						break
					}
				}
			}
			return true
		}
	}
	return false
}

// AllowedCpcForFairPlayStreaming and the insert/remove wrappers below are
// convenience accessors for the constant FairPlay keyformat.
func (a AllowedCpc) AllowedCpcForFairPlayStreaming() []string {
	return a.AllowedCpcForKeyformat(FairPlayStreamingKeyformat)
}

func (a *AllowedCpc) InsertCpcForFairPlayStreaming(label string) bool {
	return a.InsertCpcForKeyformat(FairPlayStreamingKeyformat, label)
}

func (a *AllowedCpc) RemoveCpcForFairPlayStreaming(label string) bool {
	return a.RemoveCpcForKeyformat(FairPlayStreamingKeyformat, label)
}

// String renders the value back to its comma-separated form.
func (a AllowedCpc) String() string {
	entries := make([]string, 0, len(a.order))
	for _, k := range a.order {
		entries = append(entries, k+":"+strings.Join(a.labels[k], "/"))
	}
	return strings.Join(entries, ",")
}
