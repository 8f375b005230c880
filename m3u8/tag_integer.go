package m3u8

/*
 This file implements the HLS tags whose whole value is a single decimal
 integer: EXT-X-VERSION, EXT-X-TARGETDURATION, EXT-X-MEDIA-SEQUENCE,
 EXT-X-DISCONTINUITY-SEQUENCE and EXT-X-BITRATE. Like FlagTag, these five
 share one IntegerTag implementation rather than five near-identical
 structs.
*/

// IntegerTag is a known tag whose value decodes to ParsedTagValue::
// DecimalInteger.
type IntegerTag struct {
	tagBase
	tagName string
	value   uint64
}

func (i *IntegerTag) Name() string { return i.tagName }

// Value returns the tag's current integer value.
func (i *IntegerTag) Value() uint64 { return i.value }

// SetValue overwrites the tag's value and marks it dirty.
func (i *IntegerTag) SetValue(v uint64) {
	i.value = v
	i.markDirty()
}

func (i *IntegerTag) Serialize() []byte {
	return i.serializeWith(func() []byte {
		return []byte("#EXT" + i.tagName + ":" + uitoa(i.value))
	})
}

func newIntegerTag(u UnknownTag, name string) (*IntegerTag, error) {
	pv, err := u.TagValue().DecimalInteger()
	if err != nil {
		return nil, err
	}
	return &IntegerTag{tagBase: tagBase{outputLine: u.Original}, tagName: name, value: pv.Integer}, nil
}

// NewIntegerTag builds a fresh integer tag, already dirty.
func NewIntegerTag(name string, value uint64) *IntegerTag {
	return &IntegerTag{tagBase: tagBase{dirty: true}, tagName: name, value: value}
}

func newVersion(u UnknownTag) (*IntegerTag, error)       { return newIntegerTag(u, TagVersion) }
func newTargetDuration(u UnknownTag) (*IntegerTag, error) {
	return newIntegerTag(u, TagTargetDuration)
}
func newMediaSequence(u UnknownTag) (*IntegerTag, error) {
	return newIntegerTag(u, TagMediaSequence)
}
func newDiscontinuitySequence(u UnknownTag) (*IntegerTag, error) {
	return newIntegerTag(u, TagDiscontinuitySeq)
}
func newBitrate(u UnknownTag) (*IntegerTag, error) { return newIntegerTag(u, TagBitrate) }
