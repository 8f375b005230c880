package m3u8

/*
 EXT-X-BYTERANGE: "#EXT-X-BYTERANGE:<length>[@<offset>]".
 Offset is optional both on input and output: clearing it and
 re-serializing drops the "@<offset>" suffix entirely.
*/

// Byterange is the EXT-X-BYTERANGE tag.
type Byterange struct {
	tagBase
	length uint64
	offset *uint64
}

func (b *Byterange) Name() string { return TagByterange }

// Length returns the byte range length.
func (b *Byterange) Length() uint64 { return b.length }

// Offset returns the byte range offset and whether it was present.
func (b *Byterange) Offset() (uint64, bool) {
	if b.offset == nil {
		return 0, false
	}
	return *b.offset, true
}

// SetLength overwrites the length and marks the tag dirty.
func (b *Byterange) SetLength(n uint64) {
	b.length = n
	b.markDirty()
}

// SetOffset overwrites the offset and marks the tag dirty.
func (b *Byterange) SetOffset(n uint64) {
	b.offset = &n
	b.markDirty()
}

// UnsetOffset clears the offset and marks the tag dirty.
func (b *Byterange) UnsetOffset() {
	b.offset = nil
	b.markDirty()
}

func (b *Byterange) Serialize() []byte {
	return b.serializeWith(func() []byte {
		s := "#EXT" + TagByterange + ":" + uitoa(b.length)
		if b.offset != nil {
			s += "@" + uitoa(*b.offset)
		}
		return []byte(s)
	})
}

func newByterange(u UnknownTag) (*Byterange, error) {
	pv, err := u.TagValue().DecimalIntegerRange()
	if err != nil {
		return nil, err
	}
	return &Byterange{tagBase: tagBase{outputLine: u.Original}, length: pv.RangeLength, offset: pv.RangeOffset}, nil
}

// NewByterange builds a fresh EXT-X-BYTERANGE tag, already dirty. Pass a
// nil offset for a length-only range.
func NewByterange(length uint64, offset *uint64) *Byterange {
	return &Byterange{tagBase: tagBase{dirty: true}, length: length, offset: offset}
}
