package m3u8

/*
 EXT-X-PROGRAM-DATE-TIME: "#EXT-X-PROGRAM-DATE-TIME:<date-time>", the
 ParsedTagValue::DateTime shape.
*/

// ProgramDateTime is the EXT-X-PROGRAM-DATE-TIME tag.
type ProgramDateTime struct {
	tagBase
	value DateTime
}

func (p *ProgramDateTime) Name() string { return TagProgramDateTime }

// Value returns the associated date-time.
func (p *ProgramDateTime) Value() DateTime { return p.value }

// SetValue overwrites the date-time and marks the tag dirty.
func (p *ProgramDateTime) SetValue(v DateTime) {
	p.value = v
	p.markDirty()
}

func (p *ProgramDateTime) Serialize() []byte {
	return p.serializeWith(func() []byte {
		return []byte("#EXT" + TagProgramDateTime + ":" + p.value.String())
	})
}

func newProgramDateTime(u UnknownTag) (*ProgramDateTime, error) {
	pv, err := u.TagValue().DateTimeValue()
	if err != nil {
		return nil, err
	}
	return &ProgramDateTime{tagBase: tagBase{outputLine: u.Original}, value: pv.DateTime}, nil
}

// NewProgramDateTime builds a fresh EXT-X-PROGRAM-DATE-TIME tag, already
// dirty.
func NewProgramDateTime(v DateTime) *ProgramDateTime {
	return &ProgramDateTime{tagBase: tagBase{dirty: true}, value: v}
}
