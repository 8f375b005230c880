package m3u8

/*
 EXT-X-SERVER-CONTROL: CAN-SKIP-UNTIL (float), CAN-SKIP-DATERANGES
 (YES/absent, default NO — only meaningful alongside CAN-SKIP-UNTIL),
 HOLD-BACK (float), PART-HOLD-BACK (float), CAN-BLOCK-RELOAD (YES/absent,
 default NO). Every attribute is optional; this tag's whole value may be an
 empty attribute list.
*/

// ServerControl is the EXT-X-SERVER-CONTROL tag.
type ServerControl struct {
	tagBase
	canSkipUntil     LazyAttribute[float64]
	canSkipDateranges LazyAttribute[bool]
	holdBack         LazyAttribute[float64]
	partHoldBack     LazyAttribute[float64]
	canBlockReload   LazyAttribute[bool]
}

func (s *ServerControl) Name() string { return TagServerControl }

// CanSkipUntil returns CAN-SKIP-UNTIL, if present.
func (s *ServerControl) CanSkipUntil() (float64, bool) {
	v, ok, _ := s.canSkipUntil.Get(decodeFloat64)
	return v, ok
}

// SetCanSkipUntil overwrites CAN-SKIP-UNTIL and marks the tag dirty.
func (s *ServerControl) SetCanSkipUntil(v float64) {
	s.canSkipUntil.Set(v)
	s.markDirty()
}

// UnsetCanSkipUntil clears CAN-SKIP-UNTIL and marks the tag dirty.
func (s *ServerControl) UnsetCanSkipUntil() {
	s.canSkipUntil.Unset()
	s.markDirty()
}

// CanSkipDateranges reports CAN-SKIP-DATERANGES, defaulting to false.
func (s *ServerControl) CanSkipDateranges() bool { return getFlag(s.canSkipDateranges) }

// SetCanSkipDateranges overwrites CAN-SKIP-DATERANGES and marks the tag dirty.
func (s *ServerControl) SetCanSkipDateranges(v bool) {
	if v {
		s.canSkipDateranges.Set(true)
	} else {
		s.canSkipDateranges.Unset()
	}
	s.markDirty()
}

// HoldBack returns HOLD-BACK, if present.
func (s *ServerControl) HoldBack() (float64, bool) {
	v, ok, _ := s.holdBack.Get(decodeFloat64)
	return v, ok
}

// SetHoldBack overwrites HOLD-BACK and marks the tag dirty.
func (s *ServerControl) SetHoldBack(v float64) {
	s.holdBack.Set(v)
	s.markDirty()
}

// PartHoldBack returns PART-HOLD-BACK, if present.
func (s *ServerControl) PartHoldBack() (float64, bool) {
	v, ok, _ := s.partHoldBack.Get(decodeFloat64)
	return v, ok
}

// SetPartHoldBack overwrites PART-HOLD-BACK and marks the tag dirty.
func (s *ServerControl) SetPartHoldBack(v float64) {
	s.partHoldBack.Set(v)
	s.markDirty()
}

// CanBlockReload reports CAN-BLOCK-RELOAD, defaulting to false.
func (s *ServerControl) CanBlockReload() bool { return getFlag(s.canBlockReload) }

// SetCanBlockReload overwrites CAN-BLOCK-RELOAD and marks the tag dirty.
func (s *ServerControl) SetCanBlockReload(v bool) {
	if v {
		s.canBlockReload.Set(true)
	} else {
		s.canBlockReload.Unset()
	}
	s.markDirty()
}

func (s *ServerControl) Serialize() []byte {
	return s.serializeWith(func() []byte {
		var b attrBuilder
		if v, ok := s.CanSkipUntil(); ok {
			b.float("CAN-SKIP-UNTIL", v)
		}
		if s.CanSkipDateranges() {
			b.flag("CAN-SKIP-DATERANGES")
		}
		if v, ok := s.HoldBack(); ok {
			b.float("HOLD-BACK", v)
		}
		if v, ok := s.PartHoldBack(); ok {
			b.float("PART-HOLD-BACK", v)
		}
		if s.CanBlockReload() {
			b.flag("CAN-BLOCK-RELOAD")
		}
		return b.build(TagServerControl)
	})
}

func newServerControl(u UnknownTag) (*ServerControl, error) {
	var pv ParsedTagValue
	if !u.TagValue().IsEmpty() {
		var err error
		if pv, err = u.TagValue().AttributeListValue(); err != nil {
			return nil, err
		}
	}
	return &ServerControl{
		tagBase:           tagBase{outputLine: u.Original},
		canSkipUntil:      lazyFromAttrs[float64](pv.Attributes, "CAN-SKIP-UNTIL"),
		canSkipDateranges: lazyFromAttrs[bool](pv.Attributes, "CAN-SKIP-DATERANGES"),
		holdBack:          lazyFromAttrs[float64](pv.Attributes, "HOLD-BACK"),
		partHoldBack:      lazyFromAttrs[float64](pv.Attributes, "PART-HOLD-BACK"),
		canBlockReload:    lazyFromAttrs[bool](pv.Attributes, "CAN-BLOCK-RELOAD"),
	}, nil
}

// NewServerControl builds a fresh, empty EXT-X-SERVER-CONTROL tag, already
// dirty.
func NewServerControl() *ServerControl {
	return &ServerControl{tagBase: tagBase{dirty: true}}
}
