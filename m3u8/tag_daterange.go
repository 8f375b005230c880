package m3u8

/*
 EXT-X-DATERANGE: ID and START-DATE are required; CLASS, CUE, END-DATE,
 DURATION, PLANNED-DURATION, the three SCTE35-* attributes and
 END-ON-NEXT are all optional. Any attribute named "X-..." is an
 extension attribute collected separately via daterange_ext.go rather
 than merged into the typed fields above.

 When CLASS is "com.apple.hls.interstitial" the Interstitials appendix
 layers a second, typed view over the same extension attributes —
 Interstitial() exposes it without requiring the caller to know the
 individual X-ASSET-URI/X-RESUME-OFFSET/... names.

 SCTE35-CMD/OUT/IN are stored as their raw attribute value rather than
 forced through a single shape: real playlists disagree on whether these
 carry a hexadecimal-sequence or a quoted string, and this package
 preserves whichever form was present rather than reject one.
*/

// Daterange is the EXT-X-DATERANGE tag.
type Daterange struct {
	tagBase
	id              string
	startDate       DateTime
	class           LazyAttribute[string]
	cue             LazyAttribute[EnumeratedStringList]
	endDate         LazyAttribute[DateTime]
	duration        LazyAttribute[float64]
	plannedDuration LazyAttribute[float64]
	scte35Cmd       LazyAttribute[ExtAttrValue]
	scte35Out       LazyAttribute[ExtAttrValue]
	scte35In        LazyAttribute[ExtAttrValue]
	endOnNext       LazyAttribute[bool]
	extAttrs        []NamedExtAttr
}

func (d *Daterange) Name() string { return TagDaterange }

// ID returns ID.
func (d *Daterange) ID() string { return d.id }

// SetID overwrites ID and marks the tag dirty.
func (d *Daterange) SetID(v string) {
	d.id = v
	d.markDirty()
}

// StartDate returns START-DATE.
func (d *Daterange) StartDate() DateTime { return d.startDate }

// SetStartDate overwrites START-DATE and marks the tag dirty.
func (d *Daterange) SetStartDate(v DateTime) {
	d.startDate = v
	d.markDirty()
}

// Class returns CLASS, if present.
func (d *Daterange) Class() (string, bool) {
	v, ok, _ := d.class.Get(decodeQuotedString)
	return v, ok
}

// SetClass overwrites CLASS and marks the tag dirty.
func (d *Daterange) SetClass(v string) {
	d.class.Set(v)
	d.markDirty()
}

// Cue returns CUE, if present.
func (d *Daterange) Cue() (EnumeratedStringList, bool) {
	v, ok, _ := d.cue.Get(func(v AttributeValue) (EnumeratedStringList, error) {
		s, err := v.QuotedString()
		if err != nil {
			return EnumeratedStringList{}, err
		}
		return ParseEnumeratedStringList(s), nil
	})
	return v, ok
}

// SetCue overwrites CUE and marks the tag dirty.
func (d *Daterange) SetCue(v EnumeratedStringList) {
	d.cue.Set(v)
	d.markDirty()
}

// EndDate returns END-DATE, if present.
func (d *Daterange) EndDate() (DateTime, bool) {
	v, ok, _ := d.endDate.Get(func(v AttributeValue) (DateTime, error) {
		s, err := v.QuotedString()
		if err != nil {
			return DateTime{}, err
		}
		r, err := parseDateTime([]byte(s))
		if err != nil {
			return DateTime{}, err
		}
		return r.Parsed, nil
	})
	return v, ok
}

// SetEndDate overwrites END-DATE and marks the tag dirty.
func (d *Daterange) SetEndDate(v DateTime) {
	d.endDate.Set(v)
	d.markDirty()
}

// Duration returns DURATION, if present.
func (d *Daterange) Duration() (float64, bool) {
	v, ok, _ := d.duration.Get(decodeFloat64)
	return v, ok
}

// SetDuration overwrites DURATION and marks the tag dirty.
func (d *Daterange) SetDuration(v float64) {
	d.duration.Set(v)
	d.markDirty()
}

// PlannedDuration returns PLANNED-DURATION, if present.
func (d *Daterange) PlannedDuration() (float64, bool) {
	v, ok, _ := d.plannedDuration.Get(decodeFloat64)
	return v, ok
}

// SetPlannedDuration overwrites PLANNED-DURATION and marks the tag dirty.
func (d *Daterange) SetPlannedDuration(v float64) {
	d.plannedDuration.Set(v)
	d.markDirty()
}

func decodeScte35(v AttributeValue) (ExtAttrValue, error) { return decodeExtAttrValue(v) }

// Scte35Cmd returns SCTE35-CMD's raw value, if present.
func (d *Daterange) Scte35Cmd() (ExtAttrValue, bool) {
	v, ok, _ := d.scte35Cmd.Get(decodeScte35)
	return v, ok
}

// SetScte35Cmd overwrites SCTE35-CMD and marks the tag dirty.
func (d *Daterange) SetScte35Cmd(v ExtAttrValue) {
	d.scte35Cmd.Set(v)
	d.markDirty()
}

// Scte35Out returns SCTE35-OUT's raw value, if present.
func (d *Daterange) Scte35Out() (ExtAttrValue, bool) {
	v, ok, _ := d.scte35Out.Get(decodeScte35)
	return v, ok
}

// SetScte35Out overwrites SCTE35-OUT and marks the tag dirty.
func (d *Daterange) SetScte35Out(v ExtAttrValue) {
	d.scte35Out.Set(v)
	d.markDirty()
}

// Scte35In returns SCTE35-IN's raw value, if present.
func (d *Daterange) Scte35In() (ExtAttrValue, bool) {
	v, ok, _ := d.scte35In.Get(decodeScte35)
	return v, ok
}

// SetScte35In overwrites SCTE35-IN and marks the tag dirty.
func (d *Daterange) SetScte35In(v ExtAttrValue) {
	d.scte35In.Set(v)
	d.markDirty()
}

// EndOnNext reports END-ON-NEXT, defaulting to false.
func (d *Daterange) EndOnNext() bool { return getFlag(d.endOnNext) }

// SetEndOnNext overwrites END-ON-NEXT and marks the tag dirty.
func (d *Daterange) SetEndOnNext(v bool) {
	if v {
		d.endOnNext.Set(true)
	} else {
		d.endOnNext.Unset()
	}
	d.markDirty()
}

// ExtAttrs returns the tag's "X-..." extension attributes, in first-seen
// order.
func (d *Daterange) ExtAttrs() []NamedExtAttr {
	return append([]NamedExtAttr(nil), d.extAttrs...)
}

// ExtAttr looks up a single extension attribute by its full name (including
// the "X-" prefix).
func (d *Daterange) ExtAttr(name string) (ExtAttrValue, bool) {
	for _, a := range d.extAttrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return ExtAttrValue{}, false
}

// SetExtAttr inserts or overwrites an extension attribute and marks the tag
// dirty.
func (d *Daterange) SetExtAttr(name string, v ExtAttrValue) {
	for i, a := range d.extAttrs {
		if a.Name == name {
			d.extAttrs[i].Value = v
			d.markDirty()
			return
		}
	}
	d.extAttrs = append(d.extAttrs, NamedExtAttr{Name: name, Value: v})
	d.markDirty()
}

// Equal compares two EXT-X-DATERANGE tags using attribute-order-insensitive
// equality: every public getter is compared directly, and extension
// attributes compare as a set keyed by name, not by position.
func (d *Daterange) Equal(other *Daterange) bool {
	if d.id != other.id || d.startDate.String() != other.startDate.String() {
		return false
	}
	dc, dok := d.Class()
	oc, ook := other.Class()
	if dok != ook || dc != oc {
		return false
	}
	dcue, dcueok := d.Cue()
	ocue, ocueok := other.Cue()
	if dcueok != ocueok || dcue.String() != ocue.String() {
		return false
	}
	dend, dendok := d.EndDate()
	oend, oendok := other.EndDate()
	if dendok != oendok || dend.String() != oend.String() {
		return false
	}
	dd, ddok := d.Duration()
	od, odok := other.Duration()
	if ddok != odok || dd != od {
		return false
	}
	dpd, dpdok := d.PlannedDuration()
	opd, opdok := other.PlannedDuration()
	if dpdok != opdok || dpd != opd {
		return false
	}
	dcmd, dcmdok := d.Scte35Cmd()
	ocmd, ocmdok := other.Scte35Cmd()
	if dcmdok != ocmdok || dcmd != ocmd {
		return false
	}
	dout, doutok := d.Scte35Out()
	oout, ooutok := other.Scte35Out()
	if doutok != ooutok || dout != oout {
		return false
	}
	din, dinok := d.Scte35In()
	oin, oinok := other.Scte35In()
	if dinok != oinok || din != oin {
		return false
	}
	if d.EndOnNext() != other.EndOnNext() {
		return false
	}
	return extAttrsEqual(d.extAttrs, other.extAttrs)
}

// Interstitial returns the Interstitials-appendix typed view over this
// tag's extension attributes, or ok=false when CLASS is not
// "com.apple.hls.interstitial".
func (d *Daterange) Interstitial() (InterstitialView, bool) {
	class, ok := d.Class()
	if !ok || class != "com.apple.hls.interstitial" {
		return InterstitialView{}, false
	}
	return InterstitialView{d: d}, true
}

func (d *Daterange) Serialize() []byte {
	return d.serializeWith(func() []byte {
		var b attrBuilder
		b.str("ID", d.id)
		if v, ok := d.Class(); ok {
			b.str("CLASS", v)
		}
		b.str("START-DATE", d.startDate.String())
		if v, ok := d.Cue(); ok {
			b.str("CUE", v.String())
		}
		if v, ok := d.EndDate(); ok {
			b.str("END-DATE", v.String())
		}
		if v, ok := d.Duration(); ok {
			b.float("DURATION", v)
		}
		if v, ok := d.PlannedDuration(); ok {
			b.float("PLANNED-DURATION", v)
		}
		if v, ok := d.Scte35Cmd(); ok {
			b.raw("SCTE35-CMD", v.raw())
		}
		if v, ok := d.Scte35Out(); ok {
			b.raw("SCTE35-OUT", v.raw())
		}
		if v, ok := d.Scte35In(); ok {
			b.raw("SCTE35-IN", v.raw())
		}
		if d.EndOnNext() {
			b.flag("END-ON-NEXT")
		}
		for _, a := range d.extAttrs {
			b.raw(a.Name, a.Value.raw())
		}
		return b.build(TagDaterange)
	})
}

func newDaterange(u UnknownTag) (*Daterange, error) {
	pv, err := u.TagValue().AttributeListValue()
	if err != nil {
		return nil, err
	}
	idRaw, err := requireAttr(TagDaterange, pv.Attributes, "ID")
	if err != nil {
		return nil, err
	}
	id, err := idRaw.QuotedString()
	if err != nil {
		return nil, err
	}
	startRaw, err := requireAttr(TagDaterange, pv.Attributes, "START-DATE")
	if err != nil {
		return nil, err
	}
	startStr, err := startRaw.QuotedString()
	if err != nil {
		return nil, err
	}
	startR, err := parseDateTime([]byte(startStr))
	if err != nil {
		return nil, err
	}
	extAttrs, err := collectExtAttrs(pv.Attributes)
	if err != nil {
		return nil, err
	}
	return &Daterange{
		tagBase:         tagBase{outputLine: u.Original},
		id:              id,
		startDate:       startR.Parsed,
		class:           lazyFromAttrs[string](pv.Attributes, "CLASS"),
		cue:             lazyFromAttrs[EnumeratedStringList](pv.Attributes, "CUE"),
		endDate:         lazyFromAttrs[DateTime](pv.Attributes, "END-DATE"),
		duration:        lazyFromAttrs[float64](pv.Attributes, "DURATION"),
		plannedDuration: lazyFromAttrs[float64](pv.Attributes, "PLANNED-DURATION"),
		scte35Cmd:       lazyFromAttrs[ExtAttrValue](pv.Attributes, "SCTE35-CMD"),
		scte35Out:       lazyFromAttrs[ExtAttrValue](pv.Attributes, "SCTE35-OUT"),
		scte35In:        lazyFromAttrs[ExtAttrValue](pv.Attributes, "SCTE35-IN"),
		endOnNext:       lazyFromAttrs[bool](pv.Attributes, "END-ON-NEXT"),
		extAttrs:        extAttrs,
	}, nil
}

// NewDaterange builds a fresh EXT-X-DATERANGE tag, already dirty.
func NewDaterange(id string, startDate DateTime) *Daterange {
	return &Daterange{tagBase: tagBase{dirty: true}, id: id, startDate: startDate}
}

// InterstitialView is the Interstitials-appendix typed projection of an
// EXT-X-DATERANGE's extension attributes. Every getter reads d's current
// ExtAttrs live, so it reflects mutations made through
// Daterange.SetExtAttr.
type InterstitialView struct {
	d *Daterange
}

func (v InterstitialView) quoted(name string) (string, bool) {
	a, ok := v.d.ExtAttr(name)
	if !ok || a.Kind != ExtQuotedString {
		return "", false
	}
	return a.QuotedValue, true
}

func (v InterstitialView) float(name string) (float64, bool) {
	a, ok := v.d.ExtAttr(name)
	if !ok || a.Kind != ExtSignedFloat {
		return 0, false
	}
	return a.FloatValue, true
}

// AssetURI returns X-ASSET-URI, if present.
func (v InterstitialView) AssetURI() (string, bool) { return v.quoted("X-ASSET-URI") }

// AssetList returns X-ASSET-LIST, if present.
func (v InterstitialView) AssetList() (string, bool) { return v.quoted("X-ASSET-LIST") }

// ResumeOffset returns X-RESUME-OFFSET, if present.
func (v InterstitialView) ResumeOffset() (float64, bool) { return v.float("X-RESUME-OFFSET") }

// PlayoutLimit returns X-PLAYOUT-LIMIT, if present.
func (v InterstitialView) PlayoutLimit() (float64, bool) { return v.float("X-PLAYOUT-LIMIT") }

// Snap returns X-SNAP (OUT/IN members), if present.
func (v InterstitialView) Snap() (EnumeratedStringList, bool) {
	s, ok := v.quoted("X-SNAP")
	if !ok {
		return EnumeratedStringList{}, false
	}
	return ParseEnumeratedStringList(s), true
}

// Restrict returns X-RESTRICT (SKIP/JUMP members), if present.
func (v InterstitialView) Restrict() (EnumeratedStringList, bool) {
	s, ok := v.quoted("X-RESTRICT")
	if !ok {
		return EnumeratedStringList{}, false
	}
	return ParseEnumeratedStringList(s), true
}

// ContentMayVary reports X-CONTENT-MAY-VARY, defaulting to true (per the
// Interstitials appendix) when absent.
func (v InterstitialView) ContentMayVary() bool {
	s, ok := v.quoted("X-CONTENT-MAY-VARY")
	if !ok {
		return true
	}
	return s != "NO"
}

// TimelineOccupies returns X-TIMELINE-OCCUPIES, if present.
func (v InterstitialView) TimelineOccupies() (string, bool) { return v.quoted("X-TIMELINE-OCCUPIES") }

// TimelineStyle returns X-TIMELINE-STYLE, if present.
func (v InterstitialView) TimelineStyle() (string, bool) { return v.quoted("X-TIMELINE-STYLE") }

// SkipControlOffset returns X-SKIP-CONTROL-OFFSET, if present.
func (v InterstitialView) SkipControlOffset() (float64, bool) {
	return v.float("X-SKIP-CONTROL-OFFSET")
}

// SkipControlDuration returns X-SKIP-CONTROL-DURATION, if present.
func (v InterstitialView) SkipControlDuration() (float64, bool) {
	return v.float("X-SKIP-CONTROL-DURATION")
}

// SkipControlLabelID returns X-SKIP-CONTROL-LABEL-ID, if present.
func (v InterstitialView) SkipControlLabelID() (string, bool) {
	return v.quoted("X-SKIP-CONTROL-LABEL-ID")
}
