package m3u8

/*
 EXTINF: "#EXTINF:<duration>[,<title>]". Duration is a float even for an
 integer-only input; title may be empty.
*/

// Inf is the EXTINF tag.
type Inf struct {
	tagBase
	duration float64
	title    string
}

func (i *Inf) Name() string { return TagInf }

// Duration returns the segment duration in seconds.
func (i *Inf) Duration() float64 { return i.duration }

// Title returns the segment title, possibly empty.
func (i *Inf) Title() string { return i.title }

// SetDuration overwrites the duration and marks the tag dirty.
func (i *Inf) SetDuration(d float64) {
	i.duration = d
	i.markDirty()
}

// SetTitle overwrites the title and marks the tag dirty.
func (i *Inf) SetTitle(t string) {
	i.title = t
	i.markDirty()
}

func (i *Inf) Serialize() []byte {
	return i.serializeWith(func() []byte {
		return []byte("#EXT" + TagInf + ":" + formatFloat(i.duration) + "," + i.title)
	})
}

func newInf(u UnknownTag) (*Inf, error) {
	pv, err := u.TagValue().DecimalFloatingPointWithOptionalTitle()
	if err != nil {
		return nil, err
	}
	return &Inf{tagBase: tagBase{outputLine: u.Original}, duration: pv.Float, title: pv.Title}, nil
}

// NewInf builds a fresh EXTINF tag, already dirty.
func NewInf(duration float64, title string) *Inf {
	return &Inf{tagBase: tagBase{dirty: true}, duration: duration, title: title}
}
