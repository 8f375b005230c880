package m3u8

/*
 EXT-X-PLAYLIST-TYPE: value is the literal "VOD" or "EVENT".
*/

// PlaylistTypeTag is the EXT-X-PLAYLIST-TYPE tag.
type PlaylistTypeTag struct {
	tagBase
	value HlsPlaylistType
}

func (p *PlaylistTypeTag) Name() string { return TagPlaylistType }

// Value returns the current playlist type.
func (p *PlaylistTypeTag) Value() HlsPlaylistType { return p.value }

// SetValue overwrites the playlist type and marks the tag dirty.
func (p *PlaylistTypeTag) SetValue(v HlsPlaylistType) {
	p.value = v
	p.markDirty()
}

func (p *PlaylistTypeTag) Serialize() []byte {
	return p.serializeWith(func() []byte {
		return []byte("#EXT" + TagPlaylistType + ":" + p.value.String())
	})
}

func newPlaylistType(u UnknownTag) (*PlaylistTypeTag, error) {
	v, err := u.TagValue().PlaylistType()
	if err != nil {
		return nil, err
	}
	return &PlaylistTypeTag{tagBase: tagBase{outputLine: u.Original}, value: v}, nil
}

// NewPlaylistTypeTag builds a fresh EXT-X-PLAYLIST-TYPE tag, already dirty.
func NewPlaylistTypeTag(v HlsPlaylistType) *PlaylistTypeTag {
	return &PlaylistTypeTag{tagBase: tagBase{dirty: true}, value: v}
}
