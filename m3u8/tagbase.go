package m3u8

/*
 This file defines tagBase, the embedded state every typed-tag wrapper
 shares: the retained original line bytes and the dirty flag. Each wrapper embeds
 tagBase and implements its own Serialize(), which hands serializeWith below
 a closure that re-assembles the line when dirty.
*/

type tagBase struct {
	outputLine []byte
	dirty      bool
}

func (t *tagBase) IsDirty() bool { return t.dirty }

func (t *tagBase) markDirty() { t.dirty = true }

// serializeWith returns t's serialized bytes: the retained original when
// clean, or the freshly synthesized form when dirty (caching the result
// and clearing dirty).
func (t *tagBase) serializeWith(synthesize func() []byte) []byte {
	if !t.dirty {
		return t.outputLine
	}
	t.outputLine = synthesize()
	t.dirty = false
	return t.outputLine
}
