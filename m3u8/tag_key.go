package m3u8

/*
 EXT-X-KEY / EXT-X-SESSION-KEY: METHOD (enumerated, required), URI (quoted,
 conditionally needed unless METHOD=NONE — left to the caller to enforce,
 per the Non-goal that this package does not validate cross-attribute
 invariants), IV (hexadecimal-sequence), KEYFORMAT (quoted, default
 "identity"), KEYFORMATVERSIONS (quoted, slash-separated integers).
 EXT-X-SESSION-KEY shares the identical attribute set and is implemented as
 the same Key struct with a different tag name, since the HLS spec defines
 it as "EXT-X-KEY with playlist rather than segment scope" — no field
 differs.
*/

// KeyMethod is EXT-X-KEY's METHOD attribute.
type KeyMethod int

const (
	MethodNone KeyMethod = iota
	MethodAES128
	MethodSampleAES
	MethodSampleAESCTR
	MethodISO23001_7
)

func (m KeyMethod) String() string {
	switch m {
	case MethodNone:
		return "NONE"
	case MethodAES128:
		return "AES-128"
	case MethodSampleAES:
		return "SAMPLE-AES"
	case MethodSampleAESCTR:
		return "SAMPLE-AES-CTR"
	case MethodISO23001_7:
		return "ISO-23001-7"
	}
	return ""
}

func lookupKeyMethod(s string) (KeyMethod, bool) {
	switch s {
	case "NONE":
		return MethodNone, true
	case "AES-128":
		return MethodAES128, true
	case "SAMPLE-AES":
		return MethodSampleAES, true
	case "SAMPLE-AES-CTR":
		return MethodSampleAESCTR, true
	case "ISO-23001-7":
		return MethodISO23001_7, true
	}
	return 0, false
}

// Key is the EXT-X-KEY / EXT-X-SESSION-KEY tag.
type Key struct {
	tagBase
	tagName           string
	method            EnumeratedString[KeyMethod]
	uri               LazyAttribute[string]
	iv                LazyAttribute[string]
	keyformat         LazyAttribute[string]
	keyformatVersions LazyAttribute[string]
}

func (k *Key) Name() string { return k.tagName }

// Method returns the decryption method.
func (k *Key) Method() EnumeratedString[KeyMethod] { return k.method }

// SetMethod overwrites METHOD and marks the tag dirty.
func (k *Key) SetMethod(m KeyMethod) {
	k.method = KnownEnumeratedString(m)
	k.markDirty()
}

// URI returns the key URI, if present.
func (k *Key) URI() (string, bool) {
	v, ok, _ := k.uri.Get(decodeQuotedString)
	return v, ok
}

// SetURI overwrites URI and marks the tag dirty.
func (k *Key) SetURI(v string) {
	k.uri.Set(v)
	k.markDirty()
}

// UnsetURI clears URI and marks the tag dirty.
func (k *Key) UnsetURI() {
	k.uri.Unset()
	k.markDirty()
}

// IV returns the initialization vector as a hexadecimal-sequence string,
// if present.
func (k *Key) IV() (string, bool) {
	v, ok, _ := k.iv.Get(func(v AttributeValue) (string, error) { return v.RawString(), nil })
	return v, ok
}

// SetIV overwrites IV (expected in "0x..." form) and marks the tag dirty.
func (k *Key) SetIV(v string) {
	k.iv.Set(v)
	k.markDirty()
}

// Keyformat returns KEYFORMAT, defaulting to "identity" when absent.
func (k *Key) Keyformat() string {
	v, ok, _ := k.keyformat.Get(decodeQuotedString)
	if !ok {
		return "identity"
	}
	return v
}

// SetKeyformat overwrites KEYFORMAT and marks the tag dirty.
func (k *Key) SetKeyformat(v string) {
	k.keyformat.Set(v)
	k.markDirty()
}

// KeyformatVersions returns KEYFORMATVERSIONS's slash-separated integers.
func (k *Key) KeyformatVersions() []uint64 {
	v, ok, _ := k.keyformatVersions.Get(decodeQuotedString)
	if !ok {
		return nil
	}
	var out []uint64
	for _, s := range splitNonEmpty(v, "/") {
		n, err := parseU64([]byte(s))
		if err == nil {
			out = append(out, n)
		}
	}
	return out
}

// SetKeyformatVersions overwrites KEYFORMATVERSIONS and marks the tag dirty.
func (k *Key) SetKeyformatVersions(v string) {
	k.keyformatVersions.Set(v)
	k.markDirty()
}

func (k *Key) Serialize() []byte {
	return k.serializeWith(func() []byte {
		var b attrBuilder
		method := "NONE"
		if m, ok := k.method.Known(); ok {
			method = m.String()
		} else if u, ok := k.method.Unrecognized(); ok {
			method = u
		}
		b.raw("METHOD", method)
		if v, ok := k.URI(); ok {
			b.str("URI", v)
		}
		if v, ok := k.IV(); ok {
			b.raw("IV", v)
		}
		if v, ok, _ := k.keyformat.Get(decodeQuotedString); ok {
			b.str("KEYFORMAT", v)
		}
		if v, ok, _ := k.keyformatVersions.Get(decodeQuotedString); ok {
			b.str("KEYFORMATVERSIONS", v)
		}
		return b.build(k.tagName)
	})
}

func newKeyLike(u UnknownTag, tagName string) (*Key, error) {
	pv, err := u.TagValue().AttributeListValue()
	if err != nil {
		return nil, err
	}
	methodRaw, err := requireAttr(tagName, pv.Attributes, "METHOD")
	if err != nil {
		return nil, err
	}
	methodStr, err := methodRaw.UTF8String()
	if err != nil {
		return nil, err
	}
	return &Key{
		tagBase:           tagBase{outputLine: u.Original},
		tagName:           tagName,
		method:            NewEnumeratedString(methodStr, lookupKeyMethod),
		uri:               lazyFromAttrs[string](pv.Attributes, "URI"),
		iv:                lazyFromAttrs[string](pv.Attributes, "IV"),
		keyformat:         lazyFromAttrs[string](pv.Attributes, "KEYFORMAT"),
		keyformatVersions: lazyFromAttrs[string](pv.Attributes, "KEYFORMATVERSIONS"),
	}, nil
}

func newKey(u UnknownTag) (*Key, error)        { return newKeyLike(u, TagKey) }
func newSessionKey(u UnknownTag) (*Key, error) { return newKeyLike(u, TagSessionKey) }

// NewKey builds a fresh EXT-X-KEY (or, with tagName TagSessionKey,
// EXT-X-SESSION-KEY) tag, already dirty.
func NewKey(tagName string, method KeyMethod) *Key {
	return &Key{tagBase: tagBase{dirty: true}, tagName: tagName, method: KnownEnumeratedString(method)}
}
