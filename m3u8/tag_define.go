package m3u8

/*
 EXT-X-DEFINE has three mutually exclusive shapes, drawn from the
 Variable Substitution appendix: NAME+VALUE declares a
 variable, IMPORT imports one from the parent playlist, QUERYPARAM
 declares one sourced from the playlist's own request query string. Only
 one of the three attributes may be present on a given line; which one
 decided DefineKind.
*/

// DefineKind discriminates which of EXT-X-DEFINE's three forms a Define
// holds.
type DefineKind int

const (
	DefineNameValue DefineKind = iota
	DefineImport
	DefineQueryParam
)

// Define is the EXT-X-DEFINE tag.
type Define struct {
	tagBase
	kind  DefineKind
	name  string // NAME (NameValue form) or IMPORT/QUERYPARAM's variable name
	value string // VALUE, only meaningful for DefineNameValue
}

func (d *Define) Name() string { return TagDefine }

// Kind reports which of the three EXT-X-DEFINE forms this is.
func (d *Define) Kind() DefineKind { return d.kind }

// VariableName returns the variable name: NAME for DefineNameValue, IMPORT
// for DefineImport, QUERYPARAM for DefineQueryParam.
func (d *Define) VariableName() string { return d.name }

// Value returns VALUE; only meaningful when Kind() is DefineNameValue.
func (d *Define) Value() string { return d.value }

func (d *Define) Serialize() []byte {
	return d.serializeWith(func() []byte {
		var b attrBuilder
		switch d.kind {
		case DefineNameValue:
			b.str("NAME", d.name)
			b.str("VALUE", d.value)
		case DefineImport:
			b.str("IMPORT", d.name)
		case DefineQueryParam:
			b.str("QUERYPARAM", d.name)
		}
		return b.build(TagDefine)
	})
}

func newDefine(u UnknownTag) (*Define, error) {
	pv, err := u.TagValue().AttributeListValue()
	if err != nil {
		return nil, err
	}
	if v, ok := pv.Attributes.Get("NAME"); ok {
		name, err := v.QuotedString()
		if err != nil {
			return nil, err
		}
		valueRaw, err := requireAttr(TagDefine, pv.Attributes, "VALUE")
		if err != nil {
			return nil, err
		}
		value, err := valueRaw.QuotedString()
		if err != nil {
			return nil, err
		}
		return &Define{tagBase: tagBase{outputLine: u.Original}, kind: DefineNameValue, name: name, value: value}, nil
	}
	if v, ok := pv.Attributes.Get("IMPORT"); ok {
		name, err := v.QuotedString()
		if err != nil {
			return nil, err
		}
		return &Define{tagBase: tagBase{outputLine: u.Original}, kind: DefineImport, name: name}, nil
	}
	if v, ok := pv.Attributes.Get("QUERYPARAM"); ok {
		name, err := v.QuotedString()
		if err != nil {
			return nil, err
		}
		return &Define{tagBase: tagBase{outputLine: u.Original}, kind: DefineQueryParam, name: name}, nil
	}
	return nil, MissingRequiredAttribute(TagDefine, "NAME|IMPORT|QUERYPARAM")
}

// NewDefineNameValue builds a fresh NAME/VALUE form EXT-X-DEFINE, already
// dirty.
func NewDefineNameValue(name, value string) *Define {
	return &Define{tagBase: tagBase{dirty: true}, kind: DefineNameValue, name: name, value: value}
}

// NewDefineImport builds a fresh IMPORT form EXT-X-DEFINE, already dirty.
func NewDefineImport(name string) *Define {
	return &Define{tagBase: tagBase{dirty: true}, kind: DefineImport, name: name}
}

// NewDefineQueryParam builds a fresh QUERYPARAM form EXT-X-DEFINE, already
// dirty.
func NewDefineQueryParam(name string) *Define {
	return &Define{tagBase: tagBase{dirty: true}, kind: DefineQueryParam, name: name}
}
