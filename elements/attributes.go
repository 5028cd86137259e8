package elements

import "strconv"

// AttrKind selects which field of Attribute is meaningful, ported from
// react-elements/src/attributes.rs's AttributeValue enum.
type AttrKind int

const (
	AttrString AttrKind = iota
	AttrBool
	AttrReactiveString
	AttrReactiveBool
)

// Attribute is `{ name, value: String | Bool | ReactiveString | ReactiveBool }`
// from §3. Attributes are stored in insertion order on Element (no sorting,
// no dedup) per §4.B and the hydration contract in §9.
type Attribute struct {
	Name string
	Kind AttrKind

	str          string
	boolean      bool
	reactiveStr  ReactiveValue[string]
	reactiveBool ReactiveValue[bool]
}

func NewAttr(name, value string) Attribute {
	return Attribute{Name: name, Kind: AttrString, str: value}
}

func NewBoolAttr(name string, value bool) Attribute {
	return Attribute{Name: name, Kind: AttrBool, boolean: value}
}

func NewReactiveStringAttr(name string, value ReactiveValue[string]) Attribute {
	return Attribute{Name: name, Kind: AttrReactiveString, reactiveStr: value}
}

func NewReactiveBoolAttr(name string, value ReactiveValue[bool]) Attribute {
	return Attribute{Name: name, Kind: AttrReactiveBool, reactiveBool: value}
}

// ToStaticValue resolves any reactive attribute once and returns the
// attribute's value as a plain string, per attributes.rs's to_static_value
// and §4.C's "reactive -> read once, serialize as static".
func (a Attribute) ToStaticValue() string {
	switch a.Kind {
	case AttrString:
		return a.str
	case AttrBool:
		return strconv.FormatBool(a.boolean)
	case AttrReactiveString:
		return a.reactiveStr.Get()
	case AttrReactiveBool:
		return strconv.FormatBool(a.reactiveBool.Get())
	default:
		return ""
	}
}

// BoolValue resolves a boolean attribute (plain or reactive) to its
// current bool value. Only meaningful when Kind is AttrBool or
// AttrReactiveBool.
func (a Attribute) BoolValue() bool {
	if a.Kind == AttrReactiveBool {
		return a.reactiveBool.Get()
	}
	return a.boolean
}
