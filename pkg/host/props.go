package host

import (
	"fmt"
	"sort"

	"github.com/go-drift/paneui/pkg/errors"
	"github.com/go-drift/paneui/pkg/graphics"
)

// Prop names a node property.
type Prop string

const (
	Name                   Prop = "Name"
	Size                   Prop = "Size"
	Position               Prop = "Position"
	BackgroundColor        Prop = "BackgroundColor"
	BackgroundTransparency Prop = "BackgroundTransparency"
	Visible                Prop = "Visible"
	ClipsDescendants       Prop = "ClipsDescendants"
	ZIndex                 Prop = "ZIndex"
	LayoutOrder            Prop = "LayoutOrder"
	Active                 Prop = "Active"
	AutoButtonColor        Prop = "AutoButtonColor"
	Text                   Prop = "Text"
	TextColor              Prop = "TextColor"
	TextSize               Prop = "TextSize"
	TextWrapped            Prop = "TextWrapped"
	TextXAlignment         Prop = "TextXAlignment"
	PlaceholderText        Prop = "PlaceholderText"
	Padding                Prop = "Padding"
	CornerRadius           Prop = "CornerRadius"
	Thickness              Prop = "Thickness"
	Color                  Prop = "Color"

	// Host-computed, read-only.
	AbsolutePosition Prop = "AbsolutePosition"
	AbsoluteSize     Prop = "AbsoluteSize"
	TextFits         Prop = "TextFits"
)

// Props is a property bag used to configure a node at creation.
type Props map[Prop]any

// Sorted returns the property names with Name first and the rest in
// lexical order, so that application order is deterministic.
func (p Props) Sorted() []Prop {
	keys := make([]Prop, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == Name || keys[j] == Name {
			return keys[i] == Name && keys[j] != Name
		}
		return keys[i] < keys[j]
	})
	return keys
}

// TextAlignment controls horizontal text placement.
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
)

// ValueType is the Go type a property value must have.
type ValueType int

const (
	TypeString ValueType = iota
	TypeFloat
	TypeInt
	TypeBool
	TypeDim2
	TypeColor
	TypeAlignment
)

func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeFloat:
		return "float64"
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	case TypeDim2:
		return "host.Dim2"
	case TypeColor:
		return "graphics.Color"
	case TypeAlignment:
		return "host.TextAlignment"
	default:
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
}

// Schema maps each node kind to the properties it accepts.
type Schema map[Kind]map[Prop]ValueType

var guiProps = map[Prop]ValueType{
	Name:                   TypeString,
	Size:                   TypeDim2,
	Position:               TypeDim2,
	BackgroundColor:        TypeColor,
	BackgroundTransparency: TypeFloat,
	Visible:                TypeBool,
	ClipsDescendants:       TypeBool,
	ZIndex:                 TypeInt,
	LayoutOrder:            TypeInt,
	Active:                 TypeBool,
}

var textProps = map[Prop]ValueType{
	Text:           TypeString,
	TextColor:      TypeColor,
	TextSize:       TypeFloat,
	TextWrapped:    TypeBool,
	TextXAlignment: TypeAlignment,
}

func merge(sets ...map[Prop]ValueType) map[Prop]ValueType {
	out := make(map[Prop]ValueType)
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}

// DefaultSchema is the property schema every bundled host enforces.
var DefaultSchema = Schema{
	KindScreen:     {Name: TypeString, Visible: TypeBool, ZIndex: TypeInt},
	KindFrame:      merge(guiProps),
	KindTextLabel:  merge(guiProps, textProps),
	KindTextButton: merge(guiProps, textProps, map[Prop]ValueType{AutoButtonColor: TypeBool}),
	KindTextBox:    merge(guiProps, textProps, map[Prop]ValueType{PlaceholderText: TypeString}),
	KindListLayout: {Name: TypeString, Padding: TypeFloat},
	KindCorner:     {Name: TypeString, CornerRadius: TypeFloat},
	KindStroke:     {Name: TypeString, Thickness: TypeFloat, Color: TypeColor},
}

var readOnly = map[Prop]bool{
	AbsolutePosition: true,
	AbsoluteSize:     true,
	TextFits:         true,
}

// IsReadOnly reports whether p is computed by the host.
func IsReadOnly(p Prop) bool {
	return readOnly[p]
}

// Validate checks value against the schema for kind and returns it in
// canonical form (integers are widened to float64 for float properties).
func (s Schema) Validate(kind Kind, prop Prop, value any) (any, error) {
	if readOnly[prop] {
		return nil, &errors.PropertyError{NodeKind: string(kind), Prop: string(prop), Value: value, Reason: "read-only", Err: ErrReadOnly}
	}
	props, ok := s[kind]
	if !ok {
		return nil, &errors.PropertyError{NodeKind: string(kind), Prop: string(prop), Value: value, Reason: "unknown node kind"}
	}
	want, ok := props[prop]
	if !ok {
		return nil, &errors.PropertyError{NodeKind: string(kind), Prop: string(prop), Value: value, Reason: "not a property of this kind"}
	}
	if v, ok := coerce(want, value); ok {
		return v, nil
	}
	return nil, &errors.PropertyError{
		NodeKind: string(kind),
		Prop:     string(prop),
		Value:    value,
		Reason:   "want " + want.String(),
	}
}

func coerce(want ValueType, value any) (any, bool) {
	switch want {
	case TypeString:
		v, ok := value.(string)
		return v, ok
	case TypeFloat:
		switch v := value.(type) {
		case float64:
			return v, true
		case float32:
			return float64(v), true
		case int:
			return float64(v), true
		}
	case TypeInt:
		v, ok := value.(int)
		return v, ok
	case TypeBool:
		v, ok := value.(bool)
		return v, ok
	case TypeDim2:
		v, ok := value.(Dim2)
		return v, ok
	case TypeColor:
		v, ok := value.(graphics.Color)
		return v, ok
	case TypeAlignment:
		v, ok := value.(TextAlignment)
		return v, ok
	}
	return nil, false
}
