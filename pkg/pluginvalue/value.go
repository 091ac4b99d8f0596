// Package pluginvalue implements C5, the tagged-union entity value that
// shell-plugin commands pass to and receive from their host, plus the
// context-resolution helpers built on top of it (spec §4.5). A Value
// always carries its parent identifiers alongside its own fields, the
// way model's Icon and PropertyValue (pkg/model) carry a discriminator
// alongside their variant data.
package pluginvalue

import "github.com/mwatts/anytype-go/pkg/model"

// Kind is the closed set of entity variants a Value may hold.
type Kind string

const (
	KindSpace    Kind = "space"
	KindType     Kind = "type"
	KindObject   Kind = "object"
	KindProperty Kind = "property"
	KindTag      Kind = "tag"
	KindList     Kind = "list"
	KindTemplate Kind = "template"
	KindMember   Kind = "member"
)

// Value is the tagged union of spec §4.5. Exactly one of the pointer
// fields matching Kind is set; constructors enforce this invariant, so
// application code should only ever build a Value via New*.
type Value struct {
	Kind Kind

	space    *model.Space
	typ      *model.Type
	object   *model.Object
	property *model.Property
	tag      *model.Tag
	list     *model.List
	template *model.Template
	member   *model.Member
}

// IsZero reports whether v holds no variant at all, the state of a
// pipeline input that was never set (e.g. the first command in a
// chain).
func (v Value) IsZero() bool { return v.Kind == "" }

// NewSpace wraps a Space. Spaces are the root of context and carry no
// parent identifier (spec §3.1).
func NewSpace(s model.Space) Value {
	return Value{Kind: KindSpace, space: &s}
}

// NewType wraps a Type scoped to spaceID. spaceID is always taken
// explicitly rather than trusted from t.SpaceID, so a caller can never
// silently drop context at wrap-time (spec §4.5 "Conversions").
func NewType(t model.Type, spaceID string) Value {
	t.SpaceID = spaceID
	return Value{Kind: KindType, typ: &t}
}

// NewObject wraps an Object scoped to spaceID, with its resolved TypeID
// alongside the wire-reported TypeKey (spec §4.4 "Type-key resolution").
func NewObject(o model.Object, spaceID, typeID string) Value {
	o.SpaceID = spaceID
	o.TypeID = typeID
	return Value{Kind: KindObject, object: &o}
}

// NewProperty wraps a Property scoped to spaceID and typeID.
func NewProperty(p model.Property, spaceID, typeID string) Value {
	p.SpaceID = spaceID
	p.TypeID = typeID
	return Value{Kind: KindProperty, property: &p}
}

// NewTag wraps a Tag scoped to spaceID and propertyID.
func NewTag(t model.Tag, spaceID, propertyID string) Value {
	t.SpaceID = spaceID
	t.PropertyID = propertyID
	return Value{Kind: KindTag, tag: &t}
}

// NewList wraps a List scoped to spaceID.
func NewList(l model.List, spaceID string) Value {
	l.SpaceID = spaceID
	return Value{Kind: KindList, list: &l}
}

// NewTemplate wraps a Template scoped to spaceID and typeID.
func NewTemplate(t model.Template, spaceID, typeID string) Value {
	t.SpaceID = spaceID
	t.TypeID = typeID
	return Value{Kind: KindTemplate, template: &t}
}

// NewMember wraps a Member scoped to spaceID.
func NewMember(m model.Member, spaceID string) Value {
	m.SpaceID = spaceID
	return Value{Kind: KindMember, member: &m}
}

// ID returns the variant's own identifier, or "" for a zero Value.
func (v Value) ID() string {
	switch v.Kind {
	case KindSpace:
		return v.space.ID
	case KindType:
		return v.typ.ID
	case KindObject:
		return v.object.ID
	case KindProperty:
		return v.property.ID
	case KindTag:
		return v.tag.ID
	case KindList:
		return v.list.ID
	case KindTemplate:
		return v.template.ID
	case KindMember:
		return v.member.ID
	default:
		return ""
	}
}

// Name returns the variant's display name, applying Object's
// name/snippet/id fallback (spec §3.1) and falling back to the
// identifier for every other variant whose Name is blank.
func (v Value) Name() string {
	var name string
	switch v.Kind {
	case KindSpace:
		name = v.space.Name
	case KindType:
		name = v.typ.Name
	case KindObject:
		return v.object.DisplayName()
	case KindProperty:
		name = v.property.Name
	case KindTag:
		name = v.tag.Name
	case KindList:
		name = v.list.Name
	case KindTemplate:
		if v.template.Name != "" {
			return v.template.Name
		}
		return v.template.ID
	case KindMember:
		if v.member.Name != "" {
			return v.member.Name
		}
		return v.member.ID
	default:
		return ""
	}
	if name == "" {
		return v.ID()
	}
	return name
}

// SpaceID returns the variant's owning space id, when it has one.
func (v Value) SpaceID() (string, bool) {
	switch v.Kind {
	case KindSpace:
		return v.space.ID, true
	case KindType:
		return v.typ.SpaceID, v.typ.SpaceID != ""
	case KindObject:
		return v.object.SpaceID, v.object.SpaceID != ""
	case KindProperty:
		return v.property.SpaceID, v.property.SpaceID != ""
	case KindTag:
		return v.tag.SpaceID, v.tag.SpaceID != ""
	case KindList:
		return v.list.SpaceID, v.list.SpaceID != ""
	case KindTemplate:
		return v.template.SpaceID, v.template.SpaceID != ""
	case KindMember:
		return v.member.SpaceID, v.member.SpaceID != ""
	default:
		return "", false
	}
}

// TypeID returns the variant's associated type id, when it has one.
func (v Value) TypeID() (string, bool) {
	switch v.Kind {
	case KindType:
		return v.typ.ID, true
	case KindObject:
		return v.object.TypeID, v.object.TypeID != ""
	case KindProperty:
		return v.property.TypeID, v.property.TypeID != ""
	case KindTemplate:
		return v.template.TypeID, v.template.TypeID != ""
	default:
		return "", false
	}
}

// TypeKey returns the variant's globally stable type key, when it has
// one: an Object reports its type's key and a Type reports its own Key;
// every other variant reports none.
func (v Value) TypeKey() (string, bool) {
	switch v.Kind {
	case KindType:
		return v.typ.Key, true
	case KindObject:
		return v.object.TypeKey, v.object.TypeKey != ""
	default:
		return "", false
	}
}

// PropertyID returns the variant's associated property id, when it has
// one.
func (v Value) PropertyID() (string, bool) {
	switch v.Kind {
	case KindProperty:
		return v.property.ID, true
	case KindTag:
		return v.tag.PropertyID, v.tag.PropertyID != ""
	default:
		return "", false
	}
}
