package pluginvalue

// Field is one ordered key/value pair of a Record.
type Field struct {
	Key   string
	Value any
}

// Record is the minimal structured-record projection of spec §4.5: an
// ordered mapping starting with "_type", then the variant's own id, its
// parent ids, and its remaining non-identifier fields. It is the only
// plugin-visible form of a Value (SPEC_FULL.md §6.4) — the host display
// layer renders a Record, never a Value directly.
type Record []Field

// Get returns the value of the first field with the given key.
func (r Record) Get(key string) (any, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Record projects v into its host-facing structured form.
func (v Value) Record() Record {
	rec := Record{{"_type", string(v.Kind)}, {"id", v.ID()}}
	if sid, ok := v.SpaceID(); ok {
		rec = append(rec, Field{"space_id", sid})
	}
	if tid, ok := v.TypeID(); ok && v.Kind != KindType {
		rec = append(rec, Field{"type_id", tid})
	}
	if pid, ok := v.PropertyID(); ok && v.Kind != KindProperty {
		rec = append(rec, Field{"property_id", pid})
	}

	switch v.Kind {
	case KindSpace:
		rec = append(rec,
			Field{"name", v.space.Name},
			Field{"description", v.space.Description},
		)
	case KindType:
		rec = append(rec,
			Field{"name", v.typ.Name},
			Field{"key", v.typ.Key},
			Field{"layout", v.typ.Layout},
		)
	case KindObject:
		rec = append(rec,
			Field{"name", v.object.DisplayName()},
			Field{"type_key", v.object.TypeKey},
			Field{"snippet", v.object.Snippet},
		)
	case KindProperty:
		rec = append(rec,
			Field{"name", v.property.Name},
			Field{"key", v.property.Key},
			Field{"format", string(v.property.Format)},
		)
	case KindTag:
		rec = append(rec,
			Field{"name", v.tag.Name},
			Field{"color", string(v.tag.Color)},
		)
	case KindList:
		rec = append(rec, Field{"name", v.list.Name})
	case KindTemplate:
		rec = append(rec,
			Field{"name", v.template.Name},
			Field{"snippet", v.template.Snippet},
		)
	case KindMember:
		rec = append(rec,
			Field{"name", v.member.Name},
			Field{"role", string(v.member.Role)},
			Field{"status", string(v.member.Status)},
		)
	}
	return rec
}
