package pluginvalue

import (
	"context"

	anytype "github.com/mwatts/anytype-go"
)

// SpaceResolver is the subset of *resolver.Resolver the space-context
// helper needs. Declaring it here (rather than importing pkg/resolver)
// keeps C5 a thin consumer of C4 instead of coupling to its concrete
// type, the way the spec separates the two components.
type SpaceResolver interface {
	ResolveSpace(ctx context.Context, name string) (string, error)
}

// TypeResolver is the subset of *resolver.Resolver the type-context
// helper needs.
type TypeResolver interface {
	ResolveType(ctx context.Context, spaceID, name string) (string, error)
}

// PropertyResolver is the subset of *resolver.Resolver the
// property-context helper needs.
type PropertyResolver interface {
	ResolveProperty(ctx context.Context, spaceID, typeID, name string) (string, error)
}

// ListResolver is the subset of *resolver.Resolver the list-context
// helper needs.
type ListResolver interface {
	ResolveList(ctx context.Context, spaceID, name string) (string, error)
}

// ResolveSpaceContext implements spec §4.5's flag -> pipeline -> default
// priority chain for locating a space. flag is the command's --space
// value ("" if not supplied); pipeline is the EntityValue piped in from
// a prior command ("" Value if none); defaultSpace is the host's
// configured default_space.
func ResolveSpaceContext(ctx context.Context, r SpaceResolver, flag string, pipeline Value, defaultSpace string) (string, error) {
	const op = "resolve_space_context"
	if flag != "" {
		return r.ResolveSpace(ctx, flag)
	}
	if sid, ok := pipeline.SpaceID(); ok {
		return sid, nil
	}
	if defaultSpace != "" {
		return r.ResolveSpace(ctx, defaultSpace)
	}
	return "", anytype.NewError(anytype.KindMissingContext, "", op).WithNeeded("space")
}

// ResolveTypeContext is the analogous helper for a type context, scoped
// to an already-resolved spaceID.
func ResolveTypeContext(ctx context.Context, r TypeResolver, spaceID, flag string, pipeline Value, defaultType string) (string, error) {
	const op = "resolve_type_context"
	if flag != "" {
		return r.ResolveType(ctx, spaceID, flag)
	}
	if tid, ok := pipeline.TypeID(); ok {
		return tid, nil
	}
	if defaultType != "" {
		return r.ResolveType(ctx, spaceID, defaultType)
	}
	return "", anytype.NewError(anytype.KindMissingContext, "", op).WithNeeded("type")
}

// ResolvePropertyContext is the analogous helper for a property context,
// scoped to an already-resolved spaceID and typeID.
func ResolvePropertyContext(ctx context.Context, r PropertyResolver, spaceID, typeID, flag string, pipeline Value, defaultProperty string) (string, error) {
	const op = "resolve_property_context"
	if flag != "" {
		return r.ResolveProperty(ctx, spaceID, typeID, flag)
	}
	if pid, ok := pipeline.PropertyID(); ok {
		return pid, nil
	}
	if defaultProperty != "" {
		return r.ResolveProperty(ctx, spaceID, typeID, defaultProperty)
	}
	return "", anytype.NewError(anytype.KindMissingContext, "", op).WithNeeded("property")
}

// ResolveListContext is the analogous helper for a list context, scoped
// to an already-resolved spaceID. A Value has no list_id() accessor in
// spec §4.5's capability set, so the pipeline source applies only when
// the piped Value is itself a List, identified via its own ID().
func ResolveListContext(ctx context.Context, r ListResolver, spaceID, flag string, pipeline Value, defaultList string) (string, error) {
	const op = "resolve_list_context"
	if flag != "" {
		return r.ResolveList(ctx, spaceID, flag)
	}
	if pipeline.Kind == KindList {
		return pipeline.ID(), nil
	}
	if defaultList != "" {
		return r.ResolveList(ctx, spaceID, defaultList)
	}
	return "", anytype.NewError(anytype.KindMissingContext, "", op).WithNeeded("list")
}
