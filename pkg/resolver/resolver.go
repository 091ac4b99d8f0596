// Package resolver implements the concurrent, TTL-bounded,
// cascade-invalidating name-to-identifier cache of spec §4.4. It is the
// only place in the toolkit that turns a human-entered name into the
// opaque identifier the API requires; every other package either
// already has an identifier or calls here to get one.
package resolver

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"

	anytype "github.com/mwatts/anytype-go"
	"github.com/mwatts/anytype-go/pkg/client"
)

// DefaultTTL is the per-entry lifetime applied when WithTTL is omitted.
const DefaultTTL = 300 * time.Second

// listPageSize bounds the single list call used to fill an index. 1000
// is the maximum limit the service's pagination accepts (spec §4.3).
// Only the first page (offset 0) is fetched: entries of a larger
// collection beyond it are never indexed and resolve as NotFound.
const listPageSize = 1000

// Resolver wraps a client.Client with the seven-index cache of spec §4.4.
// A Resolver is safe for concurrent use by multiple goroutines; it holds
// no per-request state.
type Resolver struct {
	client *client.Client
	log    logr.Logger

	ttl             time.Duration
	caseInsensitive bool
	isResolvedID    func(string) bool
	caser           cases.Caser

	group singleflight.Group

	spaces     *index
	types      *index
	typeByKey  *index
	objects    *index
	properties *index
	tags       *index
	lists      *index
}

// Option configures a Resolver at construction time.
type Option func(*Resolver)

// WithTTL overrides DefaultTTL for every index.
func WithTTL(d time.Duration) Option {
	return func(r *Resolver) { r.ttl = d }
}

// WithCaseInsensitive toggles Unicode case-folding of names on insert and
// lookup (spec §4.4 "Case sensitivity"); default true. Identifiers
// (values) are never folded.
func WithCaseInsensitive(enabled bool) Option {
	return func(r *Resolver) { r.caseInsensitive = enabled }
}

// WithLogger attaches a logr.Logger used to emit the name-conflict
// warning event of spec §4.4 step 5.
func WithLogger(log logr.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

// WithIDShape overrides the identifier-shape predicate, letting a host
// opt into the service's opaque-prefix id widening (SPEC_FULL.md Open
// Question resolutions, #3). The default is the strict 8-4-4-4-12 hex
// shape of IsResolvedID; a widened predicate must never admit a plain
// human name.
func WithIDShape(fn func(string) bool) Option {
	return func(r *Resolver) { r.isResolvedID = fn }
}

// New builds a Resolver over c with empty caches.
func New(c *client.Client, opts ...Option) *Resolver {
	r := &Resolver{
		client:          c,
		log:             logr.Discard(),
		ttl:             DefaultTTL,
		caseInsensitive: true,
		isResolvedID:    IsResolvedID,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.caser = cases.Fold()
	r.spaces = newIndex(r.ttl)
	r.types = newIndex(r.ttl)
	r.typeByKey = newIndex(r.ttl)
	r.objects = newIndex(r.ttl)
	r.properties = newIndex(r.ttl)
	r.tags = newIndex(r.ttl)
	r.lists = newIndex(r.ttl)
	return r
}

// fold case-folds a name for use as a cache key, honoring
// caseInsensitive. Never applied to identifiers.
func (r *Resolver) fold(name string) string {
	if !r.caseInsensitive {
		return name
	}
	return r.caser.String(name)
}

const keySep = "\x00"

func compositeKey(parts ...string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += keySep + p
	}
	return out
}

type namedEntry struct {
	name string
	id   string
}

// populateAndMatch writes every (prefix, name)->id pair into idx and
// returns the ids whose folded name equals want, in the order entries
// is given (server order, normatively last-modified-descending per spec
// §4.4 step 5).
func (r *Resolver) populateAndMatch(idx *index, prefix string, entries []namedEntry, want string) []string {
	var matches []string
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		folded := r.fold(e.name)
		key := folded
		if prefix != "" {
			key = compositeKey(prefix, folded)
		}
		if !seen[key] {
			// Keep the first server-ordered id for a duplicated name so
			// later cache hits agree with pickMatch's first-match rule.
			idx.put(key, e.id)
			seen[key] = true
		}
		if folded == want {
			matches = append(matches, e.id)
		}
	}
	return matches
}

// pickMatch applies spec §4.4 step 5/6: first match wins, a warning is
// emitted when more than one entity shares a name, and no match is a
// NotFound.
func (r *Resolver) pickMatch(op, entity, name string, matches []string) (string, error) {
	if len(matches) == 0 {
		return "", anytype.NewError(anytype.KindNotFound, entity, op).WithName(name)
	}
	if len(matches) > 1 {
		r.log.Info("resolver: multiple entities share a name, using the first",
			"op", op, "entity", entity, "name", name, "candidates", matches)
	}
	return matches[0], nil
}

// ResolveSpace maps a space name (or an already-resolved id) to its id.
func (r *Resolver) ResolveSpace(ctx context.Context, name string) (string, error) {
	const op = "resolve_space"
	if r.isResolvedID(name) {
		return name, nil
	}
	want := r.fold(name)
	key := compositeKey(want)
	if v, ok := r.spaces.get(key); ok {
		return v, nil
	}
	v, err, _ := r.group.Do("spaces:"+key, func() (any, error) {
		if v, ok := r.spaces.get(key); ok {
			return v, nil
		}
		page, err := r.client.ListSpaces(ctx, listPageSize, 0)
		if err != nil {
			return nil, err
		}
		entries := make([]namedEntry, len(page.Data))
		for i, s := range page.Data {
			entries[i] = namedEntry{name: s.Name, id: s.ID}
		}
		matches := r.populateAndMatch(r.spaces, "", entries, want)
		id, err := r.pickMatch(op, "space", name, matches)
		if err != nil {
			return nil, err
		}
		return id, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// ResolveType maps a type name scoped to spaceID to its id.
func (r *Resolver) ResolveType(ctx context.Context, spaceID, name string) (string, error) {
	const op = "resolve_type"
	if r.isResolvedID(name) {
		return name, nil
	}
	want := r.fold(name)
	key := compositeKey(spaceID, want)
	if v, ok := r.types.get(key); ok {
		return v, nil
	}
	v, err, _ := r.group.Do("types:"+key, func() (any, error) {
		if v, ok := r.types.get(key); ok {
			return v, nil
		}
		if err := r.fillTypes(ctx, spaceID); err != nil {
			return nil, err
		}
		if v, ok := r.types.get(key); ok {
			return v, nil
		}
		return "", anytype.NewError(anytype.KindNotFound, "type", op).WithName(name)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// ResolveTypeByKey maps a type's global key scoped to spaceID to its id.
// This specialization is invoked on every Object wrap from a listing or
// search (spec §4.4 "Type-key resolution").
func (r *Resolver) ResolveTypeByKey(ctx context.Context, spaceID, typeKey string) (string, error) {
	const op = "resolve_type_by_key"
	key := compositeKey(spaceID, typeKey)
	if v, ok := r.typeByKey.get(key); ok {
		return v, nil
	}
	v, err, _ := r.group.Do("typeByKey:"+key, func() (any, error) {
		if v, ok := r.typeByKey.get(key); ok {
			return v, nil
		}
		if err := r.fillTypes(ctx, spaceID); err != nil {
			return nil, err
		}
		if v, ok := r.typeByKey.get(key); ok {
			return v, nil
		}
		return "", anytype.NewError(anytype.KindNotFound, "type", op).WithName(typeKey)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// fillTypes issues a single types.list call and populates both the name
// and the key index, per spec §4.4's type-key specialization. The
// caller re-reads whichever index it needs afterward.
func (r *Resolver) fillTypes(ctx context.Context, spaceID string) error {
	page, err := r.client.ListTypes(ctx, spaceID, listPageSize, 0)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(page.Data))
	for _, t := range page.Data {
		nameKey := compositeKey(spaceID, r.fold(t.Name))
		if seen[nameKey] {
			r.log.Info("resolver: multiple entities share a name, using the first",
				"op", "resolve_type", "entity", "type", "name", t.Name)
		} else {
			r.types.put(nameKey, t.ID)
			seen[nameKey] = true
		}
		r.typeByKey.put(compositeKey(spaceID, t.Key), t.ID)
	}
	return nil
}

// ResolveProperty maps a property name scoped to typeID to its id.
func (r *Resolver) ResolveProperty(ctx context.Context, spaceID, typeID, name string) (string, error) {
	const op = "resolve_property"
	if r.isResolvedID(name) {
		return name, nil
	}
	want := r.fold(name)
	key := compositeKey(typeID, want)
	if v, ok := r.properties.get(key); ok {
		return v, nil
	}
	v, err, _ := r.group.Do("properties:"+key, func() (any, error) {
		if v, ok := r.properties.get(key); ok {
			return v, nil
		}
		page, err := r.client.ListProperties(ctx, spaceID, listPageSize, 0)
		if err != nil {
			return nil, err
		}
		entries := make([]namedEntry, 0, len(page.Data))
		for _, p := range page.Data {
			if p.TypeID != typeID {
				continue
			}
			entries = append(entries, namedEntry{name: p.Name, id: p.ID})
		}
		matches := r.populateAndMatch(r.properties, typeID, entries, want)
		return r.pickMatch(op, "property", name, matches)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// ResolveTag maps a tag name scoped to propertyID to its id.
func (r *Resolver) ResolveTag(ctx context.Context, spaceID, propertyID, name string) (string, error) {
	const op = "resolve_tag"
	if r.isResolvedID(name) {
		return name, nil
	}
	want := r.fold(name)
	key := compositeKey(propertyID, want)
	if v, ok := r.tags.get(key); ok {
		return v, nil
	}
	v, err, _ := r.group.Do("tags:"+key, func() (any, error) {
		if v, ok := r.tags.get(key); ok {
			return v, nil
		}
		page, err := r.client.ListTags(ctx, spaceID, propertyID, listPageSize, 0)
		if err != nil {
			return nil, err
		}
		entries := make([]namedEntry, len(page.Data))
		for i, t := range page.Data {
			entries[i] = namedEntry{name: t.Name, id: t.ID}
		}
		matches := r.populateAndMatch(r.tags, propertyID, entries, want)
		return r.pickMatch(op, "tag", name, matches)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// ResolveList maps a list name scoped to spaceID to its id.
func (r *Resolver) ResolveList(ctx context.Context, spaceID, name string) (string, error) {
	const op = "resolve_list"
	if r.isResolvedID(name) {
		return name, nil
	}
	want := r.fold(name)
	key := compositeKey(spaceID, want)
	if v, ok := r.lists.get(key); ok {
		return v, nil
	}
	v, err, _ := r.group.Do("lists:"+key, func() (any, error) {
		if v, ok := r.lists.get(key); ok {
			return v, nil
		}
		page, err := r.client.ListLists(ctx, spaceID, listPageSize, 0)
		if err != nil {
			return nil, err
		}
		entries := make([]namedEntry, len(page.Data))
		for i, l := range page.Data {
			entries[i] = namedEntry{name: l.Name, id: l.ID}
		}
		matches := r.populateAndMatch(r.lists, spaceID, entries, want)
		return r.pickMatch(op, "list", name, matches)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// ResolveObject maps an object name scoped to spaceID to its id. On a
// cache miss it issues its own objects.list call and indexes every
// object's display name; entries recorded via ObserveObject are served
// from the same index (spec §4.4's cache-shape table).
func (r *Resolver) ResolveObject(ctx context.Context, spaceID, name string) (string, error) {
	const op = "resolve_object"
	if r.isResolvedID(name) {
		return name, nil
	}
	want := r.fold(name)
	key := compositeKey(spaceID, want)
	if v, ok := r.objects.get(key); ok {
		return v, nil
	}
	v, err, _ := r.group.Do("objects:"+key, func() (any, error) {
		if v, ok := r.objects.get(key); ok {
			return v, nil
		}
		page, err := r.client.ListObjects(ctx, spaceID, listPageSize, 0)
		if err != nil {
			return nil, err
		}
		entries := make([]namedEntry, len(page.Data))
		for i, o := range page.Data {
			entries[i] = namedEntry{name: o.DisplayName(), id: o.ID}
		}
		matches := r.populateAndMatch(r.objects, spaceID, entries, want)
		return r.pickMatch(op, "object", name, matches)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// ObserveObject records a name->id mapping learned incidentally (e.g.
// from an object listing, create, update, or a search hit) without
// issuing a list call,
// matching the cache table's "lookups during object get" population
// source for the objects index (spec §4.4).
func (r *Resolver) ObserveObject(spaceID, displayName, id string) {
	r.objects.put(compositeKey(spaceID, r.fold(displayName)), id)
}

// InvalidateProperty clears the tags cached under propertyID, the
// innermost link of the cascade (spec §4.4 "Cascade invalidation").
func (r *Resolver) InvalidateProperty(propertyID string) {
	r.tags.deletePrefix(propertyID + keySep)
}

// InvalidateType clears the properties cached under typeID and cascades
// into every tag index those properties own.
func (r *Resolver) InvalidateType(spaceID, typeID string) {
	propertyIDs := r.properties.valuesWithPrefix(typeID + keySep)
	r.properties.deletePrefix(typeID + keySep)
	for _, pid := range propertyIDs {
		r.InvalidateProperty(pid)
	}
}

// InvalidateSpace clears the types, objects, and lists cached under
// spaceID, and cascades into every type's properties and tags (spec
// §4.4 "Cascade invalidation", §8.2 S5).
func (r *Resolver) InvalidateSpace(spaceID string) {
	typeIDs := r.types.valuesWithPrefix(spaceID + keySep)
	r.types.deletePrefix(spaceID + keySep)
	r.typeByKey.deletePrefix(spaceID + keySep)
	r.objects.deletePrefix(spaceID + keySep)
	r.lists.deletePrefix(spaceID + keySep)
	for _, tid := range typeIDs {
		r.InvalidateType(spaceID, tid)
	}
}
