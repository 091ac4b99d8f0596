package resolver

import "regexp"

// idShape matches the canonical 8-4-4-4-12 hex identifier shape of
// spec §4.4. Widening this to the service's opaque-prefix shape is an
// explicit opt-in (SPEC_FULL.md Open Question resolutions, #3) because
// a careless widening could admit a plain human name as if it were
// already resolved.
var idShape = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsResolvedID reports whether s already has the shape of a resolved
// identifier and should be returned unchanged without consulting the
// cache or issuing a list call. This is the default, strict
// implementation; a Resolver may be given an alternate via
// WithIDShape for hosts that opt into the service's opaque-prefix ids.
func IsResolvedID(s string) bool {
	return idShape.MatchString(s)
}
