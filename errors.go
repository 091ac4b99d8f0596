// Package anytype is the root of a client-side toolkit for the local
// Anytype personal-knowledge-base service: a typed HTTP API client, a
// name-resolution cache, and a shell-plugin value model, built around
// the error taxonomy defined in this file.
package anytype

import (
	"errors"
	"fmt"
)

// APIVersion is the single pinned wire-protocol version transmitted on
// every request via the Anytype-Version header. Supporting more than
// one version simultaneously is a future concern, not handled here.
const APIVersion = "2025-05-20"

// DefaultBaseURL is the default address of the local Anytype service.
const DefaultBaseURL = "http://localhost:31009"

// Kind is the closed taxonomy of failure modes a caller can observe.
// Exactly one Kind applies to any given Error.
type Kind int

const (
	// KindAuth covers a missing, rejected, or expired credential.
	KindAuth Kind = iota
	// KindNotFound covers no match at the service or in the resolver cache.
	KindNotFound
	// KindBadRequest covers a request the service rejected as invalid.
	KindBadRequest
	// KindServer covers a 5xx response from the service.
	KindServer
	// KindNetwork covers a transport failure or timeout.
	KindNetwork
	// KindDecode covers a response that violates the wire schema.
	KindDecode
	// KindMissingContext covers a host-level failure to locate a space/
	// type/property/list context before any request was attempted.
	KindMissingContext
	// KindNameConflict is advisory. The resolver has no strict mode and
	// never raises it: duplicate names resolve to the first match.
	KindNameConflict
	// KindUnimplemented covers endpoints the service exposes but this
	// client does not implement (see SPEC_FULL.md Open Questions).
	KindUnimplemented
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	case KindDecode:
		return "decode"
	case KindMissingContext:
		return "missing_context"
	case KindNameConflict:
		return "name_conflict"
	case KindUnimplemented:
		return "unimplemented"
	default:
		return "unknown"
	}
}

// Error is the error value every component of this toolkit raises. It
// always carries the entity kind and logical operation name of the call
// that failed, per spec §7's propagation contract.
type Error struct {
	Kind   Kind
	Entity string // e.g. "space", "object", "type"
	Op     string // e.g. "resolve_space", "objects.list"
	// Name is the human name or id that was searched for, when relevant
	// (NotFound, NameConflict).
	Name string
	// Needed is the flag name a MissingContext error recommends supplying.
	Needed string
	// Candidates lists the competing matches for a NameConflict.
	Candidates []string
	// Details carries a BadRequest's structured validation payload verbatim.
	Details string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindAuth:
		return fmt.Sprintf("%s: %s: authentication required or rejected; re-run the challenge/create-api-key flow", e.Op, e.Entity)
	case KindNotFound:
		return fmt.Sprintf("%s: %s %q: not found", e.Op, e.Entity, e.Name)
	case KindMissingContext:
		return fmt.Sprintf("%s: missing %s context; supply --%s or configure a default", e.Op, e.Needed, e.Needed)
	case KindNameConflict:
		return fmt.Sprintf("%s: %s %q: multiple matches %v", e.Op, e.Entity, e.Name, e.Candidates)
	case KindBadRequest:
		if e.Details != "" {
			return fmt.Sprintf("%s: bad request: %s", e.Op, e.Details)
		}
		return fmt.Sprintf("%s: bad request", e.Op)
	case KindUnimplemented:
		return fmt.Sprintf("%s: %s: not implemented by this client", e.Op, e.Entity)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Entity, e.Kind, e.Err)
		}
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Entity, e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes errors.Is(err, target) report true when target is an *Error
// of the same Kind; target's other fields are not compared.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// IsKind reports whether err is an *Error of the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// NewError constructs an *Error, the single constructor every component
// funnels through so Op/Entity are never accidentally omitted.
func NewError(kind Kind, entity, op string) *Error {
	return &Error{Kind: kind, Entity: entity, Op: op}
}

// WithErr attaches a wrapped cause and returns the receiver for chaining.
func (e *Error) WithErr(err error) *Error {
	e.Err = err
	return e
}

// WithName attaches the searched-for name/id and returns the receiver.
func (e *Error) WithName(name string) *Error {
	e.Name = name
	return e
}

// WithNeeded attaches the flag name a MissingContext error recommends
// supplying and returns the receiver.
func (e *Error) WithNeeded(needed string) *Error {
	e.Needed = needed
	return e
}

// WithCandidates attaches the competing matches of a NameConflict and
// returns the receiver.
func (e *Error) WithCandidates(candidates []string) *Error {
	e.Candidates = candidates
	return e
}
