// Package plugincmd is the thin command-handler registry of
// SPEC_FULL.md's "Shell-plugin value surface" module: one function per
// C3 operation, keyed by command name (§9 "Dynamic dispatch" — the
// plugin surface is the one place in this system that benefits from
// open dispatch, unlike the concretely-typed client/resolver layers
// beneath it). Handlers take and return pluginvalue.Value/Record, never
// raw model types, so a host shell only ever sees the structured-record
// projection of spec §6.4.
package plugincmd

import (
	"context"

	anytype "github.com/mwatts/anytype-go"
	"github.com/mwatts/anytype-go/internal/config"
	"github.com/mwatts/anytype-go/pkg/client"
	"github.com/mwatts/anytype-go/pkg/pluginvalue"
	"github.com/mwatts/anytype-go/pkg/resolver"
)

// Deps bundles the components every handler is built against.
type Deps struct {
	Client   *client.Client
	Resolver *resolver.Resolver
	Config   *config.Config
}

// Request is what a host hands a command: positional args, named flags
// (already split from the shell's argument parsing), and the EntityValue
// piped in from the previous command, if any.
type Request struct {
	Args     []string
	Flags    map[string]string
	Pipeline pluginvalue.Value
}

// Flag returns the named flag value, or "" if unset.
func (r Request) Flag(name string) string { return r.Flags[name] }

// Response is what a handler hands back: zero or more records (most
// operations return exactly one; list operations return many). Value is
// set alongside a single-record response so a host shell can thread it
// through as the next command's Pipeline (spec §4.5) without having to
// reconstruct a Value out of its own Record projection.
type Response struct {
	Records []pluginvalue.Record
	Value   pluginvalue.Value
}

func single(v pluginvalue.Value) Response {
	return Response{Records: []pluginvalue.Record{v.Record()}, Value: v}
}

// Handler implements one command.
type Handler func(ctx context.Context, deps *Deps, req Request) (Response, error)

// Registry dispatches a command name to its Handler.
type Registry struct {
	deps     *Deps
	handlers map[string]Handler
}

// New builds a Registry with every command of spec §4.3 wired to deps.
func New(deps *Deps) *Registry {
	r := &Registry{deps: deps, handlers: make(map[string]Handler)}
	r.registerAuth()
	r.registerSpaces()
	r.registerObjects()
	r.registerTypes()
	r.registerProperties()
	r.registerTags()
	r.registerTemplates()
	r.registerLists()
	r.registerMembers()
	r.registerSearch()
	return r
}

func (r *Registry) register(name string, h Handler) {
	r.handlers[name] = h
}

// Names returns every registered command name, for a host's help text.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}

// Dispatch runs the named command. An unknown name is itself reported as
// Unimplemented rather than panicking, keeping the "never panics"
// contract of spec §7 at the plugin boundary too.
func (r *Registry) Dispatch(ctx context.Context, name string, req Request) (Response, error) {
	h, ok := r.handlers[name]
	if !ok {
		return Response{}, anytype.NewError(anytype.KindUnimplemented, "command", "plugin.dispatch").WithName(name)
	}
	return h(ctx, r.deps, req)
}
