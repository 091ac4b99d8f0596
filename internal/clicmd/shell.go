package clicmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abiosoft/ishell/v2"
	"github.com/fatih/color"

	"github.com/mwatts/anytype-go/internal/config"
	"github.com/mwatts/anytype-go/internal/plugincmd"
	"github.com/mwatts/anytype-go/pkg/pluginvalue"
)

var boldBlue = color.New(color.FgBlue, color.Bold).SprintFunc()

// family groups one entity's commands under a single top-level ishell
// word, mirroring the "run"/"get"/"a2a" grouping of kagent's
// runInteractive: users type "object list", "object get Meeting notes",
// "type create --key task", and so on.
type family struct {
	word     string
	aliases  []string
	help     string
	commands []subcommand
}

type subcommand struct {
	name    string
	command string // the plugincmd.Registry command name to dispatch
	help    string
}

var families = []family{
	{word: "space", help: "manage spaces", commands: []subcommand{
		{"list", "space.list", "list every space"},
		{"get", "space.get", "get a space by name or id"},
		{"create", "space.create", "create a space"},
		{"update", "space.update", "update a space"},
	}},
	{word: "object", aliases: []string{"obj"}, help: "manage objects", commands: []subcommand{
		{"list", "object.list", "list objects in the current space"},
		{"get", "object.get", "get an object by name or id"},
		{"create", "object.create", "create an object"},
		{"update", "object.update", "update an object"},
		{"delete", "object.delete", "delete an object"},
	}},
	{word: "type", help: "manage types", commands: []subcommand{
		{"list", "type.list", "list types in the current space"},
		{"get", "type.get", "get a type by name or id"},
		{"create", "type.create", "create a type"},
		{"update", "type.update", "update a type"},
		{"delete", "type.delete", "delete a type"},
	}},
	{word: "property", aliases: []string{"prop"}, help: "manage properties", commands: []subcommand{
		{"list", "property.list", "list properties of the current type"},
		{"get", "property.get", "get a property by name or id"},
		{"create", "property.create", "create a property"},
		{"update", "property.update", "update a property"},
		{"delete", "property.delete", "delete a property"},
	}},
	{word: "tag", help: "manage tags", commands: []subcommand{
		{"list", "tag.list", "list tags of the current property"},
		{"get", "tag.get", "get a tag by name or id"},
		{"create", "tag.create", "create a tag"},
		{"update", "tag.update", "update a tag"},
		{"delete", "tag.delete", "delete a tag"},
	}},
	{word: "template", help: "read templates", commands: []subcommand{
		{"list", "template.list", "list templates of the current type"},
		{"get", "template.get", "get a template by id"},
	}},
	{word: "list", help: "manage lists", commands: []subcommand{
		{"list", "list.list", "list the lists in the current space"},
		{"views", "list.views", "list the views of the current list"},
		{"objects", "list.objects", "list the objects in the current list"},
		{"add-objects", "list.add_objects", "add objects to the current list"},
		{"remove-object", "list.remove_object", "remove one object from the current list"},
		{"remove-objects", "list.remove_objects", "remove objects from the current list"},
	}},
	{word: "member", help: "manage members", commands: []subcommand{
		{"list", "member.list", "list members of the current space"},
		{"get", "member.get", "get a member by id"},
		{"invite", "member.invite", "invite a member (unimplemented)"},
		{"remove", "member.remove", "remove a member (unimplemented)"},
		{"update-role", "member.update_role", "update a member's role (unimplemented)"},
	}},
	{word: "search", help: "search objects", commands: []subcommand{
		{"global", "search.global", "search across every space"},
		{"here", "search.in_space", "search within the current space"},
	}},
}

// session carries the state an interactive shell keeps across commands:
// the last returned EntityValue, threaded as the next command's
// Pipeline, per spec §4.5.
type session struct {
	deps     *plugincmd.Deps
	registry *plugincmd.Registry
	pipeline pluginvalue.Value
}

func (s *session) run(ctx context.Context, command string, c *ishell.Context) {
	args, flags := parseArgs(c.Args)
	resp, err := s.registry.Dispatch(ctx, command, plugincmd.Request{
		Args:     args,
		Flags:    flags,
		Pipeline: s.pipeline,
	})
	if err != nil {
		c.Println(color.RedString("error: %v", err))
		return
	}
	if !resp.Value.IsZero() {
		s.pipeline = resp.Value
	}
	format := "table"
	if s.deps.Config != nil && s.deps.Config.OutputFormat != "" {
		format = s.deps.Config.OutputFormat
	}
	var buf bytes.Buffer
	if err := RenderRecords(&buf, format, resp.Records); err != nil {
		c.Println(color.RedString("render error: %v", err))
		return
	}
	c.Print(buf.String())
}

// Run starts the interactive shell over deps, the way kagent's
// runInteractive builds an ishell.Shell with one ishell.Cmd per resource
// family, translated here into one ishell.Cmd per entity family with a
// subcommand per plugincmd operation instead of kagent's agents/
// sessions/runs.
func Run(ctx context.Context, cfg *config.Config, registry *plugincmd.Registry, deps *plugincmd.Deps) {
	shell := ishell.New()
	shell.SetPrompt(boldBlue("anytype >> "))
	shell.Println("Welcome to the anytype CLI. Type 'help' to see available commands.")

	s := &session{deps: deps, registry: registry}

	for _, fam := range families {
		famCmd := &ishell.Cmd{Name: fam.word, Aliases: fam.aliases, Help: fam.help}
		for _, sub := range fam.commands {
			sub := sub
			famCmd.AddCmd(&ishell.Cmd{
				Name: sub.name,
				Help: sub.help,
				Func: func(c *ishell.Context) {
					s.run(ctx, sub.command, c)
				},
			})
		}
		shell.AddCmd(famCmd)
	}

	shell.AddCmd(&ishell.Cmd{
		Name: "login",
		Help: "authenticate against the local Anytype service",
		Func: func(c *ishell.Context) {
			if _, err := Login(ctx, deps.Client, os.Stdout); err != nil {
				c.Println(color.RedString("login failed: %v", err))
			}
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "pipeline",
		Help: "print the current piped-in entity value, if any",
		Func: func(c *ishell.Context) {
			if s.pipeline.IsZero() {
				c.Println("(empty)")
				return
			}
			c.Println(strings.Join([]string{string(s.pipeline.Kind), s.pipeline.Name(), s.pipeline.ID()}, " "))
		},
	})

	shell.NotFound(func(c *ishell.Context) {
		c.Println("Command not found. Type 'help' to see available commands.")
	})

	shell.Run()
}

// EnsureCredential backfills deps.Client's bearer key from the
// configured credential store before the shell starts, so a returning
// user doesn't have to re-run login every session.
func EnsureCredential(stored string, deps *plugincmd.Deps) {
	if stored == "" {
		return
	}
	deps.Client.SetAPIKey(stored)
}

// Fatalf prints an error to stderr and exits 1, the small helper every
// cobra Run closure in cmd/anytype/main.go funnels hard failures
// through.
func Fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
