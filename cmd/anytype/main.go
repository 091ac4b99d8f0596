// Command anytype is the reference CLI host for this toolkit: a cobra
// root command that wires config, client, resolver, and credential
// store together and then hands off to either the interactive shell
// (default, no subcommand), the login/logout subcommands, or the
// one-shot "run" subcommand that dispatches a single plugin command,
// mirroring the split between kagent's bare
// runInteractive() and its install/uninstall/invoke/bug-report
// subcommands in cli/cmd/kagent/main.go.
package main

import (
	"context"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mwatts/anytype-go/internal/clicmd"
	"github.com/mwatts/anytype-go/internal/config"
	"github.com/mwatts/anytype-go/internal/logging"
	"github.com/mwatts/anytype-go/internal/plugincmd"
	"github.com/mwatts/anytype-go/pkg/client"
	"github.com/mwatts/anytype-go/pkg/credstore"
	"github.com/mwatts/anytype-go/pkg/resolver"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd := &cobra.Command{
		Use:   "anytype",
		Short: "anytype is a CLI for a local Anytype-like personal knowledge base",
		Long:  `anytype is a CLI for a local Anytype-like personal knowledge base`,
		Run: func(cmd *cobra.Command, args []string) {
			deps, cfg := mustBuildDeps()
			clicmd.Run(ctx, cfg, plugincmd.New(deps), deps)
		},
	}

	if err := config.Init(rootCmd); err != nil {
		clicmd.Fatalf("configure flags: %v", err)
	}

	rootCmd.AddCommand(newLoginCmd(ctx))
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newRunCmd(ctx))

	if err := rootCmd.Execute(); err != nil {
		clicmd.Fatalf("%v", err)
	}
}

// mustBuildDeps resolves the layered config of spec §6.5, builds the
// API client and resolver over it, and backfills any stored credential
// before a command needs them. It exits the process on a fatal setup
// error, the same "print and os.Exit(1)" shape as the helpers in
// internal/clicmd.
func mustBuildDeps() (*plugincmd.Deps, *config.Config) {
	raw, err := config.Get()
	if err != nil {
		clicmd.Fatalf("load configuration: %v", err)
	}
	cfg, err := config.WithDefaults(raw)
	if err != nil {
		clicmd.Fatalf("apply configuration defaults: %v", err)
	}

	logging.Init()

	c := client.New(
		client.WithBaseURL(cfg.APIEndpoint),
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(logging.Get()),
	)

	r := resolver.New(c,
		resolver.WithTTL(cfg.CacheTTL),
		resolver.WithCaseInsensitive(cfg.CaseInsensitive),
		resolver.WithLogger(logging.Get()),
	)

	store := credentialStore(cfg)
	if key, err := store.Load(); err != nil {
		clicmd.Fatalf("load stored credential: %v", err)
	} else {
		clicmd.EnsureCredential(key, &plugincmd.Deps{Client: c})
	}

	return &plugincmd.Deps{Client: c, Resolver: r, Config: cfg}, cfg
}

func credentialStore(cfg *config.Config) *credstore.FileStore {
	path := cfg.CredentialPath
	if path == "" {
		var err error
		path, err = credstore.DefaultPath()
		if err != nil {
			clicmd.Fatalf("resolve credential path: %v", err)
		}
	}
	return credstore.NewFileStore(afero.NewOsFs(), path)
}

// newLoginCmd runs the out-of-band challenge/response login flow of
// spec §4.2 and persists the resulting API key, so later invocations
// of this binary (interactive or scripted) pick it up automatically.
func newLoginCmd(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "authenticate against the local Anytype service",
		Run: func(cmd *cobra.Command, args []string) {
			deps, cfg := mustBuildDeps()
			key, err := clicmd.Login(ctx, deps.Client, os.Stdout)
			if err != nil {
				clicmd.Fatalf("login: %v", err)
			}
			if err := credentialStore(cfg).Store(key); err != nil {
				clicmd.Fatalf("store credential: %v", err)
			}
		},
	}
}

// newLogoutCmd clears whatever credential login persisted.
func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "forget the stored API key",
		Run: func(cmd *cobra.Command, args []string) {
			_, cfg := mustBuildDeps()
			if err := credentialStore(cfg).Clear(); err != nil {
				clicmd.Fatalf("clear credential: %v", err)
			}
		},
	}
}

// newRunCmd dispatches a single plugincmd command non-interactively,
// the scripting counterpart to the interactive shell: "anytype run
// object.list --flag space=Notes" runs exactly one command and exits,
// useful from shell scripts the way kagent's invoke subcommand runs
// one agent task instead of dropping into its REPL.
func newRunCmd(ctx context.Context) *cobra.Command {
	var flagPairs []string

	cmd := &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "dispatch a single plugin command and print its result",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			deps, cfg := mustBuildDeps()
			registry := plugincmd.New(deps)

			flags := map[string]string{}
			for _, kv := range flagPairs {
				for i := 0; i < len(kv); i++ {
					if kv[i] == '=' {
						flags[kv[:i]] = kv[i+1:]
						break
					}
				}
			}

			resp, err := registry.Dispatch(ctx, args[0], plugincmd.Request{
				Args:  args[1:],
				Flags: flags,
			})
			if err != nil {
				clicmd.Fatalf("%v", err)
			}
			if err := clicmd.RenderRecords(os.Stdout, cfg.OutputFormat, resp.Records); err != nil {
				clicmd.Fatalf("render result: %v", err)
			}
		},
	}
	cmd.Flags().StringArrayVar(&flagPairs, "flag", nil, "key=value flag passed to the dispatched command, may be repeated")
	return cmd
}
