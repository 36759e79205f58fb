package commands

import (
	"fmt"
	"io"
	"log/slog"

	env "github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/target/bookshelf-web/config"
	"github.com/target/bookshelf-web/internal/bootstrap"
	"github.com/target/bookshelf-web/internal/client"
)

type rootOptions struct {
	backendURL string
	token      string
	verbose    bool
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "bookshelfctl",
		Short:        "Inspect bookshelf routes and statuses, and poke the bookstore backend",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.backendURL, "backend", "", "backend base URL (default $BACKEND_URL)")
	root.PersistentFlags().StringVar(&opts.token, "token", "", "backend token for authenticated calls")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log backend calls to stderr")

	root.AddCommand(
		statusCmd(),
		routeCmd(),
		validateCmd(),
		loginCmd(opts),
		searchCmd(opts),
	)
	return root
}

// backendClient resolves backend settings from BACKEND_* env vars and flags.
func (o *rootOptions) backendClient(cmd *cobra.Command) (*client.Client, error) {
	var cfg config.BackendConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "BACKEND_"}); err != nil {
		return nil, fmt.Errorf("parse backend config: %w", err)
	}
	if o.backendURL != "" {
		cfg.URL = o.backendURL
	}
	cfg.Sanitize()

	logOut := io.Discard
	if o.verbose {
		logOut = cmd.ErrOrStderr()
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return bootstrap.NewBackendClient(cfg, nil, logger)
}
