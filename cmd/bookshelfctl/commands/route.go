package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/target/bookshelf-web/internal/domain/route"
)

func routeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Inspect the route table and guard",
	}
	cmd.AddCommand(routeListCmd(), routeCheckCmd())
	return cmd
}

func routeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every registered route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			guard := route.NewGuard(route.AuthStateFunc(anonymous))
			for _, r := range guard.Table().Routes() {
				access := "auth"
				if guard.Exempt(r.Name) {
					access = "public"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-14s %-22s %s\n", r.Name, r.Path, access); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func routeCheckCmd() *cobra.Command {
	var authed bool
	cmd := &cobra.Command{
		Use:   "check <name>",
		Short: "Show what the guard decides for navigation to a route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			to := route.Name(args[0])
			state := route.AuthStateFunc(anonymous)
			if authed {
				state = func(context.Context) (bool, error) { return true, nil }
			}

			guard := route.NewGuard(state)
			if !guard.Table().Has(to) {
				return fmt.Errorf("unknown route %q", to)
			}
			d := guard.Decide(cmd.Context(), to, "")
			_, err := fmt.Fprintln(cmd.OutOrStdout(), d.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&authed, "authed", false, "evaluate as a signed-in reader")
	return cmd
}

func anonymous(context.Context) (bool, error) { return false, nil }
