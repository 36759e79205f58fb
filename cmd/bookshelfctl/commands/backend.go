package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/target/bookshelf-web/internal/client"
	"github.com/target/bookshelf-web/internal/domain/model"
	"github.com/target/bookshelf-web/internal/validation"
)

func loginCmd(opts *rootOptions) *cobra.Command {
	var form model.LoginForm
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password and print the backend token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if res := validation.LoginForm(form); !res.OK() {
				return res.Err()
			}
			c, err := opts.backendClient(cmd)
			if err != nil {
				return err
			}
			tok, err := c.Auth.LoginPassword(cmd.Context(), form)
			if err != nil {
				return describeBackendError(err)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(tok)
		},
	}
	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "account password")
	return cmd
}

func searchCmd(opts *rootOptions) *cobra.Command {
	var q model.SearchQuery
	cmd := &cobra.Command{
		Use:   "search [name]",
		Short: "Search the catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				q.Name = args[0]
			}
			c, err := opts.backendClient(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if opts.token != "" {
				ctx = client.WithToken(ctx, opts.token)
			}
			page, err := c.Catalog.Search(ctx, q)
			if err != nil {
				return describeBackendError(err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "ID\tNAME\tAUTHOR\tSTOCK\n")
			for _, b := range page.Records {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", b.ID, b.Name, b.Author, b.Stock)
			}
			fmt.Fprintf(tw, "\n%d of %d\n", len(page.Records), page.Total)
			return tw.Flush()
		},
	}
	cmd.Flags().Int64Var(&q.CategoryID, "category", 0, "category id")
	cmd.Flags().IntVar(&q.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&q.PageSize, "page-size", model.DefaultPageSize, "results per page")
	return cmd
}

// describeBackendError surfaces the backend's own message for rejections.
func describeBackendError(err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("backend rejected the request: %s", apiErr.Message)
	}
	return err
}
