package commands

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/target/bookshelf-web/internal/domain/status"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <borrow|order> [code]",
		Short: "List a status registry or describe one code",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := status.ParseDomain(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 2 {
				code, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("status code %q is not an integer", args[1])
				}
				d := status.Describe(domain, code)
				_, err = fmt.Fprintf(out, "%d\t%s\t%s\n", code, d.Label, d.Severity.Tag())
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tLABEL\tTYPE")
			for _, e := range status.Entries(domain) {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", e.Code, e.Descriptor.Label, e.Descriptor.Severity.Tag())
			}
			return tw.Flush()
		},
	}
}
