package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/target/bookshelf-web/internal/validation"
)

var errInvalid = errors.New("invalid")

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <field> <value>",
		Short: "Run a form field validator",
		Long:  "Run a form field validator. Fields: " + strings.Join(fieldNames(), ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, ok := validation.ValidateField(args[0], args[1])
			if !ok {
				return fmt.Errorf("unknown field %q (want one of %s)", args[0], strings.Join(fieldNames(), ", "))
			}
			if res.OK() {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return err
			}
			msg := res.Message(args[0])
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), msg); err != nil {
				return err
			}
			return fmt.Errorf("%s: %w", args[0], errInvalid)
		},
	}
}

func fieldNames() []string {
	names := make([]string, 0, len(validation.FieldValidators))
	for name := range validation.FieldValidators {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
