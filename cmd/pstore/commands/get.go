package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/systmms/paramstore/internal/config"
	pserrors "github.com/systmms/paramstore/internal/errors"
)

func NewGetCommand(cfg *config.Config) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Get a single parameter value",
		Long: `Retrieve a parameter from the active group. By default only the raw
value is printed, making the command suitable for scripting.

Examples:
  # Get a single value
  pstore get --group /myapp/staging DB_HOST

  # Get the full record as JSON
  pstore get --group /myapp/staging DB_HOST --json

  # Use in scripts
  export DB_HOST=$(pstore get --group /myapp/staging DB_HOST)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := newStore(ctx, cfg)
			if err != nil {
				return err
			}

			record, err := store.Get(ctx, args[0])
			if err != nil {
				return wrapStoreError(err)
			}
			if record == nil {
				suggestion := "Use 'pstore list' to see the parameters of the active group"
				if group := store.Group(); group != "" {
					return pserrors.UserError{
						Message:    fmt.Sprintf("Parameter '%s' not found in group '%s'", args[0], group),
						Suggestion: suggestion,
					}
				}
				return pserrors.UserError{
					Message:    fmt.Sprintf("Parameter '%s' not found", args[0]),
					Suggestion: suggestion,
				}
			}

			if jsonOutput {
				return printJSON(cmd, record)
			}
			fmt.Fprintln(cmd.OutOrStdout(), record.Value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the full record as JSON")

	return cmd
}
