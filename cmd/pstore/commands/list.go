package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/systmms/paramstore/internal/config"
)

func NewListCommand(cfg *config.Config) *cobra.Command {
	var (
		recursive  bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the parameters of the active group",
		Long: `List all parameters under the active group as NAME=value lines,
sorted by name.

Examples:
  # Direct children of the group
  pstore list --group /myapp/staging

  # Everything below the group, including nested groups
  pstore list --group /myapp --recursive --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := newStore(ctx, cfg)
			if err != nil {
				return err
			}

			values, err := store.ListGroup(ctx, recursive)
			if err != nil {
				return wrapStoreError(err)
			}

			if jsonOutput {
				return printJSON(cmd, values)
			}

			names := make([]string, 0, len(values))
			for name := range values {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", name, values[name])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&recursive, "recursive", false, "Include nested groups")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as a JSON object")

	return cmd
}
