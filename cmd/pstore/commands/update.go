package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/systmms/paramstore/internal/config"
	"github.com/systmms/paramstore/pkg/paramstore"
)

func NewUpdateCommand(cfg *config.Config) *cobra.Command {
	return newWriteCommand(cfg,
		"update NAME VALUE",
		"Overwrite a parameter that already exists",
		`Overwrite a parameter under the active group. The command checks that
the parameter exists first and never creates one; use 'create' or
'upsert' for that.

Examples:
  # Point staging at a new database host
  pstore update --group /myapp/staging DB_HOST db2`,
		false,
		func(ctx context.Context, store *paramstore.Store, name, value string, opts []paramstore.WriteOption) (*paramstore.Record, error) {
			return store.Update(ctx, name, value, opts...)
		})
}
