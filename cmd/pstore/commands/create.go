package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/systmms/paramstore/internal/config"
	"github.com/systmms/paramstore/pkg/paramstore"
)

func NewCreateCommand(cfg *config.Config) *cobra.Command {
	return newWriteCommand(cfg,
		"create NAME VALUE",
		"Create a parameter that does not exist yet",
		`Create a parameter under the active group. The command fails when the
parameter already exists; use 'update' or 'upsert' to overwrite.

Examples:
  # Create a plain parameter
  pstore create --group /myapp/staging DB_HOST db1

  # Create an encrypted parameter with tags
  pstore create --group /myapp/staging DB_PASSWORD s3cret \
    --type SecureString --tag team=platform --tag env=staging`,
		true,
		func(ctx context.Context, store *paramstore.Store, name, value string, opts []paramstore.WriteOption) (*paramstore.Record, error) {
			return store.Create(ctx, name, value, opts...)
		})
}
