package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/systmms/paramstore/internal/config"
	"github.com/systmms/paramstore/pkg/paramstore"
)

func NewUpsertCommand(cfg *config.Config) *cobra.Command {
	return newWriteCommand(cfg,
		"upsert NAME VALUE",
		"Create or overwrite a parameter",
		`Store a parameter under the active group regardless of whether it
already exists. Each successful call bumps the parameter's version.

Examples:
  # Set a value without caring about prior existence
  pstore upsert --group /myapp/staging FEATURE_FLAGS on`,
		false,
		func(ctx context.Context, store *paramstore.Store, name, value string, opts []paramstore.WriteOption) (*paramstore.Record, error) {
			return store.Upsert(ctx, name, value, opts...)
		})
}
