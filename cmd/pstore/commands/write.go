package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/systmms/paramstore/internal/config"
	pserrors "github.com/systmms/paramstore/internal/errors"
	"github.com/systmms/paramstore/pkg/paramstore"
)

// writeFlags are the attribute flags shared by create, update and
// upsert. Tags are only registered for create: the backend rejects tags
// combined with an overwriting write.
type writeFlags struct {
	typ         string
	tier        string
	description string
	keyID       string
	tags        []string
}

func (f *writeFlags) register(cmd *cobra.Command, allowTags bool) {
	cmd.Flags().StringVar(&f.typ, "type", string(paramstore.TypeString), "Parameter type: String, StringList or SecureString")
	cmd.Flags().StringVar(&f.tier, "tier", string(paramstore.TierStandard), "Storage tier: Standard or Advanced")
	cmd.Flags().StringVar(&f.description, "description", "", "Parameter description")
	cmd.Flags().StringVar(&f.keyID, "key-id", "", "KMS key id for SecureString parameters")
	if allowTags {
		cmd.Flags().StringArrayVar(&f.tags, "tag", nil, "Tag as key=value (repeatable)")
	}
}

func (f *writeFlags) options() ([]paramstore.WriteOption, error) {
	switch paramstore.Type(f.typ) {
	case paramstore.TypeString, paramstore.TypeStringList, paramstore.TypeSecureString:
	default:
		return nil, pserrors.ConfigError{
			Field:      "type",
			Value:      f.typ,
			Message:    "unknown parameter type",
			Suggestion: "Use String, StringList or SecureString",
		}
	}
	switch paramstore.Tier(f.tier) {
	case paramstore.TierStandard, paramstore.TierAdvanced:
	default:
		return nil, pserrors.ConfigError{
			Field:      "tier",
			Value:      f.tier,
			Message:    "unknown storage tier",
			Suggestion: "Use Standard or Advanced",
		}
	}

	opts := []paramstore.WriteOption{
		paramstore.WithType(paramstore.Type(f.typ)),
		paramstore.WithTier(paramstore.Tier(f.tier)),
	}
	if f.description != "" {
		opts = append(opts, paramstore.WithDescription(f.description))
	}
	if f.keyID != "" {
		opts = append(opts, paramstore.WithEncryptionKey(f.keyID))
	}
	if len(f.tags) > 0 {
		tags, err := parseTags(f.tags)
		if err != nil {
			return nil, err
		}
		opts = append(opts, paramstore.WithTags(tags...))
	}
	return opts, nil
}

type writeFunc func(ctx context.Context, store *paramstore.Store, name, value string, opts []paramstore.WriteOption) (*paramstore.Record, error)

func newWriteCommand(cfg *config.Config, use, short, long string, allowTags bool, write writeFunc) *cobra.Command {
	var (
		flags      writeFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := newStore(ctx, cfg)
			if err != nil {
				return err
			}

			record, err := write(ctx, store, args[0], args[1], opts)
			if err != nil {
				return wrapStoreError(err)
			}

			if jsonOutput {
				return printJSON(cmd, record)
			}
			cfg.Logger.Info("%s is now at version %d", record.FullName, record.Version)
			return nil
		},
	}

	flags.register(cmd, allowTags)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the stored record as JSON")

	return cmd
}
