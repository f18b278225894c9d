package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/systmms/paramstore/internal/config"
	pserrors "github.com/systmms/paramstore/internal/errors"
	"github.com/systmms/paramstore/pkg/paramstore"
)

// newStore loads the configuration and builds the facade from it.
func newStore(ctx context.Context, cfg *config.Config) (*paramstore.Store, error) {
	if err := cfg.Load(); err != nil {
		return nil, err
	}

	opts := []paramstore.Option{
		paramstore.WithCleanNames(cfg.CleanNames()),
		paramstore.WithDebugLogging(cfg.Debug()),
	}
	if group := cfg.Group(); group != "" {
		opts = append(opts, paramstore.WithGroup(group))
	}
	if profile := cfg.Profile(); profile != "" {
		opts = append(opts, paramstore.WithProfile(profile))
	}

	return paramstore.New(ctx, cfg.Region(), opts...)
}

// wrapStoreError attaches a suggestion to untranslated backend errors.
// Validation and existence errors already carry their own diagnostics
// and pass through unchanged.
func wrapStoreError(err error) error {
	var backendErr paramstore.BackendError
	if errors.As(err, &backendErr) {
		return pserrors.UserError{
			Message:    "Parameter store request failed",
			Details:    backendErr.Error(),
			Suggestion: pserrors.BackendSuggestion(backendErr),
		}
	}
	return err
}

// parseTags parses repeated key=value flags into tags.
func parseTags(raw []string) ([]paramstore.Tag, error) {
	var tags []paramstore.Tag
	for _, kv := range raw {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			return nil, pserrors.UserError{
				Message:    fmt.Sprintf("Invalid tag %q", kv),
				Suggestion: "Use --tag key=value",
			}
		}
		tags = append(tags, paramstore.Tag{Key: key, Value: value})
	}
	return tags, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
