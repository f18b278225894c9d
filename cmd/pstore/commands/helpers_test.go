package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pserrors "github.com/systmms/paramstore/internal/errors"
	"github.com/systmms/paramstore/pkg/paramstore"
)

func TestParseTags(t *testing.T) {
	t.Parallel()

	tags, err := parseTags([]string{"team=platform", "env=staging", "empty="})
	require.NoError(t, err)
	assert.Equal(t, []paramstore.Tag{
		{Key: "team", Value: "platform"},
		{Key: "env", Value: "staging"},
		{Key: "empty", Value: ""},
	}, tags)
}

func TestParseTagsRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"no-separator", "=missing-key"} {
		_, err := parseTags([]string{raw})
		require.Error(t, err, "input %q", raw)
		assert.Contains(t, err.Error(), raw)
	}
}

func TestWriteFlagsRejectUnknownTypeAndTier(t *testing.T) {
	t.Parallel()

	flags := writeFlags{typ: "Binary", tier: string(paramstore.TierStandard)}
	_, err := flags.options()
	var cfgErr pserrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "type", cfgErr.Field)

	flags = writeFlags{typ: string(paramstore.TypeString), tier: "Premium"}
	_, err = flags.options()
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "tier", cfgErr.Field)
}

func TestWrapStoreErrorAddsSuggestionForBackendErrors(t *testing.T) {
	t.Parallel()

	backendErr := paramstore.BackendError{
		Op:   "get parameter /app/DB_HOST",
		Code: "ThrottlingException",
		Err:  fmt.Errorf("ThrottlingException: rate exceeded"),
	}

	wrapped := wrapStoreError(backendErr)
	var userErr pserrors.UserError
	require.ErrorAs(t, wrapped, &userErr)
	assert.Contains(t, userErr.Suggestion, "throttled")

	// Domain errors pass through untouched.
	notFound := paramstore.NotFoundError{Parameter: "DB_HOST", Group: "/app"}
	assert.True(t, errors.Is(wrapStoreError(notFound), notFound))
}
