package commands

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/cda/internal/constants"
)

func TestNewSpaceCommand(t *testing.T) {
	cmd := NewSpaceCommand()
	assert.Equal(t, "space", cmd.Use)
	assert.Equal(t, "Show the configured space", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}

func TestNewContentTypesCommand(t *testing.T) {
	cmd := NewContentTypesCommand()
	assert.Equal(t, "content-types", cmd.Use)
	assert.Equal(t, []string{"content-type", "types"}, cmd.Aliases)

	var commandNames []string
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
}

func TestNewEntriesCommand(t *testing.T) {
	cmd := NewEntriesCommand()
	assert.Equal(t, "entries", cmd.Use)
	assert.Equal(t, []string{"entry"}, cmd.Aliases)

	var commandNames []string
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
}

func TestEntriesListCommandFlags(t *testing.T) {
	cmd := newEntriesListCommand()

	flags := []string{"content-type", "query", "order", "limit", "skip"}
	for _, flagName := range flags {
		flag := cmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "Flag %s should exist", flagName)
	}
}

func TestNewAssetsCommand(t *testing.T) {
	cmd := NewAssetsCommand()
	assert.Equal(t, "assets", cmd.Use)
	assert.Equal(t, []string{"asset"}, cmd.Aliases)
	assert.Len(t, cmd.Commands(), 2)
}

func TestNewSyncCommand(t *testing.T) {
	cmd := NewSyncCommand()
	assert.Equal(t, "sync", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("sync-token"))
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.0.0", "abc123", "2026-01-01")
	assert.Equal(t, "version", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestCreateClient(t *testing.T) {
	t.Run("requires a space", func(t *testing.T) {
		viper.Reset()

		_, err := CreateClient()
		require.ErrorIs(t, err, constants.ErrNoSpaceConfigured)
	})

	t.Run("requires a token", func(t *testing.T) {
		viper.Reset()
		viper.Set("space", "space1")

		_, err := CreateClient()
		require.ErrorIs(t, err, constants.ErrNoTokenConfigured)
	})

	t.Run("creates a client from viper config", func(t *testing.T) {
		viper.Reset()
		viper.Set("space", "space1")
		viper.Set("token", "test-token")

		client, err := CreateClient()
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}
