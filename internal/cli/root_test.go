package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "plantaudit", cmd.Use)
	assert.Equal(t, Version, cmd.Version)

	for _, flag := range []string{"config", "data-dir", "verbose", "output"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}
	for _, name := range []string{"audit", "rules", "version"} {
		require.True(t, subcommands[name], "subcommand %q should be registered", name)
	}
}
