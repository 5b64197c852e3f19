package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	for _, name := range []string{"download", "scrape", "run", "jobs"} {
		sub, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

func TestRootCommandFlags(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "c", flag.Shorthand)
	assert.Equal(t, "settings/applicants.yaml", flag.DefValue)

	status := jobsCmd.Flags().Lookup("status")
	require.NotNil(t, status)
	assert.Equal(t, "failed", status.DefValue)
}
