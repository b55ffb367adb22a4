package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := NewRootCmd()

	assert.NotNil(t, cmd.Flags().Lookup("port"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "migrate")
}

func TestMigrateCmdCreatesDatabase(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "cli.db"))

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"migrate"})

	require.NoError(t, cmd.Execute())

	// running twice is a no-op
	cmd = NewRootCmd()
	cmd.SetArgs([]string{"migrate"})
	require.NoError(t, cmd.Execute())
}

func TestSetupLogger(t *testing.T) {
	for _, env := range []string{envLocal, envDev, envProd, "unknown"} {
		assert.NotNil(t, setupLogger(env))
	}
}
