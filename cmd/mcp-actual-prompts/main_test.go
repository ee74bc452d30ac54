package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_FlagsAreBound(t *testing.T) {
	cmd := newRootCmd()
	for flag := range flagBindings {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %s is not defined", flag)
	}
}

func TestRootCmd_InvalidSettings(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--transport", "bogus"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transport")
}

func TestRootCmd_MissingMetadata(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--metadata", t.TempDir() + "/absent.yaml", "--log-level", "error"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read metadata file")
}
