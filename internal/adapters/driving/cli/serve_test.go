package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Flags(t *testing.T) {
	cmd := findCommand("serve")

	require.NotNil(t, cmd)
	assert.NotNil(t, cmd.Flags().Lookup("addr"))
	assert.NotNil(t, cmd.Flags().Lookup("mcp"))
}

func TestServeCmd_HelpListsEndpoints(t *testing.T) {
	setupTestServices(t, nil)

	out, err := executeCommand(t, "serve", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "/api/v1/nearest")
	assert.Contains(t, out, "/healthz")
}

func TestServeCmd_RequiresFinder(t *testing.T) {
	setupTestServices(t, nil)

	_, err := executeCommand(t, "serve", "--addr", "127.0.0.1:0")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "finder service not configured")
}

func TestMCPServeCmd_Flags(t *testing.T) {
	cmd := findCommand("mcp", "serve")

	require.NotNil(t, cmd)
	flag := cmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_RequiresFinder(t *testing.T) {
	setupTestServices(t, nil)

	_, err := executeCommand(t, "mcp", "serve")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "finder service not configured")
}
