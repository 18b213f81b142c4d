// Package mcp provides an MCP (Model Context Protocol) server adapter for the finder.
// It lets AI assistants look up the stores nearest to a postcode.
package mcp

import "errors"

// ErrMissingFinderService is returned when the finder service is not provided.
var ErrMissingFinderService = errors.New("mcp: finder service is required")
