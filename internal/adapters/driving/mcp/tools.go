package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

// statusInvalidPostcode reports a postcode the geocoder could not resolve.
const statusInvalidPostcode = "invalid_postcode"

// FindNearestInput is the input schema for the find_nearest_locations tool.
type FindNearestInput struct {
	Postcode    string  `json:"postcode" jsonschema:"UK postcode to search from, e.g. NE1 4ST"`
	RadiusMiles float64 `json:"radius_miles,omitempty" jsonschema:"search radius in miles between 1 and 50 (default 10)"`
}

// FindNearestOutput is the output schema for the find_nearest_locations tool.
type FindNearestOutput struct {
	Status      string           `json:"status"`
	Message     string           `json:"message,omitempty"`
	Postcode    string           `json:"postcode"`
	RadiusMiles float64          `json:"radius_miles"`
	Results     []LocationOutput `json:"results"`
	Count       int              `json:"count"`
}

// LocationOutput is one nearby store.
type LocationOutput struct {
	Name          string  `json:"name"`
	Postcode      string  `json:"postcode"`
	DistanceMiles float64 `json:"distance_miles"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_nearest_locations",
		Description: "Find the five Greggs stores nearest to a UK postcode within a radius in miles",
	}, s.handleFindNearest)
}

// handleFindNearest handles the find_nearest_locations tool invocation.
// An unresolvable postcode is a normal outcome, not a tool error.
func (s *Server) handleFindNearest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindNearestInput,
) (*mcp.CallToolResult, FindNearestOutput, error) {
	radius := input.RadiusMiles
	if radius == 0 {
		radius = domain.DefaultRadiusMiles
	}
	invalid := FindNearestOutput{
		Status:      statusInvalidPostcode,
		Message:     "Invalid postcode.",
		Postcode:    strings.TrimSpace(input.Postcode),
		RadiusMiles: radius,
		Results:     []LocationOutput{},
	}
	if strings.TrimSpace(input.Postcode) == "" {
		return nil, invalid, nil
	}

	opts := domain.SearchOptions{RadiusMiles: radius}
	result, err := s.ports.Finder.Find(ctx, input.Postcode, opts)
	if errors.Is(err, domain.ErrPostcodeNotFound) {
		return nil, invalid, nil
	}
	if err != nil {
		return nil, FindNearestOutput{}, err
	}

	return nil, toOutput(result), nil
}

func toOutput(result *domain.SearchResult) FindNearestOutput {
	output := FindNearestOutput{
		Status:      result.Status.String(),
		Message:     result.Status.Message(),
		Postcode:    result.Postcode,
		RadiusMiles: result.RadiusMiles,
		Results:     make([]LocationOutput, len(result.Locations)),
		Count:       len(result.Locations),
	}
	for i, loc := range result.Locations {
		output.Results[i] = LocationOutput(loc)
	}
	return output
}
