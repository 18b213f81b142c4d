package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for finder resources.
	uriScheme = "greggs://"
)

// datasetInfo describes the loaded dataset and the accepted search bounds.
type datasetInfo struct {
	Locations          int     `json:"locations"`
	DefaultRadiusMiles float64 `json:"default_radius_miles"`
	MinRadiusMiles     float64 `json:"min_radius_miles"`
	MaxRadiusMiles     float64 `json:"max_radius_miles"`
	MaxResults         int     `json:"max_results"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "dataset",
		Name:        "dataset",
		Description: "Size of the loaded store dataset and the accepted search radius",
		MIMEType:    "application/json",
	}, s.handleDatasetResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "postcodes/{postcode}/nearest",
		Name:        "postcode-nearest",
		Description: "Nearest stores to a postcode at the default radius",
		MIMEType:    "application/json",
	}, s.handleNearestResource)
}

// handleDatasetResource reports the dataset size and radius bounds.
func (s *Server) handleDatasetResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	info := datasetInfo{
		Locations:          s.ports.Finder.DatasetSize(),
		DefaultRadiusMiles: s.defaultRadius(),
		MinRadiusMiles:     domain.MinRadiusMiles,
		MaxRadiusMiles:     domain.MaxRadiusMiles,
		MaxResults:         domain.MaxResults,
	}
	return jsonResource(req.Params.URI, info)
}

// handleNearestResource runs a search at the default radius for the
// postcode named in the URI.
func (s *Server) handleNearestResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	postcode := extractPostcode(req.Params.URI)
	if postcode == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	opts := domain.SearchOptions{RadiusMiles: s.defaultRadius()}
	result, err := s.ports.Finder.Find(ctx, postcode, opts)
	if errors.Is(err, domain.ErrPostcodeNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("finding locations: %w", err)
	}

	return jsonResource(req.Params.URI, toOutput(result))
}

// defaultRadius returns the configured default radius, or the built-in one.
func (s *Server) defaultRadius() float64 {
	if s.ports.Settings == nil {
		return domain.DefaultRadiusMiles
	}
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return domain.DefaultRadiusMiles
	}
	return settings.Search.DefaultRadiusMiles
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractPostcode extracts the postcode from a URI like
// greggs://postcodes/{postcode}/nearest. The postcode may be percent-encoded.
func extractPostcode(uri string) string {
	const prefix = uriScheme + "postcodes/"
	const suffix = "/nearest"

	if !strings.HasPrefix(uri, prefix) || !strings.HasSuffix(uri, suffix) {
		return ""
	}

	raw := strings.TrimSuffix(strings.TrimPrefix(uri, prefix), suffix)
	postcode, err := url.PathUnescape(raw)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(postcode)
}
