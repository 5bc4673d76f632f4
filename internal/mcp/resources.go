package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/prevent-risk-mcp-server/pkg/prevent"
)

const (
	resourceModelInfo   = "prevent://model/info"
	resourceInputRanges = "prevent://model/inputs"
	resourceBands       = "prevent://model/bands"
)

// bandSet groups the category bands of both horizons.
type bandSet struct {
	TenYear    []prevent.Band `json:"ten_year"`
	ThirtyYear []prevent.Band `json:"thirty_year"`
}

// registerResources exposes static model metadata as read-only JSON resources.
func (s *Server) registerResources() {
	resources := []*mcp.Resource{
		{
			URI:         resourceModelInfo,
			Name:        "model_info",
			Title:       "PREVENT Model Description",
			Description: "Equations, endpoints, horizons, input ranges and category bands",
			MIMEType:    "application/json",
		},
		{
			URI:         resourceInputRanges,
			Name:        "input_ranges",
			Title:       "PREVENT Input Ranges",
			Description: "Units and accepted range of every predictor",
			MIMEType:    "application/json",
		},
		{
			URI:         resourceBands,
			Name:        "risk_bands",
			Title:       "PREVENT Risk Category Bands",
			Description: "Percentage thresholds for the 10-year and 30-year risk categories",
			MIMEType:    "application/json",
		},
	}

	for _, r := range resources {
		s.mcpServer.AddResource(r, s.handleReadResource)
	}

	s.logger.WithField("resource_count", len(resources)).Info("Successfully registered all resources")
}

// handleReadResource renders the resource named by the request URI.
func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := req.Params.URI
	s.logger.WithField("uri", uri).Debug("Reading resource")

	var content any
	switch uri {
	case resourceModelInfo:
		content = s.calculator.ModelInfo()
	case resourceInputRanges:
		content = prevent.InputRanges()
	case resourceBands:
		content = bandSet{
			TenYear:    prevent.Bands(prevent.TenYear),
			ThirtyYear: prevent.Bands(prevent.ThirtyYear),
		}
	default:
		return nil, mcp.ResourceNotFoundError(uri)
	}

	body, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource %s: %w", uri, err)
	}

	s.logger.WithFields(logrus.Fields{
		"uri":  uri,
		"size": len(body),
	}).Info("Served resource")

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: uri, MIMEType: "application/json", Text: string(body)},
		},
	}, nil
}
