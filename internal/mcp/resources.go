// ABOUTME: MCP resource implementations for fitness summaries.
// ABOUTME: Provides fitness://dashboard and fitness://report resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	dashboardURI = "fitness://dashboard"
	reportURI    = "fitness://report"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         dashboardURI,
		Name:        "Fitness Dashboard",
		Description: "Totals, latest weight, BMI status, chart series and recent records",
		MIMEType:    "application/json",
	}, s.handleDashboardResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         reportURI,
		Name:        "Fitness Report",
		Description: "Fixed-width plain text report of every workout and measurement",
		MIMEType:    "text/plain",
	}, s.handleReportResource)
}

// Resource handlers

func (s *Server) handleDashboardResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.svc.BuildDashboardSummary(ctx, s.sess), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dashboard: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      dashboardURI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleReportResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      reportURI,
			MIMEType: "text/plain",
			Text:     s.svc.BuildTextReport(ctx, s.sess),
		}},
	}, nil
}
