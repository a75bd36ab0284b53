package backend

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/netra-cyber/netra-portal/models"
)

// AnalyzeCDR runs call-detail-record analysis on an evidence file.
func (c *Client) AnalyzeCDR(ctx context.Context, token string, evidenceID int) (models.CDRAnalysis, error) {
	var out models.CDRAnalysis
	err := c.get(ctx, token, fmt.Sprintf("/analysis/cdr/%d", evidenceID), nil, "Analysis failed", &out)
	return out, err
}

// UniversalSearch looks an identifier up across every backend source. searchType is one of
// auto, mobile, upi, account, name, fir.
func (c *Client) UniversalSearch(ctx context.Context, token, query, searchType string) (models.SearchResult, error) {
	if searchType == "" {
		searchType = "auto"
	}
	q := url.Values{"query": {query}, "search_type": {searchType}}
	var out models.SearchResult
	err := c.get(ctx, token, "/analysis/universal-search", q, "Search failed", &out)
	return out, err
}

// Correlate finds cases sharing a mobile number.
func (c *Client) Correlate(ctx context.Context, token, mobile string) (models.SearchResult, error) {
	var out models.SearchResult
	err := c.get(ctx, token, "/analysis/correlate/"+url.PathEscape(mobile), nil, "Search failed", &out)
	return out, err
}

// InvestigationData fetches every collection linked to identifier in one report.
func (c *Client) InvestigationData(ctx context.Context, token, identifier string) (models.InvestigationReport, error) {
	q := url.Values{"identifier": {identifier}}
	var out models.InvestigationReport
	err := c.get(ctx, token, "/analysis/comprehensive-investigation-data", q, "Failed to fetch investigation data", &out)
	return out, err
}

// NetworkGraph fetches the entity network around identifier.
func (c *Client) NetworkGraph(ctx context.Context, token, identifier string) (models.NetworkGraph, error) {
	q := url.Values{"identifier": {identifier}}
	var out models.NetworkGraph
	err := c.get(ctx, token, "/analysis/network-graph", q, "Failed to fetch graph data", &out)
	return out, err
}

// FileSearch uploads a document and searches every identifier the backend extracts from it.
func (c *Client) FileSearch(ctx context.Context, token, filename string, content io.Reader) (models.FileSearchResult, error) {
	var out models.FileSearchResult
	err := c.upload(ctx, token, "/analysis/file-search", "File processing failed", nil,
		[]filePart{{field: "file", name: filename, r: content}}, &out)
	return out, err
}
