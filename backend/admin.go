package backend

import (
	"context"
	"io"
	"net/url"

	"github.com/netra-cyber/netra-portal/models"
)

// AuditLogs returns the latest audit trail entries.
func (c *Client) AuditLogs(ctx context.Context, token string) ([]models.AuditLog, error) {
	var out []models.AuditLog
	err := c.get(ctx, token, "/admin/logs", nil, "Failed to fetch logs", &out)
	return out, err
}

// IPLookup resolves an IP address or hostname to its network owner.
func (c *Client) IPLookup(ctx context.Context, token, query string) (models.IPLookup, error) {
	var out models.IPLookup
	err := c.get(ctx, token, "/tools/ip-lookup", url.Values{"query": {query}}, "Lookup failed", &out)
	return out, err
}

// NamedFile is one file of a multi-file upload.
type NamedFile struct {
	Name    string
	Content io.Reader
}

// AnalyzeTowerDump finds identifiers common to every uploaded dump.
func (c *Client) AnalyzeTowerDump(ctx context.Context, token string, files []NamedFile) (models.TowerDumpResult, error) {
	parts := make([]filePart, 0, len(files))
	for _, f := range files {
		parts = append(parts, filePart{field: "files", name: f.Name, r: f.Content})
	}
	var out models.TowerDumpResult
	err := c.upload(ctx, token, "/tools/analyze-tower-dump", "Analysis failed", nil, parts, &out)
	return out, err
}
