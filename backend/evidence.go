package backend

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/netra-cyber/netra-portal/models"
)

// Evidence lists the files attached to a case.
func (c *Client) Evidence(ctx context.Context, token string, caseID int) ([]models.EvidenceFile, error) {
	var files []models.EvidenceFile
	err := c.get(ctx, token, fmt.Sprintf("/files/case/%d", caseID), nil, "Failed to fetch evidence", &files)
	return files, err
}

// UploadEvidence stores a new file against a case. fileType is the backend's category
// (CDR_CSV, CAF_PDF, ...).
func (c *Client) UploadEvidence(ctx context.Context, token string, caseID int, fileType, filename string, content io.Reader) (models.EvidenceFile, error) {
	var ev models.EvidenceFile
	err := c.upload(ctx, token, fmt.Sprintf("/files/upload/%d", caseID), "Upload failed",
		map[string]string{"file_type": fileType},
		[]filePart{{field: "file", name: filename, r: content}}, &ev)
	return ev, err
}

// DownloadEvidence streams an evidence file as an attachment. The filename comes from the
// backend's Content-Disposition header, "evidence_file" when it has none.
func (c *Client) DownloadEvidence(ctx context.Context, token string, id int) (*Download, error) {
	return c.download(ctx, token, fmt.Sprintf("/files/download/%d", id), nil, "Download failed", defaultDownloadName)
}

// ViewEvidence streams an evidence file for inline preview. The backend's view endpoint
// authenticates through a query parameter; the token stays on the server side of the portal.
func (c *Client) ViewEvidence(ctx context.Context, token string, id int) (*Download, error) {
	q := url.Values{"token": {token}}
	return c.download(ctx, "", fmt.Sprintf("/files/view/%d", id), q, "Failed to fetch file content.", defaultDownloadName)
}
