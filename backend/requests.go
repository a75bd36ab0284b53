package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/netra-cyber/netra-portal/models"
)

// Requests lists interception/disclosure requests.
func (c *Client) Requests(ctx context.Context, token string) ([]models.Request, error) {
	var reqs []models.Request
	err := c.get(ctx, token, "/requests/", nil, "Failed to fetch requests", &reqs)
	return reqs, err
}

// CreateRequest files one request against caseID.
func (c *Client) CreateRequest(ctx context.Context, token string, caseID int, in models.RequestCreate) (models.Request, error) {
	var r models.Request
	q := url.Values{"case_id": {strconv.Itoa(caseID)}}
	err := c.sendJSON(ctx, http.MethodPost, token, "/requests/", q, in, "Failed to create request", &r)
	return r, err
}

// CreateBatchRequests files requests for several mobile numbers at once. The backend groups
// numbers by operator, so the result can hold fewer requests than numbers.
func (c *Client) CreateBatchRequests(ctx context.Context, token string, caseID int, in models.BatchRequest) ([]models.Request, error) {
	var out []models.Request
	q := url.Values{"case_id": {strconv.Itoa(caseID)}}
	err := c.sendJSON(ctx, http.MethodPost, token, "/requests/batch", q, in, "Failed to create request", &out)
	return out, err
}

// ApproveRequest approves a pending request.
func (c *Client) ApproveRequest(ctx context.Context, token string, id int) (models.Request, error) {
	var r models.Request
	err := c.sendJSON(ctx, http.MethodPost, token, fmt.Sprintf("/requests/%d/approve", id), nil, nil, "Failed to approve request", &r)
	return r, err
}

// RejectRequest rejects a pending request with a reason.
func (c *Client) RejectRequest(ctx context.Context, token string, id int, reason string) (models.Request, error) {
	var r models.Request
	q := url.Values{"reason": {reason}}
	err := c.sendJSON(ctx, http.MethodPost, token, fmt.Sprintf("/requests/%d/reject", id), q, nil, "Failed to reject request", &r)
	return r, err
}

// DispatchRequest marks an approved request as sent to the operator.
func (c *Client) DispatchRequest(ctx context.Context, token string, id int) (models.Request, error) {
	var r models.Request
	err := c.sendJSON(ctx, http.MethodPost, token, fmt.Sprintf("/requests/%d/dispatch", id), nil, nil, "Failed to dispatch request", &r)
	return r, err
}

// UploadRequestFile attaches the signed copy or operator response to a request.
func (c *Client) UploadRequestFile(ctx context.Context, token string, id int, filename string, content io.Reader) (models.UploadResult, error) {
	var out models.UploadResult
	err := c.upload(ctx, token, fmt.Sprintf("/requests/%d/upload", id), "Upload failed",
		nil, []filePart{{field: "file", name: filename, r: content}}, &out)
	return out, err
}

// DownloadRequestLetter streams the generated requisition PDF.
func (c *Client) DownloadRequestLetter(ctx context.Context, token string, id int) (*Download, error) {
	return c.download(ctx, token, fmt.Sprintf("/requests/%d/download", id), nil, "Download failed",
		fmt.Sprintf("REQ_%d.pdf", id))
}
