package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/netra-cyber/netra-portal/models"
)

// Cases lists the cases visible to the token's holder.
func (c *Client) Cases(ctx context.Context, token string) ([]models.Case, error) {
	var cases []models.Case
	err := c.get(ctx, token, "/cases/", nil, "Failed to fetch cases", &cases)
	return cases, err
}

// Case fetches a single case.
func (c *Client) Case(ctx context.Context, token string, id int) (models.Case, error) {
	var cs models.Case
	err := c.get(ctx, token, fmt.Sprintf("/cases/%d", id), nil, "Failed to fetch case", &cs)
	return cs, err
}

// CreateCase registers a new FIR.
func (c *Client) CreateCase(ctx context.Context, token string, in models.CaseCreate) (models.Case, error) {
	if in.AmountInvolved == "" {
		in.AmountInvolved = "0"
	}
	var cs models.Case
	err := c.sendJSON(ctx, http.MethodPost, token, "/cases/", nil, in, "Failed to create case", &cs)
	return cs, err
}

// UpdateCaseStatus moves a case to status (e.g. "closed").
func (c *Client) UpdateCaseStatus(ctx context.Context, token string, id int, status string) (models.Case, error) {
	var cs models.Case
	err := c.sendJSON(ctx, http.MethodPatch, token, fmt.Sprintf("/cases/%d/status", id), nil,
		models.CaseStatusUpdate{Status: status}, "Failed to update status", &cs)
	return cs, err
}
