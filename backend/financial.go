package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/netra-cyber/netra-portal/models"
)

// FinancialEntities lists the accounts, UPI IDs and wallets linked to a case.
func (c *Client) FinancialEntities(ctx context.Context, token string, caseID int) ([]models.FinancialEntity, error) {
	var out []models.FinancialEntity
	err := c.get(ctx, token, fmt.Sprintf("/financial-entities/%d", caseID), nil, "Failed to fetch financial entities", &out)
	return out, err
}

// CreateFinancialEntity links a financial identifier to a case.
func (c *Client) CreateFinancialEntity(ctx context.Context, token string, caseID int, in models.FinancialEntity) (models.FinancialEntity, error) {
	var out models.FinancialEntity
	err := c.sendJSON(ctx, http.MethodPost, token, fmt.Sprintf("/financial-entities/%d", caseID), nil, in,
		"Failed to add financial entity", &out)
	return out, err
}

// CreateNPCIRequest raises a UPI transaction request with NPCI.
func (c *Client) CreateNPCIRequest(ctx context.Context, token string, caseID int, in models.NPCIRequest) (models.NPCIRequest, error) {
	var out models.NPCIRequest
	err := c.sendJSON(ctx, http.MethodPost, token, fmt.Sprintf("/npci/requests/%d", caseID), nil, in,
		"Failed to create NPCI request", &out)
	return out, err
}

// FinancialDashboard returns the fraud dashboard metrics for the token holder's jurisdiction.
func (c *Client) FinancialDashboard(ctx context.Context, token string) (models.FinancialDashboard, error) {
	var out models.FinancialDashboard
	err := c.get(ctx, token, "/analytics/financial-dashboard", nil, "Failed to load financial dashboard", &out)
	return out, err
}

// RepeatEntities returns identifiers flagged across multiple cases.
func (c *Client) RepeatEntities(ctx context.Context, token string) (models.RepeatEntities, error) {
	var out models.RepeatEntities
	err := c.get(ctx, token, "/analytics/repeat-entities", nil, "Failed to load repeat entities", &out)
	return out, err
}
