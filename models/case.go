package models

// Case statuses known to the portal. The backend owns the lifecycle; these exist for
// filtering and badge colours only.
const (
	CaseActive  = "active"
	CasePending = "pending"
	CaseClosed  = "closed"
)

type (
	// Case represents the response from the backend's GET /cases/{id}
	// It does not represent the full response, just what we end up using
	Case struct {
		ID             int    `json:"id"`
		FIRNumber      string `json:"fir_number"`
		PoliceStation  string `json:"police_station"`
		CaseType       string `json:"case_type"`
		CaseCategory   string `json:"case_category,omitempty"`
		Status         string `json:"status"`
		AmountInvolved Amount `json:"amount_involved"`
		Description    string `json:"description,omitempty"`
		CreatedAt      Time   `json:"created_at"`
	}

	// CaseCreate is the body of POST /cases/
	CaseCreate struct {
		FIRNumber      string `json:"fir_number"`
		PoliceStation  string `json:"police_station"`
		CaseCategory   string `json:"case_category,omitempty"`
		CaseType       string `json:"case_type"`
		Description    string `json:"description,omitempty"`
		AmountInvolved string `json:"amount_involved"`
	}

	// CaseStatusUpdate is the body of PATCH /cases/{id}/status
	CaseStatusUpdate struct {
		Status string `json:"status"`
	}
)
