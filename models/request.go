package models

// Request statuses, in the order a request normally moves through them.
const (
	RequestPending    = "pending"
	RequestApproved   = "approved"
	RequestRejected   = "rejected"
	RequestDispatched = "dispatched"
)

type (
	// Request represents a lawful interception / disclosure request from GET /requests/
	Request struct {
		ID              int    `json:"id"`
		CaseID          int    `json:"case_id"`
		FIRNumber       string `json:"fir_number,omitempty"`
		MobileNumber    string `json:"mobile_number"`
		RequestType     string `json:"request_type"`
		Status          string `json:"status"`
		Reason          string `json:"reason"`
		RejectionReason string `json:"rejection_reason,omitempty"`
		CreatedAt       Time   `json:"created_at"`
	}

	// RequestCreate is the body of POST /requests/?case_id=
	RequestCreate struct {
		MobileNumber string `json:"mobile_number"`
		RequestType  string `json:"request_type"`
		Reason       string `json:"reason"`
	}

	// BatchRequest is the body of POST /requests/batch?case_id=
	BatchRequest struct {
		MobileNumbers []string `json:"mobile_numbers"`
		RequestType   string   `json:"request_type"`
		Reason        string   `json:"reason"`
	}

	// UploadResult represents the response from POST /requests/{id}/upload
	UploadResult struct {
		Message  string `json:"message"`
		FilePath string `json:"file_path"`
	}
)
