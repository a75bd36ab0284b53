package models

// Financial entity kinds accepted by POST /financial-entities/{case_id}
const (
	EntityBankAccount = "bank_account"
	EntityUPI         = "upi_id"
	EntityWallet      = "wallet"
)

type (
	// FinancialEntity is a bank account, UPI ID or wallet linked to a case.
	FinancialEntity struct {
		ID                 int    `json:"id,omitempty"`
		CaseID             int    `json:"case_id,omitempty"`
		FIRNumber          string `json:"fir_number,omitempty"`
		EntityType         string `json:"entity_type"`
		BankName           string `json:"bank_name,omitempty"`
		AccountNumber      string `json:"account_number,omitempty"`
		IFSCCode           string `json:"ifsc_code,omitempty"`
		AccountHolderName  string `json:"account_holder_name,omitempty"`
		UPIID              string `json:"upi_id,omitempty"`
		WalletProvider     string `json:"wallet_provider,omitempty"`
		TransactionID      string `json:"transaction_id,omitempty"`
		TransactionAmount  Amount `json:"transaction_amount,omitempty"`
		VerificationStatus string `json:"verification_status,omitempty"`
		Status             string `json:"status,omitempty"`
		CreatedAt          Time   `json:"created_at,omitempty"`
	}

	// NPCIRequest is the body of POST /npci/requests/{case_id}
	NPCIRequest struct {
		FinancialEntityID    int    `json:"financial_entity_id"`
		UPIID                string `json:"upi_id"`
		TransactionReference string `json:"transaction_reference,omitempty"`
		RequestType          string `json:"request_type"`
		Reason               string `json:"reason"`
		Status               string `json:"status,omitempty"`
		ID                   int    `json:"id,omitempty"`
	}

	// TimelineEvent is one entry of a case's transaction timeline.
	TimelineEvent struct {
		ID                    int    `json:"id"`
		CaseID                int    `json:"case_id"`
		FIRNumber             string `json:"fir_number"`
		EventType             string `json:"event_type"`
		EventTimestamp        Time   `json:"event_timestamp"`
		Narrative             string `json:"narrative"`
		Amount                Amount `json:"amount"`
		SourceIdentifier      string `json:"source_identifier,omitempty"`
		DestinationIdentifier string `json:"destination_identifier,omitempty"`
	}

	// FreezeSummary is the freeze request block of the financial dashboard.
	FreezeSummary struct {
		Total     int `json:"total"`
		Confirmed int `json:"confirmed"`
		Pending   int `json:"pending"`
	}

	// FinancialDashboard represents the response from GET /analytics/financial-dashboard
	FinancialDashboard struct {
		TotalFinancialCases int            `json:"total_financial_cases"`
		AmountAtRisk        string         `json:"amount_at_risk"`
		BankRequestsSent    int            `json:"bank_requests_sent"`
		FreezeRequests      FreezeSummary  `json:"freeze_requests"`
		AvgResponseTime     string         `json:"avg_bank_response_time"`
		TopFraudTypes       map[string]int `json:"top_fraud_types"`
	}

	// RepeatEntityAlert is a financial identifier seen across several cases.
	RepeatEntityAlert struct {
		Type             string   `json:"type"`
		Identifier       string   `json:"identifier"`
		LinkedCasesCount int      `json:"linked_cases_count"`
		FIRNumbers       []string `json:"fir_numbers"`
		AlertLevel       string   `json:"alert_level"`
	}

	// RepeatEntities represents the response from GET /analytics/repeat-entities
	RepeatEntities struct {
		TotalRepeatEntities int                 `json:"total_repeat_entities"`
		Alerts              []RepeatEntityAlert `json:"alerts"`
	}
)
