package models

// Match sources the backend tags universal search results with.
const (
	SourceTelecomRequest  = "Telecom Request"
	SourceFinancialEntity = "Financial Entity"
	SourceCaseRecord      = "Case Record"
	SourceTimeline        = "Transaction Timeline"
	SourceEvidenceFile    = "Evidence File"
)

type (
	// SearchMatch is one hit of a universal or file-driven search.
	SearchMatch struct {
		Source             string `json:"source"`
		CaseID             int    `json:"case_id"`
		FIRNumber          string `json:"fir_number"`
		MatchType          string `json:"match_type"`
		MatchedValue       string `json:"matched_value"`
		CaseType           string `json:"case_type"`
		Status             string `json:"status"`
		SearchedIdentifier string `json:"searched_identifier,omitempty"`
		CreatedAt          Time   `json:"created_at,omitempty"`
	}

	// SearchSummary counts matches per source.
	SearchSummary struct {
		TelecomRequests     int `json:"telecom_requests"`
		FinancialEntities   int `json:"financial_entities"`
		CaseRecords         int `json:"case_records"`
		TransactionTimeline int `json:"transaction_timeline"`
		EvidenceFiles       int `json:"evidence_files"`
	}

	// SearchResult represents the response from GET /analysis/universal-search
	SearchResult struct {
		Query      string         `json:"query"`
		SearchType string         `json:"search_type"`
		Matches    []SearchMatch  `json:"matches"`
		Count      int            `json:"count"`
		Summary    *SearchSummary `json:"summary,omitempty"`
	}

	// ExtractedData lists the identifiers the backend pulled out of an uploaded file.
	ExtractedData struct {
		MobileNumbers  []string `json:"mobile_numbers"`
		UPIIDs         []string `json:"upi_ids"`
		AccountNumbers []string `json:"account_numbers"`
	}

	// FileSearchSummary is the processing summary of POST /analysis/file-search
	FileSearchSummary struct {
		TotalIdentifiers int `json:"total_identifiers"`
		TotalMatches     int `json:"total_matches"`
	}

	// FileSearchResult represents the response from POST /analysis/file-search
	FileSearchResult struct {
		Filename      string            `json:"filename"`
		FileType      string            `json:"file_type"`
		ExtractedData *ExtractedData    `json:"extracted_data,omitempty"`
		Summary       FileSearchSummary `json:"summary"`
		Matches       []SearchMatch     `json:"matches"`
		Count         int               `json:"count"`
	}
)
