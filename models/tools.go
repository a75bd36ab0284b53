package models

type (
	// CDRAnalysis represents the response from GET /analysis/cdr/{evidence_id}
	// Hour keys are "0".."23".
	CDRAnalysis struct {
		TotalCalls          int            `json:"total_calls"`
		TotalDuration       int            `json:"total_duration"`
		TopContactsOutgoing map[string]int `json:"top_contacts_outgoing"`
		TopContactsIncoming map[string]int `json:"top_contacts_incoming"`
		HourlyStats         map[string]int `json:"hourly_stats"`
	}

	// IPLookup represents the response from GET /tools/ip-lookup
	IPLookup struct {
		Query      string `json:"query"`
		ResolvedIP string `json:"resolved_ip"`
		Country    string `json:"country"`
		City       string `json:"city"`
		ISP        string `json:"isp"`
		IsMobile   bool   `json:"is_mobile"`
		IsProxy    bool   `json:"is_proxy"`
		MapURL     string `json:"map_url"`
		Note       string `json:"note,omitempty"`
	}

	// TowerDumpFileStat counts identifiers found in one uploaded dump.
	TowerDumpFileStat struct {
		Filename string `json:"filename"`
		Mobiles  int    `json:"mobiles"`
		Accounts int    `json:"accounts"`
		UPIs     int    `json:"upis"`
	}

	// TowerDumpResult represents the response from POST /tools/analyze-tower-dump
	TowerDumpResult struct {
		CommonNumbers  []string            `json:"common_numbers"`
		CommonAccounts []string            `json:"common_accounts"`
		CommonUPIs     []string            `json:"common_upis"`
		Counts         map[string]int      `json:"counts"`
		FileStats      []TowerDumpFileStat `json:"file_stats"`
		Message        string              `json:"message"`
	}
)
