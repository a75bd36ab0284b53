package models

// Risk priorities the backend assigns; the portal maps each to an action recommendation.
const (
	PriorityImmediate = "IMMEDIATE ACTION"
	PriorityPriority  = "PRIORITY INVESTIGATION"
	PriorityRoutine   = "ROUTINE MONITORING"
)

type (
	// RiskBreakdown holds the weighted sub-scores behind a risk score, in percent.
	RiskBreakdown struct {
		RepeatOffenseScore int `json:"repeat_offense_score"`
		MoneyFlowScore     int `json:"money_flow_score"`
		NetworkScore       int `json:"network_score"`
	}

	// RiskProfile is computed by the backend and only displayed here.
	RiskProfile struct {
		Score     int           `json:"score"`
		Level     string        `json:"level"`
		Color     string        `json:"color"`
		Priority  string        `json:"priority"`
		Breakdown RiskBreakdown `json:"breakdown"`
		Tags      []string      `json:"tags"`
	}

	// SummaryStats is the headline block of the investigation report.
	SummaryStats struct {
		TotalCases             int      `json:"total_cases"`
		TotalTelecomRequests   int      `json:"total_telecom_requests"`
		TotalFinancialEntities int      `json:"total_financial_entities"`
		TotalEvidenceFiles     int      `json:"total_evidence_files"`
		TotalTimelineEvents    int      `json:"total_timeline_events"`
		TotalTransactionAmount Amount   `json:"total_transaction_amount"`
		FIRNumbers             []string `json:"fir_numbers"`
	}

	// InvestigationReport represents the response from GET /analysis/comprehensive-investigation-data
	InvestigationReport struct {
		Identifier          string            `json:"identifier"`
		Cases               []Case            `json:"cases"`
		TelecomRequests     []Request         `json:"telecom_requests"`
		FinancialEntities   []FinancialEntity `json:"financial_entities"`
		EvidenceFiles       []EvidenceFile    `json:"evidence_files"`
		TransactionTimeline []TimelineEvent   `json:"transaction_timeline"`
		SummaryStats        SummaryStats      `json:"summary_stats"`
		RiskProfile         *RiskProfile      `json:"risk_profile,omitempty"`
	}

	// GraphNode is a vertex of the intelligence network map.
	GraphNode struct {
		ID    string `json:"id"`
		Label string `json:"label"`
		Group string `json:"group"`
	}

	// GraphEdge links two graph nodes.
	GraphEdge struct {
		From  string `json:"from"`
		To    string `json:"to"`
		Label string `json:"label"`
	}

	// NetworkGraph represents the response from GET /analysis/network-graph
	NetworkGraph struct {
		Nodes []GraphNode `json:"nodes"`
		Edges []GraphEdge `json:"edges"`
	}
)
