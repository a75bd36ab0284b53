package aggregate

import (
	"strings"

	"github.com/netra-cyber/netra-portal/models"
)

// Bootstrap contextual colours used for badges and banners.
const (
	ColorSuccess   = "success"
	ColorWarning   = "warning"
	ColorDanger    = "danger"
	ColorInfo      = "info"
	ColorSecondary = "secondary"
	ColorPrimary   = "primary"
)

// CaseStatusColor maps a case status to its badge colour.
func CaseStatusColor(status string) string {
	switch status {
	case models.CaseActive:
		return ColorSuccess
	case models.CasePending:
		return ColorWarning
	default:
		return ColorSecondary
	}
}

// RequestStatusColor maps a request status to its badge colour.
func RequestStatusColor(status string) string {
	switch status {
	case models.RequestPending:
		return ColorWarning
	case models.RequestApproved:
		return ColorSuccess
	case models.RequestDispatched:
		return ColorInfo
	case models.RequestRejected:
		return ColorDanger
	default:
		return ColorSecondary
	}
}

// MatchStatusColor colours the case status shown next to a search match.
func MatchStatusColor(status string) string {
	if status == models.CaseActive {
		return ColorSuccess
	}
	return ColorSecondary
}

// AlertLevelColor colours a repeat-entity alert.
func AlertLevelColor(level string) string {
	if level == "HIGH" {
		return ColorDanger
	}
	return ColorWarning
}

// AuditActionClass picks the text class for an audit log action.
func AuditActionClass(action string) string {
	switch {
	case action == "LOGIN":
		return "text-success fw-bold"
	case action == "UPLOAD_EVIDENCE":
		return "text-primary fw-bold"
	case strings.Contains(action, "REJECT"):
		return "text-danger fw-bold"
	default:
		return "text-dark"
	}
}

// RiskAdvice is the recommended action shown under a risk score.
func RiskAdvice(priority string) string {
	switch priority {
	case models.PriorityImmediate:
		return "Recommended: Immediate freeze of linked accounts & issuance of NBW if identity verified."
	case models.PriorityPriority:
		return "Recommended: Prioritize evidence collection and cross-referencing with other districts."
	default:
		return "Recommended: Routine monitoring."
	}
}
