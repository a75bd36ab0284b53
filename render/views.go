package render

import (
	"html/template"

	"github.com/netra-cyber/netra-portal/aggregate"
	"github.com/netra-cyber/netra-portal/listing"
	"github.com/netra-cyber/netra-portal/models"
)

// Alert kinds, matching the banner colours.
const (
	AlertSuccess = "success"
	AlertDanger  = "danger"
	AlertWarning = "warning"
	AlertInfo    = "info"
)

// Alert is a dismissible banner at the top of a page.
type Alert struct {
	Kind    string
	Message string
}

// User is the signed-in officer as the navigation bar shows them.
type User struct {
	Name  string
	Rank  string
	Scope string
}

// Chrome is what every page shares: title, navigation, banners and the CSRF field.
type Chrome struct {
	Title          string
	Active         string
	User           *User
	Alerts         []Alert
	CSRFField      template.HTML
	RefreshSeconds int
	Features       map[string]bool
}

// Alert appends a banner.
func (c *Chrome) Alert(kind, message string) {
	c.Alerts = append(c.Alerts, Alert{Kind: kind, Message: message})
}

// Option is an entry of a select box.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Options builds select entries from value/label pairs.
func Options(selected string, pairs ...string) []Option {
	opts := make([]Option, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		opts = append(opts, Option{Value: pairs[i], Label: pairs[i+1], Selected: pairs[i] == selected})
	}
	return opts
}

// LoginPage is the sign-in form.
type LoginPage struct {
	Chrome
	Username string
}

// PasswordPage is the change-password form shown after a first login.
type PasswordPage struct {
	Chrome
	FirstLogin bool
}

// DashboardPage lists cases.
type DashboardPage struct {
	Chrome
	Counts    aggregate.CaseCounts
	Cases     []aggregate.CaseRow
	Criteria  listing.CaseCriteria
	Statuses  []Option
	Sorts     []Option
	CanCreate bool
}

// EvidenceRow is one evidence file on the case page.
type EvidenceRow struct {
	models.EvidenceFile
	Uploaded     string
	Kind         aggregate.PreviewKind
	PreviewPath  string
	DownloadPath string
	CDRPath      string
}

// Preview shows one evidence file inline. Error switches to the fallback panel.
type Preview struct {
	Name         string
	Kind         aggregate.PreviewKind
	Src          string
	DownloadPath string
	Error        string
}

// FinancialRow is one financial entity on the case page.
type FinancialRow struct {
	models.FinancialEntity
	Kind       string
	Identifier string
	Amount     string
}

// CasePage shows one case with its evidence, requests and financial trail.
type CasePage struct {
	Chrome
	Case         aggregate.CaseRow
	Description  template.HTML
	Statuses     []Option
	Evidence     []EvidenceRow
	Requests     []aggregate.RequestRow
	Financial    []FinancialRow
	Preview      *Preview
	CanUpload    bool
	CanReview    bool
	RequestTypes []string
	EntityTypes  []Option
}

// RequestsPage lists disclosure requests, optionally with a mail draft open.
type RequestsPage struct {
	Chrome
	Rows      []aggregate.RequestRow
	Criteria  listing.RequestCriteria
	Statuses  []Option
	Types     []Option
	Sorts     []Option
	Draft     *Draft
	CanReview bool
}

// Draft is the mail composer for one approved request.
type Draft struct {
	RequestID int
	Mail      aggregate.EmailDraft
	Mailto    string
	Offices   []Option
	Templates []Option
}

// AnalyticsPage is the intelligence workspace. Each result block is optional.
type AnalyticsPage struct {
	Chrome
	Dashboard  *aggregate.DashboardView
	NewAlerts  int
	Query      string
	SearchType string
	Types      []Option
	Search     *aggregate.SearchView
	Report     *aggregate.ReportView
	Graph      *aggregate.GraphView
	FileSearch *aggregate.FileSearchView
	CDR        *aggregate.CDRView
}

// AuditRow is one audit log line.
type AuditRow struct {
	models.AuditLog
	When  string
	Class string
}

// AdminPage shows the audit trail and officer registration.
type AdminPage struct {
	Chrome
	Logs        []AuditRow
	CanRegister bool
	Roles       []Option
}

// ToolsPage hosts the investigation utilities.
type ToolsPage struct {
	Chrome
	IPQuery   string
	IP        *models.IPLookup
	TowerDump *models.TowerDumpResult
}

// ErrorPage is shown when a page cannot be built at all.
type ErrorPage struct {
	Chrome
	Status  int
	Message string
	Preview *Preview
}
