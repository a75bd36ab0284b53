package aggregate

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/netra-cyber/netra-portal/models"
)

// RequestRow is one line of the requests page.
type RequestRow struct {
	models.Request
	CaseLabel   string
	StatusColor string
	AgeDays     int
	Escalate    bool
	CanReview   bool
	CanDispatch bool
	Dispatched  bool
	LetterPath  string
}

// CaseLabel names a case by FIR when it is known and by id otherwise.
func CaseLabel(id int, firs map[int]string) string {
	if fir, ok := firs[id]; ok && fir != "" {
		return fir
	}
	return fmt.Sprintf("Case #%d", id)
}

// FIRIndex maps case ids to FIR numbers.
func FIRIndex(cases []models.Case) map[int]string {
	firs := make(map[int]string, len(cases))
	for _, c := range cases {
		firs[c.ID] = c.FIRNumber
	}
	return firs
}

// BuildRequestRows decorates requests for display. canReview gates the approve and reject
// actions; the backend enforces the real permission.
func BuildRequestRows(reqs []models.Request, firs map[int]string, now time.Time, canReview bool) []RequestRow {
	rows := make([]RequestRow, 0, len(reqs))
	for _, r := range reqs {
		days := PendingDays(r.CreatedAt.Time, now)
		rows = append(rows, RequestRow{
			Request:     r,
			CaseLabel:   CaseLabel(r.CaseID, firs),
			StatusColor: RequestStatusColor(r.Status),
			AgeDays:     days,
			Escalate:    NeedsEscalation(r.Status, days),
			CanReview:   canReview && r.Status == models.RequestPending,
			CanDispatch: r.Status == models.RequestApproved,
			Dispatched:  r.Status == models.RequestDispatched,
			LetterPath:  fmt.Sprintf("/requests/%d/letter", r.ID),
		})
	}
	return rows
}

// NodalOffice is a telecom operator's disclosure desk.
type NodalOffice struct {
	Operator string
	Name     string
	Email    string
}

// NodalOffices lists the operators a disclosure request can be mailed to. The first entry is the default.
var NodalOffices = []NodalOffice{
	{Operator: "Airtel", Name: "Bharti Airtel Nodal Officer", Email: "nodal.officer@airtel.com"},
	{Operator: "Jio", Name: "Reliance Jio Disclosure Officer", Email: "disclosure.officer@jio.com"},
	{Operator: "Vodafone", Name: "Vodafone Idea Nodal Officer", Email: "nodal@vodafoneidea.com"},
	{Operator: "BSNL", Name: "BSNL LEA Cell", Email: "learequest@bsnl.co.in"},
}

// DetectNodal picks the operator named in a request reason, falling back to the first office.
func DetectNodal(reason string) NodalOffice {
	for _, o := range NodalOffices {
		if strings.Contains(reason, o.Operator) {
			return o
		}
	}
	return NodalOffices[0]
}

// NodalByEmail finds an office by address.
func NodalByEmail(email string) (NodalOffice, bool) {
	for _, o := range NodalOffices {
		if o.Email == email {
			return o, true
		}
	}
	return NodalOffice{}, false
}

// Email draft templates.
const (
	TemplateStandard = "standard"
	TemplateUrgent   = "urgent"
	TemplateReminder = "reminder"
)

// EmailDraft is a disclosure request mail ready for the officer's mail client.
type EmailDraft struct {
	To      NodalOffice
	Subject string
	Body    string
}

// Mailto is the mailto: link that opens the draft.
func (d EmailDraft) Mailto() string {
	q := url.Values{}
	q.Set("subject", d.Subject)
	q.Set("body", d.Body)
	return "mailto:" + d.To.Email + "?" + strings.ReplaceAll(q.Encode(), "+", "%20")
}

// Draft composes the requisition mail for req from one of the templates.
func Draft(req models.Request, to NodalOffice, template string) EmailDraft {
	var subject, prefix string
	switch template {
	case TemplateUrgent:
		subject = fmt.Sprintf("URGENT: LIFE THREATENING EMERGENCY | Disclosure Request | %s", req.MobileNumber)
		prefix = "URGENT / EMERGENCY DISCLOSURE"
	case TemplateReminder:
		subject = fmt.Sprintf("REMINDER-1: Pending Disclosure for Case %d | %s", req.CaseID, req.MobileNumber)
		prefix = "REMINDER / IMMEDIATE ACTION"
	default:
		subject = fmt.Sprintf("Lawful Disclosure Request | %s | Case %d", req.RequestType, req.CaseID)
		prefix = "OFFICIAL REQUISITION"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "To,\nThe Nodal Officer,\n%s\n\n", to.Name)
	fmt.Fprintf(&b, "Subject: %s\n\n", subject)
	fmt.Fprintf(&b, "Ref: Investigation in Case FIR No. %d\n\n", req.CaseID)
	b.WriteString("Respected Sir/Madam,\n\n")
	fmt.Fprintf(&b, "[%s]\n\n", prefix)
	fmt.Fprintf(&b, "In exercise of the powers conferred under Section 91 of the Code of Criminal Procedure (CrPC), "+
		"you are hereby requested to provide the %s details for:\n\n", req.RequestType)
	fmt.Fprintf(&b, "Mobile Number(s):\n%s\n\n", req.MobileNumber)
	b.WriteString("The requested information is essentially required for a sensitive criminal investigation.\n")
	b.WriteString("Please find the officially signed Requisition Letter attached.\n\n")
	b.WriteString("Regards,\nInspector In-Charge,\nCyber Crime Investigation Cell.")

	return EmailDraft{To: to, Subject: subject, Body: b.String()}
}
