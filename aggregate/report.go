package aggregate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/netra-cyber/netra-portal/models"
	"github.com/netra-cyber/netra-portal/sanitize"
)

// NarrativeLength is how much of a timeline narrative the report shows.
const NarrativeLength = 100

// RiskCard is the risk score block at the top of a report.
type RiskCard struct {
	Score     int
	Level     string
	Color     string
	Priority  string
	Advice    string
	Breakdown models.RiskBreakdown
	Tags      []string
}

// ReportView is the rendered shape of an investigation report. Sections only holds the
// collections that have rows, in fixed order.
type ReportView struct {
	Identifier string
	NoData     bool
	Risk       *RiskCard
	Stats      []Tile
	FIRNumbers []string
	Sections   []Section
}

// BuildReportView lays out an investigation report.
func BuildReportView(rep models.InvestigationReport) ReportView {
	view := ReportView{
		Identifier: rep.Identifier,
		Risk:       riskCard(rep.RiskProfile),
		FIRNumbers: rep.SummaryStats.FIRNumbers,
	}

	s := rep.SummaryStats
	view.Stats = []Tile{
		{Key: "cases", Label: "Cases Matched", Value: strconv.Itoa(s.TotalCases), Color: ColorPrimary},
		{Key: "evidence", Label: "Evidence Files", Value: strconv.Itoa(s.TotalEvidenceFiles), Color: ColorInfo},
		{Key: "financial", Label: "Financial Accts", Value: strconv.Itoa(s.TotalFinancialEntities), Color: ColorWarning},
		{Key: "telecom", Label: "Req. Sent", Value: strconv.Itoa(s.TotalTelecomRequests), Color: ColorSuccess},
		{Key: "timeline", Label: "Timeline Events", Value: strconv.Itoa(s.TotalTimelineEvents), Color: ColorSecondary},
		{Key: "amount", Label: "Fraud Value", Value: Thousands(s.TotalTransactionAmount.Float()), Color: ColorDanger},
	}

	sections := []Section{
		caseSection(rep.Cases),
		evidenceSection(rep.EvidenceFiles),
		financialSection(rep.FinancialEntities),
		telecomSection(rep.TelecomRequests),
		timelineSection(rep.TransactionTimeline),
		riskSection(rep.RiskProfile),
	}
	for _, sec := range sections {
		if len(sec.Rows) > 0 {
			view.Sections = append(view.Sections, sec)
		}
	}
	view.NoData = len(view.Sections) == 0 && view.Risk == nil
	return view
}

func riskCard(p *models.RiskProfile) *RiskCard {
	if p == nil || p.Level == "" {
		return nil
	}
	return &RiskCard{
		Score:     p.Score,
		Level:     p.Level,
		Color:     OrNA(p.Color),
		Priority:  p.Priority,
		Advice:    RiskAdvice(p.Priority),
		Breakdown: p.Breakdown,
		Tags:      p.Tags,
	}
}

func caseSection(cases []models.Case) Section {
	sec := Section{
		Key:     "cases",
		Title:   "Linked Case Records",
		Icon:    "bi-folder2-open",
		Columns: []string{"FIR Number", "Police Station", "Case Type", "Status", "Registered", "Action"},
	}
	for _, c := range cases {
		sec.Rows = append(sec.Rows, []Cell{
			{Text: c.FIRNumber, Strong: true},
			text(OrNA(c.PoliceStation)),
			text(CaseType(c.CaseType)),
			badge(OrNA(c.Status), CaseStatusColor(c.Status)),
			text(Date(c.CreatedAt.Time)),
			caseLink(c.ID),
		})
	}
	return sec
}

func evidenceSection(files []models.EvidenceFile) Section {
	sec := Section{
		Key:     "evidence",
		Title:   "Digital Evidence",
		Icon:    "bi-file-earmark-lock",
		Columns: []string{"File Name", "Type", "FIR Number", "Uploaded", "Status", "Action"},
	}
	for _, f := range files {
		sec.Rows = append(sec.Rows, []Cell{
			{Text: f.OriginalFilename, Strong: true},
			badge(f.FileType, ColorSecondary),
			text(OrNA(f.FIRNumber)),
			text(Date(f.UploadedAt.Time)),
			badge(OrNA(f.VerificationStatus), verificationColor(f.VerificationStatus)),
			{Text: "Download", Link: EvidenceDownloadPath(f.ID)},
		})
	}
	return sec
}

// EvidenceDownloadPath is the portal path that proxies an evidence download.
func EvidenceDownloadPath(id int) string {
	return fmt.Sprintf("/evidence/%d/download", id)
}

// EvidenceViewPath is the portal path that proxies an inline evidence preview.
func EvidenceViewPath(id int) string {
	return fmt.Sprintf("/evidence/%d/view", id)
}

func verificationColor(status string) string {
	if strings.EqualFold(status, "verified") {
		return ColorSuccess
	}
	return ColorSecondary
}

func financialSection(entities []models.FinancialEntity) Section {
	sec := Section{
		Key:     "financial",
		Title:   "Financial Trail",
		Icon:    "bi-bank",
		Columns: []string{"Type", "Bank / UPI", "Account / ID", "Holder", "Amount", "FIR Number"},
	}
	for _, e := range entities {
		sec.Rows = append(sec.Rows, []Cell{
			badge(Upper(e.EntityType), "dark"),
			text(OrNA(e.BankName, e.UPIID, e.WalletProvider)),
			{Text: OrNA(e.AccountNumber, e.UPIID), Mono: true},
			text(OrNA(e.AccountHolderName)),
			text(Rupees(e.TransactionAmount.Float())),
			text(OrNA(e.FIRNumber)),
		})
	}
	return sec
}

func telecomSection(requests []models.Request) Section {
	sec := Section{
		Key:     "telecom",
		Title:   "Telecom Requests",
		Icon:    "bi-broadcast",
		Columns: []string{"Mobile Number", "Request Type", "Status", "FIR Number", "Created"},
	}
	for _, r := range requests {
		sec.Rows = append(sec.Rows, []Cell{
			{Text: r.MobileNumber, Strong: true, Mono: true},
			text(r.RequestType),
			badge(strings.ToUpper(r.Status), RequestStatusColor(r.Status)),
			text(OrNA(r.FIRNumber)),
			text(Date(r.CreatedAt.Time)),
		})
	}
	return sec
}

func timelineSection(events []models.TimelineEvent) Section {
	sec := Section{
		Key:     "timeline",
		Title:   "Transaction Timeline",
		Icon:    "bi-clock-history",
		Columns: []string{"Date", "Event", "Narrative", "Amount", "FIR Number"},
	}
	for _, e := range events {
		sec.Rows = append(sec.Rows, []Cell{
			text(DateTime(e.EventTimestamp.Time)),
			badge(Upper(e.EventType), ColorInfo),
			text(sanitize.Truncate(e.Narrative, NarrativeLength)),
			text(Rupees(e.Amount.Float())),
			text(OrNA(e.FIRNumber)),
		})
	}
	return sec
}

func riskSection(p *models.RiskProfile) Section {
	sec := Section{
		Key:     "risk",
		Title:   "Risk Indicators",
		Icon:    "bi-shield-exclamation",
		Columns: []string{"Indicator"},
	}
	if p == nil {
		return sec
	}
	for _, tag := range p.Tags {
		sec.Rows = append(sec.Rows, []Cell{badge(tag, ColorDanger)})
	}
	return sec
}
