package aggregate

import (
	"fmt"
	"strconv"

	"github.com/netra-cyber/netra-portal/models"
)

var sourceIcons = map[string]string{
	models.SourceTelecomRequest:  "bi-telephone",
	models.SourceFinancialEntity: "bi-bank",
	models.SourceCaseRecord:      "bi-folder",
	models.SourceTimeline:        "bi-clock-history",
	models.SourceEvidenceFile:    "bi-file-earmark",
}

// SourceIcon returns the icon class for a match source.
func SourceIcon(source string) string {
	if icon, ok := sourceIcons[source]; ok {
		return icon
	}
	return "bi-database"
}

var matchColumns = []string{"FIR Number", "Match Type", "Matched Value", "Case Type", "Status", "Action"}

// SearchView is the rendered shape of a universal search.
type SearchView struct {
	Query      string
	SearchType string
	Count      int
	Empty      bool
	Tiles      []Tile
	Groups     []Section
}

// BuildSearchView groups a universal search result by source. A result with no matches
// yields an empty view and no tables.
func BuildSearchView(res models.SearchResult) SearchView {
	view := SearchView{
		Query:      res.Query,
		SearchType: res.SearchType,
		Count:      res.Count,
	}
	if len(res.Matches) == 0 {
		view.Empty = true
		return view
	}
	if view.Count == 0 {
		view.Count = len(res.Matches)
	}

	view.Tiles = summaryTiles(res.Summary)
	for _, g := range GroupBySource(res.Matches) {
		view.Groups = append(view.Groups, Section{
			Key:     g.Name,
			Title:   fmt.Sprintf("%s (%d)", g.Name, len(g.Matches)),
			Icon:    SourceIcon(g.Name),
			Columns: matchColumns,
			Rows:    matchRows(g.Matches),
		})
	}
	return view
}

func summaryTiles(s *models.SearchSummary) []Tile {
	if s == nil {
		return nil
	}

	all := []struct {
		key, label string
		count      int
	}{
		{"telecom_requests", "Telecom Requests", s.TelecomRequests},
		{"financial_entities", "Financial Entities", s.FinancialEntities},
		{"case_records", "Case Records", s.CaseRecords},
		{"transaction_timeline", "Timeline Mentions", s.TransactionTimeline},
		{"evidence_files", "Evidence Files", s.EvidenceFiles},
	}

	var tiles []Tile
	for _, t := range all {
		if t.count > 0 {
			tiles = append(tiles, Tile{Key: t.key, Label: t.label, Value: strconv.Itoa(t.count), Color: ColorPrimary})
		}
	}
	return tiles
}

func matchRows(matches []models.SearchMatch) [][]Cell {
	rows := make([][]Cell, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []Cell{
			{Text: OrNA(m.FIRNumber), Strong: true},
			text(m.MatchType),
			{Text: m.MatchedValue, Mono: true},
			text(CaseType(m.CaseType)),
			badge(OrNA(m.Status), MatchStatusColor(m.Status)),
			caseLink(m.CaseID),
		})
	}
	return rows
}

func caseLink(id int) Cell {
	if id == 0 {
		return text("")
	}
	return Cell{Text: "View Case", Link: CasePath(id)}
}

// CasePath is the portal path of a case detail page.
func CasePath(id int) string {
	return fmt.Sprintf("/cases/%d", id)
}

// FileSearchView is the rendered shape of a file-driven search.
type FileSearchView struct {
	Filename         string
	FileType         string
	TotalIdentifiers int
	TotalMatches     int
	Extracted        []Tile
	Empty            bool
	Groups           []Section
}

var fileMatchColumns = []string{"FIR Number", "Source", "Match Type", "Case Type", "Status", "Action"}

// BuildFileSearchView groups file-search matches by the identifier that was searched.
func BuildFileSearchView(res models.FileSearchResult) FileSearchView {
	view := FileSearchView{
		Filename:         res.Filename,
		FileType:         res.FileType,
		TotalIdentifiers: res.Summary.TotalIdentifiers,
		TotalMatches:     res.Summary.TotalMatches,
	}
	if d := res.ExtractedData; d != nil {
		view.Extracted = []Tile{
			{Key: "mobile_numbers", Label: "Mobile Numbers", Value: strconv.Itoa(len(d.MobileNumbers)), Color: ColorPrimary},
			{Key: "upi_ids", Label: "UPI IDs", Value: strconv.Itoa(len(d.UPIIDs)), Color: ColorSuccess},
			{Key: "account_numbers", Label: "Account Numbers", Value: strconv.Itoa(len(d.AccountNumbers)), Color: ColorWarning},
		}
	}
	if len(res.Matches) == 0 {
		view.Empty = true
		return view
	}

	for _, g := range GroupByIdentifier(res.Matches) {
		rows := make([][]Cell, 0, len(g.Matches))
		for _, m := range g.Matches {
			rows = append(rows, []Cell{
				{Text: OrNA(m.FIRNumber), Strong: true},
				text(m.Source),
				text(m.MatchType),
				text(CaseType(m.CaseType)),
				badge(OrNA(m.Status), MatchStatusColor(m.Status)),
				caseLink(m.CaseID),
			})
		}
		view.Groups = append(view.Groups, Section{
			Key:     g.Name,
			Title:   fmt.Sprintf("Identifier %q found in %d case(s)", g.Name, len(g.Matches)),
			Icon:    "bi-exclamation-triangle",
			Columns: fileMatchColumns,
			Rows:    rows,
		})
	}
	return view
}
