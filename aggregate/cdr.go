package aggregate

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/netra-cyber/netra-portal/models"
)

// HoursPerDay is the length of the hourly call series.
const HoursPerDay = 24

// ContactCount is how often one number was called or called in.
type ContactCount struct {
	Number string
	Calls  int
}

// HourBar is one slot of the hourly call histogram. Percent is relative to the busiest hour.
type HourBar struct {
	Hour    int
	Calls   int
	Percent int
}

// CDRView is the rendered shape of a call detail record analysis.
type CDRView struct {
	TotalCalls   int
	TotalMinutes string
	PeakHour     string
	Hourly       []HourBar
	TopOutgoing  []ContactCount
	TopIncoming  []ContactCount
}

// BuildCDRView summarises a CDR analysis.
func BuildCDRView(a models.CDRAnalysis) CDRView {
	view := CDRView{
		TotalCalls:   a.TotalCalls,
		TotalMinutes: Minutes(a.TotalDuration),
		PeakHour:     PeakHour(a.HourlyStats),
		Hourly:       make([]HourBar, HoursPerDay),
		TopOutgoing:  rankContacts(a.TopContactsOutgoing),
		TopIncoming:  rankContacts(a.TopContactsIncoming),
	}

	peak := 0
	for h := 0; h < HoursPerDay; h++ {
		calls := a.HourlyStats[strconv.Itoa(h)]
		view.Hourly[h] = HourBar{Hour: h, Calls: calls}
		if calls > peak {
			peak = calls
		}
	}
	if peak > 0 {
		for i := range view.Hourly {
			view.Hourly[i].Percent = view.Hourly[i].Calls * 100 / peak
		}
	}
	return view
}

// PeakHour returns the earliest hour with the most calls as "H:00", or "-" when there were none.
func PeakHour(stats map[string]int) string {
	best, most := -1, 0
	for h := 0; h < HoursPerDay; h++ {
		if c := stats[strconv.Itoa(h)]; c > most {
			best, most = h, c
		}
	}
	if best < 0 {
		return "-"
	}
	return fmt.Sprintf("%d:00", best)
}

func rankContacts(m map[string]int) []ContactCount {
	out := make([]ContactCount, 0, len(m))
	for number, calls := range m {
		out = append(out, ContactCount{Number: number, Calls: calls})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Calls != out[j].Calls {
			return out[i].Calls > out[j].Calls
		}
		return out[i].Number < out[j].Number
	})
	return out
}
