package calendar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spec-kit/schedule-service/internal/domain"
)

// Overview builds the availability calendar: one marker per availability record and,
// separately, one neutral "N requests" marker per date with live requests. Denied
// requests are not counted. A non-empty month ("2006-01") restricts both kinds.
func Overview(records []domain.ClientAvailability, requests []domain.ClientRequest, month string) []domain.CalendarItem {
	inMonth := func(date string) bool { return month == "" || strings.HasPrefix(date, month+"-") }

	items := make([]domain.CalendarItem, 0, len(records))
	for _, rec := range records {
		if !inMonth(rec.Date) {
			continue
		}
		item := domain.CalendarItem{
			Origin:   domain.OriginAvailability,
			SourceID: rec.Date,
			Date:     rec.Date,
			Title:    "Unavailable",
			Tone:     domain.ToneUnavailable,
		}
		if rec.Available {
			item.Title = "Available"
			item.Tone = domain.ToneAvailable
		}
		if notes := strings.TrimSpace(rec.Notes); notes != "" {
			item.Title += ": " + notes
		}
		items = append(items, item)
	}

	counts := make(map[string]int)
	for _, r := range requests {
		if r.Status == domain.RequestStatusDenied || r.Date == "" || !inMonth(r.Date) {
			continue
		}
		counts[r.Date]++
	}
	dates := make([]string, 0, len(counts))
	for date := range counts {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		n := counts[date]
		title := fmt.Sprintf("%d requests", n)
		if n == 1 {
			title = "1 request"
		}
		items = append(items, domain.CalendarItem{
			Origin:   domain.OriginRequestCount,
			SourceID: date,
			Date:     date,
			Title:    title,
			Tone:     domain.ToneNeutral,
			Count:    n,
		})
	}
	return items
}
