package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/aws-billing/pkg/models/domain"
)

// Parse resolves a date argument into a calendar date. Besides literal
// dates in the given layout it accepts the convenience tokens "today",
// "yesterday", "month_start", "month_end" and "year_start", all resolved
// relative to now.
func Parse(value string, layout string, now time.Time) (time.Time, error) {
	if layout == "" {
		layout = domain.DateLayout
	}

	day := Midnight(now)
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "today":
		return day, nil
	case "yesterday":
		return day.AddDate(0, 0, -1), nil
	case "month_start":
		return FirstOfMonth(day), nil
	case "month_end":
		return FirstOfMonth(day).AddDate(0, 1, -1), nil
	case "year_start":
		return time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location()), nil
	}

	parsed, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected %s or a date token): %w", value, layout, err)
	}
	return parsed, nil
}

// ParseRange resolves a start/end pair and validates it before anything
// is sent over the wire.
func ParseRange(start, end, layout string, now time.Time) (domain.DateRange, error) {
	startDate, err := Parse(start, layout, now)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("start date: %w", err)
	}
	endDate, err := Parse(end, layout, now)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("end date: %w", err)
	}

	r := domain.DateRange{Start: startDate, End: endDate}
	if err := r.Validate(); err != nil {
		return domain.DateRange{}, err
	}
	return r, nil
}

// MonthlyRanges splits the trailing months window ending at now's month
// into per-month sub-ranges. Ranges are contiguous and non-overlapping:
// each starts on the first of a month and ends where the next one starts,
// except the last, which ends at now.
func MonthlyRanges(now time.Time, months int) ([]domain.DateRange, error) {
	if months <= 0 {
		return nil, fmt.Errorf("months must be positive, got %d", months)
	}

	day := Midnight(now)
	first := FirstOfMonth(day).AddDate(0, -(months - 1), 0)

	ranges := make([]domain.DateRange, 0, months)
	for i := 0; i < months; i++ {
		start := first.AddDate(0, i, 0)
		end := start.AddDate(0, 1, 0)
		if i == months-1 {
			end = day
		}
		ranges = append(ranges, domain.DateRange{Start: start, End: end})
	}
	return ranges, nil
}

// SummaryRange is the single span covering MonthlyRanges(now, months).
func SummaryRange(now time.Time, months int) (domain.DateRange, error) {
	ranges, err := MonthlyRanges(now, months)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.DateRange{
		Start: ranges[0].Start,
		End:   ranges[len(ranges)-1].End,
	}, nil
}

func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
