package dates

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse_Tokens(t *testing.T) {
	cases := []struct {
		token string
		want  time.Time
	}{
		{"today", date(2024, time.March, 15)},
		{"yesterday", date(2024, time.March, 14)},
		{"month_start", date(2024, time.March, 1)},
		{"month_end", date(2024, time.March, 31)},
		{"year_start", date(2024, time.January, 1)},
		{"TODAY", date(2024, time.March, 15)},
	}

	for _, tc := range cases {
		got, err := Parse(tc.token, "", testNow)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tc.token, err)
		}
		if !got.Equal(tc.want) {
			t.Errorf("Parse(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestParse_Literal(t *testing.T) {
	got, err := Parse("2024-01-20", "", testNow)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !got.Equal(date(2024, time.January, 20)) {
		t.Errorf("expected 2024-01-20, got %v", got)
	}
}

func TestParse_CustomLayout(t *testing.T) {
	got, err := Parse("20/01/2024", "02/01/2006", testNow)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !got.Equal(date(2024, time.January, 20)) {
		t.Errorf("expected 2024-01-20, got %v", got)
	}
}

func TestParse_Invalid_ShouldError(t *testing.T) {
	_, err := Parse("not-a-date", "", testNow)
	if err == nil {
		t.Fatal("expected an error for malformed date")
	}
}

func TestParseRange_EndBeforeStart_ShouldError(t *testing.T) {
	_, err := ParseRange("today", "yesterday", "", testNow)
	if err == nil {
		t.Fatal("expected an error when end is before start")
	}
}

func TestParseRange_Tokens(t *testing.T) {
	r, err := ParseRange("month_start", "today", "", testNow)
	if err != nil {
		t.Fatalf("ParseRange error: %v", err)
	}
	if !r.Start.Equal(date(2024, time.March, 1)) || !r.End.Equal(date(2024, time.March, 15)) {
		t.Errorf("unexpected range: %v to %v", r.Start, r.End)
	}
}

func TestMonthlyRanges_ContiguousAndNonOverlapping(t *testing.T) {
	months := 6

	ranges, err := MonthlyRanges(testNow, months)
	if err != nil {
		t.Fatalf("MonthlyRanges error: %v", err)
	}

	if len(ranges) != months {
		t.Fatalf("expected %d ranges, got %d", months, len(ranges))
	}
	if !ranges[0].Start.Equal(date(2023, time.October, 1)) {
		t.Errorf("expected window to start 2023-10-01, got %v", ranges[0].Start)
	}
	if !ranges[len(ranges)-1].End.Equal(date(2024, time.March, 15)) {
		t.Errorf("expected window to end today, got %v", ranges[len(ranges)-1].End)
	}

	for i, r := range ranges {
		if r.End.Before(r.Start) {
			t.Errorf("range %d ends before it starts: %v to %v", i, r.Start, r.End)
		}
		if r.Start.Day() != 1 {
			t.Errorf("range %d does not start on the first of a month: %v", i, r.Start)
		}
		if i > 0 && !ranges[i-1].End.Equal(r.Start) {
			t.Errorf("range %d is not contiguous with its predecessor: %v vs %v",
				i, ranges[i-1].End, r.Start)
		}
	}
}

func TestMonthlyRanges_SingleMonth(t *testing.T) {
	ranges, err := MonthlyRanges(testNow, 1)
	if err != nil {
		t.Fatalf("MonthlyRanges error: %v", err)
	}
	if len(ranges) != 1 {
		t.Fatalf("expected 1 range, got %d", len(ranges))
	}
	if !ranges[0].Start.Equal(date(2024, time.March, 1)) || !ranges[0].End.Equal(date(2024, time.March, 15)) {
		t.Errorf("unexpected range: %v to %v", ranges[0].Start, ranges[0].End)
	}
}

func TestMonthlyRanges_NonPositive_ShouldError(t *testing.T) {
	if _, err := MonthlyRanges(testNow, 0); err == nil {
		t.Error("expected an error for zero months")
	}
	if _, err := MonthlyRanges(testNow, -3); err == nil {
		t.Error("expected an error for negative months")
	}
}

func TestSummaryRange_CoversWholeWindow(t *testing.T) {
	r, err := SummaryRange(testNow, 3)
	if err != nil {
		t.Fatalf("SummaryRange error: %v", err)
	}
	if !r.Start.Equal(date(2024, time.January, 1)) {
		t.Errorf("expected 2024-01-01, got %v", r.Start)
	}
	if !r.End.Equal(date(2024, time.March, 15)) {
		t.Errorf("expected 2024-03-15, got %v", r.End)
	}
}
