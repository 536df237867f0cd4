package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format Cost Explorer expects.
const DateLayout = "2006-01-02"

type Granularity string

const (
	GranularityDaily   Granularity = "DAILY"
	GranularityMonthly Granularity = "MONTHLY"
	GranularityHourly  Granularity = "HOURLY"
)

// ForecastMetric selects the cost metric a forecast is computed over.
type ForecastMetric string

const (
	ForecastUnblendedCost ForecastMetric = "UNBLENDED_COST"
	ForecastBlendedCost   ForecastMetric = "BLENDED_COST"
	ForecastAmortizedCost ForecastMetric = "AMORTIZED_COST"
)

// DefaultMetrics is the metric set requested when the caller does not ask
// for anything specific.
var DefaultMetrics = []string{"BlendedCost", "UnblendedCost", "UsageQuantity"}

// UtilizationMetrics extends the default set for per-resource detail queries.
var UtilizationMetrics = []string{
	"BlendedCost",
	"UnblendedCost",
	"UsageQuantity",
	"NormalizedUsageAmount",
}

// DateRange is a pair of calendar dates. Start is inclusive, End is
// exclusive, matching the Cost Explorer convention.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("date range requires both start and end dates")
	}
	if r.End.Before(r.Start) {
		return fmt.Errorf("end date %s is before start date %s",
			r.End.Format(DateLayout), r.Start.Format(DateLayout))
	}
	return nil
}

func (r DateRange) StartString() string {
	return r.Start.Format(DateLayout)
}

func (r DateRange) EndString() string {
	return r.End.Format(DateLayout)
}
