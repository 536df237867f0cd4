package billing

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/de-tools/aws-billing/pkg/models/domain"
)

// Explorer issues date-bounded cost queries against the billing provider.
// Every call validates its parameters locally, performs exactly one
// outbound request and returns the provider's response unmodified.
type Explorer interface {
	// GetCostAndUsage runs a plain, ungrouped cost query. A nil metrics
	// slice falls back to domain.DefaultMetrics.
	GetCostAndUsage(
		ctx context.Context,
		r domain.DateRange,
		granularity domain.Granularity,
		metrics []string,
	) (*costexplorer.GetCostAndUsageOutput, error)

	// GetCostByService groups costs by service name.
	GetCostByService(
		ctx context.Context,
		r domain.DateRange,
		granularity domain.Granularity,
	) (*costexplorer.GetCostAndUsageOutput, error)

	// GetCostByAccount groups costs by linked account.
	GetCostByAccount(
		ctx context.Context,
		r domain.DateRange,
		granularity domain.Granularity,
	) (*costexplorer.GetCostAndUsageOutput, error)

	// GetCostByRegion groups costs by region.
	GetCostByRegion(
		ctx context.Context,
		r domain.DateRange,
		granularity domain.Granularity,
	) (*costexplorer.GetCostAndUsageOutput, error)

	// GetCostByResource groups costs by resource ID. A non-empty
	// resourceIDs list restricts the query to exactly those resources.
	GetCostByResource(
		ctx context.Context,
		r domain.DateRange,
		resourceIDs []string,
		granularity domain.Granularity,
	) (*costexplorer.GetCostAndUsageOutput, error)

	// GetCostByTag groups costs by the values of tagKey. A non-empty
	// tagValues list restricts the query to those values; an empty list
	// covers every value of the tag.
	GetCostByTag(
		ctx context.Context,
		r domain.DateRange,
		tagKey string,
		tagValues []string,
		granularity domain.Granularity,
	) (*costexplorer.GetCostAndUsageOutput, error)

	// GetServiceCosts returns monthly costs grouped by service,
	// optionally restricted to the named services.
	GetServiceCosts(
		ctx context.Context,
		r domain.DateRange,
		services []string,
	) (*costexplorer.GetCostAndUsageOutput, error)

	// GetResourceUtilization returns extended usage metrics for a single
	// resource.
	GetResourceUtilization(
		ctx context.Context,
		r domain.DateRange,
		resourceID string,
		granularity domain.Granularity,
	) (*costexplorer.GetCostAndUsageOutput, error)

	// GetCostForecast asks the provider for a cost prediction over a
	// future range.
	GetCostForecast(
		ctx context.Context,
		r domain.DateRange,
		granularity domain.Granularity,
		metric domain.ForecastMetric,
	) (*costexplorer.GetCostForecastOutput, error)

	// GetMonthlySummary returns monthly totals for the trailing months
	// window ending at the current month.
	GetMonthlySummary(ctx context.Context, months int) (*costexplorer.GetCostAndUsageOutput, error)
}
