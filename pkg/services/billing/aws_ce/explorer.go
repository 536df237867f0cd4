package aws_ce

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/de-tools/aws-billing/pkg/dates"
	"github.com/de-tools/aws-billing/pkg/models/domain"
	"github.com/de-tools/aws-billing/pkg/services/billing"
	"github.com/rs/zerolog"
)

// costExplorerAPI is the slice of the Cost Explorer client this package
// relies on.
type costExplorerAPI interface {
	GetCostAndUsage(
		ctx context.Context,
		params *costexplorer.GetCostAndUsageInput,
		optFns ...func(*costexplorer.Options),
	) (*costexplorer.GetCostAndUsageOutput, error)
	GetCostForecast(
		ctx context.Context,
		params *costexplorer.GetCostForecastInput,
		optFns ...func(*costexplorer.Options),
	) (*costexplorer.GetCostForecastOutput, error)
}

type explorer struct {
	client costExplorerAPI
	now    func() time.Time
}

// ExplorerFactory loads the shared AWS config for the given profile and
// returns an Explorer backed by a Cost Explorer client.
func ExplorerFactory(ctx context.Context, profile string, region string) (billing.Explorer, error) {
	cfg, err := LoadConfig(ctx, profile, region)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return NewExplorer(costexplorer.NewFromConfig(*cfg)), nil
}

func NewExplorer(client costExplorerAPI) billing.Explorer {
	return &explorer{
		client: client,
		now:    time.Now,
	}
}

func (e *explorer) GetCostAndUsage(
	ctx context.Context,
	r domain.DateRange,
	granularity domain.Granularity,
	metrics []string,
) (*costexplorer.GetCostAndUsageOutput, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if granularity == "" {
		granularity = domain.GranularityDaily
	}
	return e.costAndUsage(ctx, r, NewCostAndUsageInput(r, granularity, metrics))
}

func (e *explorer) GetCostByService(
	ctx context.Context,
	r domain.DateRange,
	granularity domain.Granularity,
) (*costexplorer.GetCostAndUsageOutput, error) {
	return e.groupedCost(ctx, r, granularity, DimensionService)
}

func (e *explorer) GetCostByAccount(
	ctx context.Context,
	r domain.DateRange,
	granularity domain.Granularity,
) (*costexplorer.GetCostAndUsageOutput, error) {
	return e.groupedCost(ctx, r, granularity, DimensionAccount)
}

func (e *explorer) GetCostByRegion(
	ctx context.Context,
	r domain.DateRange,
	granularity domain.Granularity,
) (*costexplorer.GetCostAndUsageOutput, error) {
	return e.groupedCost(ctx, r, granularity, DimensionRegion)
}

func (e *explorer) GetCostByResource(
	ctx context.Context,
	r domain.DateRange,
	resourceIDs []string,
	granularity domain.Granularity,
) (*costexplorer.GetCostAndUsageOutput, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if granularity == "" {
		granularity = domain.GranularityDaily
	}
	return e.costAndUsage(ctx, r, NewResourceCostInput(r, resourceIDs, granularity))
}

func (e *explorer) GetCostByTag(
	ctx context.Context,
	r domain.DateRange,
	tagKey string,
	tagValues []string,
	granularity domain.Granularity,
) (*costexplorer.GetCostAndUsageOutput, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if tagKey == "" {
		return nil, fmt.Errorf("tag key must not be empty")
	}
	if granularity == "" {
		granularity = domain.GranularityDaily
	}
	return e.costAndUsage(ctx, r, NewTagCostInput(r, tagKey, tagValues, granularity))
}

func (e *explorer) GetServiceCosts(
	ctx context.Context,
	r domain.DateRange,
	services []string,
) (*costexplorer.GetCostAndUsageOutput, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return e.costAndUsage(ctx, r, NewServiceCostsInput(r, services))
}

func (e *explorer) GetResourceUtilization(
	ctx context.Context,
	r domain.DateRange,
	resourceID string,
	granularity domain.Granularity,
) (*costexplorer.GetCostAndUsageOutput, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if resourceID == "" {
		return nil, fmt.Errorf("resource ID must not be empty")
	}
	if granularity == "" {
		granularity = domain.GranularityDaily
	}
	return e.costAndUsage(ctx, r, NewUtilizationInput(r, resourceID, granularity))
}

func (e *explorer) GetCostForecast(
	ctx context.Context,
	r domain.DateRange,
	granularity domain.Granularity,
	metric domain.ForecastMetric,
) (*costexplorer.GetCostForecastOutput, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if granularity == "" {
		granularity = domain.GranularityMonthly
	}
	if metric == "" {
		metric = domain.ForecastUnblendedCost
	}

	zerolog.Ctx(ctx).Info().
		Str("start", r.StartString()).
		Str("end", r.EndString()).
		Msg("requesting cost forecast")

	result, err := e.client.GetCostForecast(ctx, NewForecastInput(r, granularity, metric))
	if err != nil {
		return nil, fmt.Errorf("failed to get cost forecast: %w", err)
	}
	return result, nil
}

func (e *explorer) GetMonthlySummary(ctx context.Context, months int) (*costexplorer.GetCostAndUsageOutput, error) {
	r, err := dates.SummaryRange(e.now(), months)
	if err != nil {
		return nil, err
	}
	return e.costAndUsage(ctx, r, NewCostAndUsageInput(r, domain.GranularityMonthly, nil))
}

func (e *explorer) groupedCost(
	ctx context.Context,
	r domain.DateRange,
	granularity domain.Granularity,
	dimension string,
) (*costexplorer.GetCostAndUsageOutput, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if granularity == "" {
		granularity = domain.GranularityMonthly
	}
	return e.costAndUsage(ctx, r, NewGroupedCostInput(r, granularity, dimension))
}

func (e *explorer) costAndUsage(
	ctx context.Context,
	r domain.DateRange,
	input *costexplorer.GetCostAndUsageInput,
) (*costexplorer.GetCostAndUsageOutput, error) {
	zerolog.Ctx(ctx).Info().
		Str("start", r.StartString()).
		Str("end", r.EndString()).
		Msg("requesting cost and usage data")

	result, err := e.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get cost and usage: %w", err)
	}
	return result, nil
}
