package aws_ce

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/de-tools/aws-billing/pkg/models/domain"
)

// Group-by dimension keys understood by Cost Explorer.
const (
	DimensionService    = "SERVICE"
	DimensionAccount    = "LINKED_ACCOUNT"
	DimensionRegion     = "REGION"
	DimensionResourceID = "RESOURCE_ID"
)

func interval(r domain.DateRange) *types.DateInterval {
	return &types.DateInterval{
		Start: aws.String(r.StartString()),
		End:   aws.String(r.EndString()),
	}
}

func groupByDimension(key string) []types.GroupDefinition {
	return []types.GroupDefinition{
		{
			Type: types.GroupDefinitionTypeDimension,
			Key:  aws.String(key),
		},
	}
}

// NewCostAndUsageInput builds a plain, ungrouped query.
func NewCostAndUsageInput(
	r domain.DateRange,
	granularity domain.Granularity,
	metrics []string,
) *costexplorer.GetCostAndUsageInput {
	if len(metrics) == 0 {
		metrics = domain.DefaultMetrics
	}
	return &costexplorer.GetCostAndUsageInput{
		TimePeriod:  interval(r),
		Granularity: types.Granularity(granularity),
		Metrics:     metrics,
	}
}

// NewGroupedCostInput builds a query grouped by a single dimension.
func NewGroupedCostInput(
	r domain.DateRange,
	granularity domain.Granularity,
	dimension string,
) *costexplorer.GetCostAndUsageInput {
	input := NewCostAndUsageInput(r, granularity, nil)
	input.GroupBy = groupByDimension(dimension)
	return input
}

// NewResourceCostInput groups by resource ID. A non-empty resourceIDs list
// becomes an inclusion filter; an empty list leaves the query unfiltered.
func NewResourceCostInput(
	r domain.DateRange,
	resourceIDs []string,
	granularity domain.Granularity,
) *costexplorer.GetCostAndUsageInput {
	input := NewGroupedCostInput(r, granularity, DimensionResourceID)
	if len(resourceIDs) > 0 {
		input.Filter = &types.Expression{
			Dimensions: &types.DimensionValues{
				Key:    types.DimensionResourceId,
				Values: resourceIDs,
			},
		}
	}
	return input
}

// NewTagCostInput groups by the values of tagKey. A non-empty tagValues
// list becomes an inclusion filter; an empty list covers all values.
func NewTagCostInput(
	r domain.DateRange,
	tagKey string,
	tagValues []string,
	granularity domain.Granularity,
) *costexplorer.GetCostAndUsageInput {
	input := NewCostAndUsageInput(r, granularity, nil)
	input.GroupBy = []types.GroupDefinition{
		{
			Type: types.GroupDefinitionTypeTag,
			Key:  aws.String(tagKey),
		},
	}
	if len(tagValues) > 0 {
		input.Filter = &types.Expression{
			Tags: &types.TagValues{
				Key:    aws.String(tagKey),
				Values: tagValues,
			},
		}
	}
	return input
}

// NewServiceCostsInput groups monthly costs by service, optionally
// restricted to the named services.
func NewServiceCostsInput(
	r domain.DateRange,
	services []string,
) *costexplorer.GetCostAndUsageInput {
	input := NewGroupedCostInput(r, domain.GranularityMonthly, DimensionService)
	if len(services) > 0 {
		input.Filter = &types.Expression{
			Dimensions: &types.DimensionValues{
				Key:    types.DimensionService,
				Values: services,
			},
		}
	}
	return input
}

// NewUtilizationInput requests extended metrics for a single resource.
func NewUtilizationInput(
	r domain.DateRange,
	resourceID string,
	granularity domain.Granularity,
) *costexplorer.GetCostAndUsageInput {
	input := NewCostAndUsageInput(r, granularity, domain.UtilizationMetrics)
	input.Filter = &types.Expression{
		Dimensions: &types.DimensionValues{
			Key:    types.DimensionResourceId,
			Values: []string{resourceID},
		},
	}
	return input
}

// NewForecastInput builds a forecast request for a future range.
func NewForecastInput(
	r domain.DateRange,
	granularity domain.Granularity,
	metric domain.ForecastMetric,
) *costexplorer.GetCostForecastInput {
	return &costexplorer.GetCostForecastInput{
		TimePeriod:  interval(r),
		Granularity: types.Granularity(granularity),
		Metric:      types.Metric(metric),
	}
}
