package aws_ce

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/de-tools/aws-billing/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRange() domain.DateRange {
	return domain.DateRange{
		Start: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewCostAndUsageInput_Defaults(t *testing.T) {
	input := NewCostAndUsageInput(testRange(), domain.GranularityDaily, nil)

	assert.Equal(t, "2024-03-01", aws.ToString(input.TimePeriod.Start))
	assert.Equal(t, "2024-03-15", aws.ToString(input.TimePeriod.End))
	assert.Equal(t, types.GranularityDaily, input.Granularity)
	assert.Equal(t, domain.DefaultMetrics, input.Metrics)
	assert.Nil(t, input.GroupBy)
	assert.Nil(t, input.Filter)
}

func TestNewCostAndUsageInput_CustomMetrics(t *testing.T) {
	input := NewCostAndUsageInput(testRange(), domain.GranularityMonthly, []string{"UnblendedCost"})

	assert.Equal(t, []string{"UnblendedCost"}, input.Metrics)
	assert.Equal(t, types.GranularityMonthly, input.Granularity)
}

func TestNewGroupedCostInput_DimensionMatches(t *testing.T) {
	for _, dimension := range []string{DimensionService, DimensionAccount, DimensionRegion} {
		input := NewGroupedCostInput(testRange(), domain.GranularityMonthly, dimension)

		require.Len(t, input.GroupBy, 1)
		assert.Equal(t, types.GroupDefinitionTypeDimension, input.GroupBy[0].Type)
		assert.Equal(t, dimension, aws.ToString(input.GroupBy[0].Key))
		assert.Nil(t, input.Filter)
	}
}

func TestNewResourceCostInput_WithIDs_AddsInclusionFilter(t *testing.T) {
	ids := []string{"i-0123", "i-0456"}

	input := NewResourceCostInput(testRange(), ids, domain.GranularityDaily)

	require.Len(t, input.GroupBy, 1)
	assert.Equal(t, DimensionResourceID, aws.ToString(input.GroupBy[0].Key))

	require.NotNil(t, input.Filter)
	require.NotNil(t, input.Filter.Dimensions)
	assert.Equal(t, types.DimensionResourceId, input.Filter.Dimensions.Key)
	assert.Equal(t, ids, input.Filter.Dimensions.Values)
}

func TestNewResourceCostInput_WithoutIDs_OmitsFilter(t *testing.T) {
	input := NewResourceCostInput(testRange(), nil, domain.GranularityDaily)

	require.Len(t, input.GroupBy, 1)
	assert.Equal(t, DimensionResourceID, aws.ToString(input.GroupBy[0].Key))
	assert.Nil(t, input.Filter)
}

func TestNewTagCostInput_GroupsByTagKey(t *testing.T) {
	input := NewTagCostInput(testRange(), "Environment", nil, domain.GranularityDaily)

	require.Len(t, input.GroupBy, 1)
	assert.Equal(t, types.GroupDefinitionTypeTag, input.GroupBy[0].Type)
	assert.Equal(t, "Environment", aws.ToString(input.GroupBy[0].Key))
	assert.Nil(t, input.Filter)
}

func TestNewTagCostInput_WithValues_AddsInclusionFilter(t *testing.T) {
	values := []string{"prod", "staging"}

	input := NewTagCostInput(testRange(), "Environment", values, domain.GranularityDaily)

	require.NotNil(t, input.Filter)
	require.NotNil(t, input.Filter.Tags)
	assert.Equal(t, "Environment", aws.ToString(input.Filter.Tags.Key))
	assert.Equal(t, values, input.Filter.Tags.Values)
}

func TestNewServiceCostsInput_WithServices_AddsInclusionFilter(t *testing.T) {
	services := []string{"Amazon EC2", "Amazon S3"}

	input := NewServiceCostsInput(testRange(), services)

	assert.Equal(t, types.GranularityMonthly, input.Granularity)
	require.Len(t, input.GroupBy, 1)
	assert.Equal(t, DimensionService, aws.ToString(input.GroupBy[0].Key))

	require.NotNil(t, input.Filter)
	require.NotNil(t, input.Filter.Dimensions)
	assert.Equal(t, types.DimensionService, input.Filter.Dimensions.Key)
	assert.Equal(t, services, input.Filter.Dimensions.Values)
}

func TestNewUtilizationInput_SingleResourceExtendedMetrics(t *testing.T) {
	input := NewUtilizationInput(testRange(), "i-0123", domain.GranularityDaily)

	assert.Equal(t, domain.UtilizationMetrics, input.Metrics)
	assert.Nil(t, input.GroupBy)

	require.NotNil(t, input.Filter)
	require.NotNil(t, input.Filter.Dimensions)
	assert.Equal(t, types.DimensionResourceId, input.Filter.Dimensions.Key)
	assert.Equal(t, []string{"i-0123"}, input.Filter.Dimensions.Values)
}

func TestNewForecastInput(t *testing.T) {
	input := NewForecastInput(testRange(), domain.GranularityMonthly, domain.ForecastAmortizedCost)

	assert.Equal(t, "2024-03-01", aws.ToString(input.TimePeriod.Start))
	assert.Equal(t, "2024-03-15", aws.ToString(input.TimePeriod.End))
	assert.Equal(t, types.GranularityMonthly, input.Granularity)
	assert.Equal(t, types.Metric(domain.ForecastAmortizedCost), input.Metric)
}
