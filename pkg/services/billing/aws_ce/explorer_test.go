package aws_ce

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/de-tools/aws-billing/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient records the inputs it receives and replays preset outputs.
type stubClient struct {
	usageInputs    []*costexplorer.GetCostAndUsageInput
	forecastInputs []*costexplorer.GetCostForecastInput
	usageOut       *costexplorer.GetCostAndUsageOutput
	forecastOut    *costexplorer.GetCostForecastOutput
	err            error
}

func (s *stubClient) GetCostAndUsage(
	_ context.Context,
	params *costexplorer.GetCostAndUsageInput,
	_ ...func(*costexplorer.Options),
) (*costexplorer.GetCostAndUsageOutput, error) {
	s.usageInputs = append(s.usageInputs, params)
	return s.usageOut, s.err
}

func (s *stubClient) GetCostForecast(
	_ context.Context,
	params *costexplorer.GetCostForecastInput,
	_ ...func(*costexplorer.Options),
) (*costexplorer.GetCostForecastOutput, error) {
	s.forecastInputs = append(s.forecastInputs, params)
	return s.forecastOut, s.err
}

func fixedNow() time.Time {
	return time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
}

func newTestExplorer(client *stubClient) *explorer {
	return &explorer{client: client, now: fixedNow}
}

func validRange() domain.DateRange {
	return domain.DateRange{
		Start: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
}

func invalidRange() domain.DateRange {
	return domain.DateRange{
		Start: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetCostAndUsage_PassesThroughRawOutput(t *testing.T) {
	out := &costexplorer.GetCostAndUsageOutput{
		ResultsByTime: []types.ResultByTime{
			{TimePeriod: &types.DateInterval{Start: aws.String("2024-03-01"), End: aws.String("2024-03-15")}},
		},
	}
	client := &stubClient{usageOut: out}
	e := newTestExplorer(client)

	result, err := e.GetCostAndUsage(context.Background(), validRange(), domain.GranularityDaily, nil)

	require.NoError(t, err)
	assert.Same(t, out, result)
	require.Len(t, client.usageInputs, 1)
}

func TestGetCostAndUsage_InvalidRange_NoCallMade(t *testing.T) {
	client := &stubClient{}
	e := newTestExplorer(client)

	_, err := e.GetCostAndUsage(context.Background(), invalidRange(), domain.GranularityDaily, nil)

	require.Error(t, err)
	assert.Empty(t, client.usageInputs)
}

func TestGroupedQueries_DimensionMatches(t *testing.T) {
	cases := []struct {
		name      string
		query     func(e *explorer) error
		dimension string
	}{
		{
			name: "service",
			query: func(e *explorer) error {
				_, err := e.GetCostByService(context.Background(), validRange(), "")
				return err
			},
			dimension: DimensionService,
		},
		{
			name: "account",
			query: func(e *explorer) error {
				_, err := e.GetCostByAccount(context.Background(), validRange(), "")
				return err
			},
			dimension: DimensionAccount,
		},
		{
			name: "region",
			query: func(e *explorer) error {
				_, err := e.GetCostByRegion(context.Background(), validRange(), "")
				return err
			},
			dimension: DimensionRegion,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &stubClient{usageOut: &costexplorer.GetCostAndUsageOutput{}}
			e := newTestExplorer(client)

			require.NoError(t, tc.query(e))

			require.Len(t, client.usageInputs, 1)
			input := client.usageInputs[0]
			require.Len(t, input.GroupBy, 1)
			assert.Equal(t, tc.dimension, aws.ToString(input.GroupBy[0].Key))
			// Grouped queries default to monthly buckets.
			assert.Equal(t, types.GranularityMonthly, input.Granularity)
		})
	}
}

func TestGetCostByTag_EmptyKey_ShouldError(t *testing.T) {
	client := &stubClient{}
	e := newTestExplorer(client)

	_, err := e.GetCostByTag(context.Background(), validRange(), "", nil, domain.GranularityDaily)

	require.Error(t, err)
	assert.Empty(t, client.usageInputs)
}

func TestGetCostByTag_ValuesBecomeFilter(t *testing.T) {
	client := &stubClient{usageOut: &costexplorer.GetCostAndUsageOutput{}}
	e := newTestExplorer(client)

	_, err := e.GetCostByTag(context.Background(), validRange(), "team", []string{"data"}, "")

	require.NoError(t, err)
	require.Len(t, client.usageInputs, 1)
	input := client.usageInputs[0]
	require.NotNil(t, input.Filter)
	assert.Equal(t, "team", aws.ToString(input.Filter.Tags.Key))
	assert.Equal(t, []string{"data"}, input.Filter.Tags.Values)
}

func TestGetResourceUtilization_EmptyResource_ShouldError(t *testing.T) {
	client := &stubClient{}
	e := newTestExplorer(client)

	_, err := e.GetResourceUtilization(context.Background(), validRange(), "", "")

	require.Error(t, err)
	assert.Empty(t, client.usageInputs)
}

func TestGetCostForecast_PassesThroughRawOutput(t *testing.T) {
	out := &costexplorer.GetCostForecastOutput{
		Total: &types.MetricValue{Amount: aws.String("123.45"), Unit: aws.String("USD")},
	}
	client := &stubClient{forecastOut: out}
	e := newTestExplorer(client)

	result, err := e.GetCostForecast(context.Background(), validRange(), "", "")

	require.NoError(t, err)
	assert.Same(t, out, result)

	require.Len(t, client.forecastInputs, 1)
	input := client.forecastInputs[0]
	assert.Equal(t, types.GranularityMonthly, input.Granularity)
	assert.Equal(t, types.Metric(domain.ForecastUnblendedCost), input.Metric)
}

func TestGetCostForecast_ClientError_Propagates(t *testing.T) {
	wantErr := errors.New("AccessDeniedException")
	client := &stubClient{err: wantErr}
	e := newTestExplorer(client)

	_, err := e.GetCostForecast(context.Background(), validRange(), "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestGetMonthlySummary_TrailingMonthsWindow(t *testing.T) {
	client := &stubClient{usageOut: &costexplorer.GetCostAndUsageOutput{}}
	e := newTestExplorer(client)

	_, err := e.GetMonthlySummary(context.Background(), 6)

	require.NoError(t, err)
	require.Len(t, client.usageInputs, 1)
	input := client.usageInputs[0]
	assert.Equal(t, "2023-10-01", aws.ToString(input.TimePeriod.Start))
	assert.Equal(t, "2024-03-15", aws.ToString(input.TimePeriod.End))
	assert.Equal(t, types.GranularityMonthly, input.Granularity)
	assert.Nil(t, input.GroupBy)
}

func TestGetMonthlySummary_NonPositiveMonths_ShouldError(t *testing.T) {
	client := &stubClient{}
	e := newTestExplorer(client)

	_, err := e.GetMonthlySummary(context.Background(), 0)

	require.Error(t, err)
	assert.Empty(t, client.usageInputs)
}
