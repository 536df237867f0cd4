package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/de-tools/aws-billing/pkg/models/domain"
	"github.com/spf13/cobra"
)

type ForecastCmd struct {
	env         *Env
	startDate   string
	endDate     string
	granularity string
	metric      string
	asJSON      bool
}

func NewForecastCmd(env *Env) *cobra.Command {
	fc := &ForecastCmd{env: env}
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Get a cost forecast for a future date range",
		RunE:  fc.run,
	}

	addRangeFlags(cmd, &fc.startDate, &fc.endDate)
	cmd.Flags().StringVar(&fc.granularity, "granularity", "MONTHLY", "Time granularity (DAILY or MONTHLY)")
	cmd.Flags().StringVar(&fc.metric, "metric", string(domain.ForecastUnblendedCost),
		"Forecast metric (UNBLENDED_COST, BLENDED_COST or AMORTIZED_COST)")
	addJSONFlag(cmd, &fc.asJSON)

	return cmd
}

func (fc *ForecastCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	r, err := fc.env.ParseRange(fc.startDate, fc.endDate)
	if err != nil {
		return err
	}

	explorer, err := fc.env.Explorer(ctx)
	if err != nil {
		return err
	}

	metric := domain.ForecastMetric(strings.ToUpper(fc.metric))
	result, err := explorer.GetCostForecast(ctx, r, fc.env.Granularity(fc.granularity), metric)
	if err != nil {
		return err
	}

	if fc.asJSON {
		return fc.env.Reporter().JSON(result)
	}
	title := fmt.Sprintf("Cost forecast for %s to %s", r.StartString(), r.EndString())
	return fc.env.Reporter().Forecast(title, result)
}
