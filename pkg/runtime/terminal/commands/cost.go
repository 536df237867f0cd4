package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type CostCmd struct {
	env         *Env
	startDate   string
	endDate     string
	granularity string
	asJSON      bool
}

func NewCostCmd(env *Env) *cobra.Command {
	cc := &CostCmd{env: env}
	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Get cost and usage data for a date range",
		RunE:  cc.run,
	}

	addRangeFlags(cmd, &cc.startDate, &cc.endDate)
	cmd.Flags().StringVar(&cc.granularity, "granularity", "", "Time granularity (DAILY, MONTHLY or HOURLY)")
	addJSONFlag(cmd, &cc.asJSON)

	return cmd
}

func (cc *CostCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	r, err := cc.env.ParseRange(cc.startDate, cc.endDate)
	if err != nil {
		return err
	}

	explorer, err := cc.env.Explorer(ctx)
	if err != nil {
		return err
	}

	result, err := explorer.GetCostAndUsage(ctx, r, cc.env.Granularity(cc.granularity), cc.env.Settings.Metrics)
	if err != nil {
		return err
	}

	if cc.asJSON {
		return cc.env.Reporter().JSON(result)
	}
	title := fmt.Sprintf("Cost for %s to %s", r.StartString(), r.EndString())
	return cc.env.Reporter().CostAndUsage(title, result)
}
