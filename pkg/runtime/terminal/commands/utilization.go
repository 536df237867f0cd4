package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type UtilizationCmd struct {
	env         *Env
	startDate   string
	endDate     string
	resourceID  string
	granularity string
	asJSON      bool
}

func NewUtilizationCmd(env *Env) *cobra.Command {
	uc := &UtilizationCmd{env: env}
	cmd := &cobra.Command{
		Use:   "utilization",
		Short: "Get detailed utilization for a single resource",
		RunE:  uc.run,
	}

	addRangeFlags(cmd, &uc.startDate, &uc.endDate)
	cmd.Flags().StringVar(&uc.resourceID, "resource-id", "", "Resource ID to analyze")
	cmd.Flags().StringVar(&uc.granularity, "granularity", "", "Time granularity (DAILY, MONTHLY or HOURLY)")
	addJSONFlag(cmd, &uc.asJSON)

	_ = cmd.MarkFlagRequired("resource-id")

	return cmd
}

func (uc *UtilizationCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	r, err := uc.env.ParseRange(uc.startDate, uc.endDate)
	if err != nil {
		return err
	}

	explorer, err := uc.env.Explorer(ctx)
	if err != nil {
		return err
	}

	result, err := explorer.GetResourceUtilization(ctx, r, uc.resourceID, uc.env.Granularity(uc.granularity))
	if err != nil {
		return err
	}

	if uc.asJSON {
		return uc.env.Reporter().JSON(result)
	}
	title := fmt.Sprintf("Resource utilization for %s from %s to %s",
		uc.resourceID, r.StartString(), r.EndString())
	return uc.env.Reporter().CostAndUsage(title, result)
}
