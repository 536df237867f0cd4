package commands

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/de-tools/aws-billing/pkg/models/domain"
	"github.com/de-tools/aws-billing/pkg/services/billing"
	"github.com/spf13/cobra"
)

type groupedQuery func(
	ctx context.Context,
	explorer billing.Explorer,
	r domain.DateRange,
	granularity domain.Granularity,
) (*costexplorer.GetCostAndUsageOutput, error)

// groupedCostCmd is the shared shape of the service/account/region
// commands, which differ only in the grouping dimension.
type groupedCostCmd struct {
	env         *Env
	title       string
	query       groupedQuery
	startDate   string
	endDate     string
	granularity string
	asJSON      bool
}

func NewServiceCmd(env *Env) *cobra.Command {
	sc := &ServiceCmd{env: env}
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Get cost grouped by service",
		RunE:  sc.run,
	}

	addRangeFlags(cmd, &sc.startDate, &sc.endDate)
	cmd.Flags().StringVar(&sc.granularity, "granularity", "MONTHLY", "Time granularity (DAILY or MONTHLY)")
	cmd.Flags().StringSliceVar(&sc.services, "services", nil, "Restrict to these service names")
	addJSONFlag(cmd, &sc.asJSON)

	return cmd
}

// ServiceCmd also carries the optional service-name filter, which the
// other grouped commands have no equivalent of.
type ServiceCmd struct {
	env         *Env
	startDate   string
	endDate     string
	granularity string
	services    []string
	asJSON      bool
}

func (sc *ServiceCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	r, err := sc.env.ParseRange(sc.startDate, sc.endDate)
	if err != nil {
		return err
	}

	explorer, err := sc.env.Explorer(ctx)
	if err != nil {
		return err
	}

	var result *costexplorer.GetCostAndUsageOutput
	if len(sc.services) > 0 {
		result, err = explorer.GetServiceCosts(ctx, r, sc.services)
	} else {
		result, err = explorer.GetCostByService(ctx, r, sc.env.Granularity(sc.granularity))
	}
	if err != nil {
		return err
	}

	if sc.asJSON {
		return sc.env.Reporter().JSON(result)
	}
	title := fmt.Sprintf("Costs by service for %s to %s", r.StartString(), r.EndString())
	return sc.env.Reporter().CostAndUsage(title, result)
}

func NewAccountCmd(env *Env) *cobra.Command {
	gc := &groupedCostCmd{
		env:   env,
		title: "Costs by account",
		query: func(
			ctx context.Context,
			explorer billing.Explorer,
			r domain.DateRange,
			granularity domain.Granularity,
		) (*costexplorer.GetCostAndUsageOutput, error) {
			return explorer.GetCostByAccount(ctx, r, granularity)
		},
	}
	return gc.command("account", "Get cost grouped by linked account")
}

func NewRegionCmd(env *Env) *cobra.Command {
	gc := &groupedCostCmd{
		env:   env,
		title: "Costs by region",
		query: func(
			ctx context.Context,
			explorer billing.Explorer,
			r domain.DateRange,
			granularity domain.Granularity,
		) (*costexplorer.GetCostAndUsageOutput, error) {
			return explorer.GetCostByRegion(ctx, r, granularity)
		},
	}
	return gc.command("region", "Get cost grouped by region")
}

func (gc *groupedCostCmd) command(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE:  gc.run,
	}

	addRangeFlags(cmd, &gc.startDate, &gc.endDate)
	cmd.Flags().StringVar(&gc.granularity, "granularity", "MONTHLY", "Time granularity (DAILY or MONTHLY)")
	addJSONFlag(cmd, &gc.asJSON)

	return cmd
}

func (gc *groupedCostCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	r, err := gc.env.ParseRange(gc.startDate, gc.endDate)
	if err != nil {
		return err
	}

	explorer, err := gc.env.Explorer(ctx)
	if err != nil {
		return err
	}

	result, err := gc.query(ctx, explorer, r, gc.env.Granularity(gc.granularity))
	if err != nil {
		return err
	}

	if gc.asJSON {
		return gc.env.Reporter().JSON(result)
	}
	title := fmt.Sprintf("%s for %s to %s", gc.title, r.StartString(), r.EndString())
	return gc.env.Reporter().CostAndUsage(title, result)
}
