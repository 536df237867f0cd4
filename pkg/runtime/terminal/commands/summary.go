package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type SummaryCmd struct {
	env    *Env
	months int
	asJSON bool
}

func NewSummaryCmd(env *Env) *cobra.Command {
	sc := &SummaryCmd{env: env}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Get a monthly cost summary for the trailing months",
		RunE:  sc.run,
	}

	cmd.Flags().IntVar(&sc.months, "months", 6, "Number of months to look back")
	addJSONFlag(cmd, &sc.asJSON)

	return cmd
}

func (sc *SummaryCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	explorer, err := sc.env.Explorer(ctx)
	if err != nil {
		return err
	}

	result, err := explorer.GetMonthlySummary(ctx, sc.months)
	if err != nil {
		return err
	}

	if sc.asJSON {
		return sc.env.Reporter().JSON(result)
	}
	title := fmt.Sprintf("Monthly cost summary for the last %d months", sc.months)
	return sc.env.Reporter().CostAndUsage(title, result)
}
