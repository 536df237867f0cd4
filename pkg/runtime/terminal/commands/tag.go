package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type TagCmd struct {
	env         *Env
	startDate   string
	endDate     string
	tagKey      string
	tagValues   []string
	granularity string
	asJSON      bool
}

func NewTagCmd(env *Env) *cobra.Command {
	tc := &TagCmd{env: env}
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Get cost grouped by a resource tag",
		RunE:  tc.run,
	}

	addRangeFlags(cmd, &tc.startDate, &tc.endDate)
	cmd.Flags().StringVar(&tc.tagKey, "tag-key", "", "Tag key to group by")
	cmd.Flags().StringSliceVar(&tc.tagValues, "tag-values", nil, "Tag values to filter by")
	cmd.Flags().StringVar(&tc.granularity, "granularity", "", "Time granularity (DAILY or MONTHLY)")
	addJSONFlag(cmd, &tc.asJSON)

	_ = cmd.MarkFlagRequired("tag-key")

	return cmd
}

func (tc *TagCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	r, err := tc.env.ParseRange(tc.startDate, tc.endDate)
	if err != nil {
		return err
	}

	explorer, err := tc.env.Explorer(ctx)
	if err != nil {
		return err
	}

	result, err := explorer.GetCostByTag(ctx, r, tc.tagKey, tc.tagValues, tc.env.Granularity(tc.granularity))
	if err != nil {
		return err
	}

	if tc.asJSON {
		return tc.env.Reporter().JSON(result)
	}
	title := fmt.Sprintf("Costs by tag %q for %s to %s", tc.tagKey, r.StartString(), r.EndString())
	return tc.env.Reporter().CostAndUsage(title, result)
}
