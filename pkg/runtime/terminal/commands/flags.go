package commands

import (
	"time"

	"github.com/spf13/cobra"
)

const requestTimeout = 60 * time.Second

const dateFlagHelp = "(YYYY-MM-DD or token: today, yesterday, month_start, month_end, year_start)"

func addRangeFlags(cmd *cobra.Command, start, end *string) {
	cmd.Flags().StringVar(start, "start-date", "", "Start date "+dateFlagHelp)
	cmd.Flags().StringVar(end, "end-date", "", "End date "+dateFlagHelp)
	_ = cmd.MarkFlagRequired("start-date")
	_ = cmd.MarkFlagRequired("end-date")
}

func addJSONFlag(cmd *cobra.Command, asJSON *bool) {
	cmd.Flags().BoolVar(asJSON, "json", false, "Output the raw response as JSON")
}
