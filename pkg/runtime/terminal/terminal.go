package terminal

import (
	"io"
	"os"

	"github.com/de-tools/aws-billing/pkg/runtime/terminal/commands"
	"github.com/de-tools/aws-billing/pkg/services/billing/aws_ce"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	env     *commands.Env
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Factory commands.ExplorerFactory
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Factory == nil {
		opts.Factory = aws_ce.ExplorerFactory
	}

	cli := &CLI{
		env: commands.NewEnv(opts.Factory, opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "aws-billing",
		Short:             "Query AWS billing data by date range",
		SilenceUsage:      true,
		PersistentPreRunE: cli.env.Setup,
	}

	cli.env.RegisterFlags(cmd)

	cmd.AddCommand(commands.NewCostCmd(cli.env))
	cmd.AddCommand(commands.NewServiceCmd(cli.env))
	cmd.AddCommand(commands.NewAccountCmd(cli.env))
	cmd.AddCommand(commands.NewRegionCmd(cli.env))
	cmd.AddCommand(commands.NewResourceCmd(cli.env))
	cmd.AddCommand(commands.NewTagCmd(cli.env))
	cmd.AddCommand(commands.NewUtilizationCmd(cli.env))
	cmd.AddCommand(commands.NewForecastCmd(cli.env))
	cmd.AddCommand(commands.NewSummaryCmd(cli.env))
	cmd.AddCommand(commands.NewProfilesCmd(cli.env))

	return cmd
}
