package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/de-tools/aws-billing/pkg/dates"
	"github.com/de-tools/aws-billing/pkg/models/domain"
	"github.com/de-tools/aws-billing/pkg/runtime/terminal/export"
	"github.com/de-tools/aws-billing/pkg/services/billing"
	"github.com/de-tools/aws-billing/pkg/services/config"
	"github.com/spf13/cobra"
)

// ExplorerFactory builds the billing explorer for a profile/region pair.
type ExplorerFactory func(ctx context.Context, profile string, region string) (billing.Explorer, error)

// Env carries the state shared by all commands: resolved settings, the
// explorer factory and the output reporter.
type Env struct {
	factory  ExplorerFactory
	reporter *export.Reporter

	cfgPath string
	profile string
	region  string

	Settings *config.Settings
	Now      func() time.Time
}

func NewEnv(factory ExplorerFactory, output io.Writer) *Env {
	return &Env{
		factory:  factory,
		reporter: export.NewReporter(output),
		Now:      time.Now,
	}
}

// RegisterFlags attaches the persistent flags every command inherits.
func (e *Env) RegisterFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&e.profile, "profile", "", "AWS profile name")
	cmd.PersistentFlags().StringVar(&e.region, "region", "", "AWS region name")
	cmd.PersistentFlags().StringVar(&e.cfgPath, "config", "", "Path to an optional billing settings file")
}

// Setup loads the settings once flags are parsed. Flag values win over the
// settings file.
func (e *Env) Setup(_ *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(e.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if e.profile != "" {
		settings.Profile = e.profile
	}
	if e.region != "" {
		settings.Region = e.region
	}
	e.Settings = settings
	return nil
}

func (e *Env) Explorer(ctx context.Context) (billing.Explorer, error) {
	return e.factory(ctx, e.Settings.Profile, e.Settings.Region)
}

func (e *Env) Reporter() *export.Reporter {
	return e.reporter
}

// ParseRange resolves the start/end arguments, including date tokens,
// using the configured date layout.
func (e *Env) ParseRange(start, end string) (domain.DateRange, error) {
	return dates.ParseRange(start, end, e.Settings.DateFormat, e.Now())
}

// Granularity resolves the flag value, falling back to the configured
// default.
func (e *Env) Granularity(flag string) domain.Granularity {
	if flag == "" {
		flag = e.Settings.Granularity
	}
	return domain.Granularity(strings.ToUpper(flag))
}
