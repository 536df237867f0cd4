package commands

import (
	"fmt"

	"github.com/de-tools/aws-billing/pkg/services/config"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	env     *Env
	cfgPath string
}

// NewProfilesCmd lists the profiles declared in the AWS shared config
// file, so callers can see what --profile accepts.
func NewProfilesCmd(env *Env) *cobra.Command {
	pc := &ProfilesCmd{env: env}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List profiles from the AWS shared config file",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.cfgPath, "aws-config", config.DefaultSharedConfigPath(),
		"Path to the AWS shared config file")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	registry, err := config.NewRegistry(pc.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read AWS config at %s: %w", pc.cfgPath, err)
	}

	profiles, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}

	return pc.env.Reporter().Profiles(profiles)
}
