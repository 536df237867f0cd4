package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// Registry exposes the profiles declared in the AWS shared config file.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetRegion(ctx context.Context, profile string) (string, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// DefaultSharedConfigPath resolves the AWS shared config file the same way
// the SDK does: AWS_CONFIG_FILE if set, otherwise ~/.aws/config.
func DefaultSharedConfigPath() string {
	if path := os.Getenv("AWS_CONFIG_FILE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aws", "config")
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			continue
		}
		if len(section.Keys()) == 0 {
			continue
		}
		// Non-default profiles are declared as "[profile <name>]".
		profiles = append(profiles, strings.TrimPrefix(name, "profile "))
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetRegion(_ context.Context, profile string) (string, error) {
	name := profile
	if profile != "default" {
		name = "profile " + profile
	}

	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return "", fmt.Errorf("profile %s not found", profile)
	}
	return section.Key("region").String(), nil
}
