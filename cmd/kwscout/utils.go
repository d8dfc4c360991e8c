package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kwscout/kwscout/domain"
	"github.com/kwscout/kwscout/internal/config"
	"github.com/kwscout/kwscout/internal/vidiq"
	"github.com/kwscout/kwscout/service"
)

// commandContext bundles the resolved configuration and the services
// every subcommand needs
type commandContext struct {
	cfg     *config.Config
	service domain.KeywordService
}

// newCommandContext loads the config file named by the persistent
// --config flag and builds a keyword service with the resolved token
func newCommandContext(cmd *cobra.Command) (*commandContext, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	flagToken, _ := cmd.Flags().GetString("token")
	token, err := cfg.ResolveToken(flagToken)
	if err != nil {
		return nil, err
	}

	client, err := vidiq.NewClient(token)
	if err != nil {
		return nil, err
	}

	return &commandContext{
		cfg:     cfg,
		service: service.NewKeywordService(client),
	}, nil
}

// resolveOutputFormat maps the exclusive format flags onto an output
// format, falling back to the configured default
func resolveOutputFormat(cfg *config.Config, jsonFlag, yamlFlag, csvFlag bool) domain.OutputFormat {
	switch {
	case jsonFlag:
		return domain.OutputFormatJSON
	case yamlFlag:
		return domain.OutputFormatYAML
	case csvFlag:
		return domain.OutputFormatCSV
	default:
		return domain.OutputFormat(cfg.Output.Format)
	}
}

// resolveDelay prefers an explicitly set --delay flag over the
// configured delay
func resolveDelay(cfg *config.Config, flags *pflag.FlagSet, delaySeconds float64) time.Duration {
	if !flags.Changed("delay") || delaySeconds < 0 {
		return cfg.Delay()
	}
	return time.Duration(delaySeconds * float64(time.Second))
}
