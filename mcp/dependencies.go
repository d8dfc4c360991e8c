// Package mcp exposes kwscout's keyword research operations as MCP
// tools over stdio.
package mcp

import (
	"github.com/kwscout/kwscout/domain"
	"github.com/kwscout/kwscout/internal/config"
	"github.com/kwscout/kwscout/internal/vidiq"
	"github.com/kwscout/kwscout/service"
)

// Dependencies aggregates the shared services required by MCP handlers.
type Dependencies struct {
	config     *config.Config
	configPath string

	// keywords is built lazily so the server can start without a
	// token; set directly in tests to inject a fake.
	keywords domain.KeywordService
}

// NewDependencies constructs the dependency set with sane defaults.
func NewDependencies(cfg *config.Config, configPath string) *Dependencies {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	return &Dependencies{
		config:     cfg,
		configPath: configPath,
	}
}

// Config exposes the loaded configuration snapshot.
func (d *Dependencies) Config() *config.Config {
	return d.config
}

// ConfigPath returns the configured config file path (may be empty to trigger discovery).
func (d *Dependencies) ConfigPath() string {
	return d.configPath
}

// KeywordService returns the shared keyword service, building it on
// first use with the resolved API token.
func (d *Dependencies) KeywordService() (domain.KeywordService, error) {
	if d.keywords != nil {
		return d.keywords, nil
	}

	token, err := d.config.ResolveToken("")
	if err != nil {
		return nil, err
	}
	client, err := vidiq.NewClient(token)
	if err != nil {
		return nil, err
	}

	d.keywords = service.NewKeywordService(client)
	return d.keywords, nil
}

// ExportService returns an export service backed by the shared keyword
// service.
func (d *Dependencies) ExportService() (domain.ExportService, error) {
	keywords, err := d.KeywordService()
	if err != nil {
		return nil, err
	}
	return service.NewExportService(keywords), nil
}
