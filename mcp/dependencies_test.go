package mcp

import (
	"github.com/kwscout/kwscout/domain"
	"github.com/kwscout/kwscout/internal/config"
)

// NewTestDependencies builds a dependency set with an injected keyword
// service for handler tests.
func NewTestDependencies(keywords domain.KeywordService, cfg *config.Config, path string) *Dependencies {
	deps := NewDependencies(cfg, path)
	deps.keywords = keywords
	return deps
}
