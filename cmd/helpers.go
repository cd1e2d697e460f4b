package cmd

import (
	"fmt"
	"io/fs"

	"github.com/rvrdev/portfolio/internal/config"
	"github.com/rvrdev/portfolio/internal/content"
	"github.com/rvrdev/portfolio/internal/logging"
	"github.com/rvrdev/portfolio/internal/site"
	"github.com/rvrdev/portfolio/web"
)

// loadConfig reads, overrides and validates the configuration, then applies
// its log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadContent(cfg *config.Config) (*content.Site, error) {
	if cfg.ContentFile != "" {
		return content.Load(cfg.ContentFile)
	}
	return content.Default()
}

func newRenderer(cfg *config.Config, buildID string) (*site.Renderer, error) {
	s, err := loadContent(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.SiteURL != "" {
		s.Meta.URL = cfg.SiteURL
	}
	return site.NewRenderer(s, site.Options{
		BasePath: cfg.BasePath(),
		BuildID:  buildID,
		LogLevel: cfg.LogLevel,
	})
}

func staticFS() (fs.FS, error) {
	return fs.Sub(web.FS, "static")
}
