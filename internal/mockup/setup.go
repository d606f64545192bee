package mockup

import (
	"fmt"

	"github.com/youruser/mockupapp/internal/config"
	"github.com/youruser/mockupapp/internal/templates"
)

// Setup loads the coordinate table named by cfg and returns a generator
// configured from it.
func Setup(cfg config.Config) (*Generator, error) {
	catalog, err := templates.LoadCatalog(cfg.CoordinatesPath)
	if err != nil {
		return nil, fmt.Errorf("template coordinates: %w", err)
	}
	g := New(catalog, cfg.TemplateDir)
	g.Quality = cfg.JPEGQuality
	g.Logger = cfg.Logger()
	g.Logger.Debug("Loaded template coordinates", "path", cfg.CoordinatesPath, "templates", catalog.Len())
	return g, nil
}
