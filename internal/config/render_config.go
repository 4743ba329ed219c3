package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"invoicepress/internal/render"
)

// RenderConfig represents the complete renderer configuration
type RenderConfig struct {
	Page    PageConfig    `toml:"page"`
	Photos  PhotoConfig   `toml:"photos"`
	Storage StorageConfig `toml:"storage"`
}

// PageConfig contains page margin settings in PDF points
type PageConfig struct {
	MarginLeft   float64 `toml:"margin_left"`
	MarginTop    float64 `toml:"margin_top"`
	MarginRight  float64 `toml:"margin_right"`
	MarginBottom float64 `toml:"margin_bottom"`
}

// PhotoConfig contains photo appendix layout settings
type PhotoConfig struct {
	ThumbnailMaxPt float64 `toml:"thumbnail_max_pt"`
	GapPt          float64 `toml:"gap_pt"`
}

// StorageConfig contains bucket names for documents and source images
type StorageConfig struct {
	DocumentBucket string `toml:"document_bucket"`
	ImageBucket    string `toml:"image_bucket"`
}

// DefaultRenderConfig returns the configuration used when no file is given.
func DefaultRenderConfig() *RenderConfig {
	geom := render.A4Geometry()
	defaults := render.DefaultConfig()
	return &RenderConfig{
		Page: PageConfig{
			MarginLeft:   geom.MarginLeft,
			MarginTop:    geom.MarginTop,
			MarginRight:  geom.MarginRight,
			MarginBottom: geom.MarginBottom,
		},
		Photos: PhotoConfig{
			ThumbnailMaxPt: defaults.ThumbnailMax,
			GapPt:          defaults.ThumbnailGap,
		},
		Storage: StorageConfig{
			DocumentBucket: "invoices",
			ImageBucket:    "invoice-images",
		},
	}
}

// LoadRenderConfig loads configuration from a TOML file, filling gaps
// with defaults.
func LoadRenderConfig(filename string) (*RenderConfig, error) {
	config := DefaultRenderConfig()
	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	return config, nil
}

// RendererConfig maps the file configuration onto the engine's config.
// The page size itself is fixed; only margins and photo layout vary.
func (c *RenderConfig) RendererConfig() render.Config {
	cfg := render.DefaultConfig()
	cfg.Geometry.MarginLeft = c.Page.MarginLeft
	cfg.Geometry.MarginTop = c.Page.MarginTop
	cfg.Geometry.MarginRight = c.Page.MarginRight
	cfg.Geometry.MarginBottom = c.Page.MarginBottom
	if c.Photos.ThumbnailMaxPt > 0 {
		cfg.ThumbnailMax = c.Photos.ThumbnailMaxPt
	}
	if c.Photos.GapPt > 0 {
		cfg.ThumbnailGap = c.Photos.GapPt
	}
	return cfg
}
