// Package config loads the labelscan YAML configuration.
//
// Every setting has a working default, so the tool runs with no config
// file at all; a file overrides only the keys it sets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mcastrillon/labelscan/internal/export"
	"github.com/mcastrillon/labelscan/internal/imaging"
	"github.com/mcastrillon/labelscan/internal/ocr"
)

// Config holds all tunable settings.
type Config struct {
	// StorePath is the inventory workbook file.
	StorePath string `yaml:"store_path"`

	// BackupPath receives a copy of the workbook before every save.
	BackupPath string `yaml:"backup_path"`

	// OCRLanguage is the Tesseract language code.
	OCRLanguage string `yaml:"ocr_language"`

	// Contrast is the linear contrast factor applied before OCR.
	Contrast float64 `yaml:"contrast"`

	// MinOCRWidth upscales narrower photos before OCR; 0 disables.
	MinOCRWidth int `yaml:"min_ocr_width"`

	// Exclusions overrides the extractor's boilerplate phrase list.
	// Empty keeps the built-in list.
	Exclusions []string `yaml:"exclusions"`

	// ListingTitle heads the paginated text listing export.
	ListingTitle string `yaml:"listing_title"`

	// ListingPageSize is the number of lines per listing page.
	ListingPageSize int `yaml:"listing_page_size"`

	// LogLevel controls verbosity: "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		StorePath:       "inventario.xlsx",
		BackupPath:      "inventario_backup.xlsx",
		OCRLanguage:     ocr.DefaultLanguage,
		Contrast:        imaging.DefaultContrast,
		MinOCRWidth:     1000,
		ListingTitle:    "Inventario Biblioteca",
		ListingPageSize: export.DefaultPageSize,
		LogLevel:        "info",
	}
}

// Load reads the configuration file at path over the defaults. An empty
// path, or the default path when the file does not exist, yields the
// defaults; an explicit path that cannot be read is an error.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.StorePath == "" {
		return fmt.Errorf("store_path must not be empty")
	}
	if c.Contrast < 0 {
		return fmt.Errorf("contrast must not be negative")
	}
	if c.MinOCRWidth < 0 {
		return fmt.Errorf("min_ocr_width must not be negative")
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
