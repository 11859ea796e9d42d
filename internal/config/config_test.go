package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", false)
	if err != nil {
		t.Fatalf("Load with no path failed: %v", err)
	}
	if cfg.StorePath != "inventario.xlsx" {
		t.Errorf("StorePath = %q", cfg.StorePath)
	}
	if cfg.BackupPath != "inventario_backup.xlsx" {
		t.Errorf("BackupPath = %q", cfg.BackupPath)
	}
	if cfg.Contrast != 2.0 {
		t.Errorf("Contrast = %v, want 2.0", cfg.Contrast)
	}
	if cfg.OCRLanguage != "spa" {
		t.Errorf("OCRLanguage = %q, want spa", cfg.OCRLanguage)
	}
	if cfg.ListingPageSize != 33 {
		t.Errorf("ListingPageSize = %d, want 33", cfg.ListingPageSize)
	}
}

func TestLoad_MissingDefaultPathFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	if err != nil {
		t.Fatalf("Load of absent default config failed: %v", err)
	}
	if cfg.StorePath != "inventario.xlsx" {
		t.Error("defaults not applied")
	}
}

func TestLoad_MissingExplicitPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), true); err == nil {
		t.Error("explicit missing config should fail")
	}
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labelscan.yaml")
	body := "store_path: /data/inv.xlsx\nocr_language: eng\ncontrast: 1.5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StorePath != "/data/inv.xlsx" || cfg.OCRLanguage != "eng" || cfg.Contrast != 1.5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.BackupPath != "inventario_backup.xlsx" {
		t.Errorf("unset key lost its default: %q", cfg.BackupPath)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty store path", "store_path: \"\"\n"},
		{"negative contrast", "contrast: -1\n"},
		{"bad log level", "log_level: loud\n"},
		{"not yaml", ": : :\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path, true); err == nil {
				t.Error("Load should fail")
			}
		})
	}
}
