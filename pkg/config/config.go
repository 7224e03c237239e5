package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
)

// AppConfig holds all user-defined persistent settings.
// DefaultFilename overrides the layout's own export name; ScanEnd bounds
// the __textN- span scan.
type AppConfig struct {
	Variant         string `json:"variant,omitempty" validate:"omitempty,oneof=dated plain full"`
	DefaultFilename string `json:"default_filename,omitempty"`
	OutputDir       string `json:"output_dir,omitempty"`
	SpanAttribute   string `json:"span_attribute,omitempty" validate:"omitempty,oneof=id data-sap-ui"`
	ScanEnd         int    `json:"scan_end,omitempty" validate:"gte=0"`
	SelectionFile   string `json:"selection_file,omitempty"`
	Timezone        string `json:"timezone,omitempty"`
	TermStart       string `json:"term_start,omitempty"`
	Weeks           int    `json:"weeks,omitempty" validate:"gte=0"`
	AccentColor     string `json:"accent_color,omitempty" validate:"omitempty,hexcolor|number"`
	LogFile         string `json:"log_file,omitempty"`
}

// Defaults returns the settings used for anything the user has not set.
func Defaults() AppConfig {
	return AppConfig{
		Variant:       "dated",
		OutputDir:     ".",
		SpanAttribute: "id",
		ScanEnd:       200,
		SelectionFile: "selected.json",
		Timezone:      "Europe/Istanbul",
		Weeks:         14,
		AccentColor:   "99",
	}
}

// getConfigPath returns the absolute path to ~/.ttgrab.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ttgrab.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Path returns where the configuration is stored.
func Path() (string, error) {
	return getConfigPath()
}

// WithDefaults returns a copy of c with unset fields taken from Defaults.
func (c AppConfig) WithDefaults() AppConfig {
	_ = mergo.Merge(&c, Defaults())
	return c
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the values a user can type into the config file.
func (c AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
