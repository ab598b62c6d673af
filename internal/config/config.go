package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/shimeoki/wallpapers/internal/models"
)

const (
	DefaultStoreDirName = "wallpapers"
	DefaultMetadataName = "wallpapers.toml"
	DefaultPicker       = "fzf"
	DefaultLogLevel     = "warn"

	MetadataExtension = ".toml"

	configFileName = ".walls.toml"

	configDirEnvKey = "WALLS_CONFIG_DIR"
	storeDirEnvKey  = "WALLS_STORE_DIR"
	metadataEnvKey  = "WALLS_METADATA"
	gitEnvKey       = "WALLS_GIT"
	pickerEnvKey    = "WALLS_PICKER"
)

// Config defines runtime configuration for walls. It is resolved once at
// startup (defaults, then config file, then environment) and passed into
// every command; core packages never read the environment themselves.
type Config struct {
	StoreDir     string `toml:"store_dir"`
	MetadataPath string `toml:"metadata_path"`
	Git          bool   `toml:"git"`
	Picker       string `toml:"picker"`
	LogLevel     string `toml:"log_level"`
}

// Default returns default configuration values. StoreDir and MetadataPath
// stay empty here and are derived from the home directory during Load.
func Default() Config {
	return Config{
		StoreDir:     "",
		MetadataPath: "",
		Git:          false,
		Picker:       DefaultPicker,
		LogLevel:     DefaultLogLevel,
	}
}

func loadFile(path string, cfg *Config) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func overrideConfigPath() (string, bool) {
	dir := strings.TrimSpace(os.Getenv(configDirEnvKey))
	if dir == "" {
		return "", false
	}
	return filepath.Join(dir, configFileName), true
}

// Path returns the path of the config file Load reads.
func Path() (string, error) {
	if path, ok := overrideConfigPath(); ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configFileName), nil
}

// Load reads config from the config file and applies env overrides, then
// validates the resolved paths.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err == nil {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if dir := strings.TrimSpace(os.Getenv(storeDirEnvKey)); dir != "" {
		cfg.StoreDir = dir
	}
	if metadata := strings.TrimSpace(os.Getenv(metadataEnvKey)); metadata != "" {
		cfg.MetadataPath = metadata
	}
	if picker := strings.TrimSpace(os.Getenv(pickerEnvKey)); picker != "" {
		cfg.Picker = picker
	}
	if raw := strings.TrimSpace(os.Getenv(gitEnvKey)); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			cfg.Git = parsed
		}
	}

	if cfg.StoreDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.StoreDir = filepath.Join(home, DefaultStoreDirName)
	}
	if cfg.MetadataPath == "" {
		cfg.MetadataPath = filepath.Join(cfg.StoreDir, DefaultMetadataName)
	}
	if cfg.Picker == "" {
		cfg.Picker = DefaultPicker
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the resolved paths. Missing files and directories are
// fine (both are created on demand); existing ones must have the right type
// and the metadata file must carry the recognized extension.
func (c *Config) Validate() error {
	if filepath.Ext(c.MetadataPath) != MetadataExtension {
		return fmt.Errorf("%w: metadata path %s must have a %s extension",
			models.ErrMisconfigured, c.MetadataPath, MetadataExtension)
	}
	if info, err := os.Stat(c.MetadataPath); err == nil && info.IsDir() {
		return fmt.Errorf("%w: metadata path %s is a directory", models.ErrMisconfigured, c.MetadataPath)
	} else if err != nil && !os.IsNotExist(err) {
		return err
	}
	if info, err := os.Stat(c.StoreDir); err == nil && !info.IsDir() {
		return fmt.Errorf("%w: store dir %s is not a directory", models.ErrMisconfigured, c.StoreDir)
	} else if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

var allowedKeys = []string{
	"store_dir",
	"metadata_path",
	"git",
	"picker",
	"log_level",
}

// AllowedKeys returns the set of valid config keys.
func AllowedKeys() []string {
	return allowedKeys
}

// IsAllowedKey checks if a key is a valid config key.
func IsAllowedKey(key string) bool {
	for _, k := range allowedKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Get returns the value of a config key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "store_dir":
		return c.StoreDir, nil
	case "metadata_path":
		return c.MetadataPath, nil
	case "git":
		return strconv.FormatBool(c.Git), nil
	case "picker":
		return c.Picker, nil
	case "log_level":
		return c.LogLevel, nil
	default:
		return "", fmt.Errorf("unknown key: %s", key)
	}
}

// SetKey reads the TOML file at path, sets key=value, and writes it back.
func SetKey(path, key, value string) error {
	if !IsAllowedKey(key) {
		return fmt.Errorf("unknown key: %s", key)
	}

	data := make(map[string]any)
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &data); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}

	parsed, err := parseSetValue(key, value)
	if err != nil {
		return err
	}
	data[key] = parsed

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(data)
}

func parseSetValue(key, value string) (any, error) {
	value = strings.TrimSpace(value)
	switch key {
	case "git":
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s must be true or false", key)
		}
		return parsed, nil
	default:
		return value, nil
	}
}
