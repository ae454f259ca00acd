package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the resolved application configuration.
type Config struct {
	DataDir  string
	AptsFile string
	NotesDir string
}

// Settings represents the config file structure.
type Settings struct {
	DataDir  string `yaml:"data_dir,omitempty"`
	AptsFile string `yaml:"apts_file,omitempty"`
	NotesDir string `yaml:"notes_dir,omitempty"`
}

// CLIFlags holds parsed CLI flags.
type CLIFlags struct {
	DataDir string
}

// Load resolves configuration with priority: CLI flags > env vars >
// config file > default (~/.calcurse).
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		AptsFile: "apts",
		NotesDir: "notes",
	}

	configPath, err := getConfigPath()
	if err == nil {
		if settings, err := loadConfigFile(configPath); err == nil {
			if settings.DataDir != "" {
				cfg.DataDir = expandPath(settings.DataDir)
			}
			if settings.AptsFile != "" {
				cfg.AptsFile = settings.AptsFile
			}
			if settings.NotesDir != "" {
				cfg.NotesDir = settings.NotesDir
			}
		}
	}

	if envDir := os.Getenv("CALCURSE_DIR"); envDir != "" {
		cfg.DataDir = expandPath(envDir)
	}

	if flags.DataDir != "" {
		cfg.DataDir = expandPath(flags.DataDir)
	}

	if cfg.DataDir == "" {
		defaultDir, err := GetDefaultDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = defaultDir
	}

	return cfg, nil
}

// GetDefaultDir returns the default data directory path.
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".calcurse"), nil
}

// AptsPath returns the path of the apts file.
func (c *Config) AptsPath() string {
	return filepath.Join(c.DataDir, c.AptsFile)
}

// NotesPath returns the path of the notes directory.
func (c *Config) NotesPath() string {
	return filepath.Join(c.DataDir, c.NotesDir)
}

// EnsureDirs creates the data and notes directories if missing.
func (c *Config) EnsureDirs() error {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return err
	}
	return os.MkdirAll(c.NotesPath(), 0755)
}

// getConfigPath returns the path to the configuration file.
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "calcurse", "config.yaml"), nil
}

// loadConfigFile loads configuration from the settings file.
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it
// doesn't exist.
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	defaultDir, err := GetDefaultDir()
	if err != nil {
		return err
	}

	settings := Settings{
		DataDir:  defaultDir,
		AptsFile: "apts",
		NotesDir: "notes",
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
