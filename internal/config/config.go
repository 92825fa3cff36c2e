package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// NormalizerConfig configures text normalization.
type NormalizerConfig struct {
	DropNumeric bool `yaml:"drop_numeric"`
}

// StopwordsConfig points at an optional stopword list file. An empty path
// selects the built-in default set.
type StopwordsConfig struct {
	Path string `yaml:"path,omitempty"`
}

// StemmerConfig configures the suffix stemmer.
type StemmerConfig struct {
	MinStemLength int `yaml:"min_stem_length"`
}

// ScoringConfig configures the IDF formula and ranking output.
type ScoringConfig struct {
	LogBase   string `yaml:"log_base"`  // "e" (natural, default) or "10"
	Weighting string `yaml:"weighting"` // "raw" (default) or "relative"
	TopTerms  int    `yaml:"top_terms"`
}

// OutputConfig configures optional result files.
type OutputConfig struct {
	Dir        string `yaml:"dir,omitempty"`
	WriteFiles bool   `yaml:"write_files"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Normalizer NormalizerConfig `yaml:"normalizer"`
	Stopwords  StopwordsConfig  `yaml:"stopwords"`
	Stemmer    StemmerConfig    `yaml:"stemmer"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Output     OutputConfig     `yaml:"output"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/tfidf/config.yaml.
// If neither exists, it writes defaults to ~/.config/tfidf/config.yaml and
// returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tfidf", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Stemmer: StemmerConfig{MinStemLength: 3},
		Scoring: ScoringConfig{LogBase: "e", Weighting: "raw", TopTerms: 5},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Stemmer.MinStemLength == 0 {
		cfg.Stemmer.MinStemLength = 3
	}
	if cfg.Scoring.LogBase == "" {
		cfg.Scoring.LogBase = "e"
	}
	if cfg.Scoring.Weighting == "" {
		cfg.Scoring.Weighting = "raw"
	}
	if cfg.Scoring.TopTerms == 0 {
		cfg.Scoring.TopTerms = 5
	}
}

func validate(cfg *AppConfig) error {
	switch cfg.Scoring.LogBase {
	case "e", "10":
	default:
		return fmt.Errorf("unknown log_base %q (want \"e\" or \"10\")", cfg.Scoring.LogBase)
	}
	switch cfg.Scoring.Weighting {
	case "raw", "relative":
	default:
		return fmt.Errorf("unknown weighting %q (want \"raw\" or \"relative\")", cfg.Scoring.Weighting)
	}
	return nil
}
