package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"exsum/internal/summarizer"
)

// ParserConfig selects how raw input is turned into sentences.
type ParserConfig struct {
	Type string `yaml:"type" validate:"oneof=simple json"`
}

// SummarizerConfig selects and configures the summarizer.
type SummarizerConfig struct {
	Type          string   `yaml:"type" validate:"oneof=features"`
	TopN          int      `yaml:"top_n"`
	Reorder       bool     `yaml:"reorder"`
	ThematicWords int      `yaml:"thematic_words" validate:"gt=0"`
	Features      []string `yaml:"features" validate:"dive,required"`
	Parallel      bool     `yaml:"parallel"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Parser     ParserConfig     `yaml:"parser"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Log        LogConfig        `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	applyEnvOverrides(cfg)
	applyConfigDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/exsum/config.yaml.
// If neither exists, it writes defaults to ~/.config/exsum/config.yaml and returns them.
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
	if err := Save(userPath, defaultConfig()); err != nil {
		return nil, "", err
	}
	cfg, err := Load(userPath)
	return cfg, userPath, err
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

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		return name
	})
	return v
}

// Validate rejects settings no component can serve.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			// Namespace is "AppConfig.parser.type"; drop the struct name
			_, field, _ := strings.Cut(fe.Namespace(), ".")
			rule := fe.Tag()
			if fe.Param() != "" {
				rule += "=" + fe.Param()
			}
			return fmt.Errorf("invalid %s %q: must satisfy %s", field, fmt.Sprint(fe.Value()), rule)
		}
		return err
	}
	for _, name := range c.Summarizer.Features {
		if _, err := summarizer.NewFeature(name, c.Summarizer.ThematicWords); err != nil {
			return err
		}
	}
	return nil
}

// SummarizerOptions converts the summarizer section into summarizer options.
func (c *AppConfig) SummarizerOptions() summarizer.Options {
	return summarizer.Options{
		Features:      c.Summarizer.Features,
		ThematicWords: c.Summarizer.ThematicWords,
		Parallel:      c.Summarizer.Parallel,
	}
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "exsum", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Parser: ParserConfig{Type: "simple"},
		Summarizer: SummarizerConfig{
			Type:          "features",
			TopN:          5,
			Reorder:       true,
			ThematicWords: summarizer.DefaultThematicWords,
			Features:      summarizer.DefaultFeatures(),
			Parallel:      true,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Parser.Type == "" {
		cfg.Parser.Type = "simple"
	}
	if cfg.Summarizer.Type == "" {
		cfg.Summarizer.Type = "features"
	}
	if cfg.Summarizer.ThematicWords == 0 {
		cfg.Summarizer.ThematicWords = summarizer.DefaultThematicWords
	}
	if len(cfg.Summarizer.Features) == 0 {
		cfg.Summarizer.Features = summarizer.DefaultFeatures()
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("EXSUM_PARSER"); v != "" {
		cfg.Parser.Type = v
	}
	if v := os.Getenv("EXSUM_TOP_N"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Summarizer.TopN = parsed
		}
	}
	if v := os.Getenv("EXSUM_REORDER"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			cfg.Summarizer.Reorder = parsed
		}
	}
	if v := os.Getenv("EXSUM_THEMATIC_WORDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Summarizer.ThematicWords = parsed
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}
