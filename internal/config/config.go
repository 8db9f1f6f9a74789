package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// API environments. The active environment selects which base URL the
// dashboard fetches from.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	API    APIConfig    `mapstructure:"api"`
	UI     UIConfig     `mapstructure:"ui"`
	Search SearchConfig `mapstructure:"search"`
	Share  ShareConfig  `mapstructure:"share"`
	Keys   KeyConfig    `mapstructure:"keys"`
	Log    LogConfig    `mapstructure:"log"`
}

type APIConfig struct {
	Environment string            `mapstructure:"environment"`
	Endpoints   map[string]string `mapstructure:"endpoints"`
	HTTPTimeout time.Duration     `mapstructure:"http_timeout"`
	UserAgent   string            `mapstructure:"user_agent"`
}

// Endpoint resolves the base URL for the active environment, falling
// back to production when the environment is unknown.
func (c APIConfig) Endpoint() string {
	if u, ok := c.Endpoints[c.Environment]; ok {
		return u
	}
	return c.Endpoints[EnvProduction]
}

type UIConfig struct {
	SummaryLength    int           `mapstructure:"summary_length"`
	ToastDuration    time.Duration `mapstructure:"toast_duration"`
	WordWrapMaxWidth int           `mapstructure:"word_wrap_max_width"`
	WordWrapMinWidth int           `mapstructure:"word_wrap_min_width"`
	// PageURL is the link shared when an article has no URL of its own.
	PageURL string `mapstructure:"page_url"`
}

type SearchConfig struct {
	Engine string `mapstructure:"engine"`
	Limit  int    `mapstructure:"limit"`
}

type ShareConfig struct {
	// Opener overrides the platform browser-opener command.
	Opener string `mapstructure:"opener"`
}

type KeyConfig struct {
	Bindings KeyBindings `mapstructure:"bindings"`
}

type KeyBindings struct {
	Quit        string `mapstructure:"quit"`
	Search      string `mapstructure:"search"`
	Chart       string `mapstructure:"chart"`
	CycleTopic  string `mapstructure:"cycle_topic"`
	CycleSource string `mapstructure:"cycle_source"`
	Bookmark    string `mapstructure:"bookmark"`
	Share       string `mapstructure:"share"`
	Open        string `mapstructure:"open"`
	ReadMore    string `mapstructure:"read_more"`
	Back        string `mapstructure:"back"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Environment: EnvProduction,
			Endpoints: map[string]string{
				EnvDevelopment: "http://localhost:8000/news",
				EnvProduction:  "https://api.newsdeck.app/news",
			},
			HTTPTimeout: 30 * time.Second,
			UserAgent:   "newsdeck/1.0 (https://github.com/newsdeck/newsdeck)",
		},
		UI: UIConfig{
			SummaryLength:    150,
			ToastDuration:    3 * time.Second,
			WordWrapMaxWidth: 120,
			WordWrapMinWidth: 40,
			PageURL:          "https://newsdeck.app/",
		},
		Search: SearchConfig{
			Engine: "substring",
			Limit:  0,
		},
		Share: ShareConfig{
			Opener: "",
		},
		Keys: KeyConfig{
			Bindings: KeyBindings{
				Quit:        "q",
				Search:      "/",
				Chart:       "c",
				CycleTopic:  "t",
				CycleSource: "f",
				Bookmark:    "b",
				Share:       "s",
				Open:        "o",
				ReadMore:    "r",
				Back:        "esc",
			},
		},
		Log: LogConfig{
			Level: "off",
			Path:  "",
		},
	}
}

// Load reads configuration from the given path, or from the standard
// locations (~/.config/newsdeck/config.toml, then the working
// directory) when the path is empty. NEWSDECK_* environment variables
// override file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	cfg := defaultConfig()
	v.SetDefault("api", cfg.API)
	v.SetDefault("ui", cfg.UI)
	v.SetDefault("search", cfg.Search)
	v.SetDefault("share", cfg.Share)
	v.SetDefault("keys", cfg.Keys)
	v.SetDefault("log", cfg.Log)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir := filepath.Join(homeDir, ".config", "newsdeck")

		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("NEWSDECK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &config, nil
}

// Save writes the configuration as TOML. Durations are rendered as
// strings for readability.
func Save(config *Config, path string) error {
	doc := map[string]any{
		"api": map[string]any{
			"environment":  config.API.Environment,
			"endpoints":    config.API.Endpoints,
			"http_timeout": config.API.HTTPTimeout.String(),
			"user_agent":   config.API.UserAgent,
		},
		"ui": map[string]any{
			"summary_length":      config.UI.SummaryLength,
			"toast_duration":      config.UI.ToastDuration.String(),
			"word_wrap_max_width": config.UI.WordWrapMaxWidth,
			"word_wrap_min_width": config.UI.WordWrapMinWidth,
			"page_url":            config.UI.PageURL,
		},
		"search": map[string]any{
			"engine": config.Search.Engine,
			"limit":  config.Search.Limit,
		},
		"share": map[string]any{
			"opener": config.Share.Opener,
		},
		"keys": map[string]any{
			"bindings": map[string]any{
				"quit":         config.Keys.Bindings.Quit,
				"search":       config.Keys.Bindings.Search,
				"chart":        config.Keys.Bindings.Chart,
				"cycle_topic":  config.Keys.Bindings.CycleTopic,
				"cycle_source": config.Keys.Bindings.CycleSource,
				"bookmark":     config.Keys.Bindings.Bookmark,
				"share":        config.Keys.Bindings.Share,
				"open":         config.Keys.Bindings.Open,
				"read_more":    config.Keys.Bindings.ReadMore,
				"back":         config.Keys.Bindings.Back,
			},
		},
		"log": map[string]any{
			"level": config.Log.Level,
			"path":  config.Log.Path,
		},
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// GenerateDefaultConfig writes the built-in defaults to path.
func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}
