package config

import "time"

// TestConfig returns a configuration suitable for tests: default
// bindings, fast timeouts, logging off, and the deterministic
// substring search engine.
func TestConfig() *Config {
	cfg := defaultConfig()
	cfg.API.Environment = EnvDevelopment
	cfg.API.HTTPTimeout = 2 * time.Second
	cfg.API.UserAgent = "newsdeck-test/1.0"
	cfg.Search.Engine = "substring"
	cfg.Log.Level = "off"
	return cfg
}
