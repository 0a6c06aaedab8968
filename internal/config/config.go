package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"

	"github.com/Mavwarf/mkicons/internal/paths"
)

// Default MQTT settings.
const (
	DefaultMQTTTopic    = "mkicons/generated"
	DefaultMQTTClientID = "mkicons"
	DefaultMQTTRetries  = 3
)

// MQTT holds broker settings for the "icons generated" notice. An empty
// Broker disables publishing.
type MQTT struct {
	Broker   string `json:"broker,omitempty"`
	Topic    string `json:"topic,omitempty"`
	ClientID string `json:"client_id,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	QoS      byte   `json:"qos,omitempty"`
	Retain   bool   `json:"retain,omitempty"`
	Retries  uint   `json:"retries,omitempty"`
}

// Enabled reports whether a broker is configured.
func (m MQTT) Enabled() bool { return m.Broker != "" }

// Webhook posts the "icons generated" notice over HTTP. An empty URL
// disables it.
type Webhook struct {
	URL     string            `json:"url,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// Enabled reports whether a URL is configured.
func (w Webhook) Enabled() bool { return w.URL != "" }

// Options holds global settings parsed from the "config" key.
type Options struct {
	Log     bool    `json:"log,omitempty"`
	MQTT    MQTT    `json:"mqtt,omitempty"`
	Webhook Webhook `json:"webhook,omitempty"`
}

// Config holds the top-level configuration. Only side channels are
// configurable; the icon set itself is fixed.
type Config struct {
	Options Options `json:"config"`
	// Source is the file the config was read from, empty for defaults.
	Source string `json:"-"`
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{Options: Options{MQTT: MQTT{
		Topic:    DefaultMQTTTopic,
		ClientID: DefaultMQTTClientID,
		Retries:  DefaultMQTTRetries,
	}}}
}

// Env holds settings read from the process environment.
type Env struct {
	LogLevel   string `env:"LOG_LEVEL" envDefault:"warn"`
	ConfigPath string `env:"MKICONS_CONFIG"`
	NoColor    string `env:"NO_COLOR"`
}

// LoadEnv parses the environment into Env.
func LoadEnv() (Env, error) {
	e, err := env.ParseAs[Env]()
	if err != nil {
		return Env{}, fmt.Errorf("parsing environment: %w", err)
	}
	return e, nil
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty; must exist)
//  2. mkicons-config.json next to the running binary
//  3. ~/.config/mkicons/mkicons-config.json
//
// When none exists the defaults are returned without error.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}
	return Default(), nil
}

func searchPaths() []string {
	var out []string
	if exe, err := os.Executable(); err == nil {
		out = append(out, filepath.Join(filepath.Dir(exe), paths.ConfigFileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		if runtime.GOOS == "windows" {
			out = append(out, filepath.Join(home, "AppData", "Roaming", paths.AppDirName, paths.ConfigFileName))
		} else {
			out = append(out, filepath.Join(home, ".config", paths.AppDirName, paths.ConfigFileName))
		}
	}
	return out
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Validate checks option ranges.
func Validate(cfg Config) error {
	m := cfg.Options.MQTT
	if m.QoS > 2 {
		return fmt.Errorf("mqtt qos must be 0, 1 or 2 (got %d)", m.QoS)
	}
	if m.Enabled() && m.Topic == "" {
		return errors.New("mqtt topic must not be empty")
	}
	return nil
}
