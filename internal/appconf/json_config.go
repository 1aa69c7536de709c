package appconf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxConfigFileSize bounds how large a config file we are willing to parse.
const maxConfigFileSize = 10 * 1024 * 1024

// TimetableFeed describes where the normalized timetable CSV comes from.
type TimetableFeed struct {
	// Source is an http(s) URL or a local file path.
	Source string `json:"source"`
	// ReloadHours is how often URL sources are re-downloaded.
	ReloadHours int `json:"reload-hours"`
}

// JSONConfig is the on-disk configuration file format. It mirrors the
// command-line flags so deployments can ship a single file instead.
type JSONConfig struct {
	Port          int           `json:"port"`
	Env           string        `json:"env"`
	ApiKeys       []string      `json:"api-keys"`
	RateLimit     int           `json:"rate-limit"`
	TimetableFeed TimetableFeed `json:"timetable-feed"`
	DataPath      string        `json:"data-path"`
}

// LoadFromFile reads, defaults and validates a JSON configuration file.
func LoadFromFile(path string) (*JSONConfig, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes", info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &JSONConfig{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON config: %w", err)
	}

	config.setDefaults()

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c *JSONConfig) setDefaults() {
	if c.Port == 0 {
		c.Port = 4000
	}
	if c.Env == "" {
		c.Env = "development"
	}
	if len(c.ApiKeys) == 0 {
		c.ApiKeys = []string{"test"}
	}
	if c.RateLimit == 0 {
		c.RateLimit = 100
	}
	if c.TimetableFeed.Source == "" {
		c.TimetableFeed.Source = "./horaires-des-bus-de-la-srtgn.csv"
	}
	if c.TimetableFeed.ReloadHours == 0 {
		c.TimetableFeed.ReloadHours = 24
	}
	if c.DataPath == "" {
		c.DataPath = "./timetable.db"
	}
}

func (c *JSONConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}

	switch c.Env {
	case "development", "test", "production":
	default:
		return fmt.Errorf("env must be one of development, test, production; got %q", c.Env)
	}

	if c.RateLimit < 1 {
		return fmt.Errorf("rate-limit must be at least 1, got %d", c.RateLimit)
	}

	if len(c.ApiKeys) == 0 {
		return fmt.Errorf("api-keys cannot be empty")
	}
	seen := make(map[string]bool)
	for _, key := range c.ApiKeys {
		if key == "" {
			return fmt.Errorf("api-keys cannot contain empty strings")
		}
		if seen[key] {
			return fmt.Errorf("duplicate API key found: %q", key)
		}
		seen[key] = true
	}

	if strings.HasPrefix(strings.ToLower(c.TimetableFeed.Source), "file://") {
		return fmt.Errorf("timetable-feed: file:// URLs are not allowed")
	}
	if !isURL(c.TimetableFeed.Source) && hasPathTraversal(c.TimetableFeed.Source) {
		return fmt.Errorf("timetable-feed source must not traverse outside the working directory")
	}

	if c.DataPath != "" && c.DataPath != ":memory:" && hasPathTraversal(c.DataPath) {
		return fmt.Errorf("data-path must not traverse outside the working directory")
	}

	return nil
}

func isURL(value string) bool {
	lower := strings.ToLower(value)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// hasPathTraversal reports whether a relative path escapes the working
// directory once cleaned. Absolute paths are allowed.
func hasPathTraversal(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	cleaned := filepath.Clean(path)
	return cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator))
}

// ToAppConfig converts the file format to the runtime Config.
func (c *JSONConfig) ToAppConfig() Config {
	return Config{
		Port:      c.Port,
		Env:       EnvFlagToEnvironment(c.Env),
		ApiKeys:   c.ApiKeys,
		RateLimit: c.RateLimit,
		Verbose:   true,
	}
}
