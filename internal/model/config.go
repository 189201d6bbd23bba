package model

import "time"

// Config holds the complete infobot configuration
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Wiki       WikiConfig       `yaml:"wiki"`
	Politeness PolitenessConfig `yaml:"politeness"`
	Output     OutputConfig     `yaml:"output"`
}

// HTTPConfig controls the HTTP client used for all wiki requests
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
}

// WikiConfig identifies the MediaWiki API endpoint to query
type WikiConfig struct {
	APIBaseURL string `yaml:"api_base_url"`
}

// PolitenessConfig controls robots.txt compliance and rate limiting
type PolitenessConfig struct {
	RespectRobots     bool    `yaml:"respect_robots"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// OutputConfig controls diagnostic output
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Infobot/0.1 (+https://github.com/avolkov/infobot)",
			MaxBodyBytes: 4_000_000,
		},
		Wiki: WikiConfig{
			APIBaseURL: "https://en.wikipedia.org/w/api.php",
		},
		Politeness: PolitenessConfig{
			RespectRobots:     true,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
