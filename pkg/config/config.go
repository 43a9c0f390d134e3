package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	// Timezone decides which calendar date "today" is. "Local" uses the host zone.
	Timezone    string `yaml:"timezone" default:"Local"`
	Server      struct {
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		CORS            bool          `yaml:"cors" default:"true"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Seed   SeedConfig `yaml:"seed"`
	Roller struct {
		Enabled  bool          `yaml:"enabled" default:"true"`
		Interval time.Duration `yaml:"interval" default:"24h"`
		Align    bool          `yaml:"align" default:"true"`
	} `yaml:"roller"`
	Cache struct {
		Backend       string        `yaml:"backend" default:"memory"` // none | memory | redis | layered
		TTL           time.Duration `yaml:"ttl" default:"1m"`
		MemoryMaxSize int           `yaml:"memory_max_size" default:"256"`
		Redis         struct {
			Host     string `yaml:"host" default:"localhost"`
			Port     int    `yaml:"port" default:"6379"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix" default:"yendong"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Events struct {
		Backend      string   `yaml:"backend" default:"none"` // none | kafka
		Brokers      []string `yaml:"brokers"`
		Topic        string   `yaml:"topic" default:"yendong.events"`
		Compression  string   `yaml:"compression" default:"snappy"`
		RequiredAcks int      `yaml:"required_acks" default:"1"`
		Async        bool     `yaml:"async" default:"true"`
	} `yaml:"events"`
	RateLimit struct {
		Enabled      bool    `yaml:"enabled" default:"true"`
		Capacity     float64 `yaml:"capacity" default:"10"`
		RefillPerSec float64 `yaml:"refill_per_sec" default:"1"`
	} `yaml:"ratelimit"`
}

// SeedConfig shapes the synthetic history and poll data loaded at start.
type SeedConfig struct {
	Enabled     bool    `yaml:"enabled" default:"true"`
	HistoryDays int     `yaml:"history_days" default:"30"`
	BaseRate    float64 `yaml:"base_rate" default:"172.3"`
	Amplitude   float64 `yaml:"amplitude" default:"3"`
	Jitter      float64 `yaml:"jitter" default:"0.5"`
	Period      float64 `yaml:"period" default:"5"`
	PollVotes   int     `yaml:"poll_votes" default:"1400"`
	Source      string  `yaml:"source" default:"mock-data"`
}

// Default returns a config populated only from struct defaults.
func Default() *Config {
	var c Config
	if err := defaults.Set(&c); err != nil {
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return &c
}

// Load reads and parses a YAML configuration file on top of the defaults.
// A missing file is not an error; the defaults are used as-is.
func Load(path string) (*Config, error) {
	c := Default()

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("YENDONG_ENV"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("HTTP_PORT: %w", err)
		}
		c.Server.Port = p
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		host, port, ok := strings.Cut(v, ":")
		c.Cache.Redis.Host = host
		if ok {
			p, err := strconv.Atoi(port)
			if err != nil {
				return nil, fmt.Errorf("REDIS_ADDR: %w", err)
			}
			c.Cache.Redis.Port = p
		}
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Events.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Events.Topic = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	switch c.Cache.Backend {
	case "none", "memory", "redis", "layered":
	default:
		return fmt.Errorf("cache.backend must be one of none, memory, redis, layered, got '%s'", c.Cache.Backend)
	}
	switch c.Events.Backend {
	case "none":
	case "kafka":
		if len(c.Events.Brokers) == 0 {
			return fmt.Errorf("events.brokers cannot be empty when events.backend is kafka")
		}
		if c.Events.Topic == "" {
			return fmt.Errorf("events.topic is required when events.backend is kafka")
		}
	default:
		return fmt.Errorf("events.backend must be 'none' or 'kafka', got '%s'", c.Events.Backend)
	}
	if c.Seed.HistoryDays < 0 {
		return fmt.Errorf("seed.history_days cannot be negative")
	}
	if c.Seed.BaseRate <= 0 {
		return fmt.Errorf("seed.base_rate must be greater than zero")
	}
	if c.Seed.Period == 0 {
		return fmt.Errorf("seed.period cannot be zero")
	}
	if c.Roller.Enabled && c.Roller.Interval <= 0 {
		return fmt.Errorf("roller.interval must be greater than zero")
	}
	return nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
