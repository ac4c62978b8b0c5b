package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Source is one feed or page for the live SIGINT collectors.
type Source struct {
	URL  string `yaml:"url"`
	Name string `yaml:"name"`
}

type Config struct {
	App struct {
		Env string `yaml:"env"`
	} `yaml:"app"`

	Server struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"readTimeout"`
		WriteTimeout    time.Duration `yaml:"writeTimeout"`
		IdleTimeout     time.Duration `yaml:"idleTimeout"`
		ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	} `yaml:"server"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Intel struct {
		APIKey         string        `yaml:"apiKey"`
		BaseURL        string        `yaml:"baseURL"`
		ReasoningModel string        `yaml:"reasoningModel"`
		SearchModel    string        `yaml:"searchModel"`
		Timeout        time.Duration `yaml:"timeout"`
		// DemoLatency adds the artificial delays to template responses.
		DemoLatency    bool          `yaml:"demoLatency"`
	} `yaml:"intel"`

	Database struct {
		Driver   string `yaml:"driver"` // mysql | postgres | sqlite | "" (demo mode)
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslMode"`
		Path     string `yaml:"path"`
	} `yaml:"database"`

	Minio struct {
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
		Prefix     string `yaml:"prefix"`
	} `yaml:"minio"`

	Security struct {
		APIKeys     string   `yaml:"apiKeys"`
		CORSOrigins []string `yaml:"corsOrigins"`
		RateLimit   struct {
			Capacity        int `yaml:"capacity"`
			RefillPerSecond int `yaml:"refillPerSecond"`
		} `yaml:"rateLimit"`
	} `yaml:"security"`

	Sigint struct {
		Timeout time.Duration `yaml:"timeout"`
		RSS     struct {
			Feeds []Source `yaml:"feeds"`
		} `yaml:"rss"`

		HTML struct {
			Pages []Source `yaml:"pages"`
		} `yaml:"html"`
	} `yaml:"sigint"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var c Config
	c.App.Env = "development"
	c.Server.Port = 5000
	c.Server.ReadTimeout = 15 * time.Second
	c.Server.WriteTimeout = 60 * time.Second
	c.Server.IdleTimeout = 60 * time.Second
	c.Server.ShutdownTimeout = 10 * time.Second
	c.Log.Level = "info"
	c.Intel.BaseURL = "https://openrouter.ai/api/v1"
	c.Intel.ReasoningModel = "perplexity/sonar-reasoning"
	c.Intel.SearchModel = "perplexity/sonar-large-online"
	c.Intel.Timeout = 60 * time.Second
	c.Database.SSLMode = "disable"
	c.Minio.Prefix = "simulations"
	c.Security.CORSOrigins = []string{"*"}
	c.Security.RateLimit.Capacity = 60
	c.Security.RateLimit.RefillPerSecond = 1
	c.Sigint.Timeout = 15 * time.Second
	return &c
}

// Load baca .env, file config.yaml, lalu override dari environment.
// A missing .env or config file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	num := func(key string, dst *int) error {
		v, ok := os.LookupEnv(key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
		return nil
	}

	str("APP_ENV", &c.App.Env)
	str("LOG_LEVEL", &c.Log.Level)
	str("OPENROUTER_API_KEY", &c.Intel.APIKey)
	str("OPENROUTER_BASE_URL", &c.Intel.BaseURL)
	str("DB_DRIVER", &c.Database.Driver)
	str("DB_HOST", &c.Database.Host)
	str("DB_USER", &c.Database.User)
	str("DB_PASSWORD", &c.Database.Password)
	str("DB_NAME", &c.Database.Name)
	str("DB_SSLMODE", &c.Database.SSLMode)
	str("DB_PATH", &c.Database.Path)
	str("MINIO_ENDPOINT", &c.Minio.Endpoint)
	str("MINIO_ACCESS_KEY", &c.Minio.AccessKey)
	str("MINIO_SECRET_KEY", &c.Minio.SecretKey)
	str("MINIO_BUCKET", &c.Minio.BucketName)
	str("MINIO_REGION", &c.Minio.Region)
	str("API_KEYS", &c.Security.APIKeys)

	if v, ok := os.LookupEnv("MINIO_USE_SSL"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("MINIO_USE_SSL: %w", err)
		}
		c.Minio.UseSSL = b
	}
	if v, ok := os.LookupEnv("CORS_ORIGINS"); ok && strings.TrimSpace(v) != "" {
		c.Security.CORSOrigins = splitList(v)
	}
	if err := num("PORT", &c.Server.Port); err != nil {
		return err
	}
	return num("DB_PORT", &c.Database.Port)
}

// Validate checks values that would otherwise fail late at startup.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.Database.Driver {
	case "", "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q (mysql, postgres, sqlite)", c.Database.Driver)
	}
	if c.Security.RateLimit.Capacity < 0 || c.Security.RateLimit.RefillPerSecond < 0 {
		return errors.New("rate limit values must not be negative")
	}
	return nil
}

// MissingStoreVars lists the settings the document store still needs.
// Any missing value puts persistence into demo mode.
func (c *Config) MissingStoreVars() []string {
	var missing []string
	need := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	switch c.Database.Driver {
	case "":
		need("DB_DRIVER", "")
	case "sqlite":
		need("DB_PATH", c.Database.Path)
	default:
		need("DB_HOST", c.Database.Host)
		need("DB_USER", c.Database.User)
		need("DB_NAME", c.Database.Name)
		if c.Database.Port == 0 {
			missing = append(missing, "DB_PORT")
		}
	}
	return missing
}

// StoreEnabled is true when a document store can be opened.
func (c *Config) StoreEnabled() bool { return len(c.MissingStoreVars()) == 0 }

// LiveIntelEnabled validates the OpenRouter key.
func (c *Config) LiveIntelEnabled() bool { return strings.TrimSpace(c.Intel.APIKey) != "" }

// ArchiveEnabled is true when every MinIO setting is present.
func (c *Config) ArchiveEnabled() bool {
	m := c.Minio
	return m.Endpoint != "" && m.BucketName != "" && m.AccessKey != "" && m.SecretKey != ""
}

// IsProduction reports APP_ENV=production.
func (c *Config) IsProduction() bool { return strings.EqualFold(c.App.Env, "production") }

// Mode is "live" when both persistence and the live client are configured.
func (c *Config) Mode() string {
	if c.StoreEnabled() && c.LiveIntelEnabled() {
		return "live"
	}
	return "demo"
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
