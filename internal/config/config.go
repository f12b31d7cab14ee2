package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Port              string        `yaml:"port"`
	DBPath            string        `yaml:"db_path"`
	GeneratorURL      string        `yaml:"generator_url"`
	GeneratorTimeout  time.Duration `yaml:"generator_timeout"`
	GenerateRateLimit int           `yaml:"generate_rate_limit"` // 每个 IP 每分钟的生成请求数
	AllowedOrigins    []string      `yaml:"allowed_origins"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Port:              ":8080",
		DBPath:            "./data/voyager.db",
		GeneratorURL:      "http://127.0.0.1:5000/generate",
		GeneratorTimeout:  100 * time.Second,
		GenerateRateLimit: 10,
		AllowedOrigins:    []string{"*"},
	}
}

// Load 加载配置: 默认值 <- CONFIG_FILE (YAML) <- 环境变量
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if cfg.GeneratorTimeout <= 0 {
		return nil, fmt.Errorf("generator timeout must be positive, got %s", cfg.GeneratorTimeout)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		// PaaS 平台只给端口号
		if !strings.Contains(port, ":") {
			port = ":" + port
		}
		c.Port = port
	}

	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		c.DBPath = dbPath
	}

	if url := os.Getenv("GENERATOR_URL"); url != "" {
		c.GeneratorURL = url
	}

	if raw := os.Getenv("GENERATOR_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid GENERATOR_TIMEOUT %q: %w", raw, err)
		}
		c.GeneratorTimeout = d
	}

	if raw := os.Getenv("GENERATE_RATE_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid GENERATE_RATE_LIMIT %q: %w", raw, err)
		}
		c.GenerateRateLimit = n
	}

	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		var origins []string
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.AllowedOrigins = origins
	}

	return nil
}
