// 包 config：服务配置。默认值即固定部署形态（0.0.0.0:8080、data/ 下两份目录文件），
// 可被可选的 YAML 文件与环境变量覆盖。
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr       string `yaml:"addr"`
	ParksPath  string `yaml:"parks_path"`
	StatesPath string `yaml:"states_path"`

	APIDocs bool `yaml:"api_docs"`
	Metrics bool `yaml:"metrics"`

	TLS TLSConfig `yaml:"tls"`

	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
}

type TLSConfig struct {
	Enable   bool   `yaml:"enable"`
	CertPath string `yaml:"cert_path"`
	KeyPath  string `yaml:"key_path"`
}

func DefaultConfig() *Config {
	return &Config{
		Addr:       "0.0.0.0:8080",
		ParksPath:  filepath.Join("data", "parks.json"),
		StatesPath: filepath.Join("data", "states.json"),
		APIDocs:    true,
		Metrics:    true,
		TLS: TLSConfig{
			CertPath: filepath.Join("data", "certs", "server.crt"),
			KeyPath:  filepath.Join("data", "certs", "server.key"),
		},
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Load：.env → 默认值 → CONFIG_FILE(YAML) → 环境变量，最后校验
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	cfg := DefaultConfig()
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		if err := cfg.LoadFile(p); err != nil {
			return nil, err
		}
	}
	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile：以 YAML 覆盖当前配置；文件中未出现的键保持原值
func (c *Config) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// LoadEnv：环境变量覆盖；布尔/时长取值非法时报错而不是静默忽略
func (c *Config) LoadEnv() error {
	if v := os.Getenv("ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("PARKS_PATH"); v != "" {
		c.ParksPath = v
	}
	if v := os.Getenv("STATES_PATH"); v != "" {
		c.StatesPath = v
	}
	if v := os.Getenv("TLS_CERT_PATH"); v != "" {
		c.TLS.CertPath = v
	}
	if v := os.Getenv("TLS_KEY_PATH"); v != "" {
		c.TLS.KeyPath = v
	}
	bools := []struct {
		key string
		dst *bool
	}{
		{"API_DOCS_ENABLED", &c.APIDocs},
		{"METRICS_ENABLED", &c.Metrics},
		{"TLS_ENABLE", &c.TLS.Enable},
	}
	for _, b := range bools {
		v := os.Getenv(b.key)
		if v == "" {
			continue
		}
		x, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", b.key, v, err)
		}
		*b.dst = x
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SHUTDOWN_TIMEOUT=%q: %w", v, err)
		}
		c.ShutdownTimeout = d
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.ParksPath == "" || c.StatesPath == "" {
		return fmt.Errorf("parks_path and states_path are required")
	}
	if c.TLS.Enable && (c.TLS.CertPath == "" || c.TLS.KeyPath == "") {
		return fmt.Errorf("tls.cert_path and tls.key_path are required when tls is enabled")
	}
	if c.ShutdownTimeout < 0 || c.ReadHeaderTimeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	return nil
}
