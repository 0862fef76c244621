package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Port                   int           `yaml:"port"`
	JwtTTL                 time.Duration `yaml:"jwt_ttl"`
	BcryptCost             int           `yaml:"bcrypt_cost"`
	BlacklistSweepInterval time.Duration `yaml:"blacklist_sweep_interval"`
	SecureCookies          bool          `yaml:"secure_cookies"`
	LogLevel               string        `yaml:"log_level"`
	LogJSON                bool          `yaml:"log_json"`
	AllowedOrigins         []string      `yaml:"allowed_origins"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
	Pg     Pg     `yaml:"pg"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	if err := cfg.validate(); err != nil {
		panic(err.Error())
	}
	return cfg
}

func (c *Config) validate() error {
	if c.Public.JwtTTL <= 0 {
		return fmt.Errorf("config: jwt_ttl must be positive")
	}
	if c.Private.JwtKey == "" {
		return fmt.Errorf("config: jwt_key is required")
	}
	if c.Public.Port == 0 {
		return fmt.Errorf("config: port is required")
	}
	return nil
}
