package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version    string           `yaml:"version" json:"version"`
	Server     ServerConfig     `yaml:"server" json:"server"`
	Motivation MotivationConfig `yaml:"motivation" json:"motivation"`
	Balance    Balance          `yaml:"balance" json:"balance"`
}

type ServerConfig struct {
	Addr    string `yaml:"addr" json:"addr"`
	DataDir string `yaml:"data_dir" json:"data_dir"`
}

type MotivationConfig struct {
	Model          string `yaml:"model" json:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
}

func (c *Config) ApplyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8486"
	}
	if c.Server.DataDir == "" {
		c.Server.DataDir = "data"
	}
	if c.Motivation.Model == "" {
		c.Motivation.Model = "gemini-2.5-flash"
	}
	if c.Motivation.TimeoutSeconds <= 0 {
		c.Motivation.TimeoutSeconds = 10
	}
	c.Balance.ApplyDefaults()
}

// Load reads a yaml config file. A missing file yields the defaults so a
// fresh checkout runs without any setup.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			c := &Config{}
			c.ApplyDefaults()
			return c, nil
		}
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	return &c, nil
}
