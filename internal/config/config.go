package config

import (
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Port           int    `yaml:"port"`
	ThreadsPerPage int    `yaml:"threads_per_page"`
	LogLevel       string `yaml:"log_level"`
	LogJSON        bool   `yaml:"log_json"`
}

type Private struct {
	Pg Pg `yaml:"pg"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
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

func (p *Public) validate() error {
	if p.Port <= 0 {
		return fmt.Errorf("port must be positive")
	}
	if p.ThreadsPerPage <= 0 {
		return fmt.Errorf("threads_per_page must be positive")
	}
	return nil
}

func (p *Private) validate() error {
	if p.Pg.Host == "" || p.Pg.Port <= 0 || p.Pg.User == "" || p.Pg.Dbname == "" {
		return fmt.Errorf("pg connection settings are incomplete")
	}
	return nil
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)
	if err := public.validate(); err != nil {
		panic("invalid public config: " + err.Error())
	}

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)
	if err := private.validate(); err != nil {
		panic("invalid private config: " + err.Error())
	}

	return &Config{public, private}
}
