package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	// Zone names are validated without relying on the host zoneinfo.
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after the file.
const (
	EnvPort     = "RAILQUERY_PORT"
	EnvTimeZone = "RAILQUERY_TIMEZONE"
	EnvAPIBase  = "RAILQUERY_API_BASE"
)

// DefaultPaths are searched in order when no path is given.
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// Config is the global application configuration
var Config = Default()

// LoadedFrom is the file the current Config was read from, empty when only
// defaults and environment were used.
var LoadedFrom string

// Default returns the configuration used when no file is present.
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{Port: 16181},
		Upstream: UpstreamConfig{
			APIBase:        "https://kyfw.12306.cn",
			SearchAPIBase:  "https://search.12306.cn",
			WebURL:         "https://www.12306.cn/index/",
			LCQueryInitURL: "https://kyfw.12306.cn/otn/lcQuery/init",
			TimeoutMS:      10000,
		},
		Query: QueryConfig{
			TimeZone:              "Asia/Shanghai",
			InterlineMaxPages:     10,
			DefaultInterlineLimit: 10,
		},
	}
}

// LoadAppConfig loads and validates the application configuration. The first
// readable path wins; when none exists the defaults are used. Unset fields of
// a loaded file keep their default values.
func LoadAppConfig(paths ...string) error {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	cfg := Default()
	source := ""
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		source = p
		break
	}
	if err := applyEnv(&cfg); err != nil {
		return err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	Config = cfg
	LoadedFrom = source
	return nil
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv(EnvTimeZone); v != "" {
		cfg.Query.TimeZone = v
	}
	if v := os.Getenv(EnvAPIBase); v != "" {
		cfg.Upstream.APIBase = v
	}
	return nil
}
