package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// HTTP server config
const LISTEN_ADDRESS = ":8080"

// Venues Refresher config
const VENUES_CATALOG_REFRESHER_SCHEDULE_MINUTES = 60

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VENUES_CATALOG_RESOURCE = "venues.yaml"

// Time zone used for day boundaries and raw ranges. "Local" is the host zone.
const TIME_ZONE = "Local"

// ENV_PREFIX prefixes every environment override, e.g. HOURS_REDIS_ADDRESS.
const ENV_PREFIX = "HOURS"

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ServerConfig struct {
	ListenAddress string `mapstructure:"listen_address"`
}

type CatalogConfig struct {
	Path            string        `mapstructure:"path"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

// Config is the resolved application configuration.
type Config struct {
	Env      string        `mapstructure:"env"`
	Redis    RedisConfig   `mapstructure:"redis"`
	Server   ServerConfig  `mapstructure:"server"`
	Catalog  CatalogConfig `mapstructure:"catalog"`
	TimeZone string        `mapstructure:"timezone"`
}

// Location resolves TimeZone.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "prod")
	v.SetDefault("redis.address", REDIS_DB_ADDRESS)
	v.SetDefault("redis.password", REDIS_DB_PASSWORD)
	v.SetDefault("redis.db", REDIS_DB)
	v.SetDefault("server.listen_address", LISTEN_ADDRESS)
	v.SetDefault("catalog.path", GetResourcePath(VENUES_CATALOG_RESOURCE))
	v.SetDefault("catalog.refresh_interval", VENUES_CATALOG_REFRESHER_SCHEDULE_MINUTES*time.Minute)
	v.SetDefault("timezone", TIME_ZONE)
}

// Load reads defaults, then the optional YAML file at path, then HOURS_*
// environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}
	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
