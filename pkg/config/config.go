package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// Config is the single application configuration, loaded once and injected
// everywhere. Nothing reads viper after startup.
type Config struct {
	AppEnv     string `mapstructure:"APP_ENV"`
	AppName    string `mapstructure:"APP_NAME"`
	AppVersion string `mapstructure:"APP_VERSION"`
	RootDomain string `mapstructure:"ROOT_DOMAIN"`
	Server     struct {
		Addr         string        `mapstructure:"ADDR"`
		ReadTimeout  time.Duration `mapstructure:"READ_TIMEOUT"`
		WriteTimeout time.Duration `mapstructure:"WRITE_TIMEOUT"`
	} `mapstructure:"HTTP_SERVER"`
	Store struct {
		// Backend selects the key-value backing: sqlite, redis or memory.
		Backend string `mapstructure:"BACKEND"`
		Path    string `mapstructure:"PATH"`
	} `mapstructure:"STORE"`
	Redis struct {
		Addr     string `mapstructure:"ADDR"`
		Password string `mapstructure:"PASSWORD"`
		DB       int    `mapstructure:"DB"`
	} `mapstructure:"REDIS"`
	Simulation struct {
		// Latency is the cooperative delay applied to every simulated call.
		Latency time.Duration `mapstructure:"LATENCY"`
	} `mapstructure:"SIMULATION"`
	Analytics struct {
		// Tenant is the one tenant id allowed detailed usage analytics.
		Tenant string `mapstructure:"TENANT"`
		// Seed makes the synthetic usage series reproducible when non-zero.
		Seed int64 `mapstructure:"SEED"`
	} `mapstructure:"ANALYTICS"`
	Otel struct {
		Addr string `mapstructure:"ADDR"`
	} `mapstructure:"OTEL"`
}

var Module = fx.Module("config", fx.Provide(Load))

// Load reads config.yaml when present and overlays environment variables.
// A missing config file is fine: every key has a default suited to local use.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "console")
	v.SetDefault("APP_VERSION", "0.1.0")
	v.SetDefault("ROOT_DOMAIN", "ediworks.com")
	v.SetDefault("HTTP_SERVER.ADDR", ":8080")
	v.SetDefault("HTTP_SERVER.READ_TIMEOUT", 15*time.Second)
	v.SetDefault("HTTP_SERVER.WRITE_TIMEOUT", 15*time.Second)
	v.SetDefault("STORE.BACKEND", "sqlite")
	v.SetDefault("STORE.PATH", "console.db")
	v.SetDefault("REDIS.ADDR", "127.0.0.1:6379")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("SIMULATION.LATENCY", 300*time.Millisecond)
	v.SetDefault("ANALYTICS.TENANT", "acme")
	v.SetDefault("ANALYTICS.SEED", 0)
}
