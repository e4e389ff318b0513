package config

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"agentcrm/internal/bootstrap/logging"
	"agentcrm/internal/errs"
)

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Gemini GeminiConfig `mapstructure:"gemini"`
	HTTP   HTTPConfig   `mapstructure:"http"`
	Seed   SeedConfig   `mapstructure:"seed"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
}

// GeminiConfig drives the generative boundary. An empty APIKey is not an
// error: every dependent feature reports itself as disabled instead.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type SeedConfig struct {
	Demo bool `mapstructure:"demo"`
}

func Load(ctx context.Context, configFile string) (Config, error) {
	if ctx == nil {
		return Config{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return Config{}, errs.Wrap(err, "check context")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.config"))

	v := newViper(configFile)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			// Defaults plus env-backed config are enough to run.
			logging.Warn(logCtx, "config file not found, fallback to defaults and env")
		} else {
			return Config{}, errs.Wrap(err, "read config")
		}
	} else {
		logging.Info(logCtx, "using config file", slog.String("path", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errs.Wrap(err, "unmarshal config")
	}

	logging.Info(
		logCtx,
		"config loaded",
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Env),
		slog.String("gemini_model", cfg.Gemini.Model),
		slog.Bool("gemini_configured", cfg.Gemini.APIKey != ""),
		slog.String("http_addr", cfg.HTTP.Addr),
	)

	return cfg, nil
}

// Watch re-reads the config file on change and hands the fresh Config to
// onChange. Used by long-running commands; one-shot commands skip it.
func Watch(ctx context.Context, configFile string, onChange func(Config)) {
	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.config"))

	v := newViper(configFile)
	if err := v.ReadInConfig(); err != nil {
		logging.Warn(logCtx, "config watch disabled, no readable config file")
		return
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		logging.Info(logCtx, "config file changed", slog.String("event", e.String()))

		var cfg Config
		if err := v.Unmarshal(&cfg); err != nil {
			logging.Warn(logCtx, "reload skipped, config unmarshal failed", slog.Any("err", errs.Loggable(err)))
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
}

func newViper(configFile string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("AGENTCRM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "agentcrm")
	v.SetDefault("app.env", "local")
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("seed.demo", false)
}
