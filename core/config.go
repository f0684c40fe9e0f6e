package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "escola"

// Data sources the entity services can be backed by.
const (
	SourceMock   = "mock"
	SourceRemote = "remote"
)

type (
	Config struct {
		AppName      string
		Env          string // DEV (local; default), TEST, QA, PROD
		Build        string
		Debug        bool
		TestMode     bool
		RollbarToken string
		DataSource   string // SourceMock | SourceRemote

		Server  ServerConfig
		API     APIConfig
		Mock    MockConfig
		Tracing TracingConfig
	}

	ServerConfig struct {
		Host            string
		Address         string
		DebugHost       string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	// APIConfig configures the HTTP client used to reach the backend API.
	APIConfig struct {
		BaseURL         string
		Key             string
		Timeout         time.Duration
		WithCredentials bool
	}

	MockConfig struct {
		// Latency is the simulated network delay of the mock-backed services.
		Latency time.Duration
	}

	TracingConfig struct {
		// Enabled exports the spans of the HTTP server and client to stdout.
		Enabled bool
	}
)

// NewConfig loads the application configuration from defaults, the environment
// and the optional `config/.env.<env>` file.
func NewConfig() *Config {
	env := strings.ToUpper(CleanString(os.Getenv("ENV")))
	if env == "" {
		env = "DEV"
	}

	// load .env if it exists (ignore if it does not)
	if root, err := Getwd(); err == nil {
		dotEnvPath := filepath.Join(root, "config", ".env."+strings.ToLower(env))
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				panic(errors.Wrapf(err, "config.godotenv(%s)", dotEnvPath))
			}
		} else if !os.IsNotExist(err) {
			panic(errors.Wrapf(err, "config.os.Stat(%s)", dotEnvPath))
		}
	}

	v := viper.New()
	v.Set("env", env)
	if env == "TEST" {
		v.Set("testMode", true)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return LoadConfig(v)
}

// LoadConfig builds a Config from v, falling back to defaults for unset keys.
func LoadConfig(v *viper.Viper) *Config {
	setDefaults(v)

	conf := &Config{
		AppName:      v.GetString("appName"),
		Env:          v.GetString("env"),
		Build:        v.GetString("build"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		RollbarToken: v.GetString("rollbar_token"),
		DataSource:   CleanString(v.GetString("data.source"), true /* lower */),
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Address:         v.GetString("server.address"),
			DebugHost:       v.GetString("server.debug_host"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
			DisableReqLogs:  v.GetBool("server.disable_req_logs"),
		},
		API: APIConfig{
			BaseURL:         CleanString(v.GetString("api.base_url")),
			Key:             v.GetString("api.key"),
			Timeout:         v.GetDuration("api.timeout"),
			WithCredentials: v.GetBool("api.with_credentials"),
		},
		Mock: MockConfig{
			Latency: v.GetDuration("mock.latency"),
		},
		Tracing: TracingConfig{
			Enabled: v.GetBool("tracing.enabled"),
		},
	}
	return conf
}

func setDefaults(v *viper.Viper) {
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "Escola")
	v.SetDefault("env", "DEV")
	v.SetDefault("build", "develop")
	v.SetDefault("rollbar_token", "")
	v.SetDefault("data.source", SourceMock)

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.debug_host", ":4000")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.disable_req_logs", false)

	v.SetDefault("api.base_url", "")
	v.SetDefault("api.key", "")
	v.SetDefault("api.timeout", 10*time.Second)
	v.SetDefault("api.with_credentials", true)

	v.SetDefault("mock.latency", 300*time.Millisecond)

	v.SetDefault("tracing.enabled", false)
}
