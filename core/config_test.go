package core

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_defaults(t *testing.T) {
	conf := LoadConfig(viper.New())

	assert.Equal(t, "Escola", conf.AppName)
	assert.Equal(t, "DEV", conf.Env)
	assert.True(t, conf.Debug)
	assert.Equal(t, SourceMock, conf.DataSource)
	assert.Equal(t, ":8000", conf.Server.Address)
	assert.Equal(t, 5*time.Second, conf.Server.ShutdownTimeout)
	assert.Equal(t, 10000*time.Millisecond, conf.API.Timeout)
	assert.True(t, conf.API.WithCredentials)
	assert.Empty(t, conf.API.BaseURL)
	assert.Empty(t, conf.API.Key)
	assert.Equal(t, 300*time.Millisecond, conf.Mock.Latency)
	assert.False(t, conf.Tracing.Enabled)
}

func TestLoadConfig_overrides(t *testing.T) {
	v := viper.New()
	v.Set("api.base_url", " https://api.example.com ")
	v.Set("api.key", "K")
	v.Set("api.timeout", "2s")
	v.Set("data.source", "REMOTE")
	v.Set("mock.latency", "1ms")

	conf := LoadConfig(v)
	assert.Equal(t, "https://api.example.com", conf.API.BaseURL)
	assert.Equal(t, "K", conf.API.Key)
	assert.Equal(t, 2*time.Second, conf.API.Timeout)
	assert.Equal(t, SourceRemote, conf.DataSource)
	assert.Equal(t, time.Millisecond, conf.Mock.Latency)
}

func TestNewConfig_env(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("ESCOLA_API_BASE_URL", "https://api.example.com")
	t.Setenv("ESCOLA_API_KEY", "secret")
	t.Setenv("ESCOLA_MOCK_LATENCY", "50ms")
	t.Setenv("ESCOLA_TRACING_ENABLED", "true")

	conf := NewConfig()
	assert.Equal(t, "TEST", conf.Env)
	assert.True(t, conf.TestMode)
	assert.Equal(t, "https://api.example.com", conf.API.BaseURL)
	assert.Equal(t, "secret", conf.API.Key)
	assert.Equal(t, 50*time.Millisecond, conf.Mock.Latency)
	assert.True(t, conf.Tracing.Enabled)
}
