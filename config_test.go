package cputemp

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/troian/toml"

	"github.com/cloudradar-monitoring/cputemp/pkg/monitoring/sensors"
)

func helperWriteConfig(t *testing.T, content string) string {
	t.Helper()

	tmpFile, err := ioutil.TempFile("", "cputemp")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })
	tmpFile.Close()

	err = ioutil.WriteFile(tmpFile.Name(), []byte(content), 0644)
	require.NoError(t, err)
	return tmpFile.Name()
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, 1.0, cfg.Interval)
	assert.Equal(t, "/sys/class/thermal/thermal_zone0/temp", cfg.ThermalZonePath)
	assert.Equal(t, "/opt/vc/bin/vcgencmd", cfg.VcgencmdPath)
	assert.Equal(t, ConsoleModeInPlace, cfg.ConsoleMode)
	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestTryUpdateConfigFromFile(t *testing.T) {
	cfg := NewConfig()

	const sampleConfig = `
interval = 2.5
thermal_zone_path = "/sys/class/thermal/thermal_zone1/temp"
console_mode = "lines"
log_level = "debug"
`
	err := TryUpdateConfigFromFile(cfg, helperWriteConfig(t, sampleConfig))
	assert.NoError(t, err)

	assert.Equal(t, 2.5, cfg.Interval)
	assert.Equal(t, "/sys/class/thermal/thermal_zone1/temp", cfg.ThermalZonePath)
	assert.Equal(t, sensors.DefaultVcgencmdPath, cfg.VcgencmdPath, "keys absent from the file keep their defaults")
	assert.Equal(t, ConsoleModeLines, cfg.ConsoleMode)
	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
}

func TestHandleAllConfigSetup(t *testing.T) {
	t.Run("no-config-path", func(t *testing.T) {
		cfg, err := HandleAllConfigSetup("", true)
		assert.NoError(t, err)
		assert.Equal(t, NewConfig(), cfg)
	})

	t.Run("config-file-does-exist", func(t *testing.T) {
		cfg, err := HandleAllConfigSetup(helperWriteConfig(t, `interval = 5.0`), true)
		assert.NoError(t, err)
		assert.Equal(t, 5.0, cfg.Interval)
	})

	t.Run("config-file-does-not-exist", func(t *testing.T) {
		dir, err := ioutil.TempDir("", "cputemp")
		require.NoError(t, err)
		defer os.RemoveAll(dir)
		configFilePath := filepath.Join(dir, "cputemp.conf")

		cfg, err := HandleAllConfigSetup(configFilePath, false)
		assert.NoError(t, err)
		assert.Equal(t, NewConfig(), cfg)

		_, err = os.Stat(configFilePath)
		assert.True(t, os.IsNotExist(err), "the default config must not be written to disk")

		_, err = HandleAllConfigSetup(configFilePath, true)
		assert.Error(t, err)
	})

	t.Run("broken-toml", func(t *testing.T) {
		_, err := HandleAllConfigSetup(helperWriteConfig(t, `interval = = 1`), false)
		assert.Error(t, err)
	})

	t.Run("invalid-values-specified", func(t *testing.T) {
		const sampleConfig = `
interval = 0.0
console_mode = "fancy"
log_level = "trace"
`
		_, err := HandleAllConfigSetup(helperWriteConfig(t, sampleConfig), false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "interval")
		assert.Contains(t, err.Error(), "console_mode")
		assert.Contains(t, err.Error(), "log_level")
	})

	t.Run("interval-too-large", func(t *testing.T) {
		// would overflow time.Duration and make the loop spin without delay
		_, err := HandleAllConfigSetup(helperWriteConfig(t, `interval = 1e20`), false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "interval")

		cfg := NewConfig()
		cfg.Interval = maxIntervalValue
		assert.NoError(t, cfg.Validate())
		assert.Equal(t, 24*time.Hour, cfg.IntervalDuration())
	})
}

func TestDumpToml(t *testing.T) {
	cfg := NewConfig()
	cfg.Interval = 3
	cfg.PidFile = "/run/cputemp.pid"

	loaded := &Config{}
	_, err := toml.Decode(cfg.DumpToml(), loaded)
	assert.NoError(t, err)

	if !assert.ObjectsAreEqual(*cfg, *loaded) {
		t.Errorf("expected %+v, got %+v", *cfg, *loaded)
	}
}

func TestLogLevel(t *testing.T) {
	assert.True(t, LogLevelDebug.IsValid())
	assert.True(t, LogLevelInfo.IsValid())
	assert.True(t, LogLevelError.IsValid())
	assert.False(t, LogLevel("").IsValid())
	assert.False(t, LogLevel("warn").IsValid())
}
