package cputemp

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/troian/toml"

	"github.com/cloudradar-monitoring/cputemp/pkg/common"
	"github.com/cloudradar-monitoring/cputemp/pkg/monitoring/sensors"
)

const (
	ConsoleModeAuto    = "auto"
	ConsoleModeInPlace = "inplace"
	ConsoleModeLines   = "lines"

	minIntervalValue = 0.001
	// one day, far below the point where the conversion to time.Duration overflows
	maxIntervalValue = 86400.0
)

var DefaultCfgPath string

type Config struct {
	Interval float64 `toml:"interval"`

	ThermalZonePath string `toml:"thermal_zone_path"`
	VcgencmdPath    string `toml:"vcgencmd_path"`

	ConsoleMode string `toml:"console_mode"`

	PidFile   string   `toml:"pid"`
	LogFile   string   `toml:"log"`
	LogLevel  LogLevel `toml:"log_level"`
	LogSyslog string   `toml:"log_syslog"`
}

func NewConfig() *Config {
	return &Config{
		Interval:        1,
		ThermalZonePath: sensors.DefaultThermalZonePath,
		VcgencmdPath:    sensors.DefaultVcgencmdPath,
		ConsoleMode:     ConsoleModeInPlace,
		LogLevel:        LogLevelInfo,
	}
}

// HandleAllConfigSetup builds the active config: defaults, then the file at configFilePath if any.
// A missing file is only an error when mustExist is set.
func HandleAllConfigSetup(configFilePath string, mustExist bool) (*Config, error) {
	cfg := NewConfig()

	if configFilePath != "" {
		_, err := os.Stat(configFilePath)
		switch {
		case err == nil:
			if err = TryUpdateConfigFromFile(cfg, configFilePath); err != nil {
				return nil, err
			}
		case os.IsNotExist(err) && !mustExist:
		default:
			return nil, errors.Wrapf(err, "config file %s", configFilePath)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func TryUpdateConfigFromFile(cfg *Config, configFilePath string) error {
	_, err := toml.DecodeFile(configFilePath, cfg)
	if err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", configFilePath)
	}
	return nil
}

// Validate reports every invalid setting at once.
func (cfg *Config) Validate() error {
	errs := common.ErrorCollector{}

	if cfg.Interval < minIntervalValue || cfg.Interval > maxIntervalValue {
		errs.Addf("interval value must be between %v and %v, got %v", minIntervalValue, maxIntervalValue, cfg.Interval)
	}

	if cfg.ThermalZonePath == "" {
		errs.Add("thermal_zone_path must not be empty")
	}

	if cfg.VcgencmdPath == "" {
		errs.Add("vcgencmd_path must not be empty")
	}

	switch cfg.ConsoleMode {
	case ConsoleModeAuto, ConsoleModeInPlace, ConsoleModeLines:
	default:
		errs.Addf("invalid console_mode: %q", cfg.ConsoleMode)
	}

	if !cfg.LogLevel.IsValid() {
		errs.Addf("invalid log_level: %q", cfg.LogLevel)
	}

	if err := errs.Combine(); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

func (cfg *Config) IntervalDuration() time.Duration {
	return secToDuration(cfg.Interval)
}

func (cfg *Config) DumpToml() string {
	buff := &bytes.Buffer{}
	enc := toml.NewEncoder(buff)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Sprintf("# failed to encode config: %s", err.Error())
	}
	return buff.String()
}

func secToDuration(seconds float64) time.Duration {
	return time.Duration(int64(float64(time.Second) * seconds))
}
