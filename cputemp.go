package cputemp

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/cloudradar-monitoring/cputemp/pkg/monitoring/sensors"
)

type TemperatureReader interface {
	Read() *sensors.Temperature
}

type Renderer interface {
	Render(t *sensors.Temperature) error
}

type CPUTemp struct {
	Config         *Config
	ConfigLocation string

	reader  TemperatureReader
	console Renderer

	version string
}

func New(cfg *Config, cfgPath string, version string) *CPUTemp {
	ct := &CPUTemp{
		Config:         cfg,
		ConfigLocation: cfgPath,
		version:        version,
		reader:         sensors.NewDefaultReader(cfg.ThermalZonePath, cfg.VcgencmdPath),
		console:        NewConsole(cfg.ConsoleMode),
	}

	ct.configureLogger()

	return ct
}

func (ct *CPUTemp) SetReader(r TemperatureReader) {
	ct.reader = r
}

func (ct *CPUTemp) SetRenderer(r Renderer) {
	ct.console = r
}

func (ct *CPUTemp) Version() string {
	if ct.version == "" {
		return "{undefined}"
	}
	return ct.version
}

// Run reads and renders the temperature every interval until interrupt fires.
// A nil interrupt channel never fires.
func (ct *CPUTemp) Run(interrupt chan struct{}) {
	interval := ct.Config.IntervalDuration()

	for {
		ct.RunOnce()

		select {
		case <-interrupt:
			return
		case <-time.After(interval):
			continue
		}
	}
}

// RunOnce returns the rendered reading, nil if none was available.
func (ct *CPUTemp) RunOnce() *sensors.Temperature {
	t := ct.reader.Read()
	if err := ct.console.Render(t); err != nil {
		log.WithError(err).Error("failed to write the temperature to the console")
	}
	return t
}

func (ct *CPUTemp) Shutdown() error {
	if c, ok := ct.console.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
