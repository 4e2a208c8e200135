package sensors

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const unitCelsius = "centigrade"

// ErrSourceNotAvailable is reported by a Source when the device does not expose it at all.
// The Reader treats it as an expected outcome and moves on to the next source.
var ErrSourceNotAvailable = errors.New("the temperature source is not available")

type Temperature struct {
	Source  string  `json:"source"`
	Celsius float64 `json:"temperature"`
	Unit    string  `json:"unit"`
}

// Source is a single way of obtaining the CPU temperature in degrees Celsius.
type Source interface {
	Name() string
	ReadTemperature() (float64, error)
}

var logger = logrus.WithField("package", "sensors")

// Reader tries its sources in order and returns the first reading.
type Reader struct {
	sources []Source
	logger  *logrus.Entry
}

func NewReader(sources ...Source) *Reader {
	return &Reader{
		sources: sources,
		logger:  logger,
	}
}

// NewDefaultReader reads the given thermal zone file first and falls back to vcgencmd.
func NewDefaultReader(thermalZonePath, vcgencmdPath string) *Reader {
	return NewReader(
		NewThermalZone(thermalZonePath),
		NewVcgencmd(vcgencmdPath),
	)
}

// SetLogger replaces the entry used for diagnostics.
func (r *Reader) SetLogger(l *logrus.Entry) {
	r.logger = l
}

// Read returns nil when no source could provide a temperature.
// Failures other than an unavailable source are logged and end the lookup.
func (r *Reader) Read() *Temperature {
	for _, src := range r.sources {
		value, err := src.ReadTemperature()
		if err == nil {
			return &Temperature{
				Source:  src.Name(),
				Celsius: value,
				Unit:    unitCelsius,
			}
		}

		if errors.Is(err, ErrSourceNotAvailable) {
			r.logger.WithField("source", src.Name()).Debug(err.Error())
			continue
		}

		r.logger.WithField("source", src.Name()).Errorf("Error reading temperature: %s", err.Error())
		return nil
	}

	r.logger.Debug("no temperature source available")
	return nil
}
