package sensors

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const DefaultThermalZonePath = "/sys/class/thermal/thermal_zone0/temp"

// ThermalZone reads a sysfs thermal zone:
// https://www.kernel.org/doc/Documentation/thermal/sysfs-api.txt
// The file holds a single integer in millidegrees Celsius.
type ThermalZone struct {
	path string
}

func NewThermalZone(path string) *ThermalZone {
	if path == "" {
		path = DefaultThermalZonePath
	}
	return &ThermalZone{path: path}
}

func (z *ThermalZone) Name() string {
	return "thermal_zone:" + z.path
}

func (z *ThermalZone) ReadTemperature() (float64, error) {
	f, err := os.Open(z.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, errors.Wrapf(ErrSourceNotAvailable, "%s does not exist", z.path)
		}
		return 0, errors.Wrap(err, "failed to open thermal zone")
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && line == "" {
		return 0, errors.Wrapf(err, "failed to read %s", z.path)
	}

	return parseMillidegrees(line)
}

func parseMillidegrees(raw string) (float64, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "unexpected thermal zone content")
	}
	return float64(value) / 1000.0, nil
}
