package sensors

import (
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const DefaultVcgencmdPath = "/opt/vc/bin/vcgencmd"

// Vcgencmd asks the Raspberry Pi firmware for the SoC temperature.
// Expected output: temp=48.3'C
type Vcgencmd struct {
	binaryPath string
	invoker    Invoker
}

func NewVcgencmd(binaryPath string) *Vcgencmd {
	if binaryPath == "" {
		binaryPath = DefaultVcgencmdPath
	}
	return &Vcgencmd{binaryPath: binaryPath, invoker: Invoke{}}
}

// SetInvoker replaces the command runner.
func (v *Vcgencmd) SetInvoker(i Invoker) {
	v.invoker = i
}

func (v *Vcgencmd) Name() string {
	return "vcgencmd"
}

func (v *Vcgencmd) GetExecutedCommand() string {
	return v.binaryPath + " measure_temp"
}

func (v *Vcgencmd) ReadTemperature() (float64, error) {
	out, err := v.invoker.Command(v.binaryPath, "measure_temp")
	if err != nil {
		if isExecutableNotFound(err) {
			return 0, errors.Wrapf(ErrSourceNotAvailable, "%s not found", v.binaryPath)
		}
		return 0, errors.Wrapf(err, "while invoking '%s'", v.GetExecutedCommand())
	}

	return parseMeasureTemp(string(out))
}

// isExecutableNotFound tells a missing binary apart from one that ran and failed.
func isExecutableNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist)
}

func parseMeasureTemp(output string) (float64, error) {
	output = strings.TrimSpace(output)
	parts := strings.Split(output, "=")
	if len(parts) < 2 {
		return 0, errors.Errorf("unexpected vcgencmd output: %q", output)
	}

	value := parts[1]
	if len(value) < 2 {
		return 0, errors.Errorf("unexpected vcgencmd output: %q", output)
	}
	// drop the unit suffix: 'C
	value = value[:len(value)-2]

	temp, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "unexpected vcgencmd output: %q", output)
	}
	return temp, nil
}
