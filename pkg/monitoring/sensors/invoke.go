package sensors

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

type Invoker interface {
	Command(string, ...string) ([]byte, error)
}

// Invoke runs the command and waits for it without a timeout.
// Stdout is returned; stderr is attached to the error when the command fails.
type Invoke struct{}

func (i Invoke) Command(name string, arg ...string) ([]byte, error) {
	cmd := exec.Command(name, arg...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return stdout.Bytes(), err
	}

	if err := cmd.Wait(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return stdout.Bytes(), errors.Wrap(err, msg)
		}
		return stdout.Bytes(), err
	}

	return stdout.Bytes(), nil
}
