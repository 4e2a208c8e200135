// +build windows nacl plan9

package cputemp

import "github.com/pkg/errors"

func addSyslogHook(syslogURL string) error {
	return errors.New("Syslog not available for windows")
}
