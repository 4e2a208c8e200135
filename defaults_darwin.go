// +build darwin

package cputemp

import (
	"os"
)

func init() {
	DefaultCfgPath = os.Getenv("HOME") + "/.cputemp/cputemp.conf"
}
