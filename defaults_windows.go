// +build windows

package cputemp

import (
	"os"
	"path/filepath"
)

func init() {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}

	DefaultCfgPath = filepath.Join(filepath.Dir(ex), "./cputemp.conf")
}
