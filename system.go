package cputemp

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/host"
	log "github.com/sirupsen/logrus"
)

var hostInfoTimeout = 10 * time.Second

// LogHostInfo helps to tell why a source is missing, e.g. vcgencmd on non Raspberry Pi hosts.
func (ct *CPUTemp) LogHostInfo() {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), hostInfoTimeout)
	defer cancel()

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		log.WithError(err).Debug("[SYSTEM] Failed to read host info")
		return
	}

	log.WithFields(log.Fields{
		"os":              info.OS,
		"platform":        info.Platform,
		"platform_family": info.PlatformFamily,
		"platform_ver":    info.PlatformVersion,
		"kernel":          info.KernelVersion,
		"virtualization":  info.VirtualizationSystem,
		"version":         ct.Version(),
	}).Debug("cputemp started")
}
