package cputemp

import (
	"path/filepath"

	"github.com/nightlyone/lockfile"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrAlreadyRunning = errors.New("another cputemp instance is already running")

// LockPidFile writes our pid to Config.PidFile and keeps it locked.
// The returned func releases it. Nothing happens when no pid file is configured.
func (ct *CPUTemp) LockPidFile() (func(), error) {
	if ct.Config.PidFile == "" {
		return func() {}, nil
	}

	path, err := filepath.Abs(ct.Config.PidFile)
	if err != nil {
		return nil, errors.Wrapf(err, "pid file %s", ct.Config.PidFile)
	}

	lock, err := lockfile.New(path)
	if err != nil {
		return nil, errors.Wrapf(err, "pid file %s", path)
	}

	if err = lock.TryLock(); err != nil {
		if err == lockfile.ErrBusy {
			return nil, errors.Wrapf(ErrAlreadyRunning, "pid file %s", path)
		}
		return nil, errors.Wrapf(err, "failed to lock pid file %s", path)
	}

	return func() {
		if err := lock.Unlock(); err != nil {
			log.WithError(err).Errorf("Failed to remove pid file at: %s", path)
		}
	}, nil
}
