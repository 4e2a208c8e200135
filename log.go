package cputemp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelError LogLevel = "error"
)

func (lvl LogLevel) IsValid() bool {
	switch lvl {
	case LogLevelDebug:
		fallthrough
	case LogLevelInfo:
		fallthrough
	case LogLevelError:
		return true
	default:
		return false
	}
}

func (lvl LogLevel) LogrusLevel() logrus.Level {
	switch lvl {
	case LogLevelDebug:
		return logrus.DebugLevel
	case LogLevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// fileHook appends plain text entries to the file set by the "log" key.
type fileHook struct {
	file      *os.File
	formatter logrus.Formatter
}

func addLogFileHook(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		logrus.WithError(err).Errorf("Failed to create the logs dir: '%s'", dir)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return errors.Wrap(err, "unable to write log file")
	}

	logrus.AddHook(&fileHook{
		file:      f,
		formatter: &logrus.TextFormatter{FullTimestamp: true, DisableColors: true},
	})
	return nil
}

func (hook *fileHook) Fire(entry *logrus.Entry) error {
	line, err := hook.formatter.Format(entry)
	if err != nil {
		return err
	}

	if _, err = hook.file.Write(line); err != nil {
		fmt.Fprintf(os.Stderr, "unable to write log file %s: %v\n", hook.file.Name(), err)
		return err
	}
	return nil
}

func (hook *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// SetLogLevel sets the level in the config and in logrus
func (ct *CPUTemp) SetLogLevel(lvl LogLevel) {
	ct.Config.LogLevel = lvl
	logrus.SetLevel(lvl.LogrusLevel())
}

// configureLogger sends logs to stderr so they don't clash with the temperature line on stdout.
func (ct *CPUTemp) configureLogger() {
	tfmt := logrus.TextFormatter{FullTimestamp: true, DisableColors: true}

	logrus.SetFormatter(&tfmt)
	logrus.SetOutput(os.Stderr)

	ct.SetLogLevel(ct.Config.LogLevel)

	if ct.Config.LogFile != "" {
		logrus.Debug("Adding log file hook ", ct.Config.LogFile)
		err := addLogFileHook(ct.Config.LogFile)
		if err != nil {
			logrus.Error("Can't write logs to file: ", err.Error())
		}
	}

	if ct.Config.LogSyslog != "" {
		logrus.Debug("Adding syslog hook ", ct.Config.LogSyslog)
		err := addSyslogHook(ct.Config.LogSyslog)
		if err != nil {
			logrus.Error("Can't set up syslog: ", err.Error())
		}
	}
}
