package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// Rotation limits for the optional log file.
const (
	logFileMaxSizeMB  = 50
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

// NewLogger builds a logger for cfg.
//
// The level comes from LogLevel, or defaults to debug in development and info
// in production. Production logs are JSON; development logs are colored text.
// A non-empty LogFile adds a rotating JSON file sink at the same level.
func NewLogger(cfg Config) (*logrus.Logger, error) {
	log := logrus.New()

	level := logrus.DebugLevel
	if cfg.Production() {
		level = logrus.InfoLevel
	}
	if cfg.LogLevel != "" {
		var err error
		if level, err = logrus.ParseLevel(cfg.LogLevel); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	log.SetLevel(level)

	if cfg.Production() {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true, FullTimestamp: true})
	}

	if cfg.LogFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.LogFile,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAgeDays,
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, fmt.Errorf("config: log file %s: %w", cfg.LogFile, err)
		}
		log.AddHook(hook)
	}

	return log, nil
}
