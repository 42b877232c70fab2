package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

type Logging struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return v, nil
}

func NewLogging() (*Logging, error) {
	var err error
	logging := &Logging{}
	logging.File, _ = os.LookupEnv("LOG_FILE")
	if logging.MaxSizeMB, err = lookupInt("LOG_MAX_SIZE_MB", 50); err != nil {
		return nil, err
	}
	if logging.MaxBackups, err = lookupInt("LOG_MAX_BACKUPS", 3); err != nil {
		return nil, err
	}
	if logging.MaxAgeDays, err = lookupInt("LOG_MAX_AGE_DAYS", 28); err != nil {
		return nil, err
	}
	return logging, nil
}

// Apply configures log for the given mode and attaches the rotating file
// hook when a log file is set.
func (c Logging) Apply(log *logrus.Logger, development bool) error {
	level := logrus.InfoLevel
	var formatter logrus.Formatter = &logrus.JSONFormatter{}
	if development {
		level = logrus.DebugLevel
		formatter = &logrus.TextFormatter{ForceColors: true}
	}
	log.SetLevel(level)
	log.SetFormatter(formatter)

	if c.File == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAgeDays,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", c.File, err)
	}
	log.AddHook(hook)
	return nil
}
