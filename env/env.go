//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements the global environment for the SHA-1
// tooling.
package env

import (
	"crypto/rand"
	"io"

	log "github.com/sirupsen/logrus"
)

// Config defines the global configuration for the tools built on the
// hash engine. Config must not be modified after being passed to any
// module. It is safe for concurrent use by multiple modules as they
// do not modify it.
type Config struct {
	Rand   io.Reader
	Logger *log.Logger
}

// GetRandom returns the source of entropy for random messages and
// seeds.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetLogger returns the logger. Without a configured logger, a
// logger writing to standard error at the info level is returned.
func (config *Config) GetLogger() *log.Logger {
	if config.Logger != nil {
		return config.Logger
	}
	return defaultLogger
}

var defaultLogger = log.New()

// NewLogger creates a logger writing to out at the named level.
func NewLogger(out io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	return logger, nil
}
