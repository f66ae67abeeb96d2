// Copyright 2021 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	LogContainer     logContainer
	loggerInit       sync.Once
	simpleLoggerInit sync.Once
)

// Config selects the console level and an optional JSON log file.
type Config struct {
	Level string
	File  string
}

type logContainer struct {
	mu           sync.Mutex
	cfg          Config
	level        zap.AtomicLevel
	logger       *zap.Logger
	simpleLogger *zap.SugaredLogger
}

// Configure sets up the container. It must run before the first call to
// GetLogger or GetSimpleLogger to take full effect; afterwards only the
// level can still change.
func (l *logContainer) Configure(cfg Config) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	lvl, err := zapcore.ParseLevel(levelOrDefault(cfg.Level))
	if err != nil {
		return fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	l.cfg = cfg
	l.atomicLevel().SetLevel(lvl)
	return nil
}

// GetLogger returns the pointer to the logger and creates one if none exists
func (l *logContainer) GetLogger() *zap.Logger {
	loggerInit.Do(func() {
		l.logger = zap.New(l.getCombinedCore())
	})
	return l.logger
}

// GetSimpleLogger returns the pointer to the sugared logger and creates one
// if none exists
func (l *logContainer) GetSimpleLogger() *zap.SugaredLogger {
	simpleLoggerInit.Do(func() {
		l.simpleLogger = l.GetLogger().Sugar()
	})
	return l.simpleLogger
}

// String mirrors zap.String
func (l *logContainer) String(key string, val string) zap.Field {
	return zap.String(key, val)
}

// Int mirrors zap.Int
func (l *logContainer) Int(key string, val int) zap.Field {
	return zap.Int(key, val)
}

func levelOrDefault(s string) string {
	if s == "" {
		return "info"
	}
	return s
}

func (l *logContainer) atomicLevel() zap.AtomicLevel {
	if l.level == (zap.AtomicLevel{}) {
		l.level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	return l.level
}

func getConsoleEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func getJsonEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.EpochTimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}

func (l *logContainer) getCombinedCore() zapcore.Core {
	l.mu.Lock()
	defer l.mu.Unlock()
	level := l.atomicLevel()
	// stdout belongs to command output, logs go to stderr
	console := zapcore.NewCore(getConsoleEncoder(), zapcore.Lock(os.Stderr), level)
	if l.cfg.File == "" {
		return console
	}
	f, err := os.OpenFile(l.cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to open logfile %s: %v\n", l.cfg.File, err)
		return console
	}
	return zapcore.NewTee(console, zapcore.NewCore(getJsonEncoder(), zapcore.AddSync(f), level))
}
