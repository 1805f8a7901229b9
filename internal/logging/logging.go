// SPDX-License-Identifier: MIT

// Package logging builds the zap logger shared by the CLI, the editor and the
// shortest-path engine.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pathboard/internal/config"
)

// New builds a zap logger from cfg. "console" selects the development
// encoder; anything else the production JSON encoder. Unknown levels fall
// back to info.
func New(cfg config.LogConfig, opts ...zap.Option) (*zap.Logger, error) {
	var zapCfg zap.Config
	if strings.EqualFold(cfg.Format, config.FormatConsole) {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	zapCfg.Level = zap.NewAtomicLevelAt(Level(cfg.Level))
	// stdout carries command output; logs go to stderr.
	zapCfg.OutputPaths = []string{"stderr"}

	return zapCfg.Build(opts...)
}

// Level maps a config level name to a zap level.
func Level(name string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
