package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/symptomcheck/internal/config"
)

// New builds a production zap logger at the configured level. Output goes
// to LogFile when set, otherwise to stderr.
func New(cfg config.Config) (*zap.Logger, error) {
	zcfg, err := productionConfig(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.LogFile != "" {
		zcfg.OutputPaths = []string{cfg.LogFile}
	}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// NewInteractive builds a logger for the interactive form. The form owns
// the terminal, so logs are discarded unless LogFile is set.
func NewInteractive(cfg config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}
	return New(cfg)
}

func productionConfig(cfg config.Config) (zap.Config, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return zap.Config{}, fmt.Errorf("parse log level: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg, nil
}
