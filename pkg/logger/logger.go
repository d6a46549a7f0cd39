package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"companydir/pkg/config"
)

// New builds the service logger: JSON to stdout and, when cfg.File is set,
// a rotated copy on disk.
func New(cfg config.LogConfig, env string) (*zap.Logger, error) {
	level, err := resolveLevel(cfg.Level, env)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}
	if cfg.File != "" {
		cores = append(cores, zapcore.NewCore(encoder.Clone(), zapcore.AddSync(FileWriter(cfg.File)), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// FileWriter returns the rotating writer used for LOG_FILE.
func FileWriter(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}
}

func resolveLevel(raw, env string) (zap.AtomicLevel, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if env == config.EnvProduction {
			return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
		}
		return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
	}

	lvl, err := zapcore.ParseLevel(raw)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
	}
	return zap.NewAtomicLevelAt(lvl), nil
}
