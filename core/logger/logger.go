package logger

import (
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	var config zap.Config

	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
			config.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	// Set format based on configuration
	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	// Logs go to stderr so stdout stays reserved for the job's JSON output.
	config.OutputPaths = []string{"stderr"}

	return config.Build()
}

// WithRun returns a logger tagged with the run identifier.
func WithRun(l *zap.Logger, runID string) *zap.Logger {
	if runID == "" {
		return l
	}
	return l.With(zap.String("run_id", runID))
}

// WithEmployee returns a logger carrying the employee and patient identifiers.
// An empty patientID is omitted.
func WithEmployee(l *zap.Logger, employeeID int64, patientID string) *zap.Logger {
	fields := []zap.Field{zap.String("employee_id", strconv.FormatInt(employeeID, 10))}
	if patientID != "" {
		fields = append(fields, zap.String("id", patientID))
	}
	return l.With(fields...)
}
