package shared

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// NewLogger builds a JSON production logger at the given level ("debug",
// "info", "warn", "error"). An empty level means info.
func NewLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if trimmed := strings.TrimSpace(level); trimmed != "" {
		parsed, err := zap.ParseAtomicLevel(strings.ToLower(trimmed))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		config.Level = parsed
	}
	return config.Build()
}

// LoggerOrNop returns logger, or a no-op logger when it is nil.
func LoggerOrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
