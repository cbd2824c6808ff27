package obs

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// NewLogger builds a JSON production logger, or a console development logger
// when format is "console".
func NewLogger(format string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "dev", "development":
		logger, err = zap.NewDevelopment()
	default:
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}

	return logger, nil
}
