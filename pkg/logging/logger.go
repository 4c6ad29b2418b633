// Package logging builds the application logger and scrubs credentials
// from anything that ends up in a log line.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds the application logger. The local environment gets the
// human-readable development encoder; everything else logs JSON.
func New(env string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "local" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
