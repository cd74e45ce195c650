// Package logger builds the application-wide zap logger.
package logger

import "go.uber.org/zap"

// New returns a console logger in development mode and a JSON production
// logger otherwise.
func New(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
