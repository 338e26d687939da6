// Package logger builds the process-wide zap logger.
package logger

import (
	"github.com/pageza/calorielens/backend/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON logger in production and a colored console logger
// everywhere else.
func New(env config.Environment) (*zap.Logger, error) {
	var cfg zap.Config
	if env.IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.InitialFields = map[string]interface{}{"env": string(env)}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Named("calorielens"), nil
}
