package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitLogger_Levels(t *testing.T) {
	tests := map[string]zap.AtomicLevel{
		"debug":   zap.NewAtomicLevelAt(zap.DebugLevel),
		"info":    zap.NewAtomicLevelAt(zap.InfoLevel),
		"warn":    zap.NewAtomicLevelAt(zap.WarnLevel),
		"error":   zap.NewAtomicLevelAt(zap.ErrorLevel),
		"unknown": zap.NewAtomicLevelAt(zap.InfoLevel),
	}

	for level, want := range tests {
		logger := initLogger(level)
		assert.True(t, logger.Core().Enabled(want.Level()), level)
		assert.False(t, logger.Core().Enabled(want.Level()-1), level)
	}
}
