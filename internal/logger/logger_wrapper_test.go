package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/leandrodaf/scales/sdk/contracts"
)

func TestZapLevelOrdering(t *testing.T) {
	// contract levels map onto zap's severity scale in increasing order
	assert.True(t, zapLevel(contracts.DebugLevel) < zapLevel(contracts.InfoLevel))
	assert.True(t, zapLevel(contracts.InfoLevel) < zapLevel(contracts.WarnLevel))
	assert.True(t, zapLevel(contracts.WarnLevel) < zapLevel(contracts.ErrorLevel))
	assert.True(t, zapLevel(contracts.ErrorLevel) < zapLevel(contracts.FatalLevel))
}

func TestWarnLevelKeepsWarningsAndErrors(t *testing.T) {
	// a logger set to WarnLevel must not suppress warnings, errors, or fatals
	threshold := zapLevel(contracts.WarnLevel)
	assert.False(t, threshold > zapcore.WarnLevel)
	assert.False(t, threshold > zapcore.ErrorLevel)
	assert.False(t, threshold > zapcore.FatalLevel)

	// but it does suppress debug and info
	assert.True(t, threshold > zapcore.DebugLevel)
	assert.True(t, threshold > zapcore.InfoLevel)
}
