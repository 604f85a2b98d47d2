package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	conf "github.com/nestjam/astrotools/internal/config"
)

func TestNewLogger(t *testing.T) {
	logger, tearDown, err := NewLogger("error")

	require.NoError(t, err)
	assert.NotNil(t, logger)
	tearDown()

	_, _, err = NewLogger("chatty")
	assert.Error(t, err)
}

func TestNewResolver(t *testing.T) {
	config := conf.New()
	config.Workers = 3

	assert.NotNil(t, NewResolver(config, zap.NewNop()))
}
