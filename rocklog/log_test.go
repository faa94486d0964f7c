package rocklog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowdiscovery/voxelskeleton/rocklog"
)

func TestNew_DebugLevel_Succeeds(t *testing.T) {
	logger, err := rocklog.New("debug")
	require.NoError(t, err)
	require.NotNil(t, logger)
	defer logger.Sync()
}

func TestNew_InfoLevel_Succeeds(t *testing.T) {
	logger, err := rocklog.New("info")
	require.NoError(t, err)
	require.NotNil(t, logger)
	defer logger.Sync()
}

func TestNew_InvalidLevel_ReturnsError(t *testing.T) {
	_, err := rocklog.New("not-a-level")
	assert.Error(t, err)
}
