package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logident/logident/internal/logging"
)

func TestNewBuildsLogger(t *testing.T) {
	t.Parallel()

	logger := logging.New(logging.Config{Debug: true, JSON: true})
	assert.NotNil(t, logger)
	logger.Debug("hello")
}

func TestNopDiscardsOutput(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		logging.Nop().Info("discarded")
	})
}
