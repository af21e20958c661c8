package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logident/logident/pattern"
)

func TestGUIDValid(t *testing.T) {
	t.Parallel()

	guid := pattern.GUID()

	valid := []string{
		"550e8400-e29b-41d4-a716-446655440000",
		"{550E8400-E29B-41D4-A716-446655440000}",
	}

	for _, v := range valid {
		assert.True(t, guid.Validate(v), "expected %q to be a valid guid", v)
	}
}

func TestGUIDInvalid(t *testing.T) {
	t.Parallel()

	guid := pattern.GUID()

	invalid := []string{
		"", "550e8400-e29b-41d4-a716", "not-a-guid", "550e8400e29b41d4a716446655440000",
	}

	for _, v := range invalid {
		assert.False(t, guid.Validate(v), "expected %q to be an invalid guid", v)
	}
}

func TestGUIDHasNoExtractor(t *testing.T) {
	t.Parallel()

	guid := pattern.GUID()

	assert.Nil(t, guid.Extract)
}
