package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logident/logident/pattern"
)

func TestAddressValid(t *testing.T) {
	t.Parallel()

	addr := pattern.Address()

	valid := []string{
		"123 Main Street", "456 Oak Ave", "789 Elm Blvd Suite",
	}

	for _, v := range valid {
		assert.True(t, addr.Validate(v), "expected %q to be a valid address", v)
	}
}

func TestAddressInvalid(t *testing.T) {
	t.Parallel()

	addr := pattern.Address()

	invalid := []string{
		"Main Street", "123", "user connected from 123 Main Street today",
	}

	for _, v := range invalid {
		assert.False(t, addr.Validate(v), "expected %q to be an invalid address", v)
	}
}

func TestAddressExtractRequiresWholeLine(t *testing.T) {
	t.Parallel()

	addr := pattern.Address()

	assert.Empty(t, addr.Extract("delivery to 123 Main Street arrived"))
	assert.Len(t, addr.Extract("123 Main Street"), 1)
}
