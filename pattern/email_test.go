package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logident/logident/pattern"
)

func TestEmailValid(t *testing.T) {
	t.Parallel()

	email := pattern.Email()

	valid := []string{
		"user@example.com", "user.name@example.com", "user+tag@example.com",
		"user123@example.co.uk", "user-name@example-domain.com",
	}

	for _, v := range valid {
		assert.True(t, email.Validate(v), "expected %q to be a valid email", v)
	}
}

func TestEmailInvalid(t *testing.T) {
	t.Parallel()

	email := pattern.Email()

	invalid := []string{
		"user@", "@example.com", "user@example", "user@.com",
		"user name@example.com", "user@exam_ple.com",
	}

	for _, v := range invalid {
		assert.False(t, email.Validate(v), "expected %q to be an invalid email", v)
	}
}
