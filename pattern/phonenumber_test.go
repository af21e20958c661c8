package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logident/logident/pattern"
)

func TestPhoneNumberValid(t *testing.T) {
	t.Parallel()

	phone := pattern.PhoneNumber()

	valid := []string{
		"123-456-7890", "(123) 456-7890", "1234567890",
		"+1 123-456-7890", "+1 (123) 456-7890",
	}

	for _, v := range valid {
		assert.True(t, phone.Validate(v), "expected %q to be a valid phone number", v)
	}
}

func TestPhoneNumberInvalid(t *testing.T) {
	t.Parallel()

	phone := pattern.PhoneNumber()

	invalid := []string{
		"123-456", "8.8.8.8", "192.168.1.1", "10.0.0.1",
	}

	for _, v := range invalid {
		assert.False(t, phone.Validate(v), "expected %q to be an invalid phone number", v)
	}
}
