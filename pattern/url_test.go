package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logident/logident/pattern"
)

func TestURLValid(t *testing.T) {
	t.Parallel()

	u := pattern.URL()

	valid := []string{
		"http://example.com", "https://example.com", "http://www.example.com",
		"http://example.com/path", "http://example.com/path?query=value",
		"http://example.com:8080", "http://192.168.1.1", "ftp://ftp.example.com",
	}

	for _, v := range valid {
		assert.True(t, u.Validate(v), "expected %q to be a valid url", v)
	}
}

func TestURLInvalid(t *testing.T) {
	t.Parallel()

	u := pattern.URL()

	invalid := []string{
		"example.com", "http://", "http:/example.com", "http:example.com",
		"http://example", "gopher://example.com",
	}

	for _, v := range invalid {
		assert.False(t, u.Validate(v), "expected %q to be an invalid url", v)
	}
}
