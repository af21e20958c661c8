package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logident/logident/pattern"
)

func TestRegistryClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  []string
	}{
		{"", nil},
		{"user@example.com", []string{"email"}},
		{"2001:db8::1", []string{"ip"}},
		{"192.168.1.1", []string{"ip"}},
		{"00:1A:2B:3C:4D:5E", []string{"mac"}},
	}

	for _, tt := range tests {
		got := pattern.Default.Classify(tt.value)
		assert.Equal(t, tt.want, got, "classify(%q)", tt.value)
	}
}

func TestRegistryClassifyIdempotent(t *testing.T) {
	t.Parallel()

	values := []string{"", "user@example.com", "not a match", "10.0.0.1"}

	for _, v := range values {
		require.Equal(t, pattern.Default.Classify(v), pattern.Default.Classify(v))
	}
}

func TestEmailExcludesDNSName(t *testing.T) {
	t.Parallel()

	got := pattern.Default.Classify("user@example.com")
	assert.Contains(t, got, "email")
	assert.NotContains(t, got, "dnsname")
}

func TestExtractAllRegistrationOrder(t *testing.T) {
	t.Parallel()

	line := "Dec 10 06:55:46 LabSZ sshd[24200]: Invalid user webmaster from 173.234.31.186"

	matches := pattern.Default.ExtractAll(line, nil)

	var categories []string
	for _, m := range matches {
		categories = append(categories, m.Category)
	}

	// email is registered before ip in pattern.Default, so if both were
	// present email matches would precede ip matches.
	emailIdx, ipIdx := -1, -1

	for i, c := range categories {
		if c == "email" && emailIdx == -1 {
			emailIdx = i
		}

		if c == "ip" && ipIdx == -1 {
			ipIdx = i
		}
	}

	if emailIdx != -1 && ipIdx != -1 {
		assert.Less(t, emailIdx, ipIdx)
	}
}

func TestExtractAllExclude(t *testing.T) {
	t.Parallel()

	line := "connect to 10.0.0.1 from user@example.com"

	matches := pattern.Default.ExtractAll(line, map[string]bool{"ip": true})

	for _, m := range matches {
		assert.NotEqual(t, "ip", m.Category)
	}
}
