package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logident/logident/pattern"
)

func TestUsernameValid(t *testing.T) {
	t.Parallel()

	user := pattern.Username()

	valid := []string{"root", "deploy_bot", "www-data", "svc1", "machine$"}

	for _, v := range valid {
		assert.True(t, user.Validate(v), "expected %q to be a valid username", v)
	}
}

func TestUsernameInvalid(t *testing.T) {
	t.Parallel()

	user := pattern.Username()

	invalid := []string{"", "Root", "1root", "a name with spaces"}

	for _, v := range invalid {
		assert.False(t, user.Validate(v), "expected %q to be an invalid username", v)
	}
}

func TestUsernameExtractSSHPhrases(t *testing.T) {
	t.Parallel()

	user := pattern.Username()

	matches := user.Extract("Invalid user admin from 10.0.0.5 port 4444")

	var values []string
	for _, m := range matches {
		values = append(values, m.Value)
	}

	assert.Contains(t, values, "admin")
}

func TestUsernameExtractJSONHostField(t *testing.T) {
	t.Parallel()

	user := pattern.Username()

	matches := user.Extract(`{"host":"worker-01","level":"info"}`)

	var values []string
	for _, m := range matches {
		values = append(values, m.Value)
	}

	assert.Contains(t, values, "worker-01")
}
