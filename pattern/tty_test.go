package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logident/logident/pattern"
)

func TestTTYValid(t *testing.T) {
	t.Parallel()

	tty := pattern.TTY()

	valid := []string{"tty0", "/dev/tty1", "pts/0", "/dev/pts/3", "ttyUSB0", "console0"}

	for _, v := range valid {
		assert.True(t, tty.Validate(v), "expected %q to be a valid tty", v)
	}
}

func TestTTYInvalid(t *testing.T) {
	t.Parallel()

	tty := pattern.TTY()

	invalid := []string{"", "not-a-tty", "tty", "/dev/sda1"}

	for _, v := range invalid {
		assert.False(t, tty.Validate(v), "expected %q to be an invalid tty", v)
	}
}

func TestTTYExtractPtsSlashForm(t *testing.T) {
	t.Parallel()

	tty := pattern.TTY()

	matches := tty.Extract("session opened for user root on /dev/pts/2")

	var values []string
	for _, m := range matches {
		values = append(values, m.Value)
	}

	assert.Contains(t, values, "/dev/pts/2")
}
