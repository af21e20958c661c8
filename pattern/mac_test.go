package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logident/logident/pattern"
)

func TestMACValid(t *testing.T) {
	t.Parallel()

	mac := pattern.MAC()

	valid := []string{
		"00:1A:2B:3C:4D:5E", "00-1A-2B-3C-4D-5E", "00:1a:2b:3c:4d:5e",
		"FF:FF:FF:FF:FF:FF", "ff:ff:ff:ff:ff:ff",
	}

	for _, v := range valid {
		assert.True(t, mac.Validate(v), "expected %q to be a valid mac", v)
	}
}

func TestMACInvalid(t *testing.T) {
	t.Parallel()

	mac := pattern.MAC()

	invalid := []string{
		"00:1A:2B:3C:4D",
		"00:1A:2B:3C:4D:5E:6F",
		"00:1A:2B:3C:4D:5G",
		"001A2B3C4D5E",
		"00 1A 2B 3C 4D 5E",
		"00:1A-2B:3C:4D:5E",
	}

	for _, v := range invalid {
		assert.False(t, mac.Validate(v), "expected %q to be an invalid mac", v)
	}
}

func TestMACExtractBareHex(t *testing.T) {
	t.Parallel()

	mac := pattern.MAC()

	matches := mac.Extract("iface hwaddr=001a2b3c4d5e up")

	var values []string
	for _, m := range matches {
		values = append(values, m.Value)
	}

	assert.Contains(t, values, "001a2b3c4d5e")
}
